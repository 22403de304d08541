// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/config"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 8,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	utils.SetJWTSecret("test-secret")

	resp, err := svc.Register(&RegisterRequest{
		FullName:         "Ayse Yilmaz",
		Email:            "ayse@example.com",
		Phone:            "5551234567",
		Password:         "gizli-parola-1",
		MembershipAgreed: true,
		KVKKAgreed:       true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)
	// The hash never equals the raw password.
	assert.NotEqual(t, "gizli-parola-1", resp.User.PasswordHash)

	claims, err := utils.ValidateJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)

	login, err := svc.Login(&LoginRequest{Email: "ayse@example.com", Password: "gizli-parola-1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	req := &RegisterRequest{
		FullName:         "Ayse Yilmaz",
		Email:            "ayse@example.com",
		Phone:            "5551234567",
		Password:         "gizli-parola-1",
		MembershipAgreed: true,
		KVKKAgreed:       true,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	createUser(t, db, "ayse@example.com")

	_, err := svc.Login(&LoginRequest{Email: "ayse@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfileAndAddresses(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createUser(t, db, "ayse@example.com")

	updated, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{FullName: "Ayse Kaya"})
	require.NoError(t, err)
	assert.Equal(t, "Ayse Kaya", updated.FullName)

	address, err := svc.AddAddress(user.ID, &AddAddressRequest{Title: "Ev", Detail: "Ankara, Cankaya"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	require.Len(t, profile.Addresses, 1)

	require.NoError(t, svc.DeleteAddress(user.ID, address.ID))

	// Deleting another user's address fails.
	other := createUser(t, db, "other@example.com")
	address, err = svc.AddAddress(other.ID, &AddAddressRequest{Title: "Is", Detail: "Istanbul"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteAddress(user.ID, address.ID), ErrNotFound)
}
