// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

func TestListUsersSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createUser(t, db, "ayse@example.com")
	createUser(t, db, "mehmet@example.com")

	result, err := svc.ListUsers(utils.PaginationParams{Page: 1, Limit: 20, Search: "ayse"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)

	result, err = svc.ListUsers(utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
}

func TestUpdateUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createUser(t, db, "ayse@example.com")

	updated, err := svc.UpdateUser(user.ID, &AdminUpdateUserRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, updated.Role)

	_, err = svc.UpdateUser(user.ID, &AdminUpdateUserRequest{Role: "root"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteUserRemovesCart(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	cartSvc := NewCartService(db)

	user := createUser(t, db, "ayse@example.com")
	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150)

	_, err := cartSvc.AddItem(user.ID, &AddCartItemRequest{PartID: part.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, userSvc.DeleteUser(user.ID))

	_, err = userSvc.GetUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestDeleteUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	assert.ErrorIs(t, svc.DeleteUser(uuid.New()), ErrNotFound)
}
