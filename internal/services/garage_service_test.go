// internal/services/garage_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/models"
)

func TestGarageAddListRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewGarageService(db)

	user := createUser(t, db, "garage@example.com")
	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	garage, err := svc.AddVehicle(user.ID, egea.ID)
	require.NoError(t, err)
	require.Len(t, garage, 1)
	assert.Equal(t, egea.ID, garage[0].ID)
	assert.Equal(t, "Fiat", garage[0].Brand.Name)

	// Duplicate add is a conflict, not a second row.
	_, err = svc.AddVehicle(user.ID, egea.ID)
	assert.ErrorIs(t, err, ErrConflict)

	garage, err = svc.RemoveVehicle(user.ID, egea.ID)
	require.NoError(t, err)
	assert.Empty(t, garage)

	_, err = svc.RemoveVehicle(user.ID, egea.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarageUnknownVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewGarageService(db)
	user := createUser(t, db, "garage@example.com")

	_, err := svc.AddVehicle(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGarageUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewGarageService(db)

	_, err := svc.ListGarage(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
