// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/models"
)

func TestListBrandsAlphabetical(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createBrand(t, db, "Volkswagen", false)
	createBrand(t, db, "Audi", false)
	createBrand(t, db, "Opel", true)

	brands, err := svc.ListBrands()
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "Audi", brands[0].Name)
	assert.Equal(t, "Opel", brands[1].Name)
	assert.Equal(t, "Volkswagen", brands[2].Name)
}

func TestCreateBrandDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateBrand(&CreateBrandRequest{Name: "Renault"})
	require.NoError(t, err)

	_, err = svc.CreateBrand(&CreateBrandRequest{Name: "Renault"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListModelsDistinct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	brand := createBrand(t, db, "Ford", false)
	v1 := createVehicle(t, db, brand, "Focus", models.BodyStyleSedan, "1.6 TDCi")
	v1.ModelPhoto = "focus-sedan.jpg"
	require.NoError(t, db.Save(v1).Error)
	createVehicle(t, db, brand, "Focus", models.BodyStyleHatchback, "1.5 EcoBoost")
	createVehicle(t, db, brand, "Fiesta", models.BodyStyleHatchback, "1.0 EcoBoost")

	summaries, err := svc.ListModels(brand.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Fiesta", summaries[0].DisplayName)
	assert.Equal(t, "Focus", summaries[1].DisplayName)
}

func TestListModelsCombineModelBody(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	brand := createBrand(t, db, "Opel", true)
	createVehicle(t, db, brand, "Astra", models.BodyStyleSedan, "1.4 Turbo")
	createVehicle(t, db, brand, "Astra", models.BodyStyleHatchback, "1.4 Turbo")
	createVehicle(t, db, brand, "Astra", models.BodyStyleHatchback, "1.6 CDTI")

	summaries, err := svc.ListModels(brand.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	names := []string{summaries[0].DisplayName, summaries[1].DisplayName}
	assert.Contains(t, names, "Astra Sedan")
	assert.Contains(t, names, "Astra Hatchback")
}

func TestListModelsUnknownBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	summaries, err := svc.ListModels(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListEngineVariants(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	brand := createBrand(t, db, "BMW", false)
	createVehicle(t, db, brand, "3 Series", models.BodyStyleSedan, "320i")
	createVehicle(t, db, brand, "3 Series", models.BodyStyleSedan, "320d")
	createVehicle(t, db, brand, "3 Series", models.BodyStyleStationWagon, "320d")

	variants, err := svc.ListEngineVariants(brand.ID, "3 Series", models.BodyStyleSedan)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	for _, v := range variants {
		assert.Equal(t, models.BodyStyleSedan, v.BodyStyle)
		assert.Equal(t, "BMW", v.Brand.Name)
	}
}

func TestCreateVehicleRejectsBadBodyStyle(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	brand := createBrand(t, db, "Toyota", false)
	_, err := svc.CreateVehicle(&CreateVehicleRequest{
		BrandID:   brand.ID,
		Model:     "Corolla",
		Years:     "2019-2024",
		Engine:    "1.8 Hybrid",
		BodyStyle: "Coupe",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateVehicleUnknownBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateVehicle(&CreateVehicleRequest{
		BrandID:   uuid.New(),
		Model:     "Corolla",
		Years:     "2019-2024",
		Engine:    "1.8 Hybrid",
		BodyStyle: "Sedan",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetVehicleNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.GetVehicle(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
