// internal/services/part_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryfigma/zirveparca/internal/models"
)

func TestFindCompatibleReturnsOnlyFittingParts(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")
	doblo := createVehicle(t, db, brand, "Doblo", models.BodyStyleStationWagon, "1.3 Multijet")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")

	fits := createPart(t, db, "Yag Filtresi Egea", "FO-1001", bosch, root, sub, 150, egea)
	createPart(t, db, "Yag Filtresi Doblo", "FO-1002", bosch, root, sub, 140, doblo)
	// A part with no compatibility list must never surface here.
	createPart(t, db, "Raf Urunu", "FO-1003", bosch, root, sub, 90)

	parts, err := svc.FindCompatible(egea.ID, CompatibleFilter{})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, fits.ID, parts[0].ID)
	assert.Equal(t, "Bosch", parts[0].Brand.Name)
}

func TestFindCompatibleCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	filters, oilFilter := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	airFilter := &models.Category{Name: "Hava Filtresi", ParentID: &filters.ID}
	require.NoError(t, db.Create(airFilter).Error)
	brakes, pads := createCategoryPair(t, db, "Frenler", "Balata")

	bosch := createPartBrand(t, db, "Bosch")
	oil := createPart(t, db, "Yag Filtresi", "FL-1", bosch, filters, oilFilter, 150, egea)
	air := createPart(t, db, "Hava Filtresi", "FL-2", bosch, filters, airFilter, 120, egea)
	createPart(t, db, "On Balata", "BR-1", bosch, brakes, pads, 400, egea)

	// Subcategory filter is exact.
	parts, err := svc.FindCompatible(egea.ID, CompatibleFilter{CategoryID: &oilFilter.ID})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, oil.ID, parts[0].ID)

	// Root filter covers every subcategory beneath it.
	parts, err = svc.FindCompatible(egea.ID, CompatibleFilter{CategoryID: &filters.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{oil.ID, air.ID}, partIDs(parts))

	// Unknown category id hides everything instead of failing.
	bogus := uuid.New()
	parts, err = svc.FindCompatible(egea.ID, CompatibleFilter{CategoryID: &bogus})
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestFindCompatibleUnknownVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	parts, err := svc.FindCompatible(uuid.New(), CompatibleFilter{})
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestActiveCategoriesHideEmptyAisles(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	filters, oilFilter := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	airFilter := &models.Category{Name: "Hava Filtresi", ParentID: &filters.ID}
	require.NoError(t, db.Create(airFilter).Error)
	// No compatible part will ever live under this tree.
	createCategoryPair(t, db, "Aydinlatma", "Far")

	bosch := createPartBrand(t, db, "Bosch")
	createPart(t, db, "Yag Filtresi", "FL-1", bosch, filters, oilFilter, 150, egea)

	roots, err := svc.ActiveCategories(egea.ID, nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Filtreler", roots[0].Name)

	subs, err := svc.ActiveCategories(egea.ID, &filters.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Yag Filtresi", subs[0].Name)
}

func TestSearchPartsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi Egea", "OC-90 E", bosch, root, sub, 150)

	byName, err := svc.SearchParts("yag filtresi")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, part.ID, byName[0].ID)

	byOEM, err := svc.SearchParts("oc-90")
	require.NoError(t, err)
	require.Len(t, byOEM, 1)

	none, err := svc.SearchParts("debriyaj")
	require.NoError(t, err)
	assert.Empty(t, none)

	blank, err := svc.SearchParts("   ")
	require.NoError(t, err)
	assert.Empty(t, blank)
}

func TestGetPartGroupAlternatives(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	mann := createPartBrand(t, db, "Mann")

	original := createPart(t, db, "Yag Filtresi Bosch", "OC-90", bosch, root, sub, 180, egea)
	alternative := createPart(t, db, "Yag Filtresi Mann", "OC-90", mann, root, sub, 150, egea)
	createPart(t, db, "Baska Filtre", "OC-91", bosch, root, sub, 100, egea)

	group, err := svc.GetPartGroup(original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, group.Part.ID)
	require.Len(t, group.Alternatives, 1)
	assert.Equal(t, alternative.ID, group.Alternatives[0].ID)
	assert.Equal(t, "Mann", group.Alternatives[0].Brand.Name)

	// The grouping is symmetric.
	group, err = svc.GetPartGroup(alternative.ID)
	require.NoError(t, err)
	require.Len(t, group.Alternatives, 1)
	assert.Equal(t, original.ID, group.Alternatives[0].ID)
}

func TestDeletePartRemovesItFromAlternatives(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	mann := createPartBrand(t, db, "Mann")

	survivor := createPart(t, db, "Yag Filtresi Bosch", "OC-90", bosch, root, sub, 180, egea)
	sibling := createPart(t, db, "Yag Filtresi Mann", "OC-90", mann, root, sub, 150, egea)

	require.NoError(t, svc.DeletePart(sibling.ID))

	// The survivor stays retrievable and compatible, with the deleted
	// sibling gone from its alternatives.
	group, err := svc.GetPartGroup(survivor.ID)
	require.NoError(t, err)
	assert.Equal(t, survivor.ID, group.Part.ID)
	assert.Empty(t, group.Alternatives)

	parts, err := svc.FindCompatible(egea.ID, CompatibleFilter{})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, survivor.ID, parts[0].ID)

	_, err = svc.GetPartGroup(sibling.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPartGroupNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	_, err := svc.GetPartGroup(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePartChecksCategoryPair(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	filters, _ := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	_, pads := createCategoryPair(t, db, "Frenler", "Balata")
	bosch := createPartBrand(t, db, "Bosch")

	// Subcategory from a different root.
	_, err := svc.CreatePart(&CreatePartRequest{
		Name:           "Karisik Parca",
		OEM:            "XX-1",
		BrandID:        bosch.ID,
		MainCategoryID: filters.ID,
		CategoryID:     pads.ID,
		Price:          100,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePartDirectlyUnderRoot(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")

	// A root without children can hold parts itself: the sub reference then
	// equals the root.
	aksesuar := &models.Category{Name: "Aksesuar", Image: "aksesuar.png"}
	require.NoError(t, db.Create(aksesuar).Error)
	bosch := createPartBrand(t, db, "Bosch")

	part, err := svc.CreatePart(&CreatePartRequest{
		Name:           "Paspas Seti",
		OEM:            "AK-100",
		BrandID:        bosch.ID,
		MainCategoryID: aksesuar.ID,
		CategoryID:     aksesuar.ID,
		Price:          250,
		CompatibleCars: []uuid.UUID{egea.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, aksesuar.ID, part.MainCategoryID)
	assert.Equal(t, aksesuar.ID, part.CategoryID)

	// The root filter finds it on the compatibility path too.
	parts, err := svc.FindCompatible(egea.ID, CompatibleFilter{CategoryID: &aksesuar.ID})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, part.ID, parts[0].ID)
}

func TestCreatePartKeepsOEMGroupInOneMainCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	filters, oilFilter := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	brakes, pads := createCategoryPair(t, db, "Frenler", "Balata")
	bosch := createPartBrand(t, db, "Bosch")

	createPart(t, db, "Yag Filtresi", "OC-90", bosch, filters, oilFilter, 150)

	_, err := svc.CreatePart(&CreatePartRequest{
		Name:           "Sahte Balata",
		OEM:            "OC-90",
		BrandID:        bosch.ID,
		MainCategoryID: brakes.ID,
		CategoryID:     pads.ID,
		Price:          100,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdatePartReplacesCompatibilityList(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	brand := createBrand(t, db, "Fiat", false)
	egea := createVehicle(t, db, brand, "Egea", models.BodyStyleSedan, "1.4 Fire")
	doblo := createVehicle(t, db, brand, "Doblo", models.BodyStyleStationWagon, "1.3 Multijet")

	root, sub := createCategoryPair(t, db, "Filtreler", "Yag Filtresi")
	bosch := createPartBrand(t, db, "Bosch")
	part := createPart(t, db, "Yag Filtresi", "OC-90", bosch, root, sub, 150, egea)

	newList := []uuid.UUID{doblo.ID}
	updated, err := svc.UpdatePart(part.ID, &UpdatePartRequest{CompatibleCars: &newList})
	require.NoError(t, err)
	require.Len(t, updated.CompatibleCars, 1)
	assert.Equal(t, doblo.ID, updated.CompatibleCars[0].ID)

	// The old vehicle no longer finds the part.
	parts, err := svc.FindCompatible(egea.ID, CompatibleFilter{})
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestDeletePartNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartService(db)

	err := svc.DeletePart(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
