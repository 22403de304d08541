// internal/services/testdb_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/henryfigma/zirveparca/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database, so queries that run outside an open transaction see no
	// tables. A named shared-cache DSN keeps all connections on one DB.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.VehicleBrand{},
		&models.Vehicle{},
		&models.PartBrand{},
		&models.Category{},
		&models.Part{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

func createBrand(t *testing.T, db *gorm.DB, name string, combine bool) *models.VehicleBrand {
	t.Helper()
	brand := &models.VehicleBrand{Name: name, CombineModelBody: combine}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func createVehicle(t *testing.T, db *gorm.DB, brand *models.VehicleBrand, model string, body models.BodyStyle, engine string) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		BrandID:   brand.ID,
		Model:     model,
		Years:     "2015-2020",
		Engine:    engine,
		BodyStyle: body,
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func createCategoryPair(t *testing.T, db *gorm.DB, rootName, subName string) (*models.Category, *models.Category) {
	t.Helper()
	root := &models.Category{Name: rootName, Image: "https://img.example/" + rootName + ".png"}
	require.NoError(t, db.Create(root).Error)
	sub := &models.Category{Name: subName, ParentID: &root.ID}
	require.NoError(t, db.Create(sub).Error)
	return root, sub
}

func createPartBrand(t *testing.T, db *gorm.DB, name string) *models.PartBrand {
	t.Helper()
	brand := &models.PartBrand{Name: name}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func createPart(t *testing.T, db *gorm.DB, name, oem string, brand *models.PartBrand, root, sub *models.Category, price float64, cars ...*models.Vehicle) *models.Part {
	t.Helper()
	part := &models.Part{
		Name:           name,
		OEM:            oem,
		BrandID:        brand.ID,
		MainCategoryID: root.ID,
		CategoryID:     sub.ID,
		Price:          price,
		Stock:          10,
	}
	for _, car := range cars {
		part.CompatibleCars = append(part.CompatibleCars, *car)
	}
	require.NoError(t, db.Create(part).Error)
	return part
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:         "Test User",
		Email:            email,
		Phone:            "5551234567",
		Role:             models.UserRoleUser,
		MembershipAgreed: true,
		KVKKAgreed:       true,
	}
	require.NoError(t, user.SetPassword("correct-horse-battery"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func partIDs(parts []models.Part) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.ID)
	}
	return ids
}
