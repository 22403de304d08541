// internal/models/part.go
package models

import "github.com/google/uuid"

// PartBrand is a parts manufacturer (Bosch, Valeo, ...), distinct from
// VehicleBrand.
type PartBrand struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Logo string `json:"logo" gorm:"size:500"`
}

// Part is one manufacturer's offering of a physical component. Parts sharing
// an OEM code are interchangeable alternatives differing only in
// manufacturer, price, stock and photo. CompatibleCars enumerates every
// vehicle configuration the part fits; a manufacturer variant may fit a
// subset of its siblings' vehicles.
type Part struct {
	BaseModel
	Name           string    `json:"name" gorm:"size:255;not null"`
	OEM            string    `json:"oem" gorm:"size:100;not null;index"`
	BrandID        uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index"`
	MainCategoryID uuid.UUID `json:"main_category_id" gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Price          float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock          int       `json:"stock" gorm:"default:0"`
	Photo          string    `json:"photo" gorm:"size:500"`
	Description    string    `json:"description" gorm:"type:text"`

	// Relationships
	Brand          PartBrand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	MainCategory   Category  `json:"main_category,omitempty" gorm:"foreignKey:MainCategoryID"`
	Category       Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CompatibleCars []Vehicle `json:"compatible_cars,omitempty" gorm:"many2many:part_compatible_cars"`
}
