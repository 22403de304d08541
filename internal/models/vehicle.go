// internal/models/vehicle.go
package models

import "github.com/google/uuid"

// VehicleBrand is a car manufacturer (distinct from PartBrand).
// CombineModelBody marks brands whose model and body style are not
// independently meaningful in the storefront; model pickers then show
// "Model BodyStyle" as a single display name.
type VehicleBrand struct {
	BaseModel
	Name             string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Logo             string `json:"logo" gorm:"size:500"`
	CombineModelBody bool   `json:"combine_model_body" gorm:"default:false"`
}

// Vehicle is one sellable configuration: brand + model + body style + engine.
// Part compatibility is declared against this unit.
type Vehicle struct {
	BaseModel
	BrandID    uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index"`
	Model      string    `json:"model" gorm:"size:100;not null;index"`
	Years      string    `json:"years" gorm:"size:50;not null"`
	ModelPhoto string    `json:"model_photo" gorm:"size:500"`
	Engine     string    `json:"engine" gorm:"size:100;not null"`
	BodyStyle  BodyStyle `json:"body_style" gorm:"type:varchar(20);not null"`
	HP         string    `json:"hp" gorm:"size:20"`
	KW         string    `json:"kw" gorm:"size:20"`

	// Relationships
	Brand VehicleBrand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

// Table names keep the storefront's original collection layout.
func (VehicleBrand) TableName() string { return "brands" }
func (Vehicle) TableName() string      { return "cars" }
