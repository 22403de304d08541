// internal/models/cart.go
package models

import "github.com/google/uuid"

// Cart holds one shopping cart per user. Line items snapshot the part price
// at add time; the snapshot is immutable afterwards even if the part's price
// changes.
type Cart struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`

	// Relationships
	Items []CartItem `json:"items" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID     uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	PartID     uuid.UUID `json:"part_id" gorm:"type:uuid;not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	PriceAtAdd float64   `json:"price_at_add" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Part Part `json:"part,omitempty" gorm:"foreignKey:PartID"`
}
