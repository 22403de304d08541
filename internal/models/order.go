// internal/models/order.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a snapshot of the cart at checkout time plus an address snapshot
// and delivery/payment choices. Status is the single source of truth for
// progress; the 0-4 step shown by the storefront is derived from it.
type Order struct {
	BaseModel
	UserID         uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount    float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Address        JSONB       `json:"address" gorm:"type:jsonb"`
	DeliveryMethod string      `json:"delivery_method" gorm:"size:50"`
	PaymentMethod  string      `json:"payment_method" gorm:"size:50"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(30);default:'placed';index"`
	CargoCompany   string      `json:"cargo_company" gorm:"size:100"`
	TrackingCode   string      `json:"tracking_code" gorm:"size:100"`

	// Derived from Status, never stored; -1 for cancelled orders.
	CurrentStep int `json:"current_step" gorm:"-"`

	// Relationships
	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	PartID     uuid.UUID `json:"part_id" gorm:"type:uuid;not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	PriceAtAdd float64   `json:"price_at_add" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Part Part `json:"part,omitempty" gorm:"foreignKey:PartID"`
}

// AfterFind keeps the serialized step in sync with the stored status.
func (o *Order) AfterFind(tx *gorm.DB) error {
	o.CurrentStep = o.Status.Step()
	return nil
}

// AfterSave covers freshly created and updated orders that skip a reload.
func (o *Order) AfterSave(tx *gorm.DB) error {
	o.CurrentStep = o.Status.Step()
	return nil
}
