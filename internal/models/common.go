// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL (stored as plain JSON text elsewhere)
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type BodyStyle string

const (
	BodyStyleSedan        BodyStyle = "Sedan"
	BodyStyleHatchback    BodyStyle = "Hatchback"
	BodyStyleSUV          BodyStyle = "SUV"
	BodyStyleStationWagon BodyStyle = "Station Wagon"
)

func (b BodyStyle) Valid() bool {
	switch b {
	case BodyStyleSedan, BodyStyleHatchback, BodyStyleSUV, BodyStyleStationWagon:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPlaced           OrderStatus = "placed"
	OrderStatusPaymentConfirmed OrderStatus = "payment_confirmed"
	OrderStatusPreparing        OrderStatus = "preparing"
	OrderStatusShipped          OrderStatus = "shipped"
	OrderStatusDelivered        OrderStatus = "delivered"
	OrderStatusCancelled        OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPaymentConfirmed, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Step maps a status to the storefront progress bar position (0-4).
// Cancelled orders have no position and report -1.
func (s OrderStatus) Step() int {
	switch s {
	case OrderStatusPlaced:
		return 0
	case OrderStatusPaymentConfirmed:
		return 1
	case OrderStatusPreparing:
		return 2
	case OrderStatusShipped:
		return 3
	case OrderStatusDelivered:
		return 4
	}
	return -1
}

// CanTransitionTo enforces the one-directional admin progression: the step
// only moves forwards, and cancellation is allowed from any state except
// delivered. Cancelled is terminal. Staying on the same status is not a
// transition; callers that want an idempotent repeat handle it themselves.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return s != OrderStatusDelivered
	}
	return next.Step() > s.Step()
}
