// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/database"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// OrderService turns carts into orders and walks them through the fulfilment
// pipeline. Line prices come from the cart snapshots, never from the request.
type OrderService struct {
	db *gorm.DB
}

type CreateOrderRequest struct {
	Address        models.JSONB `json:"address" validate:"required"`
	DeliveryMethod string       `json:"delivery_method" validate:"required,max=100"`
	PaymentMethod  string       `json:"payment_method" validate:"required,max=100"`
}

type UpdateOrderStatusRequest struct {
	Status       string `json:"status" validate:"required"`
	CargoCompany string `json:"cargo_company,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) preloaded() *gorm.DB {
	return s.db.Preload("Items").Preload("Items.Part").Preload("Items.Part.Brand").Preload("User")
}

// ListOrders returns all orders newest first. Admins see everything; a
// regular user only their own.
func (s *OrderService) ListOrders(userID uuid.UUID, isAdmin bool) ([]models.Order, error) {
	query := s.preloaded().Order("created_at DESC")
	if !isAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(id, userID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order
	if err := s.preloaded().First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !isAdmin && order.UserID != userID {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	return &order, nil
}

// CreateOrder converts the user's cart into an order. Item rows and the
// total are built from the cart's price snapshots inside one transaction.
// Clearing the cart afterwards is best effort: a failure there is logged and
// the order stands.
func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var cart models.Cart
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	order := &models.Order{
		UserID:         userID,
		Address:        req.Address,
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.OrderStatusPlaced,
	}
	for _, item := range cart.Items {
		order.TotalAmount += item.PriceAtAdd * float64(item.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			PartID:     item.PartID,
			Quantity:   item.Quantity,
			PriceAtAdd: item.PriceAtAdd,
		})
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"order_id": order.ID,
			"error":    err.Error(),
		}).Warn("Order placed but cart could not be cleared")
	}

	return s.GetOrder(order.ID, userID, false)
}

// UpdateStatus moves an order forward along the pipeline. Backwards moves
// are rejected; cancellation is allowed from any state short of delivered.
func (s *OrderService) UpdateStatus(id uuid.UUID, req *UpdateOrderStatusRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	next := models.OrderStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Repeating the current status is an idempotent no-op (it can still
	// refresh cargo and tracking details); anything else must move forward.
	if next != order.Status && !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	updates := map[string]interface{}{"status": next}
	if req.CargoCompany != "" {
		updates["cargo_company"] = req.CargoCompany
	}
	if req.TrackingCode != "" {
		updates["tracking_code"] = req.TrackingCode
	}
	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return s.GetOrder(id, order.UserID, true)
}

func (s *OrderService) DeleteOrder(id uuid.UUID) error {
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
