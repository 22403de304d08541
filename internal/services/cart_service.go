// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/database"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// CartService keeps one open cart per user. Prices are snapshotted from the
// catalog when an item is added; the client never supplies a price.
type CartService struct {
	db *gorm.DB
}

type AddCartItemRequest struct {
	PartID   uuid.UUID `json:"part_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetCart loads the user's cart, creating an empty one on first touch.
func (s *CartService) GetCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Preload("Items.Part").Preload("Items.Part.Brand").
		Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
		cart.Items = []models.CartItem{}
		return &cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

// AddItem merges a quantity delta into the cart. Positive deltas add; a
// resulting quantity of zero or less removes the line. Deltas for parts not
// in the cart are ignored when they would not leave a positive quantity.
func (s *CartService) AddItem(userID uuid.UUID, req *AddCartItemRequest) (*models.Cart, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var part models.Part
	if err := s.db.First(&part, "id = ?", req.PartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: part", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var item models.CartItem
		findErr := tx.Where("cart_id = ? AND part_id = ?", cart.ID, req.PartID).First(&item).Error
		switch {
		case findErr == nil:
			newQty := item.Quantity + req.Quantity
			if newQty <= 0 {
				return tx.Delete(&item).Error
			}
			return tx.Model(&item).Update("quantity", newQty).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if req.Quantity <= 0 {
				return nil
			}
			item = models.CartItem{
				CartID:     cart.ID,
				PartID:     req.PartID,
				Quantity:   req.Quantity,
				PriceAtAdd: part.Price,
			}
			return tx.Create(&item).Error
		default:
			return findErr
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return s.GetCart(userID)
}

// RemoveItem drops one part from the cart regardless of quantity.
func (s *CartService) RemoveItem(userID, partID uuid.UUID) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	result := s.db.Where("cart_id = ? AND part_id = ?", cart.ID, partID).Delete(&models.CartItem{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: cart item", ErrNotFound)
	}

	return s.GetCart(userID)
}

// ClearCart empties the cart but keeps the cart row itself.
func (s *CartService) ClearCart(userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	cart.Items = []models.CartItem{}
	return cart, nil
}
