// internal/services/part_brand_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// PartBrandService manages the parts manufacturers (Bosch, Valeo and friends)
// shown next to each listing.
type PartBrandService struct {
	db *gorm.DB
}

type CreatePartBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Logo string `json:"logo,omitempty"`
}

type UpdatePartBrandRequest struct {
	Name string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Logo *string `json:"logo,omitempty"`
}

func NewPartBrandService(db *gorm.DB) *PartBrandService {
	return &PartBrandService{db: db}
}

func (s *PartBrandService) ListPartBrands() ([]models.PartBrand, error) {
	var brands []models.PartBrand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch part brands: %w", err)
	}
	return brands, nil
}

func (s *PartBrandService) GetPartBrand(id uuid.UUID) (*models.PartBrand, error) {
	var brand models.PartBrand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: part brand", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &brand, nil
}

func (s *PartBrandService) CreatePartBrand(req *CreatePartBrandRequest) (*models.PartBrand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.PartBrand
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: part brand %q", ErrConflict, req.Name)
	}

	brand := &models.PartBrand{Name: req.Name, Logo: req.Logo}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create part brand: %w", err)
	}
	return brand, nil
}

func (s *PartBrandService) UpdatePartBrand(id uuid.UUID, req *UpdatePartBrandRequest) (*models.PartBrand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	brand, err := s.GetPartBrand(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" && req.Name != brand.Name {
		var existing models.PartBrand
		if err := s.db.Where("name = ? AND id <> ?", req.Name, id).First(&existing).Error; err == nil {
			return nil, fmt.Errorf("%w: part brand %q", ErrConflict, req.Name)
		}
		updates["name"] = req.Name
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}

	if err := s.db.Model(brand).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update part brand: %w", err)
	}
	return brand, nil
}

func (s *PartBrandService) DeletePartBrand(id uuid.UUID) error {
	result := s.db.Delete(&models.PartBrand{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete part brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: part brand", ErrNotFound)
	}
	return nil
}
