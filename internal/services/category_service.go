// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// CategoryService owns the two-level part category tree. Roots carry an
// image; subcategories hang off exactly one root. Deeper nesting is rejected
// at write time.
type CategoryService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=100"`
	Image    string     `json:"image,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name     string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Image    *string    `json:"image,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListCategories returns the whole tree flat, roots first, name ascending
// within each level.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Preload("Parent").
		Order("parent_id IS NOT NULL, name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// ListRootCategories returns only the top level.
func (s *CategoryService) ListRootCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("parent_id IS NULL").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch root categories: %w", err)
	}
	return categories, nil
}

// ListSubcategories returns the children of one root. An unknown id yields an
// empty list.
func (s *CategoryService) ListSubcategories(rootID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("parent_id = ?", rootID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch subcategories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Parent").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

// checkParent enforces the depth limit: the parent must exist and must itself
// be a root.
func (s *CategoryService) checkParent(parentID uuid.UUID) (*models.Category, error) {
	var parent models.Category
	if err := s.db.First(&parent, "id = ?", parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: parent category", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !parent.IsRoot() {
		return nil, fmt.Errorf("%w: parent must be a root category", ErrValidation)
	}
	return &parent, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	category := &models.Category{
		Name:  req.Name,
		Image: req.Image,
	}
	if req.ParentID != nil {
		if _, err := s.checkParent(*req.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = req.ParentID
		// Subcategories have no image of their own.
		category.Image = ""
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, fmt.Errorf("%w: category cannot be its own parent", ErrValidation)
		}
		if _, err := s.checkParent(*req.ParentID); err != nil {
			return nil, err
		}
		// A category with children is a root; demoting it would create a
		// third level.
		var childCount int64
		if err := s.db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if childCount > 0 {
			return nil, fmt.Errorf("%w: category with subcategories cannot become a subcategory", ErrValidation)
		}
		updates["parent_id"] = *req.ParentID
		updates["image"] = ""
	}

	if err := s.db.Model(&category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.db.Preload("Parent").First(&category, "id = ?", id)
	return &category, nil
}

func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	result := s.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: category", ErrNotFound)
	}
	return nil
}
