// internal/services/part_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/database"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// PartService owns the spare part catalog: the compatibility index that maps
// vehicles to fitting parts, the OEM grouping that ties equivalent parts from
// different manufacturers together, and the admin CRUD behind both.
type PartService struct {
	db *gorm.DB
}

type CreatePartRequest struct {
	Name           string      `json:"name" validate:"required,min=1,max=200"`
	OEM            string      `json:"oem" validate:"required,oem_code"`
	BrandID        uuid.UUID   `json:"brand_id" validate:"required"`
	MainCategoryID uuid.UUID   `json:"main_category_id" validate:"required"`
	CategoryID     uuid.UUID   `json:"category_id" validate:"required"`
	Price          float64     `json:"price" validate:"required,gt=0"`
	Stock          int         `json:"stock" validate:"gte=0"`
	Photo          string      `json:"photo,omitempty"`
	Description    string      `json:"description,omitempty"`
	CompatibleCars []uuid.UUID `json:"compatible_cars,omitempty"`
}

type UpdatePartRequest struct {
	Name           string       `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	OEM            string       `json:"oem,omitempty" validate:"omitempty,oem_code"`
	BrandID        *uuid.UUID   `json:"brand_id,omitempty"`
	MainCategoryID *uuid.UUID   `json:"main_category_id,omitempty"`
	CategoryID     *uuid.UUID   `json:"category_id,omitempty"`
	Price          *float64     `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock          *int         `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Photo          *string      `json:"photo,omitempty"`
	Description    *string      `json:"description,omitempty"`
	CompatibleCars *[]uuid.UUID `json:"compatible_cars,omitempty"`
}

// CompatibleFilter narrows a compatibility query to one branch of the
// category tree. A root id matches parts whose main category is that root; a
// subcategory id matches exactly.
type CompatibleFilter struct {
	CategoryID *uuid.UUID
	Search     string
}

// PartAlternative is the trimmed view of an OEM sibling shown on a part
// detail page.
type PartAlternative struct {
	ID    uuid.UUID        `json:"id"`
	Name  string           `json:"name"`
	OEM   string           `json:"oem"`
	Brand models.PartBrand `json:"brand"`
	Price float64          `json:"price"`
	Stock int              `json:"stock"`
	Photo string           `json:"photo"`
}

// PartGroup is the full detail payload: the part itself plus every other part
// sharing its OEM code.
type PartGroup struct {
	Part         models.Part       `json:"part"`
	Alternatives []PartAlternative `json:"alternatives"`
}

func NewPartService(db *gorm.DB) *PartService {
	return &PartService{db: db}
}

func (s *PartService) preloaded() *gorm.DB {
	return s.db.Preload("Brand").Preload("MainCategory").Preload("Category")
}

// ListParts is the admin listing with pagination, sorting and free-text
// search over name and OEM code.
func (s *PartService) ListParts(params utils.PaginationParams) (utils.PaginationResult, error) {
	query := s.preloaded().Model(&models.Part{})

	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(oem) LIKE ?)", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("failed to count parts: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"name", "oem", "price", "stock", "created_at"})
	query = utils.ApplyPagination(query, params)

	var parts []models.Part
	if err := query.Find(&parts).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("failed to fetch parts: %w", err)
	}

	return utils.CreatePaginationResult(parts, total, params), nil
}

// FindCompatible returns every part fitting the given vehicle. Parts without
// a compatibility list can never appear here; the join hides them.
func (s *PartService) FindCompatible(vehicleID uuid.UUID, filter CompatibleFilter) ([]models.Part, error) {
	query := s.preloaded().Model(&models.Part{}).
		Joins("JOIN part_compatible_cars pcc ON pcc.part_id = parts.id").
		Where("pcc.vehicle_id = ?", vehicleID)

	if filter.CategoryID != nil {
		id := *filter.CategoryID
		var cat models.Category
		if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.Part{}, nil
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		if cat.IsRoot() {
			query = query.Where("(main_category_id = ? OR category_id = ?)", id, id)
		} else {
			query = query.Where("category_id = ?", id)
		}
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(oem) LIKE ?)", term, term)
	}

	var parts []models.Part
	if err := query.Order("parts.name ASC").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch compatible parts: %w", err)
	}
	return parts, nil
}

// ActiveCategories lists only the categories under which the given vehicle
// actually has parts, so the storefront never renders an empty aisle. With a
// nil rootID it returns main categories; with a rootID it returns that root's
// subcategories.
func (s *PartService) ActiveCategories(vehicleID uuid.UUID, rootID *uuid.UUID) ([]models.Category, error) {
	parts, err := s.FindCompatible(vehicleID, CompatibleFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		var id uuid.UUID
		if rootID == nil {
			id = p.MainCategoryID
		} else {
			if p.MainCategoryID != *rootID {
				continue
			}
			id = p.CategoryID
		}
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	var categories []models.Category
	if err := s.db.Where("id IN ?", ids).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// SearchParts is the site-wide search box: case-insensitive match on name or
// OEM code.
func (s *PartService) SearchParts(term string) ([]models.Part, error) {
	if strings.TrimSpace(term) == "" {
		return []models.Part{}, nil
	}
	like := "%" + strings.ToLower(term) + "%"
	var parts []models.Part
	if err := s.preloaded().
		Where("LOWER(name) LIKE ? OR LOWER(oem) LIKE ?", like, like).
		Order("name ASC").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to search parts: %w", err)
	}
	return parts, nil
}

// AlternativesFor returns every other part carrying the same OEM code.
func (s *PartService) AlternativesFor(part *models.Part) ([]PartAlternative, error) {
	var siblings []models.Part
	if err := s.db.Preload("Brand").
		Where("oem = ? AND id <> ?", part.OEM, part.ID).
		Order("price ASC").
		Find(&siblings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch alternatives: %w", err)
	}

	alternatives := make([]PartAlternative, 0, len(siblings))
	for _, p := range siblings {
		alternatives = append(alternatives, PartAlternative{
			ID:    p.ID,
			Name:  p.Name,
			OEM:   p.OEM,
			Brand: p.Brand,
			Price: p.Price,
			Stock: p.Stock,
			Photo: p.Photo,
		})
	}
	return alternatives, nil
}

// GetPartGroup loads a part together with its OEM siblings.
func (s *PartService) GetPartGroup(id uuid.UUID) (*PartGroup, error) {
	var part models.Part
	if err := s.preloaded().Preload("CompatibleCars").Preload("CompatibleCars.Brand").
		First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: part", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	alternatives, err := s.AlternativesFor(&part)
	if err != nil {
		return nil, err
	}
	return &PartGroup{Part: part, Alternatives: alternatives}, nil
}

// checkCategoryPair verifies that the main category is a root and the
// subcategory belongs to it. The two may be the same root when the part has
// no finer grouping.
func (s *PartService) checkCategoryPair(mainID, subID uuid.UUID) error {
	var main models.Category
	if err := s.db.First(&main, "id = ?", mainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: main category", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}
	if !main.IsRoot() {
		return fmt.Errorf("%w: main category must be a root category", ErrValidation)
	}

	if subID == mainID {
		return nil
	}

	var sub models.Category
	if err := s.db.First(&sub, "id = ?", subID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}
	if sub.ParentID == nil || *sub.ParentID != mainID {
		return fmt.Errorf("%w: category does not belong to the main category", ErrValidation)
	}
	return nil
}

// checkOEMGroup keeps every part sharing an OEM code in the same main
// category, so alternatives never cross aisles.
func (s *PartService) checkOEMGroup(oem string, mainCategoryID uuid.UUID, excludeID uuid.UUID) error {
	var count int64
	query := s.db.Model(&models.Part{}).
		Where("oem = ? AND main_category_id <> ?", oem, mainCategoryID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: oem group %s is registered under a different main category", ErrConflict, oem)
	}
	return nil
}

func (s *PartService) loadVehicles(ids []uuid.UUID) ([]models.Vehicle, error) {
	if len(ids) == 0 {
		return []models.Vehicle{}, nil
	}
	var vehicles []models.Vehicle
	if err := s.db.Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	if len(vehicles) != len(ids) {
		return nil, fmt.Errorf("%w: one or more compatible vehicles", ErrNotFound)
	}
	return vehicles, nil
}

func (s *PartService) CreatePart(req *CreatePartRequest) (*models.Part, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var brand models.PartBrand
	if err := s.db.First(&brand, "id = ?", req.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: part brand", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if err := s.checkCategoryPair(req.MainCategoryID, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkOEMGroup(req.OEM, req.MainCategoryID, uuid.Nil); err != nil {
		return nil, err
	}

	vehicles, err := s.loadVehicles(req.CompatibleCars)
	if err != nil {
		return nil, err
	}

	part := &models.Part{
		Name:           req.Name,
		OEM:            req.OEM,
		BrandID:        req.BrandID,
		MainCategoryID: req.MainCategoryID,
		CategoryID:     req.CategoryID,
		Price:          req.Price,
		Stock:          req.Stock,
		Photo:          req.Photo,
		Description:    req.Description,
		CompatibleCars: vehicles,
	}
	if err := s.db.Create(part).Error; err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	s.preloaded().First(part, "id = ?", part.ID)
	return part, nil
}

func (s *PartService) UpdatePart(id uuid.UUID, req *UpdatePartRequest) (*models.Part, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var part models.Part
	if err := s.db.First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: part", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	mainID := part.MainCategoryID
	if req.MainCategoryID != nil {
		mainID = *req.MainCategoryID
	}
	subID := part.CategoryID
	if req.CategoryID != nil {
		subID = *req.CategoryID
	}
	oem := part.OEM
	if req.OEM != "" {
		oem = req.OEM
	}

	if req.MainCategoryID != nil || req.CategoryID != nil {
		if err := s.checkCategoryPair(mainID, subID); err != nil {
			return nil, err
		}
	}
	if err := s.checkOEMGroup(oem, mainID, id); err != nil {
		return nil, err
	}
	if req.BrandID != nil {
		var brand models.PartBrand
		if err := s.db.First(&brand, "id = ?", *req.BrandID).Error; err != nil {
			return nil, fmt.Errorf("%w: part brand", ErrNotFound)
		}
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.OEM != "" {
		updates["oem"] = req.OEM
	}
	if req.BrandID != nil {
		updates["brand_id"] = *req.BrandID
	}
	if req.MainCategoryID != nil {
		updates["main_category_id"] = *req.MainCategoryID
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&part).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update part: %w", err)
			}
		}
		if req.CompatibleCars != nil {
			vehicles, err := s.loadVehicles(*req.CompatibleCars)
			if err != nil {
				return err
			}
			if err := tx.Model(&part).Association("CompatibleCars").Replace(vehicles); err != nil {
				return fmt.Errorf("failed to update compatibility list: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.preloaded().Preload("CompatibleCars").First(&part, "id = ?", id)
	return &part, nil
}

func (s *PartService) DeletePart(id uuid.UUID) error {
	result := s.db.Delete(&models.Part{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: part", ErrNotFound)
	}
	return nil
}
