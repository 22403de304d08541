// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// CatalogService answers the hierarchical vehicle queries behind the
// storefront's brand → model → body style → engine funnel, and owns the
// admin CRUD for vehicle brands and vehicle configurations.
type CatalogService struct {
	db *gorm.DB
}

type CreateBrandRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	Logo             string `json:"logo,omitempty"`
	CombineModelBody bool   `json:"combine_model_body,omitempty"`
}

type UpdateBrandRequest struct {
	Name             string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Logo             *string `json:"logo,omitempty"`
	CombineModelBody *bool  `json:"combine_model_body,omitempty"`
}

type CreateVehicleRequest struct {
	BrandID    uuid.UUID `json:"brand_id" validate:"required"`
	Model      string    `json:"model" validate:"required,max=100"`
	Years      string    `json:"years" validate:"required,max=50"`
	ModelPhoto string    `json:"model_photo,omitempty"`
	Engine     string    `json:"engine" validate:"required,max=100"`
	BodyStyle  string    `json:"body_style" validate:"required,body_style"`
	HP         string    `json:"hp,omitempty"`
	KW         string    `json:"kw,omitempty"`
}

type UpdateVehicleRequest struct {
	BrandID    *uuid.UUID `json:"brand_id,omitempty"`
	Model      string     `json:"model,omitempty" validate:"omitempty,max=100"`
	Years      string     `json:"years,omitempty" validate:"omitempty,max=50"`
	ModelPhoto *string    `json:"model_photo,omitempty"`
	Engine     string     `json:"engine,omitempty" validate:"omitempty,max=100"`
	BodyStyle  string     `json:"body_style,omitempty" validate:"omitempty,body_style"`
	HP         *string    `json:"hp,omitempty"`
	KW         *string    `json:"kw,omitempty"`
}

// ModelSummary is one entry of the model picker: a distinct model name with a
// representative photo taken from the lowest-id matching vehicle.
type ModelSummary struct {
	DisplayName string `json:"display_name"`
	Photo       string `json:"photo"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListBrands returns every vehicle brand, alphabetically by name.
func (s *CatalogService) ListBrands() ([]models.VehicleBrand, error) {
	var brands []models.VehicleBrand
	if err := s.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}
	return brands, nil
}

func (s *CatalogService) CreateBrand(req *CreateBrandRequest) (*models.VehicleBrand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.VehicleBrand
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: brand %q", ErrConflict, req.Name)
	}

	brand := &models.VehicleBrand{
		Name:             req.Name,
		Logo:             req.Logo,
		CombineModelBody: req.CombineModelBody,
	}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return brand, nil
}

func (s *CatalogService) UpdateBrand(id uuid.UUID, req *UpdateBrandRequest) (*models.VehicleBrand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var brand models.VehicleBrand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: brand", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" && req.Name != brand.Name {
		var existing models.VehicleBrand
		if err := s.db.Where("name = ? AND id <> ?", req.Name, id).First(&existing).Error; err == nil {
			return nil, fmt.Errorf("%w: brand %q", ErrConflict, req.Name)
		}
		updates["name"] = req.Name
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.CombineModelBody != nil {
		updates["combine_model_body"] = *req.CombineModelBody
	}

	if err := s.db.Model(&brand).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return &brand, nil
}

func (s *CatalogService) DeleteBrand(id uuid.UUID) error {
	result := s.db.Delete(&models.VehicleBrand{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: brand", ErrNotFound)
	}
	return nil
}

// ListVehicles returns the whole vehicle catalog ordered by model name.
func (s *CatalogService) ListVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Preload("Brand").Order("model ASC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	return vehicles, nil
}

// ListVehiclesByBrand returns every configuration of one brand. An unknown
// brand id yields an empty list, never an error.
func (s *CatalogService) ListVehiclesByBrand(brandID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Preload("Brand").
		Where("brand_id = ?", brandID).
		Order("model ASC, id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	return vehicles, nil
}

// ListModels returns the distinct model names of a brand, each with the photo
// of the lowest-id vehicle carrying that name. Brands flagged with
// CombineModelBody get "Model BodyStyle" display names, one entry per
// model/body pair.
func (s *CatalogService) ListModels(brandID uuid.UUID) ([]ModelSummary, error) {
	var brand models.VehicleBrand
	if err := s.db.First(&brand, "id = ?", brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ModelSummary{}, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	vehicles, err := s.ListVehiclesByBrand(brandID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	summaries := make([]ModelSummary, 0, len(vehicles))
	for _, v := range vehicles {
		name := v.Model
		if brand.CombineModelBody {
			name = v.Model + " " + string(v.BodyStyle)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		summaries = append(summaries, ModelSummary{DisplayName: name, Photo: v.ModelPhoto})
	}
	return summaries, nil
}

// ListEngineVariants returns every configuration matching the
// brand+model+body-style triple.
func (s *CatalogService) ListEngineVariants(brandID uuid.UUID, model string, bodyStyle models.BodyStyle) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Preload("Brand").
		Where("brand_id = ? AND model = ? AND body_style = ?", brandID, model, bodyStyle).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch engine variants: %w", err)
	}
	return vehicles, nil
}

func (s *CatalogService) GetVehicle(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Preload("Brand").First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &vehicle, nil
}

func (s *CatalogService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var brand models.VehicleBrand
	if err := s.db.First(&brand, "id = ?", req.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: brand", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	vehicle := &models.Vehicle{
		BrandID:    req.BrandID,
		Model:      req.Model,
		Years:      req.Years,
		ModelPhoto: req.ModelPhoto,
		Engine:     req.Engine,
		BodyStyle:  models.BodyStyle(req.BodyStyle),
		HP:         req.HP,
		KW:         req.KW,
	}
	if err := s.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.db.Preload("Brand").First(vehicle, "id = ?", vehicle.ID)
	return vehicle, nil
}

func (s *CatalogService) UpdateVehicle(id uuid.UUID, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.BrandID != nil {
		var brand models.VehicleBrand
		if err := s.db.First(&brand, "id = ?", *req.BrandID).Error; err != nil {
			return nil, fmt.Errorf("%w: brand", ErrNotFound)
		}
		updates["brand_id"] = *req.BrandID
	}
	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Years != "" {
		updates["years"] = req.Years
	}
	if req.ModelPhoto != nil {
		updates["model_photo"] = *req.ModelPhoto
	}
	if req.Engine != "" {
		updates["engine"] = req.Engine
	}
	if req.BodyStyle != "" {
		updates["body_style"] = req.BodyStyle
	}
	if req.HP != nil {
		updates["hp"] = *req.HP
	}
	if req.KW != nil {
		updates["kw"] = *req.KW
	}

	if err := s.db.Model(&vehicle).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.db.Preload("Brand").First(&vehicle, "id = ?", id)
	return &vehicle, nil
}

func (s *CatalogService) DeleteVehicle(id uuid.UUID) error {
	result := s.db.Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: vehicle", ErrNotFound)
	}
	return nil
}
