// internal/services/garage_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/models"
)

// GarageService manages the vehicles a user has saved, so compatibility
// lookups are one tap away on return visits.
type GarageService struct {
	db *gorm.DB
}

func NewGarageService(db *gorm.DB) *GarageService {
	return &GarageService{db: db}
}

func (s *GarageService) loadUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *GarageService) ListGarage(userID uuid.UUID) ([]models.Vehicle, error) {
	if _, err := s.loadUser(userID); err != nil {
		return nil, err
	}

	var vehicles []models.Vehicle
	if err := s.db.Preload("Brand").
		Joins("JOIN user_garage ug ON ug.vehicle_id = cars.id").
		Where("ug.user_id = ?", userID).
		Order("cars.model ASC").
		Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch garage: %w", err)
	}
	return vehicles, nil
}

func (s *GarageService) AddVehicle(userID, vehicleID uuid.UUID) ([]models.Vehicle, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Table("user_garage").
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: vehicle already in garage", ErrConflict)
	}

	if err := s.db.Model(user).Association("Garage").Append(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to add vehicle to garage: %w", err)
	}
	return s.ListGarage(userID)
}

func (s *GarageService) RemoveVehicle(userID, vehicleID uuid.UUID) ([]models.Vehicle, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Table("user_garage").
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: vehicle not in garage", ErrNotFound)
	}

	if err := s.db.Model(user).Association("Garage").
		Delete(&models.Vehicle{BaseModel: models.BaseModel{ID: vehicleID}}); err != nil {
		return nil, fmt.Errorf("failed to remove vehicle from garage: %w", err)
	}
	return s.ListGarage(userID)
}
