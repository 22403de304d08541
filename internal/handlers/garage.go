// internal/handlers/garage.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type GarageHandler struct {
	garageService *services.GarageService
}

func NewGarageHandler(garageService *services.GarageService) *GarageHandler {
	return &GarageHandler{
		garageService: garageService,
	}
}

// GET /garage
func (h *GarageHandler) ListGarage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicles, err := h.garageService.ListGarage(userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyUserNotFound)
		return
	}
	utils.SuccessResponse(c, vehicles)
}

// POST /garage/:carId
func (h *GarageHandler) AddVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCarNotFound)
		return
	}

	garage, err := h.garageService.AddVehicle(userID, vehicleID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCarNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyGarageAdded),
		"garage":  garage,
	})
}

// DELETE /garage/:carId
func (h *GarageHandler) RemoveVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCarNotFound)
		return
	}

	garage, err := h.garageService.RemoveVehicle(userID, vehicleID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCarNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyGarageRemoved),
		"garage":  garage,
	})
}
