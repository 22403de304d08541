// internal/handlers/vehicle.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type VehicleHandler struct {
	catalogService *services.CatalogService
}

func NewVehicleHandler(catalogService *services.CatalogService) *VehicleHandler {
	return &VehicleHandler{
		catalogService: catalogService,
	}
}

// GET /cars
// Optional filters walk the funnel: ?brand=<id>, then &model=&body_style= for
// engine variants. Malformed or unknown ids fall through to an empty list.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	brandParam := c.Query("brand")
	if brandParam == "" {
		vehicles, err := h.catalogService.ListVehicles()
		if err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.SuccessResponse(c, vehicles)
		return
	}

	brandID, err := uuid.Parse(brandParam)
	if err != nil {
		utils.SuccessResponse(c, []models.Vehicle{})
		return
	}

	model := c.Query("model")
	bodyStyle := c.Query("body_style")
	if model != "" && bodyStyle != "" {
		vehicles, err := h.catalogService.ListEngineVariants(brandID, model, models.BodyStyle(bodyStyle))
		if err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.SuccessResponse(c, vehicles)
		return
	}

	vehicles, err := h.catalogService.ListVehiclesByBrand(brandID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, vehicles)
}

// GET /cars/models?brand=<id>
func (h *VehicleHandler) ListModels(c *gin.Context) {
	brandID, err := uuid.Parse(c.Query("brand"))
	if err != nil {
		utils.SuccessResponse(c, []services.ModelSummary{})
		return
	}

	summaries, err := h.catalogService.ListModels(brandID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, summaries)
}

// GET /cars/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCarNotFound)
		return
	}

	vehicle, err := h.catalogService.GetVehicle(id)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCarNotFound)
		return
	}
	utils.SuccessResponse(c, vehicle)
}

// POST /cars (admin)
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	vehicle, err := h.catalogService.CreateVehicle(&req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyBrandNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCarCreated),
		"car":     vehicle,
	})
}

// PUT /cars/:id (admin)
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCarNotFound)
		return
	}

	var req services.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	vehicle, err := h.catalogService.UpdateVehicle(id, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCarNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCarUpdated),
		"car":     vehicle,
	})
}

// DELETE /cars/:id (admin)
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCarNotFound)
		return
	}

	if err := h.catalogService.DeleteVehicle(id); err != nil {
		handleServiceError(c, err, i18n.KeyCarNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCarDeleted),
	})
}
