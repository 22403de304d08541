// internal/handlers/part_brand.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type PartBrandHandler struct {
	partBrandService *services.PartBrandService
}

func NewPartBrandHandler(partBrandService *services.PartBrandService) *PartBrandHandler {
	return &PartBrandHandler{
		partBrandService: partBrandService,
	}
}

// GET /part-brands
func (h *PartBrandHandler) ListPartBrands(c *gin.Context) {
	brands, err := h.partBrandService.ListPartBrands()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, brands)
}

// POST /part-brands (admin)
func (h *PartBrandHandler) CreatePartBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreatePartBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.partBrandService.CreatePartBrand(&req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPartBrandNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyPartBrandCreated),
		"part_brand": brand,
	})
}

// PUT /part-brands/:id (admin)
func (h *PartBrandHandler) UpdatePartBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyPartBrandNotFound)
		return
	}

	var req services.UpdatePartBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	brand, err := h.partBrandService.UpdatePartBrand(id, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPartBrandNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyPartBrandUpdated),
		"part_brand": brand,
	})
}

// DELETE /part-brands/:id (admin)
func (h *PartBrandHandler) DeletePartBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyPartBrandNotFound)
		return
	}

	if err := h.partBrandService.DeletePartBrand(id); err != nil {
		handleServiceError(c, err, i18n.KeyPartBrandNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPartBrandDeleted),
	})
}
