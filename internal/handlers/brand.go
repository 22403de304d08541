// internal/handlers/brand.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type BrandHandler struct {
	catalogService *services.CatalogService
}

func NewBrandHandler(catalogService *services.CatalogService) *BrandHandler {
	return &BrandHandler{
		catalogService: catalogService,
	}
}

// GET /brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, brands)
}

// POST /brands (admin)
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.catalogService.CreateBrand(&req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyBrandNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandCreated),
		"brand":   brand,
	})
}

// PUT /brands/:id (admin)
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyBrandNotFound)
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	brand, err := h.catalogService.UpdateBrand(id, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyBrandNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandUpdated),
		"brand":   brand,
	})
}

// DELETE /brands/:id (admin)
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyBrandNotFound)
		return
	}

	if err := h.catalogService.DeleteBrand(id); err != nil {
		handleServiceError(c, err, i18n.KeyBrandNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandDeleted),
	})
}
