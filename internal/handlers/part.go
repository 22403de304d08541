// internal/handlers/part.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type PartHandler struct {
	partService *services.PartService
}

func NewPartHandler(partService *services.PartService) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// GET /parts
// Paginated catalog listing with ?search= over name and OEM code.
func (h *PartHandler) ListParts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.partService.ListParts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.PaginatedResponse(c, result)
}

// GET /parts/compatible/:carId
// ?category=<id> narrows to a root or subcategory; ?search= filters by text.
func (h *PartHandler) ListCompatible(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		utils.SuccessResponse(c, []models.Part{})
		return
	}

	filter := services.CompatibleFilter{Search: c.Query("search")}
	if cat := c.Query("category"); cat != "" {
		catID, err := uuid.Parse(cat)
		if err != nil {
			utils.SuccessResponse(c, []models.Part{})
			return
		}
		filter.CategoryID = &catID
	}

	parts, err := h.partService.FindCompatible(vehicleID, filter)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, parts)
}

// GET /parts/categories/:carId
// Categories that actually stock parts for the vehicle. With ?root=<id> the
// answer is that root's subcategories, otherwise main categories.
func (h *PartHandler) ListActiveCategories(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		utils.SuccessResponse(c, []models.Category{})
		return
	}

	var rootID *uuid.UUID
	if root := c.Query("root"); root != "" {
		id, err := uuid.Parse(root)
		if err != nil {
			utils.SuccessResponse(c, []models.Category{})
			return
		}
		rootID = &id
	}

	categories, err := h.partService.ActiveCategories(vehicleID, rootID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, categories)
}

// GET /parts/search?q=
func (h *PartHandler) SearchParts(c *gin.Context) {
	parts, err := h.partService.SearchParts(c.Query("q"))
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, parts)
}

// GET /parts/:id
// Returns the part plus every alternative sharing its OEM code.
func (h *PartHandler) GetPart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyPartNotFound)
		return
	}

	group, err := h.partService.GetPartGroup(id)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPartNotFound)
		return
	}
	utils.SuccessResponse(c, group)
}

// POST /parts (admin)
func (h *PartHandler) CreatePart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	part, err := h.partService.CreatePart(&req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPartNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPartCreated),
		"part":    part,
	})
}

// PUT /parts/:id (admin)
func (h *PartHandler) UpdatePart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyPartNotFound)
		return
	}

	var req services.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	part, err := h.partService.UpdatePart(id, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyPartNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPartUpdated),
		"part":    part,
	})
}

// DELETE /parts/:id (admin)
func (h *PartHandler) DeletePart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyPartNotFound)
		return
	}

	if err := h.partService.DeletePart(id); err != nil {
		handleServiceError(c, err, i18n.KeyPartNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPartDeleted),
	})
}
