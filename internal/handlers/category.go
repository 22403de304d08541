// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/henryfigma/zirveparca/internal/i18n"
	"github.com/henryfigma/zirveparca/internal/models"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GET /categories
// ?roots=true limits to the top level; ?parent=<id> lists one root's
// children.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	if parent := c.Query("parent"); parent != "" {
		parentID, err := uuid.Parse(parent)
		if err != nil {
			utils.SuccessResponse(c, []models.Category{})
			return
		}
		categories, err := h.categoryService.ListSubcategories(parentID)
		if err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.SuccessResponse(c, categories)
		return
	}

	if c.Query("roots") == "true" {
		categories, err := h.categoryService.ListRootCategories()
		if err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.SuccessResponse(c, categories)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, categories)
}

// GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}
	utils.SuccessResponse(c, category)
}

// POST /categories (admin)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryCreated),
		"category": category,
	})
}

// PUT /categories/:id (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryUpdated),
		"category": category,
	})
}

// DELETE /categories/:id (admin)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		handleServiceError(c, err, i18n.KeyCategoryNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCategoryDeleted),
	})
}
