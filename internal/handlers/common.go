// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

// handleServiceError maps the service error taxonomy onto HTTP responses.
// notFoundKey is the i18n key used when the underlying resource is missing.
func handleServiceError(c *gin.Context, err error, notFoundKey string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundKey)
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}
