// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/catalog-service/internal/i18n"
	"github.com/javajoker/catalog-service/internal/services"
	"github.com/javajoker/catalog-service/internal/utils"
)

// respondError maps a service error onto the response envelope. resource
// selects the "<resource>.not_found" message.
func respondError(c *gin.Context, err error, resource string) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrValidation):
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductSlugTaken))
	default:
		utils.InternalErrorResponse(c, err)
	}
}

func parseUUIDParam(c *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyInvalidID, resource), nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into req and writes the 400 response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyInvalidID, "user"), nil)
		return uuid.Nil, false
	}
	return userID, true
}
