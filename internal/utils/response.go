// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-service/internal/i18n"
)

// APIResponse is the envelope of every response.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// exposeErrors controls whether diagnostic detail is sent to clients.
var exposeErrors = true

// SetErrorExposure turns diagnostic detail in error responses on or off.
// It is disabled in production.
func SetErrorExposure(enabled bool) {
	exposeErrors = enabled
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string, details interface{}) {
	resp := APIResponse{
		Status:  false,
		Message: message,
	}
	if exposeErrors {
		resp.Error = details
	}
	c.AbortWithStatusJSON(statusCode, resp)
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyAuthRequired)
	}
	ErrorResponse(c, http.StatusUnauthorized, message, nil)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyAdminAccessDenied)
	}
	ErrorResponse(c, http.StatusForbidden, message, nil)
}

func NotFoundResponse(c *gin.Context, resource string) {
	message := i18n.T(GetLangFromContext(c), resource+".not_found")
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, message, nil)
}

// InternalErrorResponse hides err behind a generic message; err is only
// attached when error exposure is enabled.
func InternalErrorResponse(c *gin.Context, err error) {
	var details interface{}
	if err != nil {
		details = err.Error()
	}
	ErrorResponse(c, http.StatusInternalServerError, i18n.T(GetLangFromContext(c), i18n.KeyInternalError), details)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	message := i18n.T(GetLangFromContext(c), i18n.KeyValidationInvalid, "input")
	c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
		Status:  false,
		Message: message,
		Error:   errors,
	})
}

func PaginatedResponse(c *gin.Context, message string, result PaginationResult) {
	SetPaginationHeaders(c, result)
	SuccessResponse(c, message, result)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLanguage()
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
