// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/catalog-service/internal/models"
)

var validate *validator.Validate

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("product_status", validateProductStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSlug accepts lowercase words joined by single hyphens.
func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// validateProductStatus accepts only statuses a product may be moved to.
func validateProductStatus(fl validator.FieldLevel) bool {
	return models.ProductStatus(fl.Field().String()).IsAssignable()
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "uuid":
		return e.Field() + " must be a valid UUID"
	case "slug":
		return e.Field() + " must contain only lowercase letters, numbers and single hyphens"
	case "product_status":
		return e.Field() + " must be one of: draft, published"
	default:
		return e.Field() + " is invalid"
	}
}
