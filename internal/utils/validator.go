// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("body_style", validateBodyStyle)
	validate.RegisterValidation("oem_code", validateOEMCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBodyStyle(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Sedan", "Hatchback", "SUV", "Station Wagon":
		return true
	}
	return false
}

// OEM codes are manufacturer-neutral identifiers: alphanumerics with optional
// dots, dashes and spaces, 2-100 characters.
func validateOEMCode(fl validator.FieldLevel) bool {
	oem := fl.Field().String()
	if len(oem) < 2 || len(oem) > 100 {
		return false
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9][a-zA-Z0-9. -]*$`, oem)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
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
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "body_style":
		return "Body style must be one of Sedan, Hatchback, SUV, Station Wagon"
	case "oem_code":
		return "OEM code must be 2-100 characters of letters, digits, dots, dashes or spaces"
	default:
		return e.Field() + " is invalid"
	}
}
