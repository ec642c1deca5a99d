package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SetupValidator configures gin's validator: JSON field names in errors,
// decimal fields validated through their string form, and the custom
// subdomain and decimal_gte0 tags.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	RegisterValidations(v)
}

// RegisterValidations installs the custom tags on v
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return identity.ValidateSubdomain(identity.NormalizeSubdomain(fl.Field().String())) == nil
	})
	_ = v.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
}

// ValidationDetails maps validator errors to field -> message. It returns
// nil for errors that are not validation errors.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if _, seen := details[field]; !seen {
			details[field] = getValidationMessage(e)
		}
	}
	return details
}

// FormatValidationErrors formats validation errors into the error envelope
func FormatValidationErrors(err error, requestID string) dto.Response {
	return dto.NewErrorResponseWithDetails(dto.ErrCodeValidation, "Request validation failed", requestID, ValidationDetails(err))
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return "Ensure this field has at least " + e.Param() + " characters"
		}
		return "Ensure this value is greater than or equal to " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Ensure this field has no more than " + e.Param() + " characters"
		}
		return "Ensure this value is less than or equal to " + e.Param()
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "decimal_gte0":
		return "Must be a number greater than or equal to 0"
	case "subdomain":
		return "Subdomain can only contain lowercase letters, numbers and hyphens"
	default:
		return "Invalid value"
	}
}
