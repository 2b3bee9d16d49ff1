package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

var (
	validate    *validator.Validate
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func init() {
	validate = validator.New()
	configureValidator(validate)

	// gin's binding engine gets the same tag names and custom rules
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configureValidator(engine)
	}
}

func configureValidator(v *validator.Validate) {
	// Use JSON tag names for validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// IsSlug reports whether s is a lowercase, hyphen separated slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateStruct validates a struct and returns a field-level validation error
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return toValidationError(err)
	}
	return nil
}

// BindJSON decodes and validates the request body. Every failure is reported as a
// 400 "Invalid data" AppError carrying per-field details.
func BindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		fields := make([]errors.FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, errors.FieldError{
				Field:   fe.Field(),
				Message: getFieldErrorMessage(fe),
			})
		}
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, []errors.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
		}})
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, []errors.FieldError{{
			Message: "request body is required",
		}})
	}

	return errors.NewFieldValidationError(constants.ErrMsgInvalidData, []errors.FieldError{{
		Message: "request body must be valid JSON",
	}})
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "slug":
		return fmt.Sprintf("%s must contain only lowercase letters, digits and hyphens", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color such as #ef4444", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
