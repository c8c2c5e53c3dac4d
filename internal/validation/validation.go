// Package validation checks decoded request payloads against their
// `validate` struct tags and turns failures into client-facing errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"marketplace/internal/apperror"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator.Validate that reports JSON field names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates payload. Failures are returned as an apperror validation
// error whose message lists every offending field.
func (v *Validator) Struct(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, describe(e))
	}
	return apperror.Validation("Validation failed: " + strings.Join(messages, "; "))
}

func describe(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, e.Param())
	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s failed on the '%s=%s' rule", field, e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s failed on the '%s' rule", field, e.Tag())
	}
}
