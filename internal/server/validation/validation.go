// Package validation wraps go-playground/validator for request schemas and
// stored entities. Failures are reported as common.ErrorValidation.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata; validator.Validate is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, describe(fe))
		}
		return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(parts, "; "))
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

// For adapts Struct to a typed validator, as expected by store.WithValidator.
func For[T any]() func(T) error {
	return func(v T) error { return Struct(v) }
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
