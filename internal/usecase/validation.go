package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail reports whether value is a syntactically valid email address.
func ValidateEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

func normalizeEmail(value string) string {
	return strings.TrimSpace(value)
}
