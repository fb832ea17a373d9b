package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate on bound DTOs.
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the default tag-based rule set
func New() *CustomValidator {
	return &CustomValidator{v: validator.New()}
}

// Validate checks the struct's validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
