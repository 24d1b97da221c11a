// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator validates request structs using `validate` struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that checks every struct field tagged with `validate`.
func New() echo.Validator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
