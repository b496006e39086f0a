// Package validator adapts go-playground/validator to Echo's Validator
// interface so request DTO tags are enforced on Bind+Validate.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validator.Validate
}

// New constructs the Echo validator.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as 400 responses.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
