package handler

import (
	domainerrors "dealroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into dst and runs the struct
// validators, mapping failures onto the error taxonomy.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}
	if err := c.Validate(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
