package handler

import (
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireSessionID returns the session set by the session middleware.
func requireSessionID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetSessionID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionRequired
	}

	return id, nil
}

// bindAndValidate binds the body into req and writes the 400 response when it fails.
// ok is false when a response has already been written.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.InvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, validator.FieldErrors(err))
	}

	return true, nil
}
