package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// bindValid decodes the request body into req and runs the echo validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	return c.Validate(req)
}

// pathID reads the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("id must be a positive integer")
	}
	return id, nil
}
