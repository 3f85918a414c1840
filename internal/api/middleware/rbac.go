package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// RequirePrivileged lets only Super Admin identities through. It must run
// after Auth.
func RequirePrivileged() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return domain.ErrMissingToken
			}
			if !id.IsPrivileged() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
