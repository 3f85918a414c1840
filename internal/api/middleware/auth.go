package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "x-auth-token"

const identityKey = "identity"

// IdentityFinder loads the current state of a token subject.
type IdentityFinder interface {
	FindIdentity(ctx context.Context, userID int64) (*domain.Identity, error)
}

// Auth verifies the session token and re-reads its subject, so role changes
// apply to the very next request. The identity is stored on the context.
func Auth(verifier ports.TokenVerifier, users IdentityFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return domain.ErrMissingToken
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return domain.ErrInvalidToken
			}

			identity, err := users.FindIdentity(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrUnknownSubject
				}
				return fmt.Errorf("authenticate: %w", err)
			}

			c.Set(identityKey, *identity)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity stored by Auth.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
