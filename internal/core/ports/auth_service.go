package ports

import (
	"context"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.SessionUser, error)
}

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID int64
	Name   string
	Role   string
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(user domain.SessionUser) (string, error)
}

// TokenVerifier checks a session token. Every failure is domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*SessionClaims, error)
}
