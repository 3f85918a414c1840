package ports

import (
	"context"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// CredentialStore is the persistence the authentication flow depends on.
type CredentialStore interface {
	// FindPrivilegedByUsername returns the credential of a Super Admin user,
	// or domain.ErrUserNotFound.
	FindPrivilegedByUsername(ctx context.Context, username string) (*domain.Credential, error)
	// UpdatePasswordHash stores a hash in place of a legacy credential and
	// marks it hashed.
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
	// FindIdentity loads the current id, name and role of a user, or
	// domain.ErrUserNotFound.
	FindIdentity(ctx context.Context, userID int64) (*domain.Identity, error)
}

// LoginLimiter throttles failed logins per client key.
type LoginLimiter interface {
	Blocked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
}
