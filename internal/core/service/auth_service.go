package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
	"github.com/retailnet/pos-admin/internal/pkg/metrics"
)

// AuthService implements admin login.
type AuthService struct {
	repo   ports.CredentialStore
	tokens ports.TokenIssuer
	cost   int
	log    zerolog.Logger
}

func NewAuthService(repo ports.CredentialStore, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost, log: log}
}

// Login authenticates a Super Admin. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.NewValidationError("username and password are required")
	}

	cred, err := s.repo.FindPrivilegedByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("unknown_user").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !cred.Hashed {
		if err := s.migrateLegacy(ctx, cred, password); err != nil {
			return "", nil, err
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user := &domain.SessionUser{ID: cred.ID, Name: cred.FullName, Role: domain.PrivilegedRoleLabel}
	token, err := s.tokens.Issue(*user)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", cred.ID).Msg("admin logged in")
	return token, user, nil
}

// migrateLegacy replaces a plaintext credential with its bcrypt hash, but only
// after the supplied password matched it, so a failed attempt never writes.
func (s *AuthService) migrateLegacy(ctx context.Context, cred *domain.Credential, password string) error {
	if subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), s.cost)
	if err != nil {
		return fmt.Errorf("login: hash legacy password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, cred.ID, string(hash)); err != nil {
		return fmt.Errorf("login: store migrated password: %w", err)
	}

	cred.Password = string(hash)
	cred.Hashed = true
	metrics.LegacyPasswordMigrationsTotal.Inc()
	s.log.Info().Int64("user_id", cred.ID).Msg("legacy password migrated to bcrypt")
	return nil
}
