package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

type stubCredentialStore struct {
	creds   map[string]*domain.Credential
	updates map[int64]string
	findErr error
}

func newStubCredentialStore(creds ...domain.Credential) *stubCredentialStore {
	s := &stubCredentialStore{creds: make(map[string]*domain.Credential), updates: make(map[int64]string)}
	for _, c := range creds {
		c := c
		s.creds[c.Username] = &c
	}
	return s
}

func (s *stubCredentialStore) FindPrivilegedByUsername(_ context.Context, username string) (*domain.Credential, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	c, ok := s.creds[username]
	if !ok || c.RoleID != domain.PrivilegedRoleID {
		return nil, domain.ErrUserNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubCredentialStore) UpdatePasswordHash(_ context.Context, userID int64, hash string) error {
	s.updates[userID] = hash
	for _, c := range s.creds {
		if c.ID == userID {
			c.Password = hash
			c.Hashed = true
		}
	}
	return nil
}

func (s *stubCredentialStore) FindIdentity(_ context.Context, userID int64) (*domain.Identity, error) {
	for _, c := range s.creds {
		if c.ID == userID {
			return &domain.Identity{ID: c.ID, FullName: c.FullName, RoleID: c.RoleID}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func newTestAuthService(store *stubCredentialStore) (*AuthService, *TokenManager) {
	tokens := NewTokenManager("secret", "pos-admin", time.Hour)
	svc := NewAuthService(store, tokens, zerolog.Nop())
	svc.cost = bcrypt.MinCost
	return svc, tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 7, Username: "rina", FullName: "Rina Putri", Password: hashed(t, "s3cret"), Hashed: true, RoleID: 1,
	})
	svc, tokens := newTestAuthService(store)

	token, user, err := svc.Login(context.Background(), "rina", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != 7 || user.Name != "Rina Putri" || user.Role != domain.PrivilegedRoleLabel {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != 7 || claims.Role != domain.PrivilegedRoleLabel {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(store.updates) != 0 {
		t.Fatalf("hashed credential must not be rewritten")
	}
}

func TestAuthService_Login_TrimsUsername(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 7, Username: "rina", Password: hashed(t, "s3cret"), Hashed: true, RoleID: 1,
	})
	svc, _ := newTestAuthService(store)

	if _, _, err := svc.Login(context.Background(), "  rina ", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestAuthService_Login_LegacyPasswordMigratedOnMatch(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 3, Username: "budi", FullName: "Budi", Password: "plain-pass", Hashed: false, RoleID: 1,
	})
	svc, _ := newTestAuthService(store)

	if _, _, err := svc.Login(context.Background(), "budi", "plain-pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	hash, ok := store.updates[3]
	if !ok {
		t.Fatalf("expected legacy password to be migrated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("plain-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !store.creds["budi"].Hashed {
		t.Fatalf("expected credential to be flagged hashed")
	}

	// Second login goes through the bcrypt path only.
	delete(store.updates, 3)
	if _, _, err := svc.Login(context.Background(), "budi", "plain-pass"); err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if len(store.updates) != 0 {
		t.Fatalf("migrated credential rewritten again")
	}
}

func TestAuthService_Login_LegacyWrongPasswordNeverWrites(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 3, Username: "budi", Password: "plain-pass", Hashed: false, RoleID: 1,
	})
	svc, _ := newTestAuthService(store)

	_, _, err := svc.Login(context.Background(), "budi", "guess")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.updates) != 0 {
		t.Fatalf("failed login must not persist anything, got %v", store.updates)
	}
	if store.creds["budi"].Hashed {
		t.Fatalf("credential flagged hashed after failed login")
	}
}

func TestAuthService_Login_LegacyValueLookingLikeHash(t *testing.T) {
	// A 60-character plaintext starting with $2 is still treated as plaintext
	// while the flag says so.
	legacy := "$2a$10$" + "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0"
	store := newStubCredentialStore(domain.Credential{
		ID: 4, Username: "sari", Password: legacy, Hashed: false, RoleID: 1,
	})
	svc, _ := newTestAuthService(store)

	if _, _, err := svc.Login(context.Background(), "sari", legacy); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, ok := store.updates[4]; !ok {
		t.Fatalf("expected migration")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 7, Username: "rina", Password: hashed(t, "goodpass"), Hashed: true, RoleID: 1,
	})
	svc, _ := newTestAuthService(store)

	if _, _, err := svc.Login(context.Background(), "rina", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownAndUnprivilegedLookAlike(t *testing.T) {
	store := newStubCredentialStore(domain.Credential{
		ID: 9, Username: "kasir", Password: hashed(t, "pass"), Hashed: true, RoleID: 3,
	})
	svc, _ := newTestAuthService(store)

	_, _, errUnknown := svc.Login(context.Background(), "ghost", "pass")
	_, _, errCashier := svc.Login(context.Background(), "kasir", "pass")
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errCashier, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v / %v", errUnknown, errCashier)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(newStubCredentialStore())

	for _, tc := range []struct{ username, password string }{{"", "x"}, {"rina", ""}, {"   ", "x"}} {
		_, _, err := svc.Login(context.Background(), tc.username, tc.password)
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", tc, err)
		}
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	store := newStubCredentialStore()
	store.findErr = errors.New("connection refused")
	svc, _ := newTestAuthService(store)

	_, _, err := svc.Login(context.Background(), "rina", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
