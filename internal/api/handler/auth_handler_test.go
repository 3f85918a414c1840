package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.SessionUser, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
	return s.loginFn(ctx, username, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
			if username != "superadmin" || password != "rahasia" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "jwt-token", &domain.SessionUser{ID: 1, Name: "Budi", Role: domain.PrivilegedRoleLabel}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"superadmin","password":"rahasia"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string             `json:"token"`
		User  domain.SessionUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.User.ID != 1 || resp.User.Name != "Budi" || resp.User.Role != "Super Admin" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"kasir","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/auth/login", `{"username":"superadmin"}`)
	err := handler.Login(c)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "password is required") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.SessionUser, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/auth/login", "{")
	if err := handler.Login(c); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
