package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/middleware"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

type stubAuthService struct {
	user    *domain.User
	err     error
	lastIn  ports.SignupInput
	loaded  int
	loadErr error
}

func (s *stubAuthService) Signup(_ context.Context, input ports.SignupInput) (*domain.User, error) {
	s.lastIn = input
	return s.user, s.err
}

func (s *stubAuthService) Authenticate(_ context.Context, _, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) Users(_ context.Context) ([]*domain.User, error) {
	return []*domain.User{s.user}, s.err
}

func (s *stubAuthService) UserByID(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) LoadUsersFromFile(_ context.Context, _ string) (int, error) {
	return s.loaded, s.loadErr
}

type stubTokenService struct {
	token string
	err   error
}

func (s *stubTokenService) Issue(_ *domain.User) (string, error) { return s.token, s.err }

func (s *stubTokenService) Validate(_ string) (string, error) { return "", domain.ErrTokenInvalid }

func (s *stubTokenService) ExpirationWindow() time.Duration { return time.Hour }

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	auth := &stubAuthService{user: &domain.User{ID: "user_1", Username: "mom", Role: domain.RoleParent}}
	h := NewAuthHandler(auth, &stubTokenService{}, "users.json")

	c, rec := newJSONContext(http.MethodPost, "/auth/signup",
		`{"username":"mom","password":"secret","role":"PARENT"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if auth.lastIn.Username != "mom" || auth.lastIn.Role != domain.RoleParent {
		t.Fatalf("unexpected signup input: %+v", auth.lastIn)
	}
}

func TestAuthHandler_Signup_InvalidRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenService{}, "users.json")

	c, _ := newJSONContext(http.MethodPost, "/auth/signup",
		`{"username":"mom","password":"secret","role":"ADMIN"}`)
	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_MissingPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenService{}, "users.json")

	c, _ := newJSONContext(http.MethodPost, "/auth/signup", `{"username":"mom","role":"PARENT"}`)
	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &domain.User{ID: "user_1", Username: "mom", Role: domain.RoleParent}
	h := NewAuthHandler(&stubAuthService{user: user}, &stubTokenService{token: "signed-token"}, "users.json")

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username":"mom","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("unexpected expires_in %d", resp.ExpiresIn)
	}
	if resp.User == nil || resp.User.ID != "user_1" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, &stubTokenService{}, "users.json")

	c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"username":"mom","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for the central handler, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenService{}, "users.json")

	c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "user_1", Username: "mom"})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "user_1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubTokenService{}, "users.json")

	c, _ := newJSONContext(http.MethodGet, "/auth/me", "")
	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_LoadUsers(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loaded: 4}, &stubTokenService{}, "users.json")

	c, rec := newJSONContext(http.MethodPost, "/auth/setup/load-users", "")
	if err := h.LoadUsers(c); err != nil {
		t.Fatalf("LoadUsers returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp loadUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Loaded != 4 || resp.Status != "success" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
