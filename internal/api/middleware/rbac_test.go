package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

func invokeRBAC(mw echo.MiddlewareFunc, user *domain.User) (bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/activity", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func TestRequireRole_Allowed(t *testing.T) {
	mw := RequireRole(domain.RoleParent)
	called, err := invokeRBAC(mw, &domain.User{ID: "user_1", Role: domain.RoleParent})
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	mw := RequireRole(domain.RoleParent)
	called, err := invokeRBAC(mw, &domain.User{ID: "user_2", Role: domain.RoleChild})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if called {
		t.Fatal("handler must not run")
	}
}

func TestRequireRole_NoUserBound(t *testing.T) {
	mw := RequireRole(domain.RoleParent)
	called, err := invokeRBAC(mw, nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if called {
		t.Fatal("handler must not run")
	}
}
