package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

func handle(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "authentication required"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "authentication required"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, domain.ErrTooManyAttempts.Error()},
		{"create requires parent", domain.ErrOnlyParentsCreate, http.StatusForbidden, "only parents can create chores"},
		{"update requires parent", domain.ErrOnlyParentsUpdate, http.StatusForbidden, "only parents can update chore status"},
		{"update requires owner", domain.ErrNotChoreOwner, http.StatusForbidden, "only the assigned parent can update this chore"},
		{"list requires child", domain.ErrOnlyChildrenList, http.StatusForbidden, "only children can view their chores"},
		{"register requires parent", domain.ErrOnlyParentsRegister, http.StatusForbidden, "only parents can register children"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, domain.ErrUserNotFound.Error()},
		{"child not found", domain.ErrChildNotFound, http.StatusNotFound, domain.ErrChildNotFound.Error()},
		{"child profile not found", domain.ErrChildProfileNotFound, http.StatusNotFound, domain.ErrChildProfileNotFound.Error()},
		{"chore not found", domain.ErrChoreNotFound, http.StatusNotFound, domain.ErrChoreNotFound.Error()},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, domain.ErrUserExists.Error()},
		{"duplicate child", domain.ErrChildExists, http.StatusConflict, domain.ErrChildExists.Error()},
		{"invalid status", domain.ErrInvalidStatus, http.StatusUnprocessableEntity, domain.ErrInvalidStatus.Error()},
		{"invalid user data", domain.ErrInvalidUserData, http.StatusBadRequest, domain.ErrInvalidUserData.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := handle(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, code)
			}
			if msg != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("loading chore"), domain.ErrChoreNotFound)
	code, msg := handle(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
	if msg == "" {
		t.Fatal("expected a message")
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := handle(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized || msg != "authentication required" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, msg := handle(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked to client: %q", msg)
	}
}
