package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/middleware"
	"github.com/cornerstone/chores-api/internal/core/domain"
)

// currentUser extracts the typed identity bound by the auth middleware. A nil
// user on a protected route means the route was wired without the middleware;
// fail closed with 401 rather than proceeding unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
