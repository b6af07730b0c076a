package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/api/metrics"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// UserContextKey is the echo context key under which the authenticated
// *domain.User is stored. Exactly one lookup happens per request.
const UserContextKey = "auth_user"

// Auth gates protected routes: it extracts the bearer token, validates it,
// resolves the subject to a full user, and binds the typed identity into the
// request context. Every failure path returns the same 401 body; the real
// reason is only logged and counted.
func Auth(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(log, c, "missing_header", nil)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(log, c, "malformed_header", nil)
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				reason := "token_invalid"
				if err == domain.ErrTokenExpired {
					reason = "token_expired"
				}
				return reject(log, c, reason, err)
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				// Identity deleted after the token was issued.
				return reject(log, c, "subject_not_found", err)
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func reject(log zerolog.Logger, c echo.Context, reason string, err error) error {
	metrics.TokenValidationsTotal.WithLabelValues(reason).Inc()
	log.Debug().Err(err).
		Str("reason", reason).
		Str("path", c.Path()).
		Msg("request rejected by auth filter")
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

// CurrentUser returns the identity bound by Auth, or nil when the middleware
// did not run on this route.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}
