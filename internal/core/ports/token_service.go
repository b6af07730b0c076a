package ports

import (
	"time"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// TokenService issues and validates signed, time-bounded identity tokens.
// Tokens carry only the subject and expiry; the role is re-fetched from the
// user store at validation time so a role change takes effect on the next
// request rather than at token expiry.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Validate verifies the signature and expiry and returns the subject.
	// Fails with domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Validate(raw string) (string, error)
	// ExpirationWindow exposes the configured token lifetime for the
	// client-visible expires_in field.
	ExpirationWindow() time.Duration
}
