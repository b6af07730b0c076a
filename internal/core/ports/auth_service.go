package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// SignupInput carries the fields required to create a new identity.
type SignupInput struct {
	Username  string
	Password  string
	Email     string
	Role      string
	AvatarURL string
}

// AuthService defines signup, credential verification, and user lookups.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Authenticate verifies a username/password pair. It fails with
	// domain.ErrInvalidCredentials regardless of whether the username exists.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Users(ctx context.Context) ([]*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	// LoadUsersFromFile bulk-loads users from a JSON array file, hashing each
	// password before persisting. The first invalid entry aborts the load.
	LoadUsersFromFile(ctx context.Context, path string) (int, error)
}

// LoginLimiter throttles repeated failed login attempts per username.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted for the username.
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Clear(ctx context.Context, username string) error
}
