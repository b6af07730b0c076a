package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
}
