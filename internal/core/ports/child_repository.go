package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// ChildRepository defines persistence operations for child records.
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) (*domain.Child, error)
	FindByID(ctx context.Context, id string) (*domain.Child, error)
	// FindByUserID resolves the child record linked to a CHILD identity.
	FindByUserID(ctx context.Context, userID string) (*domain.Child, error)
}
