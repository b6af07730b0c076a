package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// ChoreRepository defines persistence operations for chores.
type ChoreRepository interface {
	Save(ctx context.Context, chore *domain.Chore) (*domain.Chore, error)
	FindByID(ctx context.Context, id string) (*domain.Chore, error)
	// FindByChildID returns all chores assigned to the given child, in
	// persistence-defined order.
	FindByChildID(ctx context.Context, childID string) ([]*domain.Chore, error)
}
