package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// CreateChoreInput carries the caller-supplied fields for a new chore. The
// acting identity is never part of the input; it is passed separately after
// being resolved from the verified token.
type CreateChoreInput struct {
	ChildID      string
	Title        string
	Description  string
	RewardAmount int
}

// ChoreService defines the role- and ownership-checked chore operations.
type ChoreService interface {
	CreateChore(ctx context.Context, actor *domain.User, input CreateChoreInput) (*domain.Chore, error)
	UpdateChoreStatus(ctx context.Context, actor *domain.User, choreID string, status domain.ChoreStatus) (*domain.Chore, error)
	ListChoresForCurrentChild(ctx context.Context, actor *domain.User) ([]*domain.Chore, error)
}

// ChildService registers child records under a parent identity.
type ChildService interface {
	RegisterChild(ctx context.Context, actor *domain.User, childUserID string) (*domain.Child, error)
}
