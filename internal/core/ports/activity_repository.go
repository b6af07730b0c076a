package ports

import (
	"context"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// ActivityRepository defines persistence operations for the activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// FindByActorID returns the most recent entries for an actor, newest first,
	// capped at limit.
	FindByActorID(ctx context.Context, actorID string, limit int) ([]*domain.Activity, error)
}
