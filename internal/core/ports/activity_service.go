package ports

import (
	"context"
	"time"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

// ActivityEvent is the unit of work handed to the activity dispatcher.
type ActivityEvent struct {
	ChoreID   string
	ActorID   string
	Action    string
	Status    domain.ChoreStatus
	Timestamp time.Time
}

// ActivityService persists activity events and serves the feed.
type ActivityService interface {
	Record(ctx context.Context, event ActivityEvent) error
	RecentForActor(ctx context.Context, actorID string, limit int) ([]*domain.Activity, error)
}

// ActivityDispatcher enqueues events for asynchronous recording.
type ActivityDispatcher interface {
	Enqueue(event ActivityEvent)
}
