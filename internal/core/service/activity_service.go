package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

const defaultFeedLimit = 50

// ActivityService persists chore activity events and serves the feed.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Record(ctx context.Context, event ports.ActivityEvent) error {
	activity := &domain.Activity{
		ChoreID:   event.ChoreID,
		ActorID:   event.ActorID,
		Action:    event.Action,
		Status:    event.Status,
		Timestamp: event.Timestamp,
	}
	if err := s.repo.Insert(ctx, activity); err != nil {
		s.logger.Error().Err(err).Str("chore_id", event.ChoreID).Msg("failed to record activity")
		return err
	}
	return nil
}

func (s *ActivityService) RecentForActor(ctx context.Context, actorID string, limit int) ([]*domain.Activity, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	return s.repo.FindByActorID(ctx, actorID, limit)
}
