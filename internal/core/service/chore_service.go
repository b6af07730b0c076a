package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// ChoreService enforces role and ownership rules around chore mutations. The
// acting identity is always passed explicitly by the caller after the auth
// middleware resolved it from the verified token; nothing here reads ambient
// state or trusts identities supplied in a request body.
type ChoreService struct {
	chores     ports.ChoreRepository
	children   ports.ChildRepository
	dispatcher ports.ActivityDispatcher
	logger     zerolog.Logger
}

func NewChoreService(chores ports.ChoreRepository, children ports.ChildRepository, dispatcher ports.ActivityDispatcher, logger zerolog.Logger) *ChoreService {
	return &ChoreService{chores: chores, children: children, dispatcher: dispatcher, logger: logger}
}

// CreateChore creates a chore in the PENDING state, owned by the acting
// parent. The resolved child is not required to belong to the acting parent;
// any parent may assign a chore to any registered child.
func (s *ChoreService) CreateChore(ctx context.Context, actor *domain.User, input ports.CreateChoreInput) (*domain.Chore, error) {
	if actor.Role != domain.RoleParent {
		return nil, domain.ErrOnlyParentsCreate
	}

	child, err := s.children.FindByID(ctx, input.ChildID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	chore := &domain.Chore{
		ParentID:     actor.ID,
		ChildID:      child.ID,
		Title:        input.Title,
		Description:  input.Description,
		RewardAmount: input.RewardAmount,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.chores.Save(ctx, chore)
	if err != nil {
		s.logger.Error().Err(err).Str("parent_id", actor.ID).Msg("failed to create chore")
		return nil, err
	}

	s.emit(ports.ActivityEvent{
		ChoreID:   saved.ID,
		ActorID:   actor.ID,
		Action:    domain.ActivityChoreCreated,
		Status:    saved.Status,
		Timestamp: now,
	})

	s.logger.Info().Str("chore_id", saved.ID).Str("parent_id", actor.ID).Str("child_id", saved.ChildID).Msg("chore created")
	return saved, nil
}

// UpdateChoreStatus moves a chore to any of the three defined states. Only
// the parent who created the chore may change it; the transition is
// last-write-wins with no version token.
func (s *ChoreService) UpdateChoreStatus(ctx context.Context, actor *domain.User, choreID string, status domain.ChoreStatus) (*domain.Chore, error) {
	if actor.Role != domain.RoleParent {
		return nil, domain.ErrOnlyParentsUpdate
	}

	chore, err := s.chores.FindByID(ctx, choreID)
	if err != nil {
		return nil, err
	}

	if chore.ParentID != actor.ID {
		return nil, domain.ErrNotChoreOwner
	}

	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	chore.Status = status
	chore.UpdatedAt = time.Now().UTC()

	saved, err := s.chores.Save(ctx, chore)
	if err != nil {
		s.logger.Error().Err(err).Str("chore_id", choreID).Msg("failed to update chore status")
		return nil, err
	}

	s.emit(ports.ActivityEvent{
		ChoreID:   saved.ID,
		ActorID:   actor.ID,
		Action:    domain.ActivityStatusChanged,
		Status:    saved.Status,
		Timestamp: saved.UpdatedAt,
	})

	s.logger.Info().Str("chore_id", saved.ID).Str("status", string(saved.Status)).Msg("chore status updated")
	return saved, nil
}

// ListChoresForCurrentChild returns every chore assigned to the acting
// child's profile, in persistence-defined order.
func (s *ChoreService) ListChoresForCurrentChild(ctx context.Context, actor *domain.User) ([]*domain.Chore, error) {
	if actor.Role != domain.RoleChild {
		return nil, domain.ErrOnlyChildrenList
	}

	child, err := s.children.FindByUserID(ctx, actor.ID)
	if err != nil {
		if err == domain.ErrChildNotFound {
			return nil, domain.ErrChildProfileNotFound
		}
		return nil, err
	}

	return s.chores.FindByChildID(ctx, child.ID)
}

func (s *ChoreService) emit(event ports.ActivityEvent) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Enqueue(event)
}
