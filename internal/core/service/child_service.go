package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// ChildService links CHILD identities to the parent registering them.
type ChildService struct {
	children ports.ChildRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewChildService(children ports.ChildRepository, users ports.UserRepository, logger zerolog.Logger) *ChildService {
	return &ChildService{children: children, users: users, logger: logger}
}

// RegisterChild creates a child record owned by the acting parent. The linked
// identity must exist and carry the CHILD role.
func (s *ChildService) RegisterChild(ctx context.Context, actor *domain.User, childUserID string) (*domain.Child, error) {
	if actor.Role != domain.RoleParent {
		return nil, domain.ErrOnlyParentsRegister
	}

	user, err := s.users.FindByID(ctx, childUserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleChild {
		return nil, domain.ErrInvalidUserData
	}

	if _, err := s.children.FindByUserID(ctx, user.ID); err == nil {
		return nil, domain.ErrChildExists
	} else if err != domain.ErrChildNotFound {
		return nil, err
	}

	child := &domain.Child{
		UserID:    user.ID,
		ParentID:  actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.children.Create(ctx, child)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("child_id", created.ID).Str("parent_id", actor.ID).Msg("child registered")
	return created, nil
}
