package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/middleware"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

type stubChoreService struct {
	chore      *domain.Chore
	chores     []*domain.Chore
	err        error
	lastInput  ports.CreateChoreInput
	lastStatus domain.ChoreStatus
	lastID     string
}

func (s *stubChoreService) CreateChore(_ context.Context, _ *domain.User, input ports.CreateChoreInput) (*domain.Chore, error) {
	s.lastInput = input
	return s.chore, s.err
}

func (s *stubChoreService) UpdateChoreStatus(_ context.Context, _ *domain.User, choreID string, status domain.ChoreStatus) (*domain.Chore, error) {
	s.lastID = choreID
	s.lastStatus = status
	return s.chore, s.err
}

func (s *stubChoreService) ListChoresForCurrentChild(_ context.Context, _ *domain.User) ([]*domain.Chore, error) {
	return s.chores, s.err
}

func TestChoreHandler_Create(t *testing.T) {
	svc := &stubChoreService{chore: &domain.Chore{ID: "chore_1", Status: domain.StatusPending}}
	h := NewChoreHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/v1/chores",
		`{"child_id":"child_1","title":"dishes","reward_amount":5}`)
	c.Set(middleware.UserContextKey, &domain.User{ID: "parent_1", Role: domain.RoleParent})

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.ChildID != "child_1" || svc.lastInput.RewardAmount != 5 {
		t.Fatalf("unexpected input: %+v", svc.lastInput)
	}
}

func TestChoreHandler_Create_MissingTitle(t *testing.T) {
	h := NewChoreHandler(&stubChoreService{})

	c, _ := newJSONContext(http.MethodPost, "/v1/chores", `{"child_id":"child_1"}`)
	c.Set(middleware.UserContextKey, &domain.User{ID: "parent_1", Role: domain.RoleParent})

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestChoreHandler_Create_ForbiddenPassesThrough(t *testing.T) {
	h := NewChoreHandler(&stubChoreService{err: domain.ErrOnlyParentsCreate})

	c, _ := newJSONContext(http.MethodPost, "/v1/chores",
		`{"child_id":"child_1","title":"dishes"}`)
	c.Set(middleware.UserContextKey, &domain.User{ID: "child_user", Role: domain.RoleChild})

	err := h.Create(c)
	if !errors.Is(err, domain.ErrOnlyParentsCreate) {
		t.Fatalf("expected ErrOnlyParentsCreate for the central handler, got %v", err)
	}
}

func TestChoreHandler_Create_NoIdentity(t *testing.T) {
	h := NewChoreHandler(&stubChoreService{})

	c, _ := newJSONContext(http.MethodPost, "/v1/chores",
		`{"child_id":"child_1","title":"dishes"}`)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestChoreHandler_UpdateStatus(t *testing.T) {
	svc := &stubChoreService{chore: &domain.Chore{ID: "chore_1", Status: domain.StatusCompleted}}
	h := NewChoreHandler(svc)

	c, rec := newJSONContext(http.MethodPatch, "/v1/chores/chore_1/status",
		`{"status":"COMPLETED"}`)
	c.SetParamNames("id")
	c.SetParamValues("chore_1")
	c.Set(middleware.UserContextKey, &domain.User{ID: "parent_1", Role: domain.RoleParent})

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != "chore_1" || svc.lastStatus != domain.StatusCompleted {
		t.Fatalf("unexpected call: id=%q status=%q", svc.lastID, svc.lastStatus)
	}
}

func TestChoreHandler_UpdateStatus_InvalidValuePassesThrough(t *testing.T) {
	h := NewChoreHandler(&stubChoreService{err: domain.ErrInvalidStatus})

	c, _ := newJSONContext(http.MethodPatch, "/v1/chores/chore_1/status",
		`{"status":"DONE"}`)
	c.SetParamNames("id")
	c.SetParamValues("chore_1")
	c.Set(middleware.UserContextKey, &domain.User{ID: "parent_1", Role: domain.RoleParent})

	err := h.UpdateStatus(c)
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for the central handler, got %v", err)
	}
}

func TestChoreHandler_ListMine(t *testing.T) {
	svc := &stubChoreService{chores: []*domain.Chore{
		{ID: "chore_1", Status: domain.StatusPending},
		{ID: "chore_2", Status: domain.StatusCompleted},
	}}
	h := NewChoreHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/v1/chores/mine", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "child_user", Role: domain.RoleChild})

	if err := h.ListMine(c); err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}

	var got []*domain.Chore
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 chores, got %d", len(got))
	}
}

func TestChoreHandler_ListMine_EmptyIsArray(t *testing.T) {
	h := NewChoreHandler(&stubChoreService{})

	c, rec := newJSONContext(http.MethodGet, "/v1/chores/mine", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "child_user", Role: domain.RoleChild})

	if err := h.ListMine(c); err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}

	body := rec.Body.String()
	if body == "" || body[0] != '[' {
		t.Fatalf("expected a JSON array body, got %q", body)
	}
}
