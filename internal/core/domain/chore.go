package domain

import (
	"errors"
	"time"
)

// ChoreStatus represents the lifecycle state of a chore.
type ChoreStatus string

const (
	StatusPending     ChoreStatus = "PENDING"
	StatusCompleted   ChoreStatus = "COMPLETED"
	StatusUncompleted ChoreStatus = "UNCOMPLETED"
)

var ErrChoreNotFound = errors.New("chore not found")
var ErrInvalidStatus = errors.New("invalid status, must be PENDING, COMPLETED, or UNCOMPLETED")

// Authorization failures carry a human-readable reason; the caller is already
// authenticated when these are returned.
var ErrOnlyParentsCreate = errors.New("only parents can create chores")
var ErrOnlyParentsUpdate = errors.New("only parents can update chore status")
var ErrNotChoreOwner = errors.New("only the assigned parent can update this chore")
var ErrOnlyChildrenList = errors.New("only children can view their chores")

// Valid reports whether s is one of the three defined chore states. Any
// transition between valid states is legal; there is no forward-only lock.
func (s ChoreStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusUncompleted:
		return true
	}
	return false
}

// Chore is a task a parent assigns to a child. ParentID never changes after
// creation.
type Chore struct {
	ID           string      `json:"id"`
	ParentID     string      `json:"parent_id"`
	ChildID      string      `json:"child_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	RewardAmount int         `json:"reward_amount"`
	Status       ChoreStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
