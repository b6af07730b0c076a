package domain

import (
	"errors"
	"time"
)

var ErrChildNotFound = errors.New("child not found")
var ErrChildProfileNotFound = errors.New("child profile not found")
var ErrChildExists = errors.New("child already registered")
var ErrOnlyParentsRegister = errors.New("only parents can register children")

// Child links exactly one CHILD identity to exactly one parent identity.
// Its lifecycle is independent of chores.
type Child struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ParentID  string    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}
