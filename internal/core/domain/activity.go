package domain

import "time"

const (
	ActivityChoreCreated  = "chore_created"
	ActivityStatusChanged = "status_changed"
)

// Activity is an audit record of a chore mutation, written asynchronously by
// the activity dispatcher.
type Activity struct {
	ID        string      `json:"id"`
	ChoreID   string      `json:"chore_id"`
	ActorID   string      `json:"actor_id"`
	Action    string      `json:"action"`
	Status    ChoreStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}
