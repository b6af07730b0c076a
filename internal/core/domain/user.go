package domain

import (
	"errors"
	"time"
)

const (
	RoleParent = "PARENT"
	RoleChild  = "CHILD"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidUserData = errors.New("invalid user data")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models an authenticated identity. Role is fixed at signup and never
// mutated afterwards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleParent || role == RoleChild
}
