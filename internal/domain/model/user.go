package model

import (
	"time"
)

const (
	RoleHost     = "host"
	RoleListener = "listener"
)

// ValidRole reports whether role is one of the account roles accepted at signup.
func ValidRole(role string) bool {
	return role == RoleHost || role == RoleListener
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
