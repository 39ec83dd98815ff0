package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user account can hold.
const (
	RoleFounder = "founder"
	RoleAdmin   = "admin"
	RoleUser    = "user"
)

// User represents a platform account.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"isActive"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
