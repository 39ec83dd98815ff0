package models

import (
	"time"

	"github.com/google/uuid"
)

// Venture lifecycle stages.
const (
	StageDiscovery   = "discovery"
	StageDevelopment = "development"
	StageLaunch      = "launch"
)

// Venture statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Venture is a single venture owned by exactly one user.
type Venture struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stage       string    `json:"stage"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Valuation   *float64  `json:"valuation"`
	Industry    *string   `json:"industry"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Denormalized owner fields populated by list reads.
	OwnerName  string `json:"ownerName,omitempty"`
	OwnerEmail string `json:"ownerEmail,omitempty"`
}
