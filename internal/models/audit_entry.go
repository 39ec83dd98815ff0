package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an append-only record of a user action. Entries are never
// updated or deleted. AuditHash is a digest computed at write time; read
// paths treat it as opaque.
type AuditEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	AuditHash string    `json:"auditHash"`
	CreatedAt time.Time `json:"createdAt"`

	// Actor name, populated by reads that join with users.
	ActorName string `json:"actorName,omitempty"`
}
