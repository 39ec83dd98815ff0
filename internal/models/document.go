package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a user-owned document (pitch deck, agreement, note).
type Document struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Signature records a user signing a document. A user may sign the same
// document more than once; no uniqueness is enforced.
type Signature struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	DocumentID    uuid.UUID `json:"documentId"`
	SignatureData string    `json:"signatureData"`
	SignedAt      time.Time `json:"signedAt"`
}
