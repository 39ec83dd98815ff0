package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/models"
)

type AuditRepository interface {
	Append(ctx context.Context, e *models.AuditEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEntry, error)
}

type auditRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func (r *auditRepository) Append(ctx context.Context, e *models.AuditEntry) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_entries (id, user_id, action, details, audit_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Action, e.Details, e.AuditHash, e.CreatedAt,
	)
	if err != nil {
		return storageErr(err, "append audit entry failed")
	}
	return nil
}

func (r *auditRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEntry, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, action, details, audit_hash, created_at
		 FROM audit_entries WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, storageErr(err, "list audit trail failed")
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.AuditHash, &e.CreatedAt); err != nil {
			return nil, storageErr(err, "scan audit entry failed")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list audit trail failed")
	}
	return entries, nil
}
