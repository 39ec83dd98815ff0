package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/models"
	appErr "github.com/venture-studio/engine/pkg/errors"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *models.Document) error
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Document, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error)
}

type documentRepository struct {
	db      *sql.DB
	timeout time.Duration
}

const documentColumns = `id, user_id, name, type, content, status, created_at, updated_at`

func (r *documentRepository) Create(ctx context.Context, d *models.Document) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (`+documentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.Name, d.Type, d.Content, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return storageErr(err, "create document failed")
	}
	return nil
}

func (r *documentRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Document, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents
		 WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, storageErr(err, "list documents failed")
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Type, &d.Content,
			&d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, storageErr(err, "scan document failed")
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list documents failed")
	}
	return docs, nil
}

func (r *documentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var d models.Document
	err := r.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Type, &d.Content, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, appErr.New(appErr.CodeNotFound, "document not found")
	}
	if err != nil {
		return nil, storageErr(err, "get document failed")
	}
	return &d, nil
}
