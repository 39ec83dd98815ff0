package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/models"
	appErr "github.com/venture-studio/engine/pkg/errors"
)

type VentureRepository interface {
	Create(ctx context.Context, v *models.Venture) error
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Venture, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Venture, error)
	Update(ctx context.Context, v *models.Venture) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ventureRepository struct {
	db      *sql.DB
	timeout time.Duration
}

const ventureColumns = `id, user_id, name, description, stage, status, progress, valuation, industry, is_public, created_at, updated_at`

func (r *ventureRepository) Create(ctx context.Context, v *models.Venture) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ventures (`+ventureColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.UserID, v.Name, v.Description, v.Stage, v.Status,
		v.Progress, v.Valuation, v.Industry, v.IsPublic, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return storageErr(err, "create venture failed")
	}
	return nil
}

// ListByOwner returns the full owned set, newest first, each row joined
// with the owner's name and email. No pagination.
func (r *ventureRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Venture, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.user_id, v.name, v.description, v.stage, v.status,
		        v.progress, v.valuation, v.industry, v.is_public, v.created_at, v.updated_at,
		        u.first_name || ' ' || u.last_name, u.email
		 FROM ventures v
		 JOIN users u ON u.id = v.user_id
		 WHERE v.user_id = ?
		 ORDER BY v.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, storageErr(err, "list ventures failed")
	}
	defer rows.Close()

	ventures := []models.Venture{}
	for rows.Next() {
		var v models.Venture
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.Description, &v.Stage, &v.Status,
			&v.Progress, &v.Valuation, &v.Industry, &v.IsPublic, &v.CreatedAt, &v.UpdatedAt,
			&v.OwnerName, &v.OwnerEmail); err != nil {
			return nil, storageErr(err, "scan venture failed")
		}
		ventures = append(ventures, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list ventures failed")
	}
	return ventures, nil
}

func (r *ventureRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Venture, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var v models.Venture
	err := r.db.QueryRowContext(ctx,
		`SELECT `+ventureColumns+` FROM ventures WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&v.ID, &v.UserID, &v.Name, &v.Description, &v.Stage, &v.Status,
		&v.Progress, &v.Valuation, &v.Industry, &v.IsPublic, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, appErr.New(appErr.CodeNotFound, "venture not found")
	}
	if err != nil {
		return nil, storageErr(err, "get venture failed")
	}
	return &v, nil
}

// Update overwrites the full row. Ownership is part of the predicate, so a
// caller can never update another user's venture.
func (r *ventureRepository) Update(ctx context.Context, v *models.Venture) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE ventures
		 SET name = ?, description = ?, stage = ?, status = ?, progress = ?,
		     valuation = ?, industry = ?, is_public = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		v.Name, v.Description, v.Stage, v.Status, v.Progress,
		v.Valuation, v.Industry, v.IsPublic, v.UpdatedAt,
		v.ID, v.UserID,
	)
	if err != nil {
		return storageErr(err, "update venture failed")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(err, "update venture failed")
	}
	if n == 0 {
		return appErr.New(appErr.CodeNotFound, "venture not found")
	}
	return nil
}

func (r *ventureRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM ventures WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return storageErr(err, "delete venture failed")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(err, "delete venture failed")
	}
	if n == 0 {
		return appErr.New(appErr.CodeNotFound, "venture not found")
	}
	return nil
}
