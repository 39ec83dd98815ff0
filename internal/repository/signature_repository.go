package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/models"
)

type SignatureRepository interface {
	Create(ctx context.Context, s *models.Signature) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]models.Signature, error)
}

type signatureRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func (r *signatureRepository) Create(ctx context.Context, s *models.Signature) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO signatures (id, user_id, document_id, signature_data, signed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.DocumentID, s.SignatureData, s.SignedAt,
	)
	if err != nil {
		return storageErr(err, "create signature failed")
	}
	return nil
}

func (r *signatureRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]models.Signature, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, document_id, signature_data, signed_at
		 FROM signatures WHERE document_id = ? ORDER BY signed_at DESC`,
		documentID,
	)
	if err != nil {
		return nil, storageErr(err, "list signatures failed")
	}
	defer rows.Close()

	sigs := []models.Signature{}
	for rows.Next() {
		var s models.Signature
		if err := rows.Scan(&s.ID, &s.UserID, &s.DocumentID, &s.SignatureData, &s.SignedAt); err != nil {
			return nil, storageErr(err, "scan signature failed")
		}
		sigs = append(sigs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list signatures failed")
	}
	return sigs, nil
}
