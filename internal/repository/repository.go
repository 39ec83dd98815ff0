// Package repository implements the data access layer over a single
// SQLite handle. Every statement binds its arguments as parameters;
// nothing here ever interpolates user input into SQL text.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	appErr "github.com/venture-studio/engine/pkg/errors"
)

// Repositories bundles the per-aggregate repositories over one shared handle.
type Repositories struct {
	Users      UserRepository
	Ventures   VentureRepository
	Documents  DocumentRepository
	Signatures SignatureRepository
	Audit      AuditRepository
	Stats      StatsRepository
}

// New wires all repositories over db. Every storage call is bounded by
// queryTimeout so a contended database file cannot hang a request.
func New(db *sql.DB, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		Users:      &userRepository{db: db, timeout: queryTimeout},
		Ventures:   &ventureRepository{db: db, timeout: queryTimeout},
		Documents:  &documentRepository{db: db, timeout: queryTimeout},
		Signatures: &signatureRepository{db: db, timeout: queryTimeout},
		Audit:      &auditRepository{db: db, timeout: queryTimeout},
		Stats:      &statsRepository{db: db, timeout: queryTimeout},
	}
}

func bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// storageErr translates driver failures into the error taxonomy. Deadline
// expiry gets its own code so handlers can report a storage timeout rather
// than a generic failure.
func storageErr(err error, msg string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return appErr.Wrap(err, appErr.CodeDeadline, "storage timeout")
	case isUniqueViolation(err):
		return appErr.Wrap(err, appErr.CodeConflict, msg)
	default:
		return appErr.Wrap(err, appErr.CodeInternal, msg)
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
