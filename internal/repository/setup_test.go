package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/venture-studio/engine/internal/migrations"
	"github.com/venture-studio/engine/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// one in-memory database per test; a second pooled connection would
	// see an empty schema
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func setupRepos(t *testing.T) (*Repositories, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return New(db, 5*time.Second), db
}

func newTestUser(t *testing.T, repos *Repositories, email string) *models.User {
	t.Helper()
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleFounder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repos.Users.Create(context.Background(), u))
	return u
}

func newTestVenture(t *testing.T, repos *Repositories, owner uuid.UUID, name, stage, status string) *models.Venture {
	t.Helper()
	now := time.Now().UTC()
	v := &models.Venture{
		ID:        uuid.New(),
		UserID:    owner,
		Name:      name,
		Stage:     stage,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repos.Ventures.Create(context.Background(), v))
	return v
}
