package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-studio/engine/internal/models"
	appErr "github.com/venture-studio/engine/pkg/errors"
)

func TestAudit_ListByUser_NewestFirstAndLimited(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()
	alice := newTestUser(t, repos, "alice@x.com")

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 60; i++ {
		require.NoError(t, repos.Audit.Append(ctx, &models.AuditEntry{
			ID:        uuid.New(),
			UserID:    alice.ID,
			Action:    fmt.Sprintf("action.%02d", i),
			AuditHash: "h",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := repos.Audit.ListByUser(ctx, alice.ID, 50)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "action.59", entries[0].Action)
	assert.Equal(t, "action.10", entries[49].Action)
}

func TestAudit_ListByUser_ScopedToUser(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	alice := newTestUser(t, repos, "alice@x.com")
	bob := newTestUser(t, repos, "bob@x.com")

	require.NoError(t, repos.Audit.Append(ctx, &models.AuditEntry{
		ID: uuid.New(), UserID: bob.ID, Action: "user.login",
		AuditHash: "h", CreatedAt: time.Now().UTC(),
	}))

	entries, err := repos.Audit.ListByUser(ctx, alice.ID, 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUsers_DuplicateEmailIsConflict(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	newTestUser(t, repos, "alice@x.com")

	dup := &models.User{
		ID: uuid.New(), Email: "alice@x.com", PasswordHash: "y",
		FirstName: "Other", LastName: "Person", Role: models.RoleUser,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	err := repos.Users.Create(ctx, dup)
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))

	exists, err := repos.Users.EmailExists(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// exact-match semantics: a different casing is a different email
	exists, err = repos.Users.EmailExists(ctx, "Alice@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
