package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-studio/engine/internal/models"
)

func TestDashboardStats_CountsScopedToUser(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	alice := newTestUser(t, repos, "alice@x.com")
	bob := newTestUser(t, repos, "bob@x.com")

	newTestVenture(t, repos, alice.ID, "a1", models.StageDiscovery, models.StatusActive)
	newTestVenture(t, repos, alice.ID, "a2", models.StageLaunch, models.StatusActive)
	newTestVenture(t, repos, bob.ID, "b1", models.StageDiscovery, models.StatusActive)

	now := time.Now().UTC()
	d := &models.Document{
		ID: uuid.New(), UserID: alice.ID, Name: "deck", Type: "pitch",
		Status: "draft", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Documents.Create(ctx, d))
	require.NoError(t, repos.Signatures.Create(ctx, &models.Signature{
		ID: uuid.New(), UserID: alice.ID, DocumentID: d.ID,
		SignatureData: "sig", SignedAt: now,
	}))

	stats, err := repos.Stats.DashboardStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Ventures)
	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, 1, stats.Signatures)
	assert.GreaterOrEqual(t, stats.Activity.DaysActive, 0)
}

func TestVentureAnalytics_HistogramSumsToTotal(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	alice := newTestUser(t, repos, "alice@x.com")
	bob := newTestUser(t, repos, "bob@x.com")

	val := 100000.0
	v := newTestVenture(t, repos, alice.ID, "a1", models.StageDiscovery, models.StatusActive)
	v.Valuation = &val
	v.Progress = 40
	require.NoError(t, repos.Ventures.Update(ctx, v))

	newTestVenture(t, repos, alice.ID, "a2", models.StageDevelopment, models.StatusActive)
	newTestVenture(t, repos, bob.ID, "b1", models.StageDiscovery, models.StatusCompleted)

	a, err := repos.Stats.VentureAnalytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, a.TotalVentures)
	assert.Equal(t, 2, a.ActiveVentures)
	assert.Equal(t, 1, a.CompletedVentures)
	assert.InDelta(t, 100000.0, a.TotalValuation, 0.001)

	sum := 0
	for _, n := range a.StageDistribution {
		sum += n
	}
	assert.Equal(t, a.TotalVentures, sum)
	assert.Equal(t, 2, a.StageDistribution[models.StageDiscovery])
	assert.Equal(t, 1, a.StageDistribution[models.StageDevelopment])

	// ventures created without industry group under the sentinel bucket
	assert.Equal(t, 3, a.IndustryDistribution["unspecified"])
}

func TestVentureAnalytics_RecentActivityJoinsActor(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	alice := newTestUser(t, repos, "alice@x.com")
	require.NoError(t, repos.Audit.Append(ctx, &models.AuditEntry{
		ID: uuid.New(), UserID: alice.ID, Action: "venture.create",
		Details: "venture created", AuditHash: "h", CreatedAt: time.Now().UTC(),
	}))

	a, err := repos.Stats.VentureAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, a.RecentActivity, 1)
	assert.Equal(t, "venture.create", a.RecentActivity[0].Action)
	assert.Equal(t, "Test User", a.RecentActivity[0].ActorName)
}

func TestVentureAnalytics_EmptyPlatform(t *testing.T) {
	repos, _ := setupRepos(t)

	a, err := repos.Stats.VentureAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, a.TotalVentures)
	assert.Equal(t, 0, a.AverageProgress)
	assert.Empty(t, a.StageDistribution)
	assert.Empty(t, a.RecentActivity)
}
