package repository

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/pkg/database"
)

type StatsRepository interface {
	DashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
	VentureAnalytics(ctx context.Context) (*models.VentureAnalytics, error)
}

type statsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func (r *statsRepository) DashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	var stats models.DashboardStats
	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(1) FROM ventures WHERE user_id = ?`, &stats.Ventures},
		{`SELECT COUNT(1) FROM documents WHERE user_id = ?`, &stats.Documents},
		{`SELECT COUNT(1) FROM signatures WHERE user_id = ?`, &stats.Signatures},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query, userID).Scan(c.dst); err != nil {
			return nil, storageErr(err, "dashboard stats failed")
		}
	}

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT created_at FROM users WHERE id = ?`, userID).Scan(&createdAt)
	if err != nil {
		return nil, storageErr(err, "dashboard stats failed")
	}
	stats.Activity.DaysActive = int(time.Since(createdAt).Hours() / 24)

	return &stats, nil
}

// VentureAnalytics computes platform-wide aggregates. All component queries
// run inside a single transaction on the shared connection, so the stage
// histogram always sums to the total taken in the same snapshot.
func (r *statsRepository) VentureAnalytics(ctx context.Context) (*models.VentureAnalytics, error) {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()

	a := &models.VentureAnalytics{
		StageDistribution:    map[string]int{},
		IndustryDistribution: map[string]int{},
		RecentActivity:       []models.AuditEntry{},
	}

	err := database.WithTx(ctx, r.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var avg sql.NullFloat64
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(1),
			        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			        COALESCE(SUM(valuation), 0),
			        AVG(progress)
			 FROM ventures`,
			models.StatusActive, models.StatusCompleted,
		).Scan(&a.TotalVentures, &a.ActiveVentures, &a.CompletedVentures, &a.TotalValuation, &avg)
		if err != nil {
			return err
		}
		if avg.Valid {
			a.AverageProgress = int(math.Round(avg.Float64))
		}

		if err := scanHistogram(ctx, tx,
			`SELECT stage, COUNT(1) FROM ventures GROUP BY stage`,
			a.StageDistribution); err != nil {
			return err
		}
		if err := scanHistogram(ctx, tx,
			`SELECT COALESCE(industry, 'unspecified'), COUNT(1) FROM ventures GROUP BY COALESCE(industry, 'unspecified')`,
			a.IndustryDistribution); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT a.id, a.user_id, a.action, a.details, a.audit_hash, a.created_at,
			        u.first_name || ' ' || u.last_name
			 FROM audit_entries a
			 JOIN users u ON u.id = a.user_id
			 ORDER BY a.created_at DESC LIMIT 10`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e models.AuditEntry
			if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details,
				&e.AuditHash, &e.CreatedAt, &e.ActorName); err != nil {
				return err
			}
			a.RecentActivity = append(a.RecentActivity, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, storageErr(err, "venture analytics failed")
	}
	return a, nil
}

func scanHistogram(ctx context.Context, tx database.DBTX, query string, dst map[string]int) error {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dst[key] = n
	}
	return rows.Err()
}
