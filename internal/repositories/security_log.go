package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

type SecurityLogWriteRepository struct {
	db *sqlx.DB
}

func NewSecurityLogWriteRepository(db *sqlx.DB) *SecurityLogWriteRepository {
	return &SecurityLogWriteRepository{db: db}
}

// Save inserts a security event row. user_id is nullable for anonymous
// events such as failed logins for unknown accounts.
func (r *SecurityLogWriteRepository) Save(ctx context.Context, event models.SecurityEventDB) error {
	query := `
		INSERT INTO security_events (user_id, action, ip_address, user_agent, success, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{event.UserID, event.Action, event.IPAddress, event.UserAgent, event.Success, event.Details}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{event.UserID, event.Action, event.IPAddress, event.Success},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

type SecurityLogReadRepository struct {
	db *sqlx.DB
}

func NewSecurityLogReadRepository(db *sqlx.DB) *SecurityLogReadRepository {
	return &SecurityLogReadRepository{db: db}
}

// GetFiltered lists security events matching the non-nil filter fields,
// newest first, with limit/offset pagination.
func (r *SecurityLogReadRepository) GetFiltered(ctx context.Context, filter models.SecurityEventFilter) ([]models.SecurityEventDB, error) {
	query := `
		SELECT id, user_id, action, ip_address, user_agent, success, details, created_at
		FROM security_events
		WHERE ($1::BIGINT IS NULL OR user_id = $1)
		  AND ($2::VARCHAR IS NULL OR action = $2)
		  AND ($3::BOOLEAN IS NULL OR success = $3)
		  AND ($4::TIMESTAMPTZ IS NULL OR created_at >= $4)
		  AND ($5::TIMESTAMPTZ IS NULL OR created_at <= $5)
		  AND ($6::VARCHAR IS NULL OR ip_address = $6)
		ORDER BY created_at DESC
		LIMIT $7 OFFSET $8
	`

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	args := []any{filter.UserID, filter.Action, filter.Success, filter.StartDate, filter.EndDate, filter.IPAddress, limit, filter.Offset}

	var events []models.SecurityEventDB
	err := r.db.SelectContext(ctx, &events, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(events),
		"error", err,
	)

	return events, err
}

// GetStats aggregates the audit trail for the admin dashboard.
func (r *SecurityLogReadRepository) GetStats(ctx context.Context) (*models.SecurityEventStats, error) {
	const summaryQuery = `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE NOT success) AS failed,
		       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '24 hours') AS recent
		FROM security_events
	`

	var summary struct {
		Total  int64 `db:"total"`
		Failed int64 `db:"failed"`
		Recent int64 `db:"recent"`
	}
	err := r.db.GetContext(ctx, &summary, summaryQuery)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(summaryQuery), " "),
		"result", summary,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	const actionsQuery = `
		SELECT action, COUNT(*) AS count
		FROM security_events
		GROUP BY action
		ORDER BY count DESC
		LIMIT 10
	`

	var actions []models.ActionCount
	err = r.db.SelectContext(ctx, &actions, actionsQuery)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(actionsQuery), " "),
		"count", len(actions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	stats := &models.SecurityEventStats{
		TotalEvents:    summary.Total,
		FailedEvents:   summary.Failed,
		RecentEvents24: summary.Recent,
		TopActions:     actions,
	}
	if summary.Total > 0 {
		stats.SuccessRate = float64(summary.Total-summary.Failed) / float64(summary.Total) * 100
	}
	return stats, nil
}
