package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/store"
)

const alertColumns = `id, user_id, alert_date, risk_level, risk_score, description,
	recommendations, is_read, read_at, created_at`

type sqlAlertRepository struct {
	db *store.DB
}

// NewSQLAlertRepository creates a burnout alert repository over a migrated SQL database
func NewSQLAlertRepository(db *store.DB) AlertRepository {
	return &sqlAlertRepository{db: db}
}

func (r *sqlAlertRepository) Create(ctx context.Context, alert *models.BurnoutAlert) (*models.BurnoutAlert, error) {
	recommendations := alert.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	recs, err := json.Marshal(recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	query := r.db.Rebind(`INSERT INTO burnout_alerts (` + alertColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = r.db.ExecContext(ctx, query,
		alert.ID,
		alert.UserID,
		alert.AlertDate.UnixMilli(),
		string(alert.RiskLevel),
		alert.RiskScore,
		alert.Description,
		string(recs),
		alert.Read,
		nullMillis(alert.ReadAt),
		alert.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	return r.GetByID(ctx, alert.ID)
}

func (r *sqlAlertRepository) GetByID(ctx context.Context, id string) (*models.BurnoutAlert, error) {
	query := r.db.Rebind(`SELECT ` + alertColumns + ` FROM burnout_alerts WHERE id = ?`)

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return a, nil
}

func (r *sqlAlertRepository) ListByUser(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error) {
	q := `SELECT ` + alertColumns + ` FROM burnout_alerts WHERE user_id = ?`
	args := []any{userID}
	if read != nil {
		q += ` AND is_read = ?`
		args = append(args, *read)
	}
	q += ` ORDER BY alert_date DESC, created_at DESC`

	return r.list(ctx, r.db.Rebind(q), args...)
}

func (r *sqlAlertRepository) ListByLevel(ctx context.Context, level models.RiskLevel) ([]models.BurnoutAlert, error) {
	query := r.db.Rebind(`SELECT ` + alertColumns + ` FROM burnout_alerts
		WHERE risk_level = ? ORDER BY alert_date DESC`)
	return r.list(ctx, query, string(level))
}

func (r *sqlAlertRepository) list(ctx context.Context, query string, args ...any) ([]models.BurnoutAlert, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := []models.BurnoutAlert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// MarkRead sets read_at only on the first call; later calls return the
// alert unchanged.
func (r *sqlAlertRepository) MarkRead(ctx context.Context, id string, at time.Time) (*models.BurnoutAlert, error) {
	query := r.db.Rebind(`UPDATE burnout_alerts SET is_read = ?, read_at = ? WHERE id = ? AND is_read = ?`)
	if _, err := r.db.ExecContext(ctx, query, true, at.UnixMilli(), id, false); err != nil {
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *sqlAlertRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM burnout_alerts WHERE user_id = ? AND is_read = ?`)
	if err := r.db.QueryRowContext(ctx, query, userID, false).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return n, nil
}

func scanAlert(row rowScanner) (*models.BurnoutAlert, error) {
	var (
		a         models.BurnoutAlert
		alertDate int64
		level     string
		recs      string
		readAt    sql.NullInt64
		createdAt int64
	)

	if err := row.Scan(&a.ID, &a.UserID, &alertDate, &level, &a.RiskScore, &a.Description,
		&recs, &a.Read, &readAt, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(recs), &a.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	a.AlertDate = time.UnixMilli(alertDate).UTC()
	a.RiskLevel = models.RiskLevel(level)
	a.ReadAt = timePtr(readAt)
	a.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &a, nil
}
