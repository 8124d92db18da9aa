package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/store"
)

const checkinColumns = `id, user_id, checkin_date, stress_level, hours_worked, hours_slept,
	sentiment, notes, wellbeing_score, created_at`

type sqlCheckinRepository struct {
	db *store.DB
}

// NewSQLCheckinRepository creates a check-in repository over a migrated SQL database
func NewSQLCheckinRepository(db *store.DB) CheckinRepository {
	return &sqlCheckinRepository{db: db}
}

func (r *sqlCheckinRepository) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	query := r.db.Rebind(`INSERT INTO checkins (` + checkinColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		checkin.ID,
		checkin.UserID,
		checkin.CheckinDate.String(),
		checkin.StressLevel,
		checkin.HoursWorked,
		nullFloat(checkin.HoursSlept),
		nullString(checkin.Sentiment),
		nullString(checkin.Notes),
		nullFloat(checkin.WellbeingScore),
		checkin.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create checkin: %w", err)
	}

	return r.GetByID(ctx, checkin.ID)
}

func (r *sqlCheckinRepository) GetByID(ctx context.Context, id string) (*models.Checkin, error) {
	query := r.db.Rebind(`SELECT ` + checkinColumns + ` FROM checkins WHERE id = ?`)
	return r.getOne(ctx, query, id)
}

func (r *sqlCheckinRepository) GetByUserAndDate(ctx context.Context, userID string, date models.Date) (*models.Checkin, error) {
	query := r.db.Rebind(`SELECT ` + checkinColumns + ` FROM checkins WHERE user_id = ? AND checkin_date = ?`)
	return r.getOne(ctx, query, userID, date.String())
}

func (r *sqlCheckinRepository) getOne(ctx context.Context, query string, args ...any) (*models.Checkin, error) {
	c, err := scanCheckin(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}
	return c, nil
}

func (r *sqlCheckinRepository) ListByUser(ctx context.Context, userID string, start, end *models.Date) ([]models.Checkin, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{userID}
	)
	if start != nil {
		where = append(where, "checkin_date >= ?")
		args = append(args, start.String())
	}
	if end != nil {
		where = append(where, "checkin_date <= ?")
		args = append(args, end.String())
	}

	query := r.db.Rebind(`SELECT ` + checkinColumns + ` FROM checkins WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY checkin_date DESC`)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	checkins := []models.Checkin{}
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}

	return checkins, nil
}

func (r *sqlCheckinRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM checkins WHERE user_id = ?`)
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count checkins: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckin(row rowScanner) (*models.Checkin, error) {
	var (
		c          models.Checkin
		date       string
		hoursSlept sql.NullFloat64
		sentiment  sql.NullString
		notes      sql.NullString
		score      sql.NullFloat64
		createdAt  int64
	)

	if err := row.Scan(&c.ID, &c.UserID, &date, &c.StressLevel, &c.HoursWorked,
		&hoursSlept, &sentiment, &notes, &score, &createdAt); err != nil {
		return nil, err
	}

	d, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	c.CheckinDate = d
	c.HoursSlept = floatPtr(hoursSlept)
	c.Sentiment = stringPtr(sentiment)
	c.Notes = stringPtr(notes)
	c.WellbeingScore = floatPtr(score)
	c.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &c, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}

// isUniqueViolation recognizes duplicate-key errors from each supported driver
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
