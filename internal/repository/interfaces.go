package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert violates a uniqueness rule
var ErrConflict = errors.New("record already exists")

// CheckinRepository defines the interface for check-in data access
type CheckinRepository interface {
	Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error)
	GetByID(ctx context.Context, id string) (*models.Checkin, error)
	GetByUserAndDate(ctx context.Context, userID string, date models.Date) (*models.Checkin, error)
	// ListByUser returns check-ins newest first. Bounds are inclusive and
	// a nil bound leaves that side open.
	ListByUser(ctx context.Context, userID string, start, end *models.Date) ([]models.Checkin, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// AlertRepository defines the interface for burnout alert data access
type AlertRepository interface {
	Create(ctx context.Context, alert *models.BurnoutAlert) (*models.BurnoutAlert, error)
	GetByID(ctx context.Context, id string) (*models.BurnoutAlert, error)
	// ListByUser returns alerts newest first, optionally filtered by read state
	ListByUser(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error)
	ListByLevel(ctx context.Context, level models.RiskLevel) ([]models.BurnoutAlert, error)
	MarkRead(ctx context.Context, id string, at time.Time) (*models.BurnoutAlert, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}
