package service

import (
	"context"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// CheckinService defines the interface for check-in business logic
type CheckinService interface {
	CreateCheckin(ctx context.Context, userID string, req *models.CreateCheckinRequest) (*models.Checkin, error)
	GetCheckin(ctx context.Context, userID, checkinID string) (*models.Checkin, error)
	ListCheckins(ctx context.Context, userID string, filter models.CheckinFilter, page, size int) (*models.Page[models.Checkin], error)
	GetStatistics(ctx context.Context, userID string, filter models.CheckinFilter) (*models.Statistics, error)
	GetAdvancedAnalytics(ctx context.Context, userID string, filter models.CheckinFilter) (*models.AdvancedAnalytics, error)
}

// BurnoutService defines the interface for burnout risk prediction
type BurnoutService interface {
	// PredictForUser assesses the caller and may record an alert
	PredictForUser(ctx context.Context, userID string) (*models.RiskPrediction, error)
	// PredictForSubject is the administrative variant for any user
	PredictForSubject(ctx context.Context, subjectID string) (*models.RiskPrediction, error)
}

// AlertService defines the interface for burnout alert business logic
type AlertService interface {
	ListAlerts(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error)
	MarkAlertRead(ctx context.Context, userID, alertID string) (*models.BurnoutAlert, error)
}
