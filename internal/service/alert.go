package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/repository"
)

type alertService struct {
	alertRepo repository.AlertRepository
	opts      options
}

// NewAlertService creates a new burnout alert service
func NewAlertService(alertRepo repository.AlertRepository, opts ...Option) AlertService {
	return &alertService{alertRepo: alertRepo, opts: newOptions(opts)}
}

func (s *alertService) ListAlerts(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error) {
	alerts, err := s.alertRepo.ListByUser(ctx, userID, read)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) MarkAlertRead(ctx context.Context, userID, alertID string) (*models.BurnoutAlert, error) {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	if alert.UserID != userID {
		return nil, ErrAlertNotFound
	}
	if alert.Read {
		return alert, nil
	}

	updated, err := s.alertRepo.MarkRead(ctx, alertID, s.opts.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}
	return updated, nil
}
