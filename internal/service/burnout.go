package service

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/repository"
	"github.com/JonnyWalker81/workwell/backend/internal/wellbeing"
)

type burnoutService struct {
	checkinRepo repository.CheckinRepository
	alertRepo   repository.AlertRepository
	opts        options
}

// NewBurnoutService creates a new burnout prediction service
func NewBurnoutService(checkinRepo repository.CheckinRepository, alertRepo repository.AlertRepository, opts ...Option) BurnoutService {
	return &burnoutService{
		checkinRepo: checkinRepo,
		alertRepo:   alertRepo,
		opts:        newOptions(opts),
	}
}

func (s *burnoutService) PredictForUser(ctx context.Context, userID string) (*models.RiskPrediction, error) {
	return s.predict(ctx, userID)
}

func (s *burnoutService) PredictForSubject(ctx context.Context, subjectID string) (*models.RiskPrediction, error) {
	logger.Ctx(ctx).Info("burnout prediction requested for subject",
		logger.String("subject_id", subjectID),
	)
	return s.predict(ctx, subjectID)
}

func (s *burnoutService) predict(ctx context.Context, userID string) (*models.RiskPrediction, error) {
	period := s.opts.window()

	checkins, err := s.checkinRepo.ListByUser(ctx, userID, &period.Start, &period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkins for prediction: %w", err)
	}

	prediction := wellbeing.PredictRisk(userID, checkins)
	s.opts.metrics.RecordPrediction(string(prediction.RiskLevel))

	if prediction.RiskLevel.AtLeast(models.RiskHigh) {
		s.recordAlert(ctx, &prediction)
	}

	return &prediction, nil
}

// recordAlert stores at most one alert per user per UTC day. Failures are
// logged and never fail the prediction.
func (s *burnoutService) recordAlert(ctx context.Context, p *models.RiskPrediction) {
	log := logger.Ctx(ctx).With(
		logger.String("subject_id", p.UserID),
		logger.String("risk_level", string(p.RiskLevel)),
	)

	now := s.opts.now().UTC()
	today := models.NewDate(now)

	existing, err := s.alertRepo.ListByUser(ctx, p.UserID, nil)
	if err != nil {
		log.Warn("failed to check existing burnout alerts", logger.Err(err))
		return
	}
	for _, a := range existing {
		if models.NewDate(a.AlertDate).Equal(today) {
			return
		}
	}

	id, err := newID()
	if err != nil {
		log.Warn("failed to record burnout alert", logger.Err(err))
		return
	}

	alert := &models.BurnoutAlert{
		ID:              id,
		UserID:          p.UserID,
		AlertDate:       now,
		RiskLevel:       p.RiskLevel,
		RiskScore:       p.RiskScore,
		Description:     p.Description,
		Recommendations: p.Recommendations,
		CreatedAt:       now,
	}
	if _, err := s.alertRepo.Create(ctx, alert); err != nil {
		log.Warn("failed to record burnout alert", logger.Err(err))
		return
	}

	s.opts.metrics.RecordAlert(string(p.RiskLevel))
	log.Info("burnout alert recorded", logger.String("alert_id", id))
}
