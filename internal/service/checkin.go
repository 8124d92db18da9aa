package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/repository"
	"github.com/JonnyWalker81/workwell/backend/internal/wellbeing"
)

type checkinService struct {
	checkinRepo repository.CheckinRepository
	alertRepo   repository.AlertRepository
	opts        options
}

// NewCheckinService creates a new check-in service
func NewCheckinService(checkinRepo repository.CheckinRepository, alertRepo repository.AlertRepository, opts ...Option) CheckinService {
	return &checkinService{
		checkinRepo: checkinRepo,
		alertRepo:   alertRepo,
		opts:        newOptions(opts),
	}
}

func (s *checkinService) CreateCheckin(ctx context.Context, userID string, req *models.CreateCheckinRequest) (*models.Checkin, error) {
	today := s.opts.today()

	date := today
	if req.CheckinDate != nil && !req.CheckinDate.IsZero() {
		date = *req.CheckinDate
	}

	// Dates up to tomorrow are accepted
	if date.After(today.AddDays(1)) {
		return nil, ErrFutureCheckinDate
	}

	_, err := s.checkinRepo.GetByUserAndDate(ctx, userID, date)
	switch {
	case err == nil:
		return nil, ErrDuplicateCheckin
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check for existing checkin: %w", err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var hoursWorked float64
	if req.HoursWorked != nil {
		hoursWorked = *req.HoursWorked
	}
	score := wellbeing.ScoreCheckin(req.StressLevel, hoursWorked, req.HoursSlept)

	checkin := &models.Checkin{
		ID:             id,
		UserID:         userID,
		CheckinDate:    date,
		StressLevel:    req.StressLevel,
		HoursWorked:    hoursWorked,
		HoursSlept:     req.HoursSlept,
		Sentiment:      req.Sentiment,
		Notes:          req.Notes,
		WellbeingScore: &score,
		CreatedAt:      s.opts.now().UTC(),
	}

	created, err := s.checkinRepo.Create(ctx, checkin)
	if errors.Is(err, repository.ErrConflict) {
		// Lost a race with a concurrent submission for the same day
		return nil, ErrDuplicateCheckin
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create checkin: %w", err)
	}

	s.opts.metrics.RecordCheckinCreated(score)
	logger.Ctx(ctx).Info("checkin created",
		logger.String("checkin_id", created.ID),
		logger.String("checkin_date", created.CheckinDate.String()),
		logger.Float64("wellbeing_score", score),
	)

	return created, nil
}

func (s *checkinService) GetCheckin(ctx context.Context, userID, checkinID string) (*models.Checkin, error) {
	checkin, err := s.checkinRepo.GetByID(ctx, checkinID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCheckinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}

	// Verify the check-in belongs to the user
	if checkin.UserID != userID {
		return nil, ErrCheckinNotFound
	}

	return checkin, nil
}

func (s *checkinService) ListCheckins(ctx context.Context, userID string, filter models.CheckinFilter, page, size int) (*models.Page[models.Checkin], error) {
	checkins, err := s.checkinRepo.ListByUser(ctx, userID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}

	p := models.Paginate(checkins, page, size)
	return &p, nil
}

func (s *checkinService) GetStatistics(ctx context.Context, userID string, filter models.CheckinFilter) (*models.Statistics, error) {
	checkins, err := s.checkinRepo.ListByUser(ctx, userID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkins for statistics: %w", err)
	}

	stats := wellbeing.ComputeStatistics(checkins)
	return &stats, nil
}

func (s *checkinService) GetAdvancedAnalytics(ctx context.Context, userID string, filter models.CheckinFilter) (*models.AdvancedAnalytics, error) {
	period := s.opts.window()
	if filter.Start != nil {
		period.Start = *filter.Start
	}
	if filter.End != nil {
		period.End = *filter.End
	}

	var (
		checkins []models.Checkin
		unread   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checkins, err = s.checkinRepo.ListByUser(gctx, userID, &period.Start, &period.End)
		if err != nil {
			return fmt.Errorf("failed to load checkins for analytics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		unread, err = s.alertRepo.CountUnread(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count unread alerts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := wellbeing.ComputeStatistics(checkins)

	return &models.AdvancedAnalytics{
		Period:       period,
		Statistics:   stats,
		Insights:     wellbeing.DeriveInsights(stats),
		Trends:       wellbeing.AnalyzeTrends(stats),
		UnreadAlerts: int(unread),
	}, nil
}
