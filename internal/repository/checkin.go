package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/pkg/supabase"
)

const checkinsTable = "checkins"

type checkinRepository struct {
	client *supabase.Client
}

// NewCheckinRepository creates a check-in repository backed by Supabase
func NewCheckinRepository(client *supabase.Client) CheckinRepository {
	return &checkinRepository{client: client}
}

func (r *checkinRepository) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	data := map[string]interface{}{
		"id":              checkin.ID,
		"user_id":         checkin.UserID,
		"checkin_date":    checkin.CheckinDate,
		"stress_level":    checkin.StressLevel,
		"hours_worked":    checkin.HoursWorked,
		"hours_slept":     checkin.HoursSlept,
		"sentiment":       checkin.Sentiment,
		"notes":           checkin.Notes,
		"wellbeing_score": checkin.WellbeingScore,
		"created_at":      checkin.CreatedAt,
	}

	body, err := r.client.Insert(ctx, checkinsTable, data)
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.IsConflict() {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create checkin: %w", err)
	}

	checkins, err := decodeCheckins(body)
	if err != nil {
		return nil, err
	}
	if len(checkins) == 0 {
		return nil, fmt.Errorf("no checkin returned")
	}

	return &checkins[0], nil
}

func (r *checkinRepository) GetByID(ctx context.Context, id string) (*models.Checkin, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}
	return r.getOne(ctx, query)
}

func (r *checkinRepository) GetByUserAndDate(ctx context.Context, userID string, date models.Date) (*models.Checkin, error) {
	query := map[string]string{
		"user_id":      fmt.Sprintf("eq.%s", userID),
		"checkin_date": fmt.Sprintf("eq.%s", date),
	}
	return r.getOne(ctx, query)
}

func (r *checkinRepository) getOne(ctx context.Context, query map[string]string) (*models.Checkin, error) {
	query["limit"] = "1"

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}

	checkins, err := decodeCheckins(body)
	if err != nil {
		return nil, err
	}
	if len(checkins) == 0 {
		return nil, ErrNotFound
	}

	return &checkins[0], nil
}

func (r *checkinRepository) ListByUser(ctx context.Context, userID string, start, end *models.Date) ([]models.Checkin, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "checkin_date.desc",
	}

	switch {
	case start != nil && end != nil:
		query["and"] = fmt.Sprintf("(checkin_date.gte.%s,checkin_date.lte.%s)", start, end)
	case start != nil:
		query["checkin_date"] = fmt.Sprintf("gte.%s", start)
	case end != nil:
		query["checkin_date"] = fmt.Sprintf("lte.%s", end)
	}

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}

	return decodeCheckins(body)
}

// CountByUser returns total check-ins for a user
func (r *checkinRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "id",
	}

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count checkins: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return int64(len(rows)), nil
}

func decodeCheckins(body []byte) ([]models.Checkin, error) {
	var checkins []models.Checkin
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if checkins == nil {
		checkins = []models.Checkin{}
	}
	return checkins, nil
}
