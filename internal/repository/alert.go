package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/pkg/supabase"
)

const alertsTable = "burnout_alerts"

type alertRepository struct {
	client *supabase.Client
}

// NewAlertRepository creates a burnout alert repository backed by Supabase
func NewAlertRepository(client *supabase.Client) AlertRepository {
	return &alertRepository{client: client}
}

func (r *alertRepository) Create(ctx context.Context, alert *models.BurnoutAlert) (*models.BurnoutAlert, error) {
	recommendations := alert.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	data := map[string]interface{}{
		"id":              alert.ID,
		"user_id":         alert.UserID,
		"alert_date":      alert.AlertDate,
		"risk_level":      alert.RiskLevel,
		"risk_score":      alert.RiskScore,
		"description":     alert.Description,
		"recommendations": recommendations,
		"read":            alert.Read,
		"created_at":      alert.CreatedAt,
	}

	body, err := r.client.Insert(ctx, alertsTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	alerts, err := decodeAlerts(body)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, fmt.Errorf("no alert returned")
	}

	return &alerts[0], nil
}

func (r *alertRepository) GetByID(ctx context.Context, id string) (*models.BurnoutAlert, error) {
	query := map[string]string{
		"id":    fmt.Sprintf("eq.%s", id),
		"limit": "1",
	}

	body, err := r.client.Query(ctx, alertsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	alerts, err := decodeAlerts(body)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, ErrNotFound
	}

	return &alerts[0], nil
}

func (r *alertRepository) ListByUser(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "alert_date.desc",
	}
	if read != nil {
		query["read"] = fmt.Sprintf("eq.%s", strconv.FormatBool(*read))
	}

	body, err := r.client.Query(ctx, alertsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return decodeAlerts(body)
}

func (r *alertRepository) ListByLevel(ctx context.Context, level models.RiskLevel) ([]models.BurnoutAlert, error) {
	query := map[string]string{
		"risk_level": fmt.Sprintf("eq.%s", level),
		"order":      "alert_date.desc",
	}

	body, err := r.client.Query(ctx, alertsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by level: %w", err)
	}

	return decodeAlerts(body)
}

// MarkRead sets read_at only on the first call; later calls return the
// alert unchanged.
func (r *alertRepository) MarkRead(ctx context.Context, id string, at time.Time) (*models.BurnoutAlert, error) {
	query := map[string]string{
		"id":   fmt.Sprintf("eq.%s", id),
		"read": "eq.false",
	}
	data := map[string]interface{}{
		"read":    true,
		"read_at": at.UTC(),
	}

	body, err := r.client.UpdateWhere(ctx, alertsTable, query, data)
	if err != nil {
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}

	alerts, err := decodeAlerts(body)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return r.GetByID(ctx, id)
	}

	return &alerts[0], nil
}

func (r *alertRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"read":    "eq.false",
		"select":  "id",
	}

	body, err := r.client.Query(ctx, alertsTable, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return int64(len(rows)), nil
}

func decodeAlerts(body []byte) ([]models.BurnoutAlert, error) {
	var alerts []models.BurnoutAlert
	if err := json.Unmarshal(body, &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if alerts == nil {
		alerts = []models.BurnoutAlert{}
	}
	return alerts, nil
}
