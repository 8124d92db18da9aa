package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/repository"
)

// mockCheckinRepository is an in-memory CheckinRepository for testing
type mockCheckinRepository struct {
	mu        sync.Mutex
	checkins  map[string]models.Checkin
	listCalls int

	createErr error
	listErr   error
}

func newMockCheckinRepository() *mockCheckinRepository {
	return &mockCheckinRepository{checkins: make(map[string]models.Checkin)}
}

func (m *mockCheckinRepository) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.checkins[checkin.ID] = *checkin
	c := *checkin
	return &c, nil
}

func (m *mockCheckinRepository) GetByID(ctx context.Context, id string) (*models.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.checkins[id]; ok {
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockCheckinRepository) GetByUserAndDate(ctx context.Context, userID string, date models.Date) (*models.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.checkins {
		if c.UserID == userID && c.CheckinDate.Equal(date) {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCheckinRepository) ListByUser(ctx context.Context, userID string, start, end *models.Date) ([]models.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	filter := models.CheckinFilter{Start: start, End: end}
	result := []models.Checkin{}
	for _, c := range m.checkins {
		if c.UserID == userID && filter.Contains(c.CheckinDate) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CheckinDate.After(result[j].CheckinDate) })
	return result, nil
}

func (m *mockCheckinRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	list, err := m.ListByUser(ctx, userID, nil, nil)
	return int64(len(list)), err
}

func (m *mockCheckinRepository) add(c models.Checkin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkins[c.ID] = c
}

// mockAlertRepository is an in-memory AlertRepository for testing
type mockAlertRepository struct {
	mu          sync.Mutex
	alerts      map[string]models.BurnoutAlert
	createCalls int

	createErr error
	listErr   error
	countErr  error
}

func newMockAlertRepository() *mockAlertRepository {
	return &mockAlertRepository{alerts: make(map[string]models.BurnoutAlert)}
}

func (m *mockAlertRepository) Create(ctx context.Context, alert *models.BurnoutAlert) (*models.BurnoutAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.alerts[alert.ID] = *alert
	a := *alert
	return &a, nil
}

func (m *mockAlertRepository) GetByID(ctx context.Context, id string) (*models.BurnoutAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.alerts[id]; ok {
		return &a, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockAlertRepository) ListByUser(ctx context.Context, userID string, read *bool) ([]models.BurnoutAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []models.BurnoutAlert{}
	for _, a := range m.alerts {
		if a.UserID == userID && (read == nil || a.Read == *read) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AlertDate.After(result[j].AlertDate) })
	return result, nil
}

func (m *mockAlertRepository) ListByLevel(ctx context.Context, level models.RiskLevel) ([]models.BurnoutAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.BurnoutAlert{}
	for _, a := range m.alerts {
		if a.RiskLevel == level {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAlertRepository) MarkRead(ctx context.Context, id string, at time.Time) (*models.BurnoutAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.alerts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if !a.Read {
		a.Read = true
		a.ReadAt = &at
		m.alerts[id] = a
	}
	return &a, nil
}

func (m *mockAlertRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	unread := false
	list, err := m.ListByUser(ctx, userID, &unread)
	return int64(len(list)), err
}

// fixedClock pins "now" for date arithmetic
func fixedClock() Clock {
	return func() time.Time { return time.Date(2026, 3, 20, 14, 30, 0, 0, time.UTC) }
}

func f64(v float64) *float64 { return &v }

// seedDays adds one check-in per day ending on end, oldest first, with the
// given stress levels.
func seedDays(repo *mockCheckinRepository, userID string, end models.Date, stress []int, hoursWorked, hoursSlept float64) {
	n := len(stress)
	for i, s := range stress {
		date := end.AddDays(i - n + 1)
		repo.add(models.Checkin{
			ID:             userID + "-" + date.String(),
			UserID:         userID,
			CheckinDate:    date,
			StressLevel:    s,
			HoursWorked:    hoursWorked,
			HoursSlept:     f64(hoursSlept),
			WellbeingScore: f64(40),
		})
	}
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
