package wellbeing

import (
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

var day0 = models.NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

// series builds one check-in per day starting at day0 with the given
// stress levels and otherwise healthy values.
func series(stress ...int) []models.Checkin {
	out := make([]models.Checkin, len(stress))
	for i, s := range stress {
		out[i] = models.Checkin{
			ID:          string(rune('a' + i%26)),
			UserID:      "user-1",
			CheckinDate: day0.AddDays(i),
			StressLevel: s,
			HoursWorked: 8,
			HoursSlept:  ptr(8),
		}
	}
	return out
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// highStressMonth mirrors 30 days of a heavily overloaded employee.
func highStressMonth() []models.Checkin {
	out := make([]models.Checkin, 30)
	for i := range out {
		out[i] = models.Checkin{
			UserID:         "user-high",
			CheckinDate:    day0.AddDays(i),
			StressLevel:    8 + i%3,
			HoursWorked:    float64(11 + i%2),
			HoursSlept:     ptr(5),
			WellbeingScore: ptr(40),
		}
	}
	return out
}

// lowStressMonth mirrors 30 days of a well-balanced employee.
func lowStressMonth() []models.Checkin {
	out := make([]models.Checkin, 30)
	for i := range out {
		out[i] = models.Checkin{
			UserID:         "user-low",
			CheckinDate:    day0.AddDays(i),
			StressLevel:    2 + i%2,
			HoursWorked:    float64(7 + i%2),
			HoursSlept:     ptr(8),
			WellbeingScore: ptr(85),
		}
	}
	return out
}

func reversed(in []models.Checkin) []models.Checkin {
	out := make([]models.Checkin, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}
	return out
}
