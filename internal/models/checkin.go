package models

import "time"

// Checkin is one user's daily self-report. WellbeingScore is computed once
// when the check-in is created and never recomputed.
type Checkin struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CheckinDate    Date      `json:"checkin_date"`
	StressLevel    int       `json:"stress_level"`
	HoursWorked    float64   `json:"hours_worked"`
	HoursSlept     *float64  `json:"hours_slept,omitempty"`
	Sentiment      *string   `json:"sentiment,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	WellbeingScore *float64  `json:"wellbeing_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateCheckinRequest represents the request body for submitting a check-in.
// CheckinDate defaults to today when omitted.
type CreateCheckinRequest struct {
	CheckinDate *Date    `json:"checkin_date"`
	StressLevel int      `json:"stress_level" binding:"required,min=1,max=10"`
	HoursWorked *float64 `json:"hours_worked" binding:"required,min=0,max=24"`
	HoursSlept  *float64 `json:"hours_slept" binding:"omitempty,min=0,max=24"`
	Sentiment   *string  `json:"sentiment" binding:"omitempty,max=50"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}

// CheckinFilter bounds a listing by check-in date. Both bounds are inclusive
// and a nil bound leaves that side open.
type CheckinFilter struct {
	Start *Date
	End   *Date
}

// Contains reports whether d falls inside the filter's bounds.
func (f CheckinFilter) Contains(d Date) bool {
	if f.Start != nil && d.Before(*f.Start) {
		return false
	}
	if f.End != nil && d.After(*f.End) {
		return false
	}
	return true
}
