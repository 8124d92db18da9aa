package models

import "time"

// RiskLevel is the four-tier burnout classification
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Rank orders levels from Low (0) to Critical (3). Unknown levels rank -1.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether l is one of the four defined levels.
func (l RiskLevel) IsValid() bool {
	return l.Rank() >= 0
}

// AtLeast reports whether l is as severe as other or more.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.Rank() >= other.Rank()
}

// RiskPrediction is the burnout assessment for one user over a trailing
// window. RiskFactors exposes the exact feature values the score was built
// from.
type RiskPrediction struct {
	UserID          string             `json:"user_id"`
	RiskLevel       RiskLevel          `json:"risk_level"`
	RiskScore       float64            `json:"risk_score"`
	Description     string             `json:"description"`
	Recommendations []string           `json:"recommendations"`
	RiskFactors     map[string]float64 `json:"risk_factors"`
}

// BurnoutAlert records a High or Critical prediction so the user can review
// it later.
type BurnoutAlert struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	AlertDate       time.Time  `json:"alert_date"`
	RiskLevel       RiskLevel  `json:"risk_level"`
	RiskScore       float64    `json:"risk_score"`
	Description     string     `json:"description"`
	Recommendations []string   `json:"recommendations"`
	Read            bool       `json:"read"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
