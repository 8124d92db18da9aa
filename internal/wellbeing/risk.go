package wellbeing

import (
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// Classification thresholds on the total risk score
const (
	CriticalThreshold = 75.0
	HighThreshold     = 50.0
	ModerateThreshold = 25.0
)

// Trend band contribution
const WorseningPoints = 5.0

// band is one row of a scoring table: the first row whose test passes wins.
type band struct {
	test   func(float64) bool
	points float64
}

func atLeast(limit float64) func(float64) bool {
	return func(v float64) bool { return v >= limit }
}

func below(limit float64) func(float64) bool {
	return func(v float64) bool { return v < limit }
}

var (
	stressBands = []band{
		{atLeast(8), 35},
		{atLeast(7), 25},
		{atLeast(6), 15},
		{atLeast(5), 5},
	}
	workloadBands = []band{
		{atLeast(12), 25},
		{atLeast(10), 18},
		{atLeast(9), 10},
	}
	sleepBands = []band{
		{below(5), 20},
		{below(6), 15},
		{below(7), 8},
	}
	wellbeingBands = []band{
		{below(40), 15},
		{below(60), 10},
		{below(70), 5},
	}
)

func bandPoints(bands []band, v float64) float64 {
	for _, b := range bands {
		if b.test(v) {
			return b.points
		}
	}
	return 0
}

// ScoreRisk adds up the stress, workload, sleep, wellbeing and trend bands
// for f and clamps the total to [0, 100].
func ScoreRisk(f FeatureSet) float64 {
	total := bandPoints(stressBands, f.AverageStress) +
		bandPoints(workloadBands, f.AverageHoursWorked) +
		bandPoints(sleepBands, f.AverageHoursSlept) +
		bandPoints(wellbeingBands, f.AverageWellbeingScore)

	if f.Worsening {
		total += WorseningPoints
	}

	return clamp(total, 0, MaxScore)
}

// Classify maps a risk score to its level.
func Classify(score float64) models.RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return models.RiskCritical
	case score >= HighThreshold:
		return models.RiskHigh
	case score >= ModerateThreshold:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// InsufficientDataDescription is the description of a prediction made from
// no check-ins.
const InsufficientDataDescription = "Insufficient data for analysis"

// Describe renders the human-readable summary for a scored prediction.
func Describe(level models.RiskLevel, score float64) string {
	switch level {
	case models.RiskCritical:
		return fmt.Sprintf("Critical burnout risk detected (score: %.1f/100). Immediate action recommended.", score)
	case models.RiskHigh:
		return fmt.Sprintf("High burnout risk (score: %.1f/100). Close monitoring needed.", score)
	case models.RiskModerate:
		return fmt.Sprintf("Moderate burnout risk (score: %.1f/100). Watch for warning signs.", score)
	default:
		return fmt.Sprintf("Low burnout risk (score: %.1f/100). Keep up your healthy habits.", score)
	}
}

// Risk factor labels exposed on a prediction
const (
	FactorStress      = "average_stress"
	FactorHoursWorked = "average_hours_worked"
	FactorHoursSlept  = "average_hours_slept"
	FactorWellbeing   = "average_wellbeing_score"
	FactorWorsening   = "worsening_trend"
)

// RiskFactors exposes the features a score was computed from.
func RiskFactors(f FeatureSet) map[string]float64 {
	worsening := 0.0
	if f.Worsening {
		worsening = 100
	}
	return map[string]float64{
		FactorStress:      f.AverageStress,
		FactorHoursWorked: f.AverageHoursWorked,
		FactorHoursSlept:  f.AverageHoursSlept,
		FactorWellbeing:   f.AverageWellbeingScore,
		FactorWorsening:   worsening,
	}
}
