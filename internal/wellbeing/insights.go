package wellbeing

import "github.com/JonnyWalker81/workwell/backend/internal/models"

const (
	// Stress trend labels
	StressRisingThreshold  = 7.0
	StressFallingThreshold = 4.0

	// Overall wellbeing labels and insights
	WellbeingPositiveThreshold  = 70.0
	WellbeingModerateThreshold  = 50.0
	WellbeingLowThreshold       = 60.0
	WellbeingExcellentThreshold = 80.0
)

// Insight messages derived from statistics
const (
	InsightHighStress    = "Your average stress level is high. Make time for breaks and relaxation"
	InsightLongHours     = "You are working long hours. Watch out for burnout"
	InsightShortSleep    = "Your average sleep is below the recommended 7 hours"
	InsightLowWellbeing  = "Your wellbeing score is low. Consider reaching out for support"
	InsightHighWellbeing = "Your wellbeing score is excellent. Keep it up"
)

// DeriveInsights turns a statistics window into short observations. An empty
// window has nothing to observe and yields an empty slice.
func DeriveInsights(stats models.Statistics) []string {
	insights := []string{}
	if stats.TotalCheckins == 0 {
		return insights
	}

	if stats.AverageStress >= StressAdviceThreshold {
		insights = append(insights, InsightHighStress)
	}
	if stats.AverageHoursWorked >= WorkloadAdviceThreshold {
		insights = append(insights, InsightLongHours)
	}
	if stats.AverageHoursSlept < SleepAdviceThreshold {
		insights = append(insights, InsightShortSleep)
	}

	switch {
	case stats.AverageWellbeingScore < WellbeingLowThreshold:
		insights = append(insights, InsightLowWellbeing)
	case stats.AverageWellbeingScore >= WellbeingExcellentThreshold:
		insights = append(insights, InsightHighWellbeing)
	}

	return insights
}

// AnalyzeTrends labels each averaged dimension of stats.
func AnalyzeTrends(stats models.Statistics) models.TrendAnalysis {
	var t models.TrendAnalysis

	switch {
	case stats.AverageStress >= StressRisingThreshold:
		t.StressTrend = models.TrendRising
	case stats.AverageStress <= StressFallingThreshold:
		t.StressTrend = models.TrendFalling
	default:
		t.StressTrend = models.TrendStable
	}

	t.WorkloadTrend = models.WorkloadNormal
	if stats.AverageHoursWorked >= WorkloadAdviceThreshold {
		t.WorkloadTrend = models.WorkloadHigh
	}

	t.SleepQuality = models.SleepInadequate
	if stats.AverageHoursSlept >= SleepAdviceThreshold {
		t.SleepQuality = models.SleepAdequate
	}

	switch {
	case stats.AverageWellbeingScore >= WellbeingPositiveThreshold:
		t.OverallWellbeing = models.OverallPositive
	case stats.AverageWellbeingScore >= WellbeingModerateThreshold:
		t.OverallWellbeing = models.OverallModerate
	default:
		t.OverallWellbeing = models.OverallConcern
	}

	return t
}
