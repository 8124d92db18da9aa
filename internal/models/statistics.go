package models

// Statistics summarizes a window of check-ins
type Statistics struct {
	TotalCheckins         int            `json:"total_checkins"`
	AverageStress         float64        `json:"average_stress"`
	AverageHoursWorked    float64        `json:"average_hours_worked"`
	AverageHoursSlept     float64        `json:"average_hours_slept"`
	AverageWellbeingScore float64        `json:"average_wellbeing_score"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
}

// Trend direction and quality labels used by TrendAnalysis
const (
	TrendRising     = "rising"
	TrendFalling    = "falling"
	TrendStable     = "stable"
	WorkloadHigh    = "high"
	WorkloadNormal  = "normal"
	SleepAdequate   = "adequate"
	SleepInadequate = "inadequate"
	OverallPositive = "positive"
	OverallModerate = "moderate"
	OverallConcern  = "concerning"
)

// TrendAnalysis labels each averaged dimension of a Statistics window
type TrendAnalysis struct {
	StressTrend      string `json:"stress_trend"`
	WorkloadTrend    string `json:"workload_trend"`
	SleepQuality     string `json:"sleep_quality"`
	OverallWellbeing string `json:"overall_wellbeing"`
}

// AnalysisPeriod is the inclusive date range an analysis covers
type AnalysisPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// AdvancedAnalytics is the v2 analytics payload
type AdvancedAnalytics struct {
	Period       AnalysisPeriod `json:"period"`
	Statistics   Statistics     `json:"statistics"`
	Insights     []string       `json:"insights"`
	Trends       TrendAnalysis  `json:"trends"`
	UnreadAlerts int            `json:"unread_alerts"`
}
