package wellbeing

import "github.com/JonnyWalker81/workwell/backend/internal/models"

// Trigger thresholds for recommendations
const (
	StressAdviceThreshold   = 7.0
	WorkloadAdviceThreshold = 10.0
	SleepAdviceThreshold    = 7.0
)

var (
	stressAdvice = []string{
		"Practice stress-management techniques such as meditation, deep breathing or short mindful breaks",
		"Consider talking to a mental health professional",
	}
	workloadAdvice = []string{
		"Reduce your working hours and set clear boundaries between work and personal time",
		"Delegate tasks where possible and prioritize what is essential",
	}
	sleepAdvice = []string{
		"Improve your sleep hygiene: keep regular hours and avoid screens before bed",
		"Aim for at least 7-8 hours of sleep per night",
	}
	worseningAdvice  = "Your indicators are getting worse. Take a few days off if you can"
	escalationAdvice = []string{
		"Schedule a conversation with HR about adjusting your workload",
		"Consider taking vacation or medical leave if needed",
	}
	healthyAdvice = []string{
		"Keep up your current healthy habits",
		"Keep balancing work and personal life",
	}

	// KeepCheckingInAdvice is the only recommendation for an empty window.
	KeepCheckingInAdvice = "Keep submitting your daily check-ins for a more accurate analysis"
)

// Recommend builds the ordered advice list for f at the given level: stress,
// workload, sleep, trend, escalation, and the healthy pair only when
// nothing else applied.
func Recommend(f FeatureSet, level models.RiskLevel) []string {
	recs := make([]string, 0, 9)

	if f.AverageStress >= StressAdviceThreshold {
		recs = append(recs, stressAdvice...)
	}
	if f.AverageHoursWorked >= WorkloadAdviceThreshold {
		recs = append(recs, workloadAdvice...)
	}
	if f.AverageHoursSlept < SleepAdviceThreshold {
		recs = append(recs, sleepAdvice...)
	}
	if f.Worsening {
		recs = append(recs, worseningAdvice)
	}
	if level.AtLeast(models.RiskHigh) {
		recs = append(recs, escalationAdvice...)
	}

	if len(recs) == 0 {
		recs = append(recs, healthyAdvice...)
	}

	return recs
}
