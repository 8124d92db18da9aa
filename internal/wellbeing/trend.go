package wellbeing

import "github.com/JonnyWalker81/workwell/backend/internal/models"

const (
	// TrendWindow is the size of each of the two compared windows
	TrendWindow = 7

	// MinCheckinsForTrend is two full trailing windows
	MinCheckinsForTrend = 2 * TrendWindow

	// WorseningThreshold is the stress-mean increase that must be exceeded
	WorseningThreshold = 1.5
)

// DetectWorsening compares mean stress over the most recent TrendWindow
// check-ins with the TrendWindow check-ins immediately before them. ordered
// must be date-ascending. Fewer than MinCheckinsForTrend check-ins never
// count as worsening.
func DetectWorsening(ordered []models.Checkin) bool {
	n := len(ordered)
	if n < MinCheckinsForTrend {
		return false
	}

	previous := meanStress(ordered[n-MinCheckinsForTrend : n-TrendWindow])
	recent := meanStress(ordered[n-TrendWindow:])

	return recent > previous+WorseningThreshold
}

func meanStress(window []models.Checkin) float64 {
	sum := 0
	for _, c := range window {
		sum += c.StressLevel
	}
	return float64(sum) / float64(len(window))
}
