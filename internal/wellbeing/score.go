// Package wellbeing is the scoring and burnout-risk engine. Everything here
// is pure: callers load check-ins, the engine turns them into scores,
// statistics and predictions, and callers decide what to persist or cache.
package wellbeing

import "math"

const (
	// Wellbeing score construction
	MaxScore            = 100.0
	StressPenaltyPerPt  = 4.44
	OverworkThreshold   = 8.0
	OverworkPenaltyPerH = 2.0
	ShortSleepThreshold = 6.0
	ShortSleepPenalty   = 5.0
	LongSleepThreshold  = 10.0
	LongSleepPenalty    = 2.0
)

// ScoreCheckin derives the 0-100 wellbeing score for a single check-in.
// hoursSlept may be nil when the user did not report sleep.
//
// The result is rounded to two decimal places, which is the precision the
// score is stored at.
func ScoreCheckin(stress int, hoursWorked float64, hoursSlept *float64) float64 {
	score := MaxScore

	score -= float64(stress-1) * StressPenaltyPerPt

	if hoursWorked > OverworkThreshold {
		score -= (hoursWorked - OverworkThreshold) * OverworkPenaltyPerH
	}

	if hoursSlept != nil {
		switch s := *hoursSlept; {
		case s < ShortSleepThreshold:
			score -= (ShortSleepThreshold - s) * ShortSleepPenalty
		case s > LongSleepThreshold:
			score -= (s - LongSleepThreshold) * LongSleepPenalty
		}
	}

	return round2(clamp(score, 0, MaxScore))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
