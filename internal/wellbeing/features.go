package wellbeing

import (
	"sort"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

const (
	// Substituted when no check-in in the window reports the optional value
	BaselineHoursSlept = 7.0
	BaselineWellbeing  = 50.0
)

// FeatureSet is the summary of a check-in window that both statistics and
// risk scoring are built from.
type FeatureSet struct {
	AverageStress         float64
	AverageHoursWorked    float64
	AverageHoursSlept     float64
	AverageWellbeingScore float64
	TotalCheckins         int
	Worsening             bool
}

// InsufficientData reports whether the set was built from no check-ins.
func (f FeatureSet) InsufficientData() bool {
	return f.TotalCheckins == 0
}

// Aggregate reduces checkins into a FeatureSet. Input order does not matter;
// a date-ascending copy is taken before trend detection. An empty input
// returns the zero FeatureSet, for which InsufficientData is true.
func Aggregate(checkins []models.Checkin) FeatureSet {
	if len(checkins) == 0 {
		return FeatureSet{}
	}

	var (
		stressSum, workedSum     float64
		sleptSum, wellbeingSum   float64
		sleptCount, wellbeingCnt int
	)

	for _, c := range checkins {
		stressSum += float64(c.StressLevel)
		workedSum += c.HoursWorked
		if c.HoursSlept != nil {
			sleptSum += *c.HoursSlept
			sleptCount++
		}
		if c.WellbeingScore != nil {
			wellbeingSum += *c.WellbeingScore
			wellbeingCnt++
		}
	}

	n := float64(len(checkins))
	features := FeatureSet{
		AverageStress:         stressSum / n,
		AverageHoursWorked:    workedSum / n,
		AverageHoursSlept:     BaselineHoursSlept,
		AverageWellbeingScore: BaselineWellbeing,
		TotalCheckins:         len(checkins),
		Worsening:             DetectWorsening(sortedByDate(checkins)),
	}
	if sleptCount > 0 {
		features.AverageHoursSlept = sleptSum / float64(sleptCount)
	}
	if wellbeingCnt > 0 {
		features.AverageWellbeingScore = wellbeingSum / float64(wellbeingCnt)
	}

	return features
}

// sortedByDate returns a date-ascending copy of checkins.
func sortedByDate(checkins []models.Checkin) []models.Checkin {
	ordered := make([]models.Checkin, len(checkins))
	copy(ordered, checkins)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CheckinDate.Before(ordered[j].CheckinDate)
	})
	return ordered
}
