package wellbeing

import (
	"strings"
	"testing"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// healthy is a feature set that scores zero in every band.
var healthy = FeatureSet{
	AverageStress:         3,
	AverageHoursWorked:    8,
	AverageHoursSlept:     8,
	AverageWellbeingScore: 85,
	TotalCheckins:         10,
}

func TestScoreRisk_Bands(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FeatureSet)
		want   float64
	}{
		{"healthy", func(f *FeatureSet) {}, 0},

		{"stress 8", func(f *FeatureSet) { f.AverageStress = 8 }, 35},
		{"stress 7.5", func(f *FeatureSet) { f.AverageStress = 7.5 }, 25},
		{"stress 6", func(f *FeatureSet) { f.AverageStress = 6 }, 15},
		{"stress 5", func(f *FeatureSet) { f.AverageStress = 5 }, 5},
		{"stress 4.99", func(f *FeatureSet) { f.AverageStress = 4.99 }, 0},

		{"hours 12", func(f *FeatureSet) { f.AverageHoursWorked = 12 }, 25},
		{"hours 10", func(f *FeatureSet) { f.AverageHoursWorked = 10 }, 18},
		{"hours 9", func(f *FeatureSet) { f.AverageHoursWorked = 9 }, 10},
		{"hours 8.9", func(f *FeatureSet) { f.AverageHoursWorked = 8.9 }, 0},

		{"sleep 4.9", func(f *FeatureSet) { f.AverageHoursSlept = 4.9 }, 20},
		{"sleep 5", func(f *FeatureSet) { f.AverageHoursSlept = 5 }, 15},
		{"sleep 6", func(f *FeatureSet) { f.AverageHoursSlept = 6 }, 8},
		{"sleep 7", func(f *FeatureSet) { f.AverageHoursSlept = 7 }, 0},

		{"wellbeing 39", func(f *FeatureSet) { f.AverageWellbeingScore = 39 }, 15},
		{"wellbeing 40", func(f *FeatureSet) { f.AverageWellbeingScore = 40 }, 10},
		{"wellbeing 60", func(f *FeatureSet) { f.AverageWellbeingScore = 60 }, 5},
		{"wellbeing 70", func(f *FeatureSet) { f.AverageWellbeingScore = 70 }, 0},

		{"worsening", func(f *FeatureSet) { f.Worsening = true }, 5},

		{"every band maxed", func(f *FeatureSet) {
			f.AverageStress = 10
			f.AverageHoursWorked = 16
			f.AverageHoursSlept = 3
			f.AverageWellbeingScore = 10
			f.Worsening = true
		}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthy
			tt.modify(&f)
			if got := ScoreRisk(f); got != tt.want {
				t.Errorf("ScoreRisk = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{24.9, models.RiskLow},
		{25, models.RiskModerate},
		{49.9, models.RiskModerate},
		{50, models.RiskHigh},
		{74.9, models.RiskHigh},
		{75, models.RiskCritical},
		{100, models.RiskCritical},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		level  models.RiskLevel
		prefix string
	}{
		{models.RiskCritical, "Critical burnout risk detected"},
		{models.RiskHigh, "High burnout risk"},
		{models.RiskModerate, "Moderate burnout risk"},
		{models.RiskLow, "Low burnout risk"},
	}

	for _, tt := range tests {
		got := Describe(tt.level, 42)
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Describe(%s) = %q, want prefix %q", tt.level, got, tt.prefix)
		}
		if !strings.Contains(got, "42.0/100") {
			t.Errorf("Describe(%s) = %q, want score formatted as 42.0/100", tt.level, got)
		}
	}
}

func TestRiskFactors(t *testing.T) {
	f := healthy
	f.Worsening = true

	factors := RiskFactors(f)

	want := map[string]float64{
		FactorStress:      3,
		FactorHoursWorked: 8,
		FactorHoursSlept:  8,
		FactorWellbeing:   85,
		FactorWorsening:   100,
	}
	if len(factors) != len(want) {
		t.Fatalf("got %d factors, want %d", len(factors), len(want))
	}
	for k, v := range want {
		if factors[k] != v {
			t.Errorf("factor %s = %v, want %v", k, factors[k], v)
		}
	}
}
