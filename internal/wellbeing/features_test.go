package wellbeing

import (
	"math"
	"testing"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

func TestAggregate_Empty(t *testing.T) {
	f := Aggregate(nil)
	if !f.InsufficientData() {
		t.Error("empty input should report insufficient data")
	}
	if f != (FeatureSet{}) {
		t.Errorf("expected zero FeatureSet, got %+v", f)
	}
}

func TestAggregate_Averages(t *testing.T) {
	checkins := []models.Checkin{
		{CheckinDate: day0, StressLevel: 2, HoursWorked: 6, HoursSlept: ptr(8), WellbeingScore: ptr(90)},
		{CheckinDate: day0.AddDays(1), StressLevel: 4, HoursWorked: 8, HoursSlept: nil, WellbeingScore: ptr(70)},
		{CheckinDate: day0.AddDays(2), StressLevel: 9, HoursWorked: 13, HoursSlept: ptr(5), WellbeingScore: nil},
	}

	f := Aggregate(checkins)

	if f.TotalCheckins != 3 {
		t.Errorf("TotalCheckins = %d, want 3", f.TotalCheckins)
	}
	if math.Abs(f.AverageStress-5) > 1e-9 {
		t.Errorf("AverageStress = %v, want 5", f.AverageStress)
	}
	if math.Abs(f.AverageHoursWorked-9) > 1e-9 {
		t.Errorf("AverageHoursWorked = %v, want 9", f.AverageHoursWorked)
	}
	// Only the two reported sleep values count.
	if math.Abs(f.AverageHoursSlept-6.5) > 1e-9 {
		t.Errorf("AverageHoursSlept = %v, want 6.5", f.AverageHoursSlept)
	}
	if math.Abs(f.AverageWellbeingScore-80) > 1e-9 {
		t.Errorf("AverageWellbeingScore = %v, want 80", f.AverageWellbeingScore)
	}
	if f.Worsening {
		t.Error("three check-ins cannot be worsening")
	}
}

func TestAggregate_Baselines(t *testing.T) {
	checkins := []models.Checkin{
		{CheckinDate: day0, StressLevel: 3, HoursWorked: 7},
		{CheckinDate: day0.AddDays(1), StressLevel: 5, HoursWorked: 9},
	}

	f := Aggregate(checkins)

	if f.AverageHoursSlept != BaselineHoursSlept {
		t.Errorf("AverageHoursSlept = %v, want baseline %v", f.AverageHoursSlept, BaselineHoursSlept)
	}
	if f.AverageWellbeingScore != BaselineWellbeing {
		t.Errorf("AverageWellbeingScore = %v, want baseline %v", f.AverageWellbeingScore, BaselineWellbeing)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	checkins := series(append(repeat(3, 7), repeat(6, 7)...)...)

	asc := Aggregate(checkins)
	desc := Aggregate(reversed(checkins))

	if asc != desc {
		t.Errorf("Aggregate depends on input order: %+v vs %+v", asc, desc)
	}
	if !desc.Worsening {
		t.Error("expected worsening trend regardless of input order")
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	checkins := reversed(series(1, 2, 3))
	Aggregate(checkins)
	if checkins[0].StressLevel != 3 {
		t.Error("Aggregate must not sort the caller's slice")
	}
}
