package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantZero bool
		wantDate string
		wantErr  bool
	}{
		{
			name:     "plain date",
			json:     `{"checkin_date": "2025-03-14"}`,
			wantDate: "2025-03-14",
		},
		{
			name:     "RFC3339 timestamp is truncated",
			json:     `{"checkin_date": "2025-03-14T22:15:00Z"}`,
			wantDate: "2025-03-14",
		},
		{
			name:     "null value",
			json:     `{"checkin_date": null}`,
			wantZero: true,
		},
		{
			name:     "field absent",
			json:     `{}`,
			wantZero: true,
		},
		{
			name:    "garbage",
			json:    `{"checkin_date": "14/03/2025"}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			json:    `{"checkin_date": 20250314}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				CheckinDate Date `json:"checkin_date"`
			}
			err := json.Unmarshal([]byte(tt.json), &v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got date %v", v.CheckinDate)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantZero {
				if !v.CheckinDate.IsZero() {
					t.Errorf("expected zero date, got %v", v.CheckinDate)
				}
				return
			}
			if got := v.CheckinDate.String(); got != tt.wantDate {
				t.Errorf("date = %q, want %q", got, tt.wantDate)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2025, 1, 2, 18, 30, 0, 0, time.UTC))
	data, err := json.Marshal(map[string]any{"d": d, "zero": Date{}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"d":"2025-01-02","zero":null}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestNewDate_UsesCalendarDateOfLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 22:00 on the 9th in UTC-5 is already the 10th in UTC.
	local := time.Date(2025, 6, 9, 22, 0, 0, 0, loc)

	d := NewDate(local)
	if d.String() != "2025-06-09" {
		t.Errorf("NewDate = %s, want 2025-06-09", d)
	}
	if d.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", d.Location())
	}
}

func TestDate_Comparisons(t *testing.T) {
	a, _ := ParseDate("2025-02-27")
	b := a.AddDays(3)

	if b.String() != "2025-03-02" {
		t.Errorf("AddDays(3) = %s, want 2025-03-02", b)
	}
	if !a.Before(b) || b.Before(a) {
		t.Error("expected a before b")
	}
	if !b.After(a) || a.After(b) {
		t.Error("expected b after a")
	}
	if !a.Equal(b.AddDays(-3)) {
		t.Error("expected round trip through AddDays to be equal")
	}
}

func TestCheckinFilter_Contains(t *testing.T) {
	start, _ := ParseDate("2025-01-10")
	end, _ := ParseDate("2025-01-20")

	tests := []struct {
		name   string
		filter CheckinFilter
		date   string
		want   bool
	}{
		{"unbounded", CheckinFilter{}, "1999-12-31", true},
		{"start inclusive", CheckinFilter{Start: &start}, "2025-01-10", true},
		{"before start", CheckinFilter{Start: &start}, "2025-01-09", false},
		{"end inclusive", CheckinFilter{End: &end}, "2025-01-20", true},
		{"after end", CheckinFilter{End: &end}, "2025-01-21", false},
		{"inside both", CheckinFilter{Start: &start, End: &end}, "2025-01-15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			if err != nil {
				t.Fatalf("ParseDate: %v", err)
			}
			if got := tt.filter.Contains(d); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
