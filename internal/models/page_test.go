package models

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantFirst  int
		wantLen    int
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{"first page", 1, 10, 1, 10, 1, 10, 3, false, true},
		{"middle page", 2, 10, 2, 10, 11, 10, 3, true, true},
		{"last partial page", 3, 10, 3, 10, 21, 3, 3, true, false},
		{"past the end", 9, 10, 9, 10, 0, 0, 3, true, false},
		{"defaults", 0, 0, 1, DefaultPageSize, 1, 10, 3, false, true},
		{"size clamped", 1, 500, 1, MaxPageSize, 1, 23, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, tt.size)
			if p.PageNumber != tt.wantPage || p.PageSize != tt.wantSize {
				t.Errorf("page/size = %d/%d, want %d/%d", p.PageNumber, p.PageSize, tt.wantPage, tt.wantSize)
			}
			if len(p.Data) != tt.wantLen {
				t.Fatalf("len(Data) = %d, want %d", len(p.Data), tt.wantLen)
			}
			if tt.wantLen > 0 && p.Data[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", p.Data[0], tt.wantFirst)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.TotalRecords != len(items) {
				t.Errorf("TotalRecords = %d, want %d", p.TotalRecords, len(items))
			}
			if p.HasPrevious() != tt.wantPrev || p.HasNext() != tt.wantNext {
				t.Errorf("prev/next = %v/%v, want %v/%v", p.HasPrevious(), p.HasNext(), tt.wantPrev, tt.wantNext)
			}
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := Paginate([]string(nil), 1, 10)
	if p.Data == nil {
		t.Error("expected non-nil Data for empty input")
	}
	if p.TotalPages != 0 || p.TotalRecords != 0 {
		t.Errorf("expected zero totals, got pages=%d records=%d", p.TotalPages, p.TotalRecords)
	}
}

func TestPaginate_CopiesData(t *testing.T) {
	items := []int{1, 2, 3}
	p := Paginate(items, 1, 2)
	p.Data[0] = 99
	if items[0] != 1 {
		t.Error("Paginate must not alias the input slice")
	}
}

func TestRiskLevel_Ordering(t *testing.T) {
	levels := []RiskLevel{RiskLow, RiskModerate, RiskHigh, RiskCritical}
	for i := 1; i < len(levels); i++ {
		if levels[i].Rank() <= levels[i-1].Rank() {
			t.Errorf("%s should rank above %s", levels[i], levels[i-1])
		}
		if !levels[i].AtLeast(levels[i-1]) || levels[i-1].AtLeast(levels[i]) {
			t.Errorf("AtLeast ordering broken between %s and %s", levels[i-1], levels[i])
		}
	}
	if RiskLevel("Extreme").IsValid() {
		t.Error("unknown level should not be valid")
	}
}
