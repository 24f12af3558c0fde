package filter

import (
	"testing"
	"time"
)

func TestResolveAllTime(t *testing.T) {
	min, max := day(2023, 1, 1), day(2024, 6, 30)
	start, end := Resolve(AllTime, min, max, time.Time{}, time.Time{})
	if !start.Equal(min) || !end.Equal(max) {
		t.Errorf("All Time = (%v, %v), want dataset bounds", start, end)
	}
}

func TestResolveRelativePeriodsAnchorAtMaxDate(t *testing.T) {
	min, max := day(2023, 1, 1), day(2024, 6, 30)

	tests := []struct {
		period Period
		days   int
	}{
		{Last7Days, 7},
		{Last30Days, 30},
		{Last90Days, 90},
		{Last6Mon, 180},
		{LastYear, 365},
	}
	for _, tt := range tests {
		start, end := Resolve(tt.period, min, max, time.Time{}, time.Time{})
		if !end.Equal(max) {
			t.Errorf("%s: end = %v, want dataset max", tt.period, end)
		}
		want := max.AddDate(0, 0, -tt.days)
		if !start.Equal(want) {
			t.Errorf("%s: start = %v, want %v", tt.period, start, want)
		}
	}
}

func TestResolveClampsToDatasetBounds(t *testing.T) {
	min, max := day(2024, 6, 1), day(2024, 6, 30)

	// A year back from max would precede the dataset; clamp to min.
	start, _ := Resolve(LastYear, min, max, time.Time{}, time.Time{})
	if !start.Equal(min) {
		t.Errorf("start = %v, want clamped to %v", start, min)
	}
}

func TestResolveCustom(t *testing.T) {
	min, max := day(2024, 1, 1), day(2024, 12, 31)

	start, end := Resolve(Custom, min, max, day(2024, 3, 1), day(2024, 4, 1))
	if !start.Equal(day(2024, 3, 1)) || !end.Equal(day(2024, 4, 1)) {
		t.Errorf("custom dates not passed through: (%v, %v)", start, end)
	}

	// Out-of-bounds custom dates are clamped.
	start, end = Resolve(Custom, min, max, day(2023, 1, 1), day(2025, 6, 1))
	if !start.Equal(min) || !end.Equal(max) {
		t.Errorf("custom dates not clamped: (%v, %v)", start, end)
	}

	// Reversed custom dates are swapped, never an impossible range.
	start, end = Resolve(Custom, min, max, day(2024, 4, 1), day(2024, 3, 1))
	if start.After(end) {
		t.Errorf("reversed custom range survived: %v > %v", start, end)
	}

	// Zero custom dates default to the dataset bounds.
	start, end = Resolve(Custom, min, max, time.Time{}, time.Time{})
	if !start.Equal(min) || !end.Equal(max) {
		t.Errorf("unset custom dates: (%v, %v), want bounds", start, end)
	}
}
