package summary

import (
	"errors"
	"testing"
	"time"

	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// inRange fills every parameter with mid-range values so individual
// tests can override just the one they care about.
func inRange(date time.Time, tod reading.TimeOfDay) reading.Reading {
	return reading.Reading{
		Date: date, Time: tod, Variety: "Camarosa",
		PH: 6.0, EC: 1.75, Humidity: 70, WaterTemp: 20, AirTemp: 22,
	}
}

func TestSummarizeEmptyRowsSignalsNoData(t *testing.T) {
	if _, err := Summarize(nil, filter.Both); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
	if _, err := Summarize([]reading.Reading{}, filter.Both); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty slice, got %v", err)
	}
}

func TestSummarizeUsesLatestDate(t *testing.T) {
	old := inRange(day(2024, 1, 1), reading.Morning)
	old.PH = 4.0
	latest := inRange(day(2024, 1, 5), reading.Morning)
	latest.PH = 6.1

	s, err := Summarize([]reading.Reading{old, latest}, filter.Both)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Date.Equal(day(2024, 1, 5)) {
		t.Errorf("latest date: %v", s.Date)
	}
	if got := s.Metrics[reading.ParamPH].Mean; got != 6.1 {
		t.Errorf("pH mean includes stale rows: %v", got)
	}
}

func TestSummarizeEveningTieBreak(t *testing.T) {
	// Morning and Evening both exist on the latest date with the
	// filter at Both: the Evening reading wins as the more recent
	// observation within the day.
	morning := inRange(day(2024, 1, 1), reading.Morning)
	morning.PH = 6.0
	evening := inRange(day(2024, 1, 1), reading.Evening)
	evening.PH = 6.2 // exact optimal max

	s, err := Summarize([]reading.Reading{morning, evening}, filter.Both)
	if err != nil {
		t.Fatal(err)
	}

	m := s.Metrics[reading.ParamPH]
	if m.Mean != 6.2 {
		t.Errorf("pH mean = %v, want the Evening value 6.2", m.Mean)
	}
	if m.Delta != 0.2 {
		t.Errorf("pH delta = %v, want 0.2 (midpoint 6.0)", m.Delta)
	}
	if m.Flag != FlagNormal {
		t.Errorf("pH flag = %v, want normal: the boundary is inclusive", m.Flag)
	}
	if s.Rows != 1 {
		t.Errorf("rows averaged = %d, want 1", s.Rows)
	}
}

func TestSummarizeNoTieBreakWhenFilterNotBoth(t *testing.T) {
	morning := inRange(day(2024, 1, 1), reading.Morning)
	morning.PH = 6.0

	s, err := Summarize([]reading.Reading{morning}, filter.MorningOnly)
	if err != nil {
		t.Fatal(err)
	}
	if s.Metrics[reading.ParamPH].Mean != 6.0 {
		t.Errorf("pH mean = %v", s.Metrics[reading.ParamPH].Mean)
	}
}

func TestSummarizeAveragesMultipleRows(t *testing.T) {
	a := inRange(day(2024, 1, 1), reading.Evening)
	a.PH = 6.0
	b := inRange(day(2024, 1, 1), reading.Evening)
	b.PH = 6.4

	s, err := Summarize([]reading.Reading{a, b}, filter.Both)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Metrics[reading.ParamPH].Mean; got != 6.2 {
		t.Errorf("pH mean = %v, want 6.2", got)
	}
	if s.Rows != 2 {
		t.Errorf("rows = %d, want 2", s.Rows)
	}
}

func TestSummarizeOffRangeFlagAndDelta(t *testing.T) {
	r := inRange(day(2024, 1, 1), reading.Evening)
	r.EC = 2.5 // above the optimal 1.5-2.0

	s, err := Summarize([]reading.Reading{r}, filter.Both)
	if err != nil {
		t.Fatal(err)
	}

	m := s.Metrics[reading.ParamEC]
	if m.Flag != FlagOff {
		t.Errorf("EC flag = %v, want off", m.Flag)
	}
	if m.Delta != 0.75 {
		t.Errorf("EC delta = %v, want +0.75 (midpoint 1.75)", m.Delta)
	}
}

func TestSummarizeRounding(t *testing.T) {
	a := inRange(day(2024, 1, 1), reading.Evening)
	a.Humidity = 70.06
	b := inRange(day(2024, 1, 1), reading.Evening)
	b.Humidity = 70.10

	s, err := Summarize([]reading.Reading{a, b}, filter.Both)
	if err != nil {
		t.Fatal(err)
	}
	// Humidity displays at 1 decimal place: mean 70.08 rounds to 70.1.
	if got := s.Metrics[reading.ParamHumidity].Mean; got != 70.1 {
		t.Errorf("humidity mean = %v, want 70.1", got)
	}
}
