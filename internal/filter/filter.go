// Package filter applies the dashboard's variety, date-range, and
// time-of-day predicates to the readings table, and resolves named
// date periods against the dataset bounds.
package filter

import (
	"time"

	"github.com/luki/aquamind/internal/reading"
)

// AllVarieties is the variety selection that matches every row.
const AllVarieties = "All"

// TimeFilter selects which time-of-day slots pass the filter.
type TimeFilter string

const (
	Both        TimeFilter = "Both"
	MorningOnly TimeFilter = "Morning"
	EveningOnly TimeFilter = "Evening"
)

// Matches reports whether a reading slot passes this time filter.
func (f TimeFilter) Matches(t reading.TimeOfDay) bool {
	return f == Both || string(f) == string(t)
}

// Selection is the active filter state. It is owned by one dashboard
// session and mutated only by user input.
type Selection struct {
	Variety      string // AllVarieties or a cultivar name
	Start        time.Time
	End          time.Time
	HasDateRange bool
	Time         TimeFilter
}

// DefaultSelection matches the full dataset.
func DefaultSelection() Selection {
	return Selection{Variety: AllVarieties, Time: Both}
}

// Normalize repairs a reversed date range by swapping its endpoints,
// so filtering never runs over an impossible range.
func (s Selection) Normalize() Selection {
	if s.HasDateRange && s.Start.After(s.End) {
		s.Start, s.End = s.End, s.Start
	}
	if s.Time == "" {
		s.Time = Both
	}
	if s.Variety == "" {
		s.Variety = AllVarieties
	}
	return s
}

// Apply returns the subsequence of rows matching the selection, in the
// original order. An empty result is valid and distinct from "no data
// loaded": the caller guarantees rows came from a loaded dataset.
func Apply(rows []reading.Reading, sel Selection) []reading.Reading {
	sel = sel.Normalize()

	out := make([]reading.Reading, 0, len(rows))
	for _, r := range rows {
		if sel.Variety != AllVarieties && r.Variety != sel.Variety {
			continue
		}
		if sel.HasDateRange && (r.Date.Before(sel.Start) || r.Date.After(sel.End)) {
			continue
		}
		if !sel.Time.Matches(r.Time) {
			continue
		}
		out = append(out, r)
	}
	return out
}
