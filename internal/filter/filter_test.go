package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/luki/aquamind/internal/reading"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleRows() []reading.Reading {
	return []reading.Reading{
		{Date: day(2024, 1, 1), Time: reading.Morning, Variety: "Camarosa", PH: 6.0},
		{Date: day(2024, 1, 1), Time: reading.Evening, Variety: "Camarosa", PH: 6.1},
		{Date: day(2024, 1, 2), Time: reading.Morning, Variety: "Albion", PH: 5.9},
		{Date: day(2024, 1, 3), Time: reading.Evening, Variety: "Albion", PH: 6.2},
		{Date: day(2024, 1, 4), Time: reading.Morning, Variety: "Camarosa", PH: 6.0},
	}
}

func TestApplyFullSpanIsIdentity(t *testing.T) {
	rows := sampleRows()
	sel := Selection{
		Variety: AllVarieties,
		Start:   day(2024, 1, 1), End: day(2024, 1, 4), HasDateRange: true,
		Time: Both,
	}
	got := Apply(rows, sel)
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("full-span filter should return the full dataset, got %d rows", len(got))
	}
}

func TestApplyIsSubsetAndIdempotent(t *testing.T) {
	rows := sampleRows()
	sel := Selection{
		Variety: "Albion",
		Start:   day(2024, 1, 1), End: day(2024, 1, 2), HasDateRange: true,
		Time: Both,
	}

	once := Apply(rows, sel)
	for _, r := range once {
		found := false
		for _, orig := range rows {
			if reflect.DeepEqual(r, orig) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("filter invented a row: %+v", r)
		}
	}

	twice := Apply(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering twice differs from filtering once")
	}
}

func TestApplyVariety(t *testing.T) {
	got := Apply(sampleRows(), Selection{Variety: "Camarosa", Time: Both})
	if len(got) != 3 {
		t.Fatalf("expected 3 Camarosa rows, got %d", len(got))
	}
	for _, r := range got {
		if r.Variety != "Camarosa" {
			t.Errorf("wrong variety: %+v", r)
		}
	}
}

func TestApplyUnknownVarietyYieldsEmpty(t *testing.T) {
	got := Apply(sampleRows(), Selection{Variety: "Gala", Time: Both})
	if len(got) != 0 {
		t.Errorf("expected an empty result for an unknown variety, got %d rows", len(got))
	}
	if got == nil {
		t.Error("expected a non-nil empty sequence, distinguishable from no data loaded")
	}
}

func TestApplyTimeOfDay(t *testing.T) {
	got := Apply(sampleRows(), Selection{Variety: AllVarieties, Time: EveningOnly})
	if len(got) != 2 {
		t.Fatalf("expected 2 evening rows, got %d", len(got))
	}
	for _, r := range got {
		if r.Time != reading.Evening {
			t.Errorf("wrong slot: %+v", r)
		}
	}
}

func TestApplyDateRangeInclusive(t *testing.T) {
	sel := Selection{
		Variety: AllVarieties, Time: Both,
		Start: day(2024, 1, 2), End: day(2024, 1, 3), HasDateRange: true,
	}
	got := Apply(sampleRows(), sel)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows in [Jan 2, Jan 3], got %d", len(got))
	}
}

func TestNormalizeSwapsReversedRange(t *testing.T) {
	sel := Selection{
		Variety: AllVarieties, Time: Both,
		Start: day(2024, 1, 3), End: day(2024, 1, 1), HasDateRange: true,
	}

	norm := sel.Normalize()
	if norm.Start.After(norm.End) {
		t.Errorf("normalized range still reversed: %v > %v", norm.Start, norm.End)
	}

	// Apply normalizes internally, so a reversed range still matches.
	got := Apply(sampleRows(), sel)
	if len(got) != 4 {
		t.Errorf("expected 4 rows after swap, got %d", len(got))
	}
}

func TestApplyNoDateRange(t *testing.T) {
	got := Apply(sampleRows(), Selection{Variety: AllVarieties, Time: Both})
	if len(got) != len(sampleRows()) {
		t.Errorf("unset date range should not constrain, got %d rows", len(got))
	}
}
