package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/aquamind/internal/agronomy"
	"github.com/luki/aquamind/internal/config"
	"github.com/luki/aquamind/internal/dataset"
	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testModel(t *testing.T) Model {
	t.Helper()
	rows := []reading.Reading{
		{Date: day(2024, 1, 1), Time: reading.Morning, Variety: "Camarosa",
			PH: 6.0, EC: 1.7, Humidity: 70, WaterTemp: 20, AirTemp: 22},
		{Date: day(2024, 1, 1), Time: reading.Evening, Variety: "Camarosa",
			PH: 6.1, EC: 1.8, Humidity: 71, WaterTemp: 20.5, AirTemp: 23},
		{Date: day(2024, 1, 2), Time: reading.Morning, Variety: "Albion",
			PH: 5.9, EC: 1.6, Humidity: 69, WaterTemp: 19, AirTemp: 21},
	}
	return newModel(config.Config{}, dataset.New(rows), nil)
}

func TestInitialRecompute(t *testing.T) {
	m := testModel(t)

	if m.noData {
		t.Fatal("expected metrics for the default selection")
	}
	if len(m.filtered) != 3 {
		t.Errorf("default selection should match all rows, got %d", len(m.filtered))
	}
	if m.status.Label != "Optimal" {
		t.Errorf("status = %q", m.status.Label)
	}
	// The latest date only has a Morning reading; no tie-break.
	if !m.sum.Date.Equal(day(2024, 1, 2)) {
		t.Errorf("summary date = %v", m.sum.Date)
	}
}

func TestCycleVariety(t *testing.T) {
	m := testModel(t)

	m.cycleVariety(1)
	if m.sel.Variety != "Albion" {
		t.Errorf("first cycle = %q, want Albion (sorted)", m.sel.Variety)
	}
	if len(m.filtered) != 1 {
		t.Errorf("Albion rows = %d, want 1", len(m.filtered))
	}

	m.cycleVariety(1)
	if m.sel.Variety != "Camarosa" {
		t.Errorf("second cycle = %q", m.sel.Variety)
	}

	m.cycleVariety(1)
	if m.sel.Variety != filter.AllVarieties {
		t.Errorf("third cycle = %q, want wrap to All", m.sel.Variety)
	}
}

func TestCycleTimeRecomputes(t *testing.T) {
	m := testModel(t)

	m.cycleTime()
	if m.sel.Time != filter.MorningOnly {
		t.Errorf("time filter = %v", m.sel.Time)
	}
	if len(m.filtered) != 2 {
		t.Errorf("morning rows = %d, want 2", len(m.filtered))
	}

	m.cycleTime()
	if m.sel.Time != filter.EveningOnly {
		t.Errorf("time filter = %v", m.sel.Time)
	}
	// Only Jan 1 has an Evening reading.
	if m.noData {
		t.Fatal("expected evening data")
	}
	if !m.sum.Date.Equal(day(2024, 1, 1)) {
		t.Errorf("summary date = %v", m.sum.Date)
	}
}

func TestEmptySelectionShowsNoData(t *testing.T) {
	m := testModel(t)

	m.sel.Variety = "Albion"
	m.sel.Time = filter.EveningOnly
	m.recompute()

	if !m.noData {
		t.Error("expected the no-data state for an empty selection")
	}
	if len(m.filtered) != 0 {
		t.Errorf("filtered rows = %d", len(m.filtered))
	}
}

func press(t *testing.T, m Model, key rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func TestGuidePanelToggles(t *testing.T) {
	m := testModel(t)
	m.loggedIn = true

	m = press(t, m, 'd')
	if !m.showDisease {
		t.Error("d should open the disease panel")
	}
	m = press(t, m, 'd')
	if m.showDisease {
		t.Error("d should close the disease panel again")
	}

	m = press(t, m, 'n')
	if !m.showNutrient {
		t.Error("n should open the nutrient panel")
	}
	m = press(t, m, 'g')
	if m.stageIdx != 1 {
		t.Errorf("g should advance the growth stage, idx = %d", m.stageIdx)
	}
	for i := 0; i < len(agronomy.Stages())-1; i++ {
		m = press(t, m, 'g')
	}
	if m.stageIdx != 0 {
		t.Errorf("stage cycling should wrap, idx = %d", m.stageIdx)
	}

	m = press(t, m, 'n')
	m = press(t, m, 'g')
	if m.stageIdx != 0 {
		t.Error("g should be inert while the nutrient panel is closed")
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	got := truncate("Water Temp (°C)", 14)
	if got != "Water Temp (°…" {
		t.Errorf("truncate = %q", got)
	}
	for _, r := range got {
		if r == '\uFFFD' {
			t.Fatalf("truncate split a rune: %q", got)
		}
	}

	if got := truncate("pH", 16); got != "pH" {
		t.Errorf("short label altered: %q", got)
	}
}

func TestEveningTieBreakOnDashboard(t *testing.T) {
	m := testModel(t)

	m.sel.Variety = "Camarosa"
	m.recompute()

	// Camarosa's latest date has both slots; Evening wins under Both.
	if got := m.sum.Metrics[reading.ParamPH].Mean; got != 6.1 {
		t.Errorf("pH mean = %v, want the Evening value 6.1", got)
	}
	if m.sum.Rows != 1 {
		t.Errorf("rows averaged = %d", m.sum.Rows)
	}
}
