// Package dashboard implements the interactive aquaponics dashboard
// TUI: login gate, session-scoped filter state, metric cards, system
// status banner, and trend charts over the filtered readings.
package dashboard

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/aquamind/internal/agronomy"
	"github.com/luki/aquamind/internal/auth"
	"github.com/luki/aquamind/internal/config"
	"github.com/luki/aquamind/internal/dataset"
	"github.com/luki/aquamind/internal/export"
	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
	"github.com/luki/aquamind/internal/summary"
)

// Run loads the dataset, prepares the user store, and launches the
// dashboard TUI.
func Run(cfg config.Config) {
	if err := reading.ValidateRanges(); err != nil {
		fmt.Fprintf(os.Stderr, "Bad optimal range table: %v\n", err)
		os.Exit(1)
	}

	ds, err := dataset.Load(cfg.DBPath, cfg.CSVPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No data available: %v\n", err)
		os.Exit(1)
	}

	db, err := dataset.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}
	users, err := auth.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing user store: %v\n", err)
		os.Exit(1)
	}
	if cfg.DemoLogin {
		if err := users.SeedDemo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding demo user: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		newModel(cfg, ds, users),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the dashboard. It owns the session
// state: the cached dataset and the current filter selection.
type Model struct {
	cfg   config.Config
	users *auth.Store

	loggedIn bool
	user     auth.User
	login    loginForm

	data       *dataset.Dataset
	sel        filter.Selection
	varietyIdx int // 0 = All, then data.Varieties()
	periodIdx  int // index into filter.Periods()
	paramIdx   int // charted parameter
	rangeForm  rangeForm

	filtered []reading.Reading
	sum      summary.Summary
	noData   bool
	status   summary.Status
	airFlag  summary.Flag

	showInfo     bool
	showDisease  bool
	showNutrient bool
	stageIdx     int // growth stage for the nutrient panel
	notice       string
	err          error
	width        int
	height       int
	scroll       int
}

func newModel(cfg config.Config, ds *dataset.Dataset, users *auth.Store) Model {
	m := Model{
		cfg:       cfg,
		users:     users,
		data:      ds,
		sel:       filter.DefaultSelection(),
		login:     newLoginForm(),
		rangeForm: newRangeForm(),
	}
	m.recompute()
	return m
}

func (m *Model) period() filter.Period {
	return filter.Periods()[m.periodIdx]
}

func (m *Model) chartParam() reading.Parameter {
	return reading.Parameters()[m.paramIdx]
}

// recompute runs the full synchronous pass: resolve period, filter,
// summarize, evaluate. Called on every filter-changing input.
func (m *Model) recompute() {
	start, end := filter.Resolve(
		m.period(),
		m.data.MinDate(), m.data.MaxDate(),
		m.rangeForm.startDate, m.rangeForm.endDate,
	)
	m.sel.Start, m.sel.End, m.sel.HasDateRange = start, end, true

	m.filtered = filter.Apply(m.data.Rows(), m.sel)

	sum, err := summary.Summarize(m.filtered, m.sel.Time)
	if err != nil {
		// Empty selection: show no metrics and no status.
		m.noData = true
		m.sum = summary.Summary{}
		return
	}
	m.noData = false
	m.sum = sum
	m.status = summary.EvaluateSummary(sum)
	m.airFlag = summary.EvaluateAirTemp(sum.MeanOf(reading.ParamAirTemp))
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.loggedIn {
			return m.updateLogin(msg)
		}
		if m.rangeForm.active {
			return m.updateRangeForm(msg)
		}
		return m.updateDashboard(msg)
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	user, ok, cmd := m.login.update(msg, m.users)
	if ok {
		m.loggedIn = true
		m.user = user
	}
	return m, cmd
}

func (m Model) updateRangeForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	applied, cmd := m.rangeForm.update(msg)
	if applied {
		m.periodIdx = indexOfPeriod(filter.Custom)
		m.recompute()
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "v":
		m.cycleVariety(1)
	case "V":
		m.cycleVariety(-1)

	case "t":
		m.cycleTime()

	case "p":
		m.cyclePeriod(1)
	case "P":
		m.cyclePeriod(-1)

	case "c":
		m.rangeForm.open(m.sel.Start, m.sel.End)

	case "left", "h":
		m.paramIdx = (m.paramIdx + len(reading.Parameters()) - 1) % len(reading.Parameters())
	case "right", "l":
		m.paramIdx = (m.paramIdx + 1) % len(reading.Parameters())

	case "i":
		m.showInfo = !m.showInfo

	case "d":
		m.showDisease = !m.showDisease
	case "n":
		m.showNutrient = !m.showNutrient
	case "g":
		if m.showNutrient {
			m.stageIdx = (m.stageIdx + 1) % len(agronomy.Stages())
		}

	case "e":
		m.doExport(export.WriteCSV)
	case "x":
		m.doExport(export.WriteXLSX)

	case "r":
		m.refresh()

	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		m.scroll++
	case "home":
		m.scroll = 0
	}

	return m, nil
}

func (m *Model) cycleVariety(dir int) {
	n := len(m.data.Varieties()) + 1
	m.varietyIdx = (m.varietyIdx + dir + n) % n
	if m.varietyIdx == 0 {
		m.sel.Variety = filter.AllVarieties
	} else {
		m.sel.Variety = m.data.Varieties()[m.varietyIdx-1]
	}
	m.recompute()
}

func (m *Model) cycleTime() {
	switch m.sel.Time {
	case filter.Both:
		m.sel.Time = filter.MorningOnly
	case filter.MorningOnly:
		m.sel.Time = filter.EveningOnly
	default:
		m.sel.Time = filter.Both
	}
	m.recompute()
}

func (m *Model) cyclePeriod(dir int) {
	n := len(filter.Periods())
	m.periodIdx = (m.periodIdx + dir + n) % n
	if m.period() == filter.Custom {
		m.rangeForm.open(m.sel.Start, m.sel.End)
		return
	}
	m.recompute()
}

func (m *Model) doExport(write func(string, []reading.Reading, time.Time) (string, error)) {
	if len(m.filtered) == 0 {
		m.notice = "Nothing to export: no rows match the current filters."
		return
	}
	path, err := write(m.cfg.ExportDir, m.filtered, time.Now())
	if err != nil {
		m.err = fmt.Errorf("export: %w", err)
		return
	}
	m.err = nil
	m.notice = fmt.Sprintf("Exported %d rows to %s", len(m.filtered), path)
}

func (m *Model) refresh() {
	ds, err := dataset.Load(m.cfg.DBPath, m.cfg.CSVPath)
	if err != nil {
		m.err = fmt.Errorf("refresh: %w", err)
		return
	}
	m.err = nil
	m.data = ds
	if m.varietyIdx > len(ds.Varieties()) {
		m.varietyIdx = 0
		m.sel.Variety = filter.AllVarieties
	}
	m.recompute()
	m.notice = fmt.Sprintf("Reloaded %d readings.", ds.Len())
}

func indexOfPeriod(p filter.Period) int {
	for i, q := range filter.Periods() {
		if q == p {
			return i
		}
	}
	return 0
}
