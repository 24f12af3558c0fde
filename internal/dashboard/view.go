package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/aquamind/internal/agronomy"
	"github.com/luki/aquamind/internal/chart"
	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
	"github.com/luki/aquamind/internal/summary"
)

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("22")
	colorTitleFg  = lipgloss.Color("120")
	colorBorder   = lipgloss.Color("65")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorOk       = lipgloss.Color("78")
	colorWarn     = lipgloss.Color("220")
	colorCrit     = lipgloss.Color("196")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Loading..."
	}

	contentWidth := m.width - 2
	if contentWidth < 60 {
		contentWidth = 60
	}

	if !m.loggedIn {
		return m.login.view(contentWidth)
	}

	var sections []string
	sections = append(sections, m.renderTitleBar(contentWidth))
	sections = append(sections, m.renderFilterBar(contentWidth))

	if m.rangeForm.active {
		sections = append(sections, m.rangeForm.view())
	}

	if m.err != nil {
		errBox := lipgloss.NewStyle().
			Foreground(colorCrit).
			Bold(true).
			Padding(0, 1).
			Render(fmt.Sprintf("ERROR: %v", m.err))
		sections = append(sections, errBox)
	}
	if m.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(colorOk).
			Padding(0, 1).
			Render(m.notice))
	}

	if m.noData {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(2, 0).
			Align(lipgloss.Center).
			Width(contentWidth).
			Render("No readings match the current filters.")
		sections = append(sections, empty)
	} else {
		sections = append(sections, m.renderStatusBanner(contentWidth))
		sections = append(sections, m.renderMetricCards(contentWidth))
		sections = append(sections, m.renderChartPanel(contentWidth))
	}

	if m.showInfo && m.sel.Variety != filter.AllVarieties {
		sections = append(sections, m.renderVarietyInfo(contentWidth))
	}
	if m.showDisease && !m.noData {
		sections = append(sections, m.renderDiseasePanel(contentWidth))
	}
	if m.showNutrient {
		sections = append(sections, m.renderNutrientPanel(contentWidth))
	}

	sections = append(sections, m.renderFooter(contentWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	lines := strings.Split(content, "\n")
	visibleLines := m.height
	if visibleLines < 5 {
		visibleLines = 5
	}
	maxScroll := len(lines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	end := scroll + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[scroll:end], "\n")
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("AQUAMIND")

	user := lipgloss.NewStyle().
		Foreground(colorLabel).
		Render(m.user.Name)

	dataInfo := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("  %s - %s  (%d readings, %d varieties)",
			m.data.MinDate().Format("2006-01-02"),
			m.data.MaxDate().Format("2006-01-02"),
			m.data.Len(), len(m.data.Varieties())))

	right := user + dataInfo

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFilterBar(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)

	sep := dimS.Render("  │  ")
	bar := dimS.Render("Variety ") + valS.Render(m.sel.Variety) +
		sep + dimS.Render("Period ") + valS.Render(string(m.period())) +
		dimS.Render("  "+formatDateRange(m.sel.Start, m.sel.End)) +
		sep + dimS.Render("Time ") + valS.Render(string(m.sel.Time)) +
		sep + dimS.Render("Rows ") + valS.Render(fmt.Sprintf("%d", len(m.filtered)))

	return lipgloss.NewStyle().Padding(0, 1).Render(bar)
}

func (m Model) renderStatusBanner(width int) string {
	banner := lipgloss.NewStyle().
		Background(lipgloss.Color(m.status.Color)).
		Foreground(lipgloss.Color("231")).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("System Status: %s", m.status.Label))

	latest := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("  latest %s, %d reading(s) averaged", m.sum.Date.Format("Jan 02, 2006"), m.sum.Rows))

	rows := []string{banner + latest}
	for _, issue := range m.status.Issues {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorWarn).Render("  • "+issue))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderMetricCards(width int) string {
	var cards []string
	for _, p := range reading.Parameters() {
		metric := m.sum.Metrics[p]
		opt, _ := reading.OptimalRange(p)
		prec := p.Precision()

		label := lipgloss.NewStyle().Foreground(colorDim).Render(truncate(p.Label(), 16))
		value := lipgloss.NewStyle().Bold(true).Render(chart.RenderValue(metric.Mean, prec, opt))
		delta := lipgloss.NewStyle().Foreground(colorDim).
			Render(fmt.Sprintf("Δ %+.*f", prec, metric.Delta))

		flagS := lipgloss.NewStyle().Foreground(colorOk)
		if metric.Flag != summary.FlagNormal {
			flagS = lipgloss.NewStyle().Foreground(colorWarn)
		}
		flag := flagS.Render(string(metric.Flag))

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(18).
			Render(lipgloss.JoinVertical(lipgloss.Left, label, value+"  "+flag, delta))
		cards = append(cards, card)
	}

	return lipgloss.NewStyle().Padding(0, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func (m Model) renderChartPanel(totalWidth int) string {
	p := m.chartParam()
	opt, _ := reading.OptimalRange(p)

	innerWidth := totalWidth - 4
	if innerWidth < 40 {
		innerWidth = 40
	}
	chartWidth := innerWidth - 4
	if chartWidth > 140 {
		chartWidth = 140
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg).
		Render(p.Label() + " Trend")
	scope := lipgloss.NewStyle().Foreground(colorDim).
		Render("  " + m.sel.Variety + "  (←/→ to switch parameter)")

	rows := []string{title + scope}

	pts, err := chart.BuildSeries(m.filtered, p)
	if errors.Is(err, chart.ErrNoChart) {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorDim).
			Render("Not enough data to chart this selection."))
	} else {
		rangeMin, rangeMax := chart.Bounds(pts, opt)

		frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
		frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")
		spark := chart.RenderSparkline(pts, chartWidth, rangeMin, rangeMax, opt)
		rows = append(rows, frameL+spark+frameR)

		timeline := chart.RenderTimeline(pts, chartWidth)
		if strings.TrimSpace(timeline) != "" {
			rows = append(rows, " "+timeline)
		}

		lo, pk := pts[0].Value, pts[0].Value
		sum := 0.0
		for _, pt := range pts {
			if pt.Value < lo {
				lo = pt.Value
			}
			if pt.Value > pk {
				pk = pt.Value
			}
			sum += pt.Value
		}
		avg := sum / float64(len(pts))
		prec := p.Precision()

		dimS := lipgloss.NewStyle().Foreground(colorDim)
		valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		stats := dimS.Render("avg ") + valS.Render(fmt.Sprintf("%.*f", prec, avg)) +
			dimS.Render("  lo ") + valS.Render(fmt.Sprintf("%.*f", prec, lo)) +
			dimS.Render("  pk ") + valS.Render(fmt.Sprintf("%.*f", prec, pk)) +
			dimS.Render("  7d ") + valS.Render(fmt.Sprintf("%.*f", prec, chart.RollingMean(pts, 7))) +
			dimS.Render(fmt.Sprintf("  optimal %.*f-%.*f", prec, opt.Min, prec, opt.Max))
		rows = append(rows, stats)

		last := pts[len(pts)-1].Value
		rows = append(rows, " "+chart.RenderRangeScale(last, rangeMin, rangeMax, opt, chartWidth))
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(panel)
}

func (m Model) renderVarietyInfo(width int) string {
	profile, ok := reading.ProfileFor(m.sel.Variety)
	if !ok {
		return ""
	}

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(colorLabel)

	name := lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg).Render(m.sel.Variety)
	rows := []string{
		name,
		dimS.Render("origin     ") + valS.Render(profile.Origin),
		dimS.Render("berries    ") + valS.Render(profile.Characteristics),
		dimS.Render("habit      ") + valS.Render(profile.GrowthHabit),
		dimS.Render("prefers    ") + valS.Render(fmt.Sprintf("pH %.1f-%.1f  EC %.1f-%.1f mS/cm  water %.0f-%.0f°C",
			profile.PH.Min, profile.PH.Max, profile.EC.Min, profile.EC.Max,
			profile.WaterTemp.Min, profile.WaterTemp.Max)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func riskColor(level agronomy.RiskLevel) lipgloss.Color {
	switch level {
	case agronomy.RiskHigh:
		return colorCrit
	case agronomy.RiskMedium:
		return colorWarn
	}
	return colorOk
}

func (m Model) renderDiseasePanel(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg).Render("Disease Risk")

	risks := agronomy.AssessRisks(
		m.sum.MeanOf(reading.ParamPH),
		m.sum.MeanOf(reading.ParamEC),
		m.sum.MeanOf(reading.ParamHumidity),
		m.sum.MeanOf(reading.ParamWaterTemp),
	)

	rows := []string{title + dimS.Render("  based on the current averages")}
	for _, r := range risks {
		level := lipgloss.NewStyle().Foreground(riskColor(r.Level)).Bold(true).
			Render(fmt.Sprintf("%-6s", r.Level))
		line := level + " " + lipgloss.NewStyle().Foreground(colorLabel).Render(r.Disease)
		if len(r.Factors) > 0 {
			line += dimS.Render("  " + strings.Join(r.Factors, ", "))
		}
		rows = append(rows, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func adviceFor(label string, value float64, prec int, rec reading.Range) string {
	adj := agronomy.Adjust(value, rec)
	if adj.Action == agronomy.ActionMaintain {
		return fmt.Sprintf("%s %.*f in target %.*f-%.*f, maintain",
			label, prec, value, prec, rec.Min, prec, rec.Max)
	}
	return fmt.Sprintf("%s %.*f outside target %.*f-%.*f, %s ~%.0f%% toward %.*f",
		label, prec, value, prec, rec.Min, prec, rec.Max, adj.Action, adj.Percent, prec, adj.Target)
}

func (m Model) renderNutrientPanel(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(colorLabel)

	stage := agronomy.Stages()[m.stageIdx]

	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg).
		Render("Nutrients - " + stage.Name)
	rows := []string{
		title + dimS.Render("  (g to cycle stage)"),
		dimS.Render(stage.Description+"  "+stage.Duration) + dimS.Render("  "+strings.Join(stage.Indicators, "; ")),
		dimS.Render("targets   ") + valS.Render(fmt.Sprintf(
			"pH %.1f-%.1f  EC %.1f-%.1f mS/cm  N %g-%g  P %g-%g  K %g-%g  Ca %g-%g  Mg %g-%g ppm",
			stage.PH.Min, stage.PH.Max, stage.EC.Min, stage.EC.Max,
			stage.N.Min, stage.N.Max, stage.P.Min, stage.P.Max, stage.K.Min, stage.K.Max,
			stage.Ca.Min, stage.Ca.Max, stage.Mg.Min, stage.Mg.Max)),
	}

	if !m.noData {
		rows = append(rows,
			valS.Render(adviceFor("pH", m.sum.MeanOf(reading.ParamPH), 2, stage.PH)),
			valS.Render(adviceFor("EC", m.sum.MeanOf(reading.ParamEC), 2, stage.EC)),
		)
	}

	rows = append(rows, dimS.Render("deficiency signs"))
	for _, d := range agronomy.Deficiencies() {
		rows = append(rows, dimS.Render("  "+d.Symbol+" ")+
			valS.Render(d.Sign)+dimS.Render(" - "+d.Correction))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorLabel)

	keys := dimS.Render("q") + keyS.Render(":quit") +
		dimS.Render("  v") + keyS.Render(":variety") +
		dimS.Render("  t") + keyS.Render(":time") +
		dimS.Render("  p") + keyS.Render(":period") +
		dimS.Render("  c") + keyS.Render(":custom") +
		dimS.Render("  ←/→") + keyS.Render(":chart") +
		dimS.Render("  i") + keyS.Render(":info") +
		dimS.Render("  d/n") + keyS.Render(":guides") +
		dimS.Render("  e/x") + keyS.Render(":export") +
		dimS.Render("  r") + keyS.Render(":reload") +
		dimS.Render("  j/k") + keyS.Render(":scroll")

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

// ── Helpers ──────────────────────────────────────────────────────────

func formatDateRange(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return "All Time"
	}
	return start.Format("Jan 02, 2006") + " to " + end.Format("Jan 02, 2006")
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 3 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
