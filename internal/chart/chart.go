package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/aquamind/internal/reading"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BandColor returns the color for a value relative to the optimal
// band: green inside, yellow below, orange above.
func BandColor(v float64, opt reading.Range) lipgloss.Color {
	switch {
	case v < opt.Min:
		return lipgloss.Color("220") // yellow
	case v > opt.Max:
		return lipgloss.Color("208") // orange
	default:
		return lipgloss.Color("78") // soft green
	}
}

// RenderSparkline renders the daily series as color-coded blocks. A
// subtle pipe is drawn where the month changes. Long series are
// compressed to the chart width.
func RenderSparkline(pts []Point, width int, rangeMin, rangeMax float64, opt reading.Range) string {
	if width <= 0 {
		return ""
	}
	if len(pts) == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
		return dim.Render(strings.Repeat("╌", width))
	}

	pts = Compress(pts, width)
	padLen := width - len(pts)
	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	for i := 0; i < padLen; i++ {
		sb.WriteString(dim.Render("╌"))
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	for i, p := range pts {
		if i > 0 && p.Date.Month() != pts[i-1].Date.Month() {
			sb.WriteString(tickStyle.Render("│"))
			continue
		}

		norm := (p.Value - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))
		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		style := lipgloss.NewStyle().Foreground(BandColor(p.Value, opt))
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

// RenderTimeline renders date labels under the sparkline at month
// boundaries.
func RenderTimeline(pts []Point, width int) string {
	if len(pts) == 0 || width <= 0 {
		return ""
	}

	pts = Compress(pts, width)
	padLen := width - len(pts)

	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	type tick struct {
		pos   int
		label string
	}
	var ticks []tick
	for i, p := range pts {
		if i > 0 && p.Date.Month() != pts[i-1].Date.Month() {
			ticks = append(ticks, tick{pos: padLen + i, label: p.Date.Format("Jan 06")})
		}
	}

	lastEnd := -1
	for _, t := range ticks {
		start := t.pos - 2
		if start < 0 {
			start = 0
		}
		end := start + len(t.label)
		if end > width {
			continue
		}
		if start <= lastEnd+1 {
			continue
		}
		for j, ch := range t.label {
			line[start+j] = ch
		}
		lastEnd = end
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Render(string(line))
}

// RenderRangeScale renders a scale bar marking the optimal band
// endpoints and the current value position.
func RenderRangeScale(current, rangeMin, rangeMax float64, opt reading.Range, width int) string {
	if width <= 0 {
		return ""
	}

	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}
	posOf := func(v float64) int {
		p := int(float64(width-1) * (v - rangeMin) / span)
		if p < 0 {
			p = 0
		}
		if p >= width {
			p = width - 1
		}
		return p
	}

	minPos, maxPos := posOf(opt.Min), posOf(opt.Max)
	curPos := posOf(current)

	var sb strings.Builder
	dotS := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	bandS := lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	markS := lipgloss.NewStyle().Foreground(lipgloss.Color("78"))

	for i := 0; i < width; i++ {
		switch {
		case i == curPos:
			style := lipgloss.NewStyle().Foreground(BandColor(current, opt)).Bold(true)
			sb.WriteString(style.Render("◆"))
		case i == minPos || i == maxPos:
			sb.WriteString(markS.Render("▪"))
		case i > minPos && i < maxPos:
			sb.WriteString(bandS.Render("─"))
		default:
			sb.WriteString(dotS.Render("·"))
		}
	}

	return sb.String()
}

// RenderValue renders a parameter value with band color coding.
func RenderValue(v float64, prec int, opt reading.Range) string {
	s := fmt.Sprintf("%.*f", prec, v)
	return lipgloss.NewStyle().Foreground(BandColor(v, opt)).Render(s)
}
