package summary

import (
	"fmt"

	"github.com/luki/aquamind/internal/reading"
)

// Status is the overall system classification derived from the
// averaged water-side parameters.
type Status struct {
	Label  string
	Color  string // display color, hex
	Issues []string
}

// Display colors for the status banner.
const (
	colorOptimal  = "#4CAF50"
	colorAttn     = "#FFC107"
	colorCritical = "#F44336"
)

// EvaluateStatus classifies the averaged pH, EC, humidity, and water
// temperature against their optimal ranges. Every out-of-range
// parameter contributes one issue; zero issues is Optimal, one or two
// is Needs Attention, more is Critical. Values exactly on a range
// boundary count as in range.
func EvaluateStatus(ph, ec, humidity, waterTemp float64) Status {
	var issues []string

	check := func(p reading.Parameter, v float64, name, unit string) {
		opt, _ := reading.OptimalRange(p)
		prec := p.Precision()
		switch {
		case v < opt.Min:
			issues = append(issues, fmt.Sprintf("%s is too low (%.*f%s)", name, prec, v, unit))
		case v > opt.Max:
			issues = append(issues, fmt.Sprintf("%s is too high (%.*f%s)", name, prec, v, unit))
		}
	}

	check(reading.ParamPH, ph, "pH", "")
	check(reading.ParamEC, ec, "EC", " mS/cm")
	check(reading.ParamHumidity, humidity, "Humidity", "%")
	check(reading.ParamWaterTemp, waterTemp, "Water temperature", "°C")

	switch {
	case len(issues) == 0:
		return Status{Label: "Optimal", Color: colorOptimal}
	case len(issues) <= 2:
		return Status{Label: "Needs Attention", Color: colorAttn, Issues: issues}
	default:
		return Status{Label: "Critical", Color: colorCritical, Issues: issues}
	}
}

// EvaluateAirTemp classifies the averaged air temperature against its
// own fixed range. Air temperature is advisory and does not feed the
// overall status.
func EvaluateAirTemp(airTemp float64) Flag {
	opt, _ := reading.OptimalRange(reading.ParamAirTemp)
	if opt.Contains(airTemp) {
		return FlagNormal
	}
	return FlagOff
}

// EvaluateSummary runs the overall evaluation over a computed summary.
// It reads the unrounded means: a mean just outside a boundary must
// degrade the status even when it rounds back onto it for display.
func EvaluateSummary(s Summary) Status {
	return EvaluateStatus(
		s.MeanOf(reading.ParamPH),
		s.MeanOf(reading.ParamEC),
		s.MeanOf(reading.ParamHumidity),
		s.MeanOf(reading.ParamWaterTemp),
	)
}
