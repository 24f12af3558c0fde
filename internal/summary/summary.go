// Package summary computes per-parameter averages over the most
// recent observation set of a filtered readings table and classifies
// them against the optimal ranges.
package summary

import (
	"errors"
	"math"
	"time"

	"github.com/luki/aquamind/internal/filter"
	"github.com/luki/aquamind/internal/reading"
)

// ErrNoData signals that the selected row set is empty. The dashboard
// shows no metrics in that case; it is not a failure.
var ErrNoData = errors.New("no readings selected")

// Flag classifies a parameter mean against its optimal range.
type Flag string

const (
	FlagNormal Flag = "normal"
	FlagOff    Flag = "off"
)

// Metric is one parameter's summarized value for the latest date.
type Metric struct {
	Mean  float64
	Delta float64 // signed deviation from the optimal range midpoint
	Flag  Flag
}

// Summary holds the latest-date metrics for every parameter.
type Summary struct {
	Date    time.Time // latest date in the filtered rows
	Rows    int       // readings averaged
	Metrics map[reading.Parameter]Metric

	means map[reading.Parameter]float64 // unrounded, drives status evaluation
}

// MeanOf returns the exact (unrounded) mean for a parameter.
// Metric.Mean is rounded to the display precision; classification must
// not lose the half-ulp band around the range boundaries.
func (s Summary) MeanOf(p reading.Parameter) float64 {
	return s.means[p]
}

// Summarize finds the latest date in rows, averages each parameter
// over the readings of that date, and derives delta and status flag
// per parameter. When the active time filter is Both and the latest
// date has both slots, only Evening readings count: within a day the
// Evening slot is the more recent observation.
//
// Returns ErrNoData on an empty row set; it never divides by zero.
func Summarize(rows []reading.Reading, tf filter.TimeFilter) (Summary, error) {
	if len(rows) == 0 {
		return Summary{}, ErrNoData
	}

	latest := rows[0].Date
	for _, r := range rows[1:] {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}

	var selected []reading.Reading
	hasMorning, hasEvening := false, false
	for _, r := range rows {
		if !r.Date.Equal(latest) {
			continue
		}
		selected = append(selected, r)
		switch r.Time {
		case reading.Morning:
			hasMorning = true
		case reading.Evening:
			hasEvening = true
		}
	}

	if tf == filter.Both && hasMorning && hasEvening {
		evening := selected[:0]
		for _, r := range selected {
			if r.Time == reading.Evening {
				evening = append(evening, r)
			}
		}
		selected = evening
	}

	if len(selected) == 0 {
		return Summary{}, ErrNoData
	}

	s := Summary{
		Date:    latest,
		Rows:    len(selected),
		Metrics: make(map[reading.Parameter]Metric, len(reading.Parameters())),
		means:   make(map[reading.Parameter]float64, len(reading.Parameters())),
	}

	for _, p := range reading.Parameters() {
		sum := 0.0
		for _, r := range selected {
			sum += p.Value(r)
		}
		mean := sum / float64(len(selected))
		s.means[p] = mean

		opt, _ := reading.OptimalRange(p)
		flag := FlagOff
		if opt.Contains(mean) {
			flag = FlagNormal
		}

		prec := p.Precision()
		s.Metrics[p] = Metric{
			Mean:  roundTo(mean, prec),
			Delta: roundTo(mean-opt.Midpoint(), prec),
			Flag:  flag,
		}
	}
	return s, nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
