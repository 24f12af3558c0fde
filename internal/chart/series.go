// Package chart builds daily trend series from filtered readings and
// renders them as sparklines color-coded against the optimal range,
// with month tick marks, a date timeline, and a range scale bar.
package chart

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/luki/aquamind/internal/reading"
)

// ErrNoChart signals that the filtered rows cannot produce a useful
// trend chart (fewer than two distinct days).
var ErrNoChart = errors.New("not enough data to chart")

// Point is one daily mean in a trend series.
type Point struct {
	Date  time.Time
	Value float64
}

// BuildSeries groups rows by date and averages the parameter per day,
// returning the series in date order.
func BuildSeries(rows []reading.Reading, p reading.Parameter) ([]Point, error) {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, r := range rows {
		sums[r.Date] += p.Value(r)
		counts[r.Date]++
	}
	if len(sums) < 2 {
		return nil, ErrNoChart
	}

	pts := make([]Point, 0, len(sums))
	for d, sum := range sums {
		pts = append(pts, Point{Date: d, Value: sum / float64(counts[d])})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Date.Before(pts[j].Date) })
	return pts, nil
}

// RollingMean returns the mean of the trailing window of the series,
// or of the whole series when it is shorter than the window.
func RollingMean(pts []Point, window int) float64 {
	if len(pts) == 0 {
		return 0
	}
	start := len(pts) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range pts[start:] {
		sum += p.Value
	}
	return sum / float64(len(pts)-start)
}

// Bounds returns padded chart bounds covering the series and the
// optimal band.
func Bounds(pts []Point, opt reading.Range) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, p := range pts {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	if opt.Min < lo {
		lo = opt.Min
	}
	if opt.Max > hi {
		hi = opt.Max
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// Compress reduces a series to at most width points by averaging
// evenly sized buckets, keeping each bucket's first date for ticks.
func Compress(pts []Point, width int) []Point {
	if width <= 0 || len(pts) <= width {
		return pts
	}
	out := make([]Point, 0, width)
	for i := 0; i < width; i++ {
		lo := i * len(pts) / width
		hi := (i + 1) * len(pts) / width
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for _, p := range pts[lo:hi] {
			sum += p.Value
		}
		out = append(out, Point{Date: pts[lo].Date, Value: sum / float64(hi-lo)})
	}
	return out
}
