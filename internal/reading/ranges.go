package reading

import "fmt"

// Range is a closed interval considered healthy for a parameter.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range. Boundary values
// count as inside.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Midpoint returns the center of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// optimalRanges holds the acceptable interval per parameter for
// strawberry aquaponics.
var optimalRanges = map[Parameter]Range{
	ParamPH:        {5.8, 6.2},
	ParamEC:        {1.5, 2.0},
	ParamHumidity:  {65, 75},
	ParamWaterTemp: {18, 22},
	ParamAirTemp:   {20, 25},
}

// OptimalRange returns the optimal interval for a parameter.
func OptimalRange(p Parameter) (Range, bool) {
	r, ok := optimalRanges[p]
	return r, ok
}

// ValidateRanges checks the optimal range table at startup: every
// parameter must have a well-ordered interval.
func ValidateRanges() error {
	for _, p := range Parameters() {
		r, ok := optimalRanges[p]
		if !ok {
			return fmt.Errorf("no optimal range for %s", p)
		}
		if r.Min > r.Max {
			return fmt.Errorf("optimal range for %s is inverted: %.2f > %.2f", p, r.Min, r.Max)
		}
	}
	return nil
}
