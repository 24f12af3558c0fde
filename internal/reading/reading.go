// Package reading defines the aquaponics sensor data model: a single
// dated reading per variety and time-of-day slot, the measured
// parameters, and the optimal range table used for status evaluation.
package reading

import "time"

// TimeOfDay is the reading slot within a day.
type TimeOfDay string

const (
	Morning TimeOfDay = "Morning"
	Evening TimeOfDay = "Evening"
)

// Reading represents one logged set of sensor values.
type Reading struct {
	Date      time.Time // calendar day, zero clock
	Time      TimeOfDay
	Variety   string
	PH        float64
	EC        float64 // electrical conductivity in mS/cm
	Humidity  float64 // relative humidity in percent
	WaterTemp float64 // degrees Celsius
	AirTemp   float64 // degrees Celsius
}

// Parameter identifies one measured sensor parameter.
type Parameter string

const (
	ParamPH        Parameter = "pH"
	ParamEC        Parameter = "EC_mS_cm"
	ParamHumidity  Parameter = "Humidity_pct"
	ParamWaterTemp Parameter = "Water_Temp_C"
	ParamAirTemp   Parameter = "Air_Temp_C"
)

// Parameters returns all parameters in display order.
func Parameters() []Parameter {
	return []Parameter{ParamPH, ParamEC, ParamHumidity, ParamWaterTemp, ParamAirTemp}
}

// Label returns the display label for a parameter.
func (p Parameter) Label() string {
	switch p {
	case ParamPH:
		return "pH"
	case ParamEC:
		return "EC (mS/cm)"
	case ParamHumidity:
		return "Humidity (%)"
	case ParamWaterTemp:
		return "Water Temp (°C)"
	case ParamAirTemp:
		return "Air Temp (°C)"
	}
	return string(p)
}

// Precision returns the number of decimal places used when displaying
// values of this parameter: 2 for pH and EC, 1 for the rest.
func (p Parameter) Precision() int {
	switch p {
	case ParamPH, ParamEC:
		return 2
	}
	return 1
}

// Value extracts this parameter's value from a reading.
func (p Parameter) Value(r Reading) float64 {
	switch p {
	case ParamPH:
		return r.PH
	case ParamEC:
		return r.EC
	case ParamHumidity:
		return r.Humidity
	case ParamWaterTemp:
		return r.WaterTemp
	case ParamAirTemp:
		return r.AirTemp
	}
	return 0
}

// Day truncates a timestamp to its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
