package agronomy

import "github.com/luki/aquamind/internal/reading"

// GrowthStage describes one phase of the strawberry production cycle
// and its recommended solution targets. Macro element targets are in
// ppm.
type GrowthStage struct {
	Name        string
	Description string
	Duration    string
	Indicators  []string

	PH reading.Range
	EC reading.Range
	N  reading.Range
	P  reading.Range
	K  reading.Range
	Ca reading.Range
	Mg reading.Range
}

// Stages returns the growth stages in cycle order.
func Stages() []GrowthStage {
	return []GrowthStage{
		{
			Name:        "Propagation",
			Description: "Runners develop into new plants.",
			Duration:    "2-3 weeks",
			Indicators:  []string{"Root development", "Initial leaf formation"},
			PH:          reading.Range{Min: 5.8, Max: 6.2},
			EC:          reading.Range{Min: 0.8, Max: 1.2},
			N:           reading.Range{Min: 70, Max: 100},
			P:           reading.Range{Min: 30, Max: 50},
			K:           reading.Range{Min: 80, Max: 120},
			Ca:          reading.Range{Min: 80, Max: 120},
			Mg:          reading.Range{Min: 30, Max: 50},
		},
		{
			Name:        "Vegetative Growth",
			Description: "Plants focus on leaf and root development.",
			Duration:    "4-6 weeks",
			Indicators:  []string{"Rapid leaf production", "Crown development", "No flowering yet"},
			PH:          reading.Range{Min: 5.8, Max: 6.2},
			EC:          reading.Range{Min: 1.2, Max: 1.6},
			N:           reading.Range{Min: 100, Max: 150},
			P:           reading.Range{Min: 40, Max: 60},
			K:           reading.Range{Min: 120, Max: 150},
			Ca:          reading.Range{Min: 120, Max: 160},
			Mg:          reading.Range{Min: 40, Max: 60},
		},
		{
			Name:        "Flowering",
			Description: "Plants produce flowers that will become fruits.",
			Duration:    "2-3 weeks",
			Indicators:  []string{"White flowers appear", "Reduced leaf growth", "Increased nutrient demand"},
			PH:          reading.Range{Min: 5.8, Max: 6.2},
			EC:          reading.Range{Min: 1.4, Max: 1.8},
			N:           reading.Range{Min: 120, Max: 150},
			P:           reading.Range{Min: 50, Max: 70},
			K:           reading.Range{Min: 150, Max: 180},
			Ca:          reading.Range{Min: 140, Max: 180},
			Mg:          reading.Range{Min: 45, Max: 65},
		},
		{
			Name:        "Fruiting",
			Description: "Flowers develop into fruits, requiring high energy.",
			Duration:    "4-6 weeks",
			Indicators:  []string{"Green fruits developing", "Color change as fruits ripen", "Peak nutrient demand"},
			PH:          reading.Range{Min: 5.8, Max: 6.2},
			EC:          reading.Range{Min: 1.8, Max: 2.2},
			N:           reading.Range{Min: 120, Max: 150},
			P:           reading.Range{Min: 60, Max: 80},
			K:           reading.Range{Min: 180, Max: 220},
			Ca:          reading.Range{Min: 150, Max: 200},
			Mg:          reading.Range{Min: 50, Max: 70},
		},
		{
			Name:        "Post-Harvest",
			Description: "Plants recover and prepare for the next cycle.",
			Duration:    "2-4 weeks",
			Indicators:  []string{"Decreased nutrient demand", "Renewal of vegetative growth", "Runner production"},
			PH:          reading.Range{Min: 5.8, Max: 6.2},
			EC:          reading.Range{Min: 1.0, Max: 1.4},
			N:           reading.Range{Min: 80, Max: 120},
			P:           reading.Range{Min: 40, Max: 60},
			K:           reading.Range{Min: 100, Max: 140},
			Ca:          reading.Range{Min: 100, Max: 140},
			Mg:          reading.Range{Min: 35, Max: 55},
		},
	}
}

// Action is the corrective direction for a measured solution value.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionMaintain Action = "maintain"
)

// Adjustment is the recommended correction for one measured value
// against a stage target.
type Adjustment struct {
	Action  Action
	Percent float64 // relative change, capped at 50%
	Target  float64 // value after applying the change
}

// Adjust compares a measured value to the recommended range and
// returns the corrective action. Changes are capped at 50% per step
// so the solution is never shocked.
func Adjust(value float64, rec reading.Range) Adjustment {
	switch {
	case value < rec.Min:
		pct := (rec.Min - value) / rec.Min * 100
		if pct > 50 {
			pct = 50
		}
		return Adjustment{Action: ActionIncrease, Percent: pct, Target: value * (1 + pct/100)}
	case value > rec.Max:
		pct := (value - rec.Max) / rec.Max * 100
		if pct > 50 {
			pct = 50
		}
		return Adjustment{Action: ActionDecrease, Percent: pct, Target: value * (1 - pct/100)}
	}
	return Adjustment{Action: ActionMaintain, Target: value}
}

// Deficiency describes the visible signs of one macro element running
// short, and how to correct it.
type Deficiency struct {
	Symbol     string
	Nutrient   string
	Sign       string
	Correction string
}

// Deficiencies returns the macro element deficiency watch list.
func Deficiencies() []Deficiency {
	return []Deficiency{
		{"N", "Nitrogen", "Older leaves turn pale green or yellow; stunted growth",
			"Increase nitrogen; apply calcium or potassium nitrate"},
		{"P", "Phosphorus", "Purple or reddish older leaves; delayed flowering",
			"Add monopotassium phosphate; lower pH if above 6.5"},
		{"K", "Potassium", "Marginal leaf scorching; weak stems and poor fruit",
			"Add potassium sulfate or nitrate; balance calcium levels"},
		{"Ca", "Calcium", "Distorted young leaves with hooked tips; fruit tip burn",
			"Add calcium nitrate; keep pH below 6.5"},
		{"Mg", "Magnesium", "Interveinal chlorosis in older leaves; brittle leaves",
			"Add magnesium sulfate; keep pH between 5.8 and 6.2"},
		{"Fe", "Iron", "Interveinal chlorosis in young leaves; green veins",
			"Add iron chelate; lower pH to 5.8-6.0"},
	}
}
