package reading

// VarietyProfile describes a strawberry cultivar and its preferred
// growing conditions.
type VarietyProfile struct {
	Origin          string
	Characteristics string
	GrowthHabit     string
	PH              Range
	WaterTemp       Range
	EC              Range
}

// varietyProfiles maps cultivar names to their profiles.
var varietyProfiles = map[string]VarietyProfile{
	"Camarosa": {
		Origin:          "University of California, 1992",
		Characteristics: "Large, firm, dark red berries with good flavor",
		GrowthHabit:     "Vigorous with large crowns",
		PH:              Range{5.9, 6.1},
		WaterTemp:       Range{18, 20},
		EC:              Range{1.5, 1.7},
	},
	"Chandler": {
		Origin:          "University of California, 1983",
		Characteristics: "Medium to large berries, good flavor, high yield",
		GrowthHabit:     "Moderately vigorous with multiple crowns",
		PH:              Range{6.0, 6.2},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.8},
	},
	"Honeoye": {
		Origin:          "Cornell University, 1979",
		Characteristics: "Medium-large, bright red berries with good flavor",
		GrowthHabit:     "Very vigorous with strong crowns",
		PH:              Range{6.2, 6.6},
		WaterTemp:       Range{18, 20},
		EC:              Range{1.4, 1.6},
	},
	"Seascape": {
		Origin:          "University of California, 1991",
		Characteristics: "Medium-sized, firm berries with excellent flavor",
		GrowthHabit:     "Compact with moderate vigor",
		PH:              Range{5.8, 6.0},
		WaterTemp:       Range{20, 22},
		EC:              Range{1.7, 2.0},
	},
	"Sweet Charlie": {
		Origin:          "University of Florida, 1992",
		Characteristics: "Medium-sized, sweet berries",
		GrowthHabit:     "Moderate vigor with good crown production",
		PH:              Range{6.0, 6.2},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.7},
	},
	"Ozark Beauty": {
		Origin:          "University of Arkansas, 1955",
		Characteristics: "Medium-sized, sweet berries with good aroma",
		GrowthHabit:     "Moderate vigor, everbearing",
		PH:              Range{6.2, 6.5},
		WaterTemp:       Range{18, 20},
		EC:              Range{1.4, 1.6},
	},
	"Quinault": {
		Origin:          "Washington State University, 1967",
		Characteristics: "Medium-sized, soft berries with good flavor",
		GrowthHabit:     "Moderate vigor, everbearing",
		PH:              Range{5.9, 6.1},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.7},
	},
	"Ogallala": {
		Origin:          "USDA, Nebraska, 1978",
		Characteristics: "Small to medium, very sweet berries",
		GrowthHabit:     "Hardy with moderate vigor",
		PH:              Range{6.0, 6.3},
		WaterTemp:       Range{18, 20},
		EC:              Range{1.3, 1.5},
	},
	"Albion": {
		Origin:          "University of California, 2006",
		Characteristics: "Large, firm, dark red berries with excellent flavor",
		GrowthHabit:     "Upright with moderate vigor, day-neutral",
		PH:              Range{5.8, 6.0},
		WaterTemp:       Range{20, 22},
		EC:              Range{1.6, 1.9},
	},
	"San Andreas": {
		Origin:          "University of California, 2009",
		Characteristics: "Large, firm, red berries with good flavor",
		GrowthHabit:     "Upright with good vigor, day-neutral",
		PH:              Range{5.8, 6.0},
		WaterTemp:       Range{20, 22},
		EC:              Range{1.6, 1.8},
	},
	"Monterey": {
		Origin:          "University of California, 2009",
		Characteristics: "Large, flavorful berries",
		GrowthHabit:     "Vigorous with multiple crowns, day-neutral",
		PH:              Range{5.9, 6.1},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.7},
	},
	"Evie-2": {
		Origin:          "Edward Vinson Ltd, UK, 2006",
		Characteristics: "Medium to large berries with good flavor",
		GrowthHabit:     "Moderately vigorous, day-neutral",
		PH:              Range{6.0, 6.2},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.7},
	},
	"Tribute": {
		Origin:          "University of Maryland, 1981",
		Characteristics: "Medium-sized, firm berries with good flavor",
		GrowthHabit:     "Moderate vigor, day-neutral",
		PH:              Range{6.0, 6.2},
		WaterTemp:       Range{19, 21},
		EC:              Range{1.5, 1.7},
	},
}

// ProfileFor returns the profile for a cultivar name, if known.
func ProfileFor(variety string) (VarietyProfile, bool) {
	p, ok := varietyProfiles[variety]
	return p, ok
}
