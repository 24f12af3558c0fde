// Package agronomy carries the reference knowledge behind the
// dashboard's guidance panels: common strawberry diseases with
// condition-driven risk assessment, and growth-stage nutrient
// recommendations.
package agronomy

import (
	"fmt"
	"sort"

	"github.com/luki/aquamind/internal/reading"
)

// RiskLevel classifies how strongly the current conditions favor a
// disease.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Disease describes one common strawberry disease and the conditions
// that favor it. severity maps a measured parameter to the risk it
// contributes at a given value.
type Disease struct {
	Name       string
	Pathogen   string
	Symptoms   []string
	Prevention []string
	Treatment  []string

	severity map[reading.Parameter]func(float64) RiskLevel
}

func band(v float64, high, medium func(float64) bool) RiskLevel {
	switch {
	case high != nil && high(v):
		return RiskHigh
	case medium != nil && medium(v):
		return RiskMedium
	default:
		return RiskLow
	}
}

// Diseases returns the disease catalog in display order.
func Diseases() []Disease {
	return []Disease{
		{
			Name:     "Anthracnose",
			Pathogen: "Colletotrichum species",
			Symptoms: []string{
				"Dark, water-soaked lesions on fruit",
				"Sunken, dark brown to black lesions on stolons and petioles",
				"Wilting and death of younger leaves",
			},
			Prevention: []string{
				"Use disease-free transplants",
				"Avoid overhead irrigation",
				"Maintain good air circulation",
			},
			Treatment: []string{
				"Remove and destroy infected plants",
				"Apply fungicides preventatively during early bloom",
				"Control humidity levels in greenhouse systems",
			},
			severity: map[reading.Parameter]func(float64) RiskLevel{
				reading.ParamPH: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x < 5.5 || x > 7.0 },
						func(x float64) bool { return x < 6.0 || x > 6.5 })
				},
				reading.ParamHumidity: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 80 },
						func(x float64) bool { return x > 65 })
				},
				reading.ParamWaterTemp: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 25 },
						func(x float64) bool { return x > 22 })
				},
			},
		},
		{
			Name:     "Botrytis Fruit Rot (Gray Mold)",
			Pathogen: "Botrytis cinerea",
			Symptoms: []string{
				"Gray fuzzy mold on fruit",
				"Brown lesions on fruit that enlarge rapidly",
				"Soft, light brown rot on ripening fruit",
			},
			Prevention: []string{
				"Maintain good air circulation",
				"Remove old leaves, flowers, and fruit",
				"Use drip irrigation",
			},
			Treatment: []string{
				"Remove and destroy infected plant material",
				"Apply fungicides during flowering",
				"Maintain humidity below 80%",
			},
			severity: map[reading.Parameter]func(float64) RiskLevel{
				reading.ParamPH: func(v float64) RiskLevel {
					return band(v, nil,
						func(x float64) bool { return x < 5.5 || x > 6.5 })
				},
				reading.ParamHumidity: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 80 },
						func(x float64) bool { return x > 70 })
				},
				reading.ParamWaterTemp: func(v float64) RiskLevel {
					return band(v, nil,
						func(x float64) bool { return x < 16 || x > 24 })
				},
			},
		},
		{
			Name:     "Powdery Mildew",
			Pathogen: "Podosphaera aphanis",
			Symptoms: []string{
				"White powdery growth on leaf surfaces",
				"Upward curling of leaf edges",
				"Reduced fruit size and quality",
			},
			Prevention: []string{
				"Plant resistant varieties",
				"Avoid excessive nitrogen application",
				"Keep leaf surfaces dry",
			},
			Treatment: []string{
				"Apply fungicides at first sign of disease",
				"Use potassium bicarbonate sprays",
				"Increase silicon in nutrient solution",
			},
			severity: map[reading.Parameter]func(float64) RiskLevel{
				reading.ParamPH: func(v float64) RiskLevel {
					return band(v, nil,
						func(x float64) bool { return x > 6.5 })
				},
				reading.ParamEC: func(v float64) RiskLevel {
					return band(v, nil,
						func(x float64) bool { return x > 2.2 })
				},
				reading.ParamHumidity: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 80 },
						func(x float64) bool { return x > 70 })
				},
			},
		},
		{
			Name:     "Common Leaf Spot",
			Pathogen: "Mycosphaerella fragariae",
			Symptoms: []string{
				"Small purple spots on leaves",
				"Spots enlarge to form tan centers with purple margins",
				"Severely infected leaves may turn brown and die",
			},
			Prevention: []string{
				"Use disease-free transplants",
				"Use drip irrigation",
				"Remove old leaves after harvest",
			},
			Treatment: []string{
				"Remove and destroy infected leaves",
				"Apply fungicides preventatively",
				"Avoid overhead irrigation",
			},
			severity: map[reading.Parameter]func(float64) RiskLevel{
				reading.ParamPH: func(v float64) RiskLevel {
					return band(v, nil,
						func(x float64) bool { return x < 5.5 || x > 6.5 })
				},
				reading.ParamHumidity: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 80 },
						func(x float64) bool { return x > 70 })
				},
			},
		},
		{
			Name:     "Root and Crown Rot",
			Pathogen: "Phytophthora, Pythium, Rhizoctonia species",
			Symptoms: []string{
				"Wilting despite adequate moisture",
				"Brown or black roots",
				"Reddish-brown discoloration of crown",
			},
			Prevention: []string{
				"Maintain proper water temperature (18-22°C)",
				"Ensure adequate oxygenation in nutrient solution",
				"Disinfect hydroponic systems between crops",
			},
			Treatment: []string{
				"Remove and destroy infected plants",
				"Decrease water temperature to 18-20°C",
				"Apply beneficial microorganisms (Trichoderma)",
			},
			severity: map[reading.Parameter]func(float64) RiskLevel{
				reading.ParamPH: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x < 5.5 || x > 6.5 },
						func(x float64) bool { return x < 5.8 || x > 6.2 })
				},
				reading.ParamEC: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 2.2 },
						func(x float64) bool { return x > 2.0 })
				},
				reading.ParamWaterTemp: func(v float64) RiskLevel {
					return band(v,
						func(x float64) bool { return x > 24 },
						func(x float64) bool { return x > 22 })
				},
			},
		},
	}
}

// Risk is the assessed likelihood of one disease under the current
// averaged conditions.
type Risk struct {
	Disease string
	Level   RiskLevel
	Score   int
	Factors []string
}

// riskPoints maps a per-parameter severity to its score contribution.
var riskPoints = map[RiskLevel]int{RiskHigh: 3, RiskMedium: 2}

func factorLabel(p reading.Parameter, v float64) string {
	prec := p.Precision()
	switch p {
	case reading.ParamPH:
		return fmt.Sprintf("pH %.*f", prec, v)
	case reading.ParamEC:
		return fmt.Sprintf("EC %.*f mS/cm", prec, v)
	case reading.ParamHumidity:
		return fmt.Sprintf("Humidity %.*f%%", prec, v)
	case reading.ParamWaterTemp:
		return fmt.Sprintf("Water temp %.*f°C", prec, v)
	}
	return fmt.Sprintf("%s %.*f", p.Label(), prec, v)
}

// AssessRisks scores every cataloged disease against the averaged
// water-side parameters: High severity adds 3 points, Medium 2; a
// total of 6 or more is High risk, 3 or more Medium, otherwise Low.
// Results are ordered highest risk first.
func AssessRisks(ph, ec, humidity, waterTemp float64) []Risk {
	values := map[reading.Parameter]float64{
		reading.ParamPH:        ph,
		reading.ParamEC:        ec,
		reading.ParamHumidity:  humidity,
		reading.ParamWaterTemp: waterTemp,
	}

	diseases := Diseases()
	risks := make([]Risk, 0, len(diseases))
	for _, d := range diseases {
		r := Risk{Disease: d.Name}
		for _, p := range reading.Parameters() {
			sev, ok := d.severity[p]
			if !ok {
				continue
			}
			level := sev(values[p])
			pts := riskPoints[level]
			if pts == 0 {
				continue
			}
			r.Score += pts
			r.Factors = append(r.Factors, fmt.Sprintf("%s (%s risk)", factorLabel(p, values[p]), level))
		}
		switch {
		case r.Score >= 6:
			r.Level = RiskHigh
		case r.Score >= 3:
			r.Level = RiskMedium
		default:
			r.Level = RiskLow
		}
		risks = append(risks, r)
	}

	sort.SliceStable(risks, func(i, j int) bool { return risks[i].Score > risks[j].Score })
	return risks
}
