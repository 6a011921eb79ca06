package scenario

// GasTier describes the greenhouse-gas output of a food tier
type GasTier struct {
	Level         FoodLevel
	Label         string
	Percentage    int
	Color         RGB
	Description   string
	Explanation   string
	ClimateImpact string
	RelayStatus   string
	RealWorld     string
	CO2Equivalent string
	Intensity     float64
	Alert         bool
}

// GaugeMarker is a labelled threshold on the N2O gauge
type GaugeMarker struct {
	Level      FoodLevel
	Label      string
	Percentage int
	Threshold  string
}

var gasTiers = [FoodLevelCount]GasTier{
	FoodLow: {
		Level:         FoodLow,
		Label:         "Low",
		Percentage:    20,
		Color:         ColorTealGlow,
		Description:   "Minimal N₂O production",
		Explanation:   "Only first-step specialists are active, so very little N₂O is produced",
		ClimateImpact: "Negligible contribution to greenhouse warming",
		RelayStatus:   "Single-step operation, baton rarely passed beyond nitrate",
		RealWorld:     "Typical of deep ocean twilight zones where food is scarce",
		CO2Equivalent: "~60x CO₂ warming potential",
		Intensity:     0.3,
	},
	FoodMedium: {
		Level:         FoodMedium,
		Label:         "Medium",
		Percentage:    55,
		Color:         ColorOMZViolet,
		Description:   "Moderate N₂O levels",
		Explanation:   "Two-step relay reaches nitrite, producing modest N₂O levels",
		ClimateImpact: "Moderate contribution to ocean greenhouse gas emissions",
		RelayStatus:   "Coexistence allows second step activation, N₂O as intermediate",
		RealWorld:     "Common in coastal margins and river mouths during seasonal cycles",
		CO2Equivalent: "~300x CO₂ warming potential",
		Intensity:     0.6,
	},
	FoodHigh: {
		Level:         FoodHigh,
		Label:         "High",
		Percentage:    85,
		Color:         ColorCoralCTA,
		Description:   "Elevated greenhouse gas",
		Explanation:   "Full relay active but finish line gets crowded, causing N₂O escape",
		ClimateImpact: "Significant greenhouse gas emissions - major climate concern",
		RelayStatus:   "Bottleneck at final step allows N₂O buildup before conversion to N₂",
		RealWorld:     "Occurs during bloom decay events and in high-productivity zones",
		CO2Equivalent: "~300x CO₂ warming potential",
		Intensity:     0.9,
		Alert:         true,
	},
}

// GasTierFor returns the N2O tier produced at a food level
func GasTierFor(level FoodLevel) GasTier {
	mustLevel(level)
	return gasTiers[level]
}

// GaugeMarkers returns the gauge thresholds in ascending order
func GaugeMarkers() []GaugeMarker {
	thresholds := [FoodLevelCount]string{"Safe", "Moderate", "Concern"}
	out := make([]GaugeMarker, 0, FoodLevelCount)
	for _, t := range gasTiers {
		out = append(out, GaugeMarker{
			Level:      t.Level,
			Label:      t.Label,
			Percentage: t.Percentage,
			Threshold:  thresholds[t.Level],
		})
	}
	return out
}

// ClimateNote is the standing explanation of why N2O matters
const ClimateNote = "Nitrous oxide persists in the atmosphere for ~120 years and is 300x more potent than CO₂. " +
	"Ocean denitrification produces ~40% of global N₂O emissions, making microbial relay " +
	"efficiency crucial for climate regulation."
