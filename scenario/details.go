package scenario

// Details is the hardcoded scenario metadata of a food tier
type Details struct {
	Level             FoodLevel
	Label             string
	Emoji             string
	Numeric           int
	Scenario          string
	Location          string
	TimeScale         string
	MicrobialStrategy string
	N2ORisk           string
	Summary           string
	FlowNote          string
	AmbientParticles  int
}

var details = [FoodLevelCount]Details{
	FoodLow: {
		Level:             FoodLow,
		Label:             "Sparse",
		Emoji:             "🪶",
		Numeric:           0,
		Scenario:          "Open-Ocean Twilight Zone",
		Location:          "Deep ocean (200-1000m)",
		TimeScale:         "Year-round steady state",
		MicrobialStrategy: "First-step specialists 'travel light' with minimal enzymes",
		N2ORisk:           "Low - limited microbial activity",
		Summary: "With scarce food, only first-step specialists can afford to stay active. " +
			"They efficiently process nitrate but pass the baton quickly to conserve energy.",
		FlowNote:         "Single-step specialists dominate • Minimal relay activity",
		AmbientParticles: 3,
	},
	FoodMedium: {
		Level:             FoodMedium,
		Label:             "Moderate",
		Emoji:             "🥄",
		Numeric:           50,
		Scenario:          "River Mouth & Shelf Waters",
		Location:          "Coastal margins (0-200m)",
		TimeScale:         "Seasonal pulses",
		MicrobialStrategy: "Coexistence of multiple specialist teams",
		N2ORisk:           "Medium - relay reaches nitrite stage",
		Summary: "Moderate food allows coexistence! First and second-step specialists work together, " +
			"creating a two-step relay that reaches nitrite consistently.",
		FlowNote:         "Two-step relay active • Coexistence emerges",
		AmbientParticles: 8,
	},
	FoodHigh: {
		Level:             FoodHigh,
		Label:             "Abundant",
		Emoji:             "🍽️",
		Numeric:           100,
		Scenario:          "Fresh Bloom Fallout",
		Location:          "Post-bloom zones, upwelling areas",
		TimeScale:         "Days to weeks after blooms",
		MicrobialStrategy: "Multi-step teams with complete enzyme toolkits",
		N2ORisk:           "High - bottlenecks cause greenhouse gas spikes",
		Summary: "Abundant food supports multi-step teams with complete enzyme toolkits. " +
			"Watch the N₂O gauge - when all steps are active, bottlenecks can cause greenhouse gas spikes!",
		FlowNote:         "Multi-step teams active • Watch for N₂O spikes",
		AmbientParticles: 15,
	},
}

// DetailsFor returns the scenario metadata of a tier
func DetailsFor(level FoodLevel) Details {
	mustLevel(level)
	return details[level]
}

// AllDetails returns metadata for every tier in ascending order
func AllDetails() []Details {
	out := make([]Details, FoodLevelCount)
	copy(out, details[:])
	return out
}

// View is the derived view-model consumed by the presentation layer
type View struct {
	Control     ControlValue
	Level       FoodLevel
	Active      []StationID
	Intensities [StationCount]float64
	Gas         GasTier
	Details     Details
}

// Resolve derives the full view-model from a raw control reading
func Resolve(control float64) View {
	c := NewControlValue(control)
	v := ViewFor(c.Level())
	v.Control = c
	return v
}

// ViewFor derives the view-model of a tier at its preset control position
func ViewFor(level FoodLevel) View {
	mustLevel(level)
	v := View{
		Control: ControlValue(details[level].Numeric),
		Level:   level,
		Active:  ActiveStations(level),
		Gas:     gasTiers[level],
		Details: details[level],
	}
	for i := range v.Intensities {
		v.Intensities[i] = Intensity(StationID(i), level)
	}
	return v
}
