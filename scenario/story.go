package scenario

// Story is a real-world connection card with a recommended food tier to try
type Story struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Impact      string
	Action      string
	Level       FoodLevel
	Color       RGB
}

var stories = []Story{
	{
		ID:          "algae-bloom",
		Title:       "After the Bloom",
		Subtitle:    "Coastal Eutrophication",
		Description: "Extra nutrients fuel algae; as blooms die, food (organic matter) pulses sink to the seafloor.",
		Impact:      "Short, intense N₂O hot moments can appear during/after pulses; fish and shellfish can be stressed by low-oxygen episodes.",
		Action:      "Set Food to High and watch multiple steps light up; note the N₂O gauge bump.",
		Level:       FoodHigh,
		Color:       ColorCoralCTA,
	},
	{
		ID:          "twilight-zone",
		Title:       "Open-Ocean Twilight Zone",
		Subtitle:    "Deep Blue Scarcity",
		Description: "Away from coasts, sinking particles are slower/leaner → food is scarce in the deep ocean.",
		Impact:      "The first step (NO₃⁻→NO₂⁻) is widespread here; it helps explain why we find lots of genes for this early module in many ocean regions.",
		Action:      "Set Food to Low; see first-step specialists dominate and the N₂O gauge stay modest.",
		Level:       FoodLow,
		Color:       ColorTealGlow,
	},
	{
		ID:          "river-mouth",
		Title:       "River Mouth to Shelf",
		Subtitle:    "Variable Conditions",
		Description: "Runoff delivers nutrients that periodically boost food; conditions swing between lean and rich.",
		Impact:      "Coexistence pops up as conditions change, and the handoff molecule can shift, sometimes toward N₂O during richer periods.",
		Action:      "Slide Food from Low → Medium and watch more stations glow together.",
		Level:       FoodMedium,
		Color:       ColorOMZViolet,
	},
}

// Stories returns the real-world connection cards in display order
func Stories() []Story {
	out := make([]Story, len(stories))
	copy(out, stories)
	return out
}
