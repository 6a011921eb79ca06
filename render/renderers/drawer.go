package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// PredictionsRenderer draws the prediction drawer overlay
type PredictionsRenderer struct{}

func (PredictionsRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Overlay == render.OverlayPredictions
}

func (PredictionsRenderer) Render(ctx render.Context, c *render.Canvas) {
	card := DrawerCard(ctx.Scene.Predictions, ctx.Scene.PredictSel)
	card.Draw(c, card.Centered(ctx.Width, ctx.Height, overlayWidth))
}

// DrawerCard lays the three prediction cards out as sections
func DrawerCard(cards [progress.PredictionCount]progress.Prediction, sel progress.PredictionKind) render.Card {
	sections := make([]render.Section, 0, len(cards))
	locked := 0
	for i, p := range cards {
		marker := "  "
		if progress.PredictionKind(i) == sel {
			marker = "▸ "
		}
		heading := fmt.Sprintf("%s%d. %s", marker, i+1, p.Kind.Title())
		color := render.RgbForeground
		if p.Locked {
			heading += "  🔒 locked"
			color = render.RgbLearned
			locked++
		}
		sections = append(sections, render.Section{
			Heading: heading,
			Body:    p.Kind.Question() + " " + OptionLine(p),
			Color:   color,
		})
	}

	variant := render.CardIntense
	if locked == len(cards) {
		variant = render.CardLearned
	}
	return render.Card{
		Title:    fmt.Sprintf("Predictions %d/%d locked", locked, len(cards)),
		Variant:  variant,
		Sections: sections,
	}
}

// OptionLine renders a card's choices with the selection bracketed
func OptionLine(p progress.Prediction) string {
	var parts []string
	switch p.Kind {
	case progress.PredictN2OGuess:
		for _, f := range progress.N2OFoodSteps {
			parts = append(parts, choice(fmt.Sprint(int(f)), f == p.Food))
		}
		parts = append(parts, "→ N₂O:")
		for _, lvl := range scenario.FoodLevels() {
			parts = append(parts, choice(lvl.String(), p.Guess != nil && *p.Guess == lvl))
		}
		return "Food " + strings.Join(parts, " ")
	case progress.PredictDominantStep:
		for _, st := range scenario.Stations() {
			parts = append(parts, choice(st.Label, p.Step != nil && *p.Step == st.ID))
		}
	case progress.PredictPulseResponse:
		for _, g := range progress.PulseGuesses() {
			parts = append(parts, choice(g.Label(), p.Pulse == g))
		}
	}
	return strings.Join(parts, "  ")
}

func choice(label string, selected bool) string {
	if selected {
		return "[" + label + "]"
	}
	return label
}
