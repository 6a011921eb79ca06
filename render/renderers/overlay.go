package renderers

import (
	"fmt"
	"math"

	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

const overlayWidth = 72

// OverlayRenderer draws the modal info cards: station, gauge, real world and celebration
type OverlayRenderer struct{}

func (OverlayRenderer) IsVisible(ctx render.Context) bool {
	switch ctx.Scene.Overlay {
	case render.OverlayStation, render.OverlayGauge, render.OverlayRealWorld, render.OverlayCelebrate:
		return true
	}
	return false
}

func (OverlayRenderer) Render(ctx render.Context, c *render.Canvas) {
	card := OverlayCard(ctx.Scene)
	card.Draw(c, card.Centered(ctx.Width, ctx.Height, overlayWidth))
}

// OverlayCard builds the card for the scene's active overlay
func OverlayCard(s render.Scene) render.Card {
	switch s.Overlay {
	case render.OverlayStation:
		return StationCard(s.Focus, s.View)
	case render.OverlayGauge:
		return GaugeCard(s.View.Gas)
	case render.OverlayRealWorld:
		return RealWorldCard()
	case render.OverlayCelebrate:
		return CelebrateCard(s.Concepts)
	}
	return render.Card{}
}

// StationCard explains one relay step at the current tier
func StationCard(id scenario.StationID, v scenario.View) render.Card {
	st := scenario.StationByID(id)
	now := fmt.Sprintf("Dormant at %s food (%d%% activity).", v.Details.Label, pct(v.Intensities[id]))
	if scenario.IsActive(id, v.Level) {
		now = fmt.Sprintf("Active at %s food (%d%% activity).", v.Details.Label, pct(v.Intensities[id]))
	}
	return render.Card{
		Title:   st.Label + " · " + st.Name,
		Variant: render.CardIntense,
		Accent:  st.Color,
		Sections: []render.Section{
			{Heading: st.Role, Body: st.Process},
			{Body: st.Description},
			{Heading: "Who does it", Body: st.Specialists},
			{Heading: "In the ocean", Body: st.RealWorld},
			{Heading: "Right now", Body: now},
		},
	}
}

// GaugeCard explains the current N2O tier
func GaugeCard(gas scenario.GasTier) render.Card {
	variant := render.CardIntense
	if gas.Alert {
		variant = render.CardAlert
	}
	return render.Card{
		Title:   fmt.Sprintf("N₂O output · %s (%d%%)", gas.Label, gas.Percentage),
		Variant: variant,
		Accent:  gas.Color,
		Sections: []render.Section{
			{Heading: gas.Description, Body: gas.Explanation},
			{Heading: "Relay status", Body: gas.RelayStatus},
			{Heading: "Climate impact", Body: gas.ClimateImpact + " (" + gas.CO2Equivalent + ")"},
			{Heading: "Where it happens", Body: gas.RealWorld},
			{Body: scenario.ClimateNote},
		},
	}
}

// RealWorldCard lists the story cards with the tier each recommends
func RealWorldCard() render.Card {
	stories := scenario.Stories()
	sections := make([]render.Section, 0, len(stories))
	for i, st := range stories {
		sections = append(sections, render.Section{
			Heading: fmt.Sprintf("%d  %s · %s", i+1, st.Title, st.Subtitle),
			Body:    st.Description + " " + st.Action,
			Color:   st.Color,
		})
	}
	return render.Card{
		Title:    "Why scientists care",
		Variant:  render.CardIntense,
		Sections: sections,
		Footer:   "Press a number to try that scenario",
	}
}

// CelebrateCard marks completion of every concept
func CelebrateCard(lines []render.ConceptLine) render.Card {
	sections := make([]render.Section, 0, len(lines))
	for _, l := range lines {
		heading := l.Concept.Title
		if l.Status == progress.StatusCompleted {
			heading = "✓ " + heading
		}
		sections = append(sections, render.Section{Heading: heading, Body: l.Concept.Description})
	}
	return render.Card{
		Title:    "Relay mastered: all concepts learned",
		Variant:  render.CardLearned,
		Sections: sections,
	}
}

func pct(v float64) int {
	return int(math.Round(v * 100))
}
