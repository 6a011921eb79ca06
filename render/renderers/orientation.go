package renderers

import (
	"fmt"

	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// OrientationRenderer draws the glossary cards and readiness checklist
type OrientationRenderer struct{}

func (OrientationRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenOrientation
}

func (OrientationRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	w := ctx.Width

	c.TextCenter(0, 3, w, "Orientation Bay", render.Base().Bold(true))
	c.TextCenter(0, 4, w, "Make your best guesses before we dive into the deep.", render.Fg(render.RgbMuted))

	flipped := 0
	for _, g := range s.Glossary {
		if g.Flipped {
			flipped++
		}
	}
	locked := 0
	for _, p := range s.Predictions {
		if p.Locked {
			locked++
		}
	}
	check := fmt.Sprintf("%s Learn concepts %d/%d    %s Make predictions %d/%d",
		dot(flipped == len(s.Glossary)), flipped, len(s.Glossary),
		dot(locked == len(s.Predictions)), locked, len(s.Predictions))
	c.TextCenter(0, 6, w, check, render.Base())

	n := len(s.Glossary)
	if n == 0 {
		return
	}
	gap := 2
	cardW := (w - 2 - gap*(n-1)) / n
	cardH := 6
	for i, g := range s.Glossary {
		card := render.Card{
			Title:   fmt.Sprintf("%d  %s", i+1, g.Term),
			Variant: render.CardSubtle,
		}
		if g.Flipped {
			card.Variant = render.CardLearned
			card.Sections = []render.Section{{Body: g.Definition}}
		} else {
			card.Sections = []render.Section{{Body: fmt.Sprintf("Press %d to flip", i+1)}}
		}
		card.Draw(c, render.Rect{X: 1 + i*(cardW+gap), Y: 8, W: cardW, H: cardH})
	}

	prompt := "Flip all three cards and lock your predictions (p) to enter the lab"
	style := render.Fg(render.RgbMuted)
	if s.CanEnter {
		prompt = "Ready. Press c to enter the relay lab"
		style = render.Fg(scenario.ColorTealGlow).Bold(true)
	}
	c.TextCenter(0, 8+cardH+1, w, prompt, style)
}

func dot(done bool) string {
	if done {
		return "●"
	}
	return "○"
}
