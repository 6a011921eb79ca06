package renderers

import (
	"fmt"

	"github.com/lixenwraith/nitrogen-relay/render"
)

// FactsRenderer draws the scenario headline of the current food tier
type FactsRenderer struct{}

func (FactsRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay
}

func (FactsRenderer) Render(ctx render.Context, c *render.Canvas) {
	r := ctx.Layout.Facts
	d := ctx.Scene.View.Details
	accent := ctx.Scene.View.Gas.Color

	x := c.Text(r.X, r.Y, d.Emoji+" ", render.Base())
	x = c.Text(x, r.Y, d.Label+" food", render.Fg(accent).Bold(true))
	c.Text(x, r.Y, " · "+render.Truncate(d.Scenario, r.W-x), render.Base())
	c.Text(r.X, r.Y+1, render.Truncate(fmt.Sprintf("%s · %s", d.Location, d.TimeScale), r.W), render.Fg(render.RgbMuted))
}
