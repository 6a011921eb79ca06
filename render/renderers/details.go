package renderers

import (
	"github.com/lixenwraith/nitrogen-relay/render"
)

// DetailsRenderer fills the remaining rows with the tier explanation
type DetailsRenderer struct{}

func (DetailsRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay && ctx.Layout.Details.H > 0
}

func (DetailsRenderer) Render(ctx render.Context, c *render.Canvas) {
	r := ctx.Layout.Details
	v := ctx.Scene.View
	accent := v.Gas.Color

	type row struct {
		label, text string
	}
	rows := []row{
		{"Strategy  ", v.Details.MicrobialStrategy},
		{"N₂O risk  ", v.Details.N2ORisk},
		{"Flow      ", v.Details.FlowNote},
	}

	y := r.Y
	for _, rw := range rows {
		if y >= r.Bottom() {
			return
		}
		x := c.Text(r.X, y, rw.label, render.Fg(accent))
		c.Text(x, y, render.Truncate(rw.text, r.Right()-x), render.Base())
		y++
	}

	y++
	for _, line := range render.Wrap(v.Details.Summary, r.W) {
		if y >= r.Bottom() {
			return
		}
		c.Text(r.X, y, line, render.Fg(render.RgbMuted))
		y++
	}
}
