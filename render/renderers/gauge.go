package renderers

import (
	"fmt"
	"math"

	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// GaugeRenderer draws the N2O output meter with tier markers
type GaugeRenderer struct{}

func (GaugeRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay
}

func (GaugeRenderer) Render(ctx render.Context, c *render.Canvas) {
	l := ctx.Layout
	gas := ctx.Scene.View.Gas
	r := l.Gauge

	color := gas.Color
	if ctx.Scene.GaugePulse {
		color = render.Brighten(color, 0.4)
	}

	c.Text(0, r.Y, "N₂O   [", render.Base().Bold(true))
	filled := gaugeFill(gas.Percentage, r.W)
	for x := 0; x < r.W; x++ {
		if x < filled {
			c.Put(r.X+x, r.Y, '█', render.Fg(color))
		} else {
			c.Put(r.X+x, r.Y, '░', render.Fg(render.RgbTrack))
		}
	}
	x := c.Text(r.Right(), r.Y, fmt.Sprintf("] %2d%% ", gas.Percentage), render.Base())
	x = c.Text(x, r.Y, gas.Label, render.Fg(color).Bold(true))
	if gas.Alert {
		style := render.Fg(scenario.ColorCoralCTA).Bold(true)
		if ctx.Scene.GaugePulse {
			style = style.Reverse(true)
		}
		c.Text(x+1, r.Y, "⚠ N₂O spike risk", style)
	}

	m := l.Markers
	for _, mk := range scenario.GaugeMarkers() {
		mx := m.X + gaugeFill(mk.Percentage, m.W) - 1
		style := render.Fg(render.RgbMuted)
		if mk.Level == gas.Level {
			style = render.Fg(gas.Color).Bold(true)
		}
		c.Put(mx, m.Y, '▲', style)
		c.Text(mx+1, m.Y, mk.Threshold, style)
	}
}

// gaugeFill is the number of cells lit for a percentage over width cells
func gaugeFill(pct, width int) int {
	return int(math.Round(float64(pct) / 100 * float64(width)))
}
