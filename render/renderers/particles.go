package renderers

import (
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// ParticleRenderer draws in-flight compound tokens above the lane
type ParticleRenderer struct{}

func (ParticleRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay
}

func (ParticleRenderer) Render(ctx render.Context, c *render.Canvas) {
	l := ctx.Layout
	active := ctx.Scene.View.Active
	baseline := l.Band.Bottom() - 1

	if n := len(active); n > 0 {
		first := l.Column(scenario.StationByID(active[0]).X)
		last := l.Column(scenario.StationByID(active[n-1]).X)
		for x := first; x <= last; x++ {
			c.Put(x, baseline, '┄', render.Fg(render.RgbBorder))
		}
	}

	for _, p := range ctx.Scene.Particles {
		if !p.Active || p.Progress <= 0 {
			continue
		}
		x := l.Column(p.X)
		y := l.BandRow(p.Y)
		c.Put(x, y, p.Compound.Glyph(), render.Fg(p.Compound.Color()).Bold(true))
	}
}
