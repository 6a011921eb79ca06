package renderers

import (
	"strings"

	"github.com/lixenwraith/nitrogen-relay/render"
)

// StatsRenderer draws live session counters above the footer
type StatsRenderer struct{}

func (StatsRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.ShowStats && len(ctx.Scene.Stats) > 0
}

func (StatsRenderer) Render(ctx render.Context, c *render.Canvas) {
	parts := make([]string, len(ctx.Scene.Stats))
	for i, m := range ctx.Scene.Stats {
		parts[i] = m.Key + "=" + m.Value
	}
	r := ctx.Layout.Footer
	line := render.Truncate(strings.Join(parts, "  "), r.W-2)
	c.TextRight(r.Right()-1, r.Y-1, line, render.Fg(render.RgbMuted))
}
