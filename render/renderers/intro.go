package renderers

import (
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// IntroRenderer draws the typewriter credit line
type IntroRenderer struct{}

func (IntroRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenIntro
}

func (IntroRenderer) Render(ctx render.Context, c *render.Canvas) {
	mid := ctx.Height / 2
	c.TextCenter(0, mid-2, ctx.Width, "NITROGEN RELAY", render.Fg(scenario.ColorPrimary).Bold(true))
	c.TextCenter(0, mid, ctx.Width, ctx.Scene.IntroText, render.Base())
	if ctx.Scene.IntroSkipHint {
		c.TextCenter(0, ctx.Height-2, ctx.Width, "Press any key to skip", render.Fg(render.RgbMuted).Italic(true))
	}
}
