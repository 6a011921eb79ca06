package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// SliderRenderer draws the food control with its tier thresholds
type SliderRenderer struct{}

func (SliderRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay
}

func (SliderRenderer) Render(ctx render.Context, c *render.Canvas) {
	l := ctx.Layout
	v := ctx.Scene.View
	r := l.Slider
	accent := v.Gas.Color

	c.Text(0, r.Y, "Food  [", render.Base().Bold(true))
	knob := l.KnobColumn(v.Control)
	for x := r.X; x < r.Right(); x++ {
		switch {
		case x == knob:
			c.Put(x, r.Y, '●', render.Fg(render.Brighten(accent, 0.3)).Bold(true))
		case x < knob:
			c.Put(x, r.Y, '━', render.Fg(accent))
		default:
			c.Put(x, r.Y, '─', render.Fg(render.RgbBorder))
		}
	}
	x := c.Text(r.Right(), r.Y, fmt.Sprintf("] %3d  ", v.Control), render.Base())
	c.Text(x, r.Y, v.Details.Label, render.Fg(accent).Bold(true))

	t := l.Ticks
	muted := render.Fg(render.RgbMuted)
	for _, bound := range []scenario.ControlValue{scenario.ControlLowMax, scenario.ControlMediumMax} {
		c.Put(l.KnobColumn(bound), t.Y, '╵', muted)
	}
	lowEnd := l.KnobColumn(scenario.ControlLowMax)
	medEnd := l.KnobColumn(scenario.ControlMediumMax)
	c.TextCenter(t.X, t.Y, lowEnd-t.X, "low", levelStyle(scenario.FoodLow, v.Level))
	c.TextCenter(lowEnd+1, t.Y, medEnd-lowEnd-1, "medium", levelStyle(scenario.FoodMedium, v.Level))
	c.TextCenter(medEnd+1, t.Y, t.Right()-medEnd-1, "high", levelStyle(scenario.FoodHigh, v.Level))
}

func levelStyle(level, current scenario.FoodLevel) tcell.Style {
	if level == current {
		return render.Fg(scenario.GasTierFor(level).Color).Bold(true)
	}
	return render.Fg(render.RgbMuted)
}
