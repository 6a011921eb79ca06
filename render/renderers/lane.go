package renderers

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// LaneRenderer draws the four relay stations and the arrows between them
type LaneRenderer struct{}

func (LaneRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen == render.ScreenRelay
}

func (LaneRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	l := ctx.Layout
	level := s.View.Level

	for i, st := range scenario.Stations() {
		rect := l.Stations[i]
		intensity := s.View.Intensities[i]
		active := scenario.IsActive(st.ID, level)
		focused := s.HasFocus && s.Focus == st.ID

		color := render.Dim(st.Color, intensity)
		if active && s.StationPulse {
			color = render.Brighten(color, 0.35)
		}
		border := render.Fg(color)
		title := render.Fg(color).Bold(active)
		if focused {
			border = border.Bold(true)
			title = title.Reverse(true)
		}

		label := st.Label
		if focused {
			label = "▸ " + label
		}
		c.Box(rect, label, border, title)

		inner := rect.W - 2
		textStyle := render.Fg(render.Dim(render.RgbForeground, math.Max(intensity, 0.45)))
		c.TextCenter(rect.X+1, rect.Y+1, inner, st.Name, textStyle)
		c.TextCenter(rect.X+1, rect.Y+2, inner, IntensityBar(intensity, 5)+fmt.Sprintf(" %d%%", int(math.Round(intensity*100))), render.Fg(color))

		state := "dormant"
		if active {
			state = "active"
		}
		if s.Explored[i] {
			state += " ✓"
		}
		stateStyle := render.Fg(render.RgbMuted)
		if s.Explored[i] {
			stateStyle = render.Fg(render.RgbLearned)
		}
		c.TextCenter(rect.X+1, rect.Y+3, inner, state, stateStyle)
	}

	mid := l.Stations[0].Y + l.Stations[0].H/2
	for i := 0; i+1 < scenario.StationCount; i++ {
		from, to := l.Stations[i], l.Stations[i+1]
		x := (from.Right() + to.X) / 2
		style := render.Fg(render.RgbBorder)
		if scenario.IsActive(scenario.StationID(i+1), level) {
			style = render.Fg(scenario.StationByID(scenario.StationID(i)).Color).Bold(true)
		}
		c.Put(x, mid, '→', style)
	}
}

// IntensityBar renders intensity in [0,1] as n segments
func IntensityBar(intensity float64, n int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, intensity)) * float64(n)))
	return strings.Repeat("▰", filled) + strings.Repeat("▱", n-filled)
}
