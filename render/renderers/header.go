package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// HeaderRenderer draws the title bar, concept progress and status line
type HeaderRenderer struct{}

func (HeaderRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen != render.ScreenIntro
}

func (HeaderRenderer) Render(ctx render.Context, c *render.Canvas) {
	l := ctx.Layout
	s := ctx.Scene

	c.Fill(l.Header, ' ', render.Base().Background(render.Color(render.RgbTrack)))
	bar := render.Base().Background(render.Color(render.RgbTrack))
	c.Text(1, l.Header.Y, "NITROGEN RELAY", bar.Foreground(render.Color(scenario.ColorPrimary)).Bold(true))
	c.Text(16, l.Header.Y, "· ocean denitrification lab", bar.Foreground(render.Color(render.RgbMuted)))

	right := fmt.Sprintf("Concepts %d/%d %s", s.ConceptsDone, s.ConceptsTotal, ProgressBar(s.ConceptsDone, s.ConceptsTotal))
	if s.Muted {
		right = "♪ muted  " + right
	}
	c.TextRight(l.Header.Right()-1, l.Header.Y, right, bar.Foreground(render.Color(render.RgbForeground)))

	if s.Status != "" {
		c.TextCenter(0, l.Status.Y, l.Width, s.Status, render.Fg(scenario.ColorPrimary).Italic(true))
	}
}

// ProgressBar renders done of total as filled and empty squares
func ProgressBar(done, total int) string {
	if total <= 0 {
		return ""
	}
	done = max(0, min(done, total))
	return strings.Repeat("■", done) + strings.Repeat("□", total-done)
}
