package renderers

import (
	"github.com/lixenwraith/nitrogen-relay/render"
)

var footerHelp = map[render.Screen]string{
	render.ScreenIntro:       "any key: skip",
	render.ScreenOrientation: "1/2/3 flip card · p predictions · c continue · m mute · F2 stats · q quit",
	render.ScreenRelay:       "←/→ food · 1/2/3 presets · Tab station · ⏎ explore · i gauge · r real world · p predictions · b back · q quit",
}

var overlayHelp = map[render.Overlay]string{
	render.OverlayStation:     "Tab next station · Esc close",
	render.OverlayGauge:       "Esc close",
	render.OverlayRealWorld:   "1/2/3 try scenario · Esc close",
	render.OverlayPredictions: "↑/↓ card · ←/→ answer · f food step · ⏎ lock/unlock · Esc close",
	render.OverlayCelebrate:   "Esc close",
}

// FooterRenderer draws context-sensitive key help on the last row
type FooterRenderer struct{}

func (FooterRenderer) IsVisible(ctx render.Context) bool {
	return ctx.Scene.Screen != render.ScreenIntro
}

func (FooterRenderer) Render(ctx render.Context, c *render.Canvas) {
	help := footerHelp[ctx.Scene.Screen]
	if h, ok := overlayHelp[ctx.Scene.Overlay]; ok {
		help = h
	}
	r := ctx.Layout.Footer
	c.Text(r.X+1, r.Y, render.Truncate(help, r.W-2), render.Fg(render.RgbMuted))
}
