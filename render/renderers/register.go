// Package renderers holds the layers of every screen; each decides its own visibility per frame
package renderers

import "github.com/lixenwraith/nitrogen-relay/render"

// RegisterAll wires every layer into o at its priority
func RegisterAll(o *render.Orchestrator) {
	o.Register(IntroRenderer{}, render.PriorityScreen)
	o.Register(OrientationRenderer{}, render.PriorityScreen)
	o.Register(FactsRenderer{}, render.PriorityScreen)
	o.Register(LaneRenderer{}, render.PriorityLane)
	o.Register(ParticleRenderer{}, render.PriorityParticle)
	o.Register(SliderRenderer{}, render.PriorityUI)
	o.Register(GaugeRenderer{}, render.PriorityUI)
	o.Register(DetailsRenderer{}, render.PriorityUI)
	o.Register(HeaderRenderer{}, render.PriorityUI)
	o.Register(FooterRenderer{}, render.PriorityUI)
	o.Register(OverlayRenderer{}, render.PriorityOverlay)
	o.Register(PredictionsRenderer{}, render.PriorityOverlay)
	o.Register(StatsRenderer{}, render.PriorityDebug)
}
