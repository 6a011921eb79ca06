package render

import (
	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/scenario"
	"github.com/lixenwraith/nitrogen-relay/status"
	"github.com/lixenwraith/nitrogen-relay/systems"
)

// Screen is the top-level page shown
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenOrientation
	ScreenRelay
)

// Overlay is the modal card drawn above the screen
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStation
	OverlayGauge
	OverlayRealWorld
	OverlayPredictions
	OverlayCelebrate
)

// ConceptLine is one row of the concept progress list
type ConceptLine struct {
	Concept progress.Concept
	Status  progress.Status
}

// Scene is the immutable snapshot a frame is drawn from
type Scene struct {
	Screen  Screen
	Overlay Overlay

	View         scenario.View
	Particles    []systems.Particle
	GaugePulse   bool
	StationPulse bool

	Focus    scenario.StationID
	HasFocus bool
	Explored [scenario.StationCount]bool

	Concepts      []ConceptLine
	ConceptsDone  int
	ConceptsTotal int

	Glossary    []progress.GlossaryCard
	Predictions [progress.PredictionCount]progress.Prediction
	PredictSel  progress.PredictionKind
	CanEnter    bool

	IntroText     string
	IntroSkipHint bool

	Status string
	Muted  bool

	ShowStats bool
	Stats     []status.Metric
}
