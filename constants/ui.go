package constants

import "time"

// Frame Timing
const (
	// DefaultFrameRate is the frame rate used when the config omits one
	DefaultFrameRate = 60

	// MaxFrameRate caps configurable frame rate
	MaxFrameRate = 240
)

// UI Pulse Timing
const (
	// GaugePulseDuration is how long the N2O gauge flashes after a tier change
	GaugePulseDuration = 1200 * time.Millisecond

	// StationPulseDuration is how long active station cards flash after a level change
	StationPulseDuration = 1000 * time.Millisecond
)

// Intro Sequence Timing
const (
	// IntroCharInterval is the typewriter delay per rune
	IntroCharInterval = 75 * time.Millisecond

	// IntroSkipHintDelay is when the skip hint becomes visible
	IntroSkipHintDelay = 1000 * time.Millisecond

	// IntroHold is how long the fully typed text stays before the intro completes
	IntroHold = 1200 * time.Millisecond

	// IntroText is the credit line typed during the intro
	IntroText = "Developed by Sun Lab · University of Pennsylvania"
)

// Slider
const (
	// SliderStep is the control change per arrow key press
	SliderStep = 5

	// SliderStepLarge is the control change with shift held
	SliderStepLarge = 25
)

// UI Layout
const (
	// MinScreenWidth is the narrowest layout that renders the full lab
	MinScreenWidth = 60

	// MinScreenHeight is the shortest layout that renders the full lab
	MinScreenHeight = 20

	// RelayLaneHeight is the row height of a station box
	RelayLaneHeight = 5

	// GaugeWidthMax limits gauge bar width on wide terminals
	GaugeWidthMax = 60

	// StatusMessageTimeout is how long footer status messages remain
	StatusMessageTimeout = 2 * time.Second
)

// Logging
const (
	// LogDir is the default directory for debug logs
	LogDir = "logs"

	// LogFileName is the default debug log file name
	LogFileName = "nitrogen-relay.log"
)

// Config Reload
const (
	// ConfigReloadDebounce coalesces rapid editor writes into one reload
	ConfigReloadDebounce = 200 * time.Millisecond
)
