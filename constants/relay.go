package constants

import "time"

// Relay Animation Timing
const (
	// RelaySeedDelay is the settle delay between a level change and the first particle batch
	RelaySeedDelay = 500 * time.Millisecond

	// RelayStagger is the start offset between consecutive particles of one batch
	RelayStagger = 400 * time.Millisecond

	// RelayParticleDuration is the travel time of a single particle along its edge
	RelayParticleDuration = 3000 * time.Millisecond

	// RelayDrainTail keeps a batch running after the base duration so trailing particles finish
	RelayDrainTail = 2000 * time.Millisecond

	// RelayCooldown is the pause between a drained batch and the next seed
	RelayCooldown = 1000 * time.Millisecond
)

// Relay Particle Density (particles per edge, indexed by food level)
const (
	RelayParticlesLow    = 1
	RelayParticlesMedium = 2
	RelayParticlesHigh   = 3
)

// Relay Geometry (normalized percent space)
const (
	// RelayArcHeight is the vertical offset at the middle of a particle's travel
	// Negative values lift the particle toward the top of the lane
	RelayArcHeight = -10.0

	// RelayLaneY is the vertical center of all stations
	RelayLaneY = 50.0
)
