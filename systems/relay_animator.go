package systems

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/engine"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// RelayPhase is the state of the particle cycle
type RelayPhase int

const (
	PhaseIdle RelayPhase = iota
	PhaseSeeding
	PhaseRunning
	PhaseCooldown
)

func (p RelayPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSeeding:
		return "seeding"
	case PhaseRunning:
		return "running"
	case PhaseCooldown:
		return "cooldown"
	}
	return fmt.Sprintf("RelayPhase(%d)", int(p))
}

// RelayTimings tunes the particle cycle
type RelayTimings struct {
	SeedDelay        time.Duration
	Stagger          time.Duration
	Duration         time.Duration
	DrainTail        time.Duration
	Cooldown         time.Duration
	ParticlesPerEdge [scenario.FoodLevelCount]int
}

// DefaultRelayTimings returns the reference cycle timings
func DefaultRelayTimings() RelayTimings {
	return RelayTimings{
		SeedDelay: constants.RelaySeedDelay,
		Stagger:   constants.RelayStagger,
		Duration:  constants.RelayParticleDuration,
		DrainTail: constants.RelayDrainTail,
		Cooldown:  constants.RelayCooldown,
		ParticlesPerEdge: [scenario.FoodLevelCount]int{
			scenario.FoodLow:    constants.RelayParticlesLow,
			scenario.FoodMedium: constants.RelayParticlesMedium,
			scenario.FoodHigh:   constants.RelayParticlesHigh,
		},
	}
}

// Edge is one hop of particle flow between two stations
type Edge struct {
	From, To scenario.StationID
}

// Particle is a transient token moving along an edge
type Particle struct {
	ID         string // <generation>.<cycle>-<index>
	Generation uint64
	Index      int
	From, To   scenario.StationID
	Compound   scenario.Compound
	Delay      time.Duration
	Progress   float64
	Active     bool
	X, Y       float64 // normalized percent space
}

// RelayEdges returns the flow edges of an active prefix
// A single active station yields a self-edge so the first station still animates
func RelayEdges(active []scenario.StationID) []Edge {
	switch len(active) {
	case 0:
		return nil
	case 1:
		return []Edge{{From: active[0], To: active[0]}}
	}
	edges := make([]Edge, 0, len(active)-1)
	for i := 0; i+1 < len(active); i++ {
		edges = append(edges, Edge{From: active[i], To: active[i+1]})
	}
	return edges
}

// BuildBatch constructs the particles of one cycle, edge-major, staggered by global index
// IDs are unique per cycle so a reseeded batch never reuses a finished particle's identity
func BuildBatch(level scenario.FoodLevel, generation uint64, cycle int, t RelayTimings) []Particle {
	edges := RelayEdges(scenario.ActiveStations(level))
	perEdge := t.ParticlesPerEdge[level]
	batch := make([]Particle, 0, len(edges)*perEdge)

	for _, e := range edges {
		compound := scenario.CompoundAt(e.From)
		for i := 0; i < perEdge; i++ {
			index := len(batch)
			p := Particle{
				ID:         fmt.Sprintf("%d.%d-%d", generation, cycle, index),
				Generation: generation,
				Index:      index,
				From:       e.From,
				To:         e.To,
				Compound:   compound,
				Delay:      time.Duration(index) * t.Stagger,
				Active:     true,
			}
			p.X, p.Y = ParticlePosition(p.From, p.To, 0)
			batch = append(batch, p)
		}
	}
	return batch
}

// ParticlePosition interpolates along an edge with easing and a vertical arc
func ParticlePosition(from, to scenario.StationID, progress float64) (x, y float64) {
	a := scenario.StationByID(from)
	b := scenario.StationByID(to)
	e := EaseInOutCubic(progress)
	x = a.X + (b.X-a.X)*e
	y = a.Y + ArcOffset(e, constants.RelayArcHeight)
	return x, y
}

// DrainWindow is how long a batch of n particles runs before cooldown
// Never shorter than the last particle's finish so every particle reaches progress 1
func DrainWindow(n int, t RelayTimings) time.Duration {
	window := t.Duration + t.DrainTail
	if n > 0 {
		if last := time.Duration(n-1)*t.Stagger + t.Duration; last > window {
			window = last
		}
	}
	return window
}

// RelayAnimator owns the particle set and its seed, run, cooldown cycle
type RelayAnimator struct {
	mu sync.RWMutex

	sched   *engine.Scheduler
	timings RelayTimings
	logger  *zap.Logger

	gen        engine.Generation
	level      scenario.FoodLevel
	phase      RelayPhase
	batch      RelayTimings // timings the running batch was seeded with
	batchStart time.Time
	window     time.Duration
	particles  []Particle
	pending    *engine.Task
	cycles     int
}

// NewRelayAnimator creates an idle animator; call SetLevel to start cycling
func NewRelayAnimator(sched *engine.Scheduler, timings RelayTimings, logger *zap.Logger) *RelayAnimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayAnimator{
		sched:   sched,
		timings: timings,
		logger:  logger.Named("relay"),
	}
}

// SetLevel supersedes the current cycle when level changes and schedules a fresh seed
// Returns false when the animator is already cycling at level
func (a *RelayAnimator) SetLevel(level scenario.FoodLevel, now time.Time) bool {
	if !level.Valid() {
		panic(fmt.Sprintf("systems: invalid food level %d", int(level)))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != PhaseIdle && a.level == level {
		return false
	}

	a.level = level
	a.restartLocked(now)
	return true
}

// Restart supersedes the current cycle without changing level
func (a *RelayAnimator) Restart(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.restartLocked(now)
}

func (a *RelayAnimator) restartLocked(now time.Time) {
	a.pending.Cancel()
	gen := a.gen.Next()
	a.particles = nil
	a.phase = PhaseSeeding
	a.pending = a.sched.At(now.Add(a.timings.SeedDelay), func(due time.Time) {
		a.seed(gen, due, due)
	})
	a.logger.Debug("cycle superseded",
		zap.Uint64("generation", gen),
		zap.Stringer("level", a.level))
}

// SetTimings replaces the cycle timings; the running batch keeps the timings it was seeded with
func (a *RelayAnimator) SetTimings(t RelayTimings) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timings = t
}

// Stop cancels any pending work and clears the particle set
func (a *RelayAnimator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Cancel()
	a.pending = nil
	a.gen.Next()
	a.particles = nil
	a.phase = PhaseIdle
}

// seed builds a new batch starting at start if gen is still live
func (a *RelayAnimator) seed(gen uint64, due, start time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.gen.IsCurrent(gen) {
		return
	}
	if len(scenario.ActiveStations(a.level)) == 0 {
		a.phase = PhaseIdle
		return
	}

	a.cycles++
	a.batch = a.timings
	a.particles = BuildBatch(a.level, gen, a.cycles, a.batch)
	a.window = DrainWindow(len(a.particles), a.batch)
	a.batchStart = start
	a.phase = PhaseRunning
	a.pending = nil
	a.logger.Debug("batch seeded",
		zap.Uint64("generation", gen),
		zap.Int("particles", len(a.particles)),
		zap.Duration("window", a.window),
		zap.Duration("lag", start.Sub(due)))
}

// Update advances particle progress from absolute elapsed time
// Safe under arbitrary tick spacing: a large jump fast-forwards particles to completion
func (a *RelayAnimator) Update(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != PhaseRunning {
		return
	}

	elapsed := now.Sub(a.batchStart)
	if elapsed < 0 {
		elapsed = 0
	}

	for i := range a.particles {
		p := &a.particles[i]
		progress := ElapsedProgress(elapsed, p.Delay, a.batch.Duration)
		if progress < p.Progress {
			progress = p.Progress
		}
		p.Progress = progress
		p.Active = progress < 1
		p.X, p.Y = ParticlePosition(p.From, p.To, progress)
	}

	if elapsed < a.window {
		return
	}

	a.phase = PhaseCooldown
	gen := a.gen.Current()
	reseedAt := a.batchStart.Add(a.window + a.batch.Cooldown)
	a.pending = a.sched.At(reseedAt, func(due time.Time) {
		a.reseed(gen, due)
	})
}

// reseed starts the next cycle after cooldown, without the settle delay
// An overdue reseed starts at the current time so a stalled session resumes with a fresh,
// visible batch instead of replaying every missed cycle
func (a *RelayAnimator) reseed(gen uint64, due time.Time) {
	a.mu.RLock()
	live := a.gen.IsCurrent(gen) && a.phase == PhaseCooldown
	a.mu.RUnlock()
	if !live {
		return
	}
	start := due
	if now := a.sched.Clock().Now(); now.After(start) {
		start = now
	}
	a.seed(gen, due, start)
}

// Particles returns a snapshot of the current batch, including finished particles
func (a *RelayAnimator) Particles() []Particle {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Visible returns a snapshot of particles still travelling
func (a *RelayAnimator) Visible() []Particle {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Particle, 0, len(a.particles))
	for _, p := range a.particles {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

func (a *RelayAnimator) Phase() RelayPhase {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.phase
}

func (a *RelayAnimator) Level() scenario.FoodLevel {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.level
}

// Generation returns the live cycle generation
func (a *RelayAnimator) Generation() uint64 {
	return a.gen.Current()
}

// Cycles counts batches seeded since creation
func (a *RelayAnimator) Cycles() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cycles
}
