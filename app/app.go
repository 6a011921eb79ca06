// Package app owns the interactive session: input, timing, state transitions and drawing
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/nitrogen-relay/audio"
	"github.com/lixenwraith/nitrogen-relay/config"
	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/engine"
	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/render/renderers"
	"github.com/lixenwraith/nitrogen-relay/scenario"
	"github.com/lixenwraith/nitrogen-relay/status"
	"github.com/lixenwraith/nitrogen-relay/systems"
)

// Options configures a new App
type Options struct {
	Config    config.Config
	Clock     engine.TimeProvider // nil uses the monotonic clock
	Sounds    Sounds              // nil plays nothing
	Logger    *zap.Logger
	SkipIntro bool
	Muted     bool
	ShowStats bool
}

// App is the single-threaded session state; only the Run loop goroutine touches it
type App struct {
	screen       tcell.Screen
	clock        engine.TimeProvider
	sched        *engine.Scheduler
	orchestrator *render.Orchestrator
	logger       *zap.Logger
	cfg          config.Config
	sounds       Sounds

	animator     *systems.RelayAnimator
	gaugePulse   *systems.Pulse
	stationPulse *systems.Pulse
	intro        *systems.Typewriter

	tracker     *progress.Tracker
	glossary    *progress.Glossary
	predictions *progress.Predictions

	page       render.Screen
	overlay    render.Overlay
	control    scenario.ControlValue
	focus      scenario.StationID
	hasFocus   bool
	predictSel progress.PredictionKind
	dragging   bool

	status     string
	statusTask *engine.Task

	celebrate bool
	quit      bool

	stats     *status.Registry
	showStats bool
	fpsSample time.Time
	fpsFrames int64
}

// New builds a session on screen; the caller has initialized the screen
func New(screen tcell.Screen, opts Options) *App {
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = &silentSounds{}
	}
	sounds.SetVolume(opts.Config.Audio.Volume)
	sounds.SetMuted(opts.Muted || !opts.Config.Audio.Enabled)

	now := clock.Now()
	sched := engine.NewScheduler(clock)

	a := &App{
		screen:       screen,
		clock:        clock,
		sched:        sched,
		orchestrator: render.NewOrchestrator(screen),
		logger:       logger.Named("app"),
		cfg:          opts.Config,
		sounds:       sounds,
		animator:     systems.NewRelayAnimator(sched, opts.Config.RelayTimings(), logger),
		gaugePulse:   systems.NewPulse(sched, opts.Config.UI.GaugePulse),
		stationPulse: systems.NewPulse(sched, opts.Config.UI.StationPulse),
		intro: systems.NewTypewriter(constants.IntroText, opts.Config.UI.IntroInterval,
			constants.IntroHold, constants.IntroSkipHintDelay, now),
		glossary:    progress.NewGlossary(),
		predictions: progress.NewPredictions(clock.Now),
		control:     scenario.NewControlValue(float64(opts.Config.UI.InitialControl)),
		stats:       status.NewRegistry(),
		showStats:   opts.ShowStats,
		fpsSample:   now,
	}
	a.tracker = progress.NewTracker(func() { a.celebrate = true })
	renderers.RegisterAll(a.orchestrator)

	a.page = render.ScreenIntro
	if opts.SkipIntro || opts.Config.UI.SkipIntro {
		a.intro.Skip()
		a.page = render.ScreenOrientation
	}

	level := a.control.Level()
	a.animator.SetLevel(level, now)
	a.tracker.VisitLevel(level)
	a.logger.Debug("session started",
		zap.Int("control", int(a.control)),
		zap.Stringer("level", level))
	return a
}

// Control is the current slider position
func (a *App) Control() scenario.ControlValue { return a.control }

// Page is the screen shown
func (a *App) Page() render.Screen { return a.page }

// Overlay is the modal card shown, if any
func (a *App) Overlay() render.Overlay { return a.overlay }

// Tracker exposes learning progress
func (a *App) Tracker() *progress.Tracker { return a.tracker }

// Glossary exposes the orientation cards
func (a *App) Glossary() *progress.Glossary { return a.glossary }

// Predictions exposes the prediction drawer
func (a *App) Predictions() *progress.Predictions { return a.predictions }

// Animator exposes the particle cycle
func (a *App) Animator() *systems.RelayAnimator { return a.animator }

// Status is the transient message line
func (a *App) Status() string { return a.status }

// Quit reports whether the user asked to exit
func (a *App) Quit() bool { return a.quit }

// Stats exposes the live session counters
func (a *App) Stats() *status.Registry { return a.stats }

// SetControl moves the slider; a tier change restarts the relay and fires feedback
func (a *App) SetControl(c scenario.ControlValue) {
	c = scenario.NewControlValue(float64(c))
	if c == a.control {
		return
	}
	prev := a.control.Level()
	a.control = c
	if level := c.Level(); level != prev {
		a.onLevelChange(prev, level)
	}
}

func (a *App) onLevelChange(prev, level scenario.FoodLevel) {
	now := a.clock.Now()
	a.animator.SetLevel(level, now)
	a.gaugePulse.Trigger(now)
	a.stationPulse.Trigger(now)
	a.tracker.VisitLevel(level)

	a.stats.CountTierChange()
	a.sounds.Play(audio.TierCue(level))
	if scenario.GasTierFor(level).Alert {
		a.sounds.Play(audio.CueAlert)
	}
	a.logger.Debug("food tier changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", level),
		zap.Int("control", int(a.control)),
		zap.Uint64("generation", a.animator.Generation()))
}

// Tick advances timers and the particle cycle to now
func (a *App) Tick(now time.Time) {
	a.sched.Advance(now)
	a.animator.Update(now)
	if a.page == render.ScreenIntro && a.intro.Complete(now) {
		a.page = render.ScreenOrientation
	}
	a.updateStats(now)
}

func (a *App) updateStats(now time.Time) {
	a.stats.RecordRelay(status.RelaySample{
		Particles:  len(a.animator.Visible()),
		Generation: a.animator.Generation(),
		Cycles:     a.animator.Cycles(),
		Level:      a.animator.Level().String(),
	})

	if elapsed := now.Sub(a.fpsSample); elapsed >= time.Second {
		frames := a.stats.Frames()
		a.stats.SampleFPS(frames-a.fpsFrames, elapsed.Seconds())
		a.fpsFrames, a.fpsSample = frames, now
	}
}

// ApplyConfig swaps in a reloaded config; relay timings apply from the next seed
// audio.enabled only touches the mute state when the reload flips it, so a manual mute survives
func (a *App) ApplyConfig(cfg config.Config) {
	prev := a.cfg
	a.cfg = cfg
	a.animator.SetTimings(cfg.RelayTimings())
	a.gaugePulse.SetDuration(cfg.UI.GaugePulse)
	a.stationPulse.SetDuration(cfg.UI.StationPulse)
	a.sounds.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Enabled != prev.Audio.Enabled {
		a.sounds.SetMuted(!cfg.Audio.Enabled)
	}
	a.stats.CountReload()
	a.setStatus("Config reloaded")
	a.logger.Info("config applied", zap.Duration("stagger", cfg.Relay.Stagger))
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusTask.Cancel()
	a.statusTask = a.sched.After(constants.StatusMessageTimeout, func(time.Time) {
		a.status = ""
		a.statusTask = nil
	})
}

// canEnter reports whether orientation is complete
func (a *App) canEnter() bool {
	return a.glossary.FlippedCount() == a.glossary.Len() && a.predictions.AllLocked()
}

// Scene snapshots the state for one frame
func (a *App) Scene() render.Scene {
	s := render.Scene{
		Screen:        a.page,
		Overlay:       a.overlay,
		View:          scenario.ViewFor(a.control.Level()),
		Particles:     a.animator.Particles(),
		GaugePulse:    a.gaugePulse.Active(),
		StationPulse:  a.stationPulse.Active(),
		Focus:         a.focus,
		HasFocus:      a.hasFocus,
		ConceptsDone:  a.tracker.Completed(),
		ConceptsTotal: a.tracker.Total(),
		Glossary:      a.glossary.Cards(),
		PredictSel:    a.predictSel,
		CanEnter:      a.canEnter(),
		Status:        a.status,
		Muted:         a.sounds.Muted(),
		ShowStats:     a.showStats,
	}
	if a.showStats {
		s.Stats = a.stats.Snapshot()
	}
	s.View.Control = a.control

	for i := range s.Explored {
		s.Explored[i] = a.tracker.StationExplored(scenario.StationID(i))
	}
	for _, c := range progress.Concepts() {
		s.Concepts = append(s.Concepts, render.ConceptLine{Concept: c, Status: a.tracker.Status(c.ID)})
	}
	for k := range s.Predictions {
		s.Predictions[k] = a.predictions.Card(progress.PredictionKind(k))
	}

	now := a.clock.Now()
	s.IntroText = a.intro.Typed(now)
	s.IntroSkipHint = a.intro.SkipHintVisible(now)
	return s
}

// Draw renders one frame
func (a *App) Draw() {
	a.stats.CountFrame()
	w, h := a.screen.Size()
	a.orchestrator.RenderFrame(render.NewContext(a.clock.Now(), w, h, a.Scene()))
}
