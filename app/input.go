package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/nitrogen-relay/audio"
	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// HandleEvent applies one terminal event; returns false when the session should end
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.orchestrator.Resize()
	}
	a.flushCelebration()
	return !a.quit
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyF2:
		a.showStats = !a.showStats
		return
	}

	if a.page == render.ScreenIntro {
		a.intro.Skip()
		a.page = render.ScreenOrientation
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			a.quit = true
			return
		case 'm':
			a.sounds.SetMuted(!a.sounds.Muted())
			return
		}
	}

	if a.overlay != render.OverlayNone {
		a.handleOverlayKey(ev)
		return
	}

	switch a.page {
	case render.ScreenOrientation:
		a.handleOrientationKey(ev)
	case render.ScreenRelay:
		a.handleRelayKey(ev)
	}
}

func (a *App) handleOrientationKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch r := ev.Rune(); r {
	case '1', '2', '3':
		if first, ok := a.glossary.Flip(int(r - '1')); ok && first {
			a.sounds.Play(audio.CueFlip)
		}
	case 'p':
		a.openOverlay(render.OverlayPredictions)
	case 'c':
		if !a.canEnter() {
			a.setStatus("Flip all three cards and lock every prediction first (C skips)")
			return
		}
		a.enterRelay()
	case 'C':
		a.enterRelay()
	}
}

func (a *App) enterRelay() {
	a.page = render.ScreenRelay
	a.logger.Debug("entered relay",
		zap.Int("glossary_flipped", a.glossary.FlippedCount()),
		zap.Int("predictions_locked", a.predictions.LockedCount()))
}

func (a *App) handleRelayKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		a.SetControl(a.control.Add(-a.sliderStep(ev)))
	case tcell.KeyRight:
		a.SetControl(a.control.Add(a.sliderStep(ev)))
	case tcell.KeyHome:
		a.SetControl(scenario.ControlMin)
	case tcell.KeyEnd:
		a.SetControl(scenario.ControlMax)
	case tcell.KeyTab:
		a.moveFocus(1)
	case tcell.KeyBacktab:
		a.moveFocus(-1)
	case tcell.KeyEnter:
		if !a.hasFocus {
			a.moveFocus(1)
		}
		a.exploreStation(a.focus)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case '1', '2', '3':
			a.SetControl(scenario.ControlFor(scenario.FoodLevel(r - '1')))
		case 'i':
			a.openOverlay(render.OverlayGauge)
		case 'r':
			a.openRealWorld()
		case 'p':
			a.openOverlay(render.OverlayPredictions)
		case 'b':
			a.page = render.ScreenOrientation
		}
	}
}

func (a *App) sliderStep(ev *tcell.EventKey) int {
	if ev.Modifiers()&tcell.ModShift != 0 {
		return constants.SliderStepLarge
	}
	return constants.SliderStep
}

// moveFocus cycles station focus; the first move focuses the first station
func (a *App) moveFocus(delta int) {
	if !a.hasFocus {
		a.hasFocus = true
		a.focus = scenario.StationNO3
		if delta < 0 {
			a.focus = scenario.StationN2
		}
		return
	}
	next := (int(a.focus) + delta + scenario.StationCount) % scenario.StationCount
	a.focus = scenario.StationID(next)
}

func (a *App) exploreStation(id scenario.StationID) {
	a.focus, a.hasFocus = id, true
	if a.tracker.ExploreStation(id) {
		a.logger.Debug("station explored",
			zap.Stringer("station", id),
			zap.Int("explored", a.tracker.StationsExplored()))
	}
	a.overlay = render.OverlayStation
}

func (a *App) openRealWorld() {
	a.tracker.LearnConcept(progress.ConceptRealWorld)
	a.openOverlay(render.OverlayRealWorld)
}

func (a *App) openOverlay(o render.Overlay) {
	a.overlay = o
}

func (a *App) closeOverlay() {
	a.overlay = render.OverlayNone
	a.flushCelebration()
}

// flushCelebration shows the completion card once nothing else is open
func (a *App) flushCelebration() {
	if !a.celebrate || a.overlay != render.OverlayNone {
		return
	}
	a.celebrate = false
	a.overlay = render.OverlayCelebrate
	a.sounds.Play(audio.CueCelebrate)
	a.logger.Info("all concepts learned")
}

func (a *App) handleOverlayKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		a.closeOverlay()
		return
	}

	switch a.overlay {
	case render.OverlayPredictions:
		a.handleDrawerKey(ev)
	case render.OverlayStation:
		switch ev.Key() {
		case tcell.KeyTab:
			a.moveFocus(1)
			a.exploreStation(a.focus)
		case tcell.KeyBacktab:
			a.moveFocus(-1)
			a.exploreStation(a.focus)
		}
	case render.OverlayRealWorld:
		if ev.Key() != tcell.KeyRune {
			return
		}
		stories := scenario.Stories()
		if i := int(ev.Rune() - '1'); i >= 0 && i < len(stories) {
			st := stories[i]
			a.SetControl(scenario.ControlFor(st.Level))
			a.closeOverlay()
			a.setStatus("Trying: " + st.Title)
		}
	case render.OverlayGauge:
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'i' {
			a.closeOverlay()
		}
	}
}

func (a *App) handleDrawerKey(ev *tcell.EventKey) {
	var err error
	switch ev.Key() {
	case tcell.KeyUp:
		a.predictSel = (a.predictSel + progress.PredictionCount - 1) % progress.PredictionCount
	case tcell.KeyDown, tcell.KeyTab:
		a.predictSel = (a.predictSel + 1) % progress.PredictionCount
	case tcell.KeyLeft:
		err = a.cycleAnswer(-1)
	case tcell.KeyRight:
		err = a.cycleAnswer(1)
	case tcell.KeyEnter:
		err = a.toggleLock()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p':
			a.closeOverlay()
		case 'f':
			err = a.cycleFood()
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, progress.ErrLocked):
		a.setStatus("Unlock the card (Enter) to change it")
	case errors.Is(err, progress.ErrNoSelection):
		a.setStatus("Choose an answer before locking")
	default:
		a.logger.Warn("prediction update failed", zap.Error(err))
	}
}

func (a *App) toggleLock() error {
	k := a.predictSel
	if a.predictions.Card(k).Locked {
		return a.predictions.Unlock(k)
	}
	if err := a.predictions.Lock(k); err != nil {
		return err
	}
	a.sounds.Play(audio.CueLock)
	card := a.predictions.Card(k)
	a.logger.Info("prediction locked",
		zap.String("card", k.Title()),
		zap.String("id", card.ID.String()),
		zap.String("answer", card.Summary()))
	if a.predictions.AllLocked() {
		a.setStatus("All predictions locked")
	}
	return nil
}

func (a *App) cycleAnswer(delta int) error {
	card := a.predictions.Card(a.predictSel)
	if card.Locked {
		return progress.ErrLocked
	}
	switch card.Kind {
	case progress.PredictN2OGuess:
		i := -1
		if card.Guess != nil {
			i = int(*card.Guess)
		}
		return a.predictions.SetGuess(scenario.FoodLevel(cycle(i, delta, scenario.FoodLevelCount)))
	case progress.PredictDominantStep:
		i := -1
		if card.Step != nil {
			i = int(*card.Step)
		}
		return a.predictions.SetStep(scenario.StationID(cycle(i, delta, scenario.StationCount)))
	case progress.PredictPulseResponse:
		guesses := progress.PulseGuesses()
		i := -1
		for j, g := range guesses {
			if g == card.Pulse {
				i = j
			}
		}
		return a.predictions.SetPulse(guesses[cycle(i, delta, len(guesses))])
	}
	return nil
}

func (a *App) cycleFood() error {
	if a.predictSel != progress.PredictN2OGuess {
		return nil
	}
	card := a.predictions.Card(progress.PredictN2OGuess)
	steps := progress.N2OFoodSteps
	i := 0
	for j, f := range steps {
		if f == card.Food {
			i = j
		}
	}
	return a.predictions.SetFood(steps[(i+1)%len(steps)])
}

// cycle steps i by delta over n values; an unset i (-1) lands on the first or last value
func cycle(i, delta, n int) int {
	if i < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((i+delta)%n + n) % n
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	if a.page == render.ScreenIntro {
		if buttons&tcell.Button1 != 0 {
			a.intro.Skip()
			a.page = render.ScreenOrientation
		}
		return
	}
	if a.page != render.ScreenRelay || a.overlay != render.OverlayNone {
		a.dragging = false
		return
	}

	w, h := a.screen.Size()
	layout := render.ComputeLayout(w, h)

	if buttons&tcell.Button1 == 0 {
		a.dragging = false
		return
	}

	if c, ok := layout.ControlAt(x, y); ok {
		a.dragging = true
		a.SetControl(c)
		return
	}
	if a.dragging {
		// Dragging off the row keeps tracking the column
		if c, ok := layout.ControlAt(x, layout.Slider.Y); ok {
			a.SetControl(c)
		}
		return
	}
	if id, ok := layout.StationAt(x, y); ok {
		a.exploreStation(id)
	}
}
