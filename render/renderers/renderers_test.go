package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nitrogen-relay/progress"
	"github.com/lixenwraith/nitrogen-relay/render"
	"github.com/lixenwraith/nitrogen-relay/scenario"
	"github.com/lixenwraith/nitrogen-relay/status"
	"github.com/lixenwraith/nitrogen-relay/systems"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	screen.Clear()
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; {
			r, _, _, width := s.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
			if width < 1 {
				width = 1
			}
			x += width
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// stationStates reads the state line of each station box
func stationStates(s tcell.Screen, l render.Layout) []string {
	out := make([]string, 0, scenario.StationCount)
	for _, r := range l.Stations {
		var b strings.Builder
		for x := r.X + 1; x < r.Right()-1; x++ {
			c, _, _, _ := s.GetContent(x, r.Y+3)
			b.WriteRune(c)
		}
		out = append(out, strings.TrimSpace(b.String()))
	}
	return out
}

func relayScene(level scenario.FoodLevel) render.Scene {
	tr := progress.NewTracker(nil)
	tr.LearnConcept(progress.ConceptRelay)
	var lines []render.ConceptLine
	for _, c := range progress.Concepts() {
		lines = append(lines, render.ConceptLine{Concept: c, Status: tr.Status(c.ID)})
	}
	return render.Scene{
		Screen:        render.ScreenRelay,
		View:          scenario.ViewFor(level),
		Concepts:      lines,
		ConceptsDone:  tr.Completed(),
		ConceptsTotal: tr.Total(),
		Glossary:      progress.NewGlossary().Cards(),
	}
}

func draw(t *testing.T, w, h int, scene render.Scene) (tcell.SimulationScreen, string) {
	t.Helper()
	screen := newScreen(t, w, h)
	o := render.NewOrchestrator(screen)
	RegisterAll(o)
	o.RenderFrame(render.NewContext(epoch, w, h, scene))
	return screen, screenText(screen)
}

func TestRelayScreen_Medium(t *testing.T) {
	screen, text := draw(t, 100, 30, relayScene(scenario.FoodMedium))

	for _, want := range []string{
		"NITROGEN RELAY",
		"Concepts 1/5 ■□□□□",
		"River Mouth & Shelf Waters",
		"NO₃⁻", "NO₂⁻", "N₂O", "N₂",
		"Nitrate", "Nitrite",
		"Food  [",
		"Moderate",
		"55%",
		"Strategy",
		"Tab station",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "spike risk", "medium tier has no alert")
	assert.Equal(t, []string{"active", "active", "dormant", "dormant"},
		stationStates(screen, render.ComputeLayout(100, 30)))
}

func TestRelayScreen_HighAlert(t *testing.T) {
	screen, text := draw(t, 100, 30, relayScene(scenario.FoodHigh))
	assert.Contains(t, text, "⚠ N₂O spike risk")
	assert.Contains(t, text, "85%")
	assert.Equal(t, []string{"active", "active", "active", "active"},
		stationStates(screen, render.ComputeLayout(100, 30)))
}

func TestRelayScreen_ExploredAndFocus(t *testing.T) {
	scene := relayScene(scenario.FoodLow)
	scene.Explored[scenario.StationNO3] = true
	scene.HasFocus = true
	scene.Focus = scenario.StationNO2

	_, text := draw(t, 100, 30, scene)
	assert.Contains(t, text, "active ✓")
	assert.Contains(t, text, "▸ NO₂⁻")
}

func TestParticleRenderer_PlacesGlyph(t *testing.T) {
	scene := relayScene(scenario.FoodMedium)
	p := systems.Particle{
		From: scenario.StationNO3, To: scenario.StationNO2,
		Compound: scenario.CompoundAt(scenario.StationNO3),
		Progress: 0.5, Active: true,
	}
	p.X, p.Y = systems.ParticlePosition(p.From, p.To, p.Progress)
	finished := p
	finished.Progress, finished.Active = 1, false
	finished.X, finished.Y = systems.ParticlePosition(p.From, p.To, 1)
	scene.Particles = []systems.Particle{p, finished}

	screen, _ := draw(t, 100, 30, scene)
	l := render.ComputeLayout(100, 30)

	r, _, _, _ := screen.GetContent(l.Column(p.X), l.BandRow(p.Y))
	assert.Equal(t, p.Compound.Glyph(), r)
	assert.Equal(t, l.Band.Y, l.BandRow(p.Y), "midpoint rides the arc peak")

	r, _, _, _ = screen.GetContent(l.Column(finished.X), l.BandRow(finished.Y))
	assert.NotEqual(t, finished.Compound.Glyph(), r, "finished particles are not drawn")
}

func TestIntroScreen(t *testing.T) {
	scene := render.Scene{Screen: render.ScreenIntro, IntroText: "Developed by", IntroSkipHint: true}
	_, text := draw(t, 80, 24, scene)
	assert.Contains(t, text, "Developed by")
	assert.Contains(t, text, "Press any key to skip")
	assert.NotContains(t, text, "Concepts", "no header on intro")
}

func TestOrientationScreen(t *testing.T) {
	g := progress.NewGlossary()
	g.Flip(1)
	scene := render.Scene{
		Screen:        render.ScreenOrientation,
		Glossary:      g.Cards(),
		ConceptsTotal: 5,
	}
	_, text := draw(t, 90, 24, scene)
	assert.Contains(t, text, "Orientation Bay")
	assert.Contains(t, text, "Learn concepts 1/3")
	assert.Contains(t, text, "Press 1 to flip")
	assert.Contains(t, text, "✓ 2  Modular")
	assert.Contains(t, text, "lock your predictions")

	scene.CanEnter = true
	_, text = draw(t, 90, 24, scene)
	assert.Contains(t, text, "Press c to enter")
}

func TestOverlay_StationCard(t *testing.T) {
	scene := relayScene(scenario.FoodLow)
	scene.Overlay = render.OverlayStation
	scene.Focus = scenario.StationN2O

	_, text := draw(t, 100, 30, scene)
	assert.Contains(t, text, "N₂O · Nitrous Oxide")
	assert.Contains(t, text, "Dormant at Sparse food")
	assert.Contains(t, text, "Tab next station")
}

func TestOverlay_GaugeCardAlert(t *testing.T) {
	card := GaugeCard(scenario.GasTierFor(scenario.FoodHigh))
	assert.Equal(t, render.CardAlert, card.Variant)
	assert.Equal(t, render.CardIntense, GaugeCard(scenario.GasTierFor(scenario.FoodLow)).Variant)
}

func TestOverlay_RealWorldListsStories(t *testing.T) {
	card := RealWorldCard()
	require.Len(t, card.Sections, 3)
	assert.Contains(t, card.Sections[0].Heading, "1  After the Bloom")
}

func TestDrawer(t *testing.T) {
	p := progress.NewPredictions(func() time.Time { return epoch })
	require.NoError(t, p.SetPulse(progress.PulseDrop))
	require.NoError(t, p.Lock(progress.PredictPulseResponse))
	require.NoError(t, p.SetStep(scenario.StationN2O))

	var cards [progress.PredictionCount]progress.Prediction
	for k := range cards {
		cards[k] = p.Card(progress.PredictionKind(k))
	}

	card := DrawerCard(cards, progress.PredictDominantStep)
	assert.Equal(t, "Predictions 1/3 locked", card.Title)
	assert.Contains(t, card.Sections[1].Heading, "▸ 2. Dominant Step")
	assert.Contains(t, card.Sections[2].Heading, "locked")
	assert.Contains(t, card.Sections[1].Body, "[N₂O]")
	assert.Contains(t, card.Sections[0].Body, "[50]")

	scene := relayScene(scenario.FoodLow)
	scene.Overlay = render.OverlayPredictions
	scene.Predictions = cards
	_, text := draw(t, 100, 30, scene)
	assert.Contains(t, text, "Predictions 1/3 locked")
	assert.Contains(t, text, "lock/unlock")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "■■□", ProgressBar(2, 3))
	assert.Equal(t, "■■■", ProgressBar(7, 3))
	assert.Equal(t, "", ProgressBar(1, 0))
	assert.Equal(t, "▰▰▰▱▱", IntensityBar(0.6, 5))
}

func TestStatsRenderer(t *testing.T) {
	scene := relayScene(scenario.FoodLow)
	scene.Stats = []status.Metric{{Key: status.KeyParticles, Value: "3"}, {Key: status.KeyLevel, Value: "low"}}

	_, text := draw(t, 100, 30, scene)
	assert.NotContains(t, text, "relay.particles=3", "hidden unless enabled")

	scene.ShowStats = true
	screen, text := draw(t, 100, 30, scene)
	assert.Contains(t, text, "relay.particles=3  relay.level=low")

	l := render.ComputeLayout(100, 30)
	r, _, _, _ := screen.GetContent(l.Footer.Right()-2, l.Footer.Y-1)
	assert.Equal(t, 'w', r, "line is right-aligned above the footer")
}
