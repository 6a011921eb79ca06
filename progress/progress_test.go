package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nitrogen-relay/scenario"
)

func TestTracker_StationsTeachRelayAndModular(t *testing.T) {
	tr := NewTracker(nil)

	assert.True(t, tr.ExploreStation(scenario.StationNO2))
	assert.False(t, tr.ExploreStation(scenario.StationNO2), "second visit is not new")
	assert.True(t, tr.Learned(ConceptRelay))
	assert.False(t, tr.Learned(ConceptModular))

	for _, id := range []scenario.StationID{scenario.StationNO3, scenario.StationN2O, scenario.StationN2} {
		tr.ExploreStation(id)
	}
	assert.Equal(t, scenario.StationCount, tr.StationsExplored())
	assert.True(t, tr.Learned(ConceptModular))
}

func TestTracker_LevelsTeachFoodAndN2O(t *testing.T) {
	tr := NewTracker(nil)

	tr.VisitLevel(scenario.FoodLow)
	assert.False(t, tr.Learned(ConceptFood), "one tier is not a comparison")

	tr.VisitLevel(scenario.FoodHigh)
	assert.True(t, tr.Learned(ConceptFood))
	assert.True(t, tr.Learned(ConceptN2O))
	assert.False(t, tr.VisitLevel(scenario.FoodHigh))
}

func TestTracker_StatusOrder(t *testing.T) {
	tr := NewTracker(nil)
	assert.Equal(t, StatusPending, tr.Status(ConceptRelay))

	tr.LearnConcept(ConceptModular)
	assert.Equal(t, StatusCompleted, tr.Status(ConceptModular))
	assert.Equal(t, StatusCurrent, tr.Status(ConceptRelay))
	assert.Equal(t, StatusPending, tr.Status(ConceptFood))
}

func TestTracker_AllLearnedFiresOnce(t *testing.T) {
	fired := 0
	tr := NewTracker(func() { fired++ })

	for _, c := range Concepts() {
		assert.True(t, tr.LearnConcept(c.ID))
	}
	assert.False(t, tr.LearnConcept(ConceptRelay))
	assert.False(t, tr.LearnConcept("bogus"))

	assert.Equal(t, 1, fired)
	assert.True(t, tr.AllLearned())
	assert.Equal(t, 100, tr.Percent())
}

func TestTracker_PercentPartial(t *testing.T) {
	tr := NewTracker(nil)
	tr.LearnConcept(ConceptRelay)
	tr.LearnConcept(ConceptFood)
	assert.Equal(t, 2, tr.Completed())
	assert.Equal(t, 40, tr.Percent())
}

func TestGlossary_Flip(t *testing.T) {
	g := NewGlossary()
	require.Equal(t, 3, g.Len())

	first, ok := g.Flip(0)
	assert.True(t, ok)
	assert.True(t, first)
	assert.True(t, g.Cards()[0].Flipped)

	first, _ = g.Flip(0)
	assert.False(t, first, "flipping back is not a first flip")
	assert.False(t, g.Cards()[0].Flipped)

	first, _ = g.Flip(0)
	assert.False(t, first, "already seen")
	assert.Equal(t, 1, g.FlippedCount())

	_, ok = g.Flip(7)
	assert.False(t, ok)
}

func TestPredictions_LockRequiresSelection(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	p := NewPredictions(func() time.Time { return at })

	err := p.Lock(PredictPulseResponse)
	assert.True(t, errors.Is(err, ErrNoSelection))

	require.NoError(t, p.SetPulse(PulseSpike))
	require.NoError(t, p.Lock(PredictPulseResponse))

	card := p.Card(PredictPulseResponse)
	assert.True(t, card.Locked)
	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, at, card.LockedAt)
	assert.Equal(t, "Spikes briefly", card.Summary())

	assert.ErrorIs(t, p.SetPulse(PulseDrop), ErrLocked)
	assert.ErrorIs(t, p.Lock(PredictPulseResponse), ErrLocked)
}

func TestPredictions_UnlockKeepsAnswer(t *testing.T) {
	p := NewPredictions(time.Now)
	require.NoError(t, p.SetStep(scenario.StationN2O))
	require.NoError(t, p.Lock(PredictDominantStep))
	require.NoError(t, p.Unlock(PredictDominantStep))

	card := p.Card(PredictDominantStep)
	assert.False(t, card.Locked)
	assert.Equal(t, uuid.Nil, card.ID)
	require.NotNil(t, card.Step)
	assert.Equal(t, scenario.StationN2O, *card.Step)
}

func TestPredictions_AllLocked(t *testing.T) {
	p := NewPredictions(time.Now)
	require.NoError(t, p.SetFood(100))
	require.NoError(t, p.SetGuess(scenario.FoodHigh))
	require.NoError(t, p.SetStep(scenario.StationNO3))
	require.NoError(t, p.SetPulse(PulseSame))

	for k := PredictionKind(0); k < PredictionCount; k++ {
		require.NoError(t, p.Lock(k))
	}
	assert.True(t, p.AllLocked())
	assert.Equal(t, 3, p.LockedCount())
	assert.Equal(t, "food 100 → high N₂O", p.Card(PredictN2OGuess).Summary())

	ids := map[uuid.UUID]bool{}
	for k := PredictionKind(0); k < PredictionCount; k++ {
		ids[p.Card(k).ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestPredictions_InvalidInputs(t *testing.T) {
	p := NewPredictions(time.Now)
	assert.ErrorIs(t, p.SetGuess(scenario.FoodLevel(9)), ErrNoSelection)
	assert.ErrorIs(t, p.SetStep(scenario.StationID(9)), ErrNoSelection)
	assert.ErrorIs(t, p.Lock(PredictionKind(5)), ErrUnknownCard)
	assert.ErrorIs(t, p.Unlock(PredictionKind(-1)), ErrUnknownCard)
	assert.Equal(t, "—", p.Card(PredictDominantStep).Summary())
}
