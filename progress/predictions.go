package progress

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/nitrogen-relay/scenario"
)

var (
	// ErrNoSelection is returned when locking a card without an answer
	ErrNoSelection = errors.New("prediction has no selection")
	// ErrLocked is returned when editing a locked card
	ErrLocked = errors.New("prediction is locked")
	// ErrUnknownCard is returned for card indices outside the drawer
	ErrUnknownCard = errors.New("unknown prediction card")
)

// PredictionKind identifies one of the three drawer cards
type PredictionKind int

const (
	PredictN2OGuess PredictionKind = iota
	PredictDominantStep
	PredictPulseResponse
)

// PredictionCount is the number of cards in the drawer
const PredictionCount = 3

func (k PredictionKind) Title() string {
	switch k {
	case PredictN2OGuess:
		return "N₂O Guess Meter"
	case PredictDominantStep:
		return "Dominant Step"
	case PredictPulseResponse:
		return "Pulse Response"
	}
	return fmt.Sprintf("PredictionKind(%d)", int(k))
}

// Question is the prompt shown on the card
func (k PredictionKind) Question() string {
	switch k {
	case PredictN2OGuess:
		return "At this food level, how much N₂O will the relay release?"
	case PredictDominantStep:
		return "Which relay step will dominate in the twilight zone?"
	case PredictPulseResponse:
		return "What happens to N₂O levels after a food pulse?"
	}
	return ""
}

// PulseGuess is the answer of the pulse-response card
type PulseGuess string

const (
	PulseSpike PulseGuess = "spike"
	PulseSame  PulseGuess = "same"
	PulseDrop  PulseGuess = "drop"
)

// PulseGuesses lists the answers in display order
func PulseGuesses() []PulseGuess {
	return []PulseGuess{PulseSpike, PulseSame, PulseDrop}
}

func (p PulseGuess) Label() string {
	switch p {
	case PulseSpike:
		return "Spikes briefly"
	case PulseSame:
		return "Stays the same"
	case PulseDrop:
		return "Drops temporarily"
	}
	return string(p)
}

// N2OFoodSteps are the positions of the food slider on the guess card
var N2OFoodSteps = []scenario.ControlValue{0, 50, 100}

// Prediction is the answer held by one card
type Prediction struct {
	Kind     PredictionKind
	Food     scenario.ControlValue // N2O guess card
	Guess    *scenario.FoodLevel   // N2O guess card
	Step     *scenario.StationID   // dominant step card
	Pulse    PulseGuess            // pulse response card
	Locked   bool
	ID       uuid.UUID
	LockedAt time.Time
}

func (p Prediction) hasSelection() bool {
	switch p.Kind {
	case PredictN2OGuess:
		return p.Guess != nil
	case PredictDominantStep:
		return p.Step != nil
	case PredictPulseResponse:
		return p.Pulse != ""
	}
	return false
}

// Summary renders the chosen answer for display
func (p Prediction) Summary() string {
	if !p.hasSelection() {
		return "—"
	}
	switch p.Kind {
	case PredictN2OGuess:
		return fmt.Sprintf("food %d → %s N₂O", p.Food, p.Guess.String())
	case PredictDominantStep:
		return scenario.StationByID(*p.Step).Label
	default:
		return p.Pulse.Label()
	}
}

// Predictions is the drawer of three lockable cards
type Predictions struct {
	mu    sync.Mutex
	cards [PredictionCount]Prediction
	now   func() time.Time
}

// NewPredictions creates an empty drawer; now stamps lock times
func NewPredictions(now func() time.Time) *Predictions {
	p := &Predictions{now: now}
	for i := range p.cards {
		p.cards[i].Kind = PredictionKind(i)
	}
	p.cards[PredictN2OGuess].Food = 50
	return p
}

func (p *Predictions) editable(k PredictionKind) (*Prediction, error) {
	if k < 0 || int(k) >= PredictionCount {
		return nil, ErrUnknownCard
	}
	c := &p.cards[k]
	if c.Locked {
		return nil, ErrLocked
	}
	return c, nil
}

// SetFood moves the food slider on the N2O guess card
func (p *Predictions) SetFood(v scenario.ControlValue) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.editable(PredictN2OGuess)
	if err != nil {
		return err
	}
	c.Food = v
	return nil
}

// SetGuess records the N2O level guess
func (p *Predictions) SetGuess(level scenario.FoodLevel) error {
	if !level.Valid() {
		return fmt.Errorf("guess %v: %w", level, ErrNoSelection)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.editable(PredictN2OGuess)
	if err != nil {
		return err
	}
	c.Guess = &level
	return nil
}

// SetStep records the dominant step guess
func (p *Predictions) SetStep(id scenario.StationID) error {
	if !id.Valid() {
		return fmt.Errorf("step %v: %w", id, ErrNoSelection)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.editable(PredictDominantStep)
	if err != nil {
		return err
	}
	c.Step = &id
	return nil
}

// SetPulse records the pulse response guess
func (p *Predictions) SetPulse(g PulseGuess) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.editable(PredictPulseResponse)
	if err != nil {
		return err
	}
	c.Pulse = g
	return nil
}

// Lock freezes a card that has a selection
func (p *Predictions) Lock(k PredictionKind) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.editable(k)
	if err != nil {
		return fmt.Errorf("lock %s: %w", k.Title(), err)
	}
	if !c.hasSelection() {
		return fmt.Errorf("lock %s: %w", k.Title(), ErrNoSelection)
	}
	c.Locked = true
	c.ID = uuid.New()
	c.LockedAt = p.now()
	return nil
}

// Unlock reopens a card for editing, keeping its answer
func (p *Predictions) Unlock(k PredictionKind) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if k < 0 || int(k) >= PredictionCount {
		return ErrUnknownCard
	}
	c := &p.cards[k]
	c.Locked = false
	c.ID = uuid.Nil
	c.LockedAt = time.Time{}
	return nil
}

// Card returns a snapshot of one card
func (p *Predictions) Card(k PredictionKind) Prediction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cards[k]
}

// LockedCount is the number of locked cards
func (p *Predictions) LockedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.cards {
		if c.Locked {
			n++
		}
	}
	return n
}

// AllLocked reports whether every card is locked
func (p *Predictions) AllLocked() bool {
	return p.LockedCount() == PredictionCount
}
