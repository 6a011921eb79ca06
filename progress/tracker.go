// Package progress tracks what the learner has explored: concepts, stations, glossary
// cards and locked predictions. State is memory-only and never feeds back into the relay.
package progress

import (
	"sync"

	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// ConceptID names one of the required learning concepts
type ConceptID string

const (
	ConceptRelay     ConceptID = "relay"
	ConceptModular   ConceptID = "modular"
	ConceptFood      ConceptID = "food"
	ConceptN2O       ConceptID = "n2o"
	ConceptRealWorld ConceptID = "realworld"
)

// Concept is a required learning goal
type Concept struct {
	ID          ConceptID
	Title       string
	Description string
	Detail      string
}

var concepts = []Concept{
	{
		ID:          ConceptRelay,
		Title:       "4-Step Relay Structure",
		Description: "NO₃⁻ → NO₂⁻ → N₂O → N₂ (nitrate → nitrite → nitrous oxide → nitrogen gas)",
		Detail:      "Each step requires different enzymes and environmental conditions",
	},
	{
		ID:          ConceptModular,
		Title:       "Modular Participation",
		Description: "Most microbes run only 1-2 steps, not the complete pathway",
		Detail:      "Specialists excel at their step but require teamwork for full completion",
	},
	{
		ID:          ConceptFood,
		Title:       "Food Controls Community",
		Description: "Low food = specialists, high food = multi-step teams",
		Detail:      "Energy availability determines which microbial strategies succeed",
	},
	{
		ID:          ConceptN2O,
		Title:       "N₂O Greenhouse Impact",
		Description: "N₂O rises when relay gets crowded, falls when completion succeeds",
		Detail:      "Bottlenecks in the pathway cause greenhouse gas escape",
	},
	{
		ID:          ConceptRealWorld,
		Title:       "Real-World Connections",
		Description: "Ocean patterns affect nutrients, fisheries, and climate globally",
		Detail:      "Microbial choices scale up to environmental impacts",
	},
}

// Concepts returns the required concepts in teaching order
func Concepts() []Concept {
	out := make([]Concept, len(concepts))
	copy(out, concepts)
	return out
}

// Status of a concept in the progress list
type Status int

const (
	StatusPending Status = iota
	StatusCurrent
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusCompleted:
		return "completed"
	}
	return "pending"
}

// Tracker records explored concepts, stations and food tiers
type Tracker struct {
	mu       sync.Mutex
	learned  map[ConceptID]bool
	stations map[scenario.StationID]bool
	levels   map[scenario.FoodLevel]bool

	onAllLearned func()
	celebrated   bool
}

// NewTracker creates an empty tracker; onAllLearned fires once when the last concept is learned
func NewTracker(onAllLearned func()) *Tracker {
	return &Tracker{
		learned:      make(map[ConceptID]bool),
		stations:     make(map[scenario.StationID]bool),
		levels:       make(map[scenario.FoodLevel]bool),
		onAllLearned: onAllLearned,
	}
}

// LearnConcept marks a concept learned, returns true the first time
func (t *Tracker) LearnConcept(id ConceptID) bool {
	t.mu.Lock()
	fire := t.learnLocked(id)
	t.mu.Unlock()
	t.notify(fire)
	return fire != learnNone
}

type learnResult int

const (
	learnNone learnResult = iota
	learnNew
	learnCompleted
)

func (t *Tracker) learnLocked(id ConceptID) learnResult {
	if t.learned[id] || !knownConcept(id) {
		return learnNone
	}
	t.learned[id] = true
	if len(t.learned) == len(concepts) && !t.celebrated {
		t.celebrated = true
		return learnCompleted
	}
	return learnNew
}

func (t *Tracker) notify(r learnResult) {
	if r == learnCompleted && t.onAllLearned != nil {
		t.onAllLearned()
	}
}

// ExploreStation records a station visit; returns true the first time
// Any station teaches the relay; all four teach modular participation
func (t *Tracker) ExploreStation(id scenario.StationID) bool {
	if !id.Valid() {
		return false
	}

	t.mu.Lock()
	if t.stations[id] {
		t.mu.Unlock()
		return false
	}
	t.stations[id] = true
	r := t.learnLocked(ConceptRelay)
	if len(t.stations) == scenario.StationCount {
		r = maxResult(r, t.learnLocked(ConceptModular))
	}
	t.mu.Unlock()

	t.notify(r)
	return true
}

// VisitLevel records a food tier the learner has tried
// Two distinct tiers teach the food concept; reaching high teaches the N2O concept
func (t *Tracker) VisitLevel(level scenario.FoodLevel) bool {
	if !level.Valid() {
		return false
	}

	t.mu.Lock()
	if t.levels[level] {
		t.mu.Unlock()
		return false
	}
	t.levels[level] = true
	r := learnNone
	if len(t.levels) >= 2 {
		r = maxResult(r, t.learnLocked(ConceptFood))
	}
	if level == scenario.FoodHigh {
		r = maxResult(r, t.learnLocked(ConceptN2O))
	}
	t.mu.Unlock()

	t.notify(r)
	return true
}

func maxResult(a, b learnResult) learnResult {
	if b > a {
		return b
	}
	return a
}

// Learned reports whether a concept is completed
func (t *Tracker) Learned(id ConceptID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.learned[id]
}

// StationExplored reports whether a station has been visited
func (t *Tracker) StationExplored(id scenario.StationID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stations[id]
}

// StationsExplored returns how many stations have been visited
func (t *Tracker) StationsExplored() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.stations)
}

// Status reports completed, current (the first unlearned concept once any progress exists) or pending
func (t *Tracker) Status(id ConceptID) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.learned[id] {
		return StatusCompleted
	}
	if len(t.learned) == 0 {
		return StatusPending
	}
	for _, c := range concepts {
		if !t.learned[c.ID] {
			if c.ID == id {
				return StatusCurrent
			}
			return StatusPending
		}
	}
	return StatusPending
}

// Completed returns the number of learned concepts
func (t *Tracker) Completed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.learned)
}

// Total returns the number of required concepts
func (t *Tracker) Total() int {
	return len(concepts)
}

// AllLearned reports whether every concept is completed
func (t *Tracker) AllLearned() bool {
	return t.Completed() == t.Total()
}

// Percent is the completion ratio in [0,100]
func (t *Tracker) Percent() int {
	return t.Completed() * 100 / t.Total()
}

func knownConcept(id ConceptID) bool {
	for _, c := range concepts {
		if c.ID == id {
			return true
		}
	}
	return false
}
