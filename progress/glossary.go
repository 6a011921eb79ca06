package progress

import "sync"

// GlossaryCard is a flippable term on the orientation screen
type GlossaryCard struct {
	Term       string
	Definition string
	Flipped    bool
}

var glossaryTerms = []GlossaryCard{
	{Term: "Denitrification", Definition: "Breathing with nitrogen when oxygen is scarce."},
	{Term: "Modular", Definition: "Most microbes do only one or two steps of the relay."},
	{Term: "N₂O", Definition: "Nitrous oxide: a greenhouse gas sometimes made in the relay."},
}

// Glossary holds the orientation cards and which have ever been flipped
type Glossary struct {
	mu      sync.Mutex
	cards   []GlossaryCard
	everSaw map[int]bool
}

// NewGlossary creates the three orientation cards, all face up
func NewGlossary() *Glossary {
	cards := make([]GlossaryCard, len(glossaryTerms))
	copy(cards, glossaryTerms)
	return &Glossary{cards: cards, everSaw: make(map[int]bool)}
}

// Flip toggles card i; first reports whether this was the first time it was turned over
func (g *Glossary) Flip(i int) (first bool, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.cards) {
		return false, false
	}
	g.cards[i].Flipped = !g.cards[i].Flipped
	if g.cards[i].Flipped && !g.everSaw[i] {
		g.everSaw[i] = true
		first = true
	}
	return first, true
}

// Cards returns a snapshot of the cards
func (g *Glossary) Cards() []GlossaryCard {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]GlossaryCard, len(g.cards))
	copy(out, g.cards)
	return out
}

// FlippedCount is the number of cards ever turned over
func (g *Glossary) FlippedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.everSaw)
}

// Len is the number of cards
func (g *Glossary) Len() int {
	return len(g.cards)
}
