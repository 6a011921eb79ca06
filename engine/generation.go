package engine

import "sync/atomic"

// Generation is a supersession counter: callbacks capture the value at scheduling time
// and become no-ops once a newer generation exists
type Generation struct {
	n atomic.Uint64
}

// Next starts a new generation and returns it
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current returns the live generation
func (g *Generation) Current() uint64 {
	return g.n.Load()
}

// IsCurrent reports whether id is still the live generation
func (g *Generation) IsCurrent(id uint64) bool {
	return g.n.Load() == id
}
