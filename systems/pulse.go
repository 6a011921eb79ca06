package systems

import (
	"sync"
	"time"

	"github.com/lixenwraith/nitrogen-relay/engine"
)

// Pulse is a transient highlight that switches itself off after a fixed duration
// Retriggering replaces the running pulse; the superseded expiry becomes a no-op
type Pulse struct {
	mu       sync.Mutex
	sched    *engine.Scheduler
	duration time.Duration
	gen      engine.Generation
	active   bool
	task     *engine.Task
}

// NewPulse creates an inactive pulse
func NewPulse(sched *engine.Scheduler, duration time.Duration) *Pulse {
	return &Pulse{sched: sched, duration: duration}
}

// Trigger turns the pulse on until now+duration
func (p *Pulse) Trigger(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.task.Cancel()
	gen := p.gen.Next()
	p.active = true
	p.task = p.sched.At(now.Add(p.duration), func(time.Time) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.gen.IsCurrent(gen) {
			p.active = false
			p.task = nil
		}
	})
}

// SetDuration changes the length of later triggers; a lit pulse keeps its expiry
func (p *Pulse) SetDuration(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.duration = d
}

// Active reports whether the pulse is lit
func (p *Pulse) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
