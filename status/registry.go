// Package status holds live session counters for the debug stats line
// Every counter is a fixed atomic field, so the frame loop and the renderer never take a lock
package status

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Metric keys; the prefix groups the stats line
const (
	KeyFrames      = "render.frames"
	KeyFPS         = "render.fps"
	KeyParticles   = "relay.particles"
	KeyGeneration  = "relay.generation"
	KeyCycles      = "relay.cycles"
	KeyTierChanges = "relay.tier_changes"
	KeyLevel       = "relay.level"
	KeyReloads     = "config.reloads"
)

// RelaySample is the animator state observed on one tick
type RelaySample struct {
	Particles  int
	Generation uint64
	Cycles     int
	Level      string
}

// Registry is the stats of one session
type Registry struct {
	frames      atomic.Int64
	fpsBits     atomic.Uint64 // float64 bits
	particles   atomic.Int64
	generation  atomic.Uint64
	cycles      atomic.Int64
	tierChanges atomic.Int64
	level       atomic.Pointer[string]
	reloads     atomic.Int64
}

// NewRegistry creates a zeroed Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// CountFrame records one drawn frame and returns the running total
func (r *Registry) CountFrame() int64 { return r.frames.Add(1) }

func (r *Registry) Frames() int64 { return r.frames.Load() }

// SampleFPS sets the frame rate from frames drawn since the previous sample
func (r *Registry) SampleFPS(frames int64, seconds float64) {
	if seconds <= 0 {
		return
	}
	r.fpsBits.Store(math.Float64bits(float64(frames) / seconds))
}

func (r *Registry) FPS() float64 { return math.Float64frombits(r.fpsBits.Load()) }

// CountTierChange records a food tier transition
func (r *Registry) CountTierChange() { r.tierChanges.Add(1) }

func (r *Registry) TierChanges() int64 { return r.tierChanges.Load() }

// CountReload records an applied config reload
func (r *Registry) CountReload() { r.reloads.Add(1) }

func (r *Registry) Reloads() int64 { return r.reloads.Load() }

// RecordRelay stores the latest animator reading
func (r *Registry) RecordRelay(s RelaySample) {
	r.particles.Store(int64(s.Particles))
	r.generation.Store(s.Generation)
	r.cycles.Store(int64(s.Cycles))
	level := s.Level
	r.level.Store(&level)
}

func (r *Registry) levelName() string {
	if p := r.level.Load(); p != nil {
		return *p
	}
	return ""
}

// Relay returns the latest animator reading
func (r *Registry) Relay() RelaySample {
	return RelaySample{
		Particles:  int(r.particles.Load()),
		Generation: r.generation.Load(),
		Cycles:     int(r.cycles.Load()),
		Level:      r.levelName(),
	}
}

// Metric is one formatted reading
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every counter, relay first, in a fixed order
func (r *Registry) Snapshot() []Metric {
	level := r.levelName()
	if level == "" {
		level = "-"
	}
	return []Metric{
		{KeyLevel, level},
		{KeyParticles, strconv.FormatInt(r.particles.Load(), 10)},
		{KeyCycles, strconv.FormatInt(r.cycles.Load(), 10)},
		{KeyGeneration, strconv.FormatUint(r.generation.Load(), 10)},
		{KeyTierChanges, strconv.FormatInt(r.tierChanges.Load(), 10)},
		{KeyFrames, strconv.FormatInt(r.frames.Load(), 10)},
		{KeyFPS, fmt.Sprintf("%.1f", r.FPS())},
		{KeyReloads, strconv.FormatInt(r.reloads.Load(), 10)},
	}
}
