package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ConcurrentFrames(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.CountFrame()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), r.Frames())
	assert.Equal(t, int64(801), r.CountFrame())
}

func TestRegistry_RecordRelay(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, RelaySample{}, r.Relay())

	want := RelaySample{Particles: 9, Generation: 4, Cycles: 2, Level: "high"}
	r.RecordRelay(want)
	assert.Equal(t, want, r.Relay())

	r.RecordRelay(RelaySample{Level: "low"})
	assert.Equal(t, RelaySample{Level: "low"}, r.Relay())
}

func TestRegistry_SampleFPS(t *testing.T) {
	r := NewRegistry()
	r.SampleFPS(30, 1.5)
	assert.InDelta(t, 20.0, r.FPS(), 1e-9)

	// A zero interval keeps the previous reading
	r.SampleFPS(10, 0)
	assert.InDelta(t, 20.0, r.FPS(), 1e-9)
}

func TestRegistry_SnapshotOrder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Metric{KeyLevel, "-"}, r.Snapshot()[0])

	r.RecordRelay(RelaySample{Particles: 4, Generation: 3, Cycles: 1, Level: "medium"})
	r.SampleFPS(5994, 100)
	for i := 0; i < 120; i++ {
		r.CountFrame()
	}
	r.CountTierChange()
	r.CountReload()
	r.CountReload()

	assert.Equal(t, []Metric{
		{KeyLevel, "medium"},
		{KeyParticles, "4"},
		{KeyCycles, "1"},
		{KeyGeneration, "3"},
		{KeyTierChanges, "1"},
		{KeyFrames, "120"},
		{KeyFPS, "59.9"},
		{KeyReloads, "2"},
	}, r.Snapshot())
}
