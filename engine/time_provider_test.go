package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestManualClock(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(startTime)

	if now := clock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if !clock.Set(newTime) {
		t.Fatal("Expected forward Set to succeed")
	}
	if now := clock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after Set, got %v", newTime, now)
	}

	got := clock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if !got.Equal(expected) || !clock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, clock.Now())
	}
	if elapsed := clock.Elapsed(); elapsed != 25*time.Hour {
		t.Errorf("Expected 25h elapsed, got %v", elapsed)
	}
}

func TestManualClock_NeverRunsBackwards(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(startTime)
	clock.Advance(time.Minute)

	if clock.Set(startTime) {
		t.Error("Expected Set to an earlier time to be rejected")
	}
	if got := clock.Advance(-time.Second); !got.Equal(startTime.Add(time.Minute)) {
		t.Errorf("Expected negative Advance to be ignored, got %v", got)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &ManualClock{}
}
