package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_FiresInDueOrder(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock)

	var order []string
	s.After(300*time.Millisecond, func(time.Time) { order = append(order, "c") })
	s.After(100*time.Millisecond, func(time.Time) { order = append(order, "a") })
	s.After(100*time.Millisecond, func(time.Time) { order = append(order, "b") })

	if n := s.Advance(epoch.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("Expected nothing due at 50ms, fired %d", n)
	}
	if n := s.Advance(epoch.Add(time.Second)); n != 3 {
		t.Fatalf("Expected 3 tasks fired, got %d", n)
	}

	want := "abc"
	got := ""
	for _, o := range order {
		got += o
	}
	if got != want {
		t.Errorf("Expected firing order %q, got %q", want, got)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", s.Pending())
	}
}

func TestScheduler_PassesDueTime(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch))
	var got time.Time
	s.At(epoch.Add(500*time.Millisecond), func(due time.Time) { got = due })

	// Fire late; callback still sees the scheduled time
	s.Advance(epoch.Add(10 * time.Second))
	if !got.Equal(epoch.Add(500 * time.Millisecond)) {
		t.Errorf("Expected due time 500ms, got %v", got.Sub(epoch))
	}
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch))
	fired := false
	task := s.After(time.Second, func(time.Time) { fired = true })

	if !task.Pending() {
		t.Fatal("Expected task to be pending")
	}
	if !task.Cancel() {
		t.Fatal("Expected first cancel to succeed")
	}
	if task.Cancel() {
		t.Error("Expected second cancel to report false")
	}
	s.Advance(epoch.Add(time.Hour))
	if fired {
		t.Error("Cancelled task fired")
	}
	if task.Pending() {
		t.Error("Cancelled task still pending")
	}
}

func TestScheduler_CancelDuringBatch(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch))
	var second *Task
	secondFired := false
	s.After(time.Millisecond, func(time.Time) { second.Cancel() })
	second = s.After(2*time.Millisecond, func(time.Time) { secondFired = true })

	if n := s.Advance(epoch.Add(time.Second)); n != 1 {
		t.Errorf("Expected 1 fired task, got %d", n)
	}
	if secondFired {
		t.Error("Task cancelled by an earlier callback in the same batch still fired")
	}
}

func TestScheduler_RescheduleWaitsForNextAdvance(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock)

	count := 0
	var loop TaskFunc
	loop = func(due time.Time) {
		count++
		s.At(due.Add(time.Millisecond), loop)
	}
	s.At(epoch, loop)

	// A huge jump must not spin through every intermediate reschedule
	s.Advance(epoch.Add(time.Hour))
	if count != 1 {
		t.Fatalf("Expected one firing per Advance, got %d", count)
	}
	s.Advance(epoch.Add(time.Hour))
	if count != 2 {
		t.Errorf("Expected second firing on next Advance, got %d", count)
	}
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch))
	a := s.After(time.Second, func(time.Time) { t.Error("fired after CancelAll") })
	s.After(2*time.Second, func(time.Time) { t.Error("fired after CancelAll") })
	s.CancelAll()
	s.Advance(epoch.Add(time.Minute))
	if a.Pending() || s.Pending() != 0 {
		t.Error("Expected no pending tasks after CancelAll")
	}
}

func TestGeneration(t *testing.T) {
	var g Generation
	first := g.Next()
	if !g.IsCurrent(first) {
		t.Fatal("Expected fresh generation to be current")
	}
	second := g.Next()
	if g.IsCurrent(first) {
		t.Error("Superseded generation still current")
	}
	if second != g.Current() || second <= first {
		t.Errorf("Expected increasing generations, got %d then %d", first, second)
	}
}
