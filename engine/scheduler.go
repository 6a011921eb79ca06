package engine

import (
	"sort"
	"sync"
	"time"
)

// TaskFunc runs when a task comes due; due is the scheduled time, not the firing time
type TaskFunc func(due time.Time)

// Task is a cancellable one-shot callback owned by a Scheduler
type Task struct {
	id        uint64
	due       time.Time
	fn        TaskFunc
	cancelled bool
	fired     bool
	sched     *Scheduler
}

// Due returns the scheduled firing time
func (t *Task) Due() time.Time {
	return t.due
}

// Cancel prevents the task from firing, returns false if it already fired or was cancelled
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	t.sched.remove(t)
	return true
}

// Pending reports whether the task is still waiting to fire
func (t *Task) Pending() bool {
	if t == nil {
		return false
	}
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return !t.fired && !t.cancelled
}

// Scheduler holds delayed callbacks and fires them from the frame loop
// Nothing runs on its own goroutine; Advance is the only firing point
type Scheduler struct {
	mu     sync.Mutex
	clock  TimeProvider
	tasks  []*Task
	nextID uint64
}

// NewScheduler creates a scheduler that measures delays against clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// Clock returns the time source used by After
func (s *Scheduler) Clock() TimeProvider {
	return s.clock
}

// After schedules fn to run d after the current clock time
func (s *Scheduler) After(d time.Duration, fn TaskFunc) *Task {
	return s.At(s.clock.Now().Add(d), fn)
}

// At schedules fn to run at due
func (s *Scheduler) At(due time.Time, fn TaskFunc) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := &Task{
		id:    s.nextID,
		due:   due,
		fn:    fn,
		sched: s,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every task that is due at now, in due order with ties broken by creation order
// Tasks scheduled by callbacks wait for the next Advance even if already due
// Returns the number of tasks fired
func (s *Scheduler) Advance(now time.Time) int {
	s.mu.Lock()
	var due []*Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	// Clear the tail so fired tasks are not retained by the backing array
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	fired := 0
	for _, t := range due {
		s.mu.Lock()
		// A callback earlier in this batch may have cancelled t
		if t.cancelled {
			s.mu.Unlock()
			continue
		}
		t.fired = true
		s.mu.Unlock()

		t.fn(t.due)
		fired++
	}
	return fired
}

// Pending returns the number of tasks waiting to fire
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// CancelAll drops every pending task
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

// remove deletes t from the pending list, caller holds mu
func (s *Scheduler) remove(t *Task) {
	for i, p := range s.tasks {
		if p == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
