package engine

import (
	"context"
	"time"
)

// FrameLoop delivers frame timestamps at a fixed interval
// Frames are dropped rather than queued when the consumer falls behind
type FrameLoop struct {
	interval time.Duration
	clock    TimeProvider
	frames   chan time.Time
}

// NewFrameLoop creates a loop ticking every interval
func NewFrameLoop(interval time.Duration, clock TimeProvider) *FrameLoop {
	return &FrameLoop{
		interval: interval,
		clock:    clock,
		frames:   make(chan time.Time, 1),
	}
}

// FrameInterval converts a frame rate to a tick interval
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Frames is the channel receiving frame timestamps
func (l *FrameLoop) Frames() <-chan time.Time {
	return l.frames
}

// Run ticks until ctx is cancelled
func (l *FrameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case l.frames <- l.clock.Now():
			default:
				// Consumer busy, drop frame
			}
		}
	}
}
