package systems

import (
	"time"
	"unicode/utf8"
)

// Typewriter reveals a line of text one rune per interval, holds, then completes
type Typewriter struct {
	text      string
	runes     int
	interval  time.Duration
	hold      time.Duration
	skipDelay time.Duration
	start     time.Time
	skipped   bool
}

// NewTypewriter starts typing text at start
func NewTypewriter(text string, interval, hold, skipDelay time.Duration, start time.Time) *Typewriter {
	return &Typewriter{
		text:      text,
		runes:     utf8.RuneCountInString(text),
		interval:  interval,
		hold:      hold,
		skipDelay: skipDelay,
		start:     start,
	}
}

// Typed returns the revealed prefix at now
func (tw *Typewriter) Typed(now time.Time) string {
	n := tw.runes
	if !tw.skipped {
		n = tw.typedCount(now)
	}
	if n >= tw.runes {
		return tw.text
	}
	i := 0
	for pos := range tw.text {
		if i == n {
			return tw.text[:pos]
		}
		i++
	}
	return tw.text
}

func (tw *Typewriter) typedCount(now time.Time) int {
	elapsed := now.Sub(tw.start)
	if elapsed <= 0 {
		return 0
	}
	if tw.interval <= 0 {
		return tw.runes
	}
	// The first rune appears after one interval
	n := int(elapsed / tw.interval)
	if n > tw.runes {
		n = tw.runes
	}
	return n
}

// TypingDone reports whether every rune has been revealed
func (tw *Typewriter) TypingDone(now time.Time) bool {
	return tw.skipped || tw.typedCount(now) >= tw.runes
}

// SkipHintVisible reports whether the skip prompt should show
func (tw *Typewriter) SkipHintVisible(now time.Time) bool {
	return now.Sub(tw.start) >= tw.skipDelay
}

// Complete reports whether the intro is finished, including the hold after typing
func (tw *Typewriter) Complete(now time.Time) bool {
	if tw.skipped {
		return true
	}
	typing := time.Duration(tw.runes) * tw.interval
	return now.Sub(tw.start) >= typing+tw.hold
}

// Skip reveals everything and completes immediately
func (tw *Typewriter) Skip() {
	tw.skipped = true
}
