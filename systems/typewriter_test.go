package systems

import (
	"testing"
	"time"
)

func TestTypewriter_RevealsPerInterval(t *testing.T) {
	ms := time.Millisecond
	tw := NewTypewriter("N₂O!", 75*ms, 1200*ms, 1000*ms, epoch)

	steps := []struct {
		at   time.Duration
		want string
	}{
		{0, ""},
		{74 * ms, ""},
		{75 * ms, "N"},
		{150 * ms, "N₂"},
		{225 * ms, "N₂O"},
		{300 * ms, "N₂O!"},
		{10 * time.Second, "N₂O!"},
	}
	for _, s := range steps {
		if got := tw.Typed(epoch.Add(s.at)); got != s.want {
			t.Errorf("Typed at %v = %q, want %q", s.at, got, s.want)
		}
	}

	if tw.TypingDone(epoch.Add(299 * ms)) {
		t.Error("Typing reported done early")
	}
	if tw.Complete(epoch.Add(1499 * ms)) {
		t.Error("Complete before hold elapsed")
	}
	if !tw.Complete(epoch.Add(1500 * ms)) {
		t.Error("Expected complete after typing plus hold")
	}
}

func TestTypewriter_SkipAndHint(t *testing.T) {
	tw := NewTypewriter("relay", 75*time.Millisecond, time.Second, time.Second, epoch)
	if tw.SkipHintVisible(epoch.Add(999 * time.Millisecond)) {
		t.Error("Skip hint visible early")
	}
	if !tw.SkipHintVisible(epoch.Add(time.Second)) {
		t.Error("Skip hint not visible after delay")
	}

	tw.Skip()
	if !tw.Complete(epoch) || tw.Typed(epoch) != "relay" {
		t.Error("Skip did not complete the intro")
	}
}
