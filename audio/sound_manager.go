package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/nitrogen-relay/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays cues through a single speaker mixer
// All Play calls are no-ops until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
	lastPlayed  [cueCount]time.Time
	now         func() time.Time
	logger      *zap.Logger
}

// NewSoundManager creates a silent manager at linear volume vol
func NewSoundManager(vol float64, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		volume: clampVolume(vol),
		now:    time.Now,
		logger: logger.Named("audio"),
	}
}

// Initialize opens the speaker; callers continue without sound on error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferWindow)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	sm.logger.Debug("speaker ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup silences and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues cue unless muted, uninitialized or repeated within MinCueGap
// Reports whether the cue was queued
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || c < 0 || c >= cueCount {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[c]; !last.IsZero() && now.Sub(last) < constants.MinCueGap {
		return false
	}
	s := BuildCue(c, sampleRate, sm.volume)
	if s == nil {
		return false
	}
	sm.lastPlayed[c] = now

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// SetMuted toggles all output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ctrl.Paused = muted
	speaker.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets linear volume for cues queued afterwards
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(vol)
}

func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
