package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// TestSoundManagerGracefulDegradation verifies cues are dropped, not panicking, without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5, nil)

	for c := Cue(0); c < cueCount; c++ {
		assert.False(t, sm.Play(c), "cue %s before Initialize", c)
	}
	sm.SetMuted(true)
	sm.SetMuted(false)
	sm.Cleanup()
}

// TestSoundManagerInitialization tolerates hosts without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5, nil)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	assert.NoError(t, sm.Initialize(), "second Initialize is a no-op")

	clock := time.Unix(0, 0)
	sm.now = func() time.Time { return clock }

	assert.True(t, sm.Play(CueLock))
	assert.False(t, sm.Play(CueLock), "repeat inside gap dropped")
	clock = clock.Add(constants.MinCueGap)
	assert.True(t, sm.Play(CueLock))

	sm.SetMuted(true)
	assert.False(t, sm.Play(CueFlip))
}

func TestSoundManagerVolumeClamp(t *testing.T) {
	sm := NewSoundManager(3, nil)
	assert.Equal(t, 1.0, sm.Volume())
	sm.SetVolume(-1)
	assert.Equal(t, 0.0, sm.Volume())
	sm.SetVolume(math.NaN())
	assert.Equal(t, 0.0, sm.Volume())
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += got
		if !ok {
			return n, peak
		}
	}
}

func TestBuildCue_FiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(8000)
	for c := Cue(0); c < cueCount; c++ {
		s := BuildCue(c, rate, 1)
		if !assert.NotNil(t, s, c.String()) {
			continue
		}
		n, peak := drain(s)
		assert.Greater(t, n, 0, c.String())
		assert.LessOrEqual(t, n, rate.N(time.Second), c.String())
		assert.LessOrEqual(t, peak, 1.0+1e-9, c.String())
	}
}

func TestBuildCue_ToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, _ := drain(BuildCue(CueAlert, rate, 1))
	assert.Equal(t, rate.N(constants.AlertSoundDuration), n)

	n, _ = drain(BuildCue(CueLock, rate, 1))
	assert.Equal(t, rate.N(constants.LockSoundNote1Duration)+rate.N(constants.LockSoundNote2Duration), n)
}

func TestBuildCue_ZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(BuildCue(CueTierHigh, beep.SampleRate(8000), 0))
	assert.Equal(t, 0.0, peak)
}

func TestBuildCue_Unknown(t *testing.T) {
	assert.Nil(t, BuildCue(Cue(99), beep.SampleRate(8000), 1))
	assert.Equal(t, "Cue(99)", Cue(99).String())
}

func TestTierCue(t *testing.T) {
	assert.Equal(t, CueTierLow, TierCue(scenario.FoodLow))
	assert.Equal(t, CueTierMedium, TierCue(scenario.FoodMedium))
	assert.Equal(t, CueTierHigh, TierCue(scenario.FoodHigh))
}

func TestEnvelope_AttackStartsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 0, rate)
	buf := make([][2]float64, 4)
	s.Stream(buf)
	assert.Equal(t, 0.0, buf[0][0])
	assert.Greater(t, buf[3][0], 0.0)
}
