package audio

import (
	"fmt"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/nitrogen-relay/constants"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

// Cue identifies a sound event
type Cue int

const (
	CueTierLow Cue = iota
	CueTierMedium
	CueTierHigh
	CueAlert
	CueLock
	CueFlip
	CueCelebrate
	cueCount
)

var cueNames = [cueCount]string{"tier-low", "tier-medium", "tier-high", "alert", "lock", "flip", "celebrate"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("Cue(%d)", int(c))
	}
	return cueNames[c]
}

// TierCue maps a food level to its chime
func TierCue(level scenario.FoodLevel) Cue {
	switch level {
	case scenario.FoodLow:
		return CueTierLow
	case scenario.FoodHigh:
		return CueTierHigh
	}
	return CueTierMedium
}

// Chime pitches rise with food: C5, E5, G5
var tierFreq = [scenario.FoodLevelCount]float64{523.25, 659.25, 783.99}

// BuildCue synthesizes a finite streamer for c at linear volume vol
func BuildCue(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueTierLow, CueTierMedium, CueTierHigh:
		freq := tierFreq[int(c-CueTierLow)]
		fund := tone(freq, WaveSine, constants.TierChimeDuration, constants.TierChimeAttack, constants.TierChimeRelease, rate)
		over := tone(freq*2, WaveSine, constants.TierChimeDuration, constants.TierChimeAttack, constants.TierChimeRelease/2, rate)
		s = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	case CueAlert:
		s = tone(110, WaveSaw, constants.AlertSoundDuration, constants.AlertSoundAttack, constants.AlertSoundRelease, rate)

	case CueLock:
		n1 := tone(987.77, WaveSquare, constants.LockSoundNote1Duration, constants.LockSoundAttack, constants.LockSoundNote1Release, rate)
		n2 := tone(1318.51, WaveSquare, constants.LockSoundNote2Duration, constants.LockSoundAttack, constants.LockSoundNote2Release, rate)
		s = newVolume(beep.Seq(n1, n2), 0.5)

	case CueFlip:
		s = tone(0, WaveNoise, constants.FlipSoundDuration, constants.FlipSoundAttack, constants.FlipSoundRelease, rate)

	case CueCelebrate:
		notes := make([]beep.Streamer, 0, 4)
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			notes = append(notes, tone(f, WaveSine, constants.CelebrateNoteDuration, constants.CelebrateNoteAttack, constants.CelebrateNoteRelease, rate))
		}
		s = beep.Seq(notes...)

	default:
		return nil
	}
	return newVolume(s, vol)
}
