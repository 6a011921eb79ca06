package app

import "github.com/lixenwraith/nitrogen-relay/audio"

// Sounds is the audio surface the app drives; audio.SoundManager satisfies it
type Sounds interface {
	Play(c audio.Cue) bool
	SetMuted(muted bool)
	Muted() bool
	SetVolume(vol float64)
}

// silentSounds tracks mute state without producing audio
type silentSounds struct {
	muted bool
}

func (s *silentSounds) Play(audio.Cue) bool { return false }
func (s *silentSounds) SetMuted(muted bool) { s.muted = muted }
func (s *silentSounds) Muted() bool         { return s.muted }
func (s *silentSounds) SetVolume(float64)   {}
