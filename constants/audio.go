package constants

import "time"

// Audio device
const (
	AudioSampleRate   = 48000
	AudioBufferWindow = 100 * time.Millisecond

	// MinCueGap drops repeats of the same cue closer than this
	MinCueGap = 80 * time.Millisecond
)

// Tier change chime
const (
	TierChimeDuration = 260 * time.Millisecond
	TierChimeAttack   = 5 * time.Millisecond
	TierChimeRelease  = 180 * time.Millisecond
)

// N2O alert buzz
const (
	AlertSoundDuration = 220 * time.Millisecond
	AlertSoundAttack   = 10 * time.Millisecond
	AlertSoundRelease  = 60 * time.Millisecond
)

// Prediction lock click
const (
	LockSoundNote1Duration = 60 * time.Millisecond
	LockSoundNote2Duration = 160 * time.Millisecond
	LockSoundAttack        = 5 * time.Millisecond
	LockSoundNote1Release  = 30 * time.Millisecond
	LockSoundNote2Release  = 120 * time.Millisecond
)

// Glossary flip whoosh
const (
	FlipSoundDuration = 180 * time.Millisecond
	FlipSoundAttack   = 80 * time.Millisecond
	FlipSoundRelease  = 90 * time.Millisecond
)

// All-concepts celebration arpeggio, per note
const (
	CelebrateNoteDuration = 140 * time.Millisecond
	CelebrateNoteAttack   = 5 * time.Millisecond
	CelebrateNoteRelease  = 100 * time.Millisecond
)
