package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind; an outbreak can infect hundreds per tick
	MinSoundGap = 80 * time.Millisecond

	// MasterVolume scales every cue, linear 0..1
	MasterVolume = 0.4
)

// Infection cue: short sine blip
const (
	InfectionSoundFreq     = 660.0
	InfectionSoundDuration = 60 * time.Millisecond
	InfectionSoundAttack   = 3 * time.Millisecond
	InfectionSoundRelease  = 40 * time.Millisecond
)

// Re-steer cue: soft noise swish
const (
	ResteerSoundDuration = 120 * time.Millisecond
	ResteerSoundAttack   = 20 * time.Millisecond
	ResteerSoundRelease  = 80 * time.Millisecond
	ResteerSoundVolume   = 0.25
)

// Player infected cue: two-note low buzz
const (
	PlayerSoundNote1Freq    = 220.0
	PlayerSoundNote2Freq    = 146.83
	PlayerSoundNoteDuration = 150 * time.Millisecond
	PlayerSoundAttack       = 5 * time.Millisecond
	PlayerSoundRelease      = 60 * time.Millisecond
	PlayerSoundVolume       = 0.6
)
