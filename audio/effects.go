package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one enveloped note; Freq is ignored for noise
// Attack and Release are linear ramps inside Duration
type Tone struct {
	Wave     Wave
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Streamer renders the tone at rate
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	attack := min(rate.N(t.Attack), total)
	release := min(rate.N(t.Release), total-attack)
	return &toneStreamer{
		tone:    t,
		step:    t.Freq / float64(rate),
		total:   total,
		attack:  attack,
		release: release,
		noise:   vmath.NewFastRand(uint64(t.Freq*1000) + 1),
	}
}

type toneStreamer struct {
	tone  Tone
	step  float64 // Phase increment per sample
	phase float64
	pos   int

	total, attack, release int
	noise                  *vmath.FastRand
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		v := s.sample() * s.gain()
		samples[i] = [2]float64{v, v}

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// sample is the raw wave value in [-1, 1]
func (s *toneStreamer) sample() float64 {
	switch s.tone.Wave {
	case WaveSquare:
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*s.phase - 1
	case WaveNoise:
		return 2*s.noise.Float64() - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

// gain is the envelope at the current position
func (s *toneStreamer) gain() float64 {
	if s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	if remaining := s.total - s.pos; remaining <= s.release {
		return float64(remaining) / float64(s.release)
	}
	return 1
}

// newVolume maps linear gain to beep's log-scale volume; zero and below is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// cueSound is the tone sequence and gain of one cue
type cueSound struct {
	tones []Tone
	gain  float64
}

var cueSounds = [cueCount]cueSound{
	CueInfection: {
		gain: 1,
		tones: []Tone{{
			Wave:     WaveSine,
			Freq:     parameter.InfectionSoundFreq,
			Duration: parameter.InfectionSoundDuration,
			Attack:   parameter.InfectionSoundAttack,
			Release:  parameter.InfectionSoundRelease,
		}},
	},
	CueResteer: {
		gain: parameter.ResteerSoundVolume,
		tones: []Tone{{
			Wave:     WaveNoise,
			Duration: parameter.ResteerSoundDuration,
			Attack:   parameter.ResteerSoundAttack,
			Release:  parameter.ResteerSoundRelease,
		}},
	},
	CuePlayerInfected: {
		gain: parameter.PlayerSoundVolume,
		tones: []Tone{
			{
				Wave:     WaveSquare,
				Freq:     parameter.PlayerSoundNote1Freq,
				Duration: parameter.PlayerSoundNoteDuration,
				Attack:   parameter.PlayerSoundAttack,
				Release:  parameter.PlayerSoundRelease,
			},
			{
				Wave:     WaveSquare,
				Freq:     parameter.PlayerSoundNote2Freq,
				Duration: parameter.PlayerSoundNoteDuration,
				Attack:   parameter.PlayerSoundAttack,
				Release:  parameter.PlayerSoundRelease,
			},
		},
	},
}

// cueStreamer builds a fresh streamer for cue scaled by master
func cueStreamer(cue Cue, rate beep.SampleRate, master float64) beep.Streamer {
	sound := cueSounds[cue]
	parts := make([]beep.Streamer, len(sound.tones))
	for i, t := range sound.tones {
		parts[i] = t.Streamer(rate)
	}
	return newVolume(beep.Seq(parts...), sound.gain*master)
}
