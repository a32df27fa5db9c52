package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
)

// Cue identifies one short sound
type Cue int

const (
	CueInfection Cue = iota
	CueResteer
	CuePlayerInfected
	cueCount
)

// CuePlayer turns simulation events into short tones
// Without an audio device it still gates cues, so callers never branch on availability
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	provider    engine.TimeProvider
	initialized bool

	muted      atomic.Bool
	lastPlayed [cueCount]time.Time
	played     [cueCount]int
}

// NewCuePlayer creates a player using provider for cue spacing
func NewCuePlayer(provider engine.TimeProvider) *CuePlayer {
	return &CuePlayer{
		mixer:    &beep.Mixer{},
		rate:     beep.SampleRate(parameter.AudioSampleRate),
		master:   parameter.MasterVolume,
		provider: provider,
	}
}

// Initialize opens the speaker; on error the player stays usable and silent
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}

	if err := speaker.Init(cp.rate, cp.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}

	speaker.Lock()
	cp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	cp.initialized = false
}

// ToggleMute flips mute and returns the new state
func (cp *CuePlayer) ToggleMute() bool {
	for {
		old := cp.muted.Load()
		if cp.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets mute directly
func (cp *CuePlayer) SetMuted(muted bool) {
	cp.muted.Store(muted)
}

// IsMuted returns the mute state
func (cp *CuePlayer) IsMuted() bool {
	return cp.muted.Load()
}

// Play starts cue unless muted or the same cue played within MinSoundGap
// Returns whether the cue was accepted
func (cp *CuePlayer) Play(cue Cue) bool {
	if cue < 0 || cue >= cueCount || cp.muted.Load() {
		return false
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	now := cp.provider.Now()
	if last := cp.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	cp.lastPlayed[cue] = now
	cp.played[cue]++

	if !cp.initialized {
		return true
	}

	streamer := cueStreamer(cue, cp.rate, cp.master)
	speaker.Lock()
	cp.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Played returns how many times cue was accepted
func (cp *CuePlayer) Played(cue Cue) int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return cp.played[cue]
}

// HandleEvent maps a simulation event to its cue
func (cp *CuePlayer) HandleEvent(ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventInfection:
		return cp.Play(CueInfection)
	case event.EventResteer:
		return cp.Play(CueResteer)
	case event.EventPlayerInfected:
		return cp.Play(CuePlayerInfected)
	}
	return false
}
