package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures the wall-clock dt between frames for World.Tick
// While paused Delta returns 0; on resume the pause duration is discarded, not replayed
type PausableClock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock starts a clock at provider.Now()
// maxDelta caps a single Delta after a stall; 0 disables the cap
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	return &PausableClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns the time since the previous Delta call
func (pc *PausableClock) Delta() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if pc.isPaused.Load() {
		pc.last = now
		return 0
	}

	dt := now.Sub(pc.last)
	pc.last = now
	if dt < 0 {
		return 0
	}
	if pc.maxDelta > 0 && dt > pc.maxDelta {
		return pc.maxDelta
	}
	return dt
}

// Pause stops dt accumulation
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.provider.Now()
		pc.mu.Unlock()
	}
}

// Resume continues dt accumulation from now
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		now := pc.provider.Now()
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.last = now
		pc.mu.Unlock()
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative completed pause time
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.totalPausedTime
}
