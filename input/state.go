package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/vmath"
)

// Tracker turns discrete key presses into a held direction
// Terminals report no key-up, so a direction counts as held while its key
// was last seen within the hold window; auto-repeat keeps it alive
type Tracker struct {
	mu       sync.Mutex
	provider engine.TimeProvider
	window   time.Duration
	lastSeen [4]time.Time // Indexed by Action - ActionUp
}

// NewTracker creates a tracker reading time from provider
func NewTracker(provider engine.TimeProvider, window time.Duration) *Tracker {
	return &Tracker{
		provider: provider,
		window:   window,
	}
}

// Press records a motion action; other actions are ignored
func (t *Tracker) Press(a Action) {
	if !a.IsMotion() {
		return
	}
	t.mu.Lock()
	t.lastSeen[a-ActionUp] = t.provider.Now()
	t.mu.Unlock()
}

// Release forgets every held direction
func (t *Tracker) Release() {
	t.mu.Lock()
	t.lastSeen = [4]time.Time{}
	t.mu.Unlock()
}

// Direction sums the held directions; Y grows upward, diagonals are not normalized
// Opposite keys cancel
func (t *Tracker) Direction() vmath.Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.provider.Now()
	held := func(a Action) bool {
		seen := t.lastSeen[a-ActionUp]
		return !seen.IsZero() && now.Sub(seen) <= t.window
	}

	var dir vmath.Vec2
	if held(ActionUp) {
		dir.Y++
	}
	if held(ActionDown) {
		dir.Y--
	}
	if held(ActionRight) {
		dir.X++
	}
	if held(ActionLeft) {
		dir.X--
	}
	return dir
}
