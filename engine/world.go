package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/contagion/event"
)

// World owns all simulation state: the agent store, the player and the resources
// It advances only when Tick is called; there is no internal scheduler
type World struct {
	Agents   *AgentStore
	Player   Player
	Resource *Resource

	// Held for the whole of a tick and by RunSafe callers
	updateMutex sync.Mutex

	systemsMu sync.RWMutex
	systems   []System // Ascending priority, registration order among equals
}

func NewWorld(agents *AgentStore, res *Resource) *World {
	return &World{
		Agents:   agents,
		Resource: res,
		systems:  make([]System, 0, 8),
	}
}

// AddSystem registers a system in priority order
func (w *World) AddSystem(s System) {
	w.systemsMu.Lock()
	defer w.systemsMu.Unlock()

	at := len(w.systems)
	for at > 0 && w.systems[at-1].Priority() > s.Priority() {
		at--
	}
	w.systems = append(w.systems, nil)
	copy(w.systems[at+1:], w.systems[at:])
	w.systems[at] = s
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	w.systemsMu.RLock()
	defer w.systemsMu.RUnlock()
	return append([]System(nil), w.systems...)
}

// RunSafe runs fn between ticks
// Readers on other goroutines use it to see a consistent population
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick advances time by dt and runs every system once; negative dt counts as zero
func (w *World) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	systems := w.Systems()

	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.Resource.Time.Update(dt)
	for _, s := range systems {
		s.Update()
	}
}

// PushEvent queues an event stamped with the current tick
// Systems call it from Update, under the update lock
func (w *World) PushEvent(t event.EventType, payload any) {
	if w.Resource.Events == nil {
		return
	}
	w.Resource.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}
