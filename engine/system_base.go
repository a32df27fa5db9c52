package engine

// System is one per-tick step over the world
// Systems read dt from Resource.Time and must not block
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World    *World
	Resource *Resource
	Agents   *AgentStore
}

// NewSystemBase initializes base dependency from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:    w,
		Resource: w.Resource,
		Agents:   w.Agents,
	}
}
