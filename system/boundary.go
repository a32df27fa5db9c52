package system

import (
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/physics"
)

// BoundarySystem clamps agents into the confinement square
// Velocity is left untouched, so an agent may stay pinned to a wall until the next re-steer
type BoundarySystem struct {
	engine.SystemBase

	bounds physics.Bounds
}

// NewBoundarySystem creates a new boundary system
func NewBoundarySystem(world *engine.World) engine.System {
	s := &BoundarySystem{
		SystemBase: engine.NewSystemBase(world),
	}
	cfg := s.Resource.Config
	s.bounds = physics.NewBounds(cfg.BoxSize, cfg.PersonSize)
	return s
}

func (s *BoundarySystem) Name() string {
	return "boundary"
}

func (s *BoundarySystem) Priority() int {
	return parameter.PriorityBoundary
}

func (s *BoundarySystem) Update() {
	s.Agents.Each(func(_ int, a *engine.Agent) {
		a.Position = s.bounds.Clamp(a.Position)
	})
}
