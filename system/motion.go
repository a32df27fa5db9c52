package system

import (
	"sync/atomic"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/physics"
)

// MotionSystem integrates every agent's position by its velocity
type MotionSystem struct {
	engine.SystemBase

	speed float64

	statMoved *atomic.Int64
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.speed = s.Resource.Config.PersonSpeed
	s.statMoved = s.Resource.Status.Counters.Get("motion.moved")
	return s
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update runs unconditionally; a zero dt leaves positions unchanged
func (s *MotionSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	s.Agents.Each(func(_ int, a *engine.Agent) {
		a.Position = physics.Integrate(a.Position, a.Velocity, s.speed, dt)
	})
	s.statMoved.Add(int64(s.Agents.Len()))
}
