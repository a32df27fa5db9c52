package system

import (
	"sync/atomic"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// ResteerSystem redraws every velocity when the shared re-steer timer fires
// The timer reports at most one edge per tick, so a long dt still re-steers once
type ResteerSystem struct {
	engine.SystemBase

	statFires *atomic.Int64
}

// NewResteerSystem creates a new re-steer system
func NewResteerSystem(world *engine.World) engine.System {
	s := &ResteerSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statFires = s.Resource.Status.Counters.Get(status.ResteerFires)
	return s
}

func (s *ResteerSystem) Name() string {
	return "resteer"
}

func (s *ResteerSystem) Priority() int {
	return parameter.PriorityResteer
}

func (s *ResteerSystem) Update() {
	timer := &s.Resource.Resteer
	timer.Tick(s.Resource.Time.DeltaTime)
	if !timer.JustFinished() {
		return
	}

	// Store order, all at once; the previous heading is discarded
	rng := s.Resource.Rand
	s.Agents.Each(func(_ int, a *engine.Agent) {
		a.Velocity = vmath.RandomDirection(rng)
	})

	s.statFires.Add(1)
	s.World.PushEvent(event.EventResteer, event.ResteerPayload{Agents: s.Agents.Len()})
	s.Resource.Logger.Debug("resteer",
		"frame", s.Resource.Time.FrameNumber,
		"agents", s.Agents.Len(),
		"periods", timer.TimesFinishedThisTick(),
	)
}
