package system

import (
	"sync/atomic"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/status"
)

// CensusSystem publishes per-tick population counts to the status registry
// Runs last so readers between ticks see the committed state
type CensusSystem struct {
	engine.SystemBase

	statTicks    *atomic.Int64
	statElapsed  *status.Gauge
	statInfected *status.Gauge
	statHealthy  *status.Gauge
}

// NewCensusSystem creates a new census system
func NewCensusSystem(world *engine.World) engine.System {
	s := &CensusSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	reg := s.Resource.Status
	s.statTicks = reg.Counters.Get(status.Ticks)
	s.statElapsed = reg.Gauges.Get(status.Elapsed)
	s.statInfected = reg.Gauges.Get(status.Infected)
	s.statHealthy = reg.Gauges.Get(status.Healthy)
	s.publish()
	return s
}

func (s *CensusSystem) Name() string {
	return "census"
}

func (s *CensusSystem) Priority() int {
	return parameter.PriorityCensus
}

func (s *CensusSystem) Update() {
	s.statTicks.Add(1)
	s.publish()
}

func (s *CensusSystem) publish() {
	s.statElapsed.Set(s.Resource.Time.Elapsed.Seconds())
	s.statInfected.Set(float64(s.Agents.InfectedCount()))
	s.statHealthy.Set(float64(s.Agents.HealthyCount()))
}
