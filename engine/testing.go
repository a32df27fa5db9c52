package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// ScriptedSource replays fixed draws, for tests that must force an infection roll
// Exhausted scripts fall back to Fallback, or to zero values when Fallback is nil
type ScriptedSource struct {
	Ints     []int
	Floats   []float64
	Fallback vmath.Source

	IntCalls   int
	FloatCalls int
}

// Intn returns the next scripted int reduced into [0, n)
func (s *ScriptedSource) Intn(n int) int {
	s.IntCalls++
	if n <= 0 {
		return 0
	}
	if len(s.Ints) > 0 {
		v := s.Ints[0]
		s.Ints = s.Ints[1:]
		return ((v % n) + n) % n
	}
	if s.Fallback != nil {
		return s.Fallback.Intn(n)
	}
	return 0
}

// Float64 returns the next scripted float
func (s *ScriptedSource) Float64() float64 {
	s.FloatCalls++
	if len(s.Floats) > 0 {
		v := s.Floats[0]
		s.Floats = s.Floats[1:]
		return v
	}
	if s.Fallback != nil {
		return s.Fallback.Float64()
	}
	return 0
}

// NewTestResource builds a fully initialized resource set with a discard logger
func NewTestResource(cfg config.Config, src vmath.Source) *Resource {
	return &Resource{
		Config:  cfg,
		Resteer: NewTimer(cfg.ResteerPeriod),
		Rand:    src,
		Events:  event.NewEventQueue(),
		Status:  status.NewRegistry(),
		Logger:  log.New(io.Discard),
	}
}

// NewTestWorld creates a world holding the given agents, in index order
func NewTestWorld(cfg config.Config, src vmath.Source, agents ...Agent) *World {
	store := NewAgentStore(len(agents))
	for _, a := range agents {
		store.Spawn(a)
	}
	w := NewWorld(store, NewTestResource(cfg, src))
	w.Player.Cooldown = NewTimer(cfg.InfectionCooldown)
	return w
}
