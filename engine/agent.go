package engine

import (
	"time"

	"github.com/lixenwraith/contagion/vmath"
)

// Agent is one simulated person
// Infected must only be changed through AgentStore.Infect so the partition views stay consistent
type Agent struct {
	Position vmath.Vec2
	Velocity vmath.Vec2 // Each axis in [-1, 1), not normalized
	Infected bool
	Cooldown Timer // Gates infection rolls while in contact
}

// NewAgent creates a healthy agent with an unstarted cooldown
func NewAgent(pos, vel vmath.Vec2, cooldown time.Duration) Agent {
	return Agent{
		Position: pos,
		Velocity: vel,
		Cooldown: NewTimer(cooldown),
	}
}

// Player is the input-driven entity, independent of the population
type Player struct {
	Position  vmath.Vec2
	Direction vmath.Vec2 // Recomputed from input every tick
	Infected  bool
	Cooldown  Timer
}
