package system

import (
	"time"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/physics"
	"github.com/lixenwraith/contagion/vmath"
)

// PlayerSystem moves the player from external input
// The player is exempt from confinement unless ClampPlayer is set
type PlayerSystem struct {
	engine.SystemBase

	speed  float64
	clamp  bool
	bounds physics.Bounds
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(world *engine.World) *PlayerSystem {
	s := &PlayerSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	cfg := s.Resource.Config
	s.speed = cfg.PlayerSpeed
	s.clamp = cfg.ClampPlayer
	s.bounds = physics.NewBounds(cfg.BoxSize, cfg.PersonSize)
	return s
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Move stores direction and displaces the player by direction * speed * dt
// Diagonal input is not normalized. Caller holds the world update lock
func (s *PlayerSystem) Move(direction vmath.Vec2, dt time.Duration) {
	p := &s.World.Player
	p.Direction = direction
	p.Position = physics.Integrate(p.Position, direction, s.speed, dt)
	if s.clamp {
		p.Position = s.bounds.Clamp(p.Position)
	}
}

// Update keeps the player inside the square when clamping is enabled
func (s *PlayerSystem) Update() {
	if s.clamp {
		s.World.Player.Position = s.bounds.Clamp(s.World.Player.Position)
	}
}
