// Package simulation is the entry point of the epidemic core
// Collaborators create a Simulation once, call ApplyPlayerInput and Tick every frame,
// and read positions and infection state back for display
package simulation

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/physics"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/system"
	"github.com/lixenwraith/contagion/vmath"
)

// ErrNoRandomSource is returned when a simulation is created without randomness
var ErrNoRandomSource = errors.New("no random source")

// Option customizes a Simulation at creation
type Option func(*Simulation)

// WithLogger routes core logging to l; the default discards everything
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// Census is a point-in-time population summary
type Census struct {
	Tick     int64
	Elapsed  time.Duration
	Infected int
	Healthy  int
}

// Simulation owns the world and its systems
type Simulation struct {
	cfg   config.Config
	world *engine.World
	log   *log.Logger

	player    *system.PlayerSystem
	infection *system.InfectionSystem
}

// New validates cfg and creates patient zero at the origin plus cfg.PersonCount healthy
// agents scattered uniformly over [-BoxSize, BoxSize] on both axes
// Agents may start outside the confinement square; the first tick pulls them in
func New(cfg config.Config, src vmath.Source, opts ...Option) (*Simulation, error) {
	if src == nil {
		return nil, ErrNoRandomSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	agents := make([]engine.Agent, 0, cfg.PersonCount+1)

	zero := engine.NewAgent(vmath.Zero2, vmath.RandomDirection(src), cfg.InfectionCooldown)
	zero.Infected = true
	agents = append(agents, zero)

	for i := 0; i < cfg.PersonCount; i++ {
		pos := vmath.Vec2{
			X: vmath.Range(src, -cfg.BoxSize, cfg.BoxSize),
			Y: vmath.Range(src, -cfg.BoxSize, cfg.BoxSize),
		}
		agents = append(agents, engine.NewAgent(pos, vmath.RandomDirection(src), cfg.InfectionCooldown))
	}

	return build(cfg, src, agents, opts)
}

// NewWithAgents creates a simulation over an explicit population, in index order
// Agents keep their given state, including Infected and cooldown progress
func NewWithAgents(cfg config.Config, src vmath.Source, agents []engine.Agent, opts ...Option) (*Simulation, error) {
	if src == nil {
		return nil, ErrNoRandomSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return build(cfg, src, agents, opts)
}

func build(cfg config.Config, src vmath.Source, agents []engine.Agent, opts []Option) (*Simulation, error) {
	s := &Simulation{
		cfg: cfg,
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Grid covers the initial scatter range; later positions are confined well inside it
	broadphase, err := physics.NewBroadphase(cfg.Broadphase, cfg.BoxSize, cfg.PersonSize)
	if err != nil {
		return nil, errors.Wrap(config.ErrInvalidConfig, err.Error())
	}

	store := engine.NewAgentStore(len(agents))
	for _, a := range agents {
		// Literal agents carry no cooldown period
		if a.Cooldown.Period == 0 {
			a.Cooldown.Period = cfg.InfectionCooldown
		}
		store.Spawn(a)
	}

	res := &engine.Resource{
		Config:  cfg,
		Resteer: engine.NewTimer(cfg.ResteerPeriod),
		Rand:    src,
		Events:  event.NewEventQueue(),
		Status:  status.NewRegistry(),
		Logger:  s.log,
	}
	s.world = engine.NewWorld(store, res)
	s.world.Player.Cooldown = engine.NewTimer(cfg.InfectionCooldown)

	s.player = system.NewPlayerSystem(s.world)
	s.infection = system.NewInfectionSystem(s.world, broadphase)

	s.world.AddSystem(system.NewMotionSystem(s.world))
	s.world.AddSystem(system.NewResteerSystem(s.world))
	s.world.AddSystem(s.infection)
	s.world.AddSystem(system.NewBoundarySystem(s.world))
	s.world.AddSystem(s.player)
	s.world.AddSystem(system.NewCensusSystem(s.world))

	s.log.Info("simulation created",
		"agents", store.Len(),
		"infected", store.InfectedCount(),
		"broadphase", broadphase.Name(),
		"contact_mode", cfg.ContactMode,
		"workers", cfg.Workers,
	)
	return s, nil
}

// NewSource returns the default random source for seed; 0 picks a time-based seed
func NewSource(seed uint64) *vmath.FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return vmath.NewFastRand(seed)
}

// Tick advances motion, re-steer, infection, confinement and the player, in that order
// Negative dt is treated as zero
func (s *Simulation) Tick(dt time.Duration) {
	s.world.Tick(dt)
}

// ApplyPlayerInput moves the player by direction * PlayerSpeed * dt
func (s *Simulation) ApplyPlayerInput(direction vmath.Vec2, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.world.RunSafe(func() {
		s.player.Move(direction, dt)
	})
}

// EachAgent visits every agent in index order under the world lock
// fn must not call back into the Simulation
func (s *Simulation) EachAgent(fn func(i int, pos vmath.Vec2, infected bool)) {
	s.world.RunSafe(func() {
		s.world.Agents.Each(func(i int, a *engine.Agent) {
			fn(i, a.Position, a.Infected)
		})
	})
}

// Agent returns a copy of agent i
func (s *Simulation) Agent(i int) engine.Agent {
	var a engine.Agent
	s.world.RunSafe(func() {
		a = s.world.Agents.At(i)
	})
	return a
}

// Len returns the population size, patient zero included
func (s *Simulation) Len() int {
	return s.world.Agents.Len()
}

// Player returns a copy of the player state
func (s *Simulation) Player() engine.Player {
	var p engine.Player
	s.world.RunSafe(func() {
		p = s.world.Player
	})
	return p
}

// Census summarizes the population after the last tick
func (s *Simulation) Census() Census {
	var c Census
	s.world.RunSafe(func() {
		t := s.world.Resource.Time
		c = Census{
			Tick:     t.FrameNumber,
			Elapsed:  t.Elapsed,
			Infected: s.world.Agents.InfectedCount(),
			Healthy:  s.world.Agents.HealthyCount(),
		}
	})
	return c
}

// Events drains the event queue; single consumer
func (s *Simulation) Events() []event.GameEvent {
	return s.world.Resource.Events.Consume()
}

// DroppedEvents counts events overwritten before Events drained them
func (s *Simulation) DroppedEvents() uint64 {
	return s.world.Resource.Events.Dropped()
}

// Status returns the metrics registry
func (s *Simulation) Status() *status.Registry {
	return s.world.Resource.Status
}

// Config returns the validated configuration
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Broadphase returns the name of the active contact broadphase
func (s *Simulation) Broadphase() string {
	return s.infection.Broadphase().Name()
}
