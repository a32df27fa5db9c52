package system

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/physics"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// playerIndex marks the player in source and target lists
const playerIndex = -1

// minSourcesPerWorker keeps tiny outbreaks on the calling goroutine
const minSourcesPerWorker = 32

// InfectionSystem spreads infection from infected sources to healthy agents in contact
//
// A tick runs in three phases:
//  1. Contact detection: read-only, optionally split across workers; each source gets its
//     contact list with targets in ascending index, the player last
//  2. Rolls: sequential in canonical order (sources in infection order, the player last),
//     ticking cooldowns and drawing from the shared source
//  3. Commit: pending transitions are applied, so nothing infected this tick acts as a source
//
// In pair mode a healthy agent touching k sources gets k cooldown ticks and up to k rolls
// per tick. Agent mode caps that at one.
type InfectionSystem struct {
	engine.SystemBase

	broadphase       physics.Broadphase
	radius           float64
	odds             int
	perAgent         bool
	workers          int
	playerInfectable bool

	// Per-tick scratch, reused
	sources  []int
	contacts [][]int
	scratch  [][]int
	pending  []int
	marked   []bool
	touched  []bool

	statContacts    *atomic.Int64
	statRolls       *atomic.Int64
	statTransitions *atomic.Int64
}

// NewInfectionSystem creates an infection system with the configured broadphase
func NewInfectionSystem(world *engine.World, broadphase physics.Broadphase) *InfectionSystem {
	s := &InfectionSystem{
		SystemBase: engine.NewSystemBase(world),
		broadphase: broadphase,
	}
	cfg := s.Resource.Config
	s.radius = cfg.PersonSize
	s.odds = cfg.InfectionOdds
	s.perAgent = cfg.ContactMode == parameter.ContactAgent
	s.workers = cfg.Workers
	if s.workers < 1 {
		s.workers = 1
	}
	s.playerInfectable = cfg.PlayerInfectable

	reg := s.Resource.Status
	s.statContacts = reg.Counters.Get(status.InfectionContacts)
	s.statRolls = reg.Counters.Get(status.InfectionRolls)
	s.statTransitions = reg.Counters.Get(status.InfectionTransitions)
	return s
}

func (s *InfectionSystem) Name() string {
	return "infection"
}

func (s *InfectionSystem) Priority() int {
	return parameter.PriorityInfection
}

// Broadphase returns the active contact broadphase
func (s *InfectionSystem) Broadphase() physics.Broadphase {
	return s.broadphase
}

func (s *InfectionSystem) Update() {
	player := &s.World.Player
	playerSource := s.playerInfectable && player.Infected
	playerTarget := s.playerInfectable && !player.Infected

	s.sources = append(s.sources[:0], s.Agents.Infected()...)
	if playerSource {
		s.sources = append(s.sources, playerIndex)
	}
	healthy := s.Agents.Healthy()
	if len(s.sources) == 0 || (len(healthy) == 0 && !playerTarget) {
		return
	}

	s.detect(healthy, playerTarget)
	s.roll()
	s.commit()
}

func (s *InfectionSystem) position(i int) vmath.Vec2 {
	if i == playerIndex {
		return s.World.Player.Position
	}
	return s.Agents.Ref(i).Position
}

// detect fills s.contacts[k] for every source k
func (s *InfectionSystem) detect(healthy []int, playerTarget bool) {
	s.broadphase.Build(healthy, s.position)

	n := len(s.sources)
	if cap(s.contacts) < n {
		s.contacts = make([][]int, n)
	}
	s.contacts = s.contacts[:n]

	workers := s.workers
	if limit := n / minSourcesPerWorker; workers > limit {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}
	for len(s.scratch) < workers {
		s.scratch = append(s.scratch, nil)
	}

	if workers == 1 {
		s.detectRange(0, n, 0, playerTarget)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi, w int) {
			defer wg.Done()
			s.detectRange(lo, hi, w, playerTarget)
		}(lo, hi, w)
	}
	wg.Wait()
}

// detectRange handles sources [lo, hi) using scratch buffer w; reads only
func (s *InfectionSystem) detectRange(lo, hi, w int, playerTarget bool) {
	for k := lo; k < hi; k++ {
		src := s.position(s.sources[k])

		s.scratch[w] = s.broadphase.Query(s.scratch[w][:0], src, s.radius)
		out := s.contacts[k][:0]
		for _, idx := range s.scratch[w] {
			if physics.InContact(src, s.position(idx), s.radius) {
				out = append(out, idx)
			}
		}
		if playerTarget && physics.InContact(src, s.World.Player.Position, s.radius) {
			out = append(out, playerIndex)
		}
		s.contacts[k] = out
	}
}

func (s *InfectionSystem) cooldown(i int) *engine.Timer {
	if i == playerIndex {
		return &s.World.Player.Cooldown
	}
	return &s.Agents.Ref(i).Cooldown
}

// attempt ticks the target's cooldown and, on its edge, rolls once
func (s *InfectionSystem) attempt(target int) {
	timer := s.cooldown(target)
	timer.Tick(s.Resource.Time.DeltaTime)
	if !timer.JustFinished() {
		return
	}
	s.statRolls.Add(1)
	if s.Resource.Rand.Intn(s.odds) != s.odds-1 {
		return
	}
	s.markPending(target)
}

func (s *InfectionSystem) markPending(target int) {
	if target == playerIndex {
		for _, p := range s.pending {
			if p == playerIndex {
				return
			}
		}
		s.pending = append(s.pending, playerIndex)
		return
	}
	if s.marked[target] {
		return
	}
	s.marked[target] = true
	s.pending = append(s.pending, target)
}

func (s *InfectionSystem) roll() {
	total := s.Agents.Len()
	if len(s.marked) < total {
		s.marked = make([]bool, total)
		s.touched = make([]bool, total)
	}
	s.pending = s.pending[:0]

	var contacts int64
	for _, list := range s.contacts {
		contacts += int64(len(list))
	}
	s.statContacts.Add(contacts)

	if !s.perAgent {
		for _, list := range s.contacts {
			for _, target := range list {
				s.attempt(target)
			}
		}
		return
	}

	// Agent mode: one attempt per touched target, ascending index then the player
	playerTouched := false
	for _, list := range s.contacts {
		for _, target := range list {
			if target == playerIndex {
				playerTouched = true
				continue
			}
			s.touched[target] = true
		}
	}
	for _, idx := range s.Agents.Healthy() {
		if s.touched[idx] {
			s.touched[idx] = false
			s.attempt(idx)
		}
	}
	if playerTouched {
		s.attempt(playerIndex)
	}
}

func (s *InfectionSystem) commit() {
	frame := s.Resource.Time.FrameNumber
	for _, target := range s.pending {
		if target == playerIndex {
			s.World.Player.Infected = true
			s.statTransitions.Add(1)
			pos := s.World.Player.Position
			s.World.PushEvent(event.EventPlayerInfected, event.InfectionPayload{Agent: playerIndex, Position: pos})
			s.Resource.Logger.Info("player infected", "frame", frame, "x", pos.X, "y", pos.Y)
			continue
		}

		s.marked[target] = false
		if !s.Agents.Infect(target) {
			continue
		}
		s.statTransitions.Add(1)
		pos := s.Agents.Ref(target).Position
		s.World.PushEvent(event.EventInfection, event.InfectionPayload{Agent: target, Position: pos})
		s.Resource.Logger.Debug("infection", "frame", frame, "agent", target)
	}
	s.pending = s.pending[:0]
}
