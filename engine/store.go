package engine

import "sort"

// AgentStore owns every agent in a flat slice and maintains two disjoint index views
// Healthy is kept in ascending index order; Infected is kept in infection order
// No removal: the population is fixed at creation
type AgentStore struct {
	agents   []Agent
	infected []int
	healthy  []int
}

// NewAgentStore creates an empty store with room for capacity agents
func NewAgentStore(capacity int) *AgentStore {
	if capacity < 0 {
		capacity = 0
	}
	return &AgentStore{
		agents:   make([]Agent, 0, capacity),
		infected: make([]int, 0, 16),
		healthy:  make([]int, 0, capacity),
	}
}

// Spawn appends an agent and returns its index
// Indices grow monotonically, so appending keeps the healthy view sorted
func (s *AgentStore) Spawn(a Agent) int {
	idx := len(s.agents)
	s.agents = append(s.agents, a)
	if a.Infected {
		s.infected = append(s.infected, idx)
	} else {
		s.healthy = append(s.healthy, idx)
	}
	return idx
}

// Len returns the population size
func (s *AgentStore) Len() int {
	return len(s.agents)
}

// At returns a copy of agent i
func (s *AgentStore) At(i int) Agent {
	return s.agents[i]
}

// Ref returns a pointer for in-place mutation of position, velocity or cooldown
func (s *AgentStore) Ref(i int) *Agent {
	return &s.agents[i]
}

// Each visits every agent in index order for in-place mutation
func (s *AgentStore) Each(fn func(i int, a *Agent)) {
	for i := range s.agents {
		fn(i, &s.agents[i])
	}
}

// Infected returns the infected view; read-only, valid until the next Infect
func (s *AgentStore) Infected() []int {
	return s.infected
}

// Healthy returns the healthy view in ascending index order; read-only, valid until the next Infect
func (s *AgentStore) Healthy() []int {
	return s.healthy
}

// InfectedCount returns the size of the infected view
func (s *AgentStore) InfectedCount() int {
	return len(s.infected)
}

// HealthyCount returns the size of the healthy view
func (s *AgentStore) HealthyCount() int {
	return len(s.healthy)
}

// Infect moves agent i from the healthy view to the infected view
// Returns false if i was already infected; the transition never reverts
func (s *AgentStore) Infect(i int) bool {
	if s.agents[i].Infected {
		return false
	}
	s.agents[i].Infected = true

	pos := sort.SearchInts(s.healthy, i)
	if pos < len(s.healthy) && s.healthy[pos] == i {
		s.healthy = append(s.healthy[:pos], s.healthy[pos+1:]...)
	}
	s.infected = append(s.infected, i)
	return true
}
