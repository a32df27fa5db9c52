// Package status is the simulation's metrics facade
// Systems cache metric pointers at construction; Update loops write directly to atomics,
// so the renderer can read them between ticks without taking the world lock
package status

import (
	"math"
	"sync/atomic"
)

// Well-known metric keys
const (
	Ticks                = "sim.ticks"
	Elapsed              = "sim.elapsed_seconds"
	Infected             = "sim.infected"
	Healthy              = "sim.healthy"
	InfectionContacts    = "infection.contacts"
	InfectionRolls       = "infection.rolls"
	InfectionTransitions = "infection.transitions"
	ResteerFires         = "resteer.fires"
)

// Gauge is an atomic float64 using bit conversion
// Zero value is ready to use (represents 0.0)
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add atomically adds delta and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Registry holds the counters and gauges of one simulation
type Registry struct {
	Counters *Family[atomic.Int64]
	Gauges   *Family[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewFamily[atomic.Int64](),
		Gauges:   NewFamily[Gauge](),
	}
}

// Snapshot copies every metric into a flat map, counters as float64
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Len())
	r.Counters.Each(func(name string, c *atomic.Int64) {
		out[name] = float64(c.Load())
	})
	r.Gauges.Each(func(name string, g *Gauge) {
		out[name] = g.Get()
	})
	return out
}

// Len is the number of registered metrics of both kinds
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len()
}
