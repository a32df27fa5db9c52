package physics

import (
	"fmt"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// PositionFunc resolves a target index to its current position
type PositionFunc func(i int) vmath.Vec2

// Broadphase narrows the set of targets that might be in contact with a point
// Build is called once per tick with the current targets; Query must be safe for
// concurrent callers between Builds and returns candidates in ascending index order.
// Candidates are a superset of true contacts; callers confirm with InContact
type Broadphase interface {
	Name() string
	Build(targets []int, at PositionFunc)
	Query(dst []int, p vmath.Vec2, radius float64) []int
}

// NewBroadphase builds the named implementation
// extent is the half-width of the region where agents are expected; positions outside it stay correct, only slower
func NewBroadphase(name string, extent, cellSize float64) (Broadphase, error) {
	switch name {
	case parameter.BroadphaseScan:
		return NewScan(), nil
	case parameter.BroadphaseGrid:
		return NewGrid(extent, cellSize), nil
	case parameter.BroadphaseRTree:
		return NewRTree(), nil
	default:
		return nil, fmt.Errorf("unknown broadphase %q", name)
	}
}

// Scan returns every target, the infected x healthy reference cost
type Scan struct {
	targets []int
}

func NewScan() *Scan {
	return &Scan{}
}

func (s *Scan) Name() string {
	return parameter.BroadphaseScan
}

// Build keeps the target list; targets are expected ascending
func (s *Scan) Build(targets []int, _ PositionFunc) {
	s.targets = append(s.targets[:0], targets...)
}

func (s *Scan) Query(dst []int, _ vmath.Vec2, _ float64) []int {
	return append(dst, s.targets...)
}
