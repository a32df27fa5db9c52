package physics

import (
	"testing"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

func randomPoints(seed uint64, n int, extent float64) []vmath.Vec2 {
	r := vmath.NewFastRand(seed)
	pts := make([]vmath.Vec2, n)
	for i := range pts {
		pts[i] = vmath.Vec2{X: vmath.Range(r, -extent, extent), Y: vmath.Range(r, -extent, extent)}
	}
	return pts
}

func contacts(bp Broadphase, pts []vmath.Vec2, p vmath.Vec2, radius float64) []int {
	var out []int
	for _, idx := range bp.Query(nil, p, radius) {
		if InContact(pts[idx], p, radius) {
			out = append(out, idx)
		}
	}
	return out
}

func TestBroadphasesAgree(t *testing.T) {
	const radius = 10.0
	// Points spill past the grid extent to exercise border clamping
	pts := randomPoints(5, 2000, 200)
	targets := make([]int, 0, len(pts))
	for i := 1; i < len(pts); i += 2 {
		targets = append(targets, i)
	}
	at := func(i int) vmath.Vec2 { return pts[i] }

	var phases []Broadphase
	for _, name := range []string{parameter.BroadphaseScan, parameter.BroadphaseGrid, parameter.BroadphaseRTree} {
		bp, err := NewBroadphase(name, 150, radius)
		if err != nil {
			t.Fatalf("NewBroadphase(%q): %v", name, err)
		}
		bp.Build(targets, at)
		phases = append(phases, bp)
	}

	for q := 0; q < len(pts); q += 2 {
		want := contacts(phases[0], pts, pts[q], radius)
		for _, bp := range phases[1:] {
			got := contacts(bp, pts, pts[q], radius)
			if len(got) != len(want) {
				t.Fatalf("%s query %d: expected %v, got %v", bp.Name(), q, want, got)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s query %d: expected %v, got %v", bp.Name(), q, want, got)
				}
			}
		}
	}
}

func TestBroadphaseCandidatesAscending(t *testing.T) {
	pts := randomPoints(9, 500, 30)
	targets := make([]int, len(pts))
	for i := range targets {
		targets[i] = i
	}
	at := func(i int) vmath.Vec2 { return pts[i] }

	for _, bp := range []Broadphase{NewScan(), NewGrid(40, 10), NewRTree()} {
		bp.Build(targets, at)
		got := bp.Query(nil, vmath.Zero2, 10)
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("%s: candidates not ascending at %d: %v", bp.Name(), i, got[i-1:i+1])
				break
			}
		}
	}
}

func TestBroadphaseEmpty(t *testing.T) {
	at := func(int) vmath.Vec2 { return vmath.Zero2 }
	for _, bp := range []Broadphase{NewScan(), NewGrid(100, 10), NewRTree()} {
		bp.Build(nil, at)
		if got := bp.Query(nil, vmath.Zero2, 10); len(got) != 0 {
			t.Errorf("%s: expected no candidates, got %v", bp.Name(), got)
		}
	}
}

func TestGridClampsOutOfRange(t *testing.T) {
	g := NewGrid(50, 10)
	pts := []vmath.Vec2{{X: 1000, Y: 1000}, {X: -1000, Y: -1000}, {X: 0, Y: 0}}
	g.Build([]int{0, 1, 2}, func(i int) vmath.Vec2 { return pts[i] })

	if got := g.CellCount(g.Cols-1, g.Cols-1); got != 1 {
		t.Errorf("Expected 1 target in top-right border cell, got %d", got)
	}
	if got := g.CellCount(0, 0); got != 1 {
		t.Errorf("Expected 1 target in bottom-left border cell, got %d", got)
	}

	got := g.Query(nil, vmath.Vec2{X: 1001, Y: 1000}, 10)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected [0] near far corner, got %v", got)
	}
}

func TestGridCapsColumnsForTinyCells(t *testing.T) {
	const radius = 0.01
	g := NewGrid(parameter.BoxSize, radius)
	if g.Cols != parameter.GridMaxCols {
		t.Fatalf("Expected %d columns, got %d", parameter.GridMaxCols, g.Cols)
	}
	if g.CellSize < radius {
		t.Fatalf("Expected cell size >= %g, got %g", radius, g.CellSize)
	}
	if want := 2 * parameter.BoxSize / parameter.GridMaxCols; g.CellSize != want {
		t.Errorf("Expected cell size %g, got %g", want, g.CellSize)
	}

	pts := []vmath.Vec2{{X: 100, Y: 100}, {X: 100.005, Y: 100}, {X: 100.02, Y: 100}, {X: -300, Y: 50}}
	g.Build([]int{1, 2, 3}, func(i int) vmath.Vec2 { return pts[i] })
	got := contacts(g, pts, pts[0], radius)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected [1] in contact, got %v", got)
	}
}

func TestNewBroadphaseUnknown(t *testing.T) {
	if _, err := NewBroadphase("octree", 100, 10); err == nil {
		t.Error("Expected error for unknown broadphase")
	}
}
