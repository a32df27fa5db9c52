package physics

import (
	"math"
	"sort"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// Grid is a dense uniform grid rebuilt every tick with a counting sort
// Cells have no capacity limit: index = cy*Cols + cx, members in items[start[c]:start[c+1]]
// Positions outside the covered square are clamped into the border cells,
// which keeps neighbour lookups exact since clamping never separates adjacent cells
type Grid struct {
	Cols     int
	CellSize float64
	Origin   float64 // Lower-left corner on both axes

	start  []int
	items  []int
	cellOf []int // Scratch, parallel to the targets passed to Build
}

// NewGrid covers [-extent, extent] on both axes with square cells of at least cellSize
// Column count is capped at parameter.GridMaxCols; cells grow to keep the cover
func NewGrid(extent, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	if extent <= 0 {
		extent = cellSize
	}
	span := math.Ceil(2 * extent / cellSize)
	if span > parameter.GridMaxCols {
		span = parameter.GridMaxCols
		cellSize = 2 * extent / span
	}
	cols := int(span)
	if cols < 1 {
		cols = 1
	}
	return &Grid{
		Cols:     cols,
		CellSize: cellSize,
		Origin:   -extent,
		start:    make([]int, cols*cols+1),
	}
}

func (g *Grid) Name() string {
	return parameter.BroadphaseGrid
}

// cellCoord maps one axis to a clamped column or row
func (g *Grid) cellCoord(v float64) int {
	c := int(math.Floor((v - g.Origin) / g.CellSize))
	if c < 0 {
		return 0
	}
	if c >= g.Cols {
		return g.Cols - 1
	}
	return c
}

// Build buckets targets by cell; within a cell, members keep the order of targets
func (g *Grid) Build(targets []int, at PositionFunc) {
	for i := range g.start {
		g.start[i] = 0
	}
	if cap(g.cellOf) < len(targets) {
		g.cellOf = make([]int, len(targets))
	}
	g.cellOf = g.cellOf[:len(targets)]
	if cap(g.items) < len(targets) {
		g.items = make([]int, len(targets))
	}
	g.items = g.items[:len(targets)]

	// Count
	for i, idx := range targets {
		p := at(idx)
		c := g.cellCoord(p.Y)*g.Cols + g.cellCoord(p.X)
		g.cellOf[i] = c
		g.start[c+1]++
	}
	// Prefix sum
	for c := 1; c < len(g.start); c++ {
		g.start[c] += g.start[c-1]
	}
	// Scatter, using start[c] as a write cursor then restoring
	for i, idx := range targets {
		c := g.cellOf[i]
		g.items[g.start[c]] = idx
		g.start[c]++
	}
	for c := len(g.start) - 1; c > 0; c-- {
		g.start[c] = g.start[c-1]
	}
	g.start[0] = 0
}

// Query gathers every cell overlapping the square of radius around p
func (g *Grid) Query(dst []int, p vmath.Vec2, radius float64) []int {
	if len(g.items) == 0 {
		return dst
	}
	x0, x1 := g.cellCoord(p.X-radius), g.cellCoord(p.X+radius)
	y0, y1 := g.cellCoord(p.Y-radius), g.cellCoord(p.Y+radius)

	base := len(dst)
	for cy := y0; cy <= y1; cy++ {
		row := cy * g.Cols
		for cx := x0; cx <= x1; cx++ {
			c := row + cx
			dst = append(dst, g.items[g.start[c]:g.start[c+1]]...)
		}
	}
	sort.Ints(dst[base:])
	return dst
}

// CellCount returns the number of targets bucketed in cell (cx, cy)
func (g *Grid) CellCount(cx, cy int) int {
	if cx < 0 || cx >= g.Cols || cy < 0 || cy >= g.Cols {
		return 0
	}
	c := cy*g.Cols + cx
	return g.start[c+1] - g.start[c]
}
