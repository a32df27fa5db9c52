package physics

import "github.com/lixenwraith/contagion/vmath"

// Bounds is an axis-aligned square confinement range, identical on both axes
type Bounds struct {
	Min, Max float64
}

// NewBounds returns the confinement range for a box of boxSize holding agents of personSize
// The range is shifted by half a person toward negative, matching sprite-anchored placement
func NewBounds(boxSize, personSize float64) Bounds {
	return Bounds{
		Min: -boxSize/2 - personSize/2,
		Max: boxSize/2 - personSize/2,
	}
}

// Clamp confines p axis by axis; velocity is the caller's and is never reflected
func (b Bounds) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2Clamp(p, b.Min, b.Max)
}

// Contains reports whether p lies within the range on both axes, edges included
func (b Bounds) Contains(p vmath.Vec2) bool {
	return p.X >= b.Min && p.X <= b.Max && p.Y >= b.Min && p.Y <= b.Max
}
