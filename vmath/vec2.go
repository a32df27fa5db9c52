package vmath

// Vec2 is a float64 2D vector in world space
// World units match the confinement square; Y grows upward
type Vec2 struct {
	X, Y float64
}

// Zero2 is the origin
var Zero2 = Vec2{}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2DistSq returns squared Euclidean distance, avoiding sqrt in the contact hot path
func V2DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// V2Clamp clamps each axis independently into [lo, hi]
func V2Clamp(v Vec2, lo, hi float64) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}
