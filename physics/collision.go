package physics

import "github.com/lixenwraith/contagion/vmath"

// InContact reports whether a and b are strictly closer than radius
// Distance exactly equal to radius is not contact
func InContact(a, b vmath.Vec2, radius float64) bool {
	return vmath.V2DistSq(a, b) < radius*radius
}
