package physics

import (
	"time"

	"github.com/lixenwraith/contagion/vmath"
)

// Integrate advances pos by vel * speed * dt, explicit Euler over a variable step
func Integrate(pos, vel vmath.Vec2, speed float64, dt time.Duration) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.V2Scale(vel, speed*dt.Seconds()))
}
