package vmath

import "math"

// Source supplies uniform randomness to the simulation
// Implementations need not be safe for concurrent use; the world draws from a single goroutine
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Intn returns a uniform value in [0, n), 0 when n <= 0
	Intn(n int) int
}

// Range returns a uniform value in [lo, hi) drawn from src; hi itself is never drawn
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator (13, 17, 5)
// Deterministic for a given seed, which the scenario tests rely on
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; a zero seed is replaced with 1 since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits so every representable step in [0, 1) is reachable
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RandomDirection draws a velocity with each axis independently uniform in [-1, 1)
// The result is deliberately not normalized
func RandomDirection(src Source) Vec2 {
	return Vec2{
		X: Range(src, -1, 1),
		Y: Range(src, -1, 1),
	}
}

// NearlyEqual compares floats with an absolute tolerance
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
