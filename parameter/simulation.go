package parameter

import "time"

// Population and world geometry
const (
	// PersonCount is the number of healthy agents spawned next to patient zero
	PersonCount = 5000

	// PersonSpeed scales an agent's velocity, world units per second
	PersonSpeed = 50.0

	// PersonSize is both the visual size and the contact distance (strict <)
	PersonSize = 10.0

	// BoxSize is the edge of the confinement square centered on the origin
	BoxSize = 720.0

	// PlayerSpeed scales the player's input direction, world units per second
	PlayerSpeed = 100.0
)

// Timers
const (
	// ResteerPeriod is the shared repeating timer that redraws every velocity
	ResteerPeriod = 2 * time.Second

	// InfectionCooldown gates infection rolls per healthy agent while in contact
	InfectionCooldown = 200 * time.Millisecond
)

// InfectionOdds is the denominator of the infection roll: Intn(odds) == odds-1 infects (1/5)
const InfectionOdds = 5

// Proximity broadphase selection
const (
	BroadphaseScan  = "scan"
	BroadphaseGrid  = "grid"
	BroadphaseRTree = "rtree"
)

// Contact modes
const (
	// ContactPair ticks the cooldown and rolls once per (infected, healthy) pair in contact
	ContactPair = "pair"
	// ContactAgent ticks the cooldown and rolls at most once per healthy agent per tick
	ContactAgent = "agent"
)

// GridMaxCols bounds the grid to GridMaxCols^2 cells; tiny agents widen the cells instead
const GridMaxCols = 1024

// RTree node fan-out
const (
	RTreeMinChildren = 25
	RTreeMaxChildren = 50
)
