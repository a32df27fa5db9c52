package parameter

// System Execution Priorities (lower runs first)
// Motion → Re-steer → Infection → Boundary → Player
const (
	PriorityMotion    = 10
	PriorityResteer   = 20
	PriorityInfection = 30
	PriorityBoundary  = 40 // After infection so contact tests see unclamped positions
	PriorityPlayer    = 50 // Input-driven, independent of the population
	PriorityCensus    = 1000
)
