package event

import "github.com/lixenwraith/contagion/vmath"

// InfectionPayload carries the new infection for the renderer's color change and audio cue
type InfectionPayload struct {
	Agent    int // Store index, -1 for the player
	Position vmath.Vec2
}

// ResteerPayload reports how many velocities were redrawn
type ResteerPayload struct {
	Agents int
}
