package parameter

import "time"

// Front-end loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall (debugger, suspended terminal) so one tick cannot teleport agents
	MaxFrameDelta = 250 * time.Millisecond

	// KeyHoldWindow is how long a key press counts as held; terminals report no key-up
	KeyHoldWindow = 120 * time.Millisecond
)

// EventQueueSize bounds unread events; a full queue drops the oldest
// One frame of a fast outbreak is a few hundred infections at most
const EventQueueSize = 8192
