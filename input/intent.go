package input

// Action is a semantic input decoded from a key
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionMute
	ActionQuit
)

// String returns the action name for logs
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionMute:
		return "mute"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// IsMotion reports whether a is one of the four directions
func (a Action) IsMotion() bool {
	return a >= ActionUp && a <= ActionRight
}
