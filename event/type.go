package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventInfection reports a committed healthy→infected transition
	// Trigger: InfectionSystem after the contact scan | Payload: InfectionPayload
	EventInfection EventType = iota

	// EventPlayerInfected reports the player turning infected
	// Trigger: InfectionSystem when PlayerInfectable | Payload: InfectionPayload (Agent = -1)
	EventPlayerInfected

	// EventResteer reports the shared re-steer timer firing
	// Trigger: ResteerSystem | Payload: ResteerPayload
	EventResteer
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventInfection:
		return "infection"
	case EventPlayerInfected:
		return "player_infected"
	case EventResteer:
		return "resteer"
	default:
		return "unknown"
	}
}

// GameEvent is one queued event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
