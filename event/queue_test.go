package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventInfection, Payload: &InfectionPayload{Agent: i}, Frame: int64(i)})
	}

	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending events, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		p, ok := ev.Payload.(*InfectionPayload)
		if !ok {
			t.Fatalf("Event %d has payload %T", i, ev.Payload)
		}
		if p.Agent != i || ev.Frame != int64(i) {
			t.Errorf("Event %d out of order: agent=%d frame=%d", i, p.Agent, ev.Frame)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Expected nil after drain, got %d events", len(again))
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventResteer, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped events, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup

	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventInfection, Payload: &InfectionPayload{Agent: p, Position: vmath.Vec2{X: float64(i)}}})
			}
		}(p)
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventInfection:      "infection",
		EventPlayerInfected: "player_infected",
		EventResteer:        "resteer",
		EventType(99):       "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
