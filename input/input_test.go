package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/vmath"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"arrow up", tcell.KeyUp, 0, ActionUp},
		{"arrow left", tcell.KeyLeft, 0, ActionLeft},
		{"vi j", tcell.KeyRune, 'j', ActionDown},
		{"vi l", tcell.KeyRune, 'l', ActionRight},
		{"pause", tcell.KeyRune, 'p', ActionPause},
		{"escape", tcell.KeyEscape, 0, ActionQuit},
		{"unbound rune", tcell.KeyRune, 'z', ActionNone},
		{"unbound key", tcell.KeyF5, 0, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.LookupKey(tt.key, tt.r); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := kt.Lookup(nil); got != ActionNone {
		t.Errorf("Expected nil event to map to none, got %v", got)
	}
}

func TestTrackerHoldWindow(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	tr := NewTracker(mock, 120*time.Millisecond)

	if got := tr.Direction(); got != vmath.Zero2 {
		t.Errorf("Expected no direction initially, got %v", got)
	}

	tr.Press(ActionUp)
	tr.Press(ActionRight)
	if got := tr.Direction(); got != (vmath.Vec2{X: 1, Y: 1}) {
		t.Errorf("Expected unnormalized diagonal, got %v", got)
	}

	mock.Advance(100 * time.Millisecond)
	tr.Press(ActionUp)
	mock.Advance(50 * time.Millisecond)
	if got := tr.Direction(); got != (vmath.Vec2{Y: 1}) {
		t.Errorf("Expected right expired and up refreshed, got %v", got)
	}

	mock.Advance(time.Second)
	if got := tr.Direction(); got != vmath.Zero2 {
		t.Errorf("Expected everything expired, got %v", got)
	}
}

func TestTrackerOppositesCancel(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	tr := NewTracker(mock, time.Second)

	tr.Press(ActionLeft)
	tr.Press(ActionRight)
	tr.Press(ActionDown)
	tr.Press(ActionQuit)
	if got := tr.Direction(); got != (vmath.Vec2{Y: -1}) {
		t.Errorf("Expected (0, -1), got %v", got)
	}

	tr.Release()
	if got := tr.Direction(); got != vmath.Zero2 {
		t.Errorf("Expected released, got %v", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "pause" || Action(99).String() != "none" {
		t.Error("Unexpected action names")
	}
	if !ActionLeft.IsMotion() || ActionQuit.IsMotion() {
		t.Error("Unexpected IsMotion classification")
	}
}
