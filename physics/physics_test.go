package physics

import (
	"testing"
	"time"

	"github.com/lixenwraith/contagion/vmath"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name  string
		pos   vmath.Vec2
		vel   vmath.Vec2
		speed float64
		dt    time.Duration
		want  vmath.Vec2
	}{
		{"zero dt", vmath.Vec2{X: 1, Y: 2}, vmath.Vec2{X: 1, Y: 1}, 50, 0, vmath.Vec2{X: 1, Y: 2}},
		{"half second", vmath.Zero2, vmath.Vec2{X: 1, Y: -0.5}, 50, 500 * time.Millisecond, vmath.Vec2{X: 25, Y: -12.5}},
		{"zero velocity", vmath.Vec2{X: 3, Y: 3}, vmath.Zero2, 50, time.Second, vmath.Vec2{X: 3, Y: 3}},
		{"unnormalized diagonal", vmath.Zero2, vmath.Vec2{X: 1, Y: 1}, 100, time.Second, vmath.Vec2{X: 100, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Integrate(tt.pos, tt.vel, tt.speed, tt.dt); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := NewBounds(720, 10)
	if b.Min != -365 || b.Max != 355 {
		t.Fatalf("Expected [-365, 355], got [%v, %v]", b.Min, b.Max)
	}

	got := b.Clamp(vmath.Vec2{X: 720, Y: 720})
	if got != (vmath.Vec2{X: 355, Y: 355}) {
		t.Errorf("Expected (355, 355), got %v", got)
	}

	got = b.Clamp(vmath.Vec2{X: -720, Y: 100})
	if got != (vmath.Vec2{X: -365, Y: 100}) {
		t.Errorf("Expected (-365, 100), got %v", got)
	}

	if !b.Contains(got) {
		t.Error("Expected clamped point to be contained")
	}
	if b.Contains(vmath.Vec2{X: 356}) {
		t.Error("Expected 356 outside bounds")
	}
}

func TestInContactStrict(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want bool
	}{
		{"inside", 9, true},
		{"exact threshold", 10, false},
		{"outside", 11, false},
		{"coincident", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InContact(vmath.Zero2, vmath.Vec2{X: tt.d}, 10); got != tt.want {
				t.Errorf("InContact at %v = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
