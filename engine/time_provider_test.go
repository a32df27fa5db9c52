package engine

import (
	"sync"
	"testing"
	"time"
)

var (
	_ TimeProvider = &MonotonicTimeProvider{}
	_ TimeProvider = &MockTimeProvider{}
)

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProviderSteps(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		steps []time.Duration
		want  time.Duration
	}{
		{"no steps", nil, 0},
		{"one frame", []time.Duration{16 * time.Millisecond}, 16 * time.Millisecond},
		{"cooldown in frames", []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond}, 200 * time.Millisecond},
		{"zero step", []time.Duration{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockTimeProvider(start)
			var last time.Time
			for _, d := range tt.steps {
				last = mock.Advance(d)
			}
			if got := mock.Now().Sub(start); got != tt.want {
				t.Errorf("Expected %v elapsed, got %v", tt.want, got)
			}
			if len(tt.steps) > 0 && !last.Equal(mock.Now()) {
				t.Errorf("Expected Advance to return %v, got %v", mock.Now(), last)
			}
		})
	}
}

func TestMockTimeProviderSetTimeBackwards(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	earlier := start.Add(-time.Second)
	mock.SetTime(earlier)
	if !mock.Now().Equal(earlier) {
		t.Errorf("Expected %v after SetTime, got %v", earlier, mock.Now())
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(start); got != 400*time.Millisecond {
		t.Errorf("Expected 400ms after concurrent advances, got %v", got)
	}
}
