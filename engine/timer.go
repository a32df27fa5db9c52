package engine

import "time"

// Timer is a repeating timer advanced explicitly with each tick's dt
// JustFinished reports whether the last Tick crossed at least one period boundary;
// it is re-armed automatically, never consumed
type Timer struct {
	Period  time.Duration
	Elapsed time.Duration

	timesFinished int
}

// NewTimer creates a repeating timer with the given period
func NewTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Tick advances the timer by dt
// Elapsed keeps only the remainder, so several periods inside one dt still report a single edge
func (t *Timer) Tick(dt time.Duration) {
	if t.Period <= 0 {
		t.timesFinished = 1
		return
	}

	t.Elapsed += dt
	if t.Elapsed >= t.Period {
		t.timesFinished = int(t.Elapsed / t.Period)
		t.Elapsed %= t.Period
		return
	}
	t.timesFinished = 0
}

// JustFinished is the edge: true only for the Tick that crossed a boundary
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick returns how many periods elapsed in the last Tick
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}
