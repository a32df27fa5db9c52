package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// Resource holds the world singletons, accessed via World.Resource
// Everything a system needs beyond the agents lives here; nothing is ambient or global
type Resource struct {
	Time    TimeResource
	Config  config.Config
	Resteer Timer // Shared re-steer timer, ticked once per tick
	Rand    vmath.Source
	Events  *event.EventQueue
	Status  *status.Registry
	Logger  *log.Logger
}

// TimeResource wraps time data for systems
// Updated by World.Tick before any system runs
type TimeResource struct {
	// DeltaTime is the wall-clock duration since the last tick, variable step
	DeltaTime time.Duration

	// Elapsed is the sum of every DeltaTime so far
	Elapsed time.Duration

	// FrameNumber counts ticks, starting at 1 for the first tick
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under the world update lock
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// DeltaSeconds returns DeltaTime as float seconds for integration
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}
