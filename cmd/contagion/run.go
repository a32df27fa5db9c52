package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/contagion/audio"
	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/input"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/render"
	"github.com/lixenwraith/contagion/simulation"
)

// crash restores the terminal and reports a panic, then exits
// Uses \r\n for raw mode compatibility
func crash(screen tcell.Screen, where string, r any) {
	screen.Fini()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// runInteractive drives the core from wall-clock frames and draws it with tcell
func runInteractive(cfg config.Config, opts *options) error {
	if f := setupLogging(opts.debug); f != nil {
		defer f.Close()
	}
	logger := log.Default()

	sim, err := simulation.New(cfg, simulation.NewSource(cfg.Seed), simulation.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Panic recovery: terminal must be usable after a crash
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "CONTAGION", r)
		}
	}()

	screen.HideCursor()

	provider := engine.NewMonotonicTimeProvider()
	clock := engine.NewPausableClock(provider, parameter.MaxFrameDelta)

	cues := audio.NewCuePlayer(provider)
	cues.SetMuted(opts.mute)
	if err := cues.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer cues.Cleanup()

	keys := input.DefaultKeyTable()
	tracker := input.NewTracker(provider, parameter.KeyHoldWindow)
	renderer := render.NewTerminalRenderer(screen, cfg)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, "EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var (
		frames     int64
		frameTotal time.Duration
		frameTime  time.Duration
	)
	defer func() {
		if frames > 0 {
			logger.Debug("frame timing",
				"frames", frames,
				"avg", frameTotal/time.Duration(frames),
				"paused_total", clock.TotalPauseDuration())
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch action := keys.Lookup(ev); action {
				case input.ActionQuit:
					return nil
				case input.ActionPause:
					paused := clock.Toggle()
					tracker.Release()
					logger.Info("pause toggled", "paused", paused, "tick", sim.Census().Tick)
				case input.ActionMute:
					muted := cues.ToggleMute()
					logger.Debug("mute toggled", "muted", muted)
				default:
					tracker.Press(action)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			start := time.Now()
			dt := clock.Delta()
			if !clock.IsPaused() {
				sim.ApplyPlayerInput(tracker.Direction(), dt)
				sim.Tick(dt)
			}
			for _, ev := range sim.Events() {
				cues.HandleEvent(ev)
			}

			renderer.RenderFrame(sim, render.HUD{
				Census:     sim.Census(),
				Population: sim.Len(),
				Broadphase: sim.Broadphase(),
				Paused:     clock.IsPaused(),
				Muted:      cues.IsMuted(),
				FrameTime:  frameTime,
			})

			frameTime = time.Since(start)
			frameTotal += frameTime
			frames++
		}
	}
}
