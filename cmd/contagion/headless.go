package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/simulation"
)

// curve is the epidemic curve sampled once per tick
type curve struct {
	seconds  []float64
	infected []float64
	healthy  []float64
}

func (c *curve) sample(census simulation.Census) {
	c.seconds = append(c.seconds, census.Elapsed.Seconds())
	c.infected = append(c.infected, float64(census.Infected))
	c.healthy = append(c.healthy, float64(census.Healthy))
}

// runHeadless advances the core at a fixed dt without a screen
func runHeadless(out io.Writer, cfg config.Config, opts *options) error {
	dt, err := time.ParseDuration(opts.dt)
	if err != nil {
		return errors.Wrapf(err, "parse --dt %q", opts.dt)
	}
	if dt <= 0 {
		return errors.Errorf("--dt must be positive, got %s", dt)
	}
	if opts.ticks <= 0 {
		return errors.Errorf("--ticks must be positive, got %d", opts.ticks)
	}

	if f := setupLogging(opts.debug); f != nil {
		defer f.Close()
	}
	logger := log.Default()

	sim, err := simulation.New(cfg, simulation.NewSource(cfg.Seed), simulation.WithLogger(logger))
	if err != nil {
		return err
	}

	c := &curve{}
	c.sample(sim.Census())

	var transitions int
	bar := pb.New(opts.ticks)
	bar.Output = out
	bar.SetWidth(80)
	bar.ShowSpeed = false
	bar.Start()

	started := time.Now()
	for i := 0; i < opts.ticks; i++ {
		sim.Tick(dt)
		for _, ev := range sim.Events() {
			if ev.Type == event.EventInfection {
				transitions++
			}
		}
		c.sample(sim.Census())
		bar.Increment()
	}
	bar.Finish()
	wall := time.Since(started)

	census := sim.Census()
	logger.Info("headless run finished",
		"ticks", census.Tick,
		"infected", census.Infected,
		"healthy", census.Healthy,
		"events_dropped", sim.DroppedEvents(),
		"wall", wall)

	printSummary(out, sim, census, transitions, wall)

	if opts.chart != "" {
		if err := writeChart(opts.chart, c, sim.Len()); err != nil {
			return err
		}
		fmt.Fprintf(out, "curve written to %s\n", chalk.Cyan.Color(opts.chart))
	}
	return nil
}

func printSummary(out io.Writer, sim *simulation.Simulation, census simulation.Census, transitions int, wall time.Duration) {
	population := sim.Len()
	share := 0.0
	if population > 0 {
		share = 100 * float64(census.Infected) / float64(population)
	}

	fmt.Fprintln(out, chalk.Bold.TextStyle("contagion summary"))
	cfg := sim.Config()
	fmt.Fprintf(out, "  broadphase   %s\n", sim.Broadphase())
	fmt.Fprintf(out, "  contact      %s, 1/%d per roll\n", cfg.ContactMode, cfg.InfectionOdds)
	fmt.Fprintf(out, "  ticks        %d (%.1fs simulated, %s wall)\n",
		census.Tick, census.Elapsed.Seconds(), wall.Round(time.Millisecond))
	fmt.Fprintf(out, "  infected     %s (%.1f%%)\n",
		chalk.Red.Color(fmt.Sprint(census.Infected)), share)
	fmt.Fprintf(out, "  healthy      %s\n", chalk.Green.Color(fmt.Sprint(census.Healthy)))
	fmt.Fprintf(out, "  transitions  %d\n", transitions)
}

// writeChart renders the infected and healthy curves to a PNG at path
func writeChart(path string, c *curve, population int) error {
	graph := chart.Chart{
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "seconds",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "agents",
			Style: chart.Style{FontSize: 10.0},
			// Flat curves would otherwise give a zero range and fail to render
			Range: &chart.ContinuousRange{Min: 0, Max: float64(population)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "infected",
				XValues: c.seconds,
				YValues: c.infected,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "healthy",
				XValues: c.seconds,
				YValues: c.healthy,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 3.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create chart %s", path)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.Wrap(err, "render chart")
	}
	return nil
}
