package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/physics"
	"github.com/lixenwraith/contagion/simulation"
	"github.com/lixenwraith/contagion/vmath"
)

// Source is the read side of a simulation
type Source interface {
	EachAgent(fn func(i int, pos vmath.Vec2, infected bool))
	Player() engine.Player
}

// HUD carries the front-end state shown on the status bar
type HUD struct {
	Census     simulation.Census
	Population int
	Broadphase string
	Paused     bool
	Muted      bool
	FrameTime  time.Duration
}

// TerminalRenderer draws the confinement square onto the terminal
// Row 0 is the infection meter, the last row is the status bar, the rest is the field
// World Y grows upward, so the top field row is the square's upper edge
type TerminalRenderer struct {
	screen tcell.Screen
	view   physics.Bounds

	counts   []int
	infected []bool
}

// NewTerminalRenderer creates a renderer over screen viewing cfg's confinement square
func NewTerminalRenderer(screen tcell.Screen, cfg config.Config) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		view:   physics.NewBounds(cfg.BoxSize, cfg.PersonSize),
	}
}

// fieldSize returns the drawable field in cells
func (r *TerminalRenderer) fieldSize() (int, int) {
	w, h := r.screen.Size()
	return w, h - 2
}

// CellFor maps a world position into field cell (col, row); positions outside the view stick to the edge
func (r *TerminalRenderer) CellFor(pos vmath.Vec2, w, h int) (int, int) {
	span := r.view.Max - r.view.Min
	col := int((pos.X - r.view.Min) / span * float64(w))
	row := int((r.view.Max - pos.Y) / span * float64(h))
	return clampInt(col, 0, w-1), clampInt(row, 0, h-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RenderFrame draws the whole frame and shows it
func (r *TerminalRenderer) RenderFrame(src Source, hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	w, h := r.fieldSize()
	if w < 1 || h < 1 {
		r.screen.Show()
		return
	}

	r.drawField(src, w, h, defaultStyle)
	r.drawInfectionMeter(hud, w, defaultStyle)
	r.drawStatusBar(hud, w, h+1, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawField(src Source, w, h int, defaultStyle tcell.Style) {
	n := w * h
	if cap(r.counts) < n {
		r.counts = make([]int, n)
		r.infected = make([]bool, n)
	}
	r.counts = r.counts[:n]
	r.infected = r.infected[:n]
	for i := range r.counts {
		r.counts[i] = 0
		r.infected[i] = false
	}

	src.EachAgent(func(_ int, pos vmath.Vec2, infected bool) {
		col, row := r.CellFor(pos, w, h)
		idx := row*w + col
		r.counts[idx]++
		if infected {
			r.infected[idx] = true
		}
	})

	for idx, count := range r.counts {
		if count == 0 {
			continue
		}
		var color tcell.Color
		switch {
		case r.infected[idx] && count > 3:
			color = RgbInfected
		case r.infected[idx]:
			color = RgbInfectedDark
		case count > 3:
			color = RgbHealthyBright
		default:
			color = RgbHealthyDark
		}
		// Field starts below the meter row
		r.screen.SetContent(idx%w, idx/w+1, densityGlyph(count), nil, defaultStyle.Foreground(color))
	}

	p := src.Player()
	col, row := r.CellFor(p.Position, w, h)
	color := RgbPlayer
	if p.Infected {
		color = RgbPlayerSick
	}
	glyph := '@'
	// An unclamped player past the field is pinned to the border cell
	if !r.view.Contains(p.Position) {
		glyph = '+'
	}
	r.screen.SetContent(col, row+1, glyph, nil, defaultStyle.Foreground(color).Bold(true))
}

// drawInfectionMeter fills row 0 in proportion to the infected share
func (r *TerminalRenderer) drawInfectionMeter(hud HUD, w int, defaultStyle tcell.Style) {
	if hud.Population <= 0 {
		return
	}
	share := float64(hud.Census.Infected) / float64(hud.Population)
	filled := int(share * float64(w))
	for x := 0; x < w; x++ {
		style := defaultStyle.Foreground(tcell.NewRGBColor(0, 0, 0))
		if x < filled {
			style = defaultStyle.Foreground(InfectionMeterColor(float64(x+1) / float64(w)))
		}
		r.screen.SetContent(x, 0, '█', nil, style)
	}
}

// StatusLine formats the status bar text
func StatusLine(hud HUD) string {
	line := fmt.Sprintf(" t=%.1fs  tick %d  infected %d  healthy %d  [%s]  frame %s",
		hud.Census.Elapsed.Seconds(),
		hud.Census.Tick,
		hud.Census.Infected,
		hud.Census.Healthy,
		hud.Broadphase,
		hud.FrameTime.Round(100*time.Microsecond),
	)
	if hud.Muted {
		line += "  muted"
	}
	if hud.Paused {
		line += "  PAUSED"
	}
	return line
}

func (r *TerminalRenderer) drawStatusBar(hud HUD, w, y int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbStatusBar)
	if hud.Paused {
		style = defaultStyle.Foreground(RgbPaused)
	}
	x := 0
	for _, ch := range StatusLine(hud) {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
