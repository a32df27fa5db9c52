package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)

	RgbHealthyDark   = tcell.NewRGBColor(0, 130, 0)
	RgbHealthyBright = tcell.NewRGBColor(50, 255, 50)
	RgbInfectedDark  = tcell.NewRGBColor(180, 50, 50)
	RgbInfected      = tcell.NewRGBColor(255, 80, 80)
	RgbPlayer        = tcell.NewRGBColor(255, 255, 0)
	RgbPlayerSick    = tcell.NewRGBColor(255, 0, 255)
)

// InfectionMeterColor returns the gradient color at progress along the infection meter
// Green → yellow → red; zero or negative progress is black (unfilled)
func InfectionMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.5 { // Green to Yellow
		t := progress / 0.5
		r := int32(34 + (255-34)*t)
		g := int32(139 + (215-139)*t)
		b := int32(34 - 34*t)
		return tcell.NewRGBColor(r, g, b)
	}
	// Yellow to deep red
	t := (progress - 0.5) / 0.5
	r := int32(255 - (255-139)*t)
	g := int32(215 - 215*t)
	return tcell.NewRGBColor(r, g, 0)
}

// densityGlyph picks a glyph by how many agents share a cell
func densityGlyph(count int) rune {
	switch {
	case count <= 1:
		return '·'
	case count <= 3:
		return '•'
	default:
		return '●'
	}
}
