package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starchart/celestial"
)

// starRamp holds blackbody keypoints for star tinting. Blending runs in
// Luv so midpoints stay perceptually sane
var starRamp = []struct {
	tempK float64
	col   colorful.Color
}{
	{2000, colorful.Color{R: 1.00, G: 0.45, B: 0.20}},
	{3700, colorful.Color{R: 1.00, G: 0.70, B: 0.42}},
	{5200, colorful.Color{R: 1.00, G: 0.89, B: 0.71}},
	{6000, colorful.Color{R: 1.00, G: 0.97, B: 0.92}},
	{7500, colorful.Color{R: 0.93, G: 0.95, B: 1.00}},
	{10000, colorful.Color{R: 0.79, G: 0.85, B: 1.00}},
	{30000, colorful.Color{R: 0.62, G: 0.72, B: 1.00}},
}

// StarColor maps an effective temperature to a terminal color.
// Temperatures outside the ramp clamp to its ends; zero falls back to
// the solar keypoint
func StarColor(tempK float64) tcell.Color {
	if tempK <= 0 {
		tempK = 5772
	}
	if tempK <= starRamp[0].tempK {
		return toTcell(starRamp[0].col)
	}
	last := starRamp[len(starRamp)-1]
	if tempK >= last.tempK {
		return toTcell(last.col)
	}
	for i := 1; i < len(starRamp); i++ {
		if tempK <= starRamp[i].tempK {
			lo, hi := starRamp[i-1], starRamp[i]
			t := (tempK - lo.tempK) / (hi.tempK - lo.tempK)
			return toTcell(lo.col.BlendLuv(hi.col, t).Clamped())
		}
	}
	return toTcell(last.col)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var classColors = map[celestial.Classification]tcell.Color{
	celestial.ClassPlanet:      tcell.NewRGBColor(120, 200, 255),
	celestial.ClassDwarfPlanet: tcell.NewRGBColor(150, 150, 170),
	celestial.ClassMoon:        tcell.NewRGBColor(170, 170, 170),
	celestial.ClassBelt:        tcell.NewRGBColor(110, 95, 70),
	celestial.ClassJumpPoint:   tcell.NewRGBColor(190, 120, 255),
	celestial.ClassStation:     tcell.NewRGBColor(90, 230, 150),
	celestial.ClassBlackHole:   tcell.NewRGBColor(80, 60, 120),
}

// ObjectColor picks the draw color for an object. Stars tint by
// temperature; everything else by classification
func ObjectColor(obj *celestial.Object) tcell.Color {
	if obj.Class == celestial.ClassStar {
		return StarColor(obj.Properties.TemperatureK)
	}
	if c, ok := classColors[obj.Class]; ok {
		return c
	}
	return tcell.ColorWhite
}

// Zone band tints, dimmed so orbits stay readable over them
var (
	ColorHabitable = tcell.NewRGBColor(20, 60, 25)
	ColorSnowLine  = tcell.NewRGBColor(30, 45, 60)
	ColorOrbitPath = tcell.NewRGBColor(50, 50, 60)
	ColorSelection = tcell.NewRGBColor(255, 220, 80)
)
