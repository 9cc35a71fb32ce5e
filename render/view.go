// Package render draws the schematic top-down system view into a tcell
// screen. It reads live transforms and derived layout results; it never
// mutates simulation state.
package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starchart/camera"
	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/layout"
	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/scene"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
	"github.com/lixenwraith/starchart/vmath"
)

// FrameState is everything one frame draw needs, assembled by the caller
type FrameState struct {
	Sys        *celestial.System
	Reg        *scene.ObjectRegistry
	Snap       map[string]layout.Result
	Mode       viewmode.Config
	Pose       camera.Pose
	CamState   camera.State
	SelectedID string
	Paused     bool
	Multiplier float64
	Pending    bool
	Debug      bool
	Stats      *status.Registry
}

// View owns the screen and draws complete frames
type View struct {
	screen tcell.Screen
	width  int
	height int
}

// New wraps an initialized tcell screen
func New(screen tcell.Screen) *View {
	w, h := screen.Size()
	return &View{screen: screen, width: w, height: h}
}

// Resize updates cached dimensions after a terminal resize event
func (v *View) Resize(w, h int) {
	v.width = w
	v.height = h
	v.screen.Sync()
}

// Frame draws one complete frame and flushes it to the terminal
func (v *View) Frame(f FrameState) {
	v.screen.Clear()

	if f.Sys != nil {
		p := v.projection(f.Pose)
		v.drawZones(f, p)
		v.drawOrbits(f, p)
		v.drawObjects(f, p)
	}

	v.drawStatusBar(f)
	if f.Debug && f.Stats != nil {
		v.drawDebugOverlay(f.Stats)
	}

	v.screen.Show()
}

// projection centers the view on the camera target and scales so the
// camera's standoff distance spans the screen half-width
type projection struct {
	center vmath.Vec3
	scale  float64
	cx, cy int
}

func (v *View) projection(pose camera.Pose) projection {
	dist := vmath.V3Dist(pose.Position, pose.Target)
	if dist < 1 {
		dist = 1
	}
	halfW := float64(v.width-1) / 2
	if halfW < 1 {
		halfW = 1
	}
	return projection{
		center: pose.Target,
		scale:  halfW / (dist * parameter.ProjectionMargin),
		cx:     v.width / 2,
		cy:     (v.height - 1) / 2,
	}
}

// toScreen maps a world position to cell coordinates, top-down on X/Z
func (p projection) toScreen(w vmath.Vec3) (int, int) {
	d := vmath.V3Sub(w, p.center)
	x := p.cx + int(math.Round(d.X*p.scale))
	y := p.cy + int(math.Round(d.Z*p.scale*parameter.CellAspect))
	return x, y
}

func (v *View) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= v.width || y >= v.height-1 {
		return
	}
	v.screen.SetContent(x, y, ch, nil, style)
}

// drawZones shades the habitable band and marks the snow line around the
// primary star. Zone radii are real AU, mapped through the visual/real
// extent ratio of the current layout
func (v *View) drawZones(f FrameState, p projection) {
	star := f.Sys.Object(f.Sys.Lighting.PrimaryStar)
	if star == nil {
		for _, o := range f.Sys.Roots() {
			if o.Class == celestial.ClassStar {
				star = o
				break
			}
		}
	}
	if star == nil {
		return
	}
	tr, ok := f.Reg.Get(star.ID)
	if !ok {
		return
	}
	ratio := visualPerRealAU(f.Sys, f.Snap)
	if ratio <= 0 {
		return
	}

	zones := celestial.StellarZones(star.Properties)
	center := tr.Position()

	habStyle := tcell.StyleDefault.Foreground(ColorHabitable)
	inner := zones.HabitableInnerAU * ratio
	outer := zones.HabitableOuterAU * ratio
	for r := inner; r <= outer; r += 1.0 / (p.scale + 1e-9) {
		v.ring(center, r, 0, p, '·', habStyle)
	}

	snowStyle := tcell.StyleDefault.Foreground(ColorSnowLine)
	v.ring(center, zones.SnowLineAU*ratio, 0, p, '·', snowStyle)
}

// ring traces a circle of the given radius around center, tilted by incl
// the same way animated positions are, so paths align with motion
func (v *View) ring(center vmath.Vec3, radius, incl float64, p projection, ch rune, style tcell.Style) {
	if radius <= 0 {
		return
	}
	for i := 0; i < parameter.OrbitSamples; i++ {
		theta := vmath.TwoPi * float64(i) / parameter.OrbitSamples
		pt := vmath.V3Add(center, vmath.BeltPoint(radius, incl, theta))
		x, y := p.toScreen(pt)
		v.put(x, y, ch, style)
	}
}

// drawOrbits traces orbit paths and belt annuli in the current layout
func (v *View) drawOrbits(f FrameState, p projection) {
	pathStyle := tcell.StyleDefault.Foreground(ColorOrbitPath)
	for _, obj := range f.Sys.DepthOrder() {
		res, ok := f.Snap[obj.ID]
		if !ok {
			continue
		}
		parent, ok := f.Reg.Get(obj.ParentID())
		if !ok {
			continue
		}
		center := parent.Position()

		switch {
		case res.IsBelt:
			beltStyle := tcell.StyleDefault.Foreground(classColors[celestial.ClassBelt])
			incl := vmath.Radians(obj.Belt.InclinationDeg)
			step := 1.0 / (p.scale + 1e-9)
			if step < 0.5 {
				step = 0.5
			}
			for r := res.BeltInner; r <= res.BeltOuter; r += step {
				v.ring(center, r, incl, p, '∙', beltStyle)
			}
		case obj.Orbit != nil && !f.Mode.Linear:
			v.ring(center, res.OrbitDistance, vmath.Radians(obj.Orbit.InclinationDeg), p, '·', pathStyle)
		}
	}
}

// drawObjects places glyphs at live transform positions, selected object
// bracketed
func (v *View) drawObjects(f FrameState, p projection) {
	for _, obj := range f.Sys.DepthOrder() {
		if obj.IsBelt() {
			continue
		}
		tr, ok := f.Reg.Get(obj.ID)
		if !ok {
			continue
		}
		x, y := p.toScreen(tr.Position())
		style := tcell.StyleDefault.Foreground(ObjectColor(obj))
		v.put(x, y, glyphFor(obj), style)

		if obj.ID == f.SelectedID {
			sel := tcell.StyleDefault.Foreground(ColorSelection)
			v.put(x-1, y, '[', sel)
			v.put(x+1, y, ']', sel)
		}
	}
}

func (v *View) drawStatusBar(f FrameState) {
	y := v.height - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(25, 25, 35))
	for x := 0; x < v.width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}

	text := fmt.Sprintf(" %s │ x%g", f.Mode.Name, f.Multiplier)
	if f.Paused {
		text += " │ PAUSED"
	}
	if f.SelectedID != "" {
		text += " │ " + f.SelectedID
	}
	if f.Pending {
		text += " │ layout…"
	}
	switch f.CamState {
	case camera.Animating:
		text += " │ cam:transition"
	case camera.Following:
		text += " │ cam:follow"
	}
	col := 0
	for _, ch := range text {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

// drawDebugOverlay lists live metrics in the top-left corner
func (v *View) drawDebugOverlay(stats *status.Registry) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	row := 0
	emit := func(line string) {
		for i, ch := range line {
			v.put(i, row, ch, style)
		}
		row++
	}
	stats.Ints.Range(func(key string, ptr *atomic.Int64) {
		emit(fmt.Sprintf("%-24s %d", key, ptr.Load()))
	})
	stats.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		emit(fmt.Sprintf("%-24s %.2f", key, ptr.Get()))
	})
	stats.Strings.Range(func(key string, ptr *status.AtomicString) {
		emit(fmt.Sprintf("%-24s %s", key, ptr.Load()))
	})
}

// visualPerRealAU derives the current layout's visual-units-per-AU ratio
// from the outermost orbiting object
func visualPerRealAU(sys *celestial.System, snap map[string]layout.Result) float64 {
	var realMax, visMax float64
	for _, obj := range sys.Objects {
		var real float64
		switch {
		case obj.Orbit != nil:
			real = obj.Orbit.SemiMajorAxisAU
		case obj.Belt != nil:
			real = obj.Belt.OuterRadiusAU
		default:
			continue
		}
		res, ok := snap[obj.ID]
		if !ok {
			continue
		}
		if real > realMax {
			realMax = real
			visMax = res.Outer()
		}
	}
	if realMax <= 0 {
		return 0
	}
	return visMax / realMax
}
