package camera

import (
	"math"

	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/vmath"
)

// ProfileFrame frames the focal object against its outermost hierarchy
// partner for the linear diagram view: midpoint between the two, span
// padded, with a floor distance for isolated objects.
//
// Positions are sampled from live transforms, so the caller must wait for
// the animator's settle signal after a mode switch before requesting a
// profile frame; sampling earlier reads coordinates from the previous
// mode. Candidate partners come strictly from the system's object list,
// never from walking the render graph, so non-celestial nodes can never
// be selected as a framing target
func (c *Controller) ProfileFrame(focalID string) bool {
	if c.sys == nil {
		return false
	}
	focalTr, ok := c.reg.Get(focalID)
	if !ok {
		return false
	}
	focalPos := focalTr.Position()

	// Hierarchy search: children of the focal object first; an object
	// with no children falls back to its siblings. Either way the
	// farthest candidate is measured from the focal object itself;
	// measuring siblings from the shared parent skews the midpoint
	candidates := c.sys.ChildIndex()[focalID]
	if len(candidates) == 0 {
		candidates = c.sys.Siblings(focalID)
	}

	partnerPos := focalPos
	farthest := -1.0
	for _, id := range candidates {
		tr, ok := c.reg.Get(id)
		if !ok {
			continue
		}
		pos := tr.Position()
		if d := vmath.V3Dist(focalPos, pos); d > farthest {
			farthest = d
			partnerPos = pos
		}
	}

	mid := vmath.V3Midpoint(focalPos, partnerPos)
	span := vmath.V3Dist(focalPos, partnerPos)
	camDist := math.Max(span*parameter.ProfileSpanMultiplier, parameter.ProfileMinDistance)

	elev := vmath.Radians(c.mode.Camera.Angles.DefaultElevationDeg)
	endPos := vmath.V3Add(mid, vmath.Vec3{
		Y: camDist * math.Sin(elev),
		Z: camDist * math.Cos(elev),
	})

	c.begin(&animation{
		duration:  c.mode.Camera.Animation.FocusDuration,
		endPos:    endPos,
		endTarget: mid,
		ease:      vmath.EaseByName(c.mode.Camera.Animation.Easing),
		then:      Idle,
	})
	return true
}
