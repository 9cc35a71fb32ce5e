package camera

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/layout"
	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/scene"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
	"github.com/lixenwraith/starchart/vmath"
)

// State is the controller's behavior mode
type State uint8

const (
	Idle State = iota
	Animating
	Following
)

// animation is the ephemeral in-flight transition. At most one exists;
// a new request cancels and replaces it
type animation struct {
	start       time.Time
	duration    time.Duration
	startPos    vmath.Vec3
	startTarget vmath.Vec3
	endPos      vmath.Vec3
	endTarget   vmath.Vec3
	ease        vmath.EaseFunc
	then        State
	followID    string
}

// Controller owns the camera pose. It animates focus, bird's-eye, and
// profile framings, and rigid-follows a tracked object between them.
// Advanced purely by Tick against an injectable clock, so the whole state
// machine runs under test without a scheduler
type Controller struct {
	reg *scene.ObjectRegistry
	sys *celestial.System

	now      func() time.Time
	controls Controls
	mode     viewmode.Config

	pose  Pose
	state State
	anim  *animation

	followID     string
	followSample vmath.Vec3
	hasSample    bool

	statAnimations  *atomic.Int64
	statCancelled   *atomic.Int64
	statFollowSyncs *atomic.Int64
}

// New creates a Controller reading live positions from reg
func New(reg *scene.ObjectRegistry, stats *status.Registry) *Controller {
	return &Controller{
		reg:             reg,
		now:             time.Now,
		controls:        nullControls{},
		mode:            viewmode.MustGet(viewmode.Realistic),
		pose:            Pose{Position: vmath.Vec3{Y: 30, Z: 50}},
		statAnimations:  stats.Ints.Get("camera.animations"),
		statCancelled:   stats.Ints.Get("camera.cancelled"),
		statFollowSyncs: stats.Ints.Get("camera.follow_syncs"),
	}
}

// SetClock injects a time source; tests drive a manual clock through here
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// SetControls attaches the user orbit-control surface
func (c *Controller) SetControls(ctl Controls) {
	if ctl == nil {
		ctl = nullControls{}
	}
	c.controls = ctl
}

// SetSystem binds the authoritative object list used for framing searches
func (c *Controller) SetSystem(sys *celestial.System) {
	c.sys = sys
	c.stopFollowing()
}

// SetMode switches per-mode camera defaults
func (c *Controller) SetMode(cfg viewmode.Config) {
	c.mode = cfg
}

// Pose returns the current camera pose
func (c *Controller) Pose() Pose {
	return c.pose
}

// State returns the current behavior state
func (c *Controller) State() State {
	return c.state
}

// FollowTarget returns the id being tracked, "" when not following
func (c *Controller) FollowTarget() string {
	if c.state != Following {
		return ""
	}
	return c.followID
}

// Focus animates toward an object and tracks it on arrival. The target
// position is the object's live transform; distance derives from its
// visual radius and a coarse type multiplier (stars widest, then gas
// giants), clamped to the mode's distance envelope
func (c *Controller) Focus(obj *celestial.Object, res layout.Result) bool {
	tr, ok := c.reg.Get(obj.ID)
	if !ok {
		// Not mounted: skip rather than aim at a stale coordinate
		return false
	}
	target := tr.Position()

	dist := focusDistance(obj, res, c.mode.Camera)
	elev := vmath.Radians(c.mode.Camera.Angles.DefaultElevationDeg)
	endPos := offsetAt(target, azimuthOf(c.pose, target), elev, dist)

	c.begin(&animation{
		duration:  c.mode.Camera.Animation.FocusDuration,
		endPos:    endPos,
		endTarget: target,
		ease:      vmath.EaseByName(c.mode.Camera.Animation.Easing),
		then:      Following,
		followID:  obj.ID,
	})
	return true
}

// BirdsEye frames the whole system from the configured overhead angle.
// Extent comes from the layout snapshot's outermost orbit, with a fixed
// fallback when no layout is available yet
func (c *Controller) BirdsEye(snap map[string]layout.Result) {
	maxOrbit := 0.0
	for _, res := range snap {
		if d := res.Outer(); d > maxOrbit {
			maxOrbit = d
		}
	}
	if maxOrbit == 0 {
		maxOrbit = parameter.BirdsEyeFallbackRadius
	}

	center := c.systemCenter()
	elev := vmath.Radians(c.mode.Camera.Angles.BirdsEyeElevationDeg)

	c.begin(&animation{
		duration:  c.mode.Camera.Animation.BirdsEyeDuration,
		endPos:    offsetAt(center, azimuthOf(c.pose, center), elev, maxOrbit),
		endTarget: center,
		ease:      vmath.EaseByName(c.mode.Camera.Animation.Easing),
		then:      Idle,
	})
}

// Tick advances the animation engine and the follow behavior. Call once
// per frame, after the orbital pass has written this frame's transforms
func (c *Controller) Tick() {
	switch c.state {
	case Animating:
		c.tickAnimation()
	case Following:
		c.tickFollow()
	}
}

func (c *Controller) tickAnimation() {
	a := c.anim
	progress := 1.0
	if a.duration > 0 {
		progress = vmath.Clamp(float64(c.now().Sub(a.start))/float64(a.duration), 0, 1)
	}
	eased := a.ease(progress)
	c.pose = Pose{
		Position: vmath.V3Lerp(a.startPos, a.endPos, eased),
		Target:   vmath.V3Lerp(a.startTarget, a.endTarget, eased),
	}
	if progress < 1 {
		return
	}

	// Landed: re-enable controls against the settled pose, exactly once
	c.pose = Pose{Position: a.endPos, Target: a.endTarget}
	c.controls.SetEnabled(true)
	c.controls.SyncHome(c.pose)

	next := a.then
	followID := a.followID
	c.anim = nil
	c.state = next
	if next == Following {
		c.followID = followID
		c.hasSample = false
	}
}

// tickFollow rigid-follows the tracked object: when its live position
// moved beyond the jitter epsilon since last frame, camera position and
// target translate by the same delta, preserving the viewing angle. The
// control home state resyncs on every moved frame; throttling that sync
// makes drag input lag behind the camera during tracking
func (c *Controller) tickFollow() {
	tr, ok := c.reg.Get(c.followID)
	if !ok {
		// Object unmounted: hold pose until it returns or focus changes
		return
	}
	cur := tr.Position()
	if !c.hasSample {
		c.followSample = cur
		c.hasSample = true
		return
	}
	delta := vmath.V3Sub(cur, c.followSample)
	c.followSample = cur

	if vmath.V3Mag(delta) <= parameter.FollowEpsilon {
		return
	}
	c.pose.Position = vmath.V3Add(c.pose.Position, delta)
	c.pose.Target = vmath.V3Add(c.pose.Target, delta)
	c.controls.SyncHome(c.pose)
	c.statFollowSyncs.Add(1)
}

// begin cancels any in-flight animation, then starts the new one with
// controls disabled. Two animations must never fight over the pose
func (c *Controller) begin(a *animation) {
	if c.anim != nil {
		// Discard wholesale: no partial application of the old end state
		c.anim = nil
		c.controls.SetEnabled(true)
		c.statCancelled.Add(1)
	}
	c.stopFollowing()

	a.start = c.now()
	a.startPos = c.pose.Position
	a.startTarget = c.pose.Target
	if a.ease == nil {
		a.ease = vmath.EaseInOut
	}
	c.anim = a
	c.state = Animating
	c.controls.SetEnabled(false)
	c.statAnimations.Add(1)
}

func (c *Controller) stopFollowing() {
	c.followID = ""
	c.hasSample = false
	if c.state == Following {
		c.state = Idle
	}
}

// systemCenter returns the primary root's live position, zero if unknown
func (c *Controller) systemCenter() vmath.Vec3 {
	if c.sys == nil {
		return vmath.Vec3{}
	}
	for _, root := range c.sys.Roots() {
		if tr, ok := c.reg.Get(root.ID); ok {
			return tr.Position()
		}
	}
	return vmath.Vec3{}
}

// focusDistance computes the viewing distance for an object: visual
// radius scaled by the mode's radius multiplier and a coarse
// classification boost, clamped to the mode envelope
func focusDistance(obj *celestial.Object, res layout.Result, cam viewmode.CameraConfig) float64 {
	mult := cam.RadiusMultiplier
	if mult <= 0 {
		mult = parameter.FocusFallbackMultiplier
	}
	switch {
	case obj.Class == celestial.ClassStar || obj.Class == celestial.ClassBlackHole:
		mult *= parameter.FocusStarBoost
	case obj.Geometry == celestial.GeomGasGiant:
		mult *= parameter.FocusGasGiantBoost
	}

	minDist := math.Max(res.VisualRadius*cam.MinDistanceMultiplier, cam.AbsoluteMinDistance)
	maxDist := cam.AbsoluteMaxDistance
	if m := res.VisualRadius * cam.MaxDistanceMultiplier; m > minDist && m < maxDist {
		maxDist = m
	}
	return vmath.Clamp(res.VisualRadius*mult, minDist, maxDist)
}

// azimuthOf preserves the camera's horizontal bearing relative to a new
// target so reframing doesn't spin the scene
func azimuthOf(pose Pose, target vmath.Vec3) float64 {
	dx := pose.Position.X - target.X
	dz := pose.Position.Z - target.Z
	if dx == 0 && dz == 0 {
		return 0
	}
	return math.Atan2(dx, dz)
}

// offsetAt places the camera at spherical offset (azimuth, elevation,
// distance) from a target point
func offsetAt(target vmath.Vec3, azimuth, elevation, dist float64) vmath.Vec3 {
	horiz := dist * math.Cos(elevation)
	return vmath.Vec3{
		X: target.X + horiz*math.Sin(azimuth),
		Y: target.Y + dist*math.Sin(elevation),
		Z: target.Z + horiz*math.Cos(azimuth),
	}
}
