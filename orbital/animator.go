package orbital

import (
	"math/rand"
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

// state is the per-object kinematic state. Theta always advances; the
// written position lags behind it by at most the write epsilon
type state struct {
	theta       float64
	lastWritten vmath.Vec3
	hasWritten  bool
}

// Animator drives per-frame kinematic positions along parametric
// ellipses. Objects are processed strictly parents-before-children so a
// moon composes against its planet's position from this frame, never
// last frame's; resolving children first is the classic one-frame-stale
// offset bug
type Animator struct {
	sys     *celestial.System
	reg     *scene.ObjectRegistry
	ordered []*celestial.Object
	states  map[string]*state

	mode        viewmode.Config
	reposition  bool // one-shot settle pass requested (mode/system change)
	settledMode bool // positions reflect the current mode

	statWrites     *atomic.Int64
	statSuppressed *atomic.Int64
}

// New creates an Animator writing through the given registry
func New(reg *scene.ObjectRegistry, stats *status.Registry) *Animator {
	return &Animator{
		reg:            reg,
		states:         make(map[string]*state),
		mode:           viewmode.MustGet(viewmode.Realistic),
		statWrites:     stats.Ints.Get("orbital.writes"),
		statSuppressed: stats.Ints.Get("orbital.suppressed"),
	}
}

// SetSystem binds a system and seeds each object's initial orbital phase.
// Phases are drawn from one seeded source in deterministic depth order:
// stable within a session, varied across sessions by the caller's seed.
// Randomized phases keep sibling bodies from visually aligning
func (a *Animator) SetSystem(sys *celestial.System, seed int64) {
	a.sys = sys
	a.ordered = sys.DepthOrder()
	a.states = make(map[string]*state, len(a.ordered))
	rng := rand.New(rand.NewSource(seed))
	for _, obj := range a.ordered {
		a.states[obj.ID] = &state{theta: rng.Float64() * vmath.TwoPi}
	}
	a.reposition = true
	a.settledMode = false
}

// SetMode switches the scaling mode and schedules a settle pass so
// paused sessions still get one correct reposition
func (a *Animator) SetMode(cfg viewmode.Config) {
	a.mode = cfg
	a.reposition = true
	a.settledMode = false
}

// MarkDirty requests a one-shot reposition on the next update
func (a *Animator) MarkDirty() {
	a.reposition = true
	a.settledMode = false
}

// Settled reports whether live positions reflect the current mode's
// layout. Profile framing must not sample positions before this is true
func (a *Animator) Settled() bool {
	return a.settledMode
}

// Update advances orbital angles by dt scaled through timeMultiplier and
// writes composed world positions. While paused, angles freeze but a
// pending reposition still runs exactly once so objects never linger at
// a previous mode's coordinates
func (a *Animator) Update(dt time.Duration, timeMultiplier float64, paused bool, snap map[string]layout.Result) {
	if a.sys == nil || len(snap) == 0 {
		return
	}
	if paused && !a.reposition {
		return
	}

	advance := !paused
	simDays := dt.Seconds() * timeMultiplier * parameter.SimDaysPerSecond

	for _, obj := range a.ordered {
		st, ok := a.states[obj.ID]
		if !ok {
			continue
		}
		res, ok := snap[obj.ID]
		if !ok {
			continue
		}
		tr, ok := a.reg.Get(obj.ID)
		if !ok {
			// Not mounted yet: skip this frame's update for this object
			continue
		}

		if advance && obj.Orbit != nil {
			st.theta = vmath.WrapAngle(st.theta + simDays*vmath.AngularRate(obj.Orbit.PeriodDays))
		}

		world, ok := a.composeWorld(obj, st, res)
		if !ok {
			continue
		}

		if st.hasWritten && vmath.V3Dist(world, st.lastWritten) < parameter.PositionEpsilon {
			// Angle state advanced; container write suppressed to avoid
			// sub-pixel transform churn
			a.statSuppressed.Add(1)
			continue
		}
		tr.SetPosition(world)
		st.lastWritten = world
		st.hasWritten = true
		a.statWrites.Add(1)
	}

	a.reposition = false
	a.settledMode = true
}

// composeWorld builds the object's world position from its parent's live
// transform plus the locally computed orbital offset
func (a *Animator) composeWorld(obj *celestial.Object, st *state, res layout.Result) (vmath.Vec3, bool) {
	pid := obj.ParentID()
	if pid == "" {
		if obj.Position != nil {
			return *obj.Position, true
		}
		return vmath.Vec3{}, true
	}

	parentTr, ok := a.reg.Get(pid)
	if !ok {
		// Parent not mounted: composing against a stale or zero parent
		// would place the child at the wrong offset, so wait
		return vmath.Vec3{}, false
	}
	parentPos := parentTr.Position()

	var offset vmath.Vec3
	switch {
	case a.mode.Linear:
		// Diagrammatic layout: distance along a single axis, others zeroed
		offset = vmath.Vec3{X: res.OrbitDistance}
	case obj.Belt != nil:
		// Belt containers sit on the parent; the band renders around it
		offset = vmath.Vec3{}
	default:
		incl := vmath.Radians(obj.Orbit.InclinationDeg)
		offset = vmath.OrbitPoint(res.OrbitDistance, obj.Orbit.Eccentricity, incl, st.theta)
	}
	return vmath.V3Add(parentPos, offset), true
}

// Phase returns the current orbital angle for an object, for rendering
// orbit markers and tests
func (a *Animator) Phase(id string) (float64, bool) {
	st, ok := a.states[id]
	if !ok {
		return 0, false
	}
	return st.theta, ok
}
