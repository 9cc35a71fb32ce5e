package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starchart/camera"
	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/layout"
	"github.com/lixenwraith/starchart/orbital"
	"github.com/lixenwraith/starchart/scene"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
)

// Simulation wires the layout calculator, orbital animator, object
// registry, and camera controller into one frame-driven session.
//
// Frame ordering contract: intents apply first, then the animator writes
// this frame's transforms parents-before-children, then deferred profile
// framing samples them, then the camera ticks. Camera reads therefore
// never see a transform older than the current frame
type Simulation struct {
	Stats *status.Registry
	Reg   *scene.ObjectRegistry
	Calc  *layout.Calculator
	Anim  *orbital.Animator
	Cam   *camera.Controller
	Clock *Clock

	queue *IntentQueue
	sys   *celestial.System
	mode  viewmode.ID

	// profile framing deferred until the animator settles for the
	// current mode; sampling earlier reads stale coordinates
	pendingProfile string
	layoutVersion  uint64

	seed func() int64

	statFrames *atomic.Int64
	statMode   *status.AtomicString
	statFocus  *status.AtomicString
}

// NewSimulation builds a session with all core components wired
func NewSimulation(stats *status.Registry) *Simulation {
	reg := scene.NewObjectRegistry()
	cam := camera.New(reg, stats)
	cam.SetClock(NewTimeProvider().Now)

	return &Simulation{
		Stats:      stats,
		Reg:        reg,
		Calc:       layout.New(stats),
		Anim:       orbital.New(reg, stats),
		Cam:        cam,
		Clock:      NewClock(),
		queue:      NewIntentQueue(stats.Ints.Get("engine.intents_dropped")),
		mode:       viewmode.Realistic,
		seed:       func() int64 { return time.Now().UnixNano() },
		statFrames: stats.Ints.Get("engine.frames"),
		statMode:   stats.Strings.Get("view.mode"),
		statFocus:  stats.Strings.Get("view.focus"),
	}
}

// SetSeed overrides the orbital phase seed source (tests)
func (s *Simulation) SetSeed(fn func() int64) {
	s.seed = fn
}

// Queue returns the intent queue for the input layer
func (s *Simulation) Queue() *IntentQueue {
	return s.queue
}

// System returns the loaded system, nil before LoadSystem
func (s *Simulation) System() *celestial.System {
	return s.sys
}

// Mode returns the active view mode id
func (s *Simulation) Mode() viewmode.ID {
	return s.mode
}

// LoadSystem activates a system: scopes the registry to its id, mounts
// transforms for every valid object, seeds orbital phases, and kicks off
// the first layout pass. Graph warnings are logged, never fatal
func (s *Simulation) LoadSystem(sys *celestial.System) {
	for _, warn := range sys.Validate() {
		log.Printf("system %s: %v", sys.ID, warn)
	}

	s.sys = sys
	s.Reg.ActivateSystem(sys.ID)

	// Mount valid objects; drop mounts whose ids vanished on a reload
	valid := make(map[string]bool)
	for _, obj := range sys.DepthOrder() {
		valid[obj.ID] = true
		if _, ok := s.Reg.Get(obj.ID); !ok {
			s.Reg.Register(obj.ID, &scene.Transform{})
		}
	}
	for _, id := range s.Reg.IDs() {
		if !valid[id] {
			s.Reg.Unregister(id)
		}
	}

	s.Anim.SetSystem(sys, s.seed())
	s.Anim.SetMode(viewmode.MustGet(s.mode))
	s.Cam.SetSystem(sys)
	s.Calc.Clear()
	s.Calc.Request(sys, s.mode)
}

// SetViewMode switches modes: cache cleared, layout recomputed, animator
// scheduled for a settle pass. Real object properties are untouched;
// only the derived visual mapping changes
func (s *Simulation) SetViewMode(id viewmode.ID) {
	if _, ok := viewmode.Get(id); !ok {
		log.Printf("unknown view mode %q ignored", id)
		return
	}
	s.mode = id
	s.statMode.Store(string(id))
	cfg := viewmode.MustGet(id)
	s.Anim.SetMode(cfg)
	s.Cam.SetMode(cfg)
	if s.sys != nil {
		s.Calc.Clear()
		s.Calc.Request(s.sys, id)
	}
}

// Step advances one frame: drain intents, animate orbits, resolve any
// deferred profile framing, tick the camera
func (s *Simulation) Step(dt time.Duration) {
	s.statFrames.Add(1)

	for _, intent := range s.queue.Consume() {
		s.apply(intent)
	}

	// A freshly delivered layout must reposition objects even while
	// paused, so pausing never freezes a previous mode's coordinates
	if v := s.Calc.Version(); v != s.layoutVersion {
		s.layoutVersion = v
		s.Anim.MarkDirty()
	}

	snap := s.Calc.Snapshot()
	s.Anim.Update(dt, s.Clock.Multiplier(), s.Clock.IsPaused(), snap)

	if s.pendingProfile != "" && s.Anim.Settled() && !s.Calc.Pending() {
		if s.Cam.ProfileFrame(s.pendingProfile) {
			s.pendingProfile = ""
		}
	}

	s.Cam.Tick()
}

func (s *Simulation) apply(intent Intent) {
	switch intent.Type {
	case IntentSelect:
		if s.sys == nil {
			return
		}
		obj := s.sys.Object(intent.ObjectID)
		if obj == nil {
			return
		}
		res := s.Calc.Snapshot()[obj.ID]
		if s.Cam.Focus(obj, res) {
			s.statFocus.Store(obj.ID)
		}

	case IntentBirdsEye:
		s.Cam.BirdsEye(s.Calc.Snapshot())
		s.statFocus.Store("")

	case IntentProfileFrame:
		s.pendingProfile = intent.ObjectID

	case IntentSetMode:
		s.SetViewMode(intent.Mode)

	case IntentTogglePause:
		if !s.Clock.TogglePause() {
			// Resuming after a paused mode switch: force one reposition
			// in case the pause swallowed the settle pass
			s.Anim.MarkDirty()
		}

	case IntentSpeedUp:
		s.Clock.StepMultiplier(true)

	case IntentSpeedDown:
		s.Clock.StepMultiplier(false)
	}
}
