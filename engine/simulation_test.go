package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/starchart/camera"
	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/scene"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
)

const frameDt = time.Second / 60

func testSystem() *celestial.System {
	return &celestial.System{
		ID:   "test-system",
		Name: "Test System",
		Objects: []*celestial.Object{
			{
				ID: "sun", Name: "Sun", Class: celestial.ClassStar, Geometry: celestial.GeomStar,
				Properties: celestial.Properties{RadiusKm: 695700, TemperatureK: 5772},
			},
			{
				ID: "inner", Name: "Inner", Class: celestial.ClassPlanet, Geometry: celestial.GeomTerrestrial,
				Properties: celestial.Properties{RadiusKm: 6000},
				Orbit:      &celestial.Orbit{Parent: "sun", SemiMajorAxisAU: 0.7, PeriodDays: 220},
			},
			{
				ID: "outer", Name: "Outer", Class: celestial.ClassPlanet, Geometry: celestial.GeomGasGiant,
				Properties: celestial.Properties{RadiusKm: 60000},
				Orbit:      &celestial.Orbit{Parent: "sun", SemiMajorAxisAU: 5.2, PeriodDays: 4300},
			},
			{
				ID: "outer-moon", Name: "Outer Moon", Class: celestial.ClassMoon, Geometry: celestial.GeomTerrestrial,
				Properties: celestial.Properties{RadiusKm: 1800},
				Orbit:      &celestial.Orbit{Parent: "outer", SemiMajorAxisAU: 0.003, PeriodDays: 7},
			},
		},
	}
}

func newTestSimulation(t *testing.T) (*Simulation, *engineClock) {
	t.Helper()
	sim := NewSimulation(status.NewRegistry())
	sim.SetSeed(func() int64 { return 42 })

	clk := &engineClock{now: time.Unix(0, 0)}
	sim.Cam.SetClock(clk.Now)
	return sim, clk
}

// engineClock drives the camera manually so animation landings are
// deterministic in tests
type engineClock struct {
	now time.Time
}

func (c *engineClock) Now() time.Time          { return c.now }
func (c *engineClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// waitLayout steps until the async layout pass delivers, failing the
// test if it never does
func waitLayout(t *testing.T, sim *Simulation) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for sim.Calc.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("layout never delivered")
		}
		time.Sleep(time.Millisecond)
	}
	sim.Step(frameDt)
}

func TestLoadSystemMountsAllObjects(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())

	if sim.Reg.Len() != 4 {
		t.Fatalf("mounted %d objects, want 4", sim.Reg.Len())
	}
	for _, id := range []string{"sun", "inner", "outer", "outer-moon"} {
		if _, ok := sim.Reg.Get(id); !ok {
			t.Errorf("object %s not mounted", id)
		}
	}
}

func TestLoadSystemPrunesStaleMounts(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())

	trimmed := testSystem()
	trimmed.Objects = trimmed.Objects[:2] // sun, inner only
	sim.LoadSystem(trimmed)

	if sim.Reg.Len() != 2 {
		t.Fatalf("registry holds %d after reload, want 2", sim.Reg.Len())
	}
	if _, ok := sim.Reg.Get("outer"); ok {
		t.Error("stale mount survived reload")
	}
}

func TestSelectIntentFocusesCamera(t *testing.T) {
	sim, clk := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Queue().Push(Intent{Type: IntentSelect, ObjectID: "outer"})
	sim.Step(frameDt)

	if sim.Cam.State() != camera.Animating {
		t.Fatalf("camera state = %v, want Animating", sim.Cam.State())
	}
	if got := sim.Stats.Strings.Get("view.focus").Load(); got != "outer" {
		t.Errorf("focus metric = %q", got)
	}

	// Run the transition to completion; the camera then follows
	clk.Advance(5 * time.Second)
	sim.Step(frameDt)
	if sim.Cam.State() != camera.Following {
		t.Errorf("camera state after landing = %v, want Following", sim.Cam.State())
	}
}

func TestSelectUnknownObjectIgnored(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Queue().Push(Intent{Type: IntentSelect, ObjectID: "no-such"})
	sim.Step(frameDt)

	if sim.Cam.State() != camera.Idle {
		t.Errorf("camera reacted to unknown object: %v", sim.Cam.State())
	}
}

func TestProfileFramingDeferredUntilSettled(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sys := testSystem()

	// Wire components by hand without requesting a layout, so the
	// snapshot stays empty and the animator cannot settle
	sim.sys = sys
	sim.Reg.ActivateSystem(sys.ID)
	for _, obj := range sys.DepthOrder() {
		sim.Reg.Register(obj.ID, &scene.Transform{})
	}
	sim.Anim.SetSystem(sys, 42)
	sim.Anim.SetMode(viewmode.MustGet(sim.Mode()))
	sim.Cam.SetSystem(sys)

	sim.Queue().Push(Intent{Type: IntentProfileFrame, ObjectID: "outer"})
	sim.Step(frameDt)

	if sim.pendingProfile != "outer" {
		t.Fatal("profile request not held pending")
	}
	if sim.Cam.State() != camera.Idle {
		t.Fatalf("camera framed before layout existed: %v", sim.Cam.State())
	}

	// Deliver a layout synchronously; the next frame repositions and
	// then resolves the deferred framing
	sim.Calc.Compute(sys, sim.Mode())
	sim.Step(frameDt)

	if sim.pendingProfile != "" {
		t.Error("profile request still pending after settle")
	}
	if sim.Cam.State() != camera.Animating {
		t.Errorf("camera state = %v, want Animating", sim.Cam.State())
	}
}

func TestViewModeSwitchRecomputesLayout(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)
	before := sim.Calc.Snapshot()

	sim.Queue().Push(Intent{Type: IntentSetMode, Mode: viewmode.Navigational})
	sim.Step(frameDt)
	waitLayout(t, sim)

	if sim.Mode() != viewmode.Navigational {
		t.Fatalf("mode = %v", sim.Mode())
	}
	// The outermost extent is invariant across modes; inner spacing is not
	after := sim.Calc.Snapshot()
	if before["inner"].OrbitDistance == after["inner"].OrbitDistance {
		t.Error("mode switch produced identical layout")
	}
	if got := sim.Stats.Strings.Get("view.mode").Load(); got != string(viewmode.Navigational) {
		t.Errorf("mode metric = %q", got)
	}
}

func TestUnknownViewModeIgnored(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Queue().Push(Intent{Type: IntentSetMode, Mode: viewmode.ID("cinematic")})
	sim.Step(frameDt)

	if sim.Mode() != viewmode.Realistic {
		t.Errorf("unknown mode accepted: %v", sim.Mode())
	}
}

func TestPauseAndSpeedIntents(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Queue().Push(Intent{Type: IntentTogglePause})
	sim.Step(frameDt)
	if !sim.Clock.IsPaused() {
		t.Fatal("pause intent ignored")
	}

	sim.Queue().Push(Intent{Type: IntentSpeedUp})
	sim.Queue().Push(Intent{Type: IntentSpeedUp})
	sim.Step(frameDt)
	if sim.Clock.Multiplier() != 4 {
		t.Errorf("multiplier = %v, want 4", sim.Clock.Multiplier())
	}

	sim.Queue().Push(Intent{Type: IntentTogglePause})
	sim.Step(frameDt)
	if sim.Clock.IsPaused() {
		t.Error("second toggle did not resume")
	}
}

func TestPausedOrbitsFrozen(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Clock.Pause()
	sim.Step(frameDt) // settle pass may still write once
	tr, _ := sim.Reg.Get("inner")
	frozen := tr.Position()

	for i := 0; i < 30; i++ {
		sim.Step(frameDt)
	}
	if got, _ := sim.Reg.Get("inner"); got.Position() != frozen {
		t.Error("object moved while paused")
	}

	sim.Clock.Resume()
	for i := 0; i < 30; i++ {
		sim.Step(frameDt)
	}
	if got, _ := sim.Reg.Get("inner"); got.Position() == frozen {
		t.Error("object did not move after resume")
	}
}

func TestBirdsEyeIntent(t *testing.T) {
	sim, clk := newTestSimulation(t)
	sim.LoadSystem(testSystem())
	waitLayout(t, sim)

	sim.Queue().Push(Intent{Type: IntentBirdsEye})
	sim.Step(frameDt)
	if sim.Cam.State() != camera.Animating {
		t.Fatalf("camera state = %v, want Animating", sim.Cam.State())
	}

	clk.Advance(5 * time.Second)
	sim.Step(frameDt)
	if sim.Cam.State() != camera.Idle {
		t.Errorf("bird's-eye should land Idle, got %v", sim.Cam.State())
	}
	if got := sim.Stats.Strings.Get("view.focus").Load(); got != "" {
		t.Errorf("focus metric = %q after bird's-eye", got)
	}
}

func TestFrameCounterAdvances(t *testing.T) {
	sim, _ := newTestSimulation(t)
	sim.LoadSystem(testSystem())

	for i := 0; i < 10; i++ {
		sim.Step(frameDt)
	}
	if got := sim.Stats.Ints.Get("engine.frames").Load(); got != 10 {
		t.Errorf("engine.frames = %d, want 10", got)
	}
}
