package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/config"
	"github.com/lixenwraith/starchart/data"
	"github.com/lixenwraith/starchart/engine"
	"github.com/lixenwraith/starchart/render"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
)

var (
	configFlag = flag.String("config", "starchart.toml", "Path to TOML config file")
	systemFlag = flag.String("system", "", "Path to a system JSON file (default: embedded Sol)")
	modeFlag   = flag.String("mode", "", "Startup view mode: realistic, navigational, profile")
	debugFlag  = flag.Bool("debug", false, "Enable file logging and the status overlay")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *systemFlag != "" {
		cfg.SystemFile = *systemFlag
	}
	if *modeFlag != "" {
		cfg.ViewMode = *modeFlag
	}
	debugOn := cfg.Debug || *debugFlag

	logFile := setupLogging(debugOn)
	if logFile != nil {
		defer logFile.Close()
	}

	sys, err := loadSystem(cfg.SystemFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it lands in raw mode and is unreadable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSTARCHART CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	stats := status.NewRegistry()
	sim := engine.NewSimulation(stats)
	if cfg.Seed != 0 {
		seed := cfg.Seed
		sim.SetSeed(func() int64 { return seed })
	}
	sim.Clock.SetMultiplier(cfg.TimeMultiplier)
	sim.LoadSystem(sys)
	if id := viewmode.ID(cfg.ViewMode); id != sim.Mode() {
		sim.SetViewMode(id)
	}

	view := render.New(screen)
	run(screen, sim, view, stats, cfg.TickRate, debugOn)
}

func loadSystem(path string) (*celestial.System, error) {
	if path == "" {
		sys, _, err := celestial.DecodeSystem(data.SampleSystem())
		return sys, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("system file: %w", err)
	}
	defer f.Close()
	sys, warns, err := celestial.DecodeSystem(f)
	if err != nil {
		return nil, fmt.Errorf("system file %s: %w", path, err)
	}
	for _, w := range warns {
		log.Printf("system %s: %v", path, w)
	}
	return sys, nil
}

func run(screen tcell.Screen, sim *engine.Simulation, view *render.View, stats *status.Registry, tickRate int, debugOn bool) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	frameTicker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer frameTicker.Stop()

	var (
		selected string
		last     = time.Now()
		overlay  = debugOn
	)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				view.Resize(w, h)
			case *tcell.EventKey:
				if !handleKey(ev, sim, &selected, &overlay) {
					close(quit)
					return
				}
			}

		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now
			sim.Step(dt)

			view.Frame(render.FrameState{
				Sys:        sim.System(),
				Reg:        sim.Reg,
				Snap:       sim.Calc.Snapshot(),
				Mode:       viewmode.MustGet(sim.Mode()),
				Pose:       sim.Cam.Pose(),
				CamState:   sim.Cam.State(),
				SelectedID: selected,
				Paused:     sim.Clock.IsPaused(),
				Multiplier: sim.Clock.Multiplier(),
				Pending:    sim.Calc.Pending(),
				Debug:      overlay,
				Stats:      stats,
			})
		}
	}
}

// handleKey maps key events to intents; returns false to quit
func handleKey(ev *tcell.EventKey, sim *engine.Simulation, selected *string, overlay *bool) bool {
	q := sim.Queue()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		*selected = nextSelectable(sim, *selected)
		if *selected != "" {
			q.Push(engine.Intent{Type: engine.IntentSelect, ObjectID: *selected})
		}
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		q.Push(engine.Intent{Type: engine.IntentTogglePause})
	case '+', '=':
		q.Push(engine.Intent{Type: engine.IntentSpeedUp})
	case '-':
		q.Push(engine.Intent{Type: engine.IntentSpeedDown})
	case '1':
		q.Push(engine.Intent{Type: engine.IntentSetMode, Mode: viewmode.Realistic})
	case '2':
		q.Push(engine.Intent{Type: engine.IntentSetMode, Mode: viewmode.Navigational})
	case '3':
		q.Push(engine.Intent{Type: engine.IntentSetMode, Mode: viewmode.Profile})
	case 'b':
		q.Push(engine.Intent{Type: engine.IntentBirdsEye})
		*selected = ""
	case 'f':
		if *selected != "" {
			q.Push(engine.Intent{Type: engine.IntentProfileFrame, ObjectID: *selected})
		}
	case 'd':
		*overlay = !*overlay
	}
	return true
}

// nextSelectable cycles through non-belt objects in depth order
func nextSelectable(sim *engine.Simulation, current string) string {
	sys := sim.System()
	if sys == nil {
		return ""
	}
	ordered := sys.DepthOrder()
	ids := make([]string, 0, len(ordered))
	for _, obj := range ordered {
		if !obj.IsBelt() {
			ids = append(ids, obj.ID)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
