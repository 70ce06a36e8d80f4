// Command sliceview runs the simulation in a terminal and shows one z-layer
// of the lattice at a time.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/rng"
	"github.com/pthm-cable/wator/sim"
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0, 40, 40))
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(20, 60, 60))
	styleFish   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleShark  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type viewer struct {
	screen tcell.Screen
	engine *sim.Engine
	player *sim.Player
	slice  time.Duration
	layer  int
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	settingsPath := flag.String("settings", "", "Path to a settings JSON file overriding the simulation section")
	seed := flag.Int64("seed", 0, "RNG seed (0 = non-deterministic)")
	rngKind := flag.String("rng", "pcg", "Random generator: pcg, xorshift or lehmer")
	logPath := flag.String("log", "", "Write JSON logs to this file (the terminal is in use)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sliceview: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	v, err := newViewer(*configPath, *settingsPath, *rngKind, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sliceview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sliceview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "sliceview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	v.screen = screen

	v.run()
}

func newViewer(configPath, settingsPath, rngKind string, seed int64) (*viewer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if settingsPath != "" {
		s, err := config.LoadSettings(settingsPath)
		if err != nil {
			return nil, err
		}
		cfg.SetSimulation(s)
	}

	s := cfg.Simulation
	s.Sanitize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	src, err := rng.New(rngKind, seed)
	if err != nil {
		return nil, err
	}

	engine := sim.New(s, sim.Options{
		Source:            src,
		PlacementAttempts: cfg.Scheduler.PlacementAttempts,
	})
	slog.Info("run_started", "dims", s.Dimensions, "rng", rngKind, "seed", seed)

	player := sim.NewPlayer(cfg.Derived.TickInterval)
	player.Play()
	return &viewer{
		engine: engine,
		player: player,
		slice:  cfg.Derived.TimeSlice,
	}, nil
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
			v.draw()
		case now := <-ticker.C:
			if !v.engine.Busy() && v.player.ShouldStart(now) {
				v.engine.Start()
			}
			if v.engine.Advance(v.slice) == sim.TickCompleted {
				fish, sharks := v.engine.Counts()
				slog.Debug("tick", "tick", v.engine.Tick(), "fish", fish, "sharks", sharks)
			}
			v.draw()
		}
	}
}

// handleEvent applies one terminal event and returns false to quit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.moveLayer(1)
		case tcell.KeyDown:
			v.moveLayer(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.player.Toggle()
			case 'n':
				v.player.RequestSingleStep()
			case ']':
				v.moveLayer(1)
			case '[':
				v.moveLayer(-1)
			}
		}
	}
	return true
}

func (v *viewer) moveLayer(delta int) {
	depth := v.engine.Registry().Dims().Z
	v.layer = (v.layer + delta + depth) % depth
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	reg := v.engine.Registry()
	rows := layer(reg, v.layer)
	layerFish, layerSharks := layerCounts(rows)
	fish, sharks := v.engine.Counts()

	state := "paused"
	if v.player.Playing() {
		state = "playing"
	}
	status := fmt.Sprintf(" tick %d  fish %d  sharks %d  |  z %d/%d: fish %d sharks %d  |  %s ",
		v.engine.Tick(), fish, sharks, v.layer+1, reg.Dims().Z, layerFish, layerSharks, state)
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, 0, ' ', nil, styleStatus)
	}
	drawText(v.screen, 0, 0, status, styleStatus)

	for y, row := range rows {
		sy := y + 1
		if sy >= height-1 {
			break
		}
		for x, c := range row {
			if x >= width {
				break
			}
			switch c {
			case cellFish:
				v.screen.SetContent(x, sy, 'f', nil, styleFish)
			case cellShark:
				v.screen.SetContent(x, sy, 'S', nil, styleShark)
			default:
				v.screen.SetContent(x, sy, '·', nil, styleEmpty)
			}
		}
	}

	drawText(v.screen, 0, height-1, "space play/pause  n step  [ ] layer  q quit", styleHelp)
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
