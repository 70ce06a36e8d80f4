// Package game ties one run of the simulation to the window: it owns the
// configuration, the step engine and its collaborators, the player and the
// UI, and rebuilds the run when new settings are started.
package game

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pthm-cable/wator/camera"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/inspector"
	"github.com/pthm-cable/wator/renderer"
	"github.com/pthm-cable/wator/renderer/instances"
	"github.com/pthm-cable/wator/rng"
	"github.com/pthm-cable/wator/sim"
	"github.com/pthm-cable/wator/systems"
	"github.com/pthm-cable/wator/telemetry"
	"github.com/pthm-cable/wator/ui"
)

// fogColor is the base color of the backdrop.
var fogColor = [3]uint8{5, 18, 18}

// Options configures a game.
type Options struct {
	Config       *config.Config // nil = embedded defaults
	Seed         int64          // 0 = non-deterministic
	RNG          string         // pcg, xorshift or lehmer
	LogStats     bool           // Log window stats and bookmarks via slog
	OutputDir    string         // Parent directory of per-run CSV output, empty = off
	SettingsPath string         // Settings file used by the settings window
	Headless     bool           // No window, no rendering
	StartPaused  bool           // Player starts paused instead of playing
	Clock        func() time.Time
}

// Game holds the state of the current run and everything around it.
type Game struct {
	cfg  *config.Config
	opts Options
	now  func() time.Time

	// Current run
	engine    *sim.Engine
	instances *instances.Buffer
	runID     string
	runs      int

	player *sim.Player
	phases *systems.PhaseRegistry

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool

	// Rendering (nil when headless)
	scene      *renderer.Scene
	background *renderer.BackgroundRenderer
	camera     *camera.Camera
	inspector  *inspector.Inspector

	// UI (nil when headless)
	theme       ui.Theme
	panels      *ui.PanelRegistry
	menu        *ui.Menu
	settings    *ui.SettingsPanel
	stats       *ui.StatsPanel
	playerPanel *ui.PlayerPanel
	hud         *ui.HUD
	perfPanel   *ui.PerfPanel

	screenWidth  int32
	screenHeight int32
	orbiting     bool
	headless     bool
}

// NewGameWithOptions creates a game and starts its first run. Graphical
// games must be created after the raylib window.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	g := &Game{
		cfg:      cfg,
		opts:     opts,
		now:      now,
		player:   sim.NewPlayer(cfg.Derived.TickInterval),
		phases:   systems.NewPhaseRegistry(),
		logStats: opts.LogStats,
		headless: opts.Headless,
	}
	if !opts.StartPaused {
		g.player.Play()
	}

	if !opts.Headless {
		if err := g.initGraphics(); err != nil {
			return nil, err
		}
	}

	if err := g.Restart(cfg.Simulation); err != nil {
		g.Unload()
		return nil, err
	}
	return g, nil
}

// initGraphics creates the scene, camera and UI.
func (g *Game) initGraphics() error {
	scene, err := renderer.NewScene(g.cfg.Render)
	if err != nil {
		return err
	}
	scene.Init()
	g.scene = scene

	fish, shark, _ := g.cfg.Render.Colors()
	g.theme = ui.DefaultTheme().WithSpeciesColors(fish, shark)

	g.screenWidth = int32(g.cfg.Screen.Width)
	g.screenHeight = int32(g.cfg.Screen.Height)
	g.background = renderer.NewBackgroundRenderer(g.screenWidth, g.screenHeight, fogColor[0], fogColor[1], fogColor[2])

	d := g.cfg.Simulation.Dimensions
	g.camera = camera.New(d.X, d.Y, d.Z)
	g.inspector = inspector.NewInspector()

	g.panels = ui.NewPanelRegistry()
	g.panels.SetEnabled(ui.PanelBounds, g.cfg.Render.ShowBounds)
	g.menu = ui.NewMenu(g.theme, 220)
	g.settings = ui.NewSettingsPanel(g.theme, g.cfg.Simulation, g.opts.SettingsPath)
	g.stats = ui.NewStatsPanel(g.theme)
	g.playerPanel = ui.NewPlayerPanel(g.theme)
	g.hud = ui.NewHUD(g.theme)
	g.perfPanel = ui.NewPerfPanel(g.theme, g.phases, 10, 120)
	return nil
}

// Restart discards the current run and starts a new one from simCfg. The
// current run, its config and its output are kept when simCfg is invalid or
// the new run cannot be set up. The player keeps its state.
func (g *Game) Restart(simCfg config.Simulation) error {
	simCfg.Sanitize()
	if err := simCfg.Validate(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	src, err := rng.New(g.opts.RNG, g.opts.Seed)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	runID := telemetry.RunID(g.now())
	var om *telemetry.OutputManager
	if g.opts.OutputDir != "" {
		runID = telemetry.UniqueRunID(g.opts.OutputDir, runID)
		om, err = telemetry.NewOutputManager(filepath.Join(g.opts.OutputDir, runID))
		if err != nil {
			return fmt.Errorf("restart: %w", err)
		}
	}

	g.closeOutput()
	g.cfg.SetSimulation(simCfg)
	g.runs++
	g.runID = runID
	g.outputManager = om
	if err := om.WriteConfig(g.cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}
	if err := om.WriteSettings(simCfg); err != nil {
		slog.Error("failed to write settings", "error", err)
	}

	tcfg := g.cfg.Telemetry
	g.collector = telemetry.NewCollector(tcfg.StatsWindow, tcfg.HistorySize)
	g.perfCollector = telemetry.NewPerfCollector(tcfg.PerfWindow)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(10)
	g.instances = instances.New(g.cfg.Derived.Capacity)

	g.engine = sim.New(simCfg, sim.Options{
		Source:            src,
		Renderer:          g.instances,
		Stats:             g.collector,
		Profiler:          g.perfCollector,
		PlacementAttempts: g.cfg.Scheduler.PlacementAttempts,
	})

	if g.camera != nil {
		d := simCfg.Dimensions
		g.camera.FitDims(d.X, d.Y, d.Z)
	}
	if g.settings != nil {
		g.settings.SetDraft(simCfg)
	}
	if g.stats != nil {
		g.stats.ResetScroll()
	}
	if g.inspector != nil {
		g.inspector.Deselect()
	}

	fish, sharks := g.engine.Counts()
	slog.Info("run_started",
		"run", g.runID,
		"number", g.runs,
		"seed", g.opts.Seed,
		"rng", g.opts.RNG,
		"fish", fish,
		"sharks", sharks,
		"output", g.outputManager.Dir(),
	)
	return nil
}

// closeOutput closes the CSV files of the current run.
func (g *Game) closeOutput() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

// Tick returns the number of completed ticks of the current run.
func (g *Game) Tick() int {
	return g.engine.Tick()
}

// Engine returns the engine of the current run.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Player returns the play/pause controller.
func (g *Game) Player() *sim.Player {
	return g.player
}

// Collector returns the statistics sink of the current run.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	g.closeOutput()
	if g.scene != nil {
		g.scene.Unload()
	}
}
