// Package sim runs the fish and shark rules over the population, one tick at
// a time, in bounded slices of work so a frame loop stays responsive.
package sim

import (
	"log/slog"
	"math"
	"time"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/population"
	"github.com/pthm-cable/wator/rng"
	"github.com/pthm-cable/wator/systems"
)

// State is the position of the engine within a tick.
type State int

const (
	StateIdle State = iota
	StateProcessingFish
	StateProcessingSharks
	StateFinalizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessingFish:
		return "processing_fish"
	case StateProcessingSharks:
		return "processing_sharks"
	case StateFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// TickStatus is the result of one Advance call.
type TickStatus int

const (
	TickIdle       TickStatus = iota // No tick in flight, nothing done
	TickContinuing                   // Budget spent, call Advance again
	TickCompleted                    // The tick finished during this call
)

// RendererSync receives committed creature positions.
type RendererSync interface {
	SetInstance(species components.Species, slot int, pos components.Position)
	SetLiveCount(species components.Species, n int)
}

// StatsSink is told about every completed tick.
type StatsSink interface {
	RecordTick(tick int, census population.Census)
}

// Profiler receives the work time spent in each phase of a tick.
type Profiler interface {
	StartTick()
	AddPhase(phase string, d time.Duration)
	AddSlice()
	EndTick()
}

// Options carries the collaborators of an engine. Nil collaborators are
// skipped.
type Options struct {
	Source            rng.Source       // Defaults to rng.NewDefault()
	Renderer          RendererSync     // Optional
	Stats             StatsSink        // Optional
	Profiler          Profiler         // Optional
	Clock             func() time.Time // Defaults to time.Now
	PlacementAttempts int              // Defaults to 100
	SkipPlacement     bool             // Start with an empty lattice
}

// Engine advances one run of the simulation. Create a new engine per run.
type Engine struct {
	cfg     config.Simulation
	reg     *population.Registry
	src     rng.Source
	offsets []components.Offset

	renderer RendererSync
	stats    StatsSink
	profiler Profiler
	clock    func() time.Time

	state       State
	fishCursor  int
	sharkCursor int
	sharkPhase  bool
	tick        int
	census      population.Census

	// buf is reused by neighbor queries
	buf []components.Position
}

// New creates an engine for a validated configuration and places the
// initial fish, then the initial sharks, on random free cells.
func New(cfg config.Simulation, opts Options) *Engine {
	if opts.Source == nil {
		opts.Source = rng.NewDefault()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.PlacementAttempts <= 0 {
		opts.PlacementAttempts = 100
	}

	e := &Engine{
		cfg:      cfg,
		reg:      population.New(cfg.Dimensions),
		src:      opts.Source,
		offsets:  systems.NeighborOffsets(cfg.Neighbors),
		renderer: opts.Renderer,
		stats:    opts.Stats,
		profiler: opts.Profiler,
		clock:    opts.Clock,
		buf:      make([]components.Position, 0, 26),
	}

	if !opts.SkipPlacement {
		e.populate(opts.PlacementAttempts)
	}
	e.census = population.Census{
		Fish:   e.reg.Len(components.SpeciesFish),
		Sharks: e.reg.Len(components.SpeciesShark),
	}
	e.Sync()
	return e
}

func (e *Engine) populate(attempts int) {
	fish := e.reg.PlaceRandom(components.SpeciesFish, e.cfg.Fish.Count, e.cfg.Fish.MaturityAge, 0, attempts, e.src)
	sharks := e.reg.PlaceRandom(components.SpeciesShark, e.cfg.Shark.Count, e.cfg.Shark.MaturityAge, e.cfg.Shark.StarveLimit, attempts, e.src)

	if fish < e.cfg.Fish.Count || sharks < e.cfg.Shark.Count {
		slog.Warn("placement_shortfall",
			"fish_requested", e.cfg.Fish.Count,
			"fish_placed", fish,
			"sharks_requested", e.cfg.Shark.Count,
			"sharks_placed", sharks,
		)
	}

	d := e.cfg.Dimensions
	slog.Info("simulation_started",
		"dims", []int{d.X, d.Y, d.Z},
		"boundary", string(e.cfg.Boundary),
		"neighbors", len(e.offsets),
		"fish", fish,
		"sharks", sharks,
	)
}

// Registry exposes the population for inspection and tests.
func (e *Engine) Registry() *population.Registry {
	return e.reg
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() config.Simulation {
	return e.cfg
}

// State returns the current tick state.
func (e *Engine) State() State {
	return e.state
}

// Tick returns the number of completed ticks.
func (e *Engine) Tick() int {
	return e.tick
}

// Counts returns the committed fish and shark counts.
func (e *Engine) Counts() (fish, sharks int) {
	return e.census.Fish, e.census.Sharks
}

// Census returns the result of the last commit.
func (e *Engine) Census() population.Census {
	return e.census
}

// Busy reports whether a tick is in flight.
func (e *Engine) Busy() bool {
	return e.state != StateIdle
}

// Start begins a tick. A request while a tick is in flight is ignored and
// returns false.
func (e *Engine) Start() bool {
	if e.state != StateIdle {
		return false
	}
	e.state = StateProcessingFish
	e.fishCursor = 0
	e.sharkCursor = 0
	e.sharkPhase = false
	if e.profiler != nil {
		e.profiler.StartTick()
	}
	return true
}

// Advance processes creatures until the tick completes or the elapsed time
// exceeds budget. At least one creature is processed per call. Calling it
// with no tick in flight does nothing.
func (e *Engine) Advance(budget time.Duration) TickStatus {
	if e.state == StateIdle {
		return TickIdle
	}

	start := e.clock()
	phaseStart := start
	if e.profiler != nil {
		e.profiler.AddSlice()
	}

	for {
		switch e.state {
		case StateProcessingFish:
			if e.fishCursor >= e.reg.Len(components.SpeciesFish) {
				now := e.clock()
				e.addPhase(systems.PhaseFish, now.Sub(phaseStart))
				phaseStart = now
				e.sharkPhase = true
				e.state = StateProcessingSharks
				continue
			}
			e.stepFish(e.reg.At(components.SpeciesFish, e.fishCursor))
			e.fishCursor++

		case StateProcessingSharks:
			if e.sharkCursor >= e.reg.Len(components.SpeciesShark) {
				now := e.clock()
				e.addPhase(systems.PhaseSharks, now.Sub(phaseStart))
				phaseStart = now
				e.state = StateFinalizing
				continue
			}
			e.stepShark(e.reg.At(components.SpeciesShark, e.sharkCursor))
			e.sharkCursor++

		case StateFinalizing:
			e.finalize()
			return TickCompleted

		default:
			return TickIdle
		}

		now := e.clock()
		if now.Sub(start) > budget {
			e.addPhase(e.currentPhase(), now.Sub(phaseStart))
			return TickContinuing
		}
	}
}

func (e *Engine) currentPhase() string {
	if e.sharkPhase {
		return systems.PhaseSharks
	}
	return systems.PhaseFish
}

func (e *Engine) addPhase(phase string, d time.Duration) {
	if e.profiler != nil {
		e.profiler.AddPhase(phase, d)
	}
}

// Step runs a whole tick without yielding, finishing the one in flight if
// there is one, and returns the resulting census.
func (e *Engine) Step() population.Census {
	e.Start()
	for e.Advance(math.MaxInt64) != TickCompleted {
	}
	return e.census
}

// finalize commits the tick and notifies collaborators.
func (e *Engine) finalize() {
	start := e.clock()
	e.census = e.reg.Commit()
	e.tick++
	e.addPhase(systems.PhaseFinalize, e.clock().Sub(start))

	start = e.clock()
	e.Sync()
	e.addPhase(systems.PhaseSync, e.clock().Sub(start))

	if e.stats != nil {
		e.stats.RecordTick(e.tick, e.census)
	}
	slog.Debug("tick_complete", "tick", e.tick, "fish", e.census.Fish, "sharks", e.census.Sharks)

	e.state = StateIdle
	e.sharkPhase = false
	if e.profiler != nil {
		e.profiler.EndTick()
	}
}

// Sync publishes every committed position and the live counts to the
// renderer.
func (e *Engine) Sync() {
	if e.renderer == nil {
		return
	}
	for _, species := range []components.Species{components.SpeciesFish, components.SpeciesShark} {
		n := e.reg.Len(species)
		for i := 0; i < n; i++ {
			e.renderer.SetInstance(species, i, e.reg.Position(e.reg.At(species, i)))
		}
		e.renderer.SetLiveCount(species, n)
	}
}
