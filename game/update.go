package game

import (
	"log/slog"

	"github.com/pthm-cable/wator/sim"
)

// Update runs one frame: input, then at most one time slice of engine work.
// A new tick starts only when the player allows it and no tick is in flight.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.handleInput()

	if !g.engine.Busy() && g.player.ShouldStart(g.now()) {
		g.engine.Start()
	}

	if g.engine.Advance(g.cfg.Derived.TimeSlice) == sim.TickCompleted {
		g.onTickComplete()
	}
}

// UpdateHeadless runs one whole tick without yielding.
func (g *Game) UpdateHeadless() {
	g.engine.Step()
	g.onTickComplete()
}

// onTickComplete runs the per-tick bookkeeping after a commit.
func (g *Game) onTickComplete() {
	tick := g.engine.Tick()
	fish, sharks := g.engine.Counts()

	if row, ok := g.collector.History().Latest(); ok {
		if err := g.outputManager.WriteTick(row); err != nil {
			slog.Error("failed to write tick", "error", err)
		}
	}

	g.flushTelemetry()

	if g.cfg.Telemetry.StopOnExtinction && (fish == 0 || sharks == 0) && g.player.Playing() {
		g.player.Pause()
		slog.Info("extinction", "tick", tick, "fish", fish, "sharks", sharks)
	}
}

// Extinct reports whether both species have died out, after which no tick
// can change anything.
func (g *Game) Extinct() bool {
	fish, sharks := g.engine.Counts()
	return fish == 0 && sharks == 0
}
