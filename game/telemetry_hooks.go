package game

import (
	"log/slog"

	"github.com/pthm-cable/wator/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	tick := g.engine.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		g.logWorldState()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		g.writeSnapshot(&bm)
	}
}

// writeSnapshot saves the lattice, tagged with the bookmark that triggered it.
func (g *Game) writeSnapshot(bm *telemetry.Bookmark) {
	if g.outputManager == nil {
		return
	}
	snap := telemetry.NewSnapshot(g.runID, g.engine.Config(), g.engine.Tick(), g.engine.Registry())
	snap.Bookmark = bm
	path, err := g.outputManager.WriteSnapshot(snap)
	if err != nil {
		slog.Error("failed to write snapshot", "error", err)
		return
	}
	slog.Debug("snapshot", "path", path, "tick", snap.Tick)
}
