package game

import "log/slog"

// logWorldState logs the registry of the current run and verifies that no
// two creatures share a cell.
func (g *Game) logWorldState() {
	reg := g.engine.Registry()
	census := g.engine.Census()
	d := reg.Dims()

	occupied := census.Fish + census.Sharks
	fill := 0.0
	if v := d.Volume(); v > 0 {
		fill = float64(occupied) / float64(v)
	}

	slog.Info("world",
		"run", g.runID,
		"tick", g.engine.Tick(),
		"fish", census.Fish,
		"sharks", census.Sharks,
		"entities", reg.Entities(),
		"fill", fill,
	)

	if problem := reg.Check(); problem != "" {
		slog.Warn("registry_inconsistent", "tick", g.engine.Tick(), "problem", problem)
	}
}
