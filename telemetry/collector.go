// Package telemetry records per-tick population counts and aggregates them
// into windows, bookmarks, performance figures and CSV output.
package telemetry

import "github.com/pthm-cable/wator/population"

// Collector accumulates tick results within windows and produces WindowStats.
// It is the statistics sink of the step engine.
type Collector struct {
	windowDurationTicks int
	windowStartTick     int

	history *History

	// Last recorded tick
	tick   int
	census population.Census

	// Event counters for current window
	fishBorn      int
	sharksBorn    int
	fishEaten     int
	sharksStarved int

	// Count samples for current window
	fishSamples  []float64
	sharkSamples []float64
}

// NewCollector creates a collector flushing every windowTicks ticks and
// keeping historySize rows for the statistics table.
func NewCollector(windowTicks, historySize int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
		history:             NewHistory(historySize),
	}
}

// RecordTick records the census of a completed tick.
func (c *Collector) RecordTick(tick int, census population.Census) {
	c.tick = tick
	c.census = census

	c.history.Add(TickRow{Tick: tick, Fish: census.Fish, Sharks: census.Sharks})

	c.fishBorn += census.FishBorn
	c.sharksBorn += census.SharksBorn
	c.fishEaten += census.FishEaten
	c.sharksStarved += census.SharksStarved
	c.fishSamples = append(c.fishSamples, float64(census.Fish))
	c.sharkSamples = append(c.sharkSamples, float64(census.Sharks))
}

// Last returns the most recently recorded tick and census.
func (c *Collector) Last() (int, population.Census) {
	return c.tick, c.census
}

// History returns the rolling table of recent ticks.
func (c *Collector) History() *History {
	return c.history
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int) WindowStats {
	sum := Summarize(c.fishSamples, c.sharkSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Fish:   c.census.Fish,
		Sharks: c.census.Sharks,

		FishBorn:      c.fishBorn,
		SharksBorn:    c.sharksBorn,
		FishEaten:     c.fishEaten,
		SharksStarved: c.sharksStarved,

		FishMean:    sum.FishMean,
		FishStd:     sum.FishStd,
		FishP10:     sum.FishP10,
		FishP90:     sum.FishP90,
		SharkMean:   sum.SharkMean,
		SharkStd:    sum.SharkStd,
		SharkP10:    sum.SharkP10,
		SharkP90:    sum.SharkP90,
		Correlation: sum.Correlation,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.fishBorn = 0
	c.sharksBorn = 0
	c.fishEaten = 0
	c.sharksStarved = 0
	c.fishSamples = c.fishSamples[:0]
	c.sharkSamples = c.sharkSamples[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}
