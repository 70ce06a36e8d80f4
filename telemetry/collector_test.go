package telemetry

import (
	"testing"

	"github.com/pthm-cable/wator/population"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(3, 10)

	censuses := []population.Census{
		{Fish: 10, Sharks: 2, FishBorn: 3},
		{Fish: 12, Sharks: 3, FishBorn: 2, SharksBorn: 1},
		{Fish: 8, Sharks: 3, FishEaten: 4},
	}
	for i, cen := range censuses {
		tick := i + 1
		c.RecordTick(tick, cen)
		if tick < 3 && c.ShouldFlush(tick) {
			t.Fatalf("tick %d: window flushed early", tick)
		}
	}

	if !c.ShouldFlush(3) {
		t.Fatal("window of 3 ticks should flush at tick 3")
	}
	w := c.Flush(3)

	if w.WindowStartTick != 0 || w.WindowEndTick != 3 {
		t.Errorf("window = %d..%d, want 0..3", w.WindowStartTick, w.WindowEndTick)
	}
	if w.Fish != 8 || w.Sharks != 3 {
		t.Errorf("end counts = %d/%d, want 8/3", w.Fish, w.Sharks)
	}
	if w.FishBorn != 5 || w.SharksBorn != 1 || w.FishEaten != 4 {
		t.Errorf("events = %+v", w)
	}
	if w.FishMean != 10 {
		t.Errorf("fish mean = %v, want 10", w.FishMean)
	}

	// counters reset for the next window
	c.RecordTick(4, population.Census{Fish: 8, Sharks: 3})
	next := c.Flush(4)
	if next.FishBorn != 0 || next.WindowStartTick != 3 {
		t.Errorf("next window = %+v", next)
	}
	if c.History().Len() != 4 {
		t.Errorf("history len = %d, want 4", c.History().Len())
	}

	tick, last := c.Last()
	if tick != 4 || last.Fish != 8 {
		t.Errorf("Last() = %d %+v", tick, last)
	}
}
