package main

import (
	"testing"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/renderer/instances"
	"github.com/pthm-cable/wator/telemetry"
)

func TestFillBuffer(t *testing.T) {
	snap := &telemetry.Snapshot{
		Creatures: []telemetry.CreatureState{
			{Species: "fish", X: 1},
			{Species: "shark", Y: 2},
			{Species: "fish", Z: 3},
		},
	}
	buf := instances.New(8)
	fillBuffer(buf, snap)

	if buf.Live(components.SpeciesFish) != 2 || buf.Live(components.SpeciesShark) != 1 {
		t.Fatalf("live = %d/%d, want 2/1", buf.Live(components.SpeciesFish), buf.Live(components.SpeciesShark))
	}
	fish := buf.Positions(components.SpeciesFish)
	if fish[0] != (components.Position{X: 1}) || fish[1] != (components.Position{Z: 3}) {
		t.Errorf("fish positions = %v", fish)
	}
	if got := buf.Positions(components.SpeciesShark)[0]; got != (components.Position{Y: 2}) {
		t.Errorf("shark position = %v", got)
	}
}
