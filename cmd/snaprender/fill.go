package main

import (
	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/renderer/instances"
	"github.com/pthm-cable/wator/telemetry"
)

// fillBuffer loads the snapshot's creatures into consecutive render slots.
func fillBuffer(buf *instances.Buffer, snap *telemetry.Snapshot) {
	var counts [2]int
	for _, c := range snap.Creatures {
		species := components.SpeciesFish
		if c.Species == components.SpeciesShark.String() {
			species = components.SpeciesShark
		}
		buf.SetInstance(species, counts[species], components.Position{X: c.X, Y: c.Y, Z: c.Z})
		counts[species]++
	}
	buf.SetLiveCount(components.SpeciesFish, counts[components.SpeciesFish])
	buf.SetLiveCount(components.SpeciesShark, counts[components.SpeciesShark])
}
