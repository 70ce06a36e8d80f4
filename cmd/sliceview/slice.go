package main

import (
	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/population"
)

// cell is the content of one lattice cell in a slice.
type cell uint8

const (
	cellEmpty cell = iota
	cellFish
	cellShark
)

// layer returns the z-layer of the lattice as rows of cells, indexed [y][x].
func layer(reg *population.Registry, z int) [][]cell {
	d := reg.Dims()
	rows := make([][]cell, d.Y)
	for y := range rows {
		rows[y] = make([]cell, d.X)
	}
	if z < 0 || z >= d.Z {
		return rows
	}

	mark := func(c cell) func(components.Creature) {
		return func(cr components.Creature) {
			if cr.Pos.Z == z {
				rows[cr.Pos.Y][cr.Pos.X] = c
			}
		}
	}
	reg.Each(components.SpeciesFish, mark(cellFish))
	reg.Each(components.SpeciesShark, mark(cellShark))
	return rows
}

// layerCounts counts fish and sharks in a slice.
func layerCounts(rows [][]cell) (fish, sharks int) {
	for _, row := range rows {
		for _, c := range row {
			switch c {
			case cellFish:
				fish++
			case cellShark:
				sharks++
			}
		}
	}
	return fish, sharks
}
