// Package systems provides the lattice rules shared by the step engine:
// neighbor offsets, boundary resolution and neighbor queries.
package systems

import (
	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
)

// Offsets of the 3x3x3 neighborhood, grouped by how they touch the origin.
// The order is fixed so tests against a scripted random source are stable.
var (
	faceOffsets = []components.Offset{
		{DX: -1}, {DX: 1},
		{DY: -1}, {DY: 1},
		{DZ: -1}, {DZ: 1},
	}
	edgeOffsets = []components.Offset{
		{DX: -1, DY: -1}, {DX: -1, DY: 1}, {DX: 1, DY: -1}, {DX: 1, DY: 1},
		{DX: -1, DZ: -1}, {DX: -1, DZ: 1}, {DX: 1, DZ: -1}, {DX: 1, DZ: 1},
		{DY: -1, DZ: -1}, {DY: -1, DZ: 1}, {DY: 1, DZ: -1}, {DY: 1, DZ: 1},
	}
	cornerOffsets = []components.Offset{
		{DX: -1, DY: -1, DZ: -1}, {DX: -1, DY: -1, DZ: 1},
		{DX: -1, DY: 1, DZ: -1}, {DX: -1, DY: 1, DZ: 1},
		{DX: 1, DY: -1, DZ: -1}, {DX: 1, DY: -1, DZ: 1},
		{DX: 1, DY: 1, DZ: -1}, {DX: 1, DY: 1, DZ: 1},
	}
)

// Occupancy answers cell queries against the live population.
type Occupancy interface {
	// Occupied reports whether any creature holds p.
	Occupied(p components.Position) bool
	// FishAt reports whether a live fish holds p.
	FishAt(p components.Position) bool
}

// NeighborOffsets returns faces, then edges, then corners, as selected.
// With every flag off the result is empty and nothing can move.
func NeighborOffsets(adj config.Neighbors) []components.Offset {
	offsets := make([]components.Offset, 0, 26)
	if adj.Faces {
		offsets = append(offsets, faceOffsets...)
	}
	if adj.Edges {
		offsets = append(offsets, edgeOffsets...)
	}
	if adj.Corners {
		offsets = append(offsets, cornerOffsets...)
	}
	return offsets
}

// Normalize wraps pos into the lattice when the boundary wraps and returns
// it unchanged otherwise.
func Normalize(pos components.Position, dims components.Dims, boundary config.Boundary) components.Position {
	if !boundary.Wraps() {
		return pos
	}
	return components.Position{
		X: wrap(pos.X, dims.X),
		Y: wrap(pos.Y, dims.Y),
		Z: wrap(pos.Z, dims.Z),
	}
}

// wrap maps v into [0, d), including negative v.
func wrap(v, d int) int {
	return ((v % d) + d) % d
}

// InBounds reports whether every axis of pos lies in [0, dim).
func InBounds(pos components.Position, dims components.Dims) bool {
	return pos.X >= 0 && pos.X < dims.X &&
		pos.Y >= 0 && pos.Y < dims.Y &&
		pos.Z >= 0 && pos.Z < dims.Z
}

// Resolve applies off to pos under the boundary policy. The second result
// is false when the target falls off a hard edge.
func Resolve(pos components.Position, off components.Offset, dims components.Dims, boundary config.Boundary) (components.Position, bool) {
	target := Normalize(pos.Add(off), dims, boundary)
	return target, InBounds(target, dims)
}

// Occupied reports whether any creature holds pos.
func Occupied(pos components.Position, occ Occupancy) bool {
	return occ.Occupied(pos)
}

// EmptyNeighborsInto appends the unoccupied in-bounds neighbors of pos to dst
// in offset order. Reuse dst across calls to avoid allocations.
func EmptyNeighborsInto(dst []components.Position, pos components.Position, offsets []components.Offset, dims components.Dims, boundary config.Boundary, occ Occupancy) []components.Position {
	for _, off := range offsets {
		target, ok := Resolve(pos, off, dims, boundary)
		if !ok || occ.Occupied(target) {
			continue
		}
		dst = append(dst, target)
	}
	return dst
}

// FishNeighborsInto appends the in-bounds neighbors of pos held by a fish.
func FishNeighborsInto(dst []components.Position, pos components.Position, offsets []components.Offset, dims components.Dims, boundary config.Boundary, occ Occupancy) []components.Position {
	for _, off := range offsets {
		target, ok := Resolve(pos, off, dims, boundary)
		if !ok || !occ.FishAt(target) {
			continue
		}
		dst = append(dst, target)
	}
	return dst
}

// EmptyNeighbors returns the unoccupied neighbors of pos in offset order.
func EmptyNeighbors(pos components.Position, offsets []components.Offset, dims components.Dims, boundary config.Boundary, occ Occupancy) []components.Position {
	return EmptyNeighborsInto(nil, pos, offsets, dims, boundary, occ)
}

// FishNeighbors returns the neighbors of pos held by a fish in offset order.
func FishNeighbors(pos components.Position, offsets []components.Offset, dims components.Dims, boundary config.Boundary, occ Occupancy) []components.Position {
	return FishNeighborsInto(nil, pos, offsets, dims, boundary, occ)
}
