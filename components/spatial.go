package components

import "fmt"

// Position is a cell coordinate in the lattice. Coordinates are 0-based.
type Position struct {
	X, Y, Z int
}

// Offset is a relative step between neighboring cells.
type Offset struct {
	DX, DY, DZ int
}

// Add returns the position shifted by the offset.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY, Z: p.Z + o.DZ}
}

// String formats the position the way the creature info panel shows it.
func (p Position) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", p.X, p.Y, p.Z)
}

// Dims holds the lattice extents along each axis.
type Dims struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	Z int `yaml:"z" json:"z"`
}

// Volume returns the number of cells in the lattice.
func (d Dims) Volume() int {
	return d.X * d.Y * d.Z
}

// Center returns the geometric center of the lattice in cell units.
func (d Dims) Center() (x, y, z float32) {
	return float32(d.X-1) / 2, float32(d.Y-1) / 2, float32(d.Z-1) / 2
}
