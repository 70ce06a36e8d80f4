package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pthm-cable/wator/components"
)

// Boundary selects how positions outside the lattice are handled.
type Boundary string

const (
	BoundaryNone    Boundary = "none"    // Hard edges
	BoundaryWall    Boundary = "wall"    // Hard edges, same as none
	BoundaryWrapped Boundary = "wrapped" // Toroidal wrap-around on every axis
)

// boundaryAliases maps the labels used by older settings files.
var boundaryAliases = map[string]Boundary{
	"none":      BoundaryNone,
	"keine":     BoundaryNone,
	"wall":      BoundaryWall,
	"wand":      BoundaryWall,
	"wrapped":   BoundaryWrapped,
	"verbunden": BoundaryWrapped,
}

// ParseBoundary converts a label to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	b, ok := boundaryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
	}
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler for YAML and JSON.
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Wraps reports whether the boundary is toroidal.
func (b Boundary) Wraps() bool {
	return b == BoundaryWrapped
}

// Neighbors selects which offsets of the 3x3x3 neighborhood count as adjacent.
type Neighbors struct {
	Faces   bool `yaml:"faces" json:"faces"`
	Edges   bool `yaml:"edges" json:"edges"`
	Corners bool `yaml:"corners" json:"corners"`
}

// Any reports whether at least one neighbor class is enabled.
func (n Neighbors) Any() bool {
	return n.Faces || n.Edges || n.Corners
}

// NeighborClass names one group of the 3x3x3 neighborhood.
type NeighborClass int

const (
	NeighborFaces NeighborClass = iota
	NeighborEdges
	NeighborCorners
)

// Set returns n with the class switched on or off. Switching off the last
// enabled class is refused and n is returned unchanged.
func (n Neighbors) Set(class NeighborClass, on bool) Neighbors {
	next := n
	switch class {
	case NeighborFaces:
		next.Faces = on
	case NeighborEdges:
		next.Edges = on
	case NeighborCorners:
		next.Corners = on
	}
	if !next.Any() {
		return n
	}
	return next
}

// FishConfig holds fish population parameters.
type FishConfig struct {
	Count       int `yaml:"count" json:"count"`
	MaturityAge int `yaml:"maturity_age" json:"maturityAge"`
}

// SharkConfig holds shark population parameters.
type SharkConfig struct {
	Count       int `yaml:"count" json:"count"`
	MaturityAge int `yaml:"maturity_age" json:"maturityAge"`
	StarveLimit int `yaml:"starve_limit" json:"starveLimit"`
}

// Simulation is the configuration a run is constructed from. It is what the
// settings panel edits and what settings files persist.
type Simulation struct {
	Dimensions components.Dims `yaml:"dimensions" json:"dimensions"`
	Boundary   Boundary        `yaml:"boundary" json:"boundaryPolicy"`
	Neighbors  Neighbors       `yaml:"neighbors" json:"neighbors"`
	Fish       FishConfig      `yaml:"fish" json:"fish"`
	Shark      SharkConfig     `yaml:"shark" json:"shark"`
}

// MinVolume is the smallest lattice a run may use.
const MinVolume = 10

// Validation errors.
var (
	ErrTooSmall        = errors.New("dimension product must be at least 10")
	ErrNegative        = errors.New("counts and ages must not be negative")
	ErrNoNeighbors     = errors.New("at least one neighbor class must be enabled")
	ErrUnknownBoundary = errors.New("unknown boundary policy")
)

// Sanitize coerces zero extents to 1 and an empty boundary to none.
func (s *Simulation) Sanitize() {
	if s.Dimensions.X == 0 {
		s.Dimensions.X = 1
	}
	if s.Dimensions.Y == 0 {
		s.Dimensions.Y = 1
	}
	if s.Dimensions.Z == 0 {
		s.Dimensions.Z = 1
	}
	if s.Boundary == "" {
		s.Boundary = BoundaryNone
	}
}

// Validate checks the settings a run can be constructed from.
func (s Simulation) Validate() error {
	d := s.Dimensions
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return fmt.Errorf("dimensions %dx%dx%d: %w", d.X, d.Y, d.Z, ErrNegative)
	}
	if d.Volume() < MinVolume {
		return fmt.Errorf("dimensions %dx%dx%d: %w", d.X, d.Y, d.Z, ErrTooSmall)
	}
	// Labels are canonicalized on parse; only the constants reach the engine
	switch s.Boundary {
	case BoundaryNone, BoundaryWall, BoundaryWrapped:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBoundary, s.Boundary)
	}
	if !s.Neighbors.Any() {
		return ErrNoNeighbors
	}
	if s.Fish.Count < 0 || s.Fish.MaturityAge < 0 {
		return fmt.Errorf("fish: %w", ErrNegative)
	}
	if s.Shark.Count < 0 || s.Shark.MaturityAge < 0 || s.Shark.StarveLimit < 0 {
		return fmt.Errorf("shark: %w", ErrNegative)
	}
	return nil
}

// SaveSettings writes the simulation settings as indented JSON.
func (s Simulation) SaveSettings(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// LoadSettings reads, sanitizes and validates a JSON settings file.
func LoadSettings(path string) (Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Simulation{}, fmt.Errorf("reading settings file: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes, sanitizes and validates JSON settings.
func ParseSettings(data []byte) (Simulation, error) {
	var s Simulation
	if err := json.Unmarshal(data, &s); err != nil {
		return Simulation{}, fmt.Errorf("parsing settings: %w", err)
	}
	s.Sanitize()
	if err := s.Validate(); err != nil {
		return Simulation{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
