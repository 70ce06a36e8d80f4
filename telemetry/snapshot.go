package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/population"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the lattice contents at the end of a tick.
type Snapshot struct {
	Version  int               `json:"version"`
	RunID    string            `json:"run_id"`
	Settings config.Simulation `json:"settings"`
	Tick     int               `json:"tick"`

	Creatures []CreatureState `json:"creatures"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// CreatureState holds one creature's complete state.
type CreatureState struct {
	Species  string `json:"species"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Z        int    `json:"z"`
	Age      int    `json:"age"`
	Maturity int    `json:"maturity"`

	// Sharks only
	Hunger      int `json:"hunger,omitempty"`
	HungerLimit int `json:"hunger_limit,omitempty"`
}

// NewSnapshot captures every live creature of reg, fish first, in slot order.
func NewSnapshot(runID string, settings config.Simulation, tick int, reg *population.Registry) *Snapshot {
	s := &Snapshot{
		Version:   SnapshotVersion,
		RunID:     runID,
		Settings:  settings,
		Tick:      tick,
		Creatures: make([]CreatureState, 0, reg.Len(components.SpeciesFish)+reg.Len(components.SpeciesShark)),
	}
	add := func(c components.Creature) {
		cs := CreatureState{
			Species:  c.Species.String(),
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			Z:        c.Pos.Z,
			Age:      c.Life.Age,
			Maturity: c.Life.Maturity,
		}
		if c.Species == components.SpeciesShark {
			cs.Hunger = c.Hunger.Timer
			cs.HungerLimit = c.Hunger.Limit
		}
		s.Creatures = append(s.Creatures, cs)
	}
	reg.Each(components.SpeciesFish, add)
	reg.Each(components.SpeciesShark, add)
	return s
}

// Counts returns the number of fish and sharks in the snapshot.
func (s *Snapshot) Counts() (fish, sharks int) {
	for _, c := range s.Creatures {
		if c.Species == components.SpeciesShark.String() {
			sharks++
		} else {
			fish++
		}
	}
	return fish, sharks
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}
