package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/wator/components"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	sim := cfg.Simulation
	if sim.Dimensions != (components.Dims{X: 100, Y: 100, Z: 100}) {
		t.Errorf("dimensions = %+v, want 100x100x100", sim.Dimensions)
	}
	if sim.Boundary != BoundaryNone {
		t.Errorf("boundary = %q, want none", sim.Boundary)
	}
	if !sim.Neighbors.Faces || !sim.Neighbors.Edges || !sim.Neighbors.Corners {
		t.Errorf("neighbors = %+v, want all enabled", sim.Neighbors)
	}
	if sim.Fish.Count != 100 || sim.Fish.MaturityAge != 10 {
		t.Errorf("fish = %+v, want 100/10", sim.Fish)
	}
	if sim.Shark.Count != 100 || sim.Shark.MaturityAge != 50 || sim.Shark.StarveLimit != 110 {
		t.Errorf("shark = %+v, want 100/50/110", sim.Shark)
	}
	if cfg.Derived.TimeSlice != 8*time.Millisecond {
		t.Errorf("time slice = %v, want 8ms", cfg.Derived.TimeSlice)
	}
	if cfg.Derived.TickInterval != 100*time.Millisecond {
		t.Errorf("tick interval = %v, want 100ms", cfg.Derived.TickInterval)
	}
	if cfg.Derived.Capacity != 1000000 {
		t.Errorf("capacity = %d, want 1000000", cfg.Derived.Capacity)
	}
	if cfg.Telemetry.HistorySize != 200 {
		t.Errorf("history size = %d, want 200", cfg.Telemetry.HistorySize)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wator.yaml")
	override := []byte(`
simulation:
  dimensions: {x: 10, y: 10, z: 10}
  boundary: verbunden
scheduler:
  time_slice_ms: 4
`)
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Boundary != BoundaryWrapped {
		t.Errorf("boundary = %q, want wrapped", cfg.Simulation.Boundary)
	}
	if cfg.Simulation.Dimensions.Volume() != 1000 {
		t.Errorf("volume = %d, want 1000", cfg.Simulation.Dimensions.Volume())
	}
	// untouched fields keep their defaults
	if cfg.Simulation.Shark.StarveLimit != 110 {
		t.Errorf("starve limit = %d, want default 110", cfg.Simulation.Shark.StarveLimit)
	}
	if cfg.Derived.TimeSlice != 4*time.Millisecond {
		t.Errorf("time slice = %v, want 4ms", cfg.Derived.TimeSlice)
	}
	if cfg.Derived.Capacity != 1000 {
		t.Errorf("capacity = %d, want 1000", cfg.Derived.Capacity)
	}
}

func TestLoadRejectsInvalidSimulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  dimensions: {x: 3, y: 3, z: 1}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrTooSmall) {
		t.Errorf("Load error = %v, want ErrTooSmall", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Boundary = BoundaryWrapped
	cfg.Simulation.Fish.Count = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Simulation != cfg.Simulation {
		t.Errorf("simulation = %+v, want %+v", got.Simulation, cfg.Simulation)
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in      string
		want    Boundary
		wantErr bool
	}{
		{"none", BoundaryNone, false},
		{"keine", BoundaryNone, false},
		{"Wand", BoundaryWall, false},
		{"wall", BoundaryWall, false},
		{"verbunden", BoundaryWrapped, false},
		{" WRAPPED ", BoundaryWrapped, false},
		{"mirror", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBoundary(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBoundary) {
					t.Errorf("error = %v, want ErrUnknownBoundary", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseBoundary(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func validSimulation() Simulation {
	return Simulation{
		Dimensions: components.Dims{X: 10, Y: 10, Z: 10},
		Boundary:   BoundaryNone,
		Neighbors:  Neighbors{Faces: true},
		Fish:       FishConfig{Count: 5, MaturityAge: 3},
		Shark:      SharkConfig{Count: 2, MaturityAge: 6, StarveLimit: 4},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Simulation)
		want   error
	}{
		{"valid", func(s *Simulation) {}, nil},
		{"product exactly ten", func(s *Simulation) { s.Dimensions = components.Dims{X: 10, Y: 1, Z: 1} }, nil},
		{"too small", func(s *Simulation) { s.Dimensions = components.Dims{X: 3, Y: 3, Z: 1} }, ErrTooSmall},
		{"negative extent", func(s *Simulation) { s.Dimensions.Y = -2 }, ErrNegative},
		{"no neighbors", func(s *Simulation) { s.Neighbors = Neighbors{} }, ErrNoNeighbors},
		{"negative fish", func(s *Simulation) { s.Fish.Count = -1 }, ErrNegative},
		{"negative starve", func(s *Simulation) { s.Shark.StarveLimit = -1 }, ErrNegative},
		{"unknown boundary", func(s *Simulation) { s.Boundary = "mirror" }, ErrUnknownBoundary},
		{"alias label not canonical", func(s *Simulation) { s.Boundary = "verbunden" }, ErrUnknownBoundary},
		{"uppercase constant", func(s *Simulation) { s.Boundary = "WRAPPED" }, ErrUnknownBoundary},
		{"wall", func(s *Simulation) { s.Boundary = BoundaryWall }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSimulation()
			tt.mutate(&s)
			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSanitizeCoercesZeroExtents(t *testing.T) {
	s := Simulation{Dimensions: components.Dims{X: 20, Y: 0, Z: 0}}
	s.Sanitize()
	if s.Dimensions != (components.Dims{X: 20, Y: 1, Z: 1}) {
		t.Errorf("dimensions = %+v, want 20x1x1", s.Dimensions)
	}
	if s.Boundary != BoundaryNone {
		t.Errorf("boundary = %q, want none", s.Boundary)
	}
}

func TestSettingsJSONRoundTrip(t *testing.T) {
	want := validSimulation()
	want.Boundary = BoundaryWrapped
	want.Neighbors = Neighbors{Faces: true, Corners: true}

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := want.SaveSettings(path); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestParseSettingsLegacyLabels(t *testing.T) {
	data := []byte(`{
  "dimensions": {"x": 5, "y": 5, "z": 0},
  "boundaryPolicy": "verbunden",
  "neighbors": {"faces": true, "edges": false, "corners": false},
  "fish": {"count": 3, "maturityAge": 2},
  "shark": {"count": 1, "maturityAge": 4, "starveLimit": 3}
}`)
	s, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.Boundary != BoundaryWrapped {
		t.Errorf("boundary = %q, want wrapped", s.Boundary)
	}
	if s.Dimensions.Z != 1 {
		t.Errorf("z = %d, want coerced to 1", s.Dimensions.Z)
	}
	if s.Shark.StarveLimit != 3 {
		t.Errorf("starve limit = %d, want 3", s.Shark.StarveLimit)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#2ecc71", color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}, false},
		{"e74c3c80", color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0x80}, false},
		{" #000000 ", color.RGBA{A: 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("render:\n  fish_color: green\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestNeighborsSetKeepsOneEnabled(t *testing.T) {
	tests := []struct {
		name  string
		start Neighbors
		class NeighborClass
		on    bool
		want  Neighbors
	}{
		{"disable one of three", Neighbors{true, true, true}, NeighborEdges, false, Neighbors{true, false, true}},
		{"enable", Neighbors{Faces: true}, NeighborCorners, true, Neighbors{Faces: true, Corners: true}},
		{"refuse last", Neighbors{Faces: true}, NeighborFaces, false, Neighbors{Faces: true}},
		{"disable other when single", Neighbors{Edges: true}, NeighborCorners, false, Neighbors{Edges: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Set(tt.class, tt.on); got != tt.want {
				t.Errorf("Set = %+v, want %+v", got, tt.want)
			}
		})
	}
}
