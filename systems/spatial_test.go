package systems

import (
	"testing"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
)

// grid is a map-backed Occupancy for tests.
type grid struct {
	fish   map[components.Position]bool
	sharks map[components.Position]bool
}

func newGrid() *grid {
	return &grid{
		fish:   make(map[components.Position]bool),
		sharks: make(map[components.Position]bool),
	}
}

func (g *grid) Occupied(p components.Position) bool { return g.fish[p] || g.sharks[p] }
func (g *grid) FishAt(p components.Position) bool   { return g.fish[p] }

func TestNeighborOffsetsCounts(t *testing.T) {
	tests := []struct {
		name string
		adj  config.Neighbors
		want int
	}{
		{"faces", config.Neighbors{Faces: true}, 6},
		{"edges", config.Neighbors{Edges: true}, 12},
		{"corners", config.Neighbors{Corners: true}, 8},
		{"faces and corners", config.Neighbors{Faces: true, Corners: true}, 14},
		{"all", config.Neighbors{Faces: true, Edges: true, Corners: true}, 26},
		{"none", config.Neighbors{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeighborOffsets(tt.adj)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNeighborOffsetsAreDistinctUnitSteps(t *testing.T) {
	offsets := NeighborOffsets(config.Neighbors{Faces: true, Edges: true, Corners: true})
	seen := make(map[components.Offset]bool)
	for _, o := range offsets {
		if o == (components.Offset{}) {
			t.Error("origin must not be a neighbor")
		}
		if abs(o.DX) > 1 || abs(o.DY) > 1 || abs(o.DZ) > 1 {
			t.Errorf("offset %+v leaves the 3x3x3 block", o)
		}
		if seen[o] {
			t.Errorf("duplicate offset %+v", o)
		}
		seen[o] = true
	}
}

func TestNeighborOffsetsOrder(t *testing.T) {
	offsets := NeighborOffsets(config.Neighbors{Faces: true, Edges: true, Corners: true})

	// faces first
	if offsets[0] != (components.Offset{DX: -1}) || offsets[5] != (components.Offset{DZ: 1}) {
		t.Errorf("faces out of order: %+v", offsets[:6])
	}
	// then edges
	if offsets[6] != (components.Offset{DX: -1, DY: -1}) {
		t.Errorf("first edge = %+v", offsets[6])
	}
	// corners last
	if offsets[25] != (components.Offset{DX: 1, DY: 1, DZ: 1}) {
		t.Errorf("last corner = %+v", offsets[25])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNormalize(t *testing.T) {
	dims := components.Dims{X: 10, Y: 5, Z: 3}

	tests := []struct {
		name     string
		pos      components.Position
		boundary config.Boundary
		want     components.Position
	}{
		{"wrapped inside", components.Position{X: 3, Y: 2, Z: 1}, config.BoundaryWrapped, components.Position{X: 3, Y: 2, Z: 1}},
		{"wrapped negative", components.Position{X: -1, Y: -1, Z: -1}, config.BoundaryWrapped, components.Position{X: 9, Y: 4, Z: 2}},
		{"wrapped overflow", components.Position{X: 10, Y: 5, Z: 3}, config.BoundaryWrapped, components.Position{}},
		{"wrapped far negative", components.Position{X: -21}, config.BoundaryWrapped, components.Position{X: 9}},
		{"none unchanged", components.Position{X: -1, Y: 7}, config.BoundaryNone, components.Position{X: -1, Y: 7}},
		{"wall unchanged", components.Position{X: 10}, config.BoundaryWall, components.Position{X: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.pos, dims, tt.boundary)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	dims := components.Dims{X: 4, Y: 4, Z: 4}
	tests := []struct {
		pos  components.Position
		want bool
	}{
		{components.Position{}, true},
		{components.Position{X: 3, Y: 3, Z: 3}, true},
		{components.Position{X: 4}, false},
		{components.Position{Y: -1}, false},
		{components.Position{Z: 4}, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.pos, dims); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestEmptyNeighborsBoundary(t *testing.T) {
	dims := components.Dims{X: 10, Y: 10, Z: 10}
	faces := NeighborOffsets(config.Neighbors{Faces: true})
	corner := components.Position{}

	tests := []struct {
		name     string
		boundary config.Boundary
		want     int
	}{
		{"none drops off-grid cells", config.BoundaryNone, 3},
		{"wall drops off-grid cells", config.BoundaryWall, 3},
		{"wrapped keeps all", config.BoundaryWrapped, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmptyNeighbors(corner, faces, dims, tt.boundary, newGrid())
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d (%v)", len(got), tt.want, got)
			}
			for _, p := range got {
				if !InBounds(p, dims) {
					t.Errorf("neighbor %v out of bounds", p)
				}
			}
		})
	}
}

func TestEmptyNeighborsSkipsOccupied(t *testing.T) {
	dims := components.Dims{X: 10, Y: 10, Z: 10}
	faces := NeighborOffsets(config.Neighbors{Faces: true})
	g := newGrid()
	center := components.Position{X: 5, Y: 5, Z: 5}
	g.fish[components.Position{X: 4, Y: 5, Z: 5}] = true
	g.sharks[components.Position{X: 6, Y: 5, Z: 5}] = true

	got := EmptyNeighbors(center, faces, dims, config.BoundaryNone, g)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 (%v)", len(got), got)
	}
	// order follows offsets: -y, +y, -z, +z
	if got[0] != (components.Position{X: 5, Y: 4, Z: 5}) {
		t.Errorf("first empty neighbor = %v, want 5,4,5", got[0])
	}

	fish := FishNeighbors(center, faces, dims, config.BoundaryNone, g)
	if len(fish) != 1 || fish[0] != (components.Position{X: 4, Y: 5, Z: 5}) {
		t.Errorf("fish neighbors = %v, want [4,5,5]", fish)
	}
}

func TestFishNeighborsWrap(t *testing.T) {
	dims := components.Dims{X: 10, Y: 10, Z: 10}
	faces := NeighborOffsets(config.Neighbors{Faces: true})
	g := newGrid()
	g.fish[components.Position{X: 9}] = true

	if got := FishNeighbors(components.Position{}, faces, dims, config.BoundaryWrapped, g); len(got) != 1 {
		t.Errorf("wrapped: fish neighbors = %v, want one", got)
	}
	if got := FishNeighbors(components.Position{}, faces, dims, config.BoundaryNone, g); len(got) != 0 {
		t.Errorf("bounded: fish neighbors = %v, want none", got)
	}
}

func TestEmptyNeighborsIntoReusesBuffer(t *testing.T) {
	dims := components.Dims{X: 10, Y: 10, Z: 10}
	faces := NeighborOffsets(config.Neighbors{Faces: true})
	buf := make([]components.Position, 0, 26)

	buf = EmptyNeighborsInto(buf[:0], components.Position{X: 5, Y: 5, Z: 5}, faces, dims, config.BoundaryNone, newGrid())
	if len(buf) != 6 {
		t.Errorf("len = %d, want 6", len(buf))
	}
	buf = EmptyNeighborsInto(buf[:0], components.Position{}, faces, dims, config.BoundaryNone, newGrid())
	if len(buf) != 3 {
		t.Errorf("len after reuse = %d, want 3", len(buf))
	}
}

func TestResolveNoNeighborsMeansNoMoves(t *testing.T) {
	dims := components.Dims{X: 10, Y: 10, Z: 10}
	got := EmptyNeighbors(components.Position{X: 1}, NeighborOffsets(config.Neighbors{}), dims, config.BoundaryWrapped, newGrid())
	if len(got) != 0 {
		t.Errorf("got %v, want no neighbors", got)
	}
}

func TestPhaseRegistry(t *testing.T) {
	reg := NewPhaseRegistry()
	ids := reg.IDs()
	want := []string{PhaseFish, PhaseSharks, PhaseFinalize, PhaseSync}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
	if reg.GetName(PhaseSharks) != "Sharks" {
		t.Errorf("GetName(sharks) = %q", reg.GetName(PhaseSharks))
	}
	if reg.GetName("unknown") != "unknown" {
		t.Error("unknown IDs should fall back to the ID")
	}
}
