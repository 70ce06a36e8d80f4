// Package instances holds the per-species cube positions the 3D scene draws.
package instances

import "github.com/pthm-cable/wator/components"

const speciesCount = 2

// Buffer stores one position per render slot and the live count of each
// species. Capacity is fixed at creation; slots beyond it are dropped.
// It is the renderer side of the step engine's sync.
type Buffer struct {
	capacity  int
	positions [speciesCount][]components.Position
	live      [speciesCount]int
	version   uint64
}

// New creates a buffer holding up to capacity instances per species.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer{capacity: capacity}
	for i := range b.positions {
		b.positions[i] = make([]components.Position, capacity)
	}
	return b
}

func index(species components.Species) (int, bool) {
	i := int(species)
	return i, i >= 0 && i < speciesCount
}

// SetInstance places the cube of a species slot at pos.
func (b *Buffer) SetInstance(species components.Species, slot int, pos components.Position) {
	i, ok := index(species)
	if !ok || slot < 0 || slot >= b.capacity {
		return
	}
	b.positions[i][slot] = pos
	b.version++
}

// SetLiveCount sets how many leading slots of a species are drawn.
func (b *Buffer) SetLiveCount(species components.Species, n int) {
	i, ok := index(species)
	if !ok {
		return
	}
	b.live[i] = min(max(n, 0), b.capacity)
	b.version++
}

// Live returns the number of drawn instances of a species.
func (b *Buffer) Live(species components.Species) int {
	i, ok := index(species)
	if !ok {
		return 0
	}
	return b.live[i]
}

// Positions returns the live positions of a species. The slice aliases the
// buffer and is only valid until the next sync.
func (b *Buffer) Positions(species components.Species) []components.Position {
	i, ok := index(species)
	if !ok {
		return nil
	}
	return b.positions[i][:b.live[i]]
}

// Capacity returns the per-species slot capacity.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Version changes whenever the buffer is written, so the scene can skip
// rebuilding its transforms between ticks.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Reset hides every instance.
func (b *Buffer) Reset() {
	b.live = [speciesCount]int{}
	b.version++
}
