package instances

import (
	"math"

	"github.com/pthm-cable/wator/components"
)

// Hit identifies the instance under a ray.
type Hit struct {
	Species  components.Species
	Slot     int
	Distance float32
}

// Pick returns the nearest live instance crossed by the ray from origin
// along dir. Cubes have edge length size and sit centered in their cells.
func (b *Buffer) Pick(origin, dir [3]float32, size float32) (Hit, bool) {
	best := Hit{Distance: float32(math.Inf(1))}
	found := false
	half := size / 2

	for sp := range speciesCount {
		for slot, p := range b.positions[sp][:b.live[sp]] {
			c := [3]float32{float32(p.X) + 0.5, float32(p.Y) + 0.5, float32(p.Z) + 0.5}
			lo := [3]float32{c[0] - half, c[1] - half, c[2] - half}
			hi := [3]float32{c[0] + half, c[1] + half, c[2] + half}
			if t, ok := rayBox(origin, dir, lo, hi); ok && t < best.Distance {
				best = Hit{Species: components.Species(sp), Slot: slot, Distance: t}
				found = true
			}
		}
	}
	return best, found
}

// rayBox is the slab test. It returns the entry distance, or 0 when the
// origin is inside the box.
func rayBox(origin, dir, lo, hi [3]float32) (float32, bool) {
	tmin := float32(0)
	tmax := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
