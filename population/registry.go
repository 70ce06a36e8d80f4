// Package population owns the live fish and sharks of a run.
//
// Creatures are ECS entities. The registry keeps them in insertion-ordered
// lists for the step engine, an occupancy index for neighbor queries, and
// per-tick buffers of dead marks and pending births that Commit folds in.
package population

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/rng"
)

// Census summarizes the population after a commit.
type Census struct {
	Fish          int
	Sharks        int
	FishBorn      int
	SharksBorn    int
	FishEaten     int
	SharksStarved int
}

// Registry holds the authoritative population.
type Registry struct {
	world *ecs.World
	dims  components.Dims

	fishMapper *ecs.Map4[
		components.Species,
		components.Position,
		components.Life,
		components.Slot,
	]
	sharkMapper *ecs.Map5[
		components.Species,
		components.Position,
		components.Life,
		components.Hunger,
		components.Slot,
	]
	liveFilter *ecs.Filter2[components.Species, components.Position]

	speciesMap *ecs.Map1[components.Species]
	posMap     *ecs.Map1[components.Position]
	lifeMap    *ecs.Map1[components.Life]
	hungerMap  *ecs.Map1[components.Hunger]
	slotMap    *ecs.Map1[components.Slot]

	fish   []ecs.Entity
	sharks []ecs.Entity

	// cells maps every occupied or reserved cell to its holder
	cells map[components.Position]ecs.Entity

	dead        map[ecs.Entity]struct{}
	fishBirths  []ecs.Entity
	sharkBirths []ecs.Entity
	pending     map[ecs.Entity]struct{}
}

// New creates an empty registry for a lattice of the given extents.
func New(dims components.Dims) *Registry {
	world := ecs.NewWorld()

	return &Registry{
		world: world,
		dims:  dims,
		fishMapper: ecs.NewMap4[
			components.Species,
			components.Position,
			components.Life,
			components.Slot,
		](world),
		sharkMapper: ecs.NewMap5[
			components.Species,
			components.Position,
			components.Life,
			components.Hunger,
			components.Slot,
		](world),
		liveFilter: ecs.NewFilter2[components.Species, components.Position](world),
		speciesMap: ecs.NewMap1[components.Species](world),
		posMap:     ecs.NewMap1[components.Position](world),
		lifeMap:    ecs.NewMap1[components.Life](world),
		hungerMap:  ecs.NewMap1[components.Hunger](world),
		slotMap:    ecs.NewMap1[components.Slot](world),
		cells:      make(map[components.Position]ecs.Entity),
		dead:       make(map[ecs.Entity]struct{}),
		pending:    make(map[ecs.Entity]struct{}),
	}
}

// Dims returns the lattice extents.
func (r *Registry) Dims() components.Dims {
	return r.dims
}

// spawn creates the entity for a creature without registering it in a list.
func (r *Registry) spawn(species components.Species, pos components.Position, maturity, starveLimit, age int) ecs.Entity {
	life := components.Life{Age: age, Maturity: maturity}
	slot := components.Slot{Index: -1}

	var e ecs.Entity
	if species == components.SpeciesShark {
		hunger := components.Hunger{Limit: starveLimit}
		e = r.sharkMapper.NewEntity(&species, &pos, &life, &hunger, &slot)
	} else {
		e = r.fishMapper.NewEntity(&species, &pos, &life, &slot)
	}
	r.cells[pos] = e
	return e
}

// Place adds a creature at pos with a random initial age of 0 or 1.
// It returns false if pos is outside the lattice or already taken.
func (r *Registry) Place(species components.Species, pos components.Position, maturity, starveLimit int, src rng.Source) (ecs.Entity, bool) {
	if !r.inside(pos) || r.Occupied(pos) {
		return ecs.Entity{}, false
	}
	e := r.spawn(species, pos, maturity, starveLimit, rng.Coin(src))
	r.slotMap.Get(e).Index = r.appendLive(species, e)
	return e, true
}

// appendLive appends e to its species list and returns its slot.
func (r *Registry) appendLive(species components.Species, e ecs.Entity) int {
	if species == components.SpeciesShark {
		r.sharks = append(r.sharks, e)
		return len(r.sharks) - 1
	}
	r.fish = append(r.fish, e)
	return len(r.fish) - 1
}

func (r *Registry) inside(p components.Position) bool {
	return p.X >= 0 && p.X < r.dims.X &&
		p.Y >= 0 && p.Y < r.dims.Y &&
		p.Z >= 0 && p.Z < r.dims.Z
}

// FindEmpty draws up to attempts random cells and returns the first free one.
func (r *Registry) FindEmpty(src rng.Source, attempts int) (components.Position, bool) {
	for i := 0; i < attempts; i++ {
		p := components.Position{
			X: rng.Pick(src, r.dims.X),
			Y: rng.Pick(src, r.dims.Y),
			Z: rng.Pick(src, r.dims.Z),
		}
		if !r.Occupied(p) {
			return p, true
		}
	}
	return components.Position{}, false
}

// PlaceRandom places up to count creatures on random free cells and returns
// how many were placed. Creatures that find no free cell within attempts
// draws are skipped.
func (r *Registry) PlaceRandom(species components.Species, count, maturity, starveLimit, attempts int, src rng.Source) int {
	placed := 0
	for i := 0; i < count; i++ {
		pos, ok := r.FindEmpty(src, attempts)
		if !ok {
			continue
		}
		if _, ok := r.Place(species, pos, maturity, starveLimit, src); ok {
			placed++
		}
	}
	return placed
}

// Len returns the number of live creatures of a species, excluding
// births pending this tick.
func (r *Registry) Len(species components.Species) int {
	if species == components.SpeciesShark {
		return len(r.sharks)
	}
	return len(r.fish)
}

// At returns the i-th creature of a species in insertion order.
func (r *Registry) At(species components.Species, i int) ecs.Entity {
	if species == components.SpeciesShark {
		return r.sharks[i]
	}
	return r.fish[i]
}

// Get returns a value snapshot of a creature.
func (r *Registry) Get(e ecs.Entity) components.Creature {
	c := components.Creature{
		Species: *r.speciesMap.Get(e),
		Pos:     *r.posMap.Get(e),
		Life:    *r.lifeMap.Get(e),
		Slot:    r.slotMap.Get(e).Index,
	}
	if c.Species == components.SpeciesShark {
		c.Hunger = *r.hungerMap.Get(e)
	}
	return c
}

// Position returns the cell a creature holds.
func (r *Registry) Position(e ecs.Entity) components.Position {
	return *r.posMap.Get(e)
}

// Life returns the mutable age component of a creature.
func (r *Registry) Life(e ecs.Entity) *components.Life {
	return r.lifeMap.Get(e)
}

// Hunger returns the mutable starvation component of a shark.
func (r *Registry) Hunger(e ecs.Entity) *components.Hunger {
	return r.hungerMap.Get(e)
}

// Move relocates a creature. The vacated cell is released only if the
// creature still holds it.
func (r *Registry) Move(e ecs.Entity, to components.Position) {
	pos := r.posMap.Get(e)
	if r.cells[*pos] == e {
		delete(r.cells, *pos)
	}
	*pos = to
	r.cells[to] = e
}

// MarkDead flags a creature for removal at the next commit. It keeps its
// cell until then unless another creature moves onto it.
func (r *Registry) MarkDead(e ecs.Entity) {
	r.dead[e] = struct{}{}
}

// IsDead reports whether a creature was marked dead this tick.
func (r *Registry) IsDead(e ecs.Entity) bool {
	_, ok := r.dead[e]
	return ok
}

// Occupied reports whether any creature, live or newborn, holds p.
func (r *Registry) Occupied(p components.Position) bool {
	_, ok := r.cells[p]
	return ok
}

// FishEntityAt returns the edible fish at p: live, not eaten, and not born
// this tick.
func (r *Registry) FishEntityAt(p components.Position) (ecs.Entity, bool) {
	e, ok := r.cells[p]
	if !ok {
		return ecs.Entity{}, false
	}
	if *r.speciesMap.Get(e) != components.SpeciesFish {
		return ecs.Entity{}, false
	}
	if _, born := r.pending[e]; born {
		return ecs.Entity{}, false
	}
	if r.IsDead(e) {
		return ecs.Entity{}, false
	}
	return e, true
}

// FishAt reports whether an edible fish holds p.
func (r *Registry) FishAt(p components.Position) bool {
	_, ok := r.FishEntityAt(p)
	return ok
}

// AddBirth creates a newborn at pos with the given initial age. The cell is
// reserved immediately but the newborn joins its species list only at the
// next commit, so it is neither processed nor eaten this tick.
//
// The reservation is deliberate: later movers this tick see the cell as
// occupied, so two creatures never share a cell, while fish queries still
// skip the newborn as prey.
func (r *Registry) AddBirth(species components.Species, pos components.Position, maturity, starveLimit, age int) ecs.Entity {
	e := r.spawn(species, pos, maturity, starveLimit, age)
	r.pending[e] = struct{}{}
	if species == components.SpeciesShark {
		r.sharkBirths = append(r.sharkBirths, e)
	} else {
		r.fishBirths = append(r.fishBirths, e)
	}
	return e
}

// Pending returns the number of births buffered this tick.
func (r *Registry) Pending(species components.Species) int {
	if species == components.SpeciesShark {
		return len(r.sharkBirths)
	}
	return len(r.fishBirths)
}

// Commit removes dead creatures, appends pending births and reassigns dense
// slots in list order.
func (r *Registry) Commit() Census {
	var c Census
	c.FishBorn = len(r.fishBirths)
	c.SharksBorn = len(r.sharkBirths)

	var removed int
	r.fish, removed = r.compact(r.fish, r.fishBirths)
	c.FishEaten = removed
	r.sharks, removed = r.compact(r.sharks, r.sharkBirths)
	c.SharksStarved = removed

	// Second pass: remove entities (list rebuild complete)
	for e := range r.dead {
		pos := *r.posMap.Get(e)
		if r.cells[pos] == e {
			delete(r.cells, pos)
		}
		r.world.RemoveEntity(e)
	}

	clear(r.dead)
	clear(r.pending)
	r.fishBirths = r.fishBirths[:0]
	r.sharkBirths = r.sharkBirths[:0]

	c.Fish = len(r.fish)
	c.Sharks = len(r.sharks)
	return c
}

// compact drops dead entries, appends births and renumbers slots.
func (r *Registry) compact(list, births []ecs.Entity) ([]ecs.Entity, int) {
	kept := list[:0]
	removed := 0
	for _, e := range list {
		if r.IsDead(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	kept = append(kept, births...)
	for i, e := range kept {
		r.slotMap.Get(e).Index = i
	}
	return kept, removed
}

// Each calls fn for every live creature of a species in slot order.
func (r *Registry) Each(species components.Species, fn func(components.Creature)) {
	list := r.fish
	if species == components.SpeciesShark {
		list = r.sharks
	}
	for _, e := range list {
		fn(r.Get(e))
	}
}

// Info returns the inspection fields of the creature in the given slot.
func (r *Registry) Info(species components.Species, slot int) (map[string]any, bool) {
	if slot < 0 || slot >= r.Len(species) {
		return nil, false
	}
	return r.Get(r.At(species, slot)).Info(), true
}

// Entities returns the number of creature entities in the ECS world,
// including pending births and creatures marked dead this tick.
func (r *Registry) Entities() int {
	n := 0
	query := r.liveFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Check verifies that no two creatures share a cell and that slots are dense.
// It returns the first violation found, or "" when consistent.
func (r *Registry) Check() string {
	seen := make(map[components.Position]ecs.Entity)
	query := r.liveFilter.Query()
	for query.Next() {
		e := query.Entity()
		_, pos := query.Get()
		if r.IsDead(e) {
			continue
		}
		if other, dup := seen[*pos]; dup && other != e {
			query.Close()
			return "shared cell " + pos.String()
		}
		seen[*pos] = e
	}

	for _, list := range [][]ecs.Entity{r.fish, r.sharks} {
		for i, e := range list {
			if r.slotMap.Get(e).Index != i {
				return "slot gap"
			}
		}
	}
	return ""
}
