package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/rng"
	"github.com/pthm-cable/wator/systems"
)

// stepFish ages a fish and tries one random neighbor. A fish that moves and
// is mature leaves a newborn on the cell it vacated.
func (e *Engine) stepFish(f ecs.Entity) {
	if e.reg.IsDead(f) {
		return
	}

	life := e.reg.Life(f)
	components.IncrementAge(life)

	if len(e.offsets) == 0 {
		return
	}
	off := e.offsets[rng.Pick(e.src, len(e.offsets))]
	from := e.reg.Position(f)
	target, ok := systems.Resolve(from, off, e.cfg.Dimensions, e.cfg.Boundary)
	if !ok || e.reg.Occupied(target) {
		return
	}
	e.reg.Move(f, target)

	if !components.CanReproduce(life) {
		return
	}
	components.ResetAge(life, rng.Coin(e.src))
	maturity := life.Maturity

	// life must not be used past this point: adding an entity may move storage
	e.reg.AddBirth(components.SpeciesFish, from, maturity, 0, rng.Coin(e.src))
}

// stepShark ages and starves a shark, then eats a neighboring fish or moves
// to an empty neighbor. A mature shark that moved breeds into an empty
// neighbor of its new cell.
func (e *Engine) stepShark(s ecs.Entity) {
	if e.reg.IsDead(s) {
		return
	}

	life := e.reg.Life(s)
	hunger := e.reg.Hunger(s)
	components.IncrementAge(life)
	components.IncrementHunger(hunger)

	if components.IsStarving(hunger) {
		e.reg.MarkDead(s)
		return
	}

	dims, boundary := e.cfg.Dimensions, e.cfg.Boundary
	pos := e.reg.Position(s)
	moved := false

	e.buf = systems.FishNeighborsInto(e.buf[:0], pos, e.offsets, dims, boundary, e.reg)
	if len(e.buf) > 0 {
		target := e.buf[rng.Pick(e.src, len(e.buf))]
		if prey, ok := e.reg.FishEntityAt(target); ok {
			e.reg.MarkDead(prey)
		}
		e.reg.Move(s, target)
		components.Feed(hunger)
		pos, moved = target, true
	} else {
		e.buf = systems.EmptyNeighborsInto(e.buf[:0], pos, e.offsets, dims, boundary, e.reg)
		if len(e.buf) > 0 {
			target := e.buf[rng.Pick(e.src, len(e.buf))]
			e.reg.Move(s, target)
			pos, moved = target, true
		}
	}

	if !moved || !components.CanReproduce(life) {
		return
	}
	components.ResetAge(life, rng.Coin(e.src))
	maturity, limit := life.Maturity, hunger.Limit

	e.buf = systems.EmptyNeighborsInto(e.buf[:0], pos, e.offsets, dims, boundary, e.reg)
	if len(e.buf) == 0 {
		return
	}
	spot := e.buf[rng.Pick(e.src, len(e.buf))]
	e.reg.AddBirth(components.SpeciesShark, spot, maturity, limit, rng.Coin(e.src))
}
