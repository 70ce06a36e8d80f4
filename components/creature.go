// Package components defines the ECS components of fish and sharks.
package components

// Creature is a value snapshot of one creature, used for inspection,
// rendering and tests. Hunger is only meaningful for sharks.
type Creature struct {
	Species Species
	Pos     Position
	Life    Life
	Hunger  Hunger
	Slot    int
}

// Info returns the fields shown when hovering a creature.
func (c Creature) Info() map[string]any {
	info := map[string]any{
		"type":     c.Species.String(),
		"age":      c.Life.Age,
		"maturity": c.Life.Maturity,
		"position": c.Pos.String(),
	}
	if c.Species == SpeciesShark {
		info["hunger"] = c.Hunger.Timer
		info["max_hunger"] = c.Hunger.Limit
	}
	return info
}
