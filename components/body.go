package components

// Species tags a creature as fish or shark.
type Species uint8

const (
	SpeciesFish Species = iota
	SpeciesShark
)

// String returns the display name of the species.
func (s Species) String() string {
	switch s {
	case SpeciesFish:
		return "fish"
	case SpeciesShark:
		return "shark"
	default:
		return "unknown"
	}
}

// Slot is the dense render index of a creature within its species.
// It is reassigned to 0..N-1 after every tick.
type Slot struct {
	Index int
}
