package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelID uniquely identifies a toggleable panel.
type PanelID string

// Standard panel IDs.
const (
	PanelSettings  PanelID = "settings"
	PanelStats     PanelID = "stats"
	PanelPlayer    PanelID = "player"
	PanelPerf      PanelID = "perf"
	PanelBounds    PanelID = "bounds"
	PanelInspector PanelID = "inspector"
	PanelHelp      PanelID = "help"
)

// PanelDescriptor defines a panel or view option that can be toggled.
type PanelDescriptor struct {
	ID          PanelID // Unique identifier
	Name        string  // Display name
	Description string  // What the panel shows
	Key         int32   // Keyboard key to toggle (0 = no key)
	KeyLabel    string  // Key label for display (e.g., "S", "V")
	Category    string  // Grouping ("windows" or "view")
}

// PanelRegistry manages panel visibility and metadata.
type PanelRegistry struct {
	descriptors []PanelDescriptor
	byID        map[PanelID]PanelDescriptor
	enabled     map[PanelID]bool
	order       []PanelID // Maintains insertion order for display
}

// NewPanelRegistry creates a registry with the default panels. The player
// controls, bounds and tooltip start enabled.
func NewPanelRegistry() *PanelRegistry {
	reg := &PanelRegistry{
		byID:    make(map[PanelID]PanelDescriptor),
		enabled: make(map[PanelID]bool),
	}
	reg.registerDefaults()
	reg.SetEnabled(PanelPlayer, true)
	reg.SetEnabled(PanelBounds, true)
	reg.SetEnabled(PanelInspector, true)
	return reg
}

// registerDefaults adds the standard panels.
func (r *PanelRegistry) registerDefaults() {
	r.Register(PanelDescriptor{
		ID:          PanelSettings,
		Name:        "Wator Settings",
		Description: "Edit the configuration and start a new run",
		Key:         rl.KeyO,
		KeyLabel:    "O",
		Category:    "windows",
	})

	r.Register(PanelDescriptor{
		ID:          PanelStats,
		Name:        "Statistics",
		Description: "Fish and shark counts of recent ticks",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "windows",
	})

	r.Register(PanelDescriptor{
		ID:          PanelPlayer,
		Name:        "Player",
		Description: "Play, pause and single step",
		Key:         rl.KeyY,
		KeyLabel:    "Y",
		Category:    "windows",
	})

	r.Register(PanelDescriptor{
		ID:          PanelPerf,
		Name:        "Performance",
		Description: "Tick timing by phase",
		Key:         rl.KeyF,
		KeyLabel:    "F",
		Category:    "windows",
	})

	r.Register(PanelDescriptor{
		ID:          PanelBounds,
		Name:        "Bounds",
		Description: "Wireframe box around the lattice",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "view",
	})

	r.Register(PanelDescriptor{
		ID:          PanelInspector,
		Name:        "Creature Tooltip",
		Description: "Show the creature under the cursor",
		Key:         rl.KeyI,
		KeyLabel:    "I",
		Category:    "view",
	})

	r.Register(PanelDescriptor{
		ID:          PanelHelp,
		Name:        "Controls",
		Description: "Key and mouse bindings",
		Key:         rl.KeyH,
		KeyLabel:    "H",
		Category:    "view",
	})
}

// Register adds a panel to the registry.
func (r *PanelRegistry) Register(desc PanelDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.order = append(r.order, desc.ID)
	r.enabled[desc.ID] = false
}

// Toggle switches a panel on/off and returns the new state.
func (r *PanelRegistry) Toggle(id PanelID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a panel's state.
func (r *PanelRegistry) SetEnabled(id PanelID, enabled bool) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	r.enabled[id] = enabled
}

// IsEnabled returns whether a panel is shown.
func (r *PanelRegistry) IsEnabled(id PanelID) bool {
	return r.enabled[id]
}

// Get returns a panel descriptor by ID.
func (r *PanelRegistry) Get(id PanelID) (PanelDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered panels in registration order.
func (r *PanelRegistry) All() []PanelDescriptor {
	return r.descriptors
}

// ByCategory returns panels filtered by category.
func (r *PanelRegistry) ByCategory(category string) []PanelDescriptor {
	var result []PanelDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *PanelRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to a panel toggle.
// Returns the panel ID and new state if a toggle occurred.
func (r *PanelRegistry) HandleKeyPress(key int32) (PanelID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// Keys returns the toggle keys of all panels.
func (r *PanelRegistry) Keys() []int32 {
	keys := make([]int32, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		if desc.Key != 0 {
			keys = append(keys, desc.Key)
		}
	}
	return keys
}

// EnabledPanels returns a list of currently shown panel IDs.
func (r *PanelRegistry) EnabledPanels() []PanelID {
	var result []PanelID
	for _, id := range r.order {
		if r.enabled[id] {
			result = append(result, id)
		}
	}
	return result
}
