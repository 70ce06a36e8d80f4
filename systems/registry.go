package systems

// Phase identifiers of a tick. The step engine reports work time under these
// IDs and the perf collector aggregates by them.
const (
	PhaseFish     = "fish"
	PhaseSharks   = "sharks"
	PhaseFinalize = "finalize"
	PhaseSync     = "sync"
)

// PhaseInfo describes a tick phase for UI display.
type PhaseInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this phase does
}

// PhaseRegistry holds metadata about all tick phases.
// This centralizes phase naming so the UI and perf tracker stay in sync.
type PhaseRegistry struct {
	phases []PhaseInfo
	byID   map[string]PhaseInfo
}

// NewPhaseRegistry creates a registry with all known phases.
func NewPhaseRegistry() *PhaseRegistry {
	reg := &PhaseRegistry{
		byID: make(map[string]PhaseInfo),
	}
	reg.Register(PhaseInfo{ID: PhaseFish, Name: "Fish", Description: "Moves and breeds fish"})
	reg.Register(PhaseInfo{ID: PhaseSharks, Name: "Sharks", Description: "Starves, feeds, moves and breeds sharks"})
	reg.Register(PhaseInfo{ID: PhaseFinalize, Name: "Finalize", Description: "Removes the dead, adds births, reassigns slots"})
	reg.Register(PhaseInfo{ID: PhaseSync, Name: "Sync", Description: "Publishes positions to the renderer"})
	return reg
}

// Register adds a phase to the registry.
func (r *PhaseRegistry) Register(info PhaseInfo) {
	r.phases = append(r.phases, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *PhaseRegistry) Get(id string) (PhaseInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *PhaseRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *PhaseRegistry) All() []PhaseInfo {
	return r.phases
}

// IDs returns all phase IDs in registration order.
func (r *PhaseRegistry) IDs() []string {
	ids := make([]string, len(r.phases))
	for i, info := range r.phases {
		ids[i] = info.ID
	}
	return ids
}
