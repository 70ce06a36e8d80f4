package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/config"
)

// Slider ranges of the settings window.
const (
	maxExtent = 100
	maxCount  = 1000
	maxAge    = 1000
)

var boundaryOptions = []config.Boundary{config.BoundaryNone, config.BoundaryWall, config.BoundaryWrapped}

// SettingsAction is what the user asked for in the settings window.
type SettingsAction int

const (
	SettingsNone  SettingsAction = iota
	SettingsStart                // Start a new run from Draft()
)

// SettingsPanel edits a draft configuration. The running simulation is not
// touched until the user starts a new run.
type SettingsPanel struct {
	renderer *Renderer
	draft    config.Simulation
	path     string

	message string
	failed  bool
	bounds  rl.Rectangle
}

// NewSettingsPanel creates a panel editing a copy of sim. Save and Load use
// path.
func NewSettingsPanel(theme Theme, sim config.Simulation, path string) *SettingsPanel {
	if path == "" {
		path = "settings.json"
	}
	return &SettingsPanel{
		renderer: NewRenderer(theme),
		draft:    sim,
		path:     path,
	}
}

// Draft returns the edited configuration.
func (s *SettingsPanel) Draft() config.Simulation {
	return s.draft
}

// SetDraft replaces the edited configuration.
func (s *SettingsPanel) SetDraft(sim config.Simulation) {
	s.draft = sim
}

// Contains reports whether the point lies on the last drawn window.
func (s *SettingsPanel) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, s.bounds)
}

// setMessage shows a status line under the buttons.
func (s *SettingsPanel) setMessage(failed bool, format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.failed = failed
}

// Load replaces the draft with a settings file. The draft is unchanged on
// error.
func (s *SettingsPanel) Load(path string) {
	sim, err := config.LoadSettings(path)
	if err != nil {
		slog.Warn("settings_load_failed", "path", path, "error", err)
		s.setMessage(true, "%v", err)
		return
	}
	s.draft = sim
	s.path = path
	s.setMessage(false, "Loaded %s", filepath.Base(path))
}

// Save writes the draft to the settings path.
func (s *SettingsPanel) Save() {
	if err := s.draft.SaveSettings(s.path); err != nil {
		slog.Warn("settings_save_failed", "path", s.path, "error", err)
		s.setMessage(true, "%v", err)
		return
	}
	s.setMessage(false, "Saved %s", filepath.Base(s.path))
}

// HandleDrop loads the first dropped .json file, if any.
func (s *SettingsPanel) HandleDrop() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	rl.UnloadDroppedFiles()

	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".json") {
			s.Load(f)
			return
		}
	}
	s.setMessage(true, "Drop a .json settings file")
}

// Draw renders the settings window at (x, y). running selects the label of
// the start button.
func (s *SettingsPanel) Draw(x, y float32, running bool) (SettingsAction, bool) {
	r := s.renderer
	row := float32(26)
	s.bounds = rl.Rectangle{X: x, Y: y, Width: 340, Height: 470}

	content, closed := Window{Title: "Wator Settings", Bounds: s.bounds}.Begin(r.Theme)
	if closed {
		return SettingsNone, true
	}

	line := func() rl.Rectangle {
		rect := rl.Rectangle{X: content.X, Y: content.Y, Width: content.Width, Height: 20}
		content.Y += row
		return rect
	}
	header := func(title string) {
		content.Y = float32(r.DrawSectionHeader(int32(content.X), int32(content.Y), title))
	}

	d := &s.draft

	header("Lattice")
	d.Dimensions.X = r.IntSlider(line(), "Width (X)", d.Dimensions.X, 1, maxExtent)
	d.Dimensions.Y = r.IntSlider(line(), "Height (Y)", d.Dimensions.Y, 1, maxExtent)
	d.Dimensions.Z = r.IntSlider(line(), "Depth (Z)", d.Dimensions.Z, 1, maxExtent)

	labels := make([]string, len(boundaryOptions))
	current := 0
	for i, b := range boundaryOptions {
		labels[i] = string(b)
		if b == d.Boundary {
			current = i
		}
	}
	d.Boundary = boundaryOptions[r.Choice(line(), "Boundary", labels, current)]

	header("Neighbors")
	rect := line()
	classes := []struct {
		name  string
		class config.NeighborClass
		on    bool
	}{
		{"Faces", config.NeighborFaces, d.Neighbors.Faces},
		{"Edges", config.NeighborEdges, d.Neighbors.Edges},
		{"Corners", config.NeighborCorners, d.Neighbors.Corners},
	}
	for i, c := range classes {
		box := rl.Rectangle{X: rect.X + float32(i)*100, Y: rect.Y + 3, Width: 14, Height: 14}
		if checked := gui.CheckBox(box, c.name, c.on); checked != c.on {
			d.Neighbors = d.Neighbors.Set(c.class, checked)
		}
	}

	header("Fish")
	d.Fish.Count = r.IntSlider(line(), "Count", d.Fish.Count, 0, maxCount)
	d.Fish.MaturityAge = r.IntSlider(line(), "Breed age", d.Fish.MaturityAge, 0, maxAge)

	header("Sharks")
	d.Shark.Count = r.IntSlider(line(), "Count", d.Shark.Count, 0, maxCount)
	d.Shark.MaturityAge = r.IntSlider(line(), "Breed age", d.Shark.MaturityAge, 0, maxAge)
	d.Shark.StarveLimit = r.IntSlider(line(), "Starve after", d.Shark.StarveLimit, 0, maxAge)

	content.Y += 4
	buttons := line()
	w := (buttons.Width - 8) / 3
	startLabel := "Start"
	if running {
		startLabel = "Restart"
	}

	action := SettingsNone
	if gui.Button(rl.Rectangle{X: buttons.X, Y: buttons.Y, Width: w, Height: 24}, startLabel) {
		candidate := s.draft
		candidate.Sanitize()
		if err := candidate.Validate(); err != nil {
			s.setMessage(true, "%v", err)
		} else {
			s.draft = candidate
			s.setMessage(false, "Started %dx%dx%d", candidate.Dimensions.X, candidate.Dimensions.Y, candidate.Dimensions.Z)
			action = SettingsStart
		}
	}
	if gui.Button(rl.Rectangle{X: buttons.X + w + 4, Y: buttons.Y, Width: w, Height: 24}, "Save") {
		s.Save()
	}
	if gui.Button(rl.Rectangle{X: buttons.X + 2*(w+4), Y: buttons.Y, Width: w, Height: 24}, "Load") {
		s.Load(s.path)
	}

	content.Y += 6
	msgY := r.DrawMessage(int32(content.X), int32(content.Y), s.message, s.failed)
	r.DrawMessage(int32(content.X), msgY, "File: "+s.path+" (or drop a .json)", false)

	return action, false
}
