package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Menu is the top-right window listing every panel with a check box.
type Menu struct {
	renderer *Renderer
	width    float32
	visible  bool
	bounds   rl.Rectangle
}

// NewMenu creates a visible menu of the given width.
func NewMenu(theme Theme, width float32) *Menu {
	return &Menu{
		renderer: NewRenderer(theme),
		width:    width,
		visible:  true,
	}
}

// SetVisible shows or hides the menu.
func (m *Menu) SetVisible(visible bool) {
	m.visible = visible
}

// IsVisible returns whether the menu is shown.
func (m *Menu) IsVisible() bool {
	return m.visible
}

// Toggle switches menu visibility.
func (m *Menu) Toggle() bool {
	m.visible = !m.visible
	return m.visible
}

// Contains reports whether the point lies on the menu.
func (m *Menu) Contains(p rl.Vector2) bool {
	return m.visible && rl.CheckCollisionPointRec(p, m.bounds)
}

// Draw renders the menu anchored to the top-right corner. Clicking a check
// box toggles the panel in the registry.
func (m *Menu) Draw(panels *PanelRegistry, screenWidth int32) {
	if !m.visible {
		return
	}

	r := m.renderer
	padding := float32(r.Theme.Padding)
	lineHeight := float32(r.Theme.LineHeight + 6)

	categories := panels.Categories()
	rows := 0
	for _, cat := range categories {
		rows += len(panels.ByCategory(cat)) + 1 // +1 for category header
	}
	height := r.Theme.WindowHeader + float32(rows)*lineHeight + padding*2

	m.bounds = rl.Rectangle{X: float32(screenWidth) - m.width - padding, Y: padding, Width: m.width, Height: height}
	content, closed := Window{Title: "Menu", Bounds: m.bounds}.Begin(r.Theme)
	if closed {
		m.visible = false
		return
	}

	y := content.Y
	for _, category := range categories {
		rl.DrawText(categoryLabel(category), int32(content.X), int32(y)+2, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range panels.ByCategory(category) {
			enabled := panels.IsEnabled(desc.ID)
			box := rl.Rectangle{X: content.X, Y: y, Width: 14, Height: 14}
			if gui.CheckBox(box, desc.Name, enabled) != enabled {
				panels.Toggle(desc.ID)
			}

			if desc.KeyLabel != "" {
				keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
				keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
				rl.DrawText(keyText, int32(content.X+content.Width)-keyWidth, int32(y)+1, r.Theme.FontSize, r.Theme.MutedColor)
			}
			y += lineHeight
		}
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "windows":
		return "Windows"
	case "view":
		return "View"
	default:
		return cat
	}
}
