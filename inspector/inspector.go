package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/population"
	"github.com/pthm-cable/wator/renderer/instances"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 10
	HeaderHeight = 26
	cursorOffset = 16
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector tracks the creature under the cursor and draws its tooltip.
type Inspector struct {
	hover    instances.Hit
	hasHover bool
	mouse    rl.Vector2
}

// NewInspector creates a new inspector instance.
func NewInspector() *Inspector {
	return &Inspector{}
}

// HandleInput picks the creature under the mouse. Pass blocked when the
// cursor is over a UI panel.
func (ins *Inspector) HandleInput(cam rl.Camera3D, buf *instances.Buffer, cubeSize float32, blocked bool) {
	ins.mouse = rl.GetMousePosition()
	if blocked {
		ins.hasHover = false
		return
	}

	ray := rl.GetScreenToWorldRay(ins.mouse, cam)
	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	ins.hover, ins.hasHover = buf.Pick(origin, dir, cubeSize)
}

// Hovered returns the creature under the cursor, if any.
func (ins *Inspector) Hovered() (instances.Hit, bool) {
	return ins.hover, ins.hasHover
}

// Deselect clears the hover state.
func (ins *Inspector) Deselect() {
	ins.hasHover = false
}

// Draw renders the tooltip next to the cursor. Slots that no longer hold a
// creature are ignored.
func (ins *Inspector) Draw(reg *population.Registry) {
	if !ins.hasHover || ins.hover.Slot >= reg.Len(ins.hover.Species) {
		return
	}
	c := reg.Get(reg.At(ins.hover.Species, ins.hover.Slot))
	sections := Describe(c)

	height := ins.panelHeight(sections)
	panelX := int32(ins.mouse.X) + cursorOffset
	panelY := int32(ins.mouse.Y) + cursorOffset
	if sw := int32(rl.GetScreenWidth()); panelX+PanelWidth > sw {
		panelX = int32(ins.mouse.X) - cursorOffset - PanelWidth
	}
	if sh := int32(rl.GetScreenHeight()); panelY+height > sh {
		panelY = sh - height
	}

	rl.DrawRectangle(panelX, panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(panelX), Y: float32(panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	title := "FISH"
	if c.Species == components.SpeciesShark {
		title = "SHARK"
	}
	rl.DrawRectangle(panelX, panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(title, panelX+PanelPadding, panelY+5, 16, ColorHeaderText)

	x := panelX + PanelPadding
	y := panelY + HeaderHeight + PanelPadding
	y += DrawLabel(x, y, "Position", c.Pos.String(), nil)

	for _, s := range sections {
		y += 4
		ins.drawSectionHeader(x, y, s.Title)
		y += 20
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// panelHeight computes the tooltip height for the given sections.
func (ins *Inspector) panelHeight(sections []Section) int32 {
	height := int32(HeaderHeight + PanelPadding)
	height += 20 // position
	for _, s := range sections {
		height += 24
		for _, f := range s.Fields {
			height += fieldHeight(f)
		}
	}
	return height + PanelPadding
}
