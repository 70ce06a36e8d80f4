package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawMessage draws a status line, in the error color when failed is set.
func (r *Renderer) DrawMessage(x, y int32, text string, failed bool) int32 {
	col := r.Theme.MutedColor
	if failed {
		col = r.Theme.ErrorColor
	}
	rl.DrawText(text, x, y, r.Theme.FontSize, col)
	return y + r.Theme.LineHeight
}

// DrawShareBar draws the fish/shark split of the population as one bar.
func (r *Renderer) DrawShareBar(x, y, width int32, fish, sharks int) int32 {
	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)
	if total := fish + sharks; total > 0 {
		fishW := int32(float64(width) * float64(fish) / float64(total))
		rl.DrawRectangle(x, y, fishW, r.Theme.BarHeight, r.Theme.FishColor)
		rl.DrawRectangle(x+fishW, y, width-fishW, r.Theme.BarHeight, r.Theme.SharkColor)
	}
	return y + r.Theme.BarHeight + 4
}

// DrawColorSwatch draws a labeled color swatch.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color) int32 {
	swatchSize := int32(12)
	rl.DrawRectangle(x, y+1, swatchSize, swatchSize, color)
	rl.DrawText(label, x+swatchSize+6, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.LineHeight
}

// IntSlider draws a labeled slider for an integer setting and returns the
// possibly changed value.
func (r *Renderer) IntSlider(bounds rl.Rectangle, label string, value, minVal, maxVal int) int {
	rl.DrawText(label, int32(bounds.X), int32(bounds.Y)+3, r.Theme.FontSize, r.Theme.LabelColor)

	labelW := float32(r.Theme.LabelWidth)
	valueW := float32(44)
	sliderRect := rl.Rectangle{
		X:      bounds.X + labelW,
		Y:      bounds.Y,
		Width:  bounds.Width - labelW - valueW,
		Height: bounds.Height,
	}
	got := gui.SliderBar(sliderRect, "", "", float32(value), float32(minVal), float32(maxVal))

	rl.DrawText(fmt.Sprintf("%d", value), int32(sliderRect.X+sliderRect.Width+6), int32(bounds.Y)+3, r.Theme.FontSize, r.Theme.ValueColor)
	return clampInt(int(math.Round(float64(got))), minVal, maxVal)
}

// Choice draws one button per option with the selected one outlined and
// returns the index of the selected option.
func (r *Renderer) Choice(bounds rl.Rectangle, label string, options []string, selected int) int {
	rl.DrawText(label, int32(bounds.X), int32(bounds.Y)+3, r.Theme.FontSize, r.Theme.LabelColor)

	labelW := float32(r.Theme.LabelWidth)
	gap := float32(4)
	w := (bounds.Width - labelW - gap*float32(len(options)-1)) / float32(len(options))
	for i, opt := range options {
		rect := rl.Rectangle{X: bounds.X + labelW + float32(i)*(w+gap), Y: bounds.Y, Width: w, Height: bounds.Height}
		if gui.Button(rect, opt) {
			selected = i
		}
		if i == selected {
			rl.DrawRectangleLinesEx(rect, 2, r.Theme.SectionHeader)
		}
	}
	return selected
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
