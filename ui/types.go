// Package ui draws the control windows of the simulation: the menu, the
// settings editor, the player controls, the statistics table and the HUD.
// Interactive widgets come from raygui; read-only panels are drawn directly.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	MutedColor     rl.Color
	ErrorColor     rl.Color
	BarBg          rl.Color
	FishColor      rl.Color
	SharkColor     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	WindowHeader   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		MutedColor:     rl.Color{R: 150, G: 150, B: 150, A: 255},
		ErrorColor:     rl.Color{R: 230, G: 90, B: 90, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		FishColor:      rl.Color{R: 46, G: 204, B: 113, A: 255},
		SharkColor:     rl.Color{R: 231, G: 76, B: 60, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
		WindowHeader:   24,
	}
}

// WithSpeciesColors returns a copy of the theme using the scene's colors.
func (t Theme) WithSpeciesColors(fish, shark rl.Color) Theme {
	t.FishColor = fish
	t.SharkColor = shark
	return t
}

// Window is a floating raygui window with a close button.
type Window struct {
	Title  string
	Bounds rl.Rectangle
}

// Begin draws the window frame. It returns the content area below the title
// bar and whether the close button was pressed.
func (w Window) Begin(theme Theme) (content rl.Rectangle, closed bool) {
	closed = gui.WindowBox(w.Bounds, w.Title)
	pad := float32(theme.Padding)
	content = rl.Rectangle{
		X:      w.Bounds.X + pad,
		Y:      w.Bounds.Y + theme.WindowHeader + pad/2,
		Width:  w.Bounds.Width - 2*pad,
		Height: w.Bounds.Height - theme.WindowHeader - pad,
	}
	return content, closed
}

// Contains reports whether the point lies inside the window.
func (w Window) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, w.Bounds)
}
