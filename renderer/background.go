package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BackgroundRenderer fills the screen with a vertical gradient fading from
// a lifted top color into the base color, the deep-water tint behind the lattice.
type BackgroundRenderer struct {
	screenW, screenH int32
	top, bottom      color.RGBA
}

// NewBackgroundRenderer creates a background for the given base color.
func NewBackgroundRenderer(screenW, screenH int32, baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: screenW,
		screenH: screenH,
		top:     color.RGBA{R: lift(baseR), G: lift(baseG), B: lift(baseB), A: 255},
		bottom:  color.RGBA{R: baseR, G: baseG, B: baseB, A: 255},
	}
}

// lift brightens a channel for the top of the gradient.
func lift(c uint8) uint8 {
	v := int(c)*2 + 12
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Resize updates the screen size.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW = screenW
	b.screenH = screenH
}

// Draw clears to the base color and paints the gradient.
func (b *BackgroundRenderer) Draw() {
	rl.ClearBackground(b.bottom)
	rl.DrawRectangleGradientV(0, 0, b.screenW, b.screenH, b.top, b.bottom)
}
