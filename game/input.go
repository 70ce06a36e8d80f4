package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/renderer"
	"github.com/pthm-cable/wator/ui"
)

// Camera input sensitivity
const (
	orbitSpeed   = 0.005 // radians per pixel of mouse drag
	keyOrbitStep = 0.03  // radians per frame while an arrow key is held
	wheelZoom    = 0.1   // zoom factor per wheel notch
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.player.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.player.RequestSingleStep()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		g.menu.Toggle()
	}

	// Panel toggles
	for _, key := range g.panels.Keys() {
		if rl.IsKeyPressed(key) {
			g.panels.HandleKeyPress(key)
		}
	}
	g.scene.SetShowBounds(g.panels.IsEnabled(ui.PanelBounds))

	g.settings.HandleDrop()

	overUI := g.mouseOverUI()
	g.handleCameraInput(overUI)

	if g.panels.IsEnabled(ui.PanelInspector) {
		g.inspector.HandleInput(renderer.Camera3D(g.camera), g.instances, g.scene.CubeSize(), overUI)
	} else {
		g.inspector.Deselect()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.background != nil {
		g.background.Resize(w, h)
	}
}

// mouseOverUI reports whether the cursor is on one of the open windows.
func (g *Game) mouseOverUI() bool {
	mouse := rl.GetMousePosition()
	if g.menu.Contains(mouse) {
		return true
	}
	if g.panels.IsEnabled(ui.PanelSettings) && g.settings.Contains(mouse) {
		return true
	}
	if g.panels.IsEnabled(ui.PanelStats) && g.stats.Contains(mouse) {
		return true
	}
	if g.panels.IsEnabled(ui.PanelPlayer) && g.playerPanel.Contains(mouse) {
		return true
	}
	return false
}

// handleCameraInput processes orbit and zoom controls. A drag that starts
// on a window never moves the camera.
func (g *Game) handleCameraInput(overUI bool) {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.orbiting = !overUI
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		g.orbiting = false
	}
	if g.orbiting {
		delta := rl.GetMouseDelta()
		g.camera.Rotate(-delta.X*orbitSpeed, delta.Y*orbitSpeed)
	}

	// Arrow key orbiting
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Rotate(-keyOrbitStep, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Rotate(keyOrbitStep, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Rotate(0, keyOrbitStep)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Rotate(0, -keyOrbitStep)
	}

	// Zoom controls: mouse wheel or +/- keys
	if !overUI {
		if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
			g.camera.ZoomBy(1 + wheelMove*wheelZoom)
		}
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
