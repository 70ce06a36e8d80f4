package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/ui"
)

const controlsLegend = "Space: play/pause | N: step | Drag/Arrows: orbit | Wheel/+/-: zoom | Home: reset view | M: menu | F11: fullscreen"

// Draw renders the scene and the UI.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	g.background.Draw()
	g.scene.Draw(g.camera, g.instances, g.engine.Config().Dimensions)

	g.drawUI()
}

// drawUI draws the HUD, the open windows and the creature tooltip.
func (g *Game) drawUI() {
	fish, sharks := g.engine.Counts()
	d := g.engine.Config().Dimensions
	g.hud.Draw(ui.HUDData{
		Title:   "Wa-Tor 3D",
		Fish:    fish,
		Sharks:  sharks,
		Tick:    g.engine.Tick(),
		State:   g.engine.State().String(),
		FPS:     rl.GetFPS(),
		Playing: g.player.Playing(),
		Dims:    fmt.Sprintf("%dx%dx%d %s", d.X, d.Y, d.Z, g.engine.Config().Boundary),
	})

	if g.panels.IsEnabled(ui.PanelHelp) {
		g.hud.DrawControls(g.screenWidth, g.screenHeight, controlsLegend)
	}

	if g.panels.IsEnabled(ui.PanelPlayer) {
		if closed := g.playerPanel.Draw(10, 120, g.player, g.engine.Tick()); closed {
			g.panels.SetEnabled(ui.PanelPlayer, false)
		}
	}

	if g.panels.IsEnabled(ui.PanelPerf) {
		g.perfPanel.SetPosition(10, 250)
		g.perfPanel.Draw(g.perfCollector.Stats())
	}

	g.menu.Draw(g.panels, g.screenWidth)

	if g.panels.IsEnabled(ui.PanelStats) {
		x := float32(g.screenWidth) - 270
		if closed := g.stats.Draw(x, 270, g.collector.History()); closed {
			g.panels.SetEnabled(ui.PanelStats, false)
		}
	}

	if g.panels.IsEnabled(ui.PanelSettings) {
		x := float32(g.screenWidth) - 220 - 20 - 350
		action, closed := g.settings.Draw(x, 10, g.engine.Tick() > 0)
		if closed {
			g.panels.SetEnabled(ui.PanelSettings, false)
		}
		if action == ui.SettingsStart {
			if err := g.Restart(g.settings.Draft()); err != nil {
				slog.Error("restart_failed", "error", err)
			}
		}
	}

	if g.panels.IsEnabled(ui.PanelInspector) {
		g.inspector.Draw(g.engine.Registry())
	}
}
