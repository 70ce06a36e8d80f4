package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/systems"
	"github.com/pthm-cable/wator/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title   string
	Fish    int
	Sharks  int
	Tick    int
	State   string
	FPS     int32
	Playing bool
	Dims    string
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(theme Theme) *HUD {
	return &HUD{renderer: NewRenderer(theme)}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer

	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(fmt.Sprintf("Fish: %d", data.Fish), 10, 35, 16, r.Theme.FishColor)
	rl.DrawText(fmt.Sprintf("Sharks: %d", data.Sharks), 130, 35, 16, r.Theme.SharkColor)
	r.DrawShareBar(10, 55, 240, data.Fish, data.Sharks)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | %s | FPS: %d", data.Tick, data.Dims, data.FPS),
		10, 73, 16, rl.LightGray,
	)

	statusText := "PAUSED"
	if data.Playing {
		statusText = "Running"
	}
	if data.State != "idle" {
		statusText += " (" + data.State + ")"
	}
	rl.DrawText(statusText, 10, 93, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase tick timing.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.PhaseRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(theme Theme, registry *systems.PhaseRegistry, x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(theme),
		registry: registry,
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel, slowest phase first.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	width := int32(300)
	height := int32(90) + int32(len(stats.PhaseAvg))*14
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Work: %s (min %s, max %s)",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.MinTickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond),
	), x, y, 12, rl.Yellow)
	y += 16
	rl.DrawText(fmt.Sprintf("Wall: %s | Slices: %.1f | %.0f ticks/s",
		stats.AvgWallDuration.Round(time.Microsecond), stats.AvgSlices, stats.TicksPerSecond,
	), x, y, 12, rl.LightGray)
	y += 18

	names := make([]string, 0, len(stats.PhaseAvg))
	for name := range stats.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return stats.PhaseAvg[names[i]] > stats.PhaseAvg[names[j]]
	})

	for _, name := range names {
		avg := stats.PhaseAvg[name]
		pct := stats.PhasePct[name]

		color := rl.LightGray
		if pct > 60 {
			color = rl.Red
		} else if pct > 30 {
			color = rl.Orange
		}

		displayName := name
		if p.registry != nil {
			displayName = p.registry.GetName(name)
		}

		rl.DrawText(
			fmt.Sprintf("%-16s %8s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
