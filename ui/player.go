package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/sim"
)

// maxIntervalMS bounds the tick interval slider.
const maxIntervalMS = 1000

// PlayerPanel holds the play/pause and single-step buttons and the tick
// interval slider.
type PlayerPanel struct {
	renderer *Renderer
	bounds   rl.Rectangle
}

// NewPlayerPanel creates the player controls.
func NewPlayerPanel(theme Theme) *PlayerPanel {
	return &PlayerPanel{renderer: NewRenderer(theme)}
}

// Contains reports whether the point lies on the last drawn window.
func (p *PlayerPanel) Contains(pt rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pt, p.bounds)
}

// Draw renders the controls at (x, y) and applies button presses to the
// player. It returns true if the window was closed.
func (p *PlayerPanel) Draw(x, y float32, player *sim.Player, tick int) bool {
	r := p.renderer
	p.bounds = rl.Rectangle{X: x, Y: y, Width: 260, Height: 120}

	content, closed := Window{Title: "Player", Bounds: p.bounds}.Begin(r.Theme)
	if closed {
		return true
	}

	half := (content.Width - 4) / 2
	playLabel := "Play"
	if player.Playing() {
		playLabel = "Pause"
	}
	if gui.Button(rl.Rectangle{X: content.X, Y: content.Y, Width: half, Height: 26}, playLabel) {
		player.Toggle()
	}

	stepRect := rl.Rectangle{X: content.X + half + 4, Y: content.Y, Width: half, Height: 26}
	if gui.Button(stepRect, "Step") {
		player.RequestSingleStep()
	}

	sliderRect := rl.Rectangle{X: content.X, Y: content.Y + 34, Width: content.Width, Height: 20}
	ms := int(player.Interval() / time.Millisecond)
	if got := r.IntSlider(sliderRect, "Interval ms", ms, 0, maxIntervalMS); got != ms {
		player.SetInterval(time.Duration(got) * time.Millisecond)
	}

	r.DrawLabelValue(int32(content.X), int32(content.Y)+62, "Tick", fmt.Sprintf("%d", tick))
	return false
}
