package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/telemetry"
)

// StatsPanel shows a chart of the recent population and the per-tick table,
// newest row first.
type StatsPanel struct {
	renderer *Renderer
	scroll   int
	bounds   rl.Rectangle
}

// NewStatsPanel creates a statistics window.
func NewStatsPanel(theme Theme) *StatsPanel {
	return &StatsPanel{renderer: NewRenderer(theme)}
}

// Contains reports whether the point lies on the last drawn window.
func (s *StatsPanel) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, s.bounds)
}

// ResetScroll jumps back to the newest row.
func (s *StatsPanel) ResetScroll() {
	s.scroll = 0
}

// Draw renders the window at (x, y) and returns true if it was closed.
func (s *StatsPanel) Draw(x, y float32, history *telemetry.History) bool {
	r := s.renderer
	s.bounds = rl.Rectangle{X: x, Y: y, Width: 260, Height: 440}

	content, closed := Window{Title: "Statistics", Bounds: s.bounds}.Begin(r.Theme)
	if closed {
		return true
	}

	chart := rl.Rectangle{X: content.X, Y: content.Y, Width: content.Width, Height: 100}
	s.drawChart(chart, history)

	tableY := int32(chart.Y+chart.Height) + 8
	cx := int32(content.X)
	colW := int32(content.Width) / 3
	rl.DrawText("Tick", cx, tableY, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	rl.DrawText("Fish", cx+colW, tableY, r.Theme.HeaderFontSize, r.Theme.FishColor)
	rl.DrawText("Sharks", cx+2*colW, tableY, r.Theme.HeaderFontSize, r.Theme.SharkColor)
	tableY += r.Theme.LineHeight + 2

	rows := history.Rows()
	visible := int((content.Y + content.Height - float32(tableY)) / float32(r.Theme.LineHeight))
	if visible < 1 {
		visible = 1
	}

	if rl.CheckCollisionPointRec(rl.GetMousePosition(), s.bounds) {
		s.scroll -= int(rl.GetMouseWheelMove() * 3)
	}
	s.scroll = clampInt(s.scroll, 0, max(len(rows)-visible, 0))

	for i := s.scroll; i < len(rows) && i < s.scroll+visible; i++ {
		row := rows[i]
		rl.DrawText(fmt.Sprintf("%d", row.Tick), cx, tableY, r.Theme.FontSize, r.Theme.LabelColor)
		rl.DrawText(fmt.Sprintf("%d", row.Fish), cx+colW, tableY, r.Theme.FontSize, r.Theme.ValueColor)
		rl.DrawText(fmt.Sprintf("%d", row.Sharks), cx+2*colW, tableY, r.Theme.FontSize, r.Theme.ValueColor)
		tableY += r.Theme.LineHeight
	}

	return false
}

// drawChart plots both series oldest to newest, scaled to the larger peak.
func (s *StatsPanel) drawChart(area rl.Rectangle, history *telemetry.History) {
	rl.DrawRectangleRec(area, s.renderer.Theme.BarBg)

	fish, sharks := history.Series()
	if len(fish) < 2 {
		return
	}

	peak := 1.0
	for i := range fish {
		peak = max(peak, fish[i], sharks[i])
	}

	plot := func(series []float64, col rl.Color) {
		step := area.Width / float32(len(series)-1)
		prev := rl.Vector2{X: area.X, Y: area.Y + area.Height*(1-float32(series[0]/peak))}
		for i := 1; i < len(series); i++ {
			next := rl.Vector2{
				X: area.X + float32(i)*step,
				Y: area.Y + area.Height*(1-float32(series[i]/peak)),
			}
			rl.DrawLineEx(prev, next, 1.5, col)
			prev = next
		}
	}
	plot(fish, s.renderer.Theme.FishColor)
	plot(sharks, s.renderer.Theme.SharkColor)

	rl.DrawText(fmt.Sprintf("%.0f", peak), int32(area.X)+2, int32(area.Y)+2, 10, s.renderer.Theme.MutedColor)
}
