package sim

import "time"

// Player decides when a new tick may start: continuously while playing,
// no more often than the interval, or once on request while paused.
type Player struct {
	playing       bool
	interval      time.Duration
	last          time.Time
	stepRequested bool
}

// NewPlayer creates a paused player with the given minimum tick interval.
func NewPlayer(interval time.Duration) *Player {
	if interval < 0 {
		interval = 0
	}
	return &Player{interval: interval}
}

// Playing reports whether ticks start automatically.
func (p *Player) Playing() bool {
	return p.playing
}

// Play starts automatic ticking.
func (p *Player) Play() {
	p.playing = true
	p.stepRequested = false
}

// Pause stops automatic ticking. A tick already in progress still finishes.
func (p *Player) Pause() {
	p.playing = false
}

// Toggle flips between playing and paused and returns the new state.
func (p *Player) Toggle() bool {
	if p.playing {
		p.Pause()
	} else {
		p.Play()
	}
	return p.playing
}

// Interval returns the minimum time between automatic ticks.
func (p *Player) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the minimum time between automatic ticks.
func (p *Player) SetInterval(d time.Duration) {
	p.interval = max(d, 0)
}

// RequestSingleStep asks for exactly one tick in either state. While playing
// the tick starts at once without waiting out the interval.
func (p *Player) RequestSingleStep() {
	p.stepRequested = true
}

// ShouldStart reports whether a tick should be started at now and, if so,
// consumes the request or restarts the interval.
func (p *Player) ShouldStart(now time.Time) bool {
	if p.stepRequested {
		p.stepRequested = false
		p.last = now
		return true
	}
	if !p.playing {
		return false
	}
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}
