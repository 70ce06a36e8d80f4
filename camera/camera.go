// Package camera provides an orbit camera around the simulation lattice.
package camera

import "math"

// Camera orbits a target point. Angles are in radians, Y is up.
type Camera struct {
	// Target is the point the camera looks at (lattice center)
	TargetX, TargetY, TargetZ float32

	// Yaw rotates around the vertical axis, Pitch tilts above the horizon
	Yaw, Pitch float32

	// Distance from target
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// Initial framing restored by Reset
	homeYaw, homePitch, homeDistance float32
}

// maxPitch keeps the camera just short of the poles so the up vector stays valid.
const maxPitch = math.Pi/2 - 0.01

// New creates a camera framing a lattice of the given extents.
func New(x, y, z int) *Camera {
	c := &Camera{}
	c.FitDims(x, y, z)
	return c
}

// FitDims centers the camera on a lattice and places the eye at
// (d, d, d/2) with d = 1.3 * the longest extent.
func (c *Camera) FitDims(x, y, z int) {
	c.TargetX = float32(x) / 2
	c.TargetY = float32(y) / 2
	c.TargetZ = float32(z) / 2

	longest := float32(max(x, y, z, 1))
	d := longest * 1.3

	// Offset from target to the initial eye position
	ox := d - c.TargetX
	oy := d - c.TargetY
	oz := d/2 - c.TargetZ

	horiz := float32(math.Hypot(float64(ox), float64(oz)))
	c.Distance = float32(math.Sqrt(float64(ox*ox + oy*oy + oz*oz)))
	c.Yaw = float32(math.Atan2(float64(ox), float64(oz)))
	c.Pitch = clamp(float32(math.Atan2(float64(oy), float64(horiz))), -maxPitch, maxPitch)

	c.MinDistance = longest * 0.1
	c.MaxDistance = longest * 6
	c.homeYaw, c.homePitch, c.homeDistance = c.Yaw, c.Pitch, c.Distance
}

// Eye returns the camera position in world coordinates.
func (c *Camera) Eye() (x, y, z float32) {
	cp := math.Cos(float64(c.Pitch))
	x = c.TargetX + c.Distance*float32(cp*math.Sin(float64(c.Yaw)))
	y = c.TargetY + c.Distance*float32(math.Sin(float64(c.Pitch)))
	z = c.TargetZ + c.Distance*float32(cp*math.Cos(float64(c.Yaw)))
	return x, y, z
}

// Rotate orbits the camera by the given angle deltas.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 2*math.Pi))
	c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// SetDistance sets the distance to target, clamped to min/max.
func (c *Camera) SetDistance(d float32) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// ZoomBy divides the distance by the given factor, so factors above 1 move closer.
func (c *Camera) ZoomBy(factor float32) {
	if factor <= 0 {
		return
	}
	c.SetDistance(c.Distance / factor)
}

// Reset returns the camera to the framing computed by FitDims.
func (c *Camera) Reset() {
	c.Yaw = c.homeYaw
	c.Pitch = c.homePitch
	c.Distance = c.homeDistance
}

// BelowGround reports whether the eye is under the lattice floor.
func (c *Camera) BelowGround() bool {
	_, y, _ := c.Eye()
	return y < 0
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
