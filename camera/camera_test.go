package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(100, 100, 100)

	// Should be centered on the lattice
	if cam.TargetX != 50 || cam.TargetY != 50 || cam.TargetZ != 50 {
		t.Errorf("expected target (50, 50, 50), got (%f, %f, %f)", cam.TargetX, cam.TargetY, cam.TargetZ)
	}

	// Eye starts at (1.3d, 1.3d, 0.65d)
	x, y, z := cam.Eye()
	if !near(x, 130) || !near(y, 130) || !near(z, 65) {
		t.Errorf("expected eye (130, 130, 65), got (%f, %f, %f)", x, y, z)
	}
}

func TestEyeKeepsDistance(t *testing.T) {
	cam := New(40, 20, 10)

	for _, d := range []struct{ yaw, pitch float32 }{
		{0, 0},
		{1, 0.5},
		{-2, -1},
		{3, 1.4},
	} {
		cam.Rotate(d.yaw, d.pitch)
		x, y, z := cam.Eye()
		dx, dy, dz := x-cam.TargetX, y-cam.TargetY, z-cam.TargetZ
		got := float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
		if !near(got, cam.Distance) {
			t.Errorf("after Rotate(%v, %v): eye distance %f, want %f", d.yaw, d.pitch, got, cam.Distance)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	cam := New(10, 10, 10)

	cam.Rotate(0, 10)
	if cam.Pitch > maxPitch {
		t.Errorf("pitch %f exceeds max %f", cam.Pitch, maxPitch)
	}

	cam.Rotate(0, -20)
	if cam.Pitch < -maxPitch {
		t.Errorf("pitch %f below min %f", cam.Pitch, -maxPitch)
	}
	if !cam.BelowGround() {
		t.Error("camera pitched fully down should be below ground")
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(100, 50, 20)

	// Limits scale with the longest extent
	if cam.MinDistance != 10 || cam.MaxDistance != 600 {
		t.Errorf("limits = %f..%f, want 10..600", cam.MinDistance, cam.MaxDistance)
	}

	cam.ZoomBy(1000)
	if cam.Distance != cam.MinDistance {
		t.Errorf("expected zoom clamped to min distance, got %f", cam.Distance)
	}

	cam.ZoomBy(0.0001)
	if cam.Distance != cam.MaxDistance {
		t.Errorf("expected zoom clamped to max distance, got %f", cam.Distance)
	}

	before := cam.Distance
	cam.ZoomBy(0)
	if cam.Distance != before {
		t.Error("non-positive zoom factor should be ignored")
	}
}

func TestReset(t *testing.T) {
	cam := New(30, 30, 30)
	x0, y0, z0 := cam.Eye()

	cam.Rotate(1.2, -0.4)
	cam.ZoomBy(2)
	cam.Reset()

	x, y, z := cam.Eye()
	if !near(x, x0) || !near(y, y0) || !near(z, z0) {
		t.Errorf("reset eye (%f, %f, %f), want (%f, %f, %f)", x, y, z, x0, y0, z0)
	}
}

func TestFitDimsDegenerate(t *testing.T) {
	cam := New(0, 0, 0)
	if cam.Distance <= 0 || math.IsNaN(float64(cam.Distance)) {
		t.Errorf("distance = %f, want positive", cam.Distance)
	}
}
