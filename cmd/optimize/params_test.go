package main

import (
	"testing"

	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/telemetry"
)

func baseSimulation() config.Simulation {
	return config.Simulation{
		Dimensions: components.Dims{X: 10, Y: 10, Z: 10},
		Boundary:   config.BoundaryWrapped,
		Neighbors:  config.Neighbors{Faces: true},
		Fish:       config.FishConfig{Count: 200, MaturityAge: 3},
		Shark:      config.SharkConfig{Count: 20, MaturityAge: 10, StarveLimit: 3},
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.Extract(baseSimulation())
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if diff := back[i] - raw[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyClampsAndRounds(t *testing.T) {
	pv := NewParamVector()
	got := pv.Apply(baseSimulation(), []float64{2.6, -5, 99, 0.25, 0.0501})

	if got.Fish.MaturityAge != 3 {
		t.Errorf("fish maturity = %d, want 3", got.Fish.MaturityAge)
	}
	if got.Shark.MaturityAge != 1 {
		t.Errorf("shark maturity = %d, want 1 (clamped)", got.Shark.MaturityAge)
	}
	if got.Shark.StarveLimit != 20 {
		t.Errorf("starve limit = %d, want 20 (clamped)", got.Shark.StarveLimit)
	}
	if got.Fish.Count != 250 || got.Shark.Count != 50 {
		t.Errorf("counts = %d/%d, want 250/50", got.Fish.Count, got.Shark.Count)
	}
	if got.Dimensions != baseSimulation().Dimensions {
		t.Errorf("dimensions changed: %+v", got.Dimensions)
	}
}

func TestComputeQuality(t *testing.T) {
	steady := make([]telemetry.WindowStats, 6)
	for i := range steady {
		steady[i] = telemetry.WindowStats{Fish: 400, Sharks: 100, FishEaten: 50, SharkMean: 100}
	}

	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		min     float64
		max     float64
	}{
		{"too few windows", steady[:2], 0, 0},
		{"sharks gone", []telemetry.WindowStats{{}, {}, {Fish: 500}, {Fish: 600}}, 0, 0},
		{"steady at target ratio", steady, 0.8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := computeQuality(tt.windows)
			if q < tt.min || q > tt.max {
				t.Errorf("quality = %v, want in [%v, %v]", q, tt.min, tt.max)
			}
		})
	}
}

func TestLongerSurvivalIsFitter(t *testing.T) {
	if computeFitness(200, 0) >= computeFitness(100, 1) {
		t.Error("survival should dominate quality")
	}
	if computeFitness(100, 1) >= computeFitness(100, 0) {
		t.Error("quality should break ties")
	}
}
