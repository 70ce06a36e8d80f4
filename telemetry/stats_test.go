package telemetry

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	fish := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sharks := []float64{1, 2, 2, 2, 3, 3, 4, 5}

	s := Summarize(fish, sharks)

	if s.Samples != 8 {
		t.Errorf("samples = %d, want 8", s.Samples)
	}
	if math.Abs(s.FishMean-5) > 1e-9 {
		t.Errorf("fish mean = %v, want 5", s.FishMean)
	}
	// sample standard deviation: sqrt(32/7)
	if math.Abs(s.FishStd-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("fish std = %v, want %v", s.FishStd, math.Sqrt(32.0/7.0))
	}
	if math.Abs(s.FishCV-s.FishStd/5) > 1e-9 {
		t.Errorf("fish cv = %v", s.FishCV)
	}
	// sharks rise and fall with fish
	if s.Correlation < 0.9 {
		t.Errorf("correlation = %v, want > 0.9", s.Correlation)
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	tests := []struct {
		name         string
		fish, sharks []float64
		wantCorr     float64
		wantFishStd  float64
		wantFishMean float64
		wantSamples  int
	}{
		{"empty", nil, nil, 0, 0, 0, 0},
		{"mismatched", []float64{1, 2}, []float64{1}, 0, 0, 0, 2},
		{"single", []float64{7}, []float64{3}, 0, 0, 7, 1},
		{"constant", []float64{4, 4, 4}, []float64{1, 2, 3}, 0, 0, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.fish, tt.sharks)
			if s.Samples != tt.wantSamples {
				t.Errorf("samples = %d, want %d", s.Samples, tt.wantSamples)
			}
			if math.IsNaN(s.Correlation) || s.Correlation != tt.wantCorr {
				t.Errorf("correlation = %v, want %v", s.Correlation, tt.wantCorr)
			}
			if s.FishStd != tt.wantFishStd || s.FishMean != tt.wantFishMean {
				t.Errorf("fish mean/std = %v/%v, want %v/%v", s.FishMean, s.FishStd, tt.wantFishMean, tt.wantFishStd)
			}
		})
	}
}

func TestHistoryKeepsNewestRows(t *testing.T) {
	h := NewHistory(3)
	for tick := 1; tick <= 5; tick++ {
		h.Add(TickRow{Tick: tick, Fish: tick * 10, Sharks: tick})
	}

	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	rows := h.Rows()
	for i, want := range []int{5, 4, 3} {
		if rows[i].Tick != want {
			t.Errorf("rows[%d].Tick = %d, want %d", i, rows[i].Tick, want)
		}
	}
	latest, ok := h.Latest()
	if !ok || latest.Tick != 5 {
		t.Errorf("latest = %+v, %v", latest, ok)
	}

	fish, sharks := h.Series()
	if fish[0] != 30 || fish[2] != 50 || sharks[1] != 4 {
		t.Errorf("series = %v / %v, want oldest first", fish, sharks)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Error("Reset should empty the history")
	}
	if _, ok := h.Latest(); ok {
		t.Error("Latest on empty history should report false")
	}
}

func TestHistoryDefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 250; i++ {
		h.Add(TickRow{Tick: i})
	}
	if h.Len() != 200 {
		t.Errorf("len = %d, want 200", h.Len())
	}
}
