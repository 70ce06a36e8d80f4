package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population counts at window end
	Fish   int `csv:"fish"`
	Sharks int `csv:"sharks"`

	// Events during window
	FishBorn      int `csv:"fish_born"`
	SharksBorn    int `csv:"sharks_born"`
	FishEaten     int `csv:"fish_eaten"`
	SharksStarved int `csv:"sharks_starved"`

	// Population distribution over the window
	FishMean    float64 `csv:"fish_mean"`
	FishStd     float64 `csv:"fish_std"`
	FishP10     float64 `csv:"fish_p10"`
	FishP90     float64 `csv:"fish_p90"`
	SharkMean   float64 `csv:"shark_mean"`
	SharkStd    float64 `csv:"shark_std"`
	SharkP10    float64 `csv:"shark_p10"`
	SharkP90    float64 `csv:"shark_p90"`
	Correlation float64 `csv:"fish_shark_corr"`
}

// Summary describes a fish/shark count series.
type Summary struct {
	Samples     int
	FishMean    float64
	FishStd     float64
	FishCV      float64 // Coefficient of variation
	FishP10     float64
	FishP50     float64
	FishP90     float64
	SharkMean   float64
	SharkStd    float64
	SharkCV     float64
	SharkP10    float64
	SharkP50    float64
	SharkP90    float64
	Correlation float64 // Pearson correlation of the two series, 0 if undefined
}

// Summarize computes the distribution of two equally long count series.
func Summarize(fish, sharks []float64) Summary {
	s := Summary{Samples: len(fish)}
	if len(fish) == 0 || len(fish) != len(sharks) {
		return s
	}

	s.FishMean, s.FishStd = meanStd(fish)
	s.SharkMean, s.SharkStd = meanStd(sharks)
	s.FishCV = cv(s.FishMean, s.FishStd)
	s.SharkCV = cv(s.SharkMean, s.SharkStd)

	sortedFish := sortedCopy(fish)
	sortedSharks := sortedCopy(sharks)
	s.FishP10 = Quantile(sortedFish, 0.10)
	s.FishP50 = Quantile(sortedFish, 0.50)
	s.FishP90 = Quantile(sortedFish, 0.90)
	s.SharkP10 = Quantile(sortedSharks, 0.10)
	s.SharkP50 = Quantile(sortedSharks, 0.50)
	s.SharkP90 = Quantile(sortedSharks, 0.90)

	if s.FishStd > 0 && s.SharkStd > 0 {
		s.Correlation = stat.Correlation(fish, sharks, nil)
	}
	return s
}

// meanStd returns the mean and sample standard deviation. A single sample
// has zero deviation.
func meanStd(x []float64) (mean, std float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	mean, std = stat.MeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

func cv(mean, std float64) float64 {
	if mean == 0 {
		return 0
	}
	return std / mean
}

func sortedCopy(x []float64) []float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return sorted
}

// Quantile returns the p-th empirical quantile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("fish", s.Fish),
		slog.Int("sharks", s.Sharks),
		slog.Int("fish_born", s.FishBorn),
		slog.Int("sharks_born", s.SharksBorn),
		slog.Int("fish_eaten", s.FishEaten),
		slog.Int("sharks_starved", s.SharksStarved),
		slog.Float64("fish_mean", s.FishMean),
		slog.Float64("fish_std", s.FishStd),
		slog.Float64("shark_mean", s.SharkMean),
		slog.Float64("shark_std", s.SharkStd),
		slog.Float64("fish_shark_corr", s.Correlation),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"fish", s.Fish,
		"sharks", s.Sharks,
		"fish_born", s.FishBorn,
		"sharks_born", s.SharksBorn,
		"fish_eaten", s.FishEaten,
		"sharks_starved", s.SharksStarved,
		"fish_mean", s.FishMean,
		"shark_mean", s.SharkMean,
		"fish_shark_corr", s.Correlation,
	)
}
