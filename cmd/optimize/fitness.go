package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/rng"
	"github.com/pthm-cable/wator/sim"
	"github.com/pthm-cable/wator/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int
	seeds       []int64
	base        config.Simulation
	statsWindow int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, base config.Simulation, statsWindow int) *FitnessEvaluator {
	if statsWindow < 1 {
		statsWindow = 50
	}
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		base:        base,
		statsWindow: statsWindow,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Minimum viable population: if either species stays below this for
// extinctionGraceTicks consecutive ticks, it counts as functionally extinct.
const (
	minViablePop         = 3
	extinctionGraceTicks = 20
	warmupTicks          = 10
)

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int                     // ticks before functional extinction (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // flushed every statsWindow ticks
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Runs every seed in parallel; each run owns its engine and random source.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	s := fe.params.Apply(fe.base, x)
	s.Sanitize()
	if err := s.Validate(); err != nil {
		return 0
	}

	type seedResult struct {
		fitness float64
		quality float64
	}
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, seed int64) {
			defer wg.Done()
			r := fe.runSimulation(s, seed)
			q := computeQuality(r.windowStats)
			results[idx] = seedResult{fitness: computeFitness(r.survivalTicks, q), quality: q}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until functional extinction
// or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(s config.Simulation, seed int64) *runResult {
	collector := telemetry.NewCollector(fe.statsWindow, 1)
	engine := sim.New(s, sim.Options{
		Source: rng.NewSeeded(seed),
		Stats:  collector,
	})

	result := &runResult{}
	var fishBelow, sharksBelow int

	for engine.Tick() < fe.maxTicks {
		census := engine.Step()
		tick := engine.Tick()
		if collector.ShouldFlush(tick) {
			result.windowStats = append(result.windowStats, collector.Flush(tick))
		}
		if tick < warmupTicks {
			continue
		}

		if census.Fish == 0 || census.Sharks == 0 {
			result.survivalTicks = tick
			return result
		}

		fishBelow = belowCount(census.Fish, fishBelow)
		sharksBelow = belowCount(census.Sharks, sharksBelow)
		if fishBelow >= extinctionGraceTicks || sharksBelow >= extinctionGraceTicks {
			result.survivalTicks = tick
			return result
		}
	}

	result.survivalTicks = fe.maxTicks
	return result
}

// belowCount extends or resets a run of ticks under the minimum viable population.
func belowCount(pop, run int) int {
	if pop < minViablePop {
		return run + 1
	}
	return 0
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
func computeFitness(survivalTicks int, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightRatio     = 0.4
	qualityWeightStability = 0.4
	qualityWeightTurnover  = 0.2

	qualityWarmupWindows = 2 // skip first N windows
	qualityMinPop        = 3 // exclude windows where either species < this
	targetRatio          = 4.0
)

// computeQuality computes ecosystem quality in [0, 1] from window stats.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}

	var fish, sharks []float64
	var ratioSum, turnoverSum float64
	for _, w := range windows[qualityWarmupWindows:] {
		if w.Fish < qualityMinPop || w.Sharks < qualityMinPop {
			continue
		}
		fish = append(fish, float64(w.Fish))
		sharks = append(sharks, float64(w.Sharks))

		logErr := math.Log(float64(w.Fish) / float64(w.Sharks) / targetRatio)
		ratioSum += math.Exp(-logErr * logErr)

		// Predation should actually happen: eaten fish per shark per window
		perShark := float64(w.FishEaten) / math.Max(w.SharkMean, 1)
		turnoverSum += 1.0 - math.Exp(-perShark)
	}
	if len(fish) == 0 {
		return 0
	}

	n := float64(len(fish))
	sum := telemetry.Summarize(fish, sharks)
	stability := math.Exp(-(sum.FishCV*sum.FishCV + sum.SharkCV*sum.SharkCV))

	quality := qualityWeightRatio*ratioSum/n +
		qualityWeightStability*stability +
		qualityWeightTurnover*turnoverSum/n
	return math.Min(math.Max(quality, 0), 1)
}
