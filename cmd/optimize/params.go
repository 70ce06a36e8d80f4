package main

import (
	"math"

	"github.com/pthm-cable/wator/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Integer bool    // Rounded before it is applied
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
// Densities are fractions of the lattice volume.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "fish_maturity", Path: "simulation.fish.maturity_age", Min: 1, Max: 20, Integer: true},
			{Name: "shark_maturity", Path: "simulation.shark.maturity_age", Min: 1, Max: 30, Integer: true},
			{Name: "shark_starve", Path: "simulation.shark.starve_limit", Min: 1, Max: 20, Integer: true},
			{Name: "fish_density", Path: "simulation.fish.count", Min: 0.05, Max: 0.6},
			{Name: "shark_density", Path: "simulation.shark.count", Min: 0.005, Max: 0.2},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds and integers are whole.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Min(math.Max(v[i], spec.Min), spec.Max)
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// Apply returns sim with the parameter values applied. Order must match Specs.
func (pv *ParamVector) Apply(sim config.Simulation, values []float64) config.Simulation {
	clamped := pv.Clamp(values)
	volume := float64(sim.Dimensions.Volume())

	sim.Fish.MaturityAge = int(clamped[0])
	sim.Shark.MaturityAge = int(clamped[1])
	sim.Shark.StarveLimit = int(clamped[2])
	sim.Fish.Count = int(math.Round(clamped[3] * volume))
	sim.Shark.Count = int(math.Round(clamped[4] * volume))
	return sim
}

// Extract returns the parameter values of sim, clamped to the bounds.
func (pv *ParamVector) Extract(sim config.Simulation) []float64 {
	volume := float64(sim.Dimensions.Volume())
	return pv.Clamp([]float64{
		float64(sim.Fish.MaturityAge),
		float64(sim.Shark.MaturityAge),
		float64(sim.Shark.StarveLimit),
		float64(sim.Fish.Count) / volume,
		float64(sim.Shark.Count) / volume,
	})
}
