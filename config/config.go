// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen     ScreenConfig    `yaml:"screen"`
	Simulation Simulation      `yaml:"simulation"`
	Scheduler  SchedulerConfig `yaml:"scheduler"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`
	Render     RenderConfig    `yaml:"render"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SchedulerConfig controls how ticks are spread over frames.
type SchedulerConfig struct {
	TimeSliceMS       float64 `yaml:"time_slice_ms"`      // Work budget per frame before yielding
	TickIntervalMS    float64 `yaml:"tick_interval_ms"`   // Minimum time between auto-started ticks
	PlacementAttempts int     `yaml:"placement_attempts"` // Random cells tried per initial creature
}

// TelemetryConfig holds statistics parameters.
type TelemetryConfig struct {
	HistorySize      int  `yaml:"history_size"`       // Rows kept for the statistics table
	StatsWindow      int  `yaml:"stats_window"`       // Ticks per aggregated window
	PerfWindow       int  `yaml:"perf_window"`        // Ticks averaged by the perf collector
	StopOnExtinction bool `yaml:"stop_on_extinction"` // Pause when a species dies out
}

// RenderConfig holds 3D drawing parameters.
type RenderConfig struct {
	CubeSize   float64 `yaml:"cube_size"`
	FishColor  string  `yaml:"fish_color"`
	SharkColor string  `yaml:"shark_color"`
	ShowBounds bool    `yaml:"show_bounds"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TimeSlice    time.Duration // Scheduler.TimeSliceMS as a duration
	TickInterval time.Duration // Scheduler.TickIntervalMS as a duration
	Capacity     int           // Instances per species the renderer must hold
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Simulation.Sanitize()
	if err := cfg.Simulation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation settings: %w", err)
	}
	if _, _, err := cfg.Render.Colors(); err != nil {
		return nil, fmt.Errorf("invalid render settings: %w", err)
	}

	cfg.computeDerived()
	return cfg, nil
}

// Default returns the embedded defaults. It panics if they do not parse,
// which can only happen if defaults.yaml is broken.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// SetSimulation replaces the simulation settings and recomputes derived values.
// The caller is responsible for validating sim first.
func (c *Config) SetSimulation(sim Simulation) {
	c.Simulation = sim
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TimeSlice = time.Duration(c.Scheduler.TimeSliceMS * float64(time.Millisecond))
	if c.Derived.TimeSlice <= 0 {
		c.Derived.TimeSlice = 8 * time.Millisecond
	}
	c.Derived.TickInterval = time.Duration(c.Scheduler.TickIntervalMS * float64(time.Millisecond))
	if c.Scheduler.PlacementAttempts <= 0 {
		c.Scheduler.PlacementAttempts = 100
	}
	if c.Telemetry.HistorySize <= 0 {
		c.Telemetry.HistorySize = 200
	}
	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 1
	}

	// Every cell may hold a creature of either species
	c.Derived.Capacity = c.Simulation.Dimensions.Volume()
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
