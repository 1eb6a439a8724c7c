package config

import "math"

// DifficultyManager derives starting conditions and ramp sizes from the
// configured difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether the speed ramps are active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the starting difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// SpeedCap returns the initial obstacle speed cap for a session.
// It grows from base to base * (1 + speedMultiplier) as the level rises.
func (d *DifficultyManager) SpeedCap(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// RampStep returns the increment applied by a ramp timer tick.
// Fixed difficulty disables ramps entirely.
func (d *DifficultyManager) RampStep(step float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return step
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
