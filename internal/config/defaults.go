package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: DodgeField{
			CellWidth:  10,
			CellHeight: 20,
		},
		Player: DodgePlayer{
			Width:       75,
			Height:      75,
			Lives:       3,
			StartOffset: 100,
		},
		Obstacles: DodgeObstacles{
			MinRadius:    20,
			MaxRadius:    50,
			MinSpeed:     1,
			SpeedCap:     2,
			SpeedCapStep: 0.5,
		},
		RareBalls: DodgeRareBalls{
			Every:    6,
			Bonus:    10,
			WinCount: 3,
		},
		Bar: DodgeBar{
			InitialSpeed: 0.05,
			SpeedStep:    0.01,
		},
		Timers: DodgeTimers{
			SpawnMS:     1000,
			SpeedRampMS: 20000,
			BarRampMS:   30000,
		},
		Rules: DodgeRules{
			Removal: RemovalMatch,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
