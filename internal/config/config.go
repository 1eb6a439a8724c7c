// Package config provides YAML/TOML game configuration loading,
// live reloading and difficulty management for the dodge arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Removal policies for obstacles that trigger a score or a hit.
const (
	RemovalMatch = "match" // remove the obstacle that triggered the event
	RemovalFront = "front" // always pop the oldest obstacle
)

// DodgeConfig contains all configuration for the dodge games.
type DodgeConfig struct {
	Field      DodgeField       `yaml:"field" toml:"field"`
	Player     DodgePlayer      `yaml:"player" toml:"player"`
	Obstacles  DodgeObstacles   `yaml:"obstacles" toml:"obstacles"`
	RareBalls  DodgeRareBalls   `yaml:"rare_balls" toml:"rare_balls"`
	Bar        DodgeBar         `yaml:"bar" toml:"bar"`
	Timers     DodgeTimers      `yaml:"timers" toml:"timers"`
	Rules      DodgeRules       `yaml:"rules" toml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// DodgeField maps terminal cells onto world units.
type DodgeField struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// DodgePlayer defines the player sprite.
type DodgePlayer struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Lives       int     `yaml:"lives" toml:"lives"`
	StartOffset float64 `yaml:"start_offset" toml:"start_offset"`
}

// DodgeObstacles defines falling obstacle parameters.
type DodgeObstacles struct {
	MinRadius    float64 `yaml:"min_radius" toml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius" toml:"max_radius"`
	MinSpeed     float64 `yaml:"min_speed" toml:"min_speed"`
	SpeedCap     float64 `yaml:"speed_cap" toml:"speed_cap"`
	SpeedCapStep float64 `yaml:"speed_cap_step" toml:"speed_cap_step"`
}

// DodgeRareBalls defines collectible parameters.
type DodgeRareBalls struct {
	Every    int `yaml:"every" toml:"every"`
	Bonus    int `yaml:"bonus" toml:"bonus"`
	WinCount int `yaml:"win_count" toml:"win_count"`
}

// DodgeBar defines the rising hazard bar.
type DodgeBar struct {
	InitialSpeed float64 `yaml:"initial_speed" toml:"initial_speed"`
	SpeedStep    float64 `yaml:"speed_step" toml:"speed_step"`
}

// DodgeTimers defines the periods of the three session timers.
type DodgeTimers struct {
	SpawnMS     int `yaml:"spawn_ms" toml:"spawn_ms"`
	SpeedRampMS int `yaml:"speed_ramp_ms" toml:"speed_ramp_ms"`
	BarRampMS   int `yaml:"bar_ramp_ms" toml:"bar_ramp_ms"`
}

// Spawn returns the obstacle spawn period.
func (t DodgeTimers) Spawn() time.Duration {
	return time.Duration(t.SpawnMS) * time.Millisecond
}

// SpeedRamp returns the obstacle speed ramp period.
func (t DodgeTimers) SpeedRamp() time.Duration {
	return time.Duration(t.SpeedRampMS) * time.Millisecond
}

// BarRamp returns the bar speed ramp period.
func (t DodgeTimers) BarRamp() time.Duration {
	return time.Duration(t.BarRampMS) * time.Millisecond
}

// DodgeRules holds rule switches.
type DodgeRules struct {
	Removal string `yaml:"removal" toml:"removal"`
}

// DifficultyConfig defines how presets shape the starting conditions.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled" toml:"enabled"`
	InitialLevel float64       `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling" toml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to the initial speed cap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables the speed ramps.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports every value that would make the simulation meaningless.
func (c DodgeConfig) Validate() error {
	var errs []error
	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("field: cell size must be positive, got %vx%v", c.Field.CellWidth, c.Field.CellHeight))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player: lives must be positive, got %d", c.Player.Lives))
	}
	if c.Obstacles.MinRadius <= 0 || c.Obstacles.MaxRadius < c.Obstacles.MinRadius {
		errs = append(errs, fmt.Errorf("obstacles: radius range [%v, %v) is invalid", c.Obstacles.MinRadius, c.Obstacles.MaxRadius))
	}
	if c.Obstacles.SpeedCap < 0 {
		errs = append(errs, fmt.Errorf("obstacles: speed_cap must not be negative, got %v", c.Obstacles.SpeedCap))
	}
	if c.RareBalls.Every <= 0 {
		errs = append(errs, fmt.Errorf("rare_balls: every must be positive, got %d", c.RareBalls.Every))
	}
	if c.Timers.SpawnMS <= 0 || c.Timers.SpeedRampMS <= 0 || c.Timers.BarRampMS <= 0 {
		errs = append(errs, errors.New("timers: all periods must be positive"))
	}
	switch c.Rules.Removal {
	case RemovalMatch, RemovalFront:
	default:
		errs = append(errs, fmt.Errorf("rules: unknown removal policy %q", c.Rules.Removal))
	}
	return errors.Join(errs...)
}
