package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated wall-clock time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score of this process
	Phase     string // Name of the current phase ("idle", "playing", ...)
	GameOver  bool   // Whether the current session has ended (won or lost)
	Won       bool   // Whether the session ended in a win
	Paused    bool   // Whether the game is paused
	Collected int    // Collectibles picked up this session
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventObstacleSpawned
	EventObstacleDodged
	EventPlayerHit
	EventCollected
	EventSessionLost
	EventSessionWon
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstacleDodged:
		return "obstacle_dodged"
	case EventPlayerHit:
		return "player_hit"
	case EventCollected:
		return "collected"
	case EventSessionLost:
		return "session_lost"
	case EventSessionWon:
		return "session_won"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence during a tick.
type Event struct {
	Kind  EventKind
	Value int // Kind-specific payload (score delta, lives left, ...)
}
