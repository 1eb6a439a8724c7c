package dodge

import "github.com/vovakirdan/dodge-arcade/internal/core"

// Phase is the top-level mode of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseLost
	PhaseWon
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Ended reports whether the phase is a finished session.
func (p Phase) Ended() bool {
	return p == PhaseLost || p == PhaseWon
}

// Emotion labels a rare ball.
type Emotion int

const (
	EmotionJoy Emotion = iota
	EmotionSadness
	EmotionAnger
	EmotionFear
	EmotionSurprise
)

// AllEmotions lists every emotion a rare ball can carry.
var AllEmotions = [...]Emotion{EmotionJoy, EmotionSadness, EmotionAnger, EmotionFear, EmotionSurprise}

// String returns the emotion name.
func (e Emotion) String() string {
	switch e {
	case EmotionJoy:
		return "joy"
	case EmotionSadness:
		return "sadness"
	case EmotionAnger:
		return "anger"
	case EmotionFear:
		return "fear"
	case EmotionSurprise:
		return "surprise"
	default:
		return "unknown"
	}
}

// Glyph returns the character drawn at the center of a rare ball.
func (e Emotion) Glyph() rune {
	switch e {
	case EmotionJoy:
		return 'J'
	case EmotionSadness:
		return 'S'
	case EmotionAnger:
		return 'A'
	case EmotionFear:
		return 'F'
	case EmotionSurprise:
		return '!'
	default:
		return '?'
	}
}

// Palette is the fixed set of obstacle colors.
var Palette = [...]core.Color{core.ColorLime, core.ColorIndigo, core.ColorLavender}

// RareBallColor marks every rare ball.
const RareBallColor = core.ColorGold

// Player is the pointer-controlled sprite.
type Player struct {
	core.Box
	Lives int
}

// Obstacle is a falling hazard.
type Obstacle struct {
	core.Circle
	Speed float64 // world units per frame
	Color core.Color
}

// RareBall is a falling collectible.
type RareBall struct {
	core.Circle
	Speed   float64
	Emotion Emotion
}

// Bar is the hazard rising from the bottom of the field.
type Bar struct {
	Height float64
	Speed  float64 // world units per frame
}
