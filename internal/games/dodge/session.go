package dodge

import (
	"slices"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Field is the play area in world units. The origin is the top-left corner
// and y grows downwards.
type Field struct {
	W, H float64
}

// Rules are the fixed parameters a session is simulated under.
type Rules struct {
	Field         Field
	RareBalls     bool   // rare balls spawn and can be collected
	RisingBar     bool   // the hazard bar rises from the bottom
	WinNeedsBalls bool   // winning also requires WinCount collected balls
	RareEvery     int    // one rare ball per RareEvery obstacle spawns
	Bonus         int    // score for a collected rare ball
	WinCount      int    // collected balls needed to win
	Removal       string // config.RemovalMatch or config.RemovalFront
}

// Session holds every mutable field of one play session.
type Session struct {
	Phase     Phase
	Player    Player
	Obstacles []Obstacle // spawn order, oldest first
	RareBalls []RareBall
	Bar       Bar
	Score     int
	Collected int
	Spawned   int
	SpeedCap  float64
	Frames    int
}

// NewSession returns a fresh session with the player near the bottom center
// of the field.
func NewSession(r Rules, p config.DodgePlayer, speedCap, barSpeed float64) Session {
	return Session{
		Phase: PhaseIdle,
		Player: Player{
			Box: core.Box{
				X: r.Field.W/2 - p.Width/2,
				Y: r.Field.H - p.StartOffset,
				W: p.Width,
				H: p.Height,
			},
			Lives: p.Lives,
		},
		Bar:      Bar{Speed: barSpeed},
		SpeedCap: speedCap,
	}
}

// Spawn adds one obstacle and, on every RareEvery-th spawn of a rare-ball
// session, one rare ball.
func (s *Session) Spawn(r Rules, sp *Spawner, events []core.Event) []core.Event {
	s.Obstacles = append(s.Obstacles, sp.Obstacle(r.Field.W, s.SpeedCap))
	s.Spawned++
	events = append(events, core.Event{Kind: core.EventObstacleSpawned, Value: s.Spawned})

	if r.RareBalls && r.RareEvery > 0 && s.Spawned%r.RareEvery == 0 {
		s.RareBalls = append(s.RareBalls, sp.RareBall(r.Field.W, s.SpeedCap))
	}
	return events
}

// Update advances the session by one frame. It may move the session to
// PhaseLost or PhaseWon; nothing else happens once the phase has changed.
func (s *Session) Update(r Rules, events []core.Event) []core.Event {
	if s.Phase != PhasePlaying {
		return events
	}
	s.Frames++

	if r.Removal == config.RemovalFront {
		events = s.advanceObstaclesFront(r, events)
	} else {
		events = s.advanceObstaclesMatch(r, events)
	}
	if s.Phase != PhasePlaying {
		return events
	}

	if r.RareBalls {
		events = s.advanceRareBalls(r, events)
	}

	if r.RisingBar {
		events = s.advanceBar(r, events)
		if s.Phase != PhasePlaying {
			return events
		}
		events = s.checkWin(r, events)
	}
	return events
}

// advanceObstaclesMatch moves every obstacle and removes exactly the ones
// that left the field or hit the player.
func (s *Session) advanceObstaclesMatch(r Rules, events []core.Event) []core.Event {
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if s.Phase != PhasePlaying {
			kept = append(kept, o)
			continue
		}

		o.Y += o.Speed
		passed := o.Y > r.Field.H+o.R
		hit := core.CircleIntersectsBox(o.Circle, s.Player.Box)

		if passed {
			s.Score++
			events = append(events, core.Event{Kind: core.EventObstacleDodged, Value: 1})
		}
		if hit {
			events = s.hit(events)
		}
		if passed || hit {
			continue
		}
		kept = append(kept, o)
	}
	s.Obstacles = kept
	return events
}

// advanceObstaclesFront reproduces the queue behavior of the first release:
// whichever obstacle triggers, the oldest one is dropped, and the iteration
// index keeps counting over the shrunken queue so the next obstacle is
// skipped for this frame.
func (s *Session) advanceObstaclesFront(r Rules, events []core.Event) []core.Event {
	for i := 0; i < len(s.Obstacles); i++ {
		o := &s.Obstacles[i] // stays valid after popFront, which only reslices

		o.Y += o.Speed
		if o.Y > r.Field.H+o.R {
			s.popFront()
			s.Score++
			events = append(events, core.Event{Kind: core.EventObstacleDodged, Value: 1})
		}
		if core.CircleIntersectsBox(o.Circle, s.Player.Box) {
			s.popFront()
			events = s.hit(events)
			if s.Phase != PhasePlaying {
				return events
			}
		}
	}
	return events
}

// popFront removes the oldest obstacle. Empty queues are left alone.
func (s *Session) popFront() {
	if len(s.Obstacles) == 0 {
		return
	}
	s.Obstacles = s.Obstacles[1:]
}

// advanceRareBalls moves rare balls, dropping the ones that fell out and
// collecting the ones that touch the player.
func (s *Session) advanceRareBalls(r Rules, events []core.Event) []core.Event {
	for i := 0; i < len(s.RareBalls); i++ {
		b := &s.RareBalls[i]
		b.Y += b.Speed

		switch {
		case b.Y > r.Field.H+b.R:
			s.RareBalls = slices.Delete(s.RareBalls, i, i+1)
			i--
		case core.CircleIntersectsBox(b.Circle, s.Player.Box):
			s.RareBalls = slices.Delete(s.RareBalls, i, i+1)
			i--
			s.Score += r.Bonus
			s.Collected++
			events = append(events, core.Event{Kind: core.EventCollected, Value: s.Collected})
		}
	}
	return events
}

// advanceBar raises the bar. Touching the player costs a life and drops the
// bar back to the bottom.
func (s *Session) advanceBar(r Rules, events []core.Event) []core.Event {
	s.Bar.Height += s.Bar.Speed
	if s.Bar.Height < 0 {
		s.Bar.Height = 0
	}
	if s.Player.Bottom() > r.Field.H-s.Bar.Height {
		s.Bar.Height = 0
		events = s.hit(events)
	}
	return events
}

// checkWin ends the session when the player has climbed entirely into the
// top band whose depth equals the bar height, provided enough rare balls were
// collected where the variant asks for them.
//
// The test uses the player's bottom edge, not its top edge (Y). Comparing Y
// would award a win on the first frame the bar rises while the pointer sits
// on the top row.
func (s *Session) checkWin(r Rules, events []core.Event) []core.Event {
	if r.WinNeedsBalls && s.Collected < r.WinCount {
		return events
	}
	if s.Player.Bottom() < s.Bar.Height {
		s.Phase = PhaseWon
		events = append(events, core.Event{Kind: core.EventSessionWon, Value: s.Score})
	}
	return events
}

// hit costs one life and ends the session when none are left.
func (s *Session) hit(events []core.Event) []core.Event {
	if s.Player.Lives > 0 {
		s.Player.Lives--
	}
	events = append(events, core.Event{Kind: core.EventPlayerHit, Value: s.Player.Lives})
	if s.Player.Lives == 0 && s.Phase == PhasePlaying {
		s.Phase = PhaseLost
		events = append(events, core.Event{Kind: core.EventSessionLost, Value: s.Score})
	}
	return events
}
