package dodge

import (
	"testing"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func testRules(v Variant, removal string) Rules {
	cfg := config.DefaultDodgeConfig()
	return Rules{
		Field:         Field{W: 800, H: 480},
		RareBalls:     v.RareBalls,
		RisingBar:     v.RisingBar,
		WinNeedsBalls: v.WinNeedsBalls,
		RareEvery:     cfg.RareBalls.Every,
		Bonus:         cfg.RareBalls.Bonus,
		WinCount:      cfg.RareBalls.WinCount,
		Removal:       removal,
	}
}

func playingSession(r Rules) Session {
	cfg := config.DefaultDodgeConfig()
	s := NewSession(r, cfg.Player, cfg.Obstacles.SpeedCap, 0)
	s.Phase = PhasePlaying
	return s
}

// onPlayer returns a stationary obstacle centered on the player.
func onPlayer(s Session) Obstacle {
	x, y := s.Player.Center()
	return Obstacle{Circle: core.Circle{X: x, Y: y, R: 20}}
}

// farAway returns a slow obstacle in the top-left corner.
func farAway() Obstacle {
	return Obstacle{Circle: core.Circle{X: 30, Y: 0, R: 20}, Speed: 1}
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewSessionPlacesPlayer(t *testing.T) {
	s := NewSession(testRules(Classic, config.RemovalMatch), config.DefaultDodgeConfig().Player, 2, 0.05)

	if s.Phase != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", s.Phase)
	}
	if s.Player.X != 362.5 || s.Player.Y != 380 {
		t.Errorf("Player at (%v,%v), expected (362.5,380)", s.Player.X, s.Player.Y)
	}
	if s.Player.Lives != 3 || s.Score != 0 || s.Bar.Height != 0 || s.Bar.Speed != 0.05 {
		t.Errorf("unexpected fresh session: %+v", s)
	}
}

func TestRareBallEverySixthSpawn(t *testing.T) {
	tests := []struct {
		variant Variant
		want    []int // rare balls after spawns 1..18
	}{
		{Emotions, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3}},
		{Classic, make([]int, 18)},
	}

	for _, tc := range tests {
		t.Run(tc.variant.ID, func(t *testing.T) {
			r := testRules(tc.variant, config.RemovalMatch)
			s := playingSession(r)
			sp := NewSpawner(1, config.DefaultDodgeConfig().Obstacles)

			for i, want := range tc.want {
				s.Spawn(r, sp, nil)
				if len(s.RareBalls) != want {
					t.Fatalf("after spawn %d: %d rare balls, expected %d", i+1, len(s.RareBalls), want)
				}
			}
			if s.Spawned != 18 || len(s.Obstacles) != 18 {
				t.Errorf("Spawned=%d obstacles=%d, expected 18", s.Spawned, len(s.Obstacles))
			}
		})
	}
}

func TestObstaclePassingBottomScoresOne(t *testing.T) {
	for _, removal := range []string{config.RemovalMatch, config.RemovalFront} {
		t.Run(removal, func(t *testing.T) {
			r := testRules(Classic, removal)
			s := playingSession(r)
			// Lands exactly on H+R after one frame: not yet past.
			s.Obstacles = []Obstacle{{Circle: core.Circle{X: 30, Y: r.Field.H + 19, R: 20}, Speed: 1}}

			events := s.Update(r, nil)
			if s.Score != 0 || len(s.Obstacles) != 1 || len(events) != 0 {
				t.Fatalf("obstacle at H+R should stay: score=%d obstacles=%d", s.Score, len(s.Obstacles))
			}

			events = s.Update(r, nil)
			if s.Score != 1 {
				t.Errorf("Score = %d, expected 1", s.Score)
			}
			if len(s.Obstacles) != 0 {
				t.Errorf("passed obstacle should be removed, %d left", len(s.Obstacles))
			}
			if countEvents(events, core.EventObstacleDodged) != 1 {
				t.Errorf("expected one dodged event, got %v", events)
			}
		})
	}
}

func TestMatchRemovalDropsTriggeringObstacle(t *testing.T) {
	r := testRules(Classic, config.RemovalMatch)
	s := playingSession(r)
	s.Obstacles = []Obstacle{farAway(), onPlayer(s)}

	s.Update(r, nil)

	if s.Player.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Player.Lives)
	}
	if len(s.Obstacles) != 1 || s.Obstacles[0].X != 30 {
		t.Fatalf("expected only the far obstacle to remain, got %+v", s.Obstacles)
	}
	if s.Obstacles[0].Y != 1 {
		t.Errorf("far obstacle Y = %v, expected 1", s.Obstacles[0].Y)
	}
}

func TestFrontRemovalDropsOldestObstacle(t *testing.T) {
	r := testRules(Classic, config.RemovalFront)
	s := playingSession(r)
	hitter := onPlayer(s)
	s.Obstacles = []Obstacle{farAway(), hitter}

	s.Update(r, nil)

	if s.Player.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Player.Lives)
	}
	if len(s.Obstacles) != 1 || s.Obstacles[0].X != hitter.X {
		t.Fatalf("front removal should keep the hitting obstacle, got %+v", s.Obstacles)
	}
}

func TestFrontRemovalSkipsNextObstacle(t *testing.T) {
	r := testRules(Classic, config.RemovalFront)
	s := playingSession(r)
	passing := Obstacle{Circle: core.Circle{X: 30, Y: r.Field.H + 20, R: 20}, Speed: 1}
	second := Obstacle{Circle: core.Circle{X: 60, Y: 0, R: 20}, Speed: 1}
	third := Obstacle{Circle: core.Circle{X: 90, Y: 0, R: 20}, Speed: 1}
	s.Obstacles = []Obstacle{passing, second, third}

	s.Update(r, nil)

	if s.Score != 1 || len(s.Obstacles) != 2 {
		t.Fatalf("score=%d obstacles=%d, expected 1 and 2", s.Score, len(s.Obstacles))
	}
	if s.Obstacles[0].Y != 0 {
		t.Errorf("obstacle after a removal should not move this frame, Y = %v", s.Obstacles[0].Y)
	}
	if s.Obstacles[1].Y != 1 {
		t.Errorf("third obstacle Y = %v, expected 1", s.Obstacles[1].Y)
	}
}

func TestLivesFloorAndSingleLoss(t *testing.T) {
	for _, removal := range []string{config.RemovalMatch, config.RemovalFront} {
		t.Run(removal, func(t *testing.T) {
			r := testRules(Classic, removal)
			s := playingSession(r)
			for i := 0; i < 5; i++ {
				s.Obstacles = append(s.Obstacles, onPlayer(s))
			}

			var events []core.Event
			for frame := 0; frame < 10; frame++ {
				events = s.Update(r, events)
				if s.Player.Lives < 0 || s.Player.Lives > 3 {
					t.Fatalf("frame %d: lives %d out of range", frame, s.Player.Lives)
				}
			}

			if s.Phase != PhaseLost {
				t.Errorf("Phase = %v, expected lost", s.Phase)
			}
			if s.Player.Lives != 0 {
				t.Errorf("Lives = %d, expected 0", s.Player.Lives)
			}
			if n := countEvents(events, core.EventSessionLost); n != 1 {
				t.Errorf("%d lost events, expected exactly 1", n)
			}
			if n := countEvents(events, core.EventPlayerHit); n != 3 {
				t.Errorf("%d hit events, expected 3", n)
			}
		})
	}
}

func TestRareBallCollectedAddsBonus(t *testing.T) {
	r := testRules(Emotions, config.RemovalMatch)
	s := playingSession(r)
	x, y := s.Player.Center()
	s.RareBalls = []RareBall{
		{Circle: core.Circle{X: 30, Y: 0, R: 20}, Speed: 1},
		{Circle: core.Circle{X: x, Y: y, R: 20}},
	}

	events := s.Update(r, nil)

	if s.Score != 10 || s.Collected != 1 {
		t.Errorf("score=%d collected=%d, expected 10 and 1", s.Score, s.Collected)
	}
	if len(s.RareBalls) != 1 || s.RareBalls[0].X != 30 {
		t.Errorf("the collected ball should be the one removed, got %+v", s.RareBalls)
	}
	if countEvents(events, core.EventCollected) != 1 {
		t.Errorf("expected one collected event, got %v", events)
	}
	if s.Player.Lives != 3 {
		t.Errorf("rare balls must not cost lives, lives = %d", s.Player.Lives)
	}
}

func TestRareBallFallingOutScoresNothing(t *testing.T) {
	r := testRules(Emotions, config.RemovalMatch)
	s := playingSession(r)
	s.RareBalls = []RareBall{{Circle: core.Circle{X: 30, Y: r.Field.H + 20, R: 20}, Speed: 1}}

	s.Update(r, nil)

	if len(s.RareBalls) != 0 {
		t.Errorf("ball past the bottom should be removed")
	}
	if s.Score != 0 || s.Collected != 0 {
		t.Errorf("score=%d collected=%d, expected zeros", s.Score, s.Collected)
	}
}

func TestBarOverlapCostsLifeAndResets(t *testing.T) {
	r := testRules(Rising, config.RemovalMatch)
	s := playingSession(r)
	// Player bottom is 455 in a 480 high field; the bar reaches it above 25.
	s.Bar = Bar{Height: 24.5, Speed: 1}

	events := s.Update(r, nil)

	if s.Player.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Player.Lives)
	}
	if s.Bar.Height != 0 {
		t.Errorf("bar height = %v, expected reset to 0", s.Bar.Height)
	}
	if countEvents(events, core.EventPlayerHit) != 1 {
		t.Errorf("expected one hit event, got %v", events)
	}
}

func TestBarIgnoredWithoutRisingBar(t *testing.T) {
	r := testRules(Classic, config.RemovalMatch)
	s := playingSession(r)
	s.Bar = Bar{Height: 24.5, Speed: 1}

	s.Update(r, nil)

	if s.Bar.Height != 24.5 || s.Player.Lives != 3 {
		t.Errorf("classic variant should not touch the bar: %+v lives=%d", s.Bar, s.Player.Lives)
	}
}

func TestWinCondition(t *testing.T) {
	tests := []struct {
		variant   Variant
		collected int
		playerY   float64
		won       bool
	}{
		{Rising, 0, 0, true},
		{Rising, 0, 200, false},
		{Emotions, 2, 0, false},
		{Emotions, 3, 0, true},
		{Classic, 3, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.variant.ID, func(t *testing.T) {
			r := testRules(tc.variant, config.RemovalMatch)
			s := playingSession(r)
			s.Player.Y = tc.playerY // bottom at playerY + 75
			s.Bar = Bar{Height: 80}
			s.Collected = tc.collected

			events := s.Update(r, nil)

			if got := s.Phase == PhaseWon; got != tc.won {
				t.Errorf("won = %v, expected %v", got, tc.won)
			}
			if tc.won && countEvents(events, core.EventSessionWon) != 1 {
				t.Errorf("expected one won event, got %v", events)
			}
		})
	}
}

func TestUpdateNoopWhenNotPlaying(t *testing.T) {
	r := testRules(Emotions, config.RemovalMatch)
	for _, phase := range []Phase{PhaseIdle, PhaseLost, PhaseWon} {
		s := playingSession(r)
		s.Phase = phase
		s.Obstacles = []Obstacle{farAway()}
		s.Bar = Bar{Speed: 1}

		if events := s.Update(r, nil); len(events) != 0 {
			t.Errorf("%v: unexpected events %v", phase, events)
		}
		if s.Obstacles[0].Y != 0 || s.Bar.Height != 0 || s.Frames != 0 {
			t.Errorf("%v: session advanced", phase)
		}
	}
}

func TestSpawnerKeepsCirclesOnScreen(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Obstacles
	sp := NewSpawner(7, cfg)

	for i := 0; i < 500; i++ {
		o := sp.Obstacle(800, 2)
		if o.R < cfg.MinRadius || o.R >= cfg.MaxRadius {
			t.Fatalf("radius %v outside [%v,%v)", o.R, cfg.MinRadius, cfg.MaxRadius)
		}
		if o.X-o.R < 0 || o.X+o.R > 800 {
			t.Fatalf("circle at x=%v r=%v leaves the field", o.X, o.R)
		}
		if o.Y != -o.R {
			t.Fatalf("circle should start just above the field, y=%v r=%v", o.Y, o.R)
		}
		if o.Speed < 1 || o.Speed >= 3 {
			t.Fatalf("speed %v outside [1,3)", o.Speed)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Obstacles
	a := NewSpawner(99, cfg)
	b := NewSpawner(99, cfg)

	for i := 0; i < 50; i++ {
		if a.Obstacle(800, 2) != b.Obstacle(800, 2) {
			t.Fatalf("spawn %d differs for equal seeds", i)
		}
		if a.RareBall(800, 2) != b.RareBall(800, 2) {
			t.Fatalf("rare ball %d differs for equal seeds", i)
		}
	}
}
