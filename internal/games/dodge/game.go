// Package dodge implements a falling-obstacle dodging game in three variants.
// The player steers a sprite with the mouse (or arrow keys) and dodges
// circles that fall from the top of the screen. Later variants add a hazard
// bar rising from the bottom and collectible rare balls.
package dodge

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/logging"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

// Variant selects the features of one release of the game.
type Variant struct {
	ID            string
	Title         string
	Blurb         string
	RareBalls     bool
	RisingBar     bool
	WinNeedsBalls bool
}

// The shipped variants.
var (
	Classic = Variant{
		ID:    "dodge",
		Title: "Dodge",
		Blurb: "Dodge the falling circles for as long as you can.",
	}
	Rising = Variant{
		ID:        "dodge_rising",
		Title:     "Dodge: Rising Tide",
		Blurb:     "Climb clear of the rising bar to win.",
		RisingBar: true,
	}
	Emotions = Variant{
		ID:            "dodge_emotions",
		Title:         "Dodge: Emotion Catcher",
		Blurb:         "Catch three emotions, then escape the bar.",
		RareBalls:     true,
		RisingBar:     true,
		WinNeedsBalls: true,
	}
)

// Variants lists every shipped variant in menu order.
func Variants() []Variant {
	return []Variant{Classic, Rising, Emotions}
}

// Settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	removalOverride  string
	configSource     *config.Source
	logger           = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetRemoval overrides the obstacle removal policy ("match" or "front").
func SetRemoval(policy string) {
	removalOverride = policy
}

// SetConfigSource makes games read their configuration from src, picking up
// reloads at the next session start. A nil source restores file loading.
func SetConfigSource(src *config.Source) {
	configSource = src
}

// SetLogger sets the logger new games report phase changes to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// highScores holds the best score per variant for the life of the process,
// so it outlives the Game instances a menu creates and drops.
var highScores = struct {
	mu     sync.Mutex
	byGame map[string]int
}{byGame: make(map[string]int)}

func processHighScore(id string) int {
	highScores.mu.Lock()
	defer highScores.mu.Unlock()
	return highScores.byGame[id]
}

// recordHighScore raises the variant's best to score and returns the result.
func recordHighScore(id string, score int) int {
	highScores.mu.Lock()
	defer highScores.mu.Unlock()
	if score > highScores.byGame[id] {
		highScores.byGame[id] = score
	}
	return highScores.byGame[id]
}

// Game implements the dodge game logic.
type Game struct {
	variant    Variant
	runtime    core.RuntimeConfig
	cfg        config.DodgeConfig
	cfgGen     int
	difficulty *config.DifficultyManager
	rules      Rules
	session    Session
	spawner    *Spawner
	timers     sessionTimers
	highScore  int // cached process best for this variant
	paused     bool
	events     []core.Event
	logger     *log.Logger
}

// New creates a new game instance for the given variant.
func New(v Variant) *Game {
	return &Game{
		variant:   v,
		highScore: processHighScore(v.ID),
		logger:    logger.With("game", v.ID),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Blurb returns a one-line description of the variant.
func (g *Game) Blurb() string {
	return g.variant.Blurb
}

// Reset initializes the game and returns it to the idle phase.
// The process-wide high score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadConfig()

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, g.cfg.Obstacles)
	} else {
		g.spawner.Reset(runtime.Seed, g.cfg.Obstacles)
	}
	if g.timers.spawn == nil {
		g.timers = newSessionTimers(g.cfg.Timers)
	}
	g.timers.cancel()
	g.timers.configure(g.cfg.Timers)

	g.session = g.newSession()
	g.paused = false
	g.events = g.events[:0]
}

// Resize adapts the play field to a new screen size without ending the
// current session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.rules.Field = g.field()
}

// loadConfig refreshes the configuration from the source or the files.
func (g *Game) loadConfig() {
	var cfg config.DodgeConfig
	if configSource != nil {
		cfg, g.cfgGen = configSource.Get()
	} else {
		loaded, err := config.LoadDodge(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "error", err)
		}
		cfg = loaded
	}

	config.ApplyDodgePreset(&cfg, difficultyPreset)
	if err := config.ApplyRemoval(&cfg, removalOverride); err != nil {
		g.logger.Warn("ignoring removal override", "error", err)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rules = Rules{
		Field:         g.field(),
		RareBalls:     g.variant.RareBalls,
		RisingBar:     g.variant.RisingBar,
		WinNeedsBalls: g.variant.WinNeedsBalls,
		RareEvery:     cfg.RareBalls.Every,
		Bonus:         cfg.RareBalls.Bonus,
		WinCount:      cfg.RareBalls.WinCount,
		Removal:       cfg.Rules.Removal,
	}
}

// field converts the screen size into world units.
func (g *Game) field() Field {
	return Field{
		W: float64(g.runtime.ScreenW) * g.cfg.Field.CellWidth,
		H: float64(g.runtime.ScreenH) * g.cfg.Field.CellHeight,
	}
}

func (g *Game) newSession() Session {
	return NewSession(g.rules, g.cfg.Player, g.difficulty.SpeedCap(g.cfg.Obstacles.SpeedCap), g.cfg.Bar.InitialSpeed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.session.Phase != PhasePlaying {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.movePlayer(in)
	g.runTimers()
	g.events = g.session.Update(g.rules, g.events)

	if g.session.Phase.Ended() {
		g.finish()
	}
	return g.result()
}

// start begins a new session: fresh counters, empty collections, all timers
// running.
func (g *Game) start() {
	if configSource != nil {
		if _, gen := configSource.Get(); gen != g.cfgGen {
			g.loadConfig()
			g.spawner.Reset(g.runtime.Seed+int64(gen), g.cfg.Obstacles)
			g.timers.configure(g.cfg.Timers)
			g.logger.Info("config reloaded", "generation", gen)
		}
	}

	g.session = g.newSession()
	g.session.Phase = PhasePlaying
	g.paused = false
	g.timers.start(g.variant.RisingBar)

	g.events = append(g.events, core.Event{Kind: core.EventSessionStarted})
	g.logger.Debug("session started",
		"high_score", g.highScore,
		"removal", g.rules.Removal,
		"difficulty", g.difficulty.Level(),
		"ramps", g.difficulty.IsEnabled(),
	)
}

// finish leaves the playing phase: timers stop and the high score updates.
func (g *Game) finish() {
	g.timers.cancel()
	g.paused = false

	g.highScore = recordHighScore(g.variant.ID, g.session.Score)
	g.logger.Info("session ended",
		"phase", g.session.Phase,
		"score", g.session.Score,
		"collected", g.session.Collected,
		"frames", g.session.Frames,
		"high_score", g.highScore,
	)
}

// movePlayer applies pointer moves and keyboard nudges. The pointer becomes
// the player's center; nudges shift the player by one cell. Positions are
// not clamped to the field.
func (g *Game) movePlayer(in core.InputFrame) {
	cw, ch := g.cfg.Field.CellWidth, g.cfg.Field.CellHeight
	p := &g.session.Player

	if pt, ok := in.Pointer(); ok {
		p.CenterOn((float64(pt.X)+0.5)*cw, (float64(pt.Y)+0.5)*ch)
	}
	if in.Has(core.ActionLeft) {
		p.X -= cw
	}
	if in.Has(core.ActionRight) {
		p.X += cw
	}
	if in.Has(core.ActionUp) {
		p.Y -= ch
	}
	if in.Has(core.ActionDown) {
		p.Y += ch
	}
}

// runTimers feeds one tick of simulated time to the session timers and
// applies whatever fired.
func (g *Game) runTimers() {
	fired := g.timers.advance(g.runtime.TickDuration())

	for i := 0; i < fired.spawn; i++ {
		g.events = g.session.Spawn(g.rules, g.spawner, g.events)
	}
	for i := 0; i < fired.speedRamp; i++ {
		g.session.SpeedCap += g.difficulty.RampStep(g.cfg.Obstacles.SpeedCapStep)
	}
	for i := 0; i < fired.barRamp; i++ {
		g.session.Bar.Speed += g.difficulty.RampStep(g.cfg.Bar.SpeedStep)
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Session returns a copy of the current session for inspection.
func (g *Game) Session() Session {
	return g.session
}

// HighScore returns the best score this process has seen for the variant,
// across every Game created for it.
func (g *Game) HighScore() int {
	return g.highScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score,
		HighScore: g.highScore,
		Phase:     g.session.Phase.String(),
		GameOver:  g.session.Phase.Ended(),
		Won:       g.session.Phase == PhaseWon,
		Paused:    g.paused,
		Collected: g.session.Collected,
	}
}

// Register every variant with the registry
func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
