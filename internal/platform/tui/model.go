package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/logging"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

// phaseIdle is the phase name of a game waiting for its first session.
const phaseIdle = "idle"

// Resizer is implemented by games that can adopt a new screen size without
// restarting. Other games are Reset on resize.
type Resizer interface {
	Resize(screenW, screenH int)
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name finished runs are recorded under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the logger for run bookkeeping.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets B/Esc leave an idle, finished or paused game instead
// of being passed to it.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.allowBack = true }
}

// Model is the Bubble Tea model for running arcade games.
// It is the frame driver: one tick message per frame, each scheduling the
// next, forwarding the input gathered since the previous tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	tickID     int
	player     string
	logger     *log.Logger
	now        func() time.Time
	startedAt  time.Time // start of the current session
	runSaved   bool      // whether the current finished session was recorded
	allowBack  bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		tickID:     nextTickID(),
		player:     os.Getenv("USER"),
		logger:     logging.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickDuration(), m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.allowBack && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == phaseIdle) {
		m.backToMenu = true
		// Ends a standalone program; SessionModel switches screens instead.
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	prev := m.gameState
	// The frame is cleared and reused below, so the game gets its own copy.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventSessionStarted {
			m.startedAt = m.now()
			m.runSaved = false
		}
	}

	// Record each finished session once
	if m.gameState.GameOver && !prev.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickDuration(), m.tickID)
}

// saveRun records the finished session. Storage failures are logged and
// never interrupt play.
func (m *Model) saveRun() {
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	var duration time.Duration
	if !m.startedAt.IsZero() {
		duration = m.now().Sub(m.startedAt)
	}

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"player", m.player,
		"outcome", outcome,
		"score", m.gameState.Score,
		"duration", duration.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     m.gameState.Score,
		Outcome:   outcome,
		Collected: m.gameState.Collected,
		Duration:  duration,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// ProgramOptions are the Bubble Tea options every game program runs with.
// All-motion mouse reporting turns plain pointer moves into MouseMsg.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, ProgramOptions()...)

	_, err := p.Run()
	return err
}
