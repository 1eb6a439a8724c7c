package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/platform/tui"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRemoval    string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Mouse        - Steer the player
  Left/Right   - Nudge the player one cell
  Enter/Space  - Start a session
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Removal options:
  match  - A scoring or hitting obstacle removes itself
  front  - The oldest obstacle is removed instead

Examples:
  dodge play dodge
  dodge play dodge_rising --difficulty easy
  dodge play dodge --removal front
  dodge play dodge_emotions --config ./my-dodge.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape how games are configured.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagRemoval, "removal", "", "Obstacle removal policy: match, front")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
}

// configureGames applies the game flags. With --watch it starts a watcher on
// the config file that lives until ctx is cancelled.
func configureGames(ctx context.Context) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	check := config.DefaultDodgeConfig()
	if err := config.ApplyRemoval(&check, flagRemoval); err != nil {
		return err
	}

	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)
	dodge.SetRemoval(flagRemoval)

	if !flagWatch {
		dodge.SetConfigSource(nil)
		return nil
	}
	if flagConfig == "" {
		return errors.New("--watch needs --config")
	}

	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	src := config.NewSource(cfg)
	dodge.SetConfigSource(src)

	watchLog := logger.WithPrefix("config")
	go func() {
		err := config.Watch(ctx, flagConfig,
			func(c config.DodgeConfig) {
				src.Set(c)
				watchLog.Info("config reloaded", "path", flagConfig)
			},
			func(err error) {
				watchLog.Warn("config reload failed", "path", flagConfig, "error", err)
			},
		)
		if err != nil {
			watchLog.Error("config watcher stopped", "error", err)
		}
	}()
	return nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'dodge list' to see available games", gameID)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := configureGames(ctx); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(),
		tui.WithPlayer(playerName()),
		tui.WithLogger(logger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName is the name local runs are recorded under.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
