// dodge is a terminal arcade game: steer with the mouse and dodge the
// circles falling from the top of the screen.
//
// Usage:
//
//	dodge list              - List available variants
//	dodge play <game>       - Play a variant
//	dodge menu              - Start menu to pick variants interactively
//	dodge serve             - Start SSH server for remote play
//	dodge scores <game>     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.dodge/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//
// Defaults for --db, --log-file, --log-level and --ssh may also come from
// DODGE_DB, DODGE_LOG_FILE, DODGE_LOG_LEVEL and DODGE_SSH_ADDR, read from the
// environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - dodge falling circles in your terminal",
	Long: `Dodge is a terminal arcade game. Move the mouse to steer your sprite
and dodge the circles falling from the top of the screen.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  dodge list
  dodge play dodge
  dodge play dodge_emotions --difficulty hard
  dodge menu
  dodge serve --ssh :2222
  dodge scores dodge_rising`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env defaults and opens the log file before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvOr(config.EnvDBPath, flagDBPath)
	}
	if !flags.Changed("log-file") {
		flagLogFile = config.EnvOr(config.EnvLogFile, flagLogFile)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr(config.EnvLogLevel, flagLogLevel)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, closer, err := logging.OpenFile(flagLogFile, logging.Options{
		Prefix: "dodge",
		Level:  flagLogLevel,
	})
	if err != nil {
		return err
	}
	logger, closeLog = l, closer
	dodge.SetLogger(logger)

	logger.Debug("starting", "command", cmd.Name(), "fps", flagFPS, "db", flagDBPath)
	return nil
}

// commandLogger returns the file logger when one is configured, otherwise a
// stderr logger. Used by commands that do not take over the terminal.
func commandLogger(prefix string) *log.Logger {
	if flagLogFile != "" {
		return logger.WithPrefix(prefix)
	}
	l, err := logging.New(os.Stderr, logging.Options{Prefix: prefix, Level: flagLogLevel})
	if err != nil {
		return logger
	}
	return l
}
