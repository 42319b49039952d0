// snake is a grid snake game with sprite-sheet pieces, played in the
// terminal, in a desktop window or over SSH.
//
// Usage:
//
//	snake list              - List available modes
//	snake play [mode]       - Play in the terminal
//	snake window [mode]     - Play in a desktop window
//	snake menu              - Pick modes and view scores interactively
//	snake scores [mode]     - Show high scores
//	snake serve             - Start SSH server for remote play
//	snake sim [mode]        - Run a scripted game headless and print the board
//
// Global flags:
//
//	--tick <ms>       - Milliseconds between moves (default from config)
//	--seed <value>    - RNG seed for reproducible food placement
//	--db <path>       - Scores database (default: ~/.snake/scores.db)
//	--config <path>   - Config YAML (default search: ~/.snake/configs, ./configs)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spritesnake/internal/config"
	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/games/snake"
	"github.com/vovakirdan/spritesnake/internal/storage"
)

var (
	// Global flags
	flagTick     int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagCols     int
	flagRows     int
	flagLength   int
	flagFood     int
)

// Settings resolved by the root command before any subcommand runs.
var (
	settings config.SnakeConfig
	logger   = log.New(io.Discard)
	logFile  *os.File
)

// annotationTUI marks commands that own the terminal. They only log
// when --log-file is given.
const annotationTUI = "tui"

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Sprite Snake - the classic grid snake",
	Long: `Sprite Snake is the classic grid snake game. Steer the snake to the
food, grow by one segment per bite and avoid the walls and your own body.

Available commands:
  list     - Show all modes
  play     - Play in the terminal
  window   - Play in a desktop window with sprite graphics
  menu     - Interactive mode picker and scoreboard
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a scripted game without a display

Examples:
  snake play
  snake play snake_long --tick 150
  snake window --config ./my-snake.yaml
  snake sim --seed 1 --script "..U..L"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagTick, "tick", 0, "Milliseconds between moves (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", filepath.Join(config.DataDir(), "scores.db"), "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.IntVar(&flagCols, "cols", 0, "Board width in cells (0 = from config)")
	pf.IntVar(&flagRows, "rows", 0, "Board height in cells (0 = from config)")
	pf.IntVar(&flagLength, "length", 0, "Body segments at start (0 = mode default)")
	pf.IntVar(&flagFood, "food", 0, "Food items on the board (0 = from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagLength > 0 {
		cfg.Snake.InitialBody = flagLength
	}
	if flagFood > 0 {
		cfg.Food.Count = flagFood
	}
	if flagTick > 0 {
		cfg.Timing.TickMS = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg

	if err := setupLogger(cmd); err != nil {
		return err
	}

	snake.SetLogger(logger)
	snake.SetOverrides(snake.Overrides{
		Cols:        cfg.Board.Cols,
		Rows:        cfg.Board.Rows,
		CellSize:    cfg.Board.CellSize,
		InitialBody: cfg.Snake.InitialBody,
		FoodCount:   cfg.Food.Count,
		FoodMargin:  &cfg.Board.FoodMargin,
	})
	logger.Debug("configuration loaded",
		"cols", cfg.Board.Cols, "rows", cfg.Board.Rows,
		"tick", cfg.TickInterval(), "food", cfg.Food.Count)
	return nil
}

func setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd.Annotations[annotationTUI] != "":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return nil
}

// runtimeConfig builds the runtime settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: tickOrDefault(),
		Seed:         flagSeed,
	}
}

// modeArg returns the mode named on the command line, "snake" by default.
func modeArg(args []string) (string, error) {
	if len(args) == 0 {
		return snake.Modes[0].ID, nil
	}
	if _, err := snake.ConfigFor(args[0]); err != nil {
		return "", fmt.Errorf("%w (run 'snake list' to see available modes)", err)
	}
	return args[0], nil
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// tickOrDefault returns the configured tick interval.
func tickOrDefault() time.Duration {
	if d := settings.TickInterval(); d > 0 {
		return d
	}
	return core.DefaultTickInterval
}
