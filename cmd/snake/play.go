package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritesnake/internal/platform/tui"
	"github.com/vovakirdan/spritesnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default: snake) in the terminal.

Controls:
  Arrows/WASD  - Turn
  P/Space      - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play snake_long
  snake play --cols 30 --rows 12 --tick 120
  snake play --config ./my-snake.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "mode", mode)
	return tui.Run(game, store, runtimeConfig(), logger)
}
