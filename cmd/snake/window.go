package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritesnake/internal/platform/gfx"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a window and play the given mode (default: snake) with sprite
graphics. Pieces come from the sheet configured under sprites.sheet, or
from the built-in pieces when none is set.

Controls:
  Arrows/WASD  - Turn
  P/Space      - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Examples:
  snake window
  snake window snake_long --scale 0.5
  snake window --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.75, "Window size relative to the board")
}

func runWindow(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	sheet, err := gfx.LoadSheet(settings.Sprites.Sheet, settings.Sprites.TileSize)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("opening window", "mode", mode, "sheet", settings.Sprites.Sheet)
	return gfx.Run(gfx.Options{
		Mode:         mode,
		Sheet:        sheet,
		TileSize:     settings.Sprites.TileSize,
		TickInterval: tickOrDefault(),
		Seed:         flagSeed,
		Scale:        flagScale,
		Store:        store,
		Logger:       logger,
	})
}
