package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritesnake/internal/platform/tui"
	"github.com/vovakirdan/spritesnake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a mode and Tab for the
scoreboard. After a game ends, Esc returns to the menu.

Examples:
  snake menu
  snake menu --tick 150
  snake menu --db ./scores.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(menuResult.GameID)
			if err != nil {
				return err
			}
			logger.Info("starting game", "mode", menuResult.GameID)
			if err := tui.Run(game, store, cfg, logger); err != nil {
				return err
			}
		}
	}
}
