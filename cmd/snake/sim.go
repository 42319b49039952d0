package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritesnake/internal/core"
	"github.com/vovakirdan/spritesnake/internal/games/snake"
	"github.com/vovakirdan/spritesnake/internal/registry"
)

var (
	flagScript string
	flagTicks  int
	flagEvery  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a scripted game without a display",
	Long: `Run a game headless from an input script and print the final board
and engine state.

Script symbols, one tick each:
  U D L R   turn up, down, left, right
  P         toggle pause
  X         restart
  .         no input
  [UL]      several actions in the same tick

When --seed is 0 the run uses seed 1, so a script always replays the same way.

Examples:
  snake sim --script "..U..L"
  snake sim snake_long --script "R[UL]..." --ticks 20 --every`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run, padding the script with empty ticks")
	simCmd.Flags().BoolVar(&flagEvery, "every", false, "Print the board after every tick")
}

func runSim(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	frames, err := core.ParseScript(flagScript)
	if err != nil {
		return err
	}
	for len(frames) < flagTicks {
		frames = append(frames, core.NewInputFrame())
	}

	created, err := registry.Create(mode)
	if err != nil {
		return err
	}
	game, ok := created.(*snake.Game)
	if !ok {
		return fmt.Errorf("mode %q has no snake engine", mode)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	if err := game.Reset(core.RuntimeConfig{TickInterval: tickOrDefault(), Seed: seed}); err != nil {
		return err
	}
	w, h := game.MinSize()
	game.Resize(w, h)
	screen := core.NewScreen(w, h)

	var stepErr error
	for i, in := range frames {
		if _, stepErr = game.Step(in); stepErr != nil {
			logger.Error("simulation stopped", "tick", i+1, "error", stepErr)
			break
		}
		if flagEvery {
			fmt.Fprintf(out, "== tick %d ==\n", i+1)
			printBoard(out, game, screen)
		}
	}

	if !flagEvery || stepErr != nil {
		printBoard(out, game, screen)
	}
	fmt.Fprint(out, game.Engine().Snapshot().String())
	return stepErr
}

func printBoard(out io.Writer, game *snake.Game, screen *core.Screen) {
	screen.Clear()
	game.Render(screen)
	for y := range screen.Height() {
		fmt.Fprintln(out, strings.TrimRight(screen.Row(y), " "))
	}
}
