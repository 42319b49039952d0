package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritesnake/internal/registry"
	"github.com/vovakirdan/spritesnake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode
when no mode is given.

Examples:
  snake scores
  snake scores snake_long --limit 20
  snake scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(cmd, store)
	}

	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", game.Title())
		return nil
	}

	return printTop(cmd, store, mode, game.Title())
}

func printTop(cmd *cobra.Command, store *storage.Store, mode, title string) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'snake play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %s\n",
			i+1, entry.Score, entry.Length, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(mode); err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}

func printSummary(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	stats, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s  %-5s  %-4s  %-6s  %s\n", "Mode", "Games", "Best", "Avg", "Last played")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-12s  %-5d  %-4s  %-6s  %s\n", g.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Fprintf(out, "  %-12s  %-5d  %-4d  %-6.1f  %s\n",
			g.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
