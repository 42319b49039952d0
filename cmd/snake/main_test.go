package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spritesnake/internal/storage"
)

// execute runs the root command against a fresh database.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithDB(t, filepath.Join(t.TempDir(), "scores.db"), args...)
}

// executeWithDB runs the root command with args and returns what it printed.
func executeWithDB(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	flagScript, flagTicks, flagEvery = "", 0, false
	flagScoresLimit, flagScoresClear = 10, false
	flagSeed, flagTick = 0, 0
	flagCols, flagRows, flagLength, flagFood = 0, 0, 0, 0
	flagLogFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", db, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "snake")
	assert.Contains(t, out, "snake_long")
	assert.Contains(t, out, "20x15")
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "3", "--script", "..U")
	require.NoError(t, err)
	assert.Contains(t, out, "Tick: 3,")
	assert.Contains(t, out, "Heading: up")
	assert.Contains(t, out, "State: playing")
	assert.Contains(t, out, "Score:")
}

func TestSimCommandRunsIntoWall(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "State: game_over")
	assert.Contains(t, out, "Press R to restart")
}

func TestSimCommandEvery(t *testing.T) {
	out, err := execute(t, "sim", "--script", "..", "--every")
	require.NoError(t, err)
	assert.Contains(t, out, "== tick 1 ==")
	assert.Contains(t, out, "== tick 2 ==")
	assert.NotContains(t, out, "== tick 3 ==")
}

func TestSimCommandErrors(t *testing.T) {
	_, err := execute(t, "sim", "--script", "UZ")
	assert.Error(t, err)

	_, err = execute(t, "sim", "tetris")
	assert.ErrorContains(t, err, "snake list")

	_, err = execute(t, "sim", "--length", "40")
	assert.Error(t, err)
}

func TestScoresCommand(t *testing.T) {
	out, err := execute(t, "scores", "snake")
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")

	out, err = execute(t, "scores")
	require.NoError(t, err)
	assert.Contains(t, out, "snake_long")
}

func TestScoresCommandWithData(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore("snake", 7, 9)
	require.NoError(t, err)
	_, err = store.SaveScore("snake", 3, 5)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := executeWithDB(t, db, "scores", "snake")
	require.NoError(t, err)
	assert.Contains(t, out, "Best: 7")
	assert.Contains(t, out, "Rank")

	out, err = executeWithDB(t, db, "scores", "snake", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared scores for Snake.")

	out, err = executeWithDB(t, db, "scores", "snake")
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}
