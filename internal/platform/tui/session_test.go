package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spritesnake/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig, nil)
	assert.Contains(t, m.View(), "Select a mode")

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.current)
	assert.NotNil(t, cmd, "game tick loop started")
	assert.Contains(t, m.View(), "Score: 0")

	m, _ = sessionUpdate(t, m, runes("p"))
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.False(t, m.quitting, "leaving the game does not end the session")

	m, cmd = sessionUpdate(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.NoError(t, m.Err())
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore("snake", 12, 15)
	require.NoError(t, err)

	m := NewSessionModel(store, testConfig, nil)
	assert.Contains(t, m.View(), "best 12")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.current)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "12")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
}

func TestScoreboardCyclesModes(t *testing.T) {
	sb := NewScoreboardModel(nil, 100, 30)
	require.GreaterOrEqual(t, len(sb.modes), 2)
	assert.Contains(t, sb.View(), "No scores recorded yet")

	first := sb.modes[sb.modeCursor].ID
	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	assert.NotEqual(t, first, sb.modes[sb.modeCursor].ID)

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = next.(ScoreboardModel)
	assert.Equal(t, first, sb.modes[sb.modeCursor].ID)
}
