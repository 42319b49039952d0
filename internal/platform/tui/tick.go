// Package tui hosts snake sessions in a terminal with Bubble Tea.
// It handles the terminal UI loop, key mapping, the menu and the
// scoreboard, and serves the same flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spritesnake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoop returns an id for a new tick loop. Ticks still in flight from
// a finished game carry an old id and are dropped.
func nextLoop() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration, loop uint64) tea.Cmd {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
