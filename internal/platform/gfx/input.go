package gfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spritesnake/internal/core"
)

// keyBinding maps one key to an action.
type keyBinding struct {
	Key    ebiten.Key
	Action core.Action
}

// keyBindings lists the window controls in the order they are checked.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeySpace, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// pressedActions returns the actions whose key was pressed this frame.
// Each action is reported once even when two of its keys were pressed.
func pressedActions(justPressed func(ebiten.Key) bool) []core.Action {
	var out []core.Action
	seen := make(map[core.Action]bool)
	for _, b := range keyBindings {
		if seen[b.Action] || !justPressed(b.Key) {
			continue
		}
		seen[b.Action] = true
		out = append(out, b.Action)
	}
	return out
}

// clock turns frame time into whole ticks.
type clock struct {
	interval time.Duration
	acc      time.Duration
}

func newClock(interval time.Duration) *clock {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return &clock{interval: interval}
}

// advance adds dt and returns how many ticks are due.
func (c *clock) advance(dt time.Duration) int {
	c.acc += dt
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	return n
}

func (c *clock) reset() {
	c.acc = 0
}
