package snake

import "github.com/vovakirdan/spritesnake/internal/core"

// Turn requests a new heading. At most one turn is accepted between two
// ticks; reversals and requests for the current heading are ignored and
// leave the window open. Returns true if the heading changed.
func (e *Engine) Turn(d core.Direction) bool {
	if !d.Valid() || !e.CanTurn() {
		return false
	}
	if d == e.heading || d.IsOpposite(e.heading) {
		return false
	}

	e.heading = d
	e.turnAck = false
	return true
}

// Up requests an upward turn.
func (e *Engine) Up() bool { return e.Turn(core.DirUp) }

// Down requests a downward turn.
func (e *Engine) Down() bool { return e.Turn(core.DirDown) }

// Left requests a turn to the left.
func (e *Engine) Left() bool { return e.Turn(core.DirLeft) }

// Right requests a turn to the right.
func (e *Engine) Right() bool { return e.Turn(core.DirRight) }

// Apply maps one input action onto the matching engine call.
// Restart errors are returned; everything else cannot fail.
func (e *Engine) Apply(a core.Action) error {
	if d, ok := core.DirectionForAction(a); ok {
		e.Turn(d)
		return nil
	}
	switch a {
	case core.ActionPause:
		e.TogglePause()
	case core.ActionRestart:
		return e.Restart()
	}
	return nil
}
