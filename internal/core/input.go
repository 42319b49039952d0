package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - turn up
	ActionDown           // S, Down arrow - turn down
	ActionLeft           // A, Left arrow - turn left
	ActionRight          // D, Right arrow - turn right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Space - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action is one of the four directional intents.
func (a Action) IsTurn() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame holds the actions triggered between two simulation ticks,
// in the order they arrived.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}

// ParseScript turns a compact input script into one frame per tick.
// Each character is one tick: U, D, L, R are turns, P toggles pause,
// X restarts and '.' is a tick without input. A group in brackets such
// as "[UL]" places several actions in the same tick. Whitespace is ignored.
func ParseScript(script string) ([]InputFrame, error) {
	var frames []InputFrame
	var group *InputFrame

	for i, ch := range script {
		switch ch {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			if group != nil {
				return nil, fmt.Errorf("script: nested group at offset %d", i)
			}
			group = &InputFrame{}
			continue
		case ']':
			if group == nil {
				return nil, fmt.Errorf("script: unmatched ']' at offset %d", i)
			}
			frames = append(frames, *group)
			group = nil
			continue
		}

		a, ok := scriptActions[ch]
		if !ok {
			return nil, fmt.Errorf("script: unknown action %q at offset %d", ch, i)
		}
		if group != nil {
			group.Set(a)
			continue
		}
		frame := NewInputFrame()
		frame.Set(a)
		frames = append(frames, frame)
	}

	if group != nil {
		return nil, fmt.Errorf("script: unterminated group")
	}
	return frames, nil
}

var scriptActions = map[rune]Action{
	'.': ActionNone,
	'U': ActionUp,
	'D': ActionDown,
	'L': ActionLeft,
	'R': ActionRight,
	'P': ActionPause,
	'X': ActionRestart,
}
