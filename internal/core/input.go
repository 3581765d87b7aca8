package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - walk north
	ActionDown           // S, Down arrow - walk south
	ActionLeft           // A, Left arrow - walk west
	ActionRight          // D, Right arrow - walk east
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - reload the level
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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

// IsDirectional reports whether the action is one of the four walk actions.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the input snapshot for a single simulation tick.
// Directional actions present in the frame are the ones currently held;
// other actions are one-shot presses. Actions keep the order in which
// they were first set so games can evaluate them deterministically.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
// Setting an action twice keeps its first position.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the active actions in insertion order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Len returns the number of active actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: f.Actions()}
}
