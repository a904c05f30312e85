package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate keys into actions; games never see raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionJump            // Space, Up - start a jump
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
	ActionSnapshot        // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSnapshot:
		return "Snapshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
