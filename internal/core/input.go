package core

// Action represents a host action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionAddBall           // A, + - spawn one ball
	ActionRemoveBall        // X, - - drop the newest ball
	ActionSave              // S - snapshot the counter into a save slot
	ActionLoad              // L - restore the counter from a save slot
	ActionReset             // R - reseed every ball
	ActionPause             // P, Space - pause/unpause stepping
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAddBall:
		return "AddBall"
	case ActionRemoveBall:
		return "RemoveBall"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds every action triggered during one frame.
type InputFrame struct {
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
