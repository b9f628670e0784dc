package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionBoost          // Space, click, tap - speed impulse
	ActionJump           // Up, W - jump when grounded
	ActionCrouch         // Down, S - crouch is held this frame
	ActionFaster         // + - raise base speed one step
	ActionSlower         // - - lower base speed one step
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R - reset the run
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionStand          // X - release crouch
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionBoost:
		return "Boost"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
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
	case ActionStand:
		return "Stand"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for one simulation frame.
// Each action carries the number of times it was triggered, so repeated
// impulses (several taps between two frames) are not lost.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set marks an action as triggered once more for this frame.
func (f *InputFrame) Set(a Action) {
	f.Add(a, 1)
}

// Add records n triggers of an action. Non-positive n is ignored.
func (f *InputFrame) Add(a Action, n int) {
	if n <= 0 {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a] += n
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
