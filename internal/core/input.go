package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // a - move basket one lane left
	ActionRight        // d - move basket one lane right
	ActionQuit         // q - end the session
)

// Key bytes recognized on standard input.
const (
	KeyLeft  byte = 'a'
	KeyRight byte = 'd'
	KeyQuit  byte = 'q'
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps an input byte to an action. Unknown bytes are ActionNone.
func ActionForKey(b byte) Action {
	switch b {
	case KeyLeft:
		return ActionLeft
	case KeyRight:
		return ActionRight
	case KeyQuit:
		return ActionQuit
	}
	return ActionNone
}

// IsMove reports whether a is a lateral movement.
func (a Action) IsMove() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame represents the input state during one simulation tick.
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

// FrameForKey builds a frame holding the action for a single key byte.
func FrameForKey(b byte) InputFrame {
	f := NewInputFrame()
	if a := ActionForKey(b); a != ActionNone {
		f.Set(a)
	}
	return f
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
