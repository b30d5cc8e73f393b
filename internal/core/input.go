package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the aim point up
	ActionDown           // S, Down arrow - move the aim point down
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - primary action (launch)
	ActionConfirm        // Enter - confirm selection in menu, launch in game
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
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
	case ActionJump:
		return "Jump"
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

// Pointer is the mouse state for one frame, in screen cells.
type Pointer struct {
	X, Y int
	// Moved is set when the pointer position was reported this frame.
	Moved bool
	// Pressed is set when the primary button went down this frame.
	Pressed bool
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Pointer Pointer
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

// MovePointer records a pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Moved = true
}

// PressPointer records a primary button press at (x, y).
func (f *InputFrame) PressPointer(x, y int) {
	f.MovePointer(x, y)
	f.Pointer.Pressed = true
}

// Clear resets all actions and pointer events for the next frame.
// The last pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
	f.Pointer.Pressed = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
