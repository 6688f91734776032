package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move cannon left
	ActionRight          // Right arrow, D - move cannon right
	ActionFire           // Space - fire
	ActionConfirm        // Enter - restart after the game ended
	ActionPause          // P, Escape - pause/unpause (handled by frontends)
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the polled input snapshot the simulation samples once per tick.
type Input interface {
	// IsDown reports whether the action is currently held (level-triggered).
	IsDown(a Action) bool
	// IsPressed reports whether the action started this tick (edge-triggered).
	// A held key reports true once and not again until it is released.
	IsPressed(a Action) bool
}

// InputFrame is the input state for one simulation tick.
// Frontends fill it from their event source; it implements Input.
type InputFrame struct {
	Down    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Down:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// Press marks an action as freshly pressed this frame. A press implies a hold.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsDown returns true if the action is held this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Down[a]
}

// IsPressed returns true if the action was pressed this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Down {
		delete(f.Down, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Down {
		clone.Down[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}

var _ Input = InputFrame{}
