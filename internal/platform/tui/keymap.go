package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a key stays down after its last event.
// Terminals never report key release, only autorepeat.
const DefaultHoldWindow = 150 * time.Millisecond

// MapKey translates a key message to a game action.
func MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a":
		return core.ActionLeft
	case "right", "d":
		return core.ActionRight
	case " ":
		return core.ActionFire
	case "enter":
		return core.ActionConfirm
	case "p", "esc":
		return core.ActionPause
	}
	return core.ActionNone
}

// KeyState turns a stream of key events into held and pressed actions.
// An action stays held while events keep arriving within the hold window,
// and counts as pressed only on the first event after it was released.
type KeyState struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pressed  map[core.Action]bool
}

// NewKeyState creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewKeyState(window time.Duration) *KeyState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyState{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		pressed:  make(map[core.Action]bool),
	}
}

// Observe records a key event for action a at time now.
func (k *KeyState) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !k.held(a, now) {
		k.pressed[a] = true
	}
	k.lastSeen[a] = now
}

func (k *KeyState) held(a core.Action, now time.Time) bool {
	last, ok := k.lastSeen[a]
	return ok && now.Sub(last) <= k.window
}

// Frame samples the input for one tick and consumes pending presses.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range k.lastSeen {
		if k.held(a, now) {
			frame.Hold(a)
		} else {
			delete(k.lastSeen, a)
		}
	}
	for a := range k.pressed {
		frame.Press(a)
		delete(k.pressed, a)
	}
	return frame
}

// Reset forgets every held key.
func (k *KeyState) Reset() {
	clear(k.lastSeen)
	clear(k.pressed)
}
