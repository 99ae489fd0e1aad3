package core

// Action represents a logical control, abstracted from physical keys.
// Front ends translate key state into actions; the simulation only sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionFire           // Space - shoot
	ActionConfirm        // Enter - start a run from the menu
	ActionQuit           // Q, Esc - leave the current run
)

// Actions lists every control a front end may report, in display order.
var Actions = []Action{
	ActionLeft,
	ActionRight,
	ActionUp,
	ActionDown,
	ActionFire,
	ActionConfirm,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held controls for one simulation tick.
type InputFrame struct {
	// Actions maps actions to whether they are held this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Bindings maps each action to the physical keys that hold it. K is the
// key type of a front end, such as ebiten.Key.
type Bindings[K comparable] map[Action][]K

// Frame returns the actions with at least one bound key pressed.
func (b Bindings[K]) Frame(pressed func(K) bool) InputFrame {
	frame := NewInputFrame()
	for action, keys := range b {
		for _, k := range keys {
			if pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
