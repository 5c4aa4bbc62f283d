package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate terminal or window keys into actions so the simulation
// never sees a platform key code.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - walk/scroll left
	ActionRight          // Right arrow, D - walk/scroll right
	ActionJump           // Up arrow, W, Space - jump impulse
	ActionStart          // Enter - dismiss the start screen
	ActionRestart        // R - reset the run
	ActionHelp           // ? - toggle the help overlay
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
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key transition delivered between two ticks.
type KeyEvent struct {
	Action  Action
	Pressed bool // true for key-down (including auto-repeat), false for key-up
}

// InputFrame collects the key events that arrived since the previous tick,
// in arrival order. Order matters: a press followed by a release is not the
// same as a release followed by a press.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]KeyEvent, 0, 4)}
}

// Press records a key-down event.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release records a key-up event.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// Has returns true if the given action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Pressed {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// RepeatDue reports whether a key held for heldTicks ticks produces a
// key-down on this tick: on the first tick, then once every interval ticks
// after delay ticks, the way an OS auto-repeats a held key.
func RepeatDue(heldTicks, delay, interval int) bool {
	if heldTicks == 1 {
		return true
	}
	if heldTicks < 1 || delay <= 0 || interval <= 0 {
		return false
	}
	n := heldTicks - 1 - delay
	return n >= 0 && n%interval == 0
}
