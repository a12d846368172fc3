package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionJump           // Up arrow, W, Space
	ActionPause          // P, Escape
	ActionRestart        // R after the run has ended
	ActionQuit           // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// held reports whether an action behaves like a held-down button.
func (a Action) held() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// InputLatch turns key presses into held buttons.
//
// Terminals deliver key presses (and auto-repeat) but never key releases,
// so a press keeps its action active for a number of ticks. Key repeat
// re-arms the latch while the key stays down; the action lapses shortly
// after the key is let go.
type InputLatch struct {
	holdTicks int
	remaining map[Action]int
	once      map[Action]bool
}

// NewInputLatch creates a latch that holds presses for holdTicks ticks.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &InputLatch{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
		once:      make(map[Action]bool),
	}
}

// Press records a key press.
// Pressing one direction cancels the opposite one.
func (l *InputLatch) Press(a Action) {
	if a == ActionNone {
		return
	}
	if !a.held() {
		l.once[a] = true
		return
	}

	switch a {
	case ActionLeft:
		delete(l.remaining, ActionRight)
	case ActionRight:
		delete(l.remaining, ActionLeft)
	}
	l.remaining[a] = l.holdTicks
}

// Release drops every held action, e.g. when the terminal loses focus.
func (l *InputLatch) Release() {
	clear(l.remaining)
	clear(l.once)
}

// Active reports whether an action would be part of the next frame.
func (l *InputLatch) Active(a Action) bool {
	return l.remaining[a] > 0 || l.once[a]
}

// Next builds the frame for the coming tick and ages the held actions.
func (l *InputLatch) Next() InputFrame {
	frame := NewInputFrame()

	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	for a := range l.once {
		frame.Set(a)
	}
	clear(l.once)

	return frame
}
