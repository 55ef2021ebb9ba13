package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	// ActionFlap starts a run or flaps (Space, Up, W).
	ActionFlap
	// ActionReset discards the run and starts over (R).
	ActionReset
	// ActionQuit exits (Q, Ctrl+C).
	ActionQuit
	// ActionScreenshot dumps the playfield to a text file (Ctrl+S).
	ActionScreenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
