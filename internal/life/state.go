package life

// RunState is the two-state run/pause machine. Only a ToggleRun command moves
// between the states.
type RunState uint8

const (
	Paused RunState = iota
	Running
)

// Toggle returns the other state.
func (s RunState) Toggle() RunState {
	if s == Running {
		return Paused
	}
	return Running
}

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}
