package game

// Status is the state of a simulation after a tick.
type Status int

const (
	StatusRunning     Status = iota // Neither agent has won yet.
	StatusCaught                    // The adversary and the agent share a cell.
	StatusReachedGoal               // The agent stands on the goal.
)

// String returns the upper case name of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusCaught:
		return "CAUGHT"
	case StatusReachedGoal:
		return "REACHED_GOAL"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further ticks change the state.
func (s Status) Terminal() bool {
	return s == StatusCaught || s == StatusReachedGoal
}

// State is the position of both agents. It is passed and returned by value; the
// simulation never keeps a copy between ticks.
type State struct {
	Agent     Cell // The pursued agent
	Adversary Cell // The pursuer
	Tick      int  // Number of ticks applied so far
}
