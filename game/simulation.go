package game

import (
	"errors"
	"fmt"
)

// Simulation-related errors.
var (
	ErrInvalidGoal     = errors.New("goal must be an open cell inside the grid")
	ErrInvalidPosition = errors.New("start position must be an open cell inside the grid")
	ErrMissingPart     = errors.New("simulation needs a grid, a pathfinder and a pursuer")
)

// Simulation advances an agent toward a goal while a pursuer chases it.
// It holds only read-only collaborators; all mutable state travels through Tick.
type Simulation struct {
	grid       Grid       // Static obstacle map.
	goal       Cell       // Cell the agent tries to reach.
	pathfinder Pathfinder // Re-plans the agent's route every tick.
	pursuer    Pursuer    // Moves the adversary every tick.
}

// NewSimulation validates the goal and returns a simulation.
func NewSimulation(grid Grid, goal Cell, pathfinder Pathfinder, pursuer Pursuer) (*Simulation, error) {
	if grid == nil || pathfinder == nil || pursuer == nil {
		return nil, ErrMissingPart
	}

	if !grid.IsOpen(goal) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, goal)
	}

	return &Simulation{
		grid:       grid,
		goal:       goal,
		pathfinder: pathfinder,
		pursuer:    pursuer,
	}, nil
}

// Goal returns the cell the agent is heading for.
func (s *Simulation) Goal() Cell {
	return s.goal
}

// NewState validates both starting cells and returns the initial state.
func (s *Simulation) NewState(agent, adversary Cell) (State, error) {
	for _, c := range []Cell{agent, adversary} {
		if !s.grid.IsOpen(c) {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidPosition, c)
		}
	}
	return State{Agent: agent, Adversary: adversary}, nil
}

// Status evaluates the terminal conditions of st. Being caught wins over reaching the goal.
func (s *Simulation) Status(st State) Status {
	switch {
	case st.Agent == st.Adversary:
		return StatusCaught
	case st.Agent == s.goal:
		return StatusReachedGoal
	default:
		return StatusRunning
	}
}

// Tick plans a fresh path for the agent, moves it one cell along it, moves the adversary
// toward the agent's new cell and evaluates the outcome.
// With no usable path the agent holds its position. A terminal state is returned unchanged.
func (s *Simulation) Tick(st State) (State, Status) {
	if status := s.Status(st); status.Terminal() {
		return st, status
	}

	path := s.pathfinder.FindPath(st.Agent, s.goal)
	if len(path) > 1 {
		st.Agent = path[1]
	}

	st.Adversary = s.pursuer.Pursue(st.Adversary, st.Agent)
	st.Tick++

	return st, s.Status(st)
}
