// Package search implements the interchangeable pathfinding strategies the agent re-plans with
// every tick: breadth-first search and A* with a Manhattan heuristic.
//
// Strategies keep no state between calls. Every call builds its own frontier and predecessor
// maps, so one strategy value may be used from several goroutines at once as long as the grid
// is not modified.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pursuit/game"
)

// StrategyID names a registered search strategy.
type StrategyID string

const (
	BreadthFirstID StrategyID = "bfs"
	AStarID        StrategyID = "astar"
)

var ErrUnknownStrategy = errors.New("unknown search strategy")

// Strategies lists every registered strategy in a fixed order.
var Strategies = []StrategyID{BreadthFirstID, AStarID}

// Result is the outcome of a single search.
type Result struct {
	Path     game.Path // Empty when the goal is unreachable
	Expanded int       // Number of cells taken off the frontier and expanded
}

// Strategy is a pathfinder that also reports how much of the grid it explored.
type Strategy interface {
	game.Pathfinder
	Search(start, goal game.Cell) Result
	ID() StrategyID
}

// ParseStrategy maps a user supplied name onto a registered strategy.
func ParseStrategy(name string) (StrategyID, error) {
	switch StrategyID(strings.ToLower(strings.TrimSpace(name))) {
	case BreadthFirstID, "breadth-first", "breadthfirst":
		return BreadthFirstID, nil
	case AStarID, "a*", "a-star":
		return AStarID, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New returns the strategy registered under id, bound to grid.
func New(id StrategyID, grid game.Grid) (Strategy, error) {
	switch id {
	case BreadthFirstID:
		return NewBreadthFirst(grid), nil
	case AStarID:
		return NewAStar(grid), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
}

// FindPath runs the strategy registered under id once.
func FindPath(grid game.Grid, id StrategyID, start, goal game.Cell) (game.Path, error) {
	s, err := New(id, grid)
	if err != nil {
		return nil, err
	}
	return s.FindPath(start, goal), nil
}
