package search

import (
	"slices"

	"github.com/beka-birhanu/vinom-pursuit/game"
)

// BreadthFirst is an uninformed search returning a path with the fewest edges.
type BreadthFirst struct {
	grid game.Grid
}

// NewBreadthFirst returns a breadth-first strategy over grid.
func NewBreadthFirst(grid game.Grid) *BreadthFirst {
	return &BreadthFirst{grid: grid}
}

// ID implements Strategy.
func (b *BreadthFirst) ID() StrategyID {
	return BreadthFirstID
}

// FindPath implements game.Pathfinder.
func (b *BreadthFirst) FindPath(start, goal game.Cell) game.Path {
	return b.Search(start, goal).Path
}

// Search explores the grid level by level from start until goal is dequeued.
// A cell is marked visited the moment it is enqueued, so it is enqueued at most once.
func (b *BreadthFirst) Search(start, goal game.Cell) Result {
	queue := []game.Cell{start}
	came := map[game.Cell]game.Cell{}
	visited := map[game.Cell]struct{}{start: {}}
	expanded := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			break
		}
		expanded++

		for _, next := range b.grid.Neighbors(current) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			came[next] = current
			queue = append(queue, next)
		}
	}

	if _, reached := visited[goal]; !reached {
		return Result{Expanded: expanded}
	}
	return Result{Path: tracePath(came, start, goal), Expanded: expanded}
}

// tracePath walks predecessor links from goal back to start. The start cell is the
// sentinel; it never has a predecessor of its own.
func tracePath(came map[game.Cell]game.Cell, start, goal game.Cell) game.Path {
	path := game.Path{goal}
	for node := goal; node != start; {
		node = came[node]
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}
