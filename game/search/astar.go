package search

import (
	"slices"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/maze"
)

// AStar is a best-first search ordered by f = g + h with h the Manhattan distance to the goal.
// On a uniform cost grid with orthogonal moves the heuristic is consistent, so the returned
// path has as few edges as the breadth-first one.
type AStar struct {
	grid game.Grid
}

// NewAStar returns an A* strategy over grid.
func NewAStar(grid game.Grid) *AStar {
	return &AStar{grid: grid}
}

// ID implements Strategy.
func (a *AStar) ID() StrategyID {
	return AStarID
}

// FindPath implements game.Pathfinder.
func (a *AStar) FindPath(start, goal game.Cell) game.Path {
	return a.Search(start, goal).Path
}

// Search runs A* from start to goal.
//
// There is no decrease-key: a cell reached again with a strictly smaller g is pushed again,
// and the outdated entry is skipped when popped because its g no longer matches the best one.
func (a *AStar) Search(start, goal game.Cell) Result {
	open := &frontier{}
	open.push(start, 0, 0)
	came := map[game.Cell]game.Cell{}
	g := map[game.Cell]int{start: 0}
	expanded := 0

	for open.Len() > 0 {
		current := open.pop()
		if current.g > g[current.cell] {
			continue
		}
		if current.cell == goal {
			break
		}
		expanded++

		for _, n := range a.grid.Neighbors(current.cell) {
			tentative := g[current.cell] + 1
			if best, ok := g[n]; ok && tentative >= best {
				continue
			}
			g[n] = tentative
			came[n] = current.cell
			open.push(n, tentative, tentative+maze.Manhattan(n, goal))
		}
	}

	if _, reached := g[goal]; !reached {
		return Result{Expanded: expanded}
	}

	path := game.Path{}
	for node := goal; ; {
		prev, ok := came[node]
		if !ok {
			break
		}
		path = append(path, node)
		node = prev
	}
	path = append(path, start)
	slices.Reverse(path)
	return Result{Path: path, Expanded: expanded}
}

