package search

import (
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classic = [][]int{
	{0, 0, 0, 0, 1, 0},
	{1, 1, 0, 0, 1, 0},
	{0, 0, 0, 1, 0, 0},
	{0, 1, 0, 0, 0, 1},
	{0, 1, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 0},
}

func newGrid(t *testing.T, occupancy [][]int) *maze.Grid {
	t.Helper()
	g, err := maze.New(occupancy)
	require.NoError(t, err)
	return g
}

func strategies(grid game.Grid) []Strategy {
	return []Strategy{NewBreadthFirst(grid), NewAStar(grid)}
}

// assertValidPath checks that p runs from start to goal over open, adjacent, distinct cells.
func assertValidPath(t *testing.T, grid game.Grid, p game.Path, start, goal game.Cell) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0])
	assert.Equal(t, goal, p[len(p)-1])

	seen := map[game.Cell]struct{}{}
	for i, c := range p {
		assert.True(t, grid.IsOpen(c), "%v is not open", c)
		_, dup := seen[c]
		assert.False(t, dup, "%v repeated", c)
		seen[c] = struct{}{}
		if i > 0 {
			assert.Equal(t, 1, maze.Manhattan(p[i-1], c), "%v and %v are not adjacent", p[i-1], c)
		}
	}
}

func TestClassicMazeCornerToCorner(t *testing.T) {
	grid := newGrid(t, classic)
	start, goal := game.Cell{Row: 0, Col: 0}, game.Cell{Row: 5, Col: 5}

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			p := s.FindPath(start, goal)
			assert.Len(t, p, 11)
			assert.Equal(t, 10, p.Edges())
			assertValidPath(t, grid, p, start, goal)
		})
	}
}

func TestStartEqualsGoal(t *testing.T) {
	grid := newGrid(t, classic)
	c := game.Cell{Row: 2, Col: 2}

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			assert.Equal(t, game.Path{c}, s.FindPath(c, c))
		})
	}
}

func TestStartAtOrigin(t *testing.T) {
	grid := newGrid(t, classic)
	origin := game.Cell{Row: 0, Col: 0}

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			p := s.FindPath(game.Cell{Row: 0, Col: 3}, origin)
			assertValidPath(t, grid, p, game.Cell{Row: 0, Col: 3}, origin)
			assert.Equal(t, 3, p.Edges())
		})
	}
}

func TestGoalWalledOff(t *testing.T) {
	walled := [][]int{
		{0, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 1, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0, 1},
		{0, 0, 0, 0, 1, 0},
	}
	grid := newGrid(t, walled)
	start, goal := game.Cell{Row: 0, Col: 0}, game.Cell{Row: 5, Col: 5}

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			res := s.Search(start, goal)
			assert.Empty(t, res.Path)
			assert.False(t, res.Path.Found())
			assert.Positive(t, res.Expanded)
		})
	}
}

func TestGoalIsWall(t *testing.T) {
	grid := newGrid(t, classic)

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			assert.Empty(t, s.FindPath(game.Cell{Row: 0, Col: 0}, game.Cell{Row: 1, Col: 0}))
		})
	}
}

func TestStrategiesAgreeOnLength(t *testing.T) {
	grid := newGrid(t, classic)
	bfs, astar := NewBreadthFirst(grid), NewAStar(grid)

	var open []game.Cell
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if c := (game.Cell{Row: row, Col: col}); grid.IsOpen(c) {
				open = append(open, c)
			}
		}
	}

	for _, start := range open {
		for _, goal := range open {
			b := bfs.FindPath(start, goal)
			a := astar.FindPath(start, goal)
			require.Equal(t, b.Found(), a.Found(), "%v -> %v", start, goal)
			if !b.Found() {
				continue
			}
			assert.Equal(t, len(b), len(a), "%v -> %v", start, goal)
			assertValidPath(t, grid, b, start, goal)
			assertValidPath(t, grid, a, start, goal)
		}
	}
}

func TestFindPathIsRepeatable(t *testing.T) {
	grid := newGrid(t, classic)
	start, goal := game.Cell{Row: 5, Col: 0}, game.Cell{Row: 0, Col: 5}

	for _, s := range strategies(grid) {
		t.Run(string(s.ID()), func(t *testing.T) {
			first := s.FindPath(start, goal)
			second := s.FindPath(start, goal)
			assert.Equal(t, len(first), len(second))
		})
	}
}

func TestAStarExpandsNoMoreThanBreadthFirst(t *testing.T) {
	grid := newGrid(t, classic)
	start, goal := game.Cell{Row: 0, Col: 0}, game.Cell{Row: 5, Col: 5}

	b := NewBreadthFirst(grid).Search(start, goal)
	a := NewAStar(grid).Search(start, goal)
	assert.LessOrEqual(t, a.Expanded, b.Expanded)
}

func TestConcurrentSearchesShareGrid(t *testing.T) {
	grid := newGrid(t, classic)
	start, goal := game.Cell{Row: 0, Col: 0}, game.Cell{Row: 5, Col: 5}

	var wg sync.WaitGroup
	lengths := make([]int, 16)
	for i := range lengths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := strategies(grid)[i%2]
			lengths[i] = len(s.FindPath(start, goal))
		}(i)
	}
	wg.Wait()

	for _, l := range lengths {
		assert.Equal(t, 11, l)
	}
}

func TestRegistry(t *testing.T) {
	grid := newGrid(t, classic)

	t.Run("parse known names", func(t *testing.T) {
		for name, want := range map[string]StrategyID{
			"bfs":    BreadthFirstID,
			" BFS ":  BreadthFirstID,
			"astar":  AStarID,
			"A*":     AStarID,
			"a-star": AStarID,
		} {
			got, err := ParseStrategy(name)
			assert.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("parse unknown name", func(t *testing.T) {
		_, err := ParseStrategy("dijkstra")
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("new returns matching strategy", func(t *testing.T) {
		for _, id := range Strategies {
			s, err := New(id, grid)
			require.NoError(t, err)
			assert.Equal(t, id, s.ID())
		}
	})

	t.Run("find path by id", func(t *testing.T) {
		p, err := FindPath(grid, AStarID, game.Cell{Row: 0, Col: 0}, game.Cell{Row: 5, Col: 5})
		require.NoError(t, err)
		assert.Equal(t, 10, p.Edges())

		_, err = FindPath(grid, "greedy", game.Cell{}, game.Cell{})
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
