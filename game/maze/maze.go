/*
Package maze provides the static obstacle grid the pursuit simulation runs on.

A Grid is built once from an occupancy matrix (0 = open, 1 = wall) and is read-only afterwards,
so a single Grid may be shared by any number of concurrent searches.

The package offers neighbour queries in a fixed order, bound and wall checks, the Manhattan
distance used by the search heuristic and the pursuit policy, and an ASCII rendering of the grid.
*/
package maze

import (
	"errors"
	"strings"

	"github.com/beka-birhanu/vinom-pursuit/game"
)

const (
	Open = 0
	Wall = 1
)

var (
	// Directions lists the orthogonal moves in the order neighbours are reported.
	// Both search strategies break ties by this order, so it must not change.
	Directions = []struct {
		Name  string
		Delta game.Cell
	}{
		{Name: "South", Delta: game.Cell{Row: 1, Col: 0}},
		{Name: "North", Delta: game.Cell{Row: -1, Col: 0}},
		{Name: "East", Delta: game.Cell{Row: 0, Col: 1}},
		{Name: "West", Delta: game.Cell{Row: 0, Col: -1}},
	}

	ErrEmptyGrid        = errors.New("grid has no cells")
	ErrRaggedGrid       = errors.New("grid rows have different lengths")
	ErrInvalidOccupancy = errors.New("grid cell must be 0 (open) or 1 (wall)")
)

var _ game.Grid = &Grid{}

// Grid is a rectangular obstacle map.
type Grid struct {
	width  int     // Number of columns
	height int     // Number of rows
	cells  [][]int // Occupancy indexed [row][col]
}

// New validates the occupancy matrix and returns a Grid holding its own copy of it.
func New(occupancy [][]int) (*Grid, error) {
	if len(occupancy) == 0 || len(occupancy[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(occupancy[0])
	cells := make([][]int, len(occupancy))
	for r, row := range occupancy {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		for _, v := range row {
			if v != Open && v != Wall {
				return nil, ErrInvalidOccupancy
			}
		}
		cells[r] = append([]int(nil), row...)
	}

	return &Grid{
		width:  width,
		height: len(occupancy),
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound checks whether c lies inside the grid.
func (g *Grid) InBound(c game.Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsOpen checks whether c lies inside the grid and is not a wall.
func (g *Grid) IsOpen(c game.Cell) bool {
	return g.InBound(c) && g.cells[c.Row][c.Col] == Open
}

// Neighbors returns the open orthogonal neighbours of c in Directions order.
// Cells outside the grid have no neighbours.
func (g *Grid) Neighbors(c game.Cell) []game.Cell {
	if !g.InBound(c) {
		return nil
	}

	result := make([]game.Cell, 0, len(Directions))
	for _, dir := range Directions {
		n := game.Cell{Row: c.Row + dir.Delta.Row, Col: c.Col + dir.Delta.Col}
		if g.IsOpen(n) {
			result = append(result, n)
		}
	}
	return result
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b game.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Render draws the grid as text. Walls are '#', open cells '.', and any cell present
// in marks is drawn with its rune instead.
func (g *Grid) Render(marks map[game.Cell]rune) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for row := 0; row < g.height; row++ {
		output.WriteString("|")
		for col := 0; col < g.width; col++ {
			symbol := '.'
			if g.cells[row][col] == Wall {
				symbol = '#'
			}
			if m, ok := marks[game.Cell{Row: row, Col: col}]; ok {
				symbol = m
			}
			output.WriteString(" " + string(symbol) + " |")
		}
		output.WriteString("\n+" + strings.Repeat("---+", g.width) + "\n")
	}

	return output.String()
}

// String renders the grid without markers.
func (g *Grid) String() string {
	return g.Render(nil)
}
