package game

import "fmt"

// Cell is a position in the grid.
type Cell struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Path is an ordered sequence of orthogonally adjacent cells from a start to a goal.
// An empty path means no route was found.
type Path []Cell

// Edges returns the number of steps in the path.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Found reports whether the path reaches somewhere, i.e. it is not empty.
func (p Path) Found() bool {
	return len(p) > 0
}
