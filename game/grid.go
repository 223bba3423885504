package game

// Grid is the static obstacle map the simulation runs on.
type Grid interface {
	// Neighbors returns the open, in-bound orthogonal neighbours of c in a stable order.
	Neighbors(c Cell) []Cell

	// InBound reports whether c lies inside the grid.
	InBound(c Cell) bool

	// IsOpen reports whether c is inside the grid and not a wall.
	IsOpen(c Cell) bool

	Width() int
	Height() int
}

// Pathfinder computes a path between two cells.
type Pathfinder interface {
	FindPath(start, goal Cell) Path
}

// Pursuer decides the adversary's next cell given the cell it chases.
type Pursuer interface {
	Pursue(adversary, target Cell) Cell
}
