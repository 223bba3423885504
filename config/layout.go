package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Position is a row/column pair as written in a layout file.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Layout describes the maze and where the simulation starts.
type Layout struct {
	Maze   [][]int  `yaml:"maze"`   // 0 = open, 1 = wall, indexed [row][col]
	Player Position `yaml:"player"` // Pursued agent start
	Enemy  Position `yaml:"enemy"`  // Adversary start
	Goal   Position `yaml:"goal"`   // Cell the agent heads for
}

// DefaultLayout returns the built-in 6x6 maze.
func DefaultLayout() Layout {
	return Layout{
		Maze: [][]int{
			{0, 0, 0, 0, 1, 0},
			{1, 1, 0, 0, 1, 0},
			{0, 0, 0, 1, 0, 0},
			{0, 1, 0, 0, 0, 1},
			{0, 1, 0, 1, 0, 0},
			{0, 0, 0, 0, 0, 0},
		},
		Player: Position{Row: 0, Col: 0},
		Enemy:  Position{Row: 5, Col: 0},
		Goal:   Position{Row: 5, Col: 5},
	}
}

// LoadLayout reads a YAML layout from path. An empty path returns DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}

	var l Layout
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, path, err)
	}

	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks that every position is an open cell of the maze. The maze
// shape and cell values are checked by maze.New when the grid is built.
func (l Layout) Validate() error {
	for name, p := range map[string]Position{"player": l.Player, "enemy": l.Enemy, "goal": l.Goal} {
		if p.Row < 0 || p.Row >= len(l.Maze) || p.Col < 0 || p.Col >= len(l.Maze[p.Row]) {
			return fmt.Errorf("%w: %s (%d,%d) is outside the maze", ErrInvalidLayout, name, p.Row, p.Col)
		}
		if l.Maze[p.Row][p.Col] != 0 {
			return fmt.Errorf("%w: %s (%d,%d) is on a wall", ErrInvalidLayout, name, p.Row, p.Col)
		}
	}
	return nil
}
