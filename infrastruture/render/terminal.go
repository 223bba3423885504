// Package render draws simulation snapshots as plain text.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/service/i"
)

const (
	playerMark = 'P'
	enemyMark  = 'E'
	goalMark   = 'G'
	caughtMark = 'X'
)

// Board is a grid that can draw itself with markers.
type Board interface {
	Render(marks map[game.Cell]rune) string
}

var _ i.Renderer = &Terminal{}

// Terminal writes a header line and the board for every snapshot.
type Terminal struct {
	w     io.Writer
	board Board
	goal  game.Cell
	mu    sync.Mutex
}

// NewTerminal returns a renderer writing to w.
func NewTerminal(w io.Writer, board Board, goal game.Cell) *Terminal {
	return &Terminal{w: w, board: board, goal: goal}
}

// Render implements i.Renderer.
func (t *Terminal) Render(s i.Snapshot) error {
	marks := map[game.Cell]rune{
		t.goal:            goalMark,
		s.State.Agent:     playerMark,
		s.State.Adversary: enemyMark,
	}
	if s.Status == game.StatusCaught {
		marks[s.State.Agent] = caughtMark
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.w, "%s tick=%d status=%s\n%s",
		s.Strategy, s.State.Tick, s.Status, t.board.Render(marks))
	return err
}
