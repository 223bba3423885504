package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/maze"
	"github.com/beka-birhanu/vinom-pursuit/service/i"
	"github.com/stretchr/testify/require"
)

var (
	classic = [][]int{
		{0, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 1, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}

	playerStart = game.Cell{Row: 0, Col: 0}
	enemyStart  = game.Cell{Row: 5, Col: 0}
	goal        = game.Cell{Row: 5, Col: 5}
)

func newGrid(t *testing.T, occupancy [][]int) *maze.Grid {
	t.Helper()
	g, err := maze.New(occupancy)
	require.NoError(t, err)
	return g
}

type pursuerFunc func(adversary, target game.Cell) game.Cell

func (f pursuerFunc) Pursue(adversary, target game.Cell) game.Cell { return f(adversary, target) }

var standStill = pursuerFunc(func(a, _ game.Cell) game.Cell { return a })

// spyLogger records every message by level.
type spyLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *spyLogger) Info(msg string)    { l.mu.Lock(); l.infos = append(l.infos, msg); l.mu.Unlock() }
func (l *spyLogger) Warning(msg string) { l.mu.Lock(); l.warnings = append(l.warnings, msg); l.mu.Unlock() }
func (l *spyLogger) Error(msg string)   { l.mu.Lock(); l.errors = append(l.errors, msg); l.mu.Unlock() }

func (l *spyLogger) warningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

// recorder keeps every snapshot it is asked to render.
type recorder struct {
	mu        sync.Mutex
	snapshots []i.Snapshot
	err       error
}

func (r *recorder) Render(s i.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
	return r.err
}

var errRender = errors.New("screen unplugged")
