package search

import (
	"testing"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/stretchr/testify/assert"
)

func TestFrontierOrder(t *testing.T) {
	f := &frontier{}
	f.push(game.Cell{Row: 0, Col: 0}, 3, 7)
	f.push(game.Cell{Row: 1, Col: 0}, 1, 5)
	f.push(game.Cell{Row: 2, Col: 0}, 2, 5)
	f.push(game.Cell{Row: 3, Col: 0}, 0, 9)
	f.push(game.Cell{Row: 4, Col: 0}, 4, 5)

	var rows []int
	for f.Len() > 0 {
		rows = append(rows, f.pop().cell.Row)
	}

	// Lowest f first, equal f in insertion order.
	assert.Equal(t, []int{1, 2, 4, 0, 3}, rows)
}

func TestFrontierKeepsStaleEntries(t *testing.T) {
	f := &frontier{}
	c := game.Cell{Row: 2, Col: 2}
	f.push(c, 5, 8)
	f.push(c, 3, 6)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 3, f.pop().g)
	assert.Equal(t, 5, f.pop().g)
}
