package search

import (
	"container/heap"

	"github.com/beka-birhanu/vinom-pursuit/game"
)

// entry is one frontier record. A cell may have several entries when it was relaxed more
// than once; the ones whose g is larger than the best known g are stale.
type entry struct {
	cell game.Cell
	g    int
	f    int
	seq  int // insertion order, breaks ties between equal f
}

type frontier struct {
	nodes []entry
	next  int
}

func (h frontier) Len() int { return len(h.nodes) }
func (h frontier) Less(i, j int) bool {
	if h.nodes[i].f != h.nodes[j].f {
		return h.nodes[i].f < h.nodes[j].f
	}
	return h.nodes[i].seq < h.nodes[j].seq
}
func (h frontier) Swap(i, j int) { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }

func (h *frontier) Push(x interface{}) {
	h.nodes = append(h.nodes, x.(entry))
}

func (h *frontier) Pop() interface{} {
	old := h.nodes
	n := len(old)
	x := old[n-1]
	h.nodes = old[0 : n-1]
	return x
}

func (h *frontier) push(cell game.Cell, g, f int) {
	heap.Push(h, entry{cell: cell, g: g, f: f, seq: h.next})
	h.next++
}

func (h *frontier) pop() entry {
	return heap.Pop(h).(entry)
}
