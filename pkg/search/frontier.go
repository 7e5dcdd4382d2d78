// Package search implements the A*-style push-space driver: the
// frontier priority queue, the visited set and the Solve loop tying
// board, heuristic and pruning together.
package search

import (
	"container/heap"
	"fmt"

	"github.com/herohde/sokosolve/pkg/board"
)

// Priority is the frontier ordering key. Lower pops first.
type Priority int

// Entry is a self-contained frontier item: a pending push plus the
// dynamic state it applies to. Storing the predecessor state directly,
// rather than a parent pointer, means the driver never needs to
// reconstruct a board from a chain of moves to restore it.
type Entry struct {
	State    board.State
	Push     board.Push
	Priority Priority
}

// Frontier is a min-priority queue of pending pushes, ties broken by
// insertion order (a stable FIFO secondary key), matching the
// expansion-order guarantee in the design.
type Frontier struct {
	h frontierHeap
	n int
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push adds an entry to the frontier.
func (f *Frontier) Push(e Entry) {
	heap.Push(&f.h, item{e: e, seq: f.n})
	f.n++
}

// Pop removes and returns the minimum-priority entry. ok is false iff
// the frontier is empty.
func (f *Frontier) Pop() (Entry, bool) {
	if f.h.Len() == 0 {
		return Entry{}, false
	}
	it := heap.Pop(&f.h).(item)
	return it.e, true
}

func (f *Frontier) Len() int {
	return f.h.Len()
}

func (f *Frontier) String() string {
	return fmt.Sprintf("frontier{size=%d}", f.Len())
}

type item struct {
	e   Entry
	seq int
}

type frontierHeap []item

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].e.Priority != h[j].e.Priority {
		return h[i].e.Priority < h[j].e.Priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) {
	*h = append(*h, x.(item))
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
