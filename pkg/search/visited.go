package search

import "github.com/herohde/sokosolve/pkg/board"

// Visited is the set of dynamic states already expanded. Keys are
// bucketed by Zobrist hash for O(1) average lookup, but membership is
// always decided by full (sorted boxes, player) tuple equality: the
// hash is undersized (32 bits) and admits collisions above roughly 65k
// states, so it is an accelerator only, never the identity.
type Visited struct {
	buckets map[board.ZobristHash][]board.State
}

// NewVisited returns an empty visited set.
func NewVisited() *Visited {
	return &Visited{buckets: make(map[board.ZobristHash][]board.State)}
}

// Contains reports whether an equal state has already been inserted.
func (v *Visited) Contains(s board.State) bool {
	for _, o := range v.buckets[s.Hash] {
		if s.Equal(o) {
			return true
		}
	}
	return false
}

// Insert records s as visited. Callers should check Contains first;
// Insert does not itself deduplicate.
func (v *Visited) Insert(s board.State) {
	v.buckets[s.Hash] = append(v.buckets[s.Hash], s)
}

// Len returns the number of distinct states recorded.
func (v *Visited) Len() int {
	n := 0
	for _, b := range v.buckets {
		n += len(b)
	}
	return n
}
