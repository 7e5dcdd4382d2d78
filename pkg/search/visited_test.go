package search_test

import (
	"testing"

	"github.com/herohde/sokosolve/pkg/board"
	"github.com/herohde/sokosolve/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestVisitedDuplicateDetection(t *testing.T) {
	v := search.NewVisited()
	s1 := board.State{Player: 5, Boxes: []int{1, 2}, Hash: 42}
	s2 := board.State{Player: 5, Boxes: []int{1, 2}, Hash: 42}

	assert.False(t, v.Contains(s1))
	v.Insert(s1)
	assert.True(t, v.Contains(s2), "an equal (boxes, player) tuple must be detected even as a distinct value")
	assert.Equal(t, 1, v.Len())
}

func TestVisitedHashCollisionFallsBackToTupleEquality(t *testing.T) {
	v := search.NewVisited()
	// Same hash, different (boxes, player): must not be treated as a
	// duplicate — the hash is an accelerator, never the identity.
	s1 := board.State{Player: 5, Boxes: []int{1, 2}, Hash: 7}
	s2 := board.State{Player: 6, Boxes: []int{1, 2}, Hash: 7}

	v.Insert(s1)
	assert.False(t, v.Contains(s2))
}
