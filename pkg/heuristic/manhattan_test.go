package heuristic_test

import (
	"testing"

	"github.com/herohde/sokosolve/pkg/heuristic"
	"github.com/stretchr/testify/assert"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		boxes    []int
		goals    []int
		expected int
	}{
		{"same square", 5, []int{12}, []int{12}, 0},
		{"one row apart", 5, []int{0}, []int{5}, 1},
		{"one col apart", 5, []int{0}, []int{1}, 1},
		{"diagonal", 5, []int{0}, []int{6}, 2},
		{"sorted pairing", 5, []int{0, 24}, []int{6, 18}, 2 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, heuristic.Manhattan(tt.width, tt.boxes, tt.goals))
		})
	}
}
