// Package heuristic provides cost estimates used to prioritize the
// search frontier.
package heuristic

// Manhattan returns the sum of Manhattan distances between the i-th box
// and the i-th goal, both sorted ascending by square index. This is not
// an admissible assignment in general — it ignores which box is
// actually closest to which goal — but it is cheap and monotone enough
// under pushes toward goals to drive a best-first search. The resulting
// search is best-first, not guaranteed optimal.
func Manhattan(width int, boxes, goals []int) int {
	total := 0
	for i := range boxes {
		total += distance(width, boxes[i], goals[i])
	}
	return total
}

func distance(width, a, b int) int {
	ar, ac := a/width, a%width
	br, bc := b/width, b%width
	return abs(ar-br) + abs(ac-bc)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
