package board

// Push is a candidate move that relocates the box at square At by one
// step in direction Dir.
type Push struct {
	At  int
	Dir Direction
}

// GeneratePushes enumerates every legal push from s. Boxes are visited
// in ascending-index order (s.Boxes is sorted) and directions in the
// fixed order Left, Right, Up, Down; this order is observable since the
// frontier only tie-breaks by insertion order.
func GeneratePushes(b *Board, s State, reach Reach) []Push {
	var pushes []Push
	for _, box := range s.Boxes {
		for d := Direction(0); d < NumDirections; d++ {
			delta := b.deltas[d]
			from := box - delta
			to := box + delta

			if !adjacent(b, box, from, opposite(d)) || !adjacent(b, box, to, d) {
				continue
			}
			if !reach.IsReachableBox(from) {
				continue
			}
			if b.IsWall(to) || isOccupied(s, to) {
				continue
			}
			pushes = append(pushes, Push{At: box, Dir: d})
		}
	}
	return pushes
}

func opposite(d Direction) Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func isOccupied(s State, sq int) bool {
	for _, b := range s.Boxes {
		if b == sq {
			return true
		}
		if b > sq {
			break
		}
	}
	return false
}
