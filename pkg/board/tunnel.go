package board

// IsTunnelPush reports whether push p, applied from the player square
// `from = p.At - delta(p.Dir)`, is a corridor push: the player is boxed
// in on both perpendicular sides, and the box itself is walled on at
// least one perpendicular side too. Such pushes are given priority 0 so
// the search chases corridors greedily rather than exploring
// alternatives.
func IsTunnelPush(b *Board, p Push) bool {
	from := p.At - b.deltas[p.Dir]

	if p.Dir == Left || p.Dir == Right {
		if !wallBeside(b, from, Up) || !wallBeside(b, from, Down) {
			return false
		}
		return wallBeside(b, p.At, Up) || wallBeside(b, p.At, Down)
	}

	if !wallBeside(b, from, Left) || !wallBeside(b, from, Right) {
		return false
	}
	return wallBeside(b, p.At, Left) || wallBeside(b, p.At, Right)
}

// wallBeside treats squares beyond the grid edge as walls, so a
// one-high or one-wide level still classifies as a corridor.
func wallBeside(b *Board, s int, d Direction) bool {
	n := s + b.deltas[d]
	if !adjacent(b, s, n, d) {
		return true
	}
	return b.IsWall(n)
}
