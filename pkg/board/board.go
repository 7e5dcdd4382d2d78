package board

import (
	"fmt"
	"sort"
)

// Board is the topology-fixed part of a level: walls, goals, dimensions
// and the Zobrist table. It never changes after construction and may be
// shared read-only across every State derived from it.
type Board struct {
	width, height, size int
	walls               []bool
	goals               []int
	deltas              [NumDirections]int
	zt                  *ZobristTable
}

// State is the dynamic, mutable payload of a search position: the box
// set, the player square and the running Zobrist hash. It is the unit
// that is cloned, hashed and compared; it is the body of both frontier
// entries and the visited set.
type State struct {
	// Boxes is kept sorted in ascending square order at all times.
	Boxes  []int
	Player int
	Hash   ZobristHash
}

// Clone returns an independent copy of s. The returned State shares no
// backing array with s, so mutating one never affects the other.
func (s State) Clone() State {
	boxes := make([]int, len(s.Boxes))
	copy(boxes, s.Boxes)
	return State{Boxes: boxes, Player: s.Player, Hash: s.Hash}
}

// Equal reports whether s and o have identical (boxes, player); this is
// the full-tuple identity the visited set relies on, as opposed to hash
// equality alone.
func (s State) Equal(o State) bool {
	if s.Player != o.Player || len(s.Boxes) != len(o.Boxes) {
		return false
	}
	for i, b := range s.Boxes {
		if o.Boxes[i] != b {
			return false
		}
	}
	return true
}

// NewBoard validates the level and builds its fixed topology plus the
// initial dynamic state. It is the only place a malformed level is
// rejected: box/goal count mismatch, a box or the player on a wall, or
// the player on a box are all precondition violations returned as an
// error, never repaired.
func NewBoard(width, height int, tiles []Tile) (*Board, State, error) {
	size := width * height
	if len(tiles) != size {
		return nil, State{}, fmt.Errorf("board: %d tiles for %dx%d grid", len(tiles), width, height)
	}

	walls := make([]bool, size)
	var goals, boxes []int
	player := -1

	for s, t := range tiles {
		if t.HasWall() {
			walls[s] = true
		}
		if t.HasGoal() {
			goals = append(goals, s)
		}
		if t.HasBox() {
			boxes = append(boxes, s)
		}
		if t.HasPlayer() {
			player = s
		}
	}

	if player < 0 {
		return nil, State{}, fmt.Errorf("board: no player square")
	}
	if walls[player] {
		return nil, State{}, fmt.Errorf("board: player on wall square %d", player)
	}
	if len(boxes) != len(goals) {
		return nil, State{}, fmt.Errorf("board: %d boxes but %d goals", len(boxes), len(goals))
	}
	for _, b := range boxes {
		if walls[b] {
			return nil, State{}, fmt.Errorf("board: box on wall square %d", b)
		}
		if b == player {
			return nil, State{}, fmt.Errorf("board: player on box square %d", b)
		}
	}

	sort.Ints(goals)
	sort.Ints(boxes)

	b := &Board{
		width:  width,
		height: height,
		size:   size,
		walls:  walls,
		goals:  goals,
		deltas: Deltas(width),
	}
	b.zt = NewZobristTable(size)

	init := State{
		Boxes:  boxes,
		Player: player,
		Hash:   b.zt.Hash(player, boxes),
	}
	return b, init, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Size() int   { return b.size }

// IsWall reports whether square s is a wall. Squares outside the grid
// are treated as walls by callers via bounds checks before indexing.
func (b *Board) IsWall(s int) bool {
	return b.walls[s]
}

// Goals returns the sorted goal squares. Callers must not mutate the
// returned slice.
func (b *Board) Goals() []int {
	return b.goals
}

// IsGoal reports whether square s is a goal square.
func (b *Board) IsGoal(s int) bool {
	i := sort.SearchInts(b.goals, s)
	return i < len(b.goals) && b.goals[i] == s
}

// Delta returns the square offset for direction d.
func (b *Board) Delta(d Direction) int {
	return b.deltas[d]
}

// ZobristTable exposes the shared hash table, e.g. for a recompute-from-
// scratch cross-check.
func (b *Board) ZobristTable() *ZobristTable {
	return b.zt
}

// DoPush mutates s in place to apply a push of the box at square `at`
// in direction dir: the player walks to the square opposite dir and
// ends on `at`, and the box moves to `at+delta`. The hash is updated
// incrementally (XOR out the vacated words, XOR in the occupied ones)
// rather than recomputed from scratch. The player's walk may start
// anywhere reachable, so the square vacated is s.Player, not the
// push-from square; it is returned so UndoPush can restore it.
func (b *Board) DoPush(s *State, at int, dir Direction) int {
	to := at + b.deltas[dir]
	prev := s.Player

	s.Hash ^= b.zt.Player(prev) ^ b.zt.Player(at) ^ b.zt.Box(at) ^ b.zt.Box(to)
	s.Player = at
	s.Boxes = replaceSorted(s.Boxes, at, to)
	return prev
}

// UndoPush is the exact inverse of DoPush: given the same (at, dir)
// that produced the current s plus the player square DoPush returned,
// it restores s to the state before that push. The four hash words
// involved are the same set, so the XOR is self-inverse.
func (b *Board) UndoPush(s *State, at int, dir Direction, player int) {
	to := at + b.deltas[dir]

	s.Hash ^= b.zt.Player(at) ^ b.zt.Player(player) ^ b.zt.Box(to) ^ b.zt.Box(at)
	s.Player = player
	s.Boxes = replaceSorted(s.Boxes, to, at)
}

// replaceSorted removes old and inserts new into an ascending sorted
// slice, preserving order. old must currently be present.
func replaceSorted(boxes []int, old, new int) []int {
	i := sort.SearchInts(boxes, old)
	copy(boxes[i:], boxes[i+1:])
	boxes = boxes[:len(boxes)-1]

	j := sort.SearchInts(boxes, new)
	boxes = append(boxes, 0)
	copy(boxes[j+1:], boxes[j:len(boxes)-1])
	boxes[j] = new
	return boxes
}

func (s State) String() string {
	return fmt.Sprintf("state{player=%d, boxes=%v, hash=%08x}", s.Player, s.Boxes, uint32(s.Hash))
}
