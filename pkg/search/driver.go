package search

import (
	"context"
	"sort"

	"github.com/herohde/sokosolve/pkg/board"
	"github.com/herohde/sokosolve/pkg/heuristic"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// progressInterval is the number of expanded nodes between progress log
// lines, matching the source's reporting cadence.
const progressInterval = 100000

// Outcome is the terminal result of a Solve call. The core never
// returns an error for a solvable-or-not question; error is reserved
// for construction-time precondition violations (see board.NewBoard).
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching the goal:
	// the puzzle is unsolvable under the configured pruning.
	Exhausted Outcome = iota
	// Solved means a terminal state (boxes == goals) was popped.
	Solved
	// BudgetExceeded means the caller's node budget was reached before
	// the frontier emptied or a solution was found.
	BudgetExceeded
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case BudgetExceeded:
		return "budget-exceeded"
	default:
		return "exhausted"
	}
}

// Options configures a Driver run.
type Options struct {
	// Budget caps the number of expanded nodes. Unset means no intrinsic
	// limit, matching the design's "no hard cap in the latest revision".
	Budget lang.Optional[int]
	// DisableDeadSquares turns off dead-square pruning, for diagnostics.
	DisableDeadSquares bool
	// DisableTunnels turns off tunnel-push priority boosting.
	DisableTunnels bool
}

// Result is returned alongside every Outcome. Expanded counts the nodes
// expanded; Final is set only when the Outcome is Solved.
type Result struct {
	Final    board.State
	Expanded int
}

// Driver owns the frontier and the visited set for a single search run.
// It is not safe for concurrent use; the design is single-threaded and
// synchronous (see the concurrency model in the design notes).
type Driver struct {
	b    *board.Board
	dead board.DeadSet
	opt  Options
}

// NewDriver builds a driver for b, precomputing the static dead-square
// set once per level.
func NewDriver(b *board.Board, opt Options) *Driver {
	dead := board.AnalyzeDeadSquares(b)
	if opt.DisableDeadSquares {
		dead = make(board.DeadSet, b.Size())
	}
	return &Driver{b: b, dead: dead, opt: opt}
}

// Solve runs the A*-style push-space search from init until a solution
// is found, the frontier empties, the budget is exceeded, or ctx is
// cancelled (treated the same as budget exhaustion).
func (d *Driver) Solve(ctx context.Context, init board.State) (Outcome, Result) {
	if isGoal(d.b, init) {
		return Solved, Result{Final: init}
	}

	frontier := NewFrontier()
	visited := NewVisited()

	reach := board.CalcReach(d.b, init)
	d.enqueue(frontier, init, board.GeneratePushes(d.b, init, reach))

	if frontier.Len() == 0 {
		return Exhausted, Result{}
	}

	expanded := 0
	for {
		entry, ok := frontier.Pop()
		if !ok {
			return Exhausted, Result{Expanded: expanded}
		}

		if budget, has := d.opt.Budget.V(); has && expanded >= budget {
			return BudgetExceeded, Result{Expanded: expanded}
		}
		if contextx.IsCancelled(ctx) {
			return BudgetExceeded, Result{Expanded: expanded}
		}

		next := entry.State.Clone()
		d.b.DoPush(&next, entry.Push.At, entry.Push.Dir)

		if visited.Contains(next) {
			continue
		}

		expanded++
		if expanded%progressInterval == 0 {
			logw.Debugf(ctx, "sokosolve: expanded=%d frontier=%d visited=%d", expanded, frontier.Len(), visited.Len())
		}

		if isGoal(d.b, next) {
			return Solved, Result{Final: next, Expanded: expanded}
		}
		visited.Insert(next)

		reach := board.CalcReach(d.b, next)
		pushes := board.GeneratePushes(d.b, next, reach)

		if len(pushes) == 1 {
			// Forced move: enqueue unconditionally at priority 0, bypassing
			// dead-square pruning. The visited-set check after the next pop
			// still guards correctness.
			frontier.Push(Entry{State: next, Push: pushes[0], Priority: 0})
			continue
		}
		d.enqueue(frontier, next, pushes)
	}
}

func (d *Driver) isTunnel(p board.Push) bool {
	if d.opt.DisableTunnels {
		return false
	}
	return board.IsTunnelPush(d.b, p)
}

// enqueue adds every push from s whose destination is not dead, at
// priority 0 for tunnel pushes and the heuristic evaluated on the
// post-push box set otherwise.
func (d *Driver) enqueue(frontier *Frontier, s board.State, pushes []board.Push) {
	for _, p := range pushes {
		delta := d.b.Delta(p.Dir)
		to := p.At + delta
		if d.dead.IsDead(to) {
			continue
		}

		priority := Priority(0)
		if !d.isTunnel(p) {
			priority = Priority(heuristic.Manhattan(d.b.Width(), postPushBoxes(s, p, delta), d.b.Goals()))
		}
		frontier.Push(Entry{State: s, Push: p, Priority: priority})
	}
}

func isGoal(b *board.Board, s board.State) bool {
	goals := b.Goals()
	if len(s.Boxes) != len(goals) {
		return false
	}
	for i, box := range s.Boxes {
		if box != goals[i] {
			return false
		}
	}
	return true
}

// postPushBoxes returns the sorted box set that would result from
// applying p to s, without mutating s. Used to evaluate the heuristic
// on the post-push position before committing to the push.
func postPushBoxes(s board.State, p board.Push, delta int) []int {
	boxes := make([]int, len(s.Boxes))
	copy(boxes, s.Boxes)

	i := sort.SearchInts(boxes, p.At)
	to := p.At + delta

	copy(boxes[i:], boxes[i+1:])
	boxes = boxes[:len(boxes)-1]

	j := sort.SearchInts(boxes, to)
	boxes = append(boxes, 0)
	copy(boxes[j+1:], boxes[j:len(boxes)-1])
	boxes[j] = to
	return boxes
}
