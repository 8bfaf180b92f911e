package solver

import (
	"context"
	"sort"

	"github.com/cellwise/nurikabe/internal/board"
)

// Result is the outcome of one Solve run: the accumulated changes (always
// non-nil, possibly empty) and, if the board turned out to be unsolvable
// from its current state, the contradiction that stopped the loop.
type Result struct {
	Changes       *board.CellChanges
	Contradiction *board.ContradictionError
}

// Driver runs the fixed-point scheduling loop over a fixed rule set,
// described in spec's design section 4.5: an ordered ready queue sorted by
// cost, trigger-based re-scheduling, and a single "saturated" rule held
// back from immediate re-queueing after it fires.
type Driver struct {
	rules []Rule
}

// NewDriver builds a Driver over rules, which need not be pre-sorted.
func NewDriver(rules []Rule) *Driver {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	sortByCost(cp)
	return &Driver{rules: cp}
}

func sortByCost(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Cost() < rules[j].Cost() })
}

func triggeredBy(r Rule, observed []board.Transition) bool {
	triggers := r.Triggers()
	if len(triggers) == 0 {
		return false
	}
	for _, t := range triggers {
		for _, o := range observed {
			if t == o {
				return true
			}
		}
	}
	return false
}

// Solve runs the loop to a fixed point or a contradiction, against a board
// whose caches it resets up front (a fresh solve session, per the resource
// model in spec's concurrency section). It never stops early on its own;
// callers that need to bound iterations or wall-clock time should use Run.
func (d *Driver) Solve(b *board.Board) Result {
	return d.Run(context.Background(), b)
}

// Run is Solve with an external stop condition: ctx is checked once per
// loop iteration, and a cancelled or deadline-exceeded context stops the
// loop after the current rule application completes, returning whatever
// CellChanges were accumulated so far. This is the "external driver may
// bound iterations or wall-clock" allowance, not a contradiction, so
// Result.Contradiction stays nil on a ctx-driven stop.
func (d *Driver) Run(ctx context.Context, b *board.Board) Result {
	b.ResetCaches()
	total := board.NewCellChanges()

	queue := make([]Rule, len(d.rules))
	copy(queue, d.rules)
	queued := make(map[string]bool, len(d.rules))
	for _, r := range queue {
		queued[r.Name()] = true
	}

	var saturated Rule
	var observed []board.Transition

	for {
		if ctx.Err() != nil {
			return Result{Changes: total}
		}

		if err := Check(b); err != nil {
			return Result{Changes: total, Contradiction: err}
		}

		for _, r := range d.rules {
			if queued[r.Name()] {
				continue
			}
			if saturated != nil && r.Name() == saturated.Name() {
				continue
			}
			if triggeredBy(r, observed) {
				queue = append(queue, r)
				queued[r.Name()] = true
			}
		}
		sortByCost(queue)

		if len(queue) == 0 {
			break
		}

		r := queue[0]
		queue = queue[1:]
		delete(queued, r.Name())

		changes, contradiction := r.Apply(b)
		if contradiction != nil {
			return Result{Changes: total, Contradiction: contradiction}
		}

		if changes != nil && changes.HasAny() {
			total.AddAll(changes.All())
			observed = changes.Transitions()
			if r.IsSaturating() {
				saturated = r
			} else {
				saturated = nil
				queue = append(queue, r)
				queued[r.Name()] = true
			}
		} else {
			observed = nil
		}
	}

	return Result{Changes: total}
}
