// Package solver drives the fixed-point deduction loop over a board: the
// board-state checker that detects contradictions, the Rule interface each
// deduction implements, and the driver that schedules rules by cost and
// re-queues them as new cell-state transitions make them worth retrying.
package solver

import "github.com/cellwise/nurikabe/internal/board"

// Rule is one deduction: a pure function from board to the cell changes it
// can currently justify. Implementations live in internal/solver/rules.
type Rule interface {
	// Name identifies the rule for logging and for the driver's
	// saturated/queued bookkeeping.
	Name() string

	// Cost orders the ready queue; cheaper rules run first.
	Cost() int

	// IsSaturating reports whether one Apply call is expected to find
	// every currently-deducible change of this rule's kind. Saturating
	// rules are held back from re-queueing until a new transition
	// triggers them again; non-saturating rules are eligible to run
	// again as soon as they produce a change.
	IsSaturating() bool

	// Triggers lists the (before, after) transitions whose occurrence
	// may newly enable this rule to make progress. A nil/empty slice
	// means the rule only depends on fixed board setup (e.g. clue
	// placement) and needs no re-triggering after its first run.
	Triggers() []board.Transition

	// Apply inspects the board and returns every change it can
	// currently justify (for saturating-in-practice rules, potentially
	// many; for rules documented as "single change per call", at most
	// one). A non-nil *board.ContradictionError means the board can no
	// longer reach a valid solution.
	Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError)
}
