package board

import "github.com/cellwise/nurikabe/internal/grid"

// CellChange records one cell's state transition, with a human-readable
// reason for the change (normally the name of the rule that caused it).
type CellChange struct {
	Coord  grid.Coord
	Before CellState
	After  CellState
	Reason string
}

// Reversed returns the change that undoes this one.
func (c CellChange) Reversed() CellChange {
	return CellChange{Coord: c.Coord, Before: c.After, After: c.Before, Reason: c.Reason}
}

// IsNoop reports whether the change leaves the cell's state unchanged.
func (c CellChange) IsNoop() bool {
	return c.Before == c.After
}

// Transition is an observed (before, after) state pair, used both as a rule
// trigger and as a dedup key for "unique state transitions observed".
type Transition struct {
	Before CellState
	After  CellState
}

// CellChanges is an ordered, append-only journal of CellChange records.
type CellChanges struct {
	changes []CellChange
}

// NewCellChanges returns an empty journal.
func NewCellChanges() *CellChanges {
	return &CellChanges{}
}

// Add appends change to the journal, skipping no-op changes so that the
// journal only ever records real transitions.
func (cc *CellChanges) Add(change CellChange) {
	if change.IsNoop() {
		return
	}
	cc.changes = append(cc.changes, change)
}

// AddAll appends every non-noop change in changes.
func (cc *CellChanges) AddAll(changes []CellChange) {
	for _, c := range changes {
		cc.Add(c)
	}
}

// All returns the recorded changes in application order.
func (cc *CellChanges) All() []CellChange {
	return cc.changes
}

// Len returns the number of recorded changes.
func (cc *CellChanges) Len() int {
	return len(cc.changes)
}

// HasAny reports whether any change was recorded.
func (cc *CellChanges) HasAny() bool {
	return len(cc.changes) > 0
}

// HasWallChange reports whether any recorded change set a cell's After
// state to Wall.
func (cc *CellChanges) HasWallChange() bool {
	for _, c := range cc.changes {
		if c.After == Wall {
			return true
		}
	}
	return false
}

// Transitions returns the set of unique (before, after) transitions
// observed across all recorded changes, in first-seen order. The solver
// driver uses this to decide which rules a batch of changes could have
// newly enabled.
func (cc *CellChanges) Transitions() []Transition {
	seen := make(map[Transition]bool)
	var out []Transition
	for _, c := range cc.changes {
		t := Transition{Before: c.Before, After: c.After}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Reverse returns a new journal that undoes cc, in reverse application
// order: applying cc then cc.Reverse() to a board yields the original
// board state (spec.md §8, invariant 8).
func (cc *CellChanges) Reverse() *CellChanges {
	rev := &CellChanges{changes: make([]CellChange, len(cc.changes))}
	n := len(cc.changes)
	for i, c := range cc.changes {
		rev.changes[n-1-i] = c.Reversed()
	}
	return rev
}
