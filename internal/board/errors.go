package board

import (
	"fmt"

	"github.com/cellwise/nurikabe/internal/grid"
)

// ErrAdjacentClues is returned by New when two clue cells are orthogonally
// adjacent, which spec.md's rule R4 forbids at setup.
type ErrAdjacentClues struct {
	A, B grid.Coord
}

func (e *ErrAdjacentClues) Error() string {
	return fmt.Sprintf("board: clues at %v and %v are orthogonally adjacent", e.A, e.B)
}

// ContradictionError is raised by the board-state checker and by several
// solver rules when the current partial assignment can no longer lead to a
// valid solution. It carries the offending groups for display/highlighting.
type ContradictionError struct {
	Reason        string
	ProblemGroups []CellGroup
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("no possible solution from current state: %s", e.Reason)
}

// NewContradiction builds a ContradictionError.
func NewContradiction(reason string, groups ...CellGroup) *ContradictionError {
	return &ContradictionError{Reason: reason, ProblemGroups: groups}
}
