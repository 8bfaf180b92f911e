package rules

import "github.com/cellwise/nurikabe/internal/board"

// NaivelyUnreachableFromClueCell marks Wall any empty cell whose Manhattan
// path length (distance plus one, to count the clue cell itself) to every
// clue exceeds that clue's value: too far from any clue to ever join its
// garden.
type NaivelyUnreachableFromClueCell struct{}

func (NaivelyUnreachableFromClueCell) Name() string      { return "NaivelyUnreachableFromClueCell" }
func (NaivelyUnreachableFromClueCell) Cost() int         { return 28 }
func (NaivelyUnreachableFromClueCell) IsSaturating() bool { return true }
func (NaivelyUnreachableFromClueCell) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (NaivelyUnreachableFromClueCell) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	clues := b.Clues()
	for _, c := range b.EmptyCells() {
		reachableFromAny := false
		for _, clueCoord := range clues {
			clueVal := b.Cell(clueCoord).Clue
			pathLen := c.Manhattan(clueCoord) + 1
			if pathLen <= clueVal {
				reachableFromAny = true
				break
			}
		}
		if !reachableFromAny {
			changes.Add(b.SetCellState(c, board.Wall, "NaivelyUnreachableFromClueCell"))
		}
	}
	return changes, nil
}
