package rules

import "github.com/cellwise/nurikabe/internal/board"

// NoIsolatedWallSections is the expensive, exact sibling of
// NoIsolatedWallSectionsNaive: for every empty cell, it tentatively
// excludes that cell (as if it had become Garden) in addition to every
// Garden/Clue cell, and recomputes the non-garden cell groups that still
// contain a wall. If more than one such group would result, turning this
// cell into Garden would split the walls into disconnected sections, so
// the cell must be Wall instead.
type NoIsolatedWallSections struct{}

func (NoIsolatedWallSections) Name() string      { return "NoIsolatedWallSections" }
func (NoIsolatedWallSections) Cost() int          { return 967 }
func (NoIsolatedWallSections) IsSaturating() bool { return true }
func (NoIsolatedWallSections) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (NoIsolatedWallSections) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	for _, c := range b.EmptyCells() {
		probe := c
		groups := b.GetAllNonGardenCellGroupsWithWalls(&probe)
		if len(groups) > 1 {
			changes.Add(b.SetCellState(c, board.Wall, "NoIsolatedWallSections"))
		}
	}
	return changes, nil
}
