package rules

import "github.com/cellwise/nurikabe/internal/board"

// NoIsolatedWallSectionsNaive marks Wall the sole empty escape of a wall
// section when at least two wall sections exist: that section has no
// other way to rejoin the rest of the walls. It commits at most one
// change per call, since marking a cell Wall can re-merge sections and
// invalidate the rest of the scan.
type NoIsolatedWallSectionsNaive struct{}

func (NoIsolatedWallSectionsNaive) Name() string               { return "NoIsolatedWallSectionsNaive" }
func (NoIsolatedWallSectionsNaive) Cost() int                   { return 36 }
func (NoIsolatedWallSectionsNaive) IsSaturating() bool          { return false }
func (NoIsolatedWallSectionsNaive) Triggers() []board.Transition { return emptyCellTransitions }

func (NoIsolatedWallSectionsNaive) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	sections := b.GetAllWallSections()
	changes := board.NewCellChanges()
	if len(sections) < 2 {
		return changes, nil
	}
	for _, sec := range sections {
		escapes := sec.EmptyAdjacentNeighbors(b)
		if len(escapes) == 1 {
			changes.Add(b.SetCellState(escapes[0], board.Wall, "NoIsolatedWallSectionsNaive"))
			return changes, nil
		}
	}
	return changes, nil
}
