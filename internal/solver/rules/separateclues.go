package rules

import (
	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
)

// SeparateClues marks Wall any Empty cell orthogonally adjacent to two or
// more clue cells: since a garden holds exactly one clue, such a cell can
// never join either clue's garden.
type SeparateClues struct{}

func (SeparateClues) Name() string                      { return "SeparateClues" }
func (SeparateClues) Cost() int                          { return 13 }
func (SeparateClues) IsSaturating() bool                  { return true }
func (SeparateClues) Triggers() []board.Transition        { return nil }

func (SeparateClues) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	var buf []grid.Coord
	for _, c := range b.EmptyCells() {
		count := 0
		buf = b.Range().OrthogonalNeighbors(c, buf[:0], nil)
		for _, n := range buf {
			if b.Cell(n).HasClue() {
				count++
			}
		}
		if count >= 2 {
			changes.Add(b.SetCellState(c, board.Wall, "SeparateClues"))
		}
	}
	return changes, nil
}
