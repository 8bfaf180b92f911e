package rules

import "github.com/cellwise/nurikabe/internal/board"

// EnsureNoTwoByTwoWalls marks Garden the lone empty cell of any 2x2 block
// that already holds 3 walls (the 4th cell becoming Wall too would
// violate the no-2x2-walls rule), and raises a contradiction if any 2x2
// block is already entirely walls.
type EnsureNoTwoByTwoWalls struct{}

func (EnsureNoTwoByTwoWalls) Name() string                { return "EnsureNoTwoByTwoWalls" }
func (EnsureNoTwoByTwoWalls) Cost() int                    { return 27 }
func (EnsureNoTwoByTwoWalls) IsSaturating() bool           { return true }
func (EnsureNoTwoByTwoWalls) Triggers() []board.Transition { return emptyCellTransitions }

func (EnsureNoTwoByTwoWalls) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	for _, tl := range b.TwoByTwoTopLefts() {
		coords := board.TwoByTwoCoords(tl)
		wallCount, emptyIdx := 0, -1
		for i, c := range coords {
			switch b.Cell(c).State {
			case board.Wall:
				wallCount++
			case board.Empty:
				emptyIdx = i
			}
		}
		if wallCount == 4 {
			return nil, board.NewContradiction("2x2 block is entirely walls", board.NewCellGroup(b, coords[:]))
		}
		if wallCount == 3 && emptyIdx >= 0 {
			changes.Add(b.SetCellState(coords[emptyIdx], board.Garden, "EnsureNoTwoByTwoWalls"))
		}
	}
	return changes, nil
}
