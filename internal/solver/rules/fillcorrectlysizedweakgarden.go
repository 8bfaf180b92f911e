package rules

import "github.com/cellwise/nurikabe/internal/board"

// FillCorrectlySizedWeakGarden marks Garden every Empty cell of a weak
// garden whose size already equals its sole clue's value: those empty
// cells must belong to the garden, since the garden cannot grow further
// without overshooting.
type FillCorrectlySizedWeakGarden struct{}

func (FillCorrectlySizedWeakGarden) Name() string      { return "FillCorrectlySizedWeakGarden" }
func (FillCorrectlySizedWeakGarden) Cost() int         { return 50 }
func (FillCorrectlySizedWeakGarden) IsSaturating() bool { return true }
func (FillCorrectlySizedWeakGarden) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (FillCorrectlySizedWeakGarden) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	for _, wg := range b.GetAllWeakGardens() {
		if !wg.HasExactlyOneClue(b) || !wg.CorrectSize(b) {
			continue
		}
		for _, c := range wg.Cells() {
			if b.Cell(c).State == board.Empty {
				changes.Add(b.SetCellState(c, board.Garden, "FillCorrectlySizedWeakGarden"))
			}
		}
	}
	return changes, nil
}
