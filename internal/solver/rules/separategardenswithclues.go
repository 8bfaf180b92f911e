package rules

import "github.com/cellwise/nurikabe/internal/board"

// SeparateGardensWithClues marks Wall any empty cell adjacent to two or
// more distinct incomplete clue-bearing gardens: it can join at most one
// of them, so it can never safely become Garden.
type SeparateGardensWithClues struct{}

func (SeparateGardensWithClues) Name() string      { return "SeparateGardensWithClues" }
func (SeparateGardensWithClues) Cost() int          { return 60 }
func (SeparateGardensWithClues) IsSaturating() bool { return true }
func (SeparateGardensWithClues) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (SeparateGardensWithClues) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	gardens := b.GetAllGardens()
	incomplete := incompleteClueBearingGardens(b, gardens)
	changes := board.NewCellChanges()

	for _, c := range b.EmptyCells() {
		count := 0
		for _, g := range incomplete {
			for _, n := range g.AdjacentNeighbors(b) {
				if n == c {
					count++
					break
				}
			}
			if count >= 2 {
				break
			}
		}
		if count >= 2 {
			changes.Add(b.SetCellState(c, board.Wall, "SeparateGardensWithClues"))
		}
	}
	return changes, nil
}
