package rules

import "github.com/cellwise/nurikabe/internal/board"

// NaivelyUnreachableFromGarden marks Wall any empty cell too far, by plain
// Manhattan distance, to fit within any incomplete clue-bearing garden's
// remaining-cells budget.
type NaivelyUnreachableFromGarden struct{}

func (NaivelyUnreachableFromGarden) Name() string      { return "NaivelyUnreachableFromGarden" }
func (NaivelyUnreachableFromGarden) Cost() int          { return 65 }
func (NaivelyUnreachableFromGarden) IsSaturating() bool { return true }
func (NaivelyUnreachableFromGarden) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (NaivelyUnreachableFromGarden) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	gardens := b.GetAllGardens()
	incomplete := incompleteClueBearingGardens(b, gardens)
	if len(incomplete) == 0 {
		return board.NewCellChanges(), nil
	}

	changes := board.NewCellChanges()
	for _, c := range b.EmptyCells() {
		reachableByAny := false
		for _, g := range incomplete {
			remaining, _ := g.RemainingCells(b)
			if g.ManhattanDistanceTo(c) <= remaining {
				reachableByAny = true
				break
			}
		}
		if !reachableByAny {
			changes.Add(b.SetCellState(c, board.Wall, "NaivelyUnreachableFromGarden"))
		}
	}
	return changes, nil
}
