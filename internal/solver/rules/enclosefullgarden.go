package rules

import "github.com/cellwise/nurikabe/internal/board"

// EncloseFullGarden marks Wall every empty neighbor of a garden whose size
// already equals its sole clue's value: a complete garden can accept no
// more cells. Raises a contradiction if a garden somehow carries more
// than one clue.
type EncloseFullGarden struct{}

func (EncloseFullGarden) Name() string               { return "EncloseFullGarden" }
func (EncloseFullGarden) Cost() int                   { return 53 }
func (EncloseFullGarden) IsSaturating() bool          { return true }
func (EncloseFullGarden) Triggers() []board.Transition { return emptyCellTransitions }

func (EncloseFullGarden) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	for _, g := range b.GetAllGardens() {
		if g.ClueCount(b) > 1 {
			return nil, board.NewContradiction("garden has more than one clue", g.CellGroup)
		}
		if !g.HasExactlyOneClue(b) || !g.IsComplete(b) {
			continue
		}
		for _, n := range g.EmptyAdjacentNeighbors(b) {
			changes.Add(b.SetCellState(n, board.Wall, "EncloseFullGarden"))
		}
	}
	return changes, nil
}
