package rules

import "github.com/cellwise/nurikabe/internal/board"

// EnsureGardenCanExpandOneRoute marks Garden the sole empty escape cell of
// any incomplete garden that has exactly one such cell left: if a garden
// can only grow in one direction, that direction must be taken. The
// source's author notes this is subsumed by EnsureGardenWith[out]ClueCanExpand
// but keeps it for speed; kept here for the same reason.
type EnsureGardenCanExpandOneRoute struct{}

func (EnsureGardenCanExpandOneRoute) Name() string               { return "EnsureGardenCanExpandOneRoute" }
func (EnsureGardenCanExpandOneRoute) Cost() int                   { return 18 }
func (EnsureGardenCanExpandOneRoute) IsSaturating() bool          { return true }
func (EnsureGardenCanExpandOneRoute) Triggers() []board.Transition { return emptyCellTransitions }

func (EnsureGardenCanExpandOneRoute) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	changes := board.NewCellChanges()
	for _, g := range b.GetAllGardens() {
		if g.ClueCount(b) > 1 {
			return nil, board.NewContradiction("garden has more than one clue", g.CellGroup)
		}
		if g.HasExactlyOneClue(b) && g.IsComplete(b) {
			continue
		}
		escapes := g.EmptyAdjacentNeighbors(b)
		if len(escapes) == 1 {
			changes.Add(b.SetCellState(escapes[0], board.Garden, "EnsureGardenCanExpandOneRoute"))
		}
	}
	return changes, nil
}
