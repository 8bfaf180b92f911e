package rules

import (
	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
	"github.com/cellwise/nurikabe/internal/paths"
)

// UnreachableFromGarden is the path-based, more expensive sibling of
// NaivelyUnreachableFromGarden: for each incomplete clue-bearing garden it
// asks the path finder which empty cells it can actually reach within its
// remaining-cells-plus-one budget, off-limits from walls and other
// clue-bearing gardens (and their neighbors), charging each clueless
// garden's size plus one once, the first time a path touches it. Any empty cell outside the union of
// every garden's reachable set can never join any garden and must become
// Wall.
type UnreachableFromGarden struct{}

func (UnreachableFromGarden) Name() string      { return "UnreachableFromGarden" }
func (UnreachableFromGarden) Cost() int          { return 900 }
func (UnreachableFromGarden) IsSaturating() bool { return true }
func (UnreachableFromGarden) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (UnreachableFromGarden) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	gardens := b.GetAllGardens()
	incomplete := incompleteClueBearingGardens(b, gardens)
	if len(incomplete) == 0 {
		return board.NewCellChanges(), nil
	}

	empties := b.EmptyCells()
	reachable := make(map[grid.Coord]bool, len(empties))
	other := cluelessGardenPathGroups(cluelessGardens(b, gardens))

	for _, g := range incomplete {
		remaining, _ := g.RemainingCells(b)
		off := wallsAndOtherClueGardenOffLimits(b, incomplete, g.CellGroup)

		for _, e := range empties {
			if reachable[e] || off[e] {
				continue
			}
			_, err := paths.Find(b.Range(), paths.Request{
				Start:     toPathGroup(g.Cells()),
				End:       toPathGroup([]grid.Coord{e}),
				OffLimits: off,
				Other:     other,
				MaxLength: remaining + 1,
			})
			if err == nil {
				reachable[e] = true
			}
		}
	}

	changes := board.NewCellChanges()
	for _, e := range empties {
		if !reachable[e] {
			changes.Add(b.SetCellState(e, board.Wall, "UnreachableFromGarden"))
		}
	}
	return changes, nil
}
