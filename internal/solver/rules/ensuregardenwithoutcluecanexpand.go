package rules

import (
	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
	"github.com/cellwise/nurikabe/internal/paths"
)

// EnsureGardenWithoutClueCanExpand looks at every clueless garden and asks
// whether it can still merge into some incomplete clue-bearing garden
// within that garden's remaining size budget. If no route exists at all,
// the board is unsolvable. Otherwise, among the empty cells common to
// every candidate route (closest to the source first), it probes: would
// walling this cell off eliminate every route? If so, the cell must
// become Garden. It commits at most one change per call, since committing
// a change invalidates the routes just computed.
type EnsureGardenWithoutClueCanExpand struct{}

func (EnsureGardenWithoutClueCanExpand) Name() string { return "EnsureGardenWithoutClueCanExpand" }
func (EnsureGardenWithoutClueCanExpand) Cost() int     { return 54 }
func (EnsureGardenWithoutClueCanExpand) IsSaturating() bool { return false }
func (EnsureGardenWithoutClueCanExpand) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (EnsureGardenWithoutClueCanExpand) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	gardens := b.GetAllGardens()
	clueBearing := incompleteClueBearingGardens(b, gardens)
	sources := cluelessGardens(b, gardens)

	for _, source := range sources {
		var routePaths [][]grid.Coord
		for _, dest := range clueBearing {
			size, _ := dest.ExpectedSize(b)
			budget := size - source.Len() - dest.Len() + 2
			if budget < 0 {
				continue
			}
			off := wallsAndOtherClueGardenOffLimits(b, clueBearing, dest.CellGroup)
			other := cluelessGardenPathGroups(cluelessGardens(b, gardens, source.CellGroup))
			res, err := paths.Find(b.Range(), paths.Request{
				Start:     toPathGroup(source.Cells()),
				End:       toPathGroup(dest.Cells()),
				OffLimits: off,
				Other:     other,
				MaxLength: budget,
			})
			if err != nil {
				continue
			}
			routePaths = append(routePaths, res.Path)
		}

		if len(routePaths) == 0 {
			return nil, board.NewContradiction("clueless garden has no reachable incomplete clue-bearing garden within budget", source.CellGroup)
		}

		emptySets := make([][]grid.Coord, len(routePaths))
		for i, p := range routePaths {
			emptySets[i] = pathEmptyCells(b, p)
		}
		candidates := intersectCoords(emptySets)
		sortByManhattanTo(candidates, source.CellGroup)

		for _, probe := range candidates {
			if essentialToEveryRoute(b, gardens, source, clueBearing, probe) {
				changes := board.NewCellChanges()
				changes.Add(b.SetCellState(probe, board.Garden, "EnsureGardenWithoutClueCanExpand"))
				return changes, nil
			}
		}
	}
	return board.NewCellChanges(), nil
}

// essentialToEveryRoute reports whether, with probe treated as off-limits,
// source can no longer reach any incomplete clue-bearing garden at all.
func essentialToEveryRoute(b *board.Board, gardens []board.Garden, source board.Garden, clueBearing []board.Garden, probe grid.Coord) bool {
	other := cluelessGardenPathGroups(cluelessGardens(b, gardens, source.CellGroup))
	for _, dest := range clueBearing {
		off := wallsAndOtherClueGardenOffLimits(b, clueBearing, dest.CellGroup)
		off[probe] = true
		_, err := paths.Find(b.Range(), paths.Request{
			Start:     toPathGroup(source.Cells()),
			End:       toPathGroup(dest.Cells()),
			OffLimits: off,
			Other:     other,
		})
		if err == nil {
			return false
		}
	}
	return true
}
