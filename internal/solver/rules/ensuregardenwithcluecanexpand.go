package rules

import (
	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
)

// EnsureGardenWithClueCanExpand floods out from each incomplete
// clue-bearing garden's clue cell, avoiding walls and any cell adjacent to
// a different clue-bearing garden. If the reachable set is smaller than
// the clue's value, the garden can never reach its target size. Otherwise
// it probes nearby reachable empty cells (closest first): if removing a
// cell from the reachable set would drop it below the clue's value, that
// cell is load-bearing and must become Garden. Commits at most one change
// per call, since a change invalidates the flood fill just computed.
type EnsureGardenWithClueCanExpand struct{}

func (EnsureGardenWithClueCanExpand) Name() string      { return "EnsureGardenWithClueCanExpand" }
func (EnsureGardenWithClueCanExpand) Cost() int          { return 55 }
func (EnsureGardenWithClueCanExpand) IsSaturating() bool { return false }
func (EnsureGardenWithClueCanExpand) Triggers() []board.Transition {
	return emptyCellTransitions
}

func (EnsureGardenWithClueCanExpand) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	gardens := b.GetAllGardens()
	clueBearing := incompleteClueBearingGardens(b, gardens)

	for _, g := range clueBearing {
		size, _ := g.ExpectedSize(b)
		clueCell := g.ClueCells(b)[0]

		blocked := adjacentToOtherClueGardens(clueBearing, b, g)
		for _, w := range b.WallCells() {
			blocked[w] = true
		}

		reachable := floodFill(b, clueCell, blocked)
		if len(reachable) < size {
			return nil, board.NewContradiction("clue-bearing garden cannot reach enough cells for its clue", g.CellGroup)
		}

		remaining, _ := g.RemainingCells(b)
		var candidates []grid.Coord
		for c := range reachable {
			if b.Cell(c).State != board.Empty {
				continue
			}
			if g.ManhattanDistanceTo(c) > remaining {
				continue
			}
			candidates = append(candidates, c)
		}
		sortByManhattanTo(candidates, g.CellGroup)

		for _, probe := range candidates {
			probeBlocked := make(map[grid.Coord]bool, len(blocked)+1)
			for k := range blocked {
				probeBlocked[k] = true
			}
			probeBlocked[probe] = true
			reduced := floodFill(b, clueCell, probeBlocked)
			if len(reduced) < size {
				changes := board.NewCellChanges()
				changes.Add(b.SetCellState(probe, board.Garden, "EnsureGardenWithClueCanExpand"))
				return changes, nil
			}
		}
	}
	return board.NewCellChanges(), nil
}

// adjacentToOtherClueGardens unions the adjacent-neighbor sets of every
// clue-bearing garden except g.
func adjacentToOtherClueGardens(clueBearing []board.Garden, b *board.Board, g board.Garden) map[grid.Coord]bool {
	blocked := make(map[grid.Coord]bool)
	for _, other := range clueBearing {
		if other.Equal(g.CellGroup) {
			continue
		}
		for _, n := range other.AdjacentNeighbors(b) {
			blocked[n] = true
		}
	}
	return blocked
}
