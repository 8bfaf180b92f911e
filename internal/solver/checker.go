package solver

import "github.com/cellwise/nurikabe/internal/board"

// Check runs the board-state checker (spec'd design section 4.3) that the
// driver invokes at the top of every iteration, before scheduling any
// rule. It returns a ContradictionError the instant the current partial
// assignment can no longer lead to a valid solution.
func Check(b *board.Board) *board.ContradictionError {
	if b.HasTwoByTwoWalls() {
		return board.NewContradiction("a 2x2 block is entirely walls")
	}
	if !b.WallsConnected() {
		sections := b.GetAllWallSections()
		groups := make([]board.CellGroup, len(sections))
		for i, s := range sections {
			groups[i] = s.CellGroup
		}
		return board.NewContradiction("wall sections are not all connected", groups...)
	}

	gardens := b.GetAllGardens()
	for _, g := range gardens {
		if g.ClueCount(b) > 1 {
			return board.NewContradiction("a garden contains more than one clue", g.CellGroup)
		}
	}

	weakGardens := b.GetAllWeakGardens()
	for _, wg := range weakGardens {
		if !wg.HasExactlyOneClue(b) {
			continue
		}
		size, _ := wg.ExpectedSize(b)
		if wg.Len() < size {
			return board.NewContradiction("a weak garden is too small to still contain its clue's target size", wg.CellGroup)
		}
	}

	for _, g := range gardens {
		if !g.HasExactlyOneClue(b) {
			continue
		}
		size, _ := g.ExpectedSize(b)
		if g.Len() > size {
			return board.NewContradiction("a garden has grown larger than its clue", g.CellGroup)
		}
	}

	for _, wg := range weakGardens {
		if wg.ClueCount(b) > 0 {
			continue
		}
		hasGarden, hasEmpty := false, false
		for _, c := range wg.Cells() {
			switch b.Cell(c).State {
			case board.Garden:
				hasGarden = true
			case board.Empty:
				hasEmpty = true
			}
		}
		if hasGarden && !hasEmpty {
			return board.NewContradiction("a clueless garden is fully enclosed with no room left to grow into a clue", wg.CellGroup)
		}
	}

	return nil
}
