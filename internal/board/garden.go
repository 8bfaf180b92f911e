package board

// WeakGarden is a CellGroup whose cells are all Empty/Garden/Clue: a
// garden-in-progress that may still acquire Empty cells before it
// finishes growing.
type WeakGarden struct {
	CellGroup
}

// ExpectedSize returns the weak garden's unique clue value. ok is false if
// the weak garden doesn't have exactly one clue.
func (w WeakGarden) ExpectedSize(b *Board) (size int, ok bool) {
	return w.SoleClueValue(b)
}

// CorrectSize reports whether the cell count equals the expected size.
func (w WeakGarden) CorrectSize(b *Board) bool {
	size, ok := w.ExpectedSize(b)
	return ok && w.Len() == size
}

// HasExactlyOneClue reports whether the weak garden has exactly one clue.
func (w WeakGarden) HasExactlyOneClue(b *Board) bool {
	return w.ClueCount(b) == 1
}

// Garden is a WeakGarden whose cells are strictly Garden/Clue (no Empty
// cells): a maximal orthogonally-connected non-wall-or-clue-excluded
// region, i.e. spec.md's "garden".
type Garden struct {
	WeakGarden
}

// RemainingCells returns expected size minus current size for an
// incomplete garden with exactly one clue. ok is false without exactly one
// clue.
func (g Garden) RemainingCells(b *Board) (remaining int, ok bool) {
	size, ok := g.ExpectedSize(b)
	if !ok {
		return 0, false
	}
	return size - g.Len(), true
}

// IsComplete reports whether the garden's size already equals its clue's
// value.
func (g Garden) IsComplete(b *Board) bool {
	remaining, ok := g.RemainingCells(b)
	return ok && remaining == 0
}

// FullyEnclosed reports whether every adjacent neighbor of the garden is a
// Wall cell - i.e. the garden cannot grow further.
func (g Garden) FullyEnclosed(b *Board) bool {
	for _, n := range g.AdjacentNeighbors(b) {
		if b.Cell(n).State != Wall {
			return false
		}
	}
	return true
}

// WallSection is a CellGroup whose cells are all Wall.
type WallSection struct {
	CellGroup
}
