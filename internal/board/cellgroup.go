package board

import (
	"sort"

	"github.com/cellwise/nurikabe/internal/cache"
	"github.com/cellwise/nurikabe/internal/grid"
)

// CellGroup is an unordered set of cells, represented internally as a
// sorted slice of coordinates so that equality and hashing are by
// underlying cell set, not by insertion order - the Go analogue of the
// "arena of cells indexed by (row, col); a CellGroup is a sorted vector of
// indices" scheme in spec.md's design notes.
type CellGroup struct {
	cells []grid.Coord
	hash  cache.Hash
	index map[grid.Coord]bool
}

// NewCellGroup builds a CellGroup from coords. Duplicate coordinates are
// collapsed.
func NewCellGroup(b *Board, coords []grid.Coord) CellGroup {
	index := make(map[grid.Coord]bool, len(coords))
	for _, c := range coords {
		index[c] = true
	}
	sorted := make([]grid.Coord, 0, len(index))
	for c := range index {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	return CellGroup{cells: sorted, hash: b.HashCoords(sorted), index: index}
}

// Cells returns the group's member coordinates in row-major order.
func (g CellGroup) Cells() []grid.Coord {
	return g.cells
}

// Len returns the number of cells in the group.
func (g CellGroup) Len() int {
	return len(g.cells)
}

// Contains reports whether c belongs to the group.
func (g CellGroup) Contains(c grid.Coord) bool {
	return g.index[c]
}

// Hash returns the group's content hash, used for equality and as a map
// key component.
func (g CellGroup) Hash() cache.Hash {
	return g.hash
}

// Equal reports whether g and other contain exactly the same cells.
func (g CellGroup) Equal(other CellGroup) bool {
	if g.hash != other.hash || len(g.cells) != len(other.cells) {
		return false
	}
	for _, c := range g.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// AdjacentNeighbors returns the cells orthogonally adjacent to the group
// that are not themselves members of the group.
func (g CellGroup) AdjacentNeighbors(b *Board) []grid.Coord {
	seen := make(map[grid.Coord]bool)
	var out []grid.Coord
	var buf []grid.Coord
	for _, c := range g.cells {
		buf = b.rg.OrthogonalNeighbors(c, buf[:0], nil)
		for _, n := range buf {
			if g.Contains(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// EmptyAdjacentNeighbors returns the subset of AdjacentNeighbors whose
// current state is Empty.
func (g CellGroup) EmptyAdjacentNeighbors(b *Board) []grid.Coord {
	var out []grid.Coord
	for _, c := range g.AdjacentNeighbors(b) {
		if b.Cell(c).State == Empty {
			out = append(out, c)
		}
	}
	return out
}

// ClueCells returns the member cells that carry a clue.
func (g CellGroup) ClueCells(b *Board) []grid.Coord {
	var out []grid.Coord
	for _, c := range g.cells {
		if b.Cell(c).HasClue() {
			out = append(out, c)
		}
	}
	return out
}

// ClueCount returns the number of clue cells in the group.
func (g CellGroup) ClueCount(b *Board) int {
	return len(g.ClueCells(b))
}

// SoleClueValue returns the group's unique clue value. ok is false if the
// group has zero or more than one clue.
func (g CellGroup) SoleClueValue(b *Board) (value int, ok bool) {
	clues := g.ClueCells(b)
	if len(clues) != 1 {
		return 0, false
	}
	return b.Cell(clues[0]).Clue, true
}

// ManhattanDistanceTo returns the minimum Manhattan distance from any
// member cell to c.
func (g CellGroup) ManhattanDistanceTo(c grid.Coord) int {
	best := -1
	for _, m := range g.cells {
		d := m.Manhattan(c)
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

// ManhattanDistanceToGroup returns the minimum Manhattan distance between
// any cell of g and any cell of other.
func (g CellGroup) ManhattanDistanceToGroup(other CellGroup) int {
	best := -1
	for _, c := range other.cells {
		d := g.ManhattanDistanceTo(c)
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

// ContainsGroup reports whether every cell of other belongs to g.
func (g CellGroup) ContainsGroup(other CellGroup) bool {
	for _, c := range other.cells {
		if !g.Contains(c) {
			return false
		}
	}
	return true
}
