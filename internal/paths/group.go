// Package paths implements the A*-based shortest-path search between cell
// groups that several solver rules use to decide whether a garden can
// still reach enough empty cells to finish growing.
//
// It is grounded on gruid's paths package (astar.go, dijkstra.go, heap.go,
// neighbors.go, distance.go), generalized from gruid's plain unit-cost grid
// search to a cost model where traversing an already-known "other" group
// is free but first touching it costs that group's size plus one, exactly
// once per path - something plain gruid pathfinding has no notion of, since a
// roguelike map has no concept of a cell group charging a one-time toll.
package paths

import (
	"sort"

	"github.com/cellwise/nurikabe/internal/grid"
)

// Group is a plain, board-independent set of coordinates. The solver
// builds Groups from board.CellGroup/Garden/WeakGarden values at the call
// site; this package does not depend on the board package; it mirrors how
// gruid's paths package only depends on the root geometry package, never
// on the rl roguelike-map package that is its main caller.
type Group struct {
	cells []grid.Coord
	index map[grid.Coord]bool
}

// NewGroup builds a Group from coords, deduplicating.
func NewGroup(coords []grid.Coord) Group {
	index := make(map[grid.Coord]bool, len(coords))
	for _, c := range coords {
		index[c] = true
	}
	cells := make([]grid.Coord, 0, len(index))
	for c := range index {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return Group{cells: cells, index: index}
}

// Cells returns the group's member coordinates.
func (g Group) Cells() []grid.Coord { return g.cells }

// Len returns the number of cells in the group.
func (g Group) Len() int { return len(g.cells) }

// Contains reports whether c belongs to the group.
func (g Group) Contains(c grid.Coord) bool { return g.index[c] }

// ManhattanDistanceTo returns the minimum Manhattan distance from any
// member cell to c.
func (g Group) ManhattanDistanceTo(c grid.Coord) int {
	best := -1
	for _, m := range g.cells {
		d := m.Manhattan(c)
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

// AdjacentTo reports whether any cell of g is orthogonally adjacent to (or
// a member of) other.
func (g Group) AdjacentTo(other Group) bool {
	for _, c := range g.cells {
		if other.Contains(c) || other.Contains(c.N()) || other.Contains(c.S()) || other.Contains(c.E()) || other.Contains(c.W()) {
			return true
		}
	}
	return false
}

// Overlaps reports whether g and other share any cell.
func (g Group) Overlaps(other Group) bool {
	for _, c := range g.cells {
		if other.Contains(c) {
			return true
		}
	}
	return false
}
