// Package rules implements the 13 deduction rules of the solver's rule
// library, each as a solver.Rule. All() returns the full set in the order
// the driver will sort by cost.
package rules

import (
	"sort"

	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
	"github.com/cellwise/nurikabe/internal/paths"
)

// emptyCellTransitions is the trigger set shared by every rule whose
// predicates depend on which cells are currently Empty: both transitions
// the solver ever produces (Empty->Wall, Empty->Garden) can newly enable
// or disable such a rule's candidates.
var emptyCellTransitions = []board.Transition{
	{Before: board.Empty, After: board.Wall},
	{Before: board.Empty, After: board.Garden},
}

func toPathGroup(cells []grid.Coord) paths.Group {
	return paths.NewGroup(cells)
}

// incompleteClueBearingGardens returns every Garden with exactly one clue
// whose size hasn't yet reached that clue's value.
func incompleteClueBearingGardens(b *board.Board, gardens []board.Garden) []board.Garden {
	var out []board.Garden
	for _, g := range gardens {
		if g.HasExactlyOneClue(b) && !g.IsComplete(b) {
			out = append(out, g)
		}
	}
	return out
}

// cluelessGardens returns every Garden with zero clues, excluding any
// garden equal to one listed in except.
func cluelessGardens(b *board.Board, gardens []board.Garden, except ...board.CellGroup) []board.Garden {
	var out []board.Garden
	for _, g := range gardens {
		if g.ClueCount(b) != 0 {
			continue
		}
		if containsGroup(except, g.CellGroup) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func containsGroup(groups []board.CellGroup, g board.CellGroup) bool {
	for _, o := range groups {
		if o.Equal(g) {
			return true
		}
	}
	return false
}

func cluelessGardenPathGroups(gardens []board.Garden) []paths.Group {
	out := make([]paths.Group, 0, len(gardens))
	for _, g := range gardens {
		out = append(out, toPathGroup(g.Cells()))
	}
	return out
}

// wallsAndOtherClueGardenOffLimits builds the off-limits set for path
// searches originating at a clue-bearing or clueless garden: every Wall
// cell, plus the cells and adjacent neighbors of every other clue-bearing
// garden (so a path can never cut through or skirt a different clue's
// territory).
func wallsAndOtherClueGardenOffLimits(b *board.Board, clueBearing []board.Garden, except board.CellGroup) map[grid.Coord]bool {
	off := make(map[grid.Coord]bool)
	for _, w := range b.WallCells() {
		off[w] = true
	}
	for _, g := range clueBearing {
		if g.Equal(except) {
			continue
		}
		for _, c := range g.Cells() {
			off[c] = true
		}
		for _, n := range g.AdjacentNeighbors(b) {
			off[n] = true
		}
	}
	return off
}

func pathEmptyCells(b *board.Board, path []grid.Coord) []grid.Coord {
	var out []grid.Coord
	for _, c := range path {
		if b.Cell(c).State == board.Empty {
			out = append(out, c)
		}
	}
	return out
}

// intersectCoords returns the coordinates present in every one of sets,
// deduplicated and in row-major order. An empty sets list yields nil.
func intersectCoords(sets [][]grid.Coord) []grid.Coord {
	if len(sets) == 0 {
		return nil
	}
	counts := make(map[grid.Coord]int)
	for _, s := range sets {
		seen := make(map[grid.Coord]bool, len(s))
		for _, c := range s {
			if seen[c] {
				continue
			}
			seen[c] = true
			counts[c]++
		}
	}
	var out []grid.Coord
	for c, n := range counts {
		if n == len(sets) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func sortByManhattanTo(cells []grid.Coord, from board.CellGroup) {
	sort.SliceStable(cells, func(i, j int) bool {
		return from.ManhattanDistanceTo(cells[i]) < from.ManhattanDistanceTo(cells[j])
	})
}

// floodFill is a plain BFS/DFS-via-explicit-stack over the board's
// geometry (not through board's own flood fill, which is predicate-keyed
// and cached for whole-board views) that a handful of rules need for
// one-off reachability probes against an ad hoc blocked set.
func floodFill(b *board.Board, seed grid.Coord, blocked map[grid.Coord]bool) map[grid.Coord]bool {
	visited := map[grid.Coord]bool{seed: true}
	stack := []grid.Coord{seed}
	var buf []grid.Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		buf = b.Range().OrthogonalNeighbors(c, buf[:0], nil)
		for _, n := range buf {
			if visited[n] || blocked[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return visited
}
