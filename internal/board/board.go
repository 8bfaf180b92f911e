// Package board owns the cell grid, the region abstractions built on top of
// it (CellGroup, Garden, WeakGarden, WallSection), the change journal and
// its undo/redo control, and the memoization caches the solver leans on.
//
// The grid storage and per-cell addressing scheme are grounded on gruid's
// Grid (a flat row-major Cell buffer addressed by a width-derived index);
// the flood-fill and region-partition algorithms are grounded on gruid's
// paths.PathRange.ComputeCC family, adapted from an 8-connected roguelike
// map to a 4-connected (orthogonal) puzzle board and from "all cells" to
// "cells matching a state predicate".
package board

import (
	"fmt"

	"github.com/cellwise/nurikabe/internal/cache"
	"github.com/cellwise/nurikabe/internal/grid"
)

// Board owns the full cell grid for one Nurikabe position.
type Board struct {
	rg    grid.Range
	cells []Cell
	clues []grid.Coord

	stateHash cache.Hash

	regionGroups    *cache.RegionGroups
	connectedCells  *cache.ConnectedCells
	filteredCells   *cache.FilteredCells

	history *History
}

// Clue is one clue placement used at construction time.
type Clue struct {
	Coord grid.Coord
	Value int
}

// New builds a Board of the given dimensions with the given clues. It
// returns ErrAdjacentClues if two clues are orthogonally adjacent, matching
// spec rule R4: clue cells may not be orthogonally adjacent at setup.
func New(rows, cols int, clues []Clue) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", rows, cols)
	}
	rg := grid.Range{Rows: rows, Cols: cols}
	b := &Board{
		rg:             rg,
		cells:          make([]Cell, rg.Size()),
		regionGroups:   cache.NewRegionGroups(),
		connectedCells: cache.NewConnectedCells(),
		filteredCells:  cache.NewFilteredCells(),
		history:        newHistory(),
	}
	for idx := range b.cells {
		b.cells[idx] = Cell{Coord: rg.CoordAt(idx), State: Empty}
	}
	seen := make(map[grid.Coord]bool, len(clues))
	for _, cl := range clues {
		if !rg.In(cl.Coord) {
			return nil, fmt.Errorf("board: clue %v out of range %dx%d", cl.Coord, rows, cols)
		}
		if cl.Value <= 0 {
			return nil, fmt.Errorf("board: clue %v has non-positive value %d", cl.Coord, cl.Value)
		}
		if seen[cl.Coord] {
			return nil, fmt.Errorf("board: duplicate clue at %v", cl.Coord)
		}
		seen[cl.Coord] = true
		idx := rg.Idx(cl.Coord)
		b.cells[idx].Clue = cl.Value
		b.cells[idx].State = Clue
		b.clues = append(b.clues, cl.Coord)
	}
	for _, c := range b.clues {
		var nb []grid.Coord
		nb = rg.OrthogonalNeighbors(c, nb, nil)
		for _, n := range nb {
			if b.cells[rg.Idx(n)].HasClue() {
				return nil, &ErrAdjacentClues{A: c, B: n}
			}
		}
	}
	b.recomputeStateHash()
	return b, nil
}

// Range returns the board's coordinate range.
func (b *Board) Range() grid.Range { return b.rg }

// Rows and Cols return the board dimensions.
func (b *Board) Rows() int { return b.rg.Rows }
func (b *Board) Cols() int { return b.rg.Cols }

// Cell returns a copy of the cell at c. It panics if c is out of range,
// since every caller within this module is expected to stay in range -
// board queries guard range at the boundary (construction, level loading).
func (b *Board) Cell(c grid.Coord) Cell {
	if !b.rg.In(c) {
		panic(fmt.Sprintf("board: coordinate %v out of range %dx%d", c, b.rg.Rows, b.rg.Cols))
	}
	return b.cells[b.rg.Idx(c)]
}

// Clues returns the frozen set of clue coordinates.
func (b *Board) Clues() []grid.Coord {
	out := make([]grid.Coord, len(b.clues))
	copy(out, b.clues)
	return out
}

// StateHash returns the board's current cheap state summary. It changes
// iff the multiset of (coordinate, state) pairs changes.
func (b *Board) StateHash() cache.Hash { return b.stateHash }

// History returns the board's reversible change journal.
func (b *Board) History() *History { return b.history }

// SetCellState transitions the cell at c to newState, recording a
// CellChange with reason in the board's history and invalidating the
// memoization caches. It is a no-op (no change recorded) if the cell is
// already in newState. It panics if c holds a clue: clue cells are
// permanently Clue and non-clickable, and every caller in this module is
// expected to have checked HasClue first - this is a programmer-error
// guard, not a puzzle contradiction.
func (b *Board) SetCellState(c grid.Coord, newState CellState, reason string) CellChange {
	idx := b.rg.Idx(c)
	cell := b.cells[idx]
	if cell.HasClue() {
		panic(fmt.Sprintf("board: attempt to change clue cell %v", c))
	}
	change := CellChange{
		Coord:  c,
		Before: cell.State,
		After:  newState,
		Reason: reason,
	}
	if cell.State == newState {
		return change
	}
	b.cells[idx].State = newState
	b.stateHash ^= stateContribution(idx, cell.State)
	b.stateHash ^= stateContribution(idx, newState)
	b.history.record(change)
	return change
}

// Apply replays a CellChange's After state onto the board (used to redo, or
// to apply externally constructed changes such as those from a rule).
func (b *Board) Apply(change CellChange) {
	b.SetCellState(change.Coord, change.After, change.Reason)
}

// Revert replays a CellChange's Before state onto the board (used to undo).
func (b *Board) Revert(change CellChange) {
	b.SetCellState(change.Coord, change.Before, change.Reason)
}

// ResetCaches discards all memoized region/connectivity/filtered-view
// results. The driver calls this once per solve session; mid-session the
// caches are left to grow, keyed by the ever-changing state hash, per the
// resource model in spec.md §5.
func (b *Board) ResetCaches() {
	b.regionGroups = cache.NewRegionGroups()
	b.connectedCells = cache.NewConnectedCells()
	b.filteredCells = cache.NewFilteredCells()
}

// TwoByTwoTopLefts returns the top-left coordinate of every 2x2 block in
// the board.
func (b *Board) TwoByTwoTopLefts() []grid.Coord {
	var out []grid.Coord
	for r := 0; r < b.rg.Rows-1; r++ {
		for c := 0; c < b.rg.Cols-1; c++ {
			out = append(out, grid.Coord{Row: r, Col: c})
		}
	}
	return out
}

// TwoByTwoCoords returns the four coordinates of the 2x2 block whose
// top-left is topLeft.
func TwoByTwoCoords(topLeft grid.Coord) [4]grid.Coord {
	return [4]grid.Coord{
		topLeft,
		topLeft.E(),
		topLeft.S(),
		{Row: topLeft.Row + 1, Col: topLeft.Col + 1},
	}
}

// --- Zobrist-style hashing --------------------------------------------------
//
// Both the board's incremental state hash and arbitrary coordinate-set
// hashes (used to key the region and connected-cells caches by "which
// cells are valid", independent of state) are built from the same
// splitmix64 mixing function, applied to a combination of flat cell index
// and, for state contributions, the state value. This is the classic
// Zobrist-hashing trick used for incremental transposition-table keys in
// board-game engines: toggling a cell out and back in is two applications
// of the same XOR, so no table of prior random numbers needs to be stored.

func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func stateContribution(idx int, state CellState) cache.Hash {
	return cache.Hash(mix64(uint64(idx)*7 + uint64(state)*104729 + 0x9E3779B97F4A7C15))
}

func coordContribution(idx int) cache.Hash {
	return cache.Hash(mix64(uint64(idx)*2 + 1))
}

// HashCoords returns an order-independent content hash of a coordinate set,
// suitable for CellGroup equality/hashing and for keying caches by "which
// cells are valid" independent of board state.
func (b *Board) HashCoords(coords []grid.Coord) cache.Hash {
	var h cache.Hash
	for _, c := range coords {
		h ^= coordContribution(b.rg.Idx(c))
	}
	return h
}

func (b *Board) recomputeStateHash() {
	var h cache.Hash
	for idx, cell := range b.cells {
		h ^= stateContribution(idx, cell.State)
	}
	b.stateHash = h
}
