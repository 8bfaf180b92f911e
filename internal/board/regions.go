package board

import (
	"github.com/cellwise/nurikabe/internal/cache"
	"github.com/cellwise/nurikabe/internal/grid"
)

func isEmptyCell(c Cell) bool      { return c.State == Empty }
func isWallCell(c Cell) bool       { return c.State == Wall }
func isGardenCell(c Cell) bool     { return c.State == Garden || c.State == Clue }
func isWeakGardenCell(c Cell) bool { return c.State == Empty || c.State == Garden || c.State == Clue }
func isAnyCell(Cell) bool          { return true }

// filtered returns the board's cached state-filtered view for a named
// predicate.
func (b *Board) filtered(id cache.PredicateID, match func(Cell) bool) []grid.Coord {
	if cells, ok := b.filteredCells.Get(b.stateHash, id); ok {
		return cells
	}
	var out []grid.Coord
	for idx := range b.cells {
		if match(b.cells[idx]) {
			out = append(out, b.rg.CoordAt(idx))
		}
	}
	b.filteredCells.Put(b.stateHash, id, out)
	return out
}

// EmptyCells returns every Empty cell.
func (b *Board) EmptyCells() []grid.Coord { return b.filtered(cache.PredEmpty, isEmptyCell) }

// WallCells returns every Wall cell.
func (b *Board) WallCells() []grid.Coord { return b.filtered(cache.PredWall, isWallCell) }

// GardenCells returns every Garden or Clue cell.
func (b *Board) GardenCells() []grid.Coord { return b.filtered(cache.PredGarden, isGardenCell) }

// WeakGardenCells returns every Empty, Garden or Clue cell.
func (b *Board) WeakGardenCells() []grid.Coord {
	return b.filtered(cache.PredWeakGarden, isWeakGardenCell)
}

// validSet computes the list of valid coordinates for a named predicate,
// with an optional extra exclusion set layered on top (used for probing
// "what if this cell were removed from consideration"), plus the hash
// that identifies this particular valid set for cache-keying purposes.
func (b *Board) validSet(id cache.PredicateID, match func(Cell) bool, exclude []grid.Coord) (coords []grid.Coord, index map[grid.Coord]bool, validHash cache.Hash) {
	all := b.filtered(id, match)
	validHash = cache.Hash(id)
	if len(exclude) == 0 {
		index = make(map[grid.Coord]bool, len(all))
		for _, c := range all {
			index[c] = true
		}
		return all, index, validHash
	}
	excludeSet := make(map[grid.Coord]bool, len(exclude))
	for _, e := range exclude {
		excludeSet[e] = true
	}
	out := make([]grid.Coord, 0, len(all))
	index = make(map[grid.Coord]bool, len(all))
	for _, c := range all {
		if excludeSet[c] {
			continue
		}
		out = append(out, c)
		index[c] = true
	}
	validHash ^= b.HashCoords(exclude)
	return out, index, validHash
}

// connectedComponent returns the orthogonally-connected component
// containing seed, restricted to validIndex, using an explicit work stack
// rather than recursion so flood fill has no call-depth limit on large
// grids. It is deterministic, includes seed iff seed is valid, visits each
// cell at most once, and is memoized by (state hash, valid-set hash, any
// member cell) so a later lookup from any cell of the same component is a
// cache hit.
func (b *Board) connectedComponent(seed grid.Coord, validIndex map[grid.Coord]bool, validHash cache.Hash) []grid.Coord {
	if cells, ok := b.connectedCells.Get(b.stateHash, validHash, seed); ok {
		return cells
	}
	if !validIndex[seed] {
		return nil
	}
	visited := map[grid.Coord]bool{seed: true}
	stack := []grid.Coord{seed}
	var component []grid.Coord
	var buf []grid.Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component = append(component, c)
		buf = b.rg.OrthogonalNeighbors(c, buf[:0], nil)
		for _, n := range buf {
			if !validIndex[n] || visited[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	b.connectedCells.Put(b.stateHash, validHash, component)
	return component
}

// allCellGroupCoords partitions a valid coordinate set into its
// orthogonally-connected components, seeding fills in the set's stable
// (row-major) iteration order, and memoizes the partition.
func (b *Board) allCellGroupCoords(valid []grid.Coord, validIndex map[grid.Coord]bool, validHash cache.Hash) [][]grid.Coord {
	if groups, ok := b.regionGroups.Get(validHash, b.stateHash); ok {
		return groups
	}
	seen := make(map[grid.Coord]bool, len(valid))
	var groups [][]grid.Coord
	for _, c := range valid {
		if seen[c] {
			continue
		}
		comp := b.connectedComponent(c, validIndex, validHash)
		for _, m := range comp {
			seen[m] = true
		}
		groups = append(groups, comp)
	}
	b.regionGroups.Put(validHash, b.stateHash, groups)
	return groups
}

// GetAllCellGroups partitions every cell matching match into CellGroups.
func (b *Board) GetAllCellGroups(id cache.PredicateID, match func(Cell) bool) []CellGroup {
	valid, index, validHash := b.validSet(id, match, nil)
	coordGroups := b.allCellGroupCoords(valid, index, validHash)
	out := make([]CellGroup, 0, len(coordGroups))
	for _, cs := range coordGroups {
		out = append(out, NewCellGroup(b, cs))
	}
	return out
}

// GetGarden returns the Garden containing seed. ok is false if seed is not
// a Garden or Clue cell.
func (b *Board) GetGarden(seed grid.Coord) (Garden, bool) {
	if !isGardenCell(b.Cell(seed)) {
		return Garden{}, false
	}
	_, index, validHash := b.validSet(cache.PredGarden, isGardenCell, nil)
	comp := b.connectedComponent(seed, index, validHash)
	return Garden{WeakGarden{NewCellGroup(b, comp)}}, true
}

// GetWeakGarden returns the WeakGarden containing seed. ok is false if
// seed is not an Empty, Garden or Clue cell.
func (b *Board) GetWeakGarden(seed grid.Coord) (WeakGarden, bool) {
	if !isWeakGardenCell(b.Cell(seed)) {
		return WeakGarden{}, false
	}
	_, index, validHash := b.validSet(cache.PredWeakGarden, isWeakGardenCell, nil)
	comp := b.connectedComponent(seed, index, validHash)
	return WeakGarden{NewCellGroup(b, comp)}, true
}

// GetWallSection returns the WallSection containing seed. ok is false if
// seed is not a Wall cell.
func (b *Board) GetWallSection(seed grid.Coord) (WallSection, bool) {
	if !isWallCell(b.Cell(seed)) {
		return WallSection{}, false
	}
	_, index, validHash := b.validSet(cache.PredWall, isWallCell, nil)
	comp := b.connectedComponent(seed, index, validHash)
	return WallSection{NewCellGroup(b, comp)}, true
}

// GetAllGardens returns every maximal Garden/Clue region.
func (b *Board) GetAllGardens() []Garden {
	groups := b.GetAllCellGroups(cache.PredGarden, isGardenCell)
	out := make([]Garden, 0, len(groups))
	for _, g := range groups {
		out = append(out, Garden{WeakGarden{g}})
	}
	return out
}

// GetAllWeakGardens returns every maximal Empty/Garden/Clue region.
func (b *Board) GetAllWeakGardens() []WeakGarden {
	groups := b.GetAllCellGroups(cache.PredWeakGarden, isWeakGardenCell)
	out := make([]WeakGarden, 0, len(groups))
	for _, g := range groups {
		out = append(out, WeakGarden{g})
	}
	return out
}

// GetAllWallSections returns every maximal Wall region.
func (b *Board) GetAllWallSections() []WallSection {
	groups := b.GetAllCellGroups(cache.PredWall, isWallCell)
	out := make([]WallSection, 0, len(groups))
	for _, g := range groups {
		out = append(out, WallSection{g})
	}
	return out
}

// GetAllNonGardenCellGroupsWithWalls extracts the connected components of
// (every cell) minus (every Garden/Clue cell) minus the optional probe
// cell, and keeps only the components containing at least one Wall cell.
// It is used by the isolated-wall-section rules: probing "if this empty
// cell became Garden, would the remaining non-garden cells still hold all
// the walls in one piece?"
func (b *Board) GetAllNonGardenCellGroupsWithWalls(probe *grid.Coord) []CellGroup {
	var exclude []grid.Coord
	if probe != nil {
		exclude = append(exclude, *probe)
	}
	gardenCells := b.GardenCells()
	exclude = append(exclude, gardenCells...)
	valid, index, validHash := b.validSet(cache.PredAny, isAnyCell, exclude)
	coordGroups := b.allCellGroupCoords(valid, index, validHash)
	var out []CellGroup
	for _, cs := range coordGroups {
		g := NewCellGroup(b, cs)
		if hasWallCell(b, g) {
			out = append(out, g)
		}
	}
	return out
}

func hasWallCell(b *Board, g CellGroup) bool {
	for _, c := range g.Cells() {
		if b.Cell(c).State == Wall {
			return true
		}
	}
	return false
}
