// Package cache implements the three memoization tables the board leans on
// to make flood fill, region partitioning and filtered-view queries cheap
// across a solver run: a region-groups cache, a connected-cells cache and a
// filtered-cells cache. All three are keyed off cheap integer hashes rather
// than the cell sets themselves, mirroring how the board never hashes a
// CellGroup's contents directly for cache lookups — only a summary.
//
// This package is grounded on the cache/ subpackage of the source Python
// implementation (cache.py, cell_groups_cache.py, connected_cells_cache.py,
// cell_set_cache.py), adapted to Go's map-based associative caches instead
// of dict subclassing, and on the lazily-populated, index-stamped cache
// fields gruid's paths.PathRange keeps for connected-component flood fill.
package cache

import "github.com/cellwise/nurikabe/internal/grid"

// PredicateID names a state-filter predicate by a stable small integer, so
// that filtered-view caches can be keyed by predicate identity without
// hashing function values (Go has no hash(function) equivalent).
type PredicateID int

const (
	PredAny PredicateID = iota
	PredEmpty
	PredWall
	PredGarden
	PredWeakGarden
	PredClue
)

// Hash is a cheap summary of a board or cell-set state, used as (part of) a
// cache key. It is intentionally not cryptographic. The tables key entries
// by hash alone, so two states whose hashes collide share an entry and a
// lookup for one returns the value stored for the other; with 64-bit
// mixed hashes such collisions are improbable but not ruled out.
type Hash uint64

// RegionGroups memoizes the partition of a validity-filtered cell set into
// orthogonally-connected components, keyed by (which cells are valid, what
// state the board is in).
type RegionGroups struct {
	entries map[regionKey][][]grid.Coord
}

type regionKey struct {
	validHash Hash
	stateHash Hash
}

func NewRegionGroups() *RegionGroups {
	return &RegionGroups{entries: make(map[regionKey][][]grid.Coord)}
}

func (c *RegionGroups) Get(validHash, stateHash Hash) ([][]grid.Coord, bool) {
	groups, ok := c.entries[regionKey{validHash, stateHash}]
	return groups, ok
}

func (c *RegionGroups) Put(validHash, stateHash Hash, groups [][]grid.Coord) {
	c.entries[regionKey{validHash, stateHash}] = groups
}

// ConnectedCells memoizes flood-fill results so that looking the cache up
// with *any* cell belonging to an already-computed component is a hit, not
// just the original seed cell: Put fans the same result out under every
// member cell's key.
type ConnectedCells struct {
	entries map[connectedKey][]grid.Coord
}

type connectedKey struct {
	stateHash Hash
	validHash Hash
	seed      grid.Coord
}

func NewConnectedCells() *ConnectedCells {
	return &ConnectedCells{entries: make(map[connectedKey][]grid.Coord)}
}

func (c *ConnectedCells) Get(stateHash, validHash Hash, seed grid.Coord) ([]grid.Coord, bool) {
	cells, ok := c.entries[connectedKey{stateHash, validHash, seed}]
	return cells, ok
}

// Put records component as the flood-fill result for every cell it
// contains, so a later Get from any member cell is a hit.
func (c *ConnectedCells) Put(stateHash, validHash Hash, component []grid.Coord) {
	for _, cell := range component {
		c.entries[connectedKey{stateHash, validHash, cell}] = component
	}
}

// FilteredCells memoizes a state-filtered view of the board (e.g. "every
// wall cell"), keyed by board state and predicate identity.
type FilteredCells struct {
	entries map[filteredKey][]grid.Coord
}

type filteredKey struct {
	stateHash Hash
	predicate PredicateID
}

func NewFilteredCells() *FilteredCells {
	return &FilteredCells{entries: make(map[filteredKey][]grid.Coord)}
}

func (c *FilteredCells) Get(stateHash Hash, predicate PredicateID) ([]grid.Coord, bool) {
	cells, ok := c.entries[filteredKey{stateHash, predicate}]
	return cells, ok
}

func (c *FilteredCells) Put(stateHash Hash, predicate PredicateID, cells []grid.Coord) {
	c.entries[filteredKey{stateHash, predicate}] = cells
}
