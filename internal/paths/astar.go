package paths

import "github.com/cellwise/nurikabe/internal/grid"

// Request describes one shortest-path search between two cell groups.
type Request struct {
	// Start and End are the groups to connect. The returned path starts
	// at some cell of Start and ends at some cell of End.
	Start, End Group

	// OffLimits cells may never appear on the path.
	OffLimits map[grid.Coord]bool

	// Other is a list of disjoint groups, none overlapping OffLimits nor
	// adjacent to Start, that are "free to cross" once first entered:
	// edges between two cells of the same Other group cost 0, but the
	// first time the path becomes orthogonally adjacent to (or enters) a
	// given Other group it incurs an additive, one-time penalty of that
	// group's size plus one.
	Other []Group

	// MaxLength bounds the total path cost (edges plus group
	// penalties), not the cell count. Zero means unbounded.
	MaxLength int
}

// Result is a successful Find.
type Result struct {
	// Path is the ordered list of cells from a Start cell to an End
	// cell, inclusive.
	Path []grid.Coord

	// Cost is the total path cost: the number of edges outside any
	// credited group, plus size+1 for each Other group the path became
	// adjacent to (each counted once).
	Cost int

	// Credited lists the indices into Request.Other that the winning
	// path became adjacent to.
	Credited []int
}

type node struct {
	pos       grid.Coord
	gScore    int
	fScore    int
	parent    *grid.Coord
	credited  creditSet
	open      bool
	closed    bool
	heapIndex int
	seq       int
}

// creditSet is a small bitset over Request.Other indices; Nurikabe boards
// never have enough disjoint clueless gardens along one path to need
// anything bigger than a machine word.
type creditSet uint64

func (s creditSet) has(i int) bool   { return s&(1<<uint(i)) != 0 }
func (s creditSet) with(i int) creditSet { return s | (1 << uint(i)) }

// Find runs A* from req.Start to req.End within rg, honoring off-limits
// cells and the Other-group cost model described on Request.
func Find(rg grid.Range, req Request) (Result, error) {
	if err := validate(rg, req); err != nil {
		return Result{}, err
	}

	groupOf := make(map[grid.Coord]int, rg.Size())
	groupSize := make([]int, len(req.Other))
	touching := make([]map[grid.Coord]bool, len(req.Other))
	for gi, g := range req.Other {
		groupSize[gi] = g.Len()
		set := make(map[grid.Coord]bool, g.Len())
		var nb []grid.Coord
		for _, c := range g.Cells() {
			groupOf[c] = gi
			set[c] = true
			nb = rg.OrthogonalNeighbors(c, nb[:0], nil)
			for _, n := range nb {
				set[n] = true
			}
		}
		touching[gi] = set
	}
	const noGroup = -1
	lookupGroup := func(c grid.Coord) int {
		if gi, ok := groupOf[c]; ok {
			return gi
		}
		return noGroup
	}
	// touchedGroups returns the indices of Other groups that c is a member
	// of or orthogonally adjacent to.
	touchedGroups := func(c grid.Coord) []int {
		var out []int
		for gi, set := range touching {
			if set[c] {
				out = append(out, gi)
			}
		}
		return out
	}

	nodes := make(map[grid.Coord]*node)
	seq := 0
	get := func(c grid.Coord) *node {
		n, ok := nodes[c]
		if !ok {
			n = &node{pos: c, heapIndex: -1}
			nodes[c] = n
		}
		return n
	}

	heuristic := func(c grid.Coord) int {
		return req.End.ManhattanDistanceTo(c)
	}

	pq := priorityQueue{}
	for _, s := range req.Start.Cells() {
		n := get(s)
		n.gScore = 0
		n.fScore = heuristic(s)
		n.open = true
		n.credited = 0
		seq++
		n.seq = seq
		pq.push(n)
	}

	var goal *node
	for pq.Len() > 0 {
		current := pq.pop()
		current.open = false
		current.closed = true

		if req.End.Contains(current.pos) {
			goal = current
			break
		}

		var nb []grid.Coord
		nb = rg.OrthogonalNeighbors(current.pos, nb[:0], func(c grid.Coord) bool {
			return !req.OffLimits[c]
		})
		for _, neighborPos := range nb {
			neighborGroup := lookupGroup(neighborPos)
			currentGroup := lookupGroup(current.pos)

			edgeCost := 1
			if neighborGroup != noGroup && neighborGroup == currentGroup {
				edgeCost = 0
			}

			newCredited := current.credited
			penalty := 0
			for _, gi := range touchedGroups(neighborPos) {
				if newCredited.has(gi) {
					continue
				}
				penalty += groupSize[gi] + 1
				newCredited = newCredited.with(gi)
			}

			cost := current.gScore + edgeCost + penalty
			if req.MaxLength > 0 && cost > req.MaxLength {
				continue
			}

			neighbor := get(neighborPos)
			if neighbor.closed && cost >= neighbor.gScore {
				continue
			}
			if neighbor.open && cost >= neighbor.gScore {
				continue
			}

			parent := current.pos
			neighbor.parent = &parent
			neighbor.gScore = cost
			neighbor.fScore = cost + heuristic(neighborPos)
			neighbor.credited = newCredited
			neighbor.closed = false

			seq++
			neighbor.seq = seq
			if neighbor.open {
				pq.fix(neighbor.heapIndex)
			} else {
				neighbor.open = true
				pq.push(neighbor)
			}
		}
	}

	if goal == nil {
		return Result{}, &NotFoundError{Reason: "end group unreachable from start group"}
	}
	if req.MaxLength > 0 && goal.gScore > req.MaxLength {
		return Result{}, &NotFoundError{Reason: "shortest path exceeds MaxLength"}
	}

	path := reconstruct(goal, nodes)
	credited := creditedIndices(goal.credited, len(req.Other))
	return Result{Path: path, Cost: goal.gScore, Credited: credited}, nil
}

// reconstruct walks the parent chain from goal back to a start cell
// (identified by a nil parent) and returns it in start-to-goal order.
func reconstruct(goal *node, nodes map[grid.Coord]*node) []grid.Coord {
	var reversed []grid.Coord
	cur := goal
	for {
		reversed = append(reversed, cur.pos)
		if cur.parent == nil {
			break
		}
		cur = nodes[*cur.parent]
	}
	path := make([]grid.Coord, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}

func creditedIndices(s creditSet, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if s.has(i) {
			out = append(out, i)
		}
	}
	return out
}

func validate(rg grid.Range, req Request) error {
	if req.Start.Len() == 0 || req.End.Len() == 0 {
		return &SetupError{Reason: "start or end group is empty"}
	}
	for _, c := range req.Start.Cells() {
		if req.OffLimits[c] {
			return &SetupError{Reason: "start group overlaps off-limits cells"}
		}
	}
	for _, c := range req.End.Cells() {
		if req.OffLimits[c] {
			return &SetupError{Reason: "end group overlaps off-limits cells"}
		}
	}
	for i, gi := range req.Other {
		for _, c := range gi.Cells() {
			if req.OffLimits[c] {
				return &SetupError{Reason: "other group overlaps off-limits cells"}
			}
		}
		if gi.AdjacentTo(req.Start) {
			return &SetupError{Reason: "other group is adjacent to start group"}
		}
		for j := i + 1; j < len(req.Other); j++ {
			if gi.Overlaps(req.Other[j]) {
				return &SetupError{Reason: "other groups overlap"}
			}
		}
	}
	return nil
}
