package bellmanford

import "github.com/latticelabs/cubesim/cube"

// distanceTable keeps, for each known destination, the cost of reaching it
// through every known neighbor. The advertised vector is the row-wise
// minimum; next-hop selection is the row-wise argmin.
type distanceTable struct {
	self cube.NodeID

	// dist maps destination -> via-neighbor -> cost.
	dist map[cube.NodeID]map[cube.NodeID]int64
}

func newDistanceTable(self cube.NodeID) *distanceTable {
	return &distanceTable{
		self: self,
		dist: make(map[cube.NodeID]map[cube.NodeID]int64),
	}
}

// row returns the via-cost map for dest, creating it on first touch.
func (t *distanceTable) row(dest cube.NodeID) map[cube.NodeID]int64 {
	r, ok := t.dist[dest]
	if !ok {
		r = make(map[cube.NodeID]int64)
		t.dist[dest] = r
	}

	return r
}

// newNeighbor records a direct link: the cost to id via id itself is the
// link cost.
func (t *distanceTable) newNeighbor(id cube.NodeID, linkCost int64) {
	t.row(id)[id] = linkCost
}

// update folds a neighbor's advertised vector into the table: the cost to
// each destination via that neighbor is the neighbor's advertised cost
// plus the direct link cost to the neighbor. Entries for self are skipped.
func (t *distanceTable) update(vector map[cube.NodeID]int64, via cube.NodeID) {
	linkCost, ok := t.dist[via][via]
	if !ok {
		linkCost = DefaultLinkCost
		t.newNeighbor(via, linkCost)
	}
	for dest, d := range vector {
		if dest == t.self {
			continue
		}
		t.row(dest)[via] = d + linkCost
	}
}

// nextHop returns the neighbor carrying the minimum-cost route to dest.
// dest == self resolves to self; an unknown destination resolves to none.
func (t *distanceTable) nextHop(dest cube.NodeID) (via cube.NodeID, ok bool) {
	if dest == t.self {
		return t.self, true
	}
	r, found := t.dist[dest]
	if !found || len(r) == 0 {
		return cube.NodeID{}, false
	}

	// Ties break on id ordering so route selection is stable across runs.
	var best cube.NodeID
	var bestCost int64
	first := true
	for v, c := range r {
		if first || c < bestCost || (c == bestCost && idLess(v, best)) {
			best, bestCost = v, c
			first = false
		}
	}

	return best, true
}

// idLess orders node ids: numeric ids before string ids, then by value.
func idLess(a, b cube.NodeID) bool {
	if a.Numeric != b.Numeric {
		return a.Numeric
	}
	if a.Numeric {
		return a.Num < b.Num
	}

	return a.Str < b.Str
}

// cost returns the recorded cost to dest through via.
func (t *distanceTable) cost(dest, via cube.NodeID) (int64, bool) {
	c, ok := t.dist[dest][via]

	return c, ok
}

// vector projects the per-destination minimum costs.
func (t *distanceTable) vector() map[cube.NodeID]int64 {
	dv := make(map[cube.NodeID]int64, len(t.dist))
	for dest, r := range t.dist {
		first := true
		var minCost int64
		for _, c := range r {
			if first || c < minCost {
				minCost = c
				first = false
			}
		}
		if !first {
			dv[dest] = minCost
		}
	}

	return dv
}
