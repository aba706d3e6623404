package bellmanford

import (
	"testing"

	"github.com/latticelabs/cubesim/cube"
)

// TestTableNewNeighbor: a direct link is reachable via itself at link cost.
func TestTableNewNeighbor(t *testing.T) {
	tbl := newDistanceTable(cube.IntID(0))
	tbl.newNeighbor(cube.IntID(1), 1)

	via, ok := tbl.nextHop(cube.IntID(1))
	if !ok || via != cube.IntID(1) {
		t.Fatalf("nextHop(1) = %v,%v; want 1,true", via, ok)
	}
	if c, ok := tbl.cost(cube.IntID(1), cube.IntID(1)); !ok || c != 1 {
		t.Errorf("cost(1 via 1) = %d,%v; want 1,true", c, ok)
	}
}

// TestTableUpdate folds a neighbor's vector and checks the additive rule:
// cost to dest via v equals v's advertised cost plus the link cost to v.
func TestTableUpdate(t *testing.T) {
	tbl := newDistanceTable(cube.IntID(0))
	tbl.newNeighbor(cube.IntID(1), 1)
	tbl.update(map[cube.NodeID]int64{
		cube.IntID(0): 1, // entry for self must be ignored
		cube.IntID(2): 1,
		cube.IntID(3): 2,
	}, cube.IntID(1))

	cases := []struct {
		dest cube.NodeID
		want int64
	}{
		{cube.IntID(2), 2},
		{cube.IntID(3), 3},
	}
	for _, tc := range cases {
		if c, ok := tbl.cost(tc.dest, cube.IntID(1)); !ok || c != tc.want {
			t.Errorf("cost(%v via 1) = %d,%v; want %d,true", tc.dest, c, ok, tc.want)
		}
	}
	if _, ok := tbl.cost(cube.IntID(0), cube.IntID(1)); ok {
		t.Error("self entry leaked into the table")
	}
}

// TestTableNextHopPicksCheapest: with two candidate neighbors the cheaper
// one wins; the tie falls to the lower id.
func TestTableNextHopPicksCheapest(t *testing.T) {
	tbl := newDistanceTable(cube.IntID(0))
	tbl.newNeighbor(cube.IntID(1), 1)
	tbl.newNeighbor(cube.IntID(2), 1)
	tbl.update(map[cube.NodeID]int64{cube.IntID(9): 5}, cube.IntID(1)) // 9 via 1 = 6
	tbl.update(map[cube.NodeID]int64{cube.IntID(9): 2}, cube.IntID(2)) // 9 via 2 = 3

	if via, ok := tbl.nextHop(cube.IntID(9)); !ok || via != cube.IntID(2) {
		t.Errorf("nextHop(9) = %v,%v; want via 2", via, ok)
	}

	tbl.update(map[cube.NodeID]int64{cube.IntID(9): 2}, cube.IntID(1)) // tie at 3
	if via, ok := tbl.nextHop(cube.IntID(9)); !ok || via != cube.IntID(1) {
		t.Errorf("tied nextHop(9) = %v,%v; want lower id 1", via, ok)
	}
}

// TestTableSelfAndUnknown: self resolves to self, unknowns to nothing.
func TestTableSelfAndUnknown(t *testing.T) {
	self := cube.StringID("me")
	tbl := newDistanceTable(self)

	if via, ok := tbl.nextHop(self); !ok || via != self {
		t.Errorf("nextHop(self) = %v,%v; want self,true", via, ok)
	}
	if _, ok := tbl.nextHop(cube.StringID("elsewhere")); ok {
		t.Error("nextHop resolved an unknown destination")
	}
}

// TestTableVector projects per-destination minima.
func TestTableVector(t *testing.T) {
	tbl := newDistanceTable(cube.IntID(0))
	tbl.newNeighbor(cube.IntID(1), 1)
	tbl.newNeighbor(cube.IntID(2), 1)
	tbl.update(map[cube.NodeID]int64{cube.IntID(5): 4}, cube.IntID(1))
	tbl.update(map[cube.NodeID]int64{cube.IntID(5): 1}, cube.IntID(2))

	dv := tbl.vector()
	if dv[cube.IntID(5)] != 2 {
		t.Errorf("vector[5] = %d; want 2 (min over vias)", dv[cube.IntID(5)])
	}
	if dv[cube.IntID(1)] != 1 || dv[cube.IntID(2)] != 1 {
		t.Errorf("direct links in vector = %d,%d; want 1,1", dv[cube.IntID(1)], dv[cube.IntID(2)])
	}
}
