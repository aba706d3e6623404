// Package bellmanford wire types, per-node state, and sentinel errors.
package bellmanford

import (
	"errors"

	"github.com/latticelabs/cubesim/cube"
)

// Name is the registry name of the Bellman-Ford algorithm pair.
const Name = "bmf"

// DefaultLinkCost is the cost of a direct link between adjacent cubes.
const DefaultLinkCost int64 = 1

// ErrNotPowered indicates an operation on a cube whose Data was never
// initialized by this algorithm's PowerOn.
var ErrNotPowered = errors.New("bellmanford: cube not powered on")

// NewNeighbor announces the sender's existence to an adjacent cube.
// Ack distinguishes the reply leg of the handshake: a recipient of an
// un-acked announcement answers with Ack set, and an acked announcement is
// never answered, which terminates the exchange.
type NewNeighbor struct {
	Source   cube.NodeID
	LinkCost int64
	Ack      bool
}

// DistanceVector advertises the sender's per-destination minimum costs.
type DistanceVector struct {
	Source cube.NodeID
	Vector map[cube.NodeID]int64
}

// Data carries an application payload toward Dest.
type Data struct {
	Dest    cube.NodeID
	Payload cube.Packet
}

// nodeData is the per-cube protocol state installed by PowerOn.
type nodeData struct {
	table *distanceTable

	// neighbors maps each known neighbor id to the face it is reached on.
	neighbors map[cube.NodeID]cube.Direction

	// lastAdvertised is the most recent vector broadcast to neighbors.
	// Advertisements are suppressed while the projected vector equals it.
	lastAdvertised map[cube.NodeID]int64

	// tx holds packets originated at this cube, staged for the next Route.
	tx []Data

	// delivered collects payloads that terminated here.
	delivered []Data
}

func newNodeData(self cube.NodeID) *nodeData {
	return &nodeData{
		table:     newDistanceTable(self),
		neighbors: make(map[cube.NodeID]cube.Direction),
	}
}
