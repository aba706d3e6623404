package bellmanford

import (
	"fmt"
	"maps"

	"github.com/latticelabs/cubesim/cube"
	"github.com/latticelabs/cubesim/routing"
)

// Algorithm is the distance-vector routing algorithm. One instance serves
// a whole grid; all mutable protocol state lives in each cube's Data.
type Algorithm struct {
	linkCost int64
}

// Option configures an Algorithm.
type Option func(a *Algorithm)

// WithLinkCost overrides the per-hop link cost advertised to neighbors.
// Non-positive costs fall back to DefaultLinkCost.
func WithLinkCost(c int64) Option {
	return func(a *Algorithm) { a.linkCost = c }
}

// New returns a Bellman-Ford routing algorithm.
func New(opts ...Option) *Algorithm {
	a := &Algorithm{linkCost: DefaultLinkCost}
	for _, opt := range opts {
		opt(a)
	}
	if a.linkCost <= 0 {
		a.linkCost = DefaultLinkCost
	}

	return a
}

// PowerOn installs fresh protocol state and announces the cube on every
// wired face. Re-powering a cube reinitializes its state: any previous
// table is discarded.
func (a *Algorithm) PowerOn(c *cube.RoutingCube) {
	c.Data = newNodeData(c.ID())
	ann := NewNeighbor{Source: c.ID(), LinkCost: a.linkCost}
	for _, d := range routing.ConnectedDirections(c) {
		c.SendPacket(d, ann)
	}
}

// Route emits any packets originated at this cube, then consumes at most
// one received packet and dispatches on its kind.
func (a *Algorithm) Route(c *cube.RoutingCube) {
	data, ok := c.Data.(*nodeData)
	if !ok {
		return
	}

	if len(data.tx) > 0 {
		staged := data.tx
		data.tx = nil
		for _, pkt := range staged {
			a.routeData(c, data, pkt)
		}
	}

	pkt, rx, ok := c.GetPacket()
	if !ok {
		return
	}
	switch p := pkt.(type) {
	case NewNeighbor:
		a.handleNewNeighbor(c, data, p, rx)
	case DistanceVector:
		a.handleDistanceVector(c, data, p, rx)
	case Data:
		a.routeData(c, data, p)
	default:
		// A foreign packet kind on a Bellman-Ford grid is a programming
		// error in the driver, not a runtime condition.
		panic(fmt.Sprintf("bellmanford: unknown packet type %T", pkt))
	}
}

// SendPacket stages an addressed payload for transmission on the cube's
// next Route.
func (a *Algorithm) SendPacket(c *cube.RoutingCube, dest cube.NodeID, payload cube.Packet) error {
	data, ok := c.Data.(*nodeData)
	if !ok {
		return ErrNotPowered
	}
	data.tx = append(data.tx, Data{Dest: dest, Payload: payload})

	return nil
}

// handleNewNeighbor records the link, answers un-acked announcements back
// along the arrival face, and advertises if the vector changed.
func (a *Algorithm) handleNewNeighbor(c *cube.RoutingCube, data *nodeData, p NewNeighbor, rx cube.Direction) {
	data.neighbors[p.Source] = rx
	data.table.newNeighbor(p.Source, p.LinkCost)
	if !p.Ack {
		c.SendPacket(rx, NewNeighbor{Source: c.ID(), LinkCost: p.LinkCost, Ack: true})
	}
	a.advertise(c, data)
}

// handleDistanceVector folds the advertised vector into the table and
// advertises if this cube's own vector changed.
func (a *Algorithm) handleDistanceVector(c *cube.RoutingCube, data *nodeData, p DistanceVector, rx cube.Direction) {
	if _, known := data.neighbors[p.Source]; !known {
		data.neighbors[p.Source] = rx
		data.table.newNeighbor(p.Source, a.linkCost)
	}
	data.table.update(p.Vector, p.Source)
	a.advertise(c, data)
}

// routeData delivers a payload locally or forwards it one hop toward its
// destination. Packets with no known route are dropped and accounted.
func (a *Algorithm) routeData(c *cube.RoutingCube, data *nodeData, p Data) {
	if p.Dest == c.ID() {
		c.Stats.CorrectlyRoutedPktsThisCycle++
		data.delivered = append(data.delivered, p)

		return
	}
	via, ok := data.table.nextHop(p.Dest)
	if !ok {
		c.DropPacket()

		return
	}
	dir, ok := data.neighbors[via]
	if !ok {
		c.DropPacket()

		return
	}
	c.SendPacket(dir, p)
}

// advertise broadcasts the current distance vector on every wired face,
// but only when it differs from the last advertisement. The suppression
// rule is what terminates convergence.
func (a *Algorithm) advertise(c *cube.RoutingCube, data *nodeData) {
	dv := data.table.vector()
	if maps.Equal(dv, data.lastAdvertised) {
		return
	}
	pkt := DistanceVector{Source: c.ID(), Vector: dv}
	for _, d := range routing.ConnectedDirections(c) {
		c.SendPacket(d, pkt)
	}
	data.lastAdvertised = dv
}

// NextHop exposes the cube's current next hop toward dest, for tests and
// diagnostics.
func NextHop(c *cube.RoutingCube, dest cube.NodeID) (via cube.NodeID, ok bool) {
	data, powered := c.Data.(*nodeData)
	if !powered {
		return cube.NodeID{}, false
	}

	return data.table.nextHop(dest)
}

// Cost exposes the recorded cost from c to dest through via.
func Cost(c *cube.RoutingCube, dest, via cube.NodeID) (int64, bool) {
	data, powered := c.Data.(*nodeData)
	if !powered {
		return 0, false
	}

	return data.table.cost(dest, via)
}

// Delivered returns the payload packets that terminated at c.
func Delivered(c *cube.RoutingCube) []Data {
	data, powered := c.Data.(*nodeData)
	if !powered {
		return nil
	}

	return data.delivered
}

func init() {
	routing.Register(Name, routing.Pair{
		NewRouting: func() routing.Algorithm { return New() },
		NewRobot:   func() routing.RobotAlgorithm { return NewRobot() },
	})
}
