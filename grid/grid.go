package grid

import (
	"fmt"

	"github.com/latticelabs/cubesim/cube"
	"github.com/latticelabs/cubesim/routing"
)

// Grid is the whole lattice plus its algorithm bindings. The grid owns its
// cubes; every other reference into a cube (neighbor faces, robot wrappers,
// the id index) is maintained by the grid's add/remove operations.
type Grid struct {
	nodes map[cube.Position]*cube.RoutingCube
	byID  map[cube.NodeID]cube.Position

	// order preserves insertion order for deterministic cycle iteration.
	order []cube.Position

	robots     map[cube.Position]*cube.Robot
	robotOrder []cube.Position

	layerEntry  map[int]cube.Position
	layerBounds map[int]Bounds

	algo      routing.Algorithm
	robotAlgo routing.RobotAlgorithm

	queueCap int
	nextID   int64
	cycles   int64
	stats    NetworkDiagnostics
}

// New creates an empty grid bound to the given algorithm pair. Both
// algorithms must be non-nil; every cube on the grid shares them.
func New(algo routing.Algorithm, robotAlgo routing.RobotAlgorithm, opts ...Option) *Grid {
	g := &Grid{
		nodes:       make(map[cube.Position]*cube.RoutingCube),
		byID:        make(map[cube.NodeID]cube.Position),
		robots:      make(map[cube.Position]*cube.Robot),
		layerEntry:  make(map[int]cube.Position),
		layerBounds: make(map[int]Bounds),
		algo:        algo,
		robotAlgo:   robotAlgo,
		queueCap:    cube.DefaultMaxQueueLen,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode creates (or adopts, via WithCube) a cube at (x,y,z), wires it to
// every adjacent cube, registers it in the id index, and powers it on.
// Omitting WithID assigns the next free integer id.
func (g *Grid) AddNode(x, y, z int, opts ...NodeOption) (*cube.RoutingCube, error) {
	c, err := g.insert(x, y, z, opts)
	if err != nil {
		return nil, err
	}
	g.algo.PowerOn(c)

	return c, nil
}

// AddRobot is AddNode for robot nodes: the cube is additionally wrapped in
// a Robot, tracked in the robot list, and powered on through the robot
// algorithm (which may in turn power the routing side, as the
// Bellman-Ford robot does).
func (g *Grid) AddRobot(x, y, z int, opts ...NodeOption) (*cube.Robot, error) {
	c, err := g.insert(x, y, z, opts)
	if err != nil {
		return nil, err
	}
	r := cube.NewRobot(c)
	g.robots[c.Position()] = r
	g.robotOrder = append(g.robotOrder, c.Position())
	g.robotAlgo.PowerOn(r)

	return r, nil
}

// insert performs the shared part of AddNode/AddRobot: occupancy and id
// checks, index registration, neighbor wiring, and layer bookkeeping.
func (g *Grid) insert(x, y, z int, opts []NodeOption) (*cube.RoutingCube, error) {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	pos := cube.Position{X: x, Y: y, Z: z}
	if _, occupied := g.nodes[pos]; occupied {
		return nil, fmt.Errorf("%w: %v", ErrPositionOccupied, pos)
	}

	c := cfg.cube
	if c == nil {
		c = cube.NewRoutingCube(pos, cube.WithQueueCapacity(g.queueCap))
	} else if c.Position() != pos {
		return nil, fmt.Errorf("%w: cube at %v inserted at %v", ErrPositionMismatch, c.Position(), pos)
	}

	id := cfg.id
	if cfg.hasID {
		if _, taken := g.byID[id]; taken {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, id)
		}
	} else {
		id = g.allocID()
	}
	c.SetID(id)

	g.nodes[pos] = c
	g.byID[id] = pos
	g.order = append(g.order, pos)
	g.wire(c)
	g.trackLayer(pos)

	return c, nil
}

// allocID returns the next integer id not present in the grid.
func (g *Grid) allocID() cube.NodeID {
	for {
		id := cube.IntID(g.nextID)
		g.nextID++
		if _, taken := g.byID[id]; !taken {
			return id
		}
	}
}

// wire installs reciprocal face references between c and each existing
// axis-adjacent cube: c's slot toward d references the neighbor's inbound
// face on the opposite side, and vice versa.
func (g *Grid) wire(c *cube.RoutingCube) {
	pos := c.Position()
	for _, d := range cube.AllDirections {
		n, ok := g.nodes[pos.Neighbor(d)]
		if !ok {
			continue
		}
		c.ConnectFace(d, n.InboundFace(d.Opposite()))
		n.ConnectFace(d.Opposite(), c.InboundFace(d))
	}
}

// RemoveNode deletes the cube at (x,y,z), clearing every surrounding
// cube's reference toward it. The removed cube's own references are left
// untouched; the cube is unreachable once dropped from the index.
func (g *Grid) RemoveNode(x, y, z int) error {
	pos := cube.Position{X: x, Y: y, Z: z}
	c, ok := g.nodes[pos]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, pos)
	}

	for _, d := range cube.AllDirections {
		if n, wired := g.nodes[pos.Neighbor(d)]; wired {
			n.DisconnectFace(d.Opposite())
		}
	}

	delete(g.nodes, pos)
	delete(g.byID, c.ID())
	g.order = removePosition(g.order, pos)
	if _, isRobot := g.robots[pos]; isRobot {
		delete(g.robots, pos)
		g.robotOrder = removePosition(g.robotOrder, pos)
	}
	g.dropFromLayer(pos)

	return nil
}

// RemoveNodeByID removes the cube registered under id.
func (g *Grid) RemoveNodeByID(id cube.NodeID) error {
	pos, ok := g.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %v", ErrNodeNotFound, id)
	}

	return g.RemoveNode(pos.X, pos.Y, pos.Z)
}

func removePosition(order []cube.Position, pos cube.Position) []cube.Position {
	for i, p := range order {
		if p == pos {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}

// Node returns the cube at (x,y,z).
func (g *Grid) Node(x, y, z int) (*cube.RoutingCube, bool) {
	c, ok := g.nodes[cube.Position{X: x, Y: y, Z: z}]

	return c, ok
}

// NodeByID returns the cube registered under id.
func (g *Grid) NodeByID(id cube.NodeID) (*cube.RoutingCube, bool) {
	pos, ok := g.byID[id]
	if !ok {
		return nil, false
	}

	return g.nodes[pos], true
}

// Nodes returns every cube in insertion order.
func (g *Grid) Nodes() []*cube.RoutingCube {
	out := make([]*cube.RoutingCube, 0, len(g.order))
	for _, pos := range g.order {
		out = append(out, g.nodes[pos])
	}

	return out
}

// Robots returns every robot in insertion order.
func (g *Grid) Robots() []*cube.Robot {
	out := make([]*cube.Robot, 0, len(g.robotOrder))
	for _, pos := range g.robotOrder {
		out = append(out, g.robots[pos])
	}

	return out
}

// RobotAt returns the robot whose cube sits at (x,y,z).
func (g *Grid) RobotAt(x, y, z int) (*cube.Robot, bool) {
	r, ok := g.robots[cube.Position{X: x, Y: y, Z: z}]

	return r, ok
}

// Len returns the number of cubes on the grid.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// SendPacket originates a packet at the cube identified by src, addressed
// to dest. Robot sources go through the robot algorithm, everything else
// through the routing algorithm. A missing source is a structural error; a
// missing destination is the algorithm's concern.
func (g *Grid) SendPacket(data cube.Packet, src, dest cube.NodeID) error {
	pos, ok := g.byID[src]
	if !ok {
		return fmt.Errorf("%w: source id %v", ErrNodeNotFound, src)
	}
	if r, isRobot := g.robots[pos]; isRobot {
		return g.robotAlgo.SendPacket(r, dest, data)
	}

	return g.algo.SendPacket(g.nodes[pos], dest, data)
}

// SendPacketCoords is SendPacket with both endpoints given as coordinates.
// Both positions must resolve to cubes so the destination id can be
// determined.
func (g *Grid) SendPacketCoords(data cube.Packet, src, dest cube.Position) error {
	srcCube, ok := g.nodes[src]
	if !ok {
		return fmt.Errorf("%w: source %v", ErrNodeNotFound, src)
	}
	destCube, ok := g.nodes[dest]
	if !ok {
		return fmt.Errorf("%w: destination %v", ErrNodeNotFound, dest)
	}

	return g.SendPacket(data, srcCube.ID(), destCube.ID())
}

// Step runs one full cycle: route, flush, robot step, diagnostics rollup.
func (g *Grid) Step() {
	for _, pos := range g.order {
		c := g.nodes[pos]
		c.ResetCycleStats()
		g.algo.Route(c)
	}

	for _, pos := range g.order {
		g.nodes[pos].Flush()
	}

	for _, pos := range g.robotOrder {
		g.robotAlgo.Step(g.robots[pos])
	}

	g.updateNetStats()
	g.cycles++
}

// updateNetStats resets the cycle-dependent aggregates and folds every
// cube's counters into the network diagnostics.
func (g *Grid) updateNetStats() {
	g.stats.ResetCycle()
	for _, pos := range g.order {
		g.stats.Integrate(&g.nodes[pos].Stats)
	}
}

// Stats returns a copy of the network-wide diagnostics.
func (g *Grid) Stats() NetworkDiagnostics {
	return g.stats
}

// Cycles returns the number of completed cycles.
func (g *Grid) Cycles() int64 {
	return g.cycles
}
