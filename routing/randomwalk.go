package routing

import (
	"math/rand"

	"github.com/latticelabs/cubesim/cube"
)

// RandomWalkName is the registry name of the random-walk algorithm.
const RandomWalkName = "rw"

// DefaultWalkSeed seeds the walk RNG when no option overrides it. A fixed
// seed keeps scripted runs reproducible cycle for cycle.
const DefaultWalkSeed int64 = 1

// WalkPacket is the addressed payload carried by the random walk.
type WalkPacket struct {
	Dest    cube.NodeID
	Payload cube.Packet
}

// walkData is the per-node state of the random walk: packets originated at
// this cube, staged for transmission on its next Route.
type walkData struct {
	tx []WalkPacket
}

// RandomWalk forwards each packet out one uniformly chosen wired face until
// it happens upon its destination. It converges slowly and proves nothing
// about the lattice, which is exactly what makes it a useful baseline for
// comparing real protocols.
type RandomWalk struct {
	rng *rand.Rand
}

// WalkOption configures a RandomWalk.
type WalkOption func(w *RandomWalk)

// WithWalkSeed replaces the default RNG seed.
func WithWalkSeed(seed int64) WalkOption {
	return func(w *RandomWalk) { w.rng = rand.New(rand.NewSource(seed)) }
}

// NewRandomWalk returns a random-walk algorithm with a deterministic RNG.
func NewRandomWalk(opts ...WalkOption) *RandomWalk {
	w := &RandomWalk{rng: rand.New(rand.NewSource(DefaultWalkSeed))}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// PowerOn installs the staging buffer.
func (w *RandomWalk) PowerOn(c *cube.RoutingCube) {
	c.Data = &walkData{}
}

// Route emits any staged packets, then walks at most one received packet.
func (w *RandomWalk) Route(c *cube.RoutingCube) {
	if data, ok := c.Data.(*walkData); ok && len(data.tx) > 0 {
		staged := data.tx
		data.tx = nil
		for _, pkt := range staged {
			w.forward(c, pkt)
		}
	}

	pkt, _, ok := c.GetPacket()
	if !ok {
		return
	}
	wp, ok := pkt.(WalkPacket)
	if !ok {
		// Protocol error: some other algorithm's packets are on this grid.
		panic("routing: random walk received a foreign packet type")
	}
	w.forward(c, wp)
}

// forward delivers wp locally or sends it out one random wired face.
func (w *RandomWalk) forward(c *cube.RoutingCube, wp WalkPacket) {
	if wp.Dest == c.ID() {
		c.Stats.CorrectlyRoutedPktsThisCycle++

		return
	}
	dirs := ConnectedDirections(c)
	if len(dirs) == 0 {
		c.DropPacket()

		return
	}
	c.SendPacket(dirs[w.rng.Intn(len(dirs))], wp)
}

// SendPacket stages an addressed packet for the cube's next Route.
func (w *RandomWalk) SendPacket(c *cube.RoutingCube, dest cube.NodeID, data cube.Packet) error {
	wd, ok := c.Data.(*walkData)
	if !ok {
		return ErrNotPowered
	}
	wd.tx = append(wd.tx, WalkPacket{Dest: dest, Payload: data})

	return nil
}

// RandomWalkRobot runs the walk on a robot's cube: the robot participates
// in forwarding exactly like a fixed node, it just gets its hook after the
// flush phase.
type RandomWalkRobot struct {
	algo *RandomWalk
}

// NewRandomWalkRobot returns the robot counterpart of the random walk.
func NewRandomWalkRobot(opts ...WalkOption) *RandomWalkRobot {
	return &RandomWalkRobot{algo: NewRandomWalk(opts...)}
}

// PowerOn initializes the underlying cube.
func (r *RandomWalkRobot) PowerOn(rb *cube.Robot) {
	r.algo.PowerOn(rb.Cube())
}

// Step walks packets sitting in the robot's queue.
func (r *RandomWalkRobot) Step(rb *cube.Robot) {
	r.algo.Route(rb.Cube())
}

// SendPacket stages an addressed packet on the robot's cube.
func (r *RandomWalkRobot) SendPacket(rb *cube.Robot, dest cube.NodeID, data cube.Packet) error {
	return r.algo.SendPacket(rb.Cube(), dest, data)
}
