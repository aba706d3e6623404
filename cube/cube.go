package cube

// ReceivedPacket pairs a queued packet with the direction it arrived from.
// The arrival direction is recorded at flush time, when the packet moves
// from an inbound Face into the queue.
type ReceivedPacket struct {
	Packet Packet
	From   Direction
}

// RoutingCube is one lattice node. It owns six inbound Faces, a bounded
// FIFO queue of received packets, and the opaque algorithm state in Data.
// Neighbor references are installed by the owning grid; a cube created
// outside a grid has no neighbors and every send drops.
type RoutingCube struct {
	position Position
	id       NodeID

	// inbound holds the cube's own receive buffers, one per direction.
	inbound *Faces
	// neighbors holds references to adjacent cubes' inbound Faces.
	// A nil slot means no cube is present on that side.
	neighbors *Faces

	queue       []ReceivedPacket
	maxQueueLen int

	// Data is opaque per-node state owned by the routing algorithm.
	Data any

	// Stats is the cube's diagnostic counter block.
	Stats NodeDiagnostics
}

// NewRoutingCube creates an unwired cube at pos with an empty queue of
// DefaultMaxQueueLen capacity unless overridden by options.
func NewRoutingCube(pos Position, opts ...CubeOption) *RoutingCube {
	c := &RoutingCube{
		position:    pos,
		inbound:     NewFaces(),
		neighbors:   NewFaceRefs(),
		maxQueueLen: DefaultMaxQueueLen,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxQueueLen <= 0 {
		c.maxQueueLen = DefaultMaxQueueLen
	}

	return c
}

// Position returns the cube's immutable lattice coordinate.
func (c *RoutingCube) Position() Position {
	return c.position
}

// ID returns the cube's grid-unique identifier.
func (c *RoutingCube) ID() NodeID {
	return c.id
}

// SetID assigns the cube's identifier. Called by the grid on insertion;
// ids never change while a cube is part of a grid.
func (c *RoutingCube) SetID(id NodeID) {
	c.id = id
}

// MaxQueueLen returns the bounded capacity of the packet queue.
func (c *RoutingCube) MaxQueueLen() int {
	return c.maxQueueLen
}

// InboundFace exposes the cube's own receive buffer for direction d.
// The grid hands this Face to the adjacent cube when wiring neighbors.
func (c *RoutingCube) InboundFace(d Direction) *Face {
	return c.inbound.Face(d)
}

// ConnectFace installs a reference to a neighbor's inbound Face on side d.
func (c *RoutingCube) ConnectFace(d Direction, f *Face) {
	c.neighbors.SetFace(d, f)
}

// DisconnectFace clears the neighbor reference on side d.
func (c *RoutingCube) DisconnectFace(d Direction) {
	c.neighbors.SetFace(d, nil)
}

// ConnectedInDirection reports whether a neighbor is wired on side d.
func (c *RoutingCube) ConnectedInDirection(d Direction) bool {
	return c.neighbors.Face(d) != nil
}

// SendPacket enqueues pkt into the neighbor's inbound Face in direction d
// and counts the transmission. When no neighbor is wired on that side the
// packet is counted as dropped and SendPacket returns false.
func (c *RoutingCube) SendPacket(d Direction, pkt Packet) bool {
	if !c.neighbors.AddPacket(d, pkt) {
		c.DropPacket()

		return false
	}
	c.Stats.NumPktsSent++
	c.Stats.NumPktsSentThisCycle++

	return true
}

// GetPacket removes and returns the packet at the head of the queue along
// with its arrival direction. ok is false when the queue is empty.
// Exactly one packet is dequeued per call.
func (c *RoutingCube) GetPacket() (pkt Packet, from Direction, ok bool) {
	if len(c.queue) == 0 {
		return nil, 0, false
	}
	head := c.queue[0]
	c.queue = c.queue[1:]
	c.Stats.CurrentQLen = int64(len(c.queue))
	c.Stats.HasPacket = len(c.queue) > 0

	return head.Packet, head.From, true
}

// HasPacket reports whether the queue holds at least one packet.
func (c *RoutingCube) HasPacket() bool {
	return len(c.queue) > 0
}

// QueueLen returns the live queue length.
func (c *RoutingCube) QueueLen() int {
	return len(c.queue)
}

// DropPacket accounts one dropped packet. Routing algorithms call this when
// they discard a packet themselves, e.g. on an unknown destination.
func (c *RoutingCube) DropPacket() {
	c.Stats.NumPktsDropped++
	c.Stats.NumPktsDroppedThisCycle++
}

// ResetCycleStats zeroes the per-cycle diagnostic counters. Invoked by the
// grid before the cube's route phase.
func (c *RoutingCube) ResetCycleStats() {
	c.Stats.ResetCycle()
}

// Flush drains every inbound Face into the queue, preserving per-face FIFO
// order. Each drained packet counts as received; packets that arrive while
// the queue is full are dropped. Flush tags packets with their arrival
// direction for later GetPacket calls.
func (c *RoutingCube) Flush() {
	for _, d := range AllDirections {
		for _, pkt := range c.inbound.Face(d).Drain() {
			c.Stats.NumPktsReceived++
			c.Stats.NumPktsReceivedThisCycle++
			if len(c.queue) >= c.maxQueueLen {
				c.DropPacket()

				continue
			}
			c.queue = append(c.queue, ReceivedPacket{Packet: pkt, From: d})
		}
	}
	c.Stats.CurrentQLen = int64(len(c.queue))
	if c.Stats.CurrentQLen > c.Stats.HighestQLen {
		c.Stats.HighestQLen = c.Stats.CurrentQLen
	}
	c.Stats.HasPacket = len(c.queue) > 0
}
