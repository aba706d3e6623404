package routing

import "github.com/latticelabs/cubesim/cube"

// TemplateName is the registry name of the pass-through reference algorithm.
const TemplateName = "template"

// Template is the minimal reference algorithm: each cycle it takes one
// queued packet and pushes it out the face opposite its arrival face. At a
// lattice boundary, where the opposite side is unwired, the packet is
// reflected back along the face it came from, so packets echo between the
// ends of a line of cubes.
//
// Template keeps no per-node state and has no notion of destinations.
type Template struct{}

// NewTemplate returns the pass-through algorithm.
func NewTemplate() *Template {
	return &Template{}
}

// PowerOn is a no-op: Template needs no per-node state.
func (t *Template) PowerOn(_ *cube.RoutingCube) {}

// Route forwards at most one packet per cycle to the opposite face,
// reflecting at unwired boundaries.
func (t *Template) Route(c *cube.RoutingCube) {
	pkt, from, ok := c.GetPacket()
	if !ok {
		return
	}
	out := from.Opposite()
	if !c.ConnectedInDirection(out) {
		out = from
	}
	c.SendPacket(out, pkt)
}

// SendPacket fails: Template packets carry no destination.
func (t *Template) SendPacket(_ *cube.RoutingCube, _ cube.NodeID, _ cube.Packet) error {
	return ErrNoAddressing
}
