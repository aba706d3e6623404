package cube

// Robot decorates a RoutingCube with a second, independent per-cycle
// algorithm hook. The underlying cube sits in the grid's node index like
// any other node; the Robot itself is only a tracked reference whose
// lifetime equals the cube's.
type Robot struct {
	cube *RoutingCube
}

// NewRobot wraps an existing cube and marks the cube's diagnostics as
// robot-owned.
func NewRobot(c *RoutingCube) *Robot {
	c.Stats.IsRobot = true

	return &Robot{cube: c}
}

// Cube returns the underlying routing cube.
func (r *Robot) Cube() *RoutingCube {
	return r.cube
}

// Position returns the underlying cube's lattice coordinate.
func (r *Robot) Position() Position {
	return r.cube.Position()
}

// ID returns the underlying cube's identifier.
func (r *Robot) ID() NodeID {
	return r.cube.ID()
}

// SendPacket transmits through the underlying cube.
func (r *Robot) SendPacket(d Direction, pkt Packet) bool {
	return r.cube.SendPacket(d, pkt)
}

// GetPacket dequeues from the underlying cube.
func (r *Robot) GetPacket() (pkt Packet, from Direction, ok bool) {
	return r.cube.GetPacket()
}
