package bellmanford

import (
	"github.com/latticelabs/cubesim/cube"
	"github.com/latticelabs/cubesim/routing"
)

// Robot runs the distance-vector protocol on a robot's cube: the robot is
// a full routing participant whose hook fires after the flush phase.
type Robot struct {
	algo *Algorithm
}

// NewRobot returns the robot counterpart of the algorithm.
func NewRobot(opts ...Option) *Robot {
	return &Robot{algo: New(opts...)}
}

// PowerOn initializes and announces the underlying cube.
func (r *Robot) PowerOn(rb *cube.Robot) {
	r.algo.PowerOn(rb.Cube())
}

// Step routes packets that arrived at the robot this cycle.
func (r *Robot) Step(rb *cube.Robot) {
	r.algo.Route(rb.Cube())
}

// SendPacket stages an addressed payload on the robot's cube.
func (r *Robot) SendPacket(rb *cube.Robot, dest cube.NodeID, data cube.Packet) error {
	return r.algo.SendPacket(rb.Cube(), dest, data)
}

var _ routing.RobotAlgorithm = (*Robot)(nil)
