// This file declares the Algorithm and RobotAlgorithm contracts and the
// sentinel errors shared by the reference implementations.
package routing

import (
	"errors"

	"github.com/latticelabs/cubesim/cube"
)

// Sentinel errors for routing operations.
var (
	// ErrNoAddressing indicates the algorithm has no notion of destinations
	// and cannot originate addressed packets.
	ErrNoAddressing = errors.New("routing: algorithm does not support addressed packets")

	// ErrNotPowered indicates a cube whose Data was never initialized by
	// this algorithm's PowerOn.
	ErrNotPowered = errors.New("routing: cube not powered on by this algorithm")

	// ErrUnknownAlgorithm indicates a registry lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm name")
)

// Algorithm is the single variation point of the simulator: the protocol
// the grid runs on every cube.
type Algorithm interface {
	// PowerOn is called once when the cube is inserted into the grid, after
	// neighbor wiring. It may install cube.Data and send announcements.
	PowerOn(c *cube.RoutingCube)

	// Route is called once per cycle per cube during the route phase. It may
	// dequeue from the cube's own queue and transmit to neighbors.
	Route(c *cube.RoutingCube)

	// SendPacket originates a packet at c toward the cube identified by dest.
	// Implementations typically stage the packet in c.Data for transmission
	// on the next Route.
	SendPacket(c *cube.RoutingCube, dest cube.NodeID, data cube.Packet) error
}

// RobotAlgorithm mirrors Algorithm for robots. Step runs after the flush
// phase, so a robot reacts to packets that arrived in the current cycle.
type RobotAlgorithm interface {
	PowerOn(r *cube.Robot)
	Step(r *cube.Robot)
	SendPacket(r *cube.Robot, dest cube.NodeID, data cube.Packet) error
}
