// Package routing defines the contracts between the grid and the
// protocols running on it: Algorithm for routing cubes, RobotAlgorithm
// for robots, a registry pairing the two under protocol names, and the
// reference Template and RandomWalk implementations.
//
// The grid invokes exactly three hooks on an Algorithm:
//
//	PowerOn(cube)            once, when the cube joins the grid
//	Route(cube)              once per cube per cycle, during the route phase
//	SendPacket(cube, id, d)  when a driver originates a packet at the cube
//
// During Route an algorithm may read its own queue through GetPacket and
// write to neighbors through SendPacket. Cross-cube reads of mutable state
// break the simulator's ordering guarantees and are forbidden.
package routing
