package routing

import "github.com/latticelabs/cubesim/cube"

// NeighborAddr returns the position of the node that sent a packet which
// arrived from direction rx: the packet was drained from the rx face, so
// its sender sits one step along rx.
func NeighborAddr(p cube.Position, rx cube.Direction) cube.Position {
	return p.Neighbor(rx)
}

// TxDir resolves the face a node at from must transmit on to reach the
// adjacent node at to. ok is false when to is not axis-adjacent to from.
func TxDir(from, to cube.Position) (dir cube.Direction, ok bool) {
	return cube.DirectionBetween(from, to)
}

// ConnectedDirections lists the faces of c that have a wired neighbor, in
// the fixed direction order. Algorithms use this for broadcasts so that
// announcements never count as drops against unwired sides.
func ConnectedDirections(c *cube.RoutingCube) []cube.Direction {
	dirs := make([]cube.Direction, 0, cube.NumDirections)
	for _, d := range cube.AllDirections {
		if c.ConnectedInDirection(d) {
			dirs = append(dirs, d)
		}
	}

	return dirs
}
