// Package bellmanford implements distance-vector routing over the
// six-wired neighbor set of each cube, the reference protocol of the
// simulator.
//
// Three packet kinds flow between neighbors:
//
//   - NewNeighbor announces a cube's existence when it powers on. The
//     recipient records the link and, unless the packet is already an ack,
//     replies with the same announcement acked, so both ends of a freshly
//     wired link converge on each other.
//   - DistanceVector advertises a cube's current best costs. A cube
//     rebroadcasts only when its own vector changes, which is what makes
//     convergence terminate.
//   - Data carries an application payload toward a destination id, one
//     next-hop per cycle.
//
// The distance table keeps, per destination, the cost through every known
// neighbor; the advertised vector is the per-destination minimum. Link
// cost defaults to 1 per hop (WithLinkCost overrides).
//
// Complexity per Route call: O(1) packets consumed; a table update touches
// O(|vector|) entries; an advertisement costs O(destinations) to project
// and compare.
package bellmanford
