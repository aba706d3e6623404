// Package cube defines the building blocks of the routing-cube lattice:
// the six-valued Direction set, per-direction Face buffers, the RoutingCube
// node itself, the Robot decorator, and per-node diagnostics.
//
// A RoutingCube owns six inbound Faces (one per Direction) and holds six
// non-owning references to the inbound Faces of its axis-aligned neighbors.
// Packets sent through SendPacket land in a neighbor's inbound Face and
// become visible to the neighbor's queue only after its next Flush — this
// is the substrate of the simulator's one-cycle delivery delay.
//
// Cubes never wire themselves: neighbor references are installed and torn
// down exclusively by the owning grid (see package grid), which keeps the
// reference graph symmetric at all times.
package cube
