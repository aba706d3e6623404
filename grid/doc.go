// Package grid owns the routing-cube lattice: the position-keyed node map,
// the id index, robot tracking, symmetric neighbor wiring, per-z-plane
// bookkeeping, and the cycle engine.
//
// A cycle is one call to Step and runs four strictly ordered phases:
//
//  1. Route: every cube's per-cycle counters are zeroed and the routing
//     algorithm's Route hook runs. Outbound packets land in neighbors'
//     inbound faces.
//  2. Flush: every cube drains its inbound faces into its bounded queue.
//     Packets sent during this cycle's route phase therefore become
//     readable no earlier than the next cycle.
//  3. Robot step: every robot's algorithm hook runs, seeing what arrived
//     this cycle.
//  4. Rollup: per-node diagnostics fold into the network aggregate.
//
// Because route never reads another cube's queue and flush only moves a
// cube's own buffers, the post-cycle state is independent of iteration
// order. The grid still visits cubes in insertion order so that protocols
// sharing an RNG stream stay reproducible run over run.
//
// Everything is single-threaded: one cycle completes before the next
// begins, and no observer sees a half-stepped grid.
package grid
