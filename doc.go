// Package cubesim is a discrete-event simulator for a 3-D lattice of
// routing cubes: small modular nodes, each wired to up to six axis-aligned
// neighbors, cooperating to deliver application packets.
//
// 🚀 What is cubesim?
//
//	A deterministic, cycle-driven substrate for developing and comparing
//	distributed routing protocols:
//
//	  • Lattice core: cubes, faces, symmetric neighbor wiring, bounded queues
//	  • Cycle engine: route, flush, robot step, diagnostics rollup
//	  • Pluggable protocols: template, random walk, Bellman-Ford
//	  • Recipes: scripted drivers (add/remove/send/wait/loop/pause)
//
// Everything is organized under small, focused packages:
//
//	cube/        — directions, faces, the routing cube, robots, diagnostics
//	grid/        — the lattice, wiring, layers, and the cycle engine
//	routing/     — algorithm contracts, registry, reference algorithms
//	bellmanford/ — the distance-vector reference protocol
//	recipe/      — the scripted driver language and interpreter
//	netfile/     — topology file load/save
//	simconfig/   — YAML run configuration
//	presenter/   — the observable facade user interfaces attach to
//	metrics/     — Prometheus projection of network diagnostics
//	cmd/cubesim  — the headless driver binary
//
// Quick ASCII example, three cubes and a packet echoing west:
//
//	(0,0,0)───(1,0,0)───(2,0,0)
//	                       ◄── "Hello"
//
// Time advances in whole cycles; a packet sent this cycle is readable by
// the neighbor next cycle, every run is reproducible, and every counter
// you can see in the viewer comes from the per-node diagnostics the grid
// aggregates after each step.
package cubesim
