// Package grid types, sentinel errors, and functional options.
package grid

import (
	"errors"

	"github.com/latticelabs/cubesim/cube"
)

// Sentinel errors for grid operations.
var (
	// ErrPositionOccupied indicates an insertion at a position that already
	// holds a cube.
	ErrPositionOccupied = errors.New("grid: position already occupied")

	// ErrDuplicateID indicates an insertion with an id already present in
	// the grid.
	ErrDuplicateID = errors.New("grid: node id already in use")

	// ErrNodeNotFound indicates an operation on a position or id with no cube.
	ErrNodeNotFound = errors.New("grid: node not found")

	// ErrPositionMismatch indicates an adopted cube whose position differs
	// from the insertion coordinates.
	ErrPositionMismatch = errors.New("grid: adopted cube position mismatch")
)

// Bounds is the bounding rectangle of a z-plane's occupied cells. Bounds
// only expand; removals may leave them conservative, which is harmless for
// layer projection.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Width returns the number of columns spanned by the bounds.
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows spanned by the bounds.
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Option configures a Grid before use.
type Option func(g *Grid)

// WithQueueCapacity sets the bounded queue capacity of every cube the grid
// creates. Adopted cubes keep their own capacity.
func WithQueueCapacity(n int) Option {
	return func(g *Grid) { g.queueCap = n }
}

// NodeOption configures a single AddNode or AddRobot call.
type NodeOption func(cfg *nodeConfig)

type nodeConfig struct {
	id    cube.NodeID
	hasID bool
	cube  *cube.RoutingCube
}

// WithID assigns an author-chosen id instead of the next free integer.
func WithID(id cube.NodeID) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.id = id
		cfg.hasID = true
	}
}

// WithCube adopts an existing cube (e.g. one built by the topology loader)
// instead of creating a fresh one. The cube's position must match the
// insertion coordinates.
func WithCube(c *cube.RoutingCube) NodeOption {
	return func(cfg *nodeConfig) { cfg.cube = c }
}
