// Package presenter is the read-only projection and mutation surface the
// simulator core exposes to user interfaces. A viewer sees universe
// dimensions and per-node diagnostic snapshots; it drives the simulation
// through Step and Run and edits the lattice through AddNode/RemoveNode.
// How diagnostics become colors is the viewer's business, not ours.
package presenter

import (
	"fmt"
	"io"

	"github.com/latticelabs/cubesim/cube"
	"github.com/latticelabs/cubesim/grid"
	"github.com/latticelabs/cubesim/netfile"
	"github.com/latticelabs/cubesim/recipe"
)

// Observer is notified after the model changes. Updates arrive only
// between cycles, never mid-step.
type Observer interface {
	Update()
}

// VoxelData is one node's snapshot: where it is and what its counters say.
type VoxelData struct {
	Position    cube.Position
	Diagnostics cube.NodeDiagnostics
}

// Presenter couples a grid with an optional recipe and an observer list.
type Presenter struct {
	grid      *grid.Grid
	dims      [3]int
	rcp       *recipe.Recipe
	observers []Observer
}

// New builds a presenter over the given grid. dims are the (x,y,z)
// universe dimensions a viewer should draw; rcp may be nil for
// interactive-only runs.
func New(g *grid.Grid, dims [3]int, rcp *recipe.Recipe) *Presenter {
	return &Presenter{grid: g, dims: dims, rcp: rcp}
}

// Dimensions returns the universe extents for display.
func (p *Presenter) Dimensions() (x, y, z int) {
	return p.dims[0], p.dims[1], p.dims[2]
}

// Grid exposes the underlying lattice.
func (p *Presenter) Grid() *grid.Grid {
	return p.grid
}

// Recipe exposes the driving recipe, nil if the run is interactive.
func (p *Presenter) Recipe() *recipe.Recipe {
	return p.rcp
}

// Stats returns the current network-wide diagnostics.
func (p *Presenter) Stats() grid.NetworkDiagnostics {
	return p.grid.Stats()
}

// VoxelSnapshot returns one VoxelData per cube, in insertion order.
func (p *Presenter) VoxelSnapshot() []VoxelData {
	nodes := p.grid.Nodes()
	out := make([]VoxelData, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, VoxelData{Position: c.Position(), Diagnostics: c.Stats})
	}

	return out
}

// AddObserver registers o and immediately brings it up to date.
func (p *Presenter) AddObserver(o Observer) {
	p.observers = append(p.observers, o)
	o.Update()
}

func (p *Presenter) notify() {
	for _, o := range p.observers {
		o.Update()
	}
}

// Step advances one cycle: a paused recipe is resumed first, its next
// instruction runs, the grid steps, and observers are notified.
func (p *Presenter) Step() error {
	if p.rcp != nil {
		p.rcp.Resume()
		if err := p.rcp.ExecuteNext(p.grid); err != nil {
			return err
		}
	}
	p.grid.Step()
	p.notify()

	return nil
}

// Run executes recipe cycles until the recipe finishes, pauses, or
// numCycles run out; negative numCycles means unbounded, with pause as
// the exit condition. When ignorePauses is set each cycle clears a pause
// after stepping. Observers are notified exactly once, at the end.
//
// Without a recipe, Run steps the grid numCycles times (none when
// negative).
func (p *Presenter) Run(numCycles int, ignorePauses bool) error {
	if p.rcp == nil {
		for i := 0; i < numCycles; i++ {
			p.grid.Step()
		}
		p.notify()

		return nil
	}

	for p.rcp.IsRunning() && numCycles != 0 {
		if err := p.rcp.ExecuteNext(p.grid); err != nil {
			p.notify()

			return err
		}
		p.grid.Step()
		if ignorePauses {
			p.rcp.Resume()
		}
		numCycles--
	}
	p.notify()

	return nil
}

// AddNode inserts a node or robot at (x,y,z) and notifies observers.
func (p *Presenter) AddNode(x, y, z int, isRobot bool) error {
	var err error
	if isRobot {
		_, err = p.grid.AddRobot(x, y, z)
	} else {
		_, err = p.grid.AddNode(x, y, z)
	}
	if err != nil {
		return fmt.Errorf("presenter: %w", err)
	}
	p.notify()

	return nil
}

// RemoveNode deletes the node at (x,y,z) and notifies observers.
func (p *Presenter) RemoveNode(x, y, z int) error {
	if err := p.grid.RemoveNode(x, y, z); err != nil {
		return fmt.Errorf("presenter: %w", err)
	}
	p.notify()

	return nil
}

// SaveNetwork writes the current topology in network-file format, ready
// to feed back through the loader.
func (p *Presenter) SaveNetwork(w io.Writer) error {
	return netfile.Save(w, p.grid.Nodes())
}

// SaveNetworkFile writes the current topology to a file.
func (p *Presenter) SaveNetworkFile(path string) error {
	return netfile.SaveFile(path, p.grid.Nodes())
}
