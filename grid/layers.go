package grid

import "github.com/latticelabs/cubesim/cube"

// trackLayer folds a newly inserted position into its z-plane's entry
// point and bounds. The entry point is the most northwest cube of the
// plane: lower x wins, ties broken by higher y.
func (g *Grid) trackLayer(pos cube.Position) {
	entry, ok := g.layerEntry[pos.Z]
	if !ok || pos.X < entry.X || (pos.X == entry.X && pos.Y > entry.Y) {
		g.layerEntry[pos.Z] = pos
	}

	b, ok := g.layerBounds[pos.Z]
	if !ok {
		g.layerBounds[pos.Z] = Bounds{MinX: pos.X, MaxX: pos.X, MinY: pos.Y, MaxY: pos.Y}

		return
	}
	if pos.X < b.MinX {
		b.MinX = pos.X
	}
	if pos.X > b.MaxX {
		b.MaxX = pos.X
	}
	if pos.Y < b.MinY {
		b.MinY = pos.Y
	}
	if pos.Y > b.MaxY {
		b.MaxY = pos.Y
	}
	g.layerBounds[pos.Z] = b
}

// dropFromLayer repairs the entry point after a removal. Bounds are left
// as-is: they may become conservative, never wrong.
func (g *Grid) dropFromLayer(pos cube.Position) {
	if g.layerEntry[pos.Z] != pos {
		return
	}

	var best cube.Position
	found := false
	for p := range g.nodes {
		if p.Z != pos.Z {
			continue
		}
		if !found || p.X < best.X || (p.X == best.X && p.Y > best.Y) {
			best = p
			found = true
		}
	}
	if found {
		g.layerEntry[pos.Z] = best

		return
	}
	delete(g.layerEntry, pos.Z)
	delete(g.layerBounds, pos.Z)
}

// LayerBounds returns the bounding rectangle of the z-plane, if any cube
// has ever occupied it since the plane last emptied.
func (g *Grid) LayerBounds(z int) (Bounds, bool) {
	b, ok := g.layerBounds[z]

	return b, ok
}

// Layer projects the z-plane onto a Height x Width grid of cube pointers.
// Row r, column c holds the cube at (MinX+c, MinY+r, z) or nil. Cells are
// discovered by breadth-first walk from the plane's entry point through
// wired in-plane neighbors, so cubes disconnected from the entry's
// component do not appear. ok is false when the plane is empty.
func (g *Grid) Layer(z int) (cells [][]*cube.RoutingCube, ok bool) {
	entry, ok := g.layerEntry[z]
	if !ok {
		return nil, false
	}
	b := g.layerBounds[z]

	cells = make([][]*cube.RoutingCube, b.Height())
	for i := range cells {
		cells[i] = make([]*cube.RoutingCube, b.Width())
	}

	inPlane := [4]cube.Direction{cube.North, cube.South, cube.East, cube.West}
	visited := map[cube.Position]bool{entry: true}
	queue := []cube.Position{entry}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		cells[pos.Y-b.MinY][pos.X-b.MinX] = g.nodes[pos]

		for _, d := range inPlane {
			next := pos.Neighbor(d)
			if visited[next] {
				continue
			}
			if _, present := g.nodes[next]; !present {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return cells, true
}
