package subdivide

import "github.com/Nephatrine/geomesh/cell"

// prevNeighbor returns c.link[s-1], wrapping around the pentagon/hexagon
// boundary at s == 0 per §4.4: link[5] if it is a real neighbour, otherwise
// link[4] (the seed case, where link[5] is NoLink).
func prevNeighbor(c cell.Cell, s int) cell.ID {
	if s == 0 {
		if c.Link[5] != cell.NoLink {
			return c.Link[5]
		}
		return c.Link[4]
	}
	return c.Link[s-1]
}

// nextNeighbor returns c.link[s+1], wrapping at s == 5 (or whenever
// link[s+1] is NoLink) back to link[0] — the mirror of prevNeighbor.
func nextNeighbor(c cell.Cell, s int) cell.ID {
	if s == 5 {
		return c.Link[0]
	}
	if c.Link[s+1] == cell.NoLink {
		return c.Link[0]
	}
	return c.Link[s+1]
}
