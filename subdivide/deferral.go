package subdivide

import "github.com/Nephatrine/geomesh/cell"

// deferral is a transient record accumulated during a pass for a link that
// cannot yet be resolved at midpoint-creation time (§3.4): the midpoint of
// edge (a,b) is not yet known, but once it exists it must be written into
// target.link[spoke].
type deferral struct {
	a, b   cell.ID
	spoke  int
	target cell.ID
}

// findMidpointBetween scans a's current link array for a cell m such that
// {m.link[0], m.link[3]} == {a, b} as an unordered pair — the midpoint of
// the edge a–b, if it has been created yet this pass. It is used both
// inline (§4.4 step 3) and in the final deferred-link sweep.
func findMidpointBetween(s *cell.Store, a, b cell.ID) (cell.ID, bool, error) {
	ac, err := s.Get(a)
	if err != nil {
		return 0, false, err
	}

	for _, m := range ac.Link {
		if m == cell.NoLink || cell.IsBuilding(m) {
			continue
		}
		mc, err := s.Get(m)
		if err != nil {
			return 0, false, err
		}
		if isPair(mc.Link[0], mc.Link[3], a, b) {
			return m, true, nil
		}
	}
	return 0, false, nil
}

// isPair reports whether {x, y} == {a, b} as unordered pairs.
func isPair(x, y, a, b cell.ID) bool {
	return (x == a && y == b) || (x == b && y == a)
}
