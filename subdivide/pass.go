package subdivide

import (
	"fmt"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/vec"
)

// side names the two symmetric halves of the link table a new midpoint
// populates relative to the spoke being split: CCW fills positions 1 and
// 2, CW fills positions 4 and 5 (§4.4's "CW is the mirror ... spokes 4/5
// instead of 2/1").
type side struct {
	neighbor             func(cell.Cell, int) cell.ID
	posSibling, posCross int
}

var (
	ccwSide = side{neighbor: prevNeighbor, posSibling: 1, posCross: 2}
	cwSide  = side{neighbor: nextNeighbor, posSibling: 5, posCross: 4}
)

// Pass runs one subdivision pass over s, splitting every edge live at the
// start of the pass at its midpoint and re-linking all affected cells
// (§4.4). state carries the region-assignment rule's mutable counters and
// must be reused across the successive passes of one engine invocation
// (construct a fresh RegionState only when starting a new invocation).
//
// Traversal is strictly ascending cell_id, and within each cell, spokes
// 0..6 ascending — this order is load-bearing (§5) and determines which
// side lookups hit already-created midpoints versus enqueue deferrals.
func Pass(s *cell.Store, state *RegionState) error {
	snapshot := s.Extant()
	if snapshot == 0 {
		return fmt.Errorf("subdivide.Pass: %w", ErrNotSeeded)
	}

	created := cell.ID(snapshot)
	var deferred []deferral

	for p := 0; p < snapshot; p++ {
		parent := cell.ID(p)

		for spoke := 0; spoke < cell.Spokes; spoke++ {
			parentCell, err := s.Get(parent)
			if err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}

			child := parentCell.Link[spoke]
			if child == cell.NoLink || int(child) >= snapshot {
				continue // absent spoke, or this edge was already split
			}

			childCell, err := s.Get(child)
			if err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}

			newCell := cell.NewBuildingCell()
			midV := vec.Midpoint(
				vec.Vector3{X: parentCell.V[0], Y: parentCell.V[1], Z: parentCell.V[2]},
				vec.Vector3{X: childCell.V[0], Y: childCell.V[1], Z: childCell.V[2]},
			).Normalize()
			newCell.V = [3]float64{midV.X, midV.Y, midV.Z}
			newCell.Region = state.assign(created, parentCell.Region, childCell.Region)

			newCell.Link[0] = parent
			parentCell.Link[spoke] = created
			newCell.Link[3] = child

			replaceFirst(&childCell.Link, parent, created)

			if err := s.Set(child, childCell); err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}

			if err := resolveSide(s, ccwSide, parentCell, parent, child, created, spoke, snapshot, &newCell, &deferred); err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}
			if err := resolveSide(s, cwSide, parentCell, parent, child, created, spoke, snapshot, &newCell, &deferred); err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}

			if err := s.Set(created, newCell); err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}
			if err := s.Set(parent, parentCell); err != nil {
				return fmt.Errorf("subdivide.Pass: %w", err)
			}

			created++
		}
	}

	for _, d := range deferred {
		m, found, err := findMidpointBetween(s, d.a, d.b)
		if err != nil {
			return fmt.Errorf("subdivide.Pass: resolving deferral: %w", err)
		}
		if !found {
			return fmt.Errorf("subdivide.Pass: deferral (%d,%d) unresolved: %w", d.a, d.b, ErrMeshInvariant)
		}

		target, err := s.Get(d.target)
		if err != nil {
			return fmt.Errorf("subdivide.Pass: %w", err)
		}
		target.Link[d.spoke] = m
		if err := s.Set(d.target, target); err != nil {
			return fmt.Errorf("subdivide.Pass: %w", err)
		}
	}

	// Exactly the twelve seed cells carry a NoLink spoke (invariant I2).
	pentagons := 0
	for i := cell.ID(0); i < created; i++ {
		c, err := s.Get(i)
		if err != nil {
			return fmt.Errorf("subdivide.Pass: %w", err)
		}
		if c.HasNoLink() {
			pentagons++
		}
	}
	if pentagons != 12 {
		return fmt.Errorf("subdivide.Pass: %d pentagons after pass: %w", pentagons, ErrMeshInvariant)
	}

	if err := s.SetExtant(int(created)); err != nil {
		return fmt.Errorf("subdivide.Pass: %w", err)
	}
	return nil
}

// replaceFirst overwrites the first occurrence of old in link with repl.
func replaceFirst(link *[cell.Spokes]cell.ID, old, repl cell.ID) {
	for i, v := range link {
		if v == old {
			link[i] = repl
			return
		}
	}
}

// resolveSide implements one half (CCW or CW) of §4.4's side resolution.
func resolveSide(
	s *cell.Store,
	sd side,
	parentCell cell.Cell,
	parent, child, created cell.ID,
	spoke, snapshot int,
	newCell *cell.Cell,
	deferred *[]deferral,
) error {
	n := sd.neighbor(parentCell, spoke)
	if n == cell.NoLink {
		return fmt.Errorf("%w: no side neighbor at spoke %d", ErrMeshInvariant, spoke)
	}

	if int(n) >= snapshot {
		// n is itself a midpoint created earlier this pass: the
		// parent<->sibling midpoint. Link it directly, then advance n
		// across it to reach the original sibling.
		newCell.Link[sd.posSibling] = n

		nCell, err := s.Get(n)
		if err != nil {
			return err
		}
		if nCell.Link[0] == parent {
			n = nCell.Link[3]
		} else {
			n = nCell.Link[0]
		}
	} else {
		*deferred = append(*deferred, deferral{a: parent, b: n, spoke: sd.posSibling, target: created})
	}

	if m, found, err := findMidpointBetween(s, n, child); err != nil {
		return err
	} else if found {
		newCell.Link[sd.posCross] = m
	} else {
		*deferred = append(*deferred, deferral{a: child, b: n, spoke: sd.posCross, target: created})
	}

	return nil
}
