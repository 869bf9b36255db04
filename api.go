// SPDX-License-Identifier: MIT

package geomesh

import (
	"fmt"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/checkpoint"
	"github.com/Nephatrine/geomesh/icosa"
	"github.com/Nephatrine/geomesh/subdivide"
)

// AllocateFor returns a store sized for exactly CellsPerIteration(iterations)
// cells (§6.2's "allocate_for"). It is the API boundary that validates
// iterations against cell.MaxIterations, per §7's ErrInvalidIteration.
func AllocateFor(iterations int) (*cell.Store, error) {
	n, err := CellsPerIteration(iterations)
	if err != nil {
		return nil, fmt.Errorf("geomesh.AllocateFor: %w", err)
	}
	s, err := cell.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("geomesh.AllocateFor: %w", err)
	}
	return s, nil
}

// CellsPerIteration returns C(k), the closed-form live-cell count after k
// subdivision passes (§6.2). It rejects k outside [0, cell.MaxIterations]
// with ErrInvalidIteration rather than reaching cell.CellsPerIteration's
// panic.
func CellsPerIteration(k int) (cell.ID, error) {
	if k < 0 || k > cell.MaxIterations {
		return 0, fmt.Errorf("geomesh.CellsPerIteration: k=%d: %w", k, ErrInvalidIteration)
	}
	return cell.CellsPerIteration(k), nil
}

// SeedIcosahedron writes the twelve seed cells into s (§6.2's
// "seed_icosahedron"). Precondition: s.Extant() == 0.
func SeedIcosahedron(s *cell.Store) error {
	return icosa.Seed(s)
}

// Subdivide runs one subdivision pass over s using state (§6.2's
// "subdivide"). state must be reused across the successive passes of one
// engine invocation; see subdivide.NewRegionState.
func Subdivide(s *cell.Store, state *subdivide.RegionState) error {
	return subdivide.Pass(s, state)
}

// Load restores s from the checkpoint at path (§6.2's "load"). See
// checkpoint.Load for the absent/incompatible/ok tri-state contract.
func Load(s *cell.Store, path string, targetCount int) (checkpoint.Status, error) {
	return checkpoint.Load(s, path, targetCount)
}

// Save writes s's live prefix to path (§6.2's "save").
func Save(s *cell.Store, path string) error {
	return checkpoint.Save(s, path)
}
