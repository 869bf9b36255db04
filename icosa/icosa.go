// Package icosa seeds a cell.Store with the twelve vertices of a regular
// icosahedron, unit-normalised and wired with their pentagonal link tables
// (§4.3 of the mesh specification).
//
// Seed is the sole entry point. It mirrors the shape of
// lvlath/builder's PlatonicSolid constructor — fixed vertex count, a
// pre-sorted canonical adjacency table, deterministic emission order — but
// is not expressed as a builder.Constructor closure, since the icosahedron
// seed has no parameters (name, withCenter, ...) to close over: it is one
// exact geometry, always.
package icosa

import (
	"errors"
	"fmt"
	"math"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/vec"
)

// ErrAlreadySeeded indicates Seed was called on a store whose Extant() is
// already non-zero. Seeding is only valid as the first write to a fresh
// store (§4.3's precondition).
var ErrAlreadySeeded = errors.New("icosa: store already has live cells")

// ErrTooSmall indicates the store's capacity is smaller than the twelve
// seed cells Seed must write.
var ErrTooSmall = errors.New("icosa: store capacity below 12")

// VertexCount is the number of seed cells Seed writes (§4.3).
const VertexCount = 12

// adjacency is the fixed CCW neighbour table from §4.3, cell index -> its
// five real neighbours in link[0..4]; link[5] is always NoLink.
var adjacency = [VertexCount][5]int{
	0:  {1, 5, 2, 4, 3},
	1:  {0, 3, 6, 7, 5},
	2:  {0, 5, 9, 8, 4},
	3:  {0, 4, 10, 6, 1},
	4:  {0, 2, 8, 10, 3},
	5:  {0, 1, 7, 9, 2},
	6:  {11, 7, 1, 3, 10},
	7:  {11, 9, 5, 1, 6},
	8:  {11, 10, 4, 2, 9},
	9:  {11, 8, 2, 5, 7},
	10: {11, 6, 3, 4, 8},
	11: {6, 10, 8, 9, 7},
}

// positions returns the twelve seed positions of §4.3, unit-normalised.
// t is the golden ratio, d = sqrt(1+t^2), tau = t/d, eps = 1/d.
func positions() [VertexCount]vec.Vector3 {
	t := (1 + math.Sqrt(5)) / 2
	d := math.Sqrt(1 + t*t)
	tau := t / d
	eps := 1 / d

	raw := [VertexCount]vec.Vector3{
		0:  {X: eps, Y: 0, Z: tau},
		1:  {X: -eps, Y: 0, Z: tau},
		2:  {X: tau, Y: -eps, Z: 0},
		3:  {X: 0, Y: tau, Z: eps},
		4:  {X: tau, Y: eps, Z: 0},
		5:  {X: 0, Y: -tau, Z: eps},
		6:  {X: -tau, Y: eps, Z: 0},
		7:  {X: -tau, Y: -eps, Z: 0},
		8:  {X: eps, Y: 0, Z: -tau},
		9:  {X: 0, Y: -tau, Z: -eps},
		10: {X: 0, Y: tau, Z: -eps},
		11: {X: -eps, Y: 0, Z: -tau},
	}

	// Already unit length by construction (eps^2+tau^2 == 1), but normalise
	// explicitly so the store's invariant I3 does not depend on the reader
	// trusting the algebra.
	for i, p := range raw {
		raw[i] = p.Normalize()
	}
	return raw
}

// Seed writes the twelve seed cells into s, setting Extant to 12.
//
// Precondition: s.Extant() == 0. Each seed cell's region is initialised to
// its own index (identity labelling, §4.3); link[5] is NoLink on every
// seed, link[0..4] hold the five CCW neighbours from the canonical
// adjacency table above.
func Seed(s *cell.Store) error {
	if s.Extant() != 0 {
		return fmt.Errorf("icosa.Seed: %w", ErrAlreadySeeded)
	}
	if s.Capacity() < VertexCount {
		return fmt.Errorf("icosa.Seed: %w", ErrTooSmall)
	}

	pos := positions()
	for i := 0; i < VertexCount; i++ {
		c := cell.Cell{
			V:      [3]float64{pos[i].X, pos[i].Y, pos[i].Z},
			Region: cell.Region(i),
		}
		for spoke, neighbor := range adjacency[i] {
			c.Link[spoke] = cell.ID(neighbor)
		}
		c.Link[5] = cell.NoLink

		if err := s.Set(cell.ID(i), c); err != nil {
			return fmt.Errorf("icosa.Seed: writing cell %d: %w", i, err)
		}
	}

	if err := s.SetExtant(VertexCount); err != nil {
		return fmt.Errorf("icosa.Seed: %w", err)
	}
	return nil
}
