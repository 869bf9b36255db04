// Package subdivide implements one refinement pass of the geodesic mesh:
// for every existing edge it inserts a midpoint vertex, re-links all
// affected cells, and resolves cross-pass references via a deferred-link
// queue (§4.4 of the mesh specification).
//
// Error policy follows lvlath/builder's: only sentinel errors are exposed,
// wrapped with %w and call-site context; branch on them with errors.Is.
package subdivide

import "errors"

// ErrMeshInvariant indicates a deferral failed to resolve, a side neighbour
// was missing, or the pentagon count drifted — all are a bug in the caller's traversal order or a
// corrupted store, never an expected runtime condition (§7).
var ErrMeshInvariant = errors.New("subdivide: mesh invariant violated")

// ErrNotSeeded indicates Pass was asked to subdivide an empty store; a
// store must be seeded (or loaded from a checkpoint) before its first
// Pass.
var ErrNotSeeded = errors.New("subdivide: store has no live cells")
