package cell

// MaxIterations bounds the subdivision depth this build supports. It fixes
// the width chosen for ID (uint32): CellsPerIteration(MaxIterations) must
// fit comfortably below NoLink. Raising MaxIterations is a compile-time
// decision (§9, "compile-time size selection") because it changes the
// checkpoint record's implicit contract together with ID's width.
const MaxIterations = 10

// cellCounts and faceCounts hold C(k) and F(k) for k in [0, MaxIterations],
// precomputed from the §3.3 recurrence:
//
//	F(0) = 20, C(0) = 12
//	F(k+1) = 4*F(k)
//	C(k+1) = C(k) + 3*F(k)/2
//
// Folding the recurrence once here — rather than recomputing it on every
// Allocate call — is the "compile-time (or equivalent pre-runtime folding)"
// evaluation §3.3 asks for: the values are fixed by the recurrence alone,
// so there is nothing to gain from recomputing them at each call site.
var cellCounts, faceCounts = buildSizeTables()

func buildSizeTables() (counts [MaxIterations + 1]ID, faces [MaxIterations + 1]uint64) {
	counts[0] = 12
	faces[0] = 20
	for k := 0; k < MaxIterations; k++ {
		faces[k+1] = 4 * faces[k]
		counts[k+1] = counts[k] + ID(3*faces[k]/2)
	}
	return counts, faces
}

// CellsPerIteration returns C(k), the live cell count after k subdivision
// passes starting from the icosahedron. It is the closed-form size query
// of §6.2 ("cells_per_iteration").
//
// CellsPerIteration panics for k outside [0, MaxIterations]; callers at the
// API boundary (geomesh.AllocateFor) are expected to validate k against
// MaxIterations first and return ErrInvalidIteration instead of reaching
// this panic (§7).
func CellsPerIteration(k int) ID {
	return cellCounts[k]
}

// FacesPerIteration returns F(k), the face count after k subdivision
// passes. geomesh itself never needs face lists (§1's Non-goals), but the
// value feeds directly into CellsPerIteration's recurrence and is exposed
// for callers (e.g. a renderer) that do need it.
func FacesPerIteration(k int) uint64 {
	return faceCounts[k]
}

// IterationForCount reports the k such that CellsPerIteration(k) == n, if
// n is one of the table's exact values. It exists for callers (e.g. the
// checkpoint sidecar manifest) that hold a live cell count and want to
// report which pass produced it, without duplicating the size table.
func IterationForCount(n ID) (int, bool) {
	for k, c := range cellCounts {
		if c == n {
			return k, true
		}
	}
	return 0, false
}
