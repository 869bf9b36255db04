// Package geomesh constructs a geodesic polyhedron by recursive midpoint
// subdivision of a regular icosahedron, projected onto the unit sphere,
// together with the region-assignment rule and checkpoint format that
// accompany it (§1–2 of the mesh specification).
//
// The package is a thin orchestrator over five lower-level packages, each
// independently usable:
//
//	vec/        — the 3-component vector primitive
//	cell/       — the Cell record, Store, and the C(k)/F(k) size recurrence
//	icosa/      — the icosahedron seeder
//	subdivide/  — the subdivision pass and region-assignment rule
//	checkpoint/ — the binary checkpoint codec
//
// geomesh itself wires these together behind the five engine operations of
// §6.2 (AllocateFor, SeedIcosahedron, Subdivide, Load, Save), the size
// query CellsPerIteration, and Engine.Reach, a convenience helper implementing
// the invocation pattern of §6.3: probe the checkpoint, seed or resume, then
// subdivide to the target iteration count.
//
// geomesh does not render, synthesize terrain, or project coordinates —
// those remain external collaborators per §1's Non-goals.
package geomesh
