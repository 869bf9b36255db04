package checkpoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/checkpoint"
	"github.com/Nephatrine/geomesh/icosa"
	"github.com/Nephatrine/geomesh/subdivide"
)

func buildMesh(t *testing.T, passes int) *cell.Store {
	t.Helper()
	s, err := cell.Allocate(cell.CellsPerIteration(passes))
	require.NoError(t, err)
	require.NoError(t, icosa.Seed(s))

	state := subdivide.NewRegionState()
	for i := 0; i < passes; i++ {
		require.NoError(t, subdivide.Pass(s, state))
	}
	return s
}

// TestRoundTrip covers §8 scenario 5: checkpoint round-trip.
func TestRoundTrip(t *testing.T) {
	src := buildMesh(t, 2)
	path := filepath.Join(t.TempDir(), "t.dat")

	require.NoError(t, checkpoint.Save(src, path))

	dst, err := cell.Allocate(cell.CellsPerIteration(2))
	require.NoError(t, err)

	status, err := checkpoint.Load(dst, path, src.Extant())
	require.NoError(t, err)
	require.Equal(t, checkpoint.OK, status)
	require.Equal(t, src.Extant(), dst.Extant())

	if diff := cmp.Diff(src.Cells(), dst.Cells()); diff != "" {
		t.Fatalf("round-tripped store differs (-want +got):\n%s", diff)
	}

	// the sidecar manifest is advisory but should exist after Save.
	_, err = os.Stat(path + ".meta.yaml")
	require.NoError(t, err, "Save should write an advisory sidecar manifest")
}

// TestLoad_Absent covers the "absent" outcome of §4.5.
func TestLoad_Absent(t *testing.T) {
	dst, err := cell.Allocate(12)
	require.NoError(t, err)

	status, err := checkpoint.Load(dst, filepath.Join(t.TempDir(), "missing.dat"), 12)
	require.NoError(t, err)
	require.Equal(t, checkpoint.Absent, status)
	require.Equal(t, 0, dst.Extant())
}

// TestLoad_IncompatibleHeader covers §8 scenario 6: checkpoint rejection.
func TestLoad_IncompatibleHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-header.dat")
	// A header claiming a record size that does not match this build's.
	require.NoError(t, os.WriteFile(path, []byte{
		0xFF, 0x00, 0x00, 0x00, // record size = 255 (wrong)
		0x0C, 0x00, 0x00, 0x00, // cell count = 12
	}, 0o644))

	dst, err := cell.Allocate(12)
	require.NoError(t, err)

	status, err := checkpoint.Load(dst, path, 12)
	require.NoError(t, err)
	require.Equal(t, checkpoint.Incompatible, status)
	require.Equal(t, 0, dst.Extant(), "store must be left untouched on incompatible load")
}

// TestLoad_InsufficientCount covers the "stored count is less than the
// requested count" branch of §4.5.
func TestLoad_InsufficientCount(t *testing.T) {
	src := buildMesh(t, 0) // 12 cells
	path := filepath.Join(t.TempDir(), "small.dat")
	require.NoError(t, checkpoint.Save(src, path))

	dst, err := cell.Allocate(cell.CellsPerIteration(1))
	require.NoError(t, err)

	status, err := checkpoint.Load(dst, path, 42) // asking for more than was saved
	require.NoError(t, err)
	require.Equal(t, checkpoint.Incompatible, status)
}

// TestLoad_LowerIterationIntoLargerAllocation covers §8 P8: a checkpoint
// written at a lower iteration count loads into a larger allocation when
// the requested count matches what was saved.
func TestLoad_LowerIterationIntoLargerAllocation(t *testing.T) {
	src := buildMesh(t, 1) // 42 cells
	path := filepath.Join(t.TempDir(), "small-into-big.dat")
	require.NoError(t, checkpoint.Save(src, path))

	dst, err := cell.Allocate(cell.CellsPerIteration(4)) // much larger
	require.NoError(t, err)

	status, err := checkpoint.Load(dst, path, src.Extant())
	require.NoError(t, err)
	require.Equal(t, checkpoint.OK, status)
	require.Equal(t, 42, dst.Extant())
}

// TestMultiPassResume exercises the supplemented scenario: save at
// iteration 2, resume to iteration 4, and compare against a from-scratch
// 4-pass build.
func TestMultiPassResume(t *testing.T) {
	checkpointed := buildMesh(t, 2)
	path := filepath.Join(t.TempDir(), "resume.dat")
	require.NoError(t, checkpoint.Save(checkpointed, path))

	resumed, err := cell.Allocate(cell.CellsPerIteration(4))
	require.NoError(t, err)
	status, err := checkpoint.Load(resumed, path, checkpointed.Extant())
	require.NoError(t, err)
	require.Equal(t, checkpoint.OK, status)

	state := subdivide.NewRegionState()
	require.NoError(t, subdivide.Pass(resumed, state))
	require.NoError(t, subdivide.Pass(resumed, state))

	fromScratch := buildMesh(t, 4)

	require.Equal(t, fromScratch.Extant(), resumed.Extant())
	if diff := cmp.Diff(fromScratch.Cells(), resumed.Cells()); diff != "" {
		t.Fatalf("resumed store differs from from-scratch build (-want +got):\n%s", diff)
	}
}
