package icosa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nephatrine/geomesh/cell"
	"github.com/Nephatrine/geomesh/icosa"
)

// TestSeed_ScenarioOne covers §8 scenario 1, "Seed only".
func TestSeed_ScenarioOne(t *testing.T) {
	s, err := cell.Allocate(icosa.VertexCount)
	require.NoError(t, err)
	require.NoError(t, icosa.Seed(s))

	require.Equal(t, 12, s.Extant())

	for i := 0; i < 12; i++ {
		c, err := s.Get(cell.ID(i))
		require.NoError(t, err)

		require.True(t, c.HasNoLink(), "seed %d must carry exactly one NoLink spoke", i)
		require.Equal(t, cell.Region(i), c.Region, "seed %d region must be identity-labelled", i)

		mag := c.V[0]*c.V[0] + c.V[1]*c.V[1] + c.V[2]*c.V[2]
		require.InDelta(t, 1.0, mag, 1e-6, "seed %d magnitude^2 must be 1", i)
	}

	c0, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, [6]cell.ID{1, 5, 2, 4, 3, cell.NoLink}, c0.Link)
}

func TestSeed_RejectsNonEmptyStore(t *testing.T) {
	s, err := cell.Allocate(icosa.VertexCount)
	require.NoError(t, err)
	require.NoError(t, icosa.Seed(s))

	err = icosa.Seed(s)
	require.ErrorIs(t, err, icosa.ErrAlreadySeeded)
}

func TestSeed_RejectsUndersizedStore(t *testing.T) {
	s, err := cell.Allocate(5)
	require.NoError(t, err)

	err = icosa.Seed(s)
	require.ErrorIs(t, err, icosa.ErrTooSmall)
}

// TestSeed_MutualLinkage checks invariant I1 restricted to the seed mesh.
func TestSeed_MutualLinkage(t *testing.T) {
	s, err := cell.Allocate(icosa.VertexCount)
	require.NoError(t, err)
	require.NoError(t, icosa.Seed(s))

	for a := 0; a < 12; a++ {
		ca, err := s.Get(cell.ID(a))
		require.NoError(t, err)
		for _, b := range ca.Link {
			if b == cell.NoLink {
				continue
			}
			cb, err := s.Get(b)
			require.NoError(t, err)
			found := 0
			for _, back := range cb.Link {
				if back == cell.ID(a) {
					found++
				}
			}
			require.Equal(t, 1, found, "cell %d -> %d must be mutual exactly once", a, b)
		}
	}
}
