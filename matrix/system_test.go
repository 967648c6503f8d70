// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/matrix"
)

// TestSystem_Lifecycle walks Unreduced → Triangularized → Solved.
func TestSystem_Lifecycle(t *testing.T) {
	s, err := matrix.NewSystem(MustInts(t, [][]int32{{2, 1, 5}, {1, -1, 1}}))
	require.NoError(t, err)
	require.Equal(t, matrix.Unreduced, s.Phase())
	require.Equal(t, 2, s.Size())

	_, err = s.Solve()
	require.ErrorIs(t, err, matrix.ErrPhase, "Solve before Triangularize")
	_, err = s.Solution()
	require.ErrorIs(t, err, matrix.ErrPhase)

	require.NoError(t, s.Triangularize())
	require.Equal(t, matrix.Triangularized, s.Phase())
	require.ErrorIs(t, s.Triangularize(), matrix.ErrPhase, "Triangularize twice")
	RequireBelowDiagonalZero(t, s.Matrix())

	x, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, matrix.Solved, s.Phase())
	require.Equal(t, Vec(t, "2", "1"), x)

	// Solution hands out copies
	x[0] = x[1]
	again, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, Vec(t, "2", "1"), again)
}

// TestSystem_Failed ensures a singular system ends in the Failed phase.
func TestSystem_Failed(t *testing.T) {
	s, err := matrix.NewSystem(MustInts(t, [][]int32{{1, 2, 3}, {2, 4, 6}}))
	require.NoError(t, err)
	require.ErrorIs(t, s.Triangularize(), matrix.ErrSingular)
	require.Equal(t, matrix.Failed, s.Phase())
	_, err = s.Solve()
	require.ErrorIs(t, err, matrix.ErrPhase)
	require.Equal(t, "failed", s.Phase().String())
}

// TestNewSystem_Shape rejects non-augmented matrices.
func TestNewSystem_Shape(t *testing.T) {
	_, err := matrix.NewSystem(MustInts(t, [][]int32{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotAugmented)
	_, err = matrix.NewSystem(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
