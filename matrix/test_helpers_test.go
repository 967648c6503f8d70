// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the elimination engine.
//   • Keep all values small enough that no fixture can overflow by accident.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// MustInts builds a Dense from integer rows or fails the test.
func MustInts(t *testing.T, data [][]int32) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(data)
	require.NoError(t, err)

	return m
}

// MustRats builds a Dense from "p/q" strings or fails the test.
func MustRats(t *testing.T, data [][]string) *matrix.Dense {
	t.Helper()
	rows := make([][]rational.Rational, len(data))
	for i, row := range data {
		rows[i] = make([]rational.Rational, len(row))
		for j, s := range row {
			v, err := rational.Parse(s)
			require.NoError(t, err, "entry %q", s)
			rows[i][j] = v
		}
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// Vec parses a vector of "p/q" strings.
func Vec(t *testing.T, xs ...string) []rational.Rational {
	t.Helper()
	out := make([]rational.Rational, len(xs))
	for i, s := range xs {
		v, err := rational.Parse(s)
		require.NoError(t, err, "entry %q", s)
		out[i] = v
	}

	return out
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) rational.Rational {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireBelowDiagonalZero asserts the triangularization invariant.
func RequireBelowDiagonalZero(t *testing.T, m *matrix.Dense) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < i && j < m.Cols(); j++ {
			require.True(t, MustAt(t, m, i, j).IsZero(), "entry [%d,%d] must be zero after triangularization", i, j)
		}
	}
}

// classic3 is 2x+y-z=8, -3x-y+2z=-11, -2x+y+2z=-3 with solution (2, 3, -1).
func classic3() [][]int32 {
	return [][]int32{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}
}
