// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense storage.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewAugmented(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseDefaultZero checks zero initialization and shape reporting.
func TestNewDenseDefaultZero(t *testing.T) {
	m, err := matrix.NewAugmented(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.True(t, m.IsAugmented())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, rational.Zero, MustAt(t, m, i, j))
		}
	}
}

// TestAtSetOutOfBounds ensures accessors return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, rational.One), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
}

// TestSetSimplifies ensures stored values are canonical.
func TestSetSimplifies(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, rational.Raw(true, 6, 4)))
	require.Equal(t, rational.MustNew(-3, 2), MustAt(t, m, 0, 0))
}

// TestFromRows covers ragged and empty inputs.
func TestFromRows(t *testing.T) {
	_, err := matrix.FromInts(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromInts([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m := MustInts(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, rational.FromInt(6), MustAt(t, m, 1, 2))
	require.True(t, m.IsAugmented())
}

// TestSwapRowsAndClone verifies slot exchange and deep copies.
func TestSwapRowsAndClone(t *testing.T) {
	m := MustInts(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, m.SwapRows(0, 1))
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []rational.Rational{rational.FromInt(4), rational.FromInt(5), rational.FromInt(6)}, row)
	require.False(t, m.Equal(clone), "clone must not follow the swap")

	// Row returns a copy
	row[0] = rational.FromInt(99)
	require.Equal(t, rational.FromInt(4), MustAt(t, m, 0, 0))

	require.NoError(t, clone.Set(0, 0, rational.FromInt(7)))
	require.Equal(t, rational.FromInt(4), MustAt(t, m, 0, 0))

	var nilDense *matrix.Dense
	require.False(t, m.Equal(nilDense))
	require.True(t, nilDense.Equal(nil))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustRats(t, [][]string{{"1", "-2/4"}, {"3", "0"}})
	require.Equal(t, "[1, -1/2]\n[3, 0]\n", m.String())
}
