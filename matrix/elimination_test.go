// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for pivot selection, elimination
// and back-substitution.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// TestFindPivotRow covers magnitude ordering, ties and the all-zero column.
func TestFindPivotRow(t *testing.T) {
	m := MustInts(t, [][]int32{
		{1, 0, 0},
		{-5, 0, 0},
		{3, 0, 0},
		{5, 0, 0},
	})
	for _, tc := range []struct {
		col, from, want int
	}{
		{0, 0, 1}, // |-5| beats 3; the later 5 ties and loses
		{0, 2, 3},
		{1, 0, 0}, // all zero: first candidate
		{1, 2, 2},
	} {
		got, err := matrix.FindPivotRow(m, tc.col, tc.from)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "col %d from %d", tc.col, tc.from)
	}

	_, err := matrix.FindPivotRow(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.FindPivotRow(m, 0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.FindPivotRow(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTriangularize_TwoByTwo follows 2x+y=5, x−y=1 step by step.
func TestTriangularize_TwoByTwo(t *testing.T) {
	m := MustInts(t, [][]int32{{2, 1, 5}, {1, -1, 1}})
	require.NoError(t, matrix.Triangularize(m))

	want := MustRats(t, [][]string{{"2", "0", "4"}, {"0", "-3/2", "-3/2"}})
	require.True(t, want.Equal(m), "got:\n%s", m)

	x, err := matrix.Solve(m)
	require.NoError(t, err)
	require.Equal(t, []rational.Rational{rational.FromInt(2), rational.FromInt(1)}, x)
}

// TestGauss_StrategiesAgree solves the same systems under every option mix.
func TestGauss_StrategiesAgree(t *testing.T) {
	systems := []struct {
		name string
		rows [][]int32
		want []string
	}{
		{"classic3", classic3(), []string{"2", "3", "-1"}},
		{"needs swap", [][]int32{{0, 1, 2}, {1, 0, 3}}, []string{"3", "2"}},
		{"fractional", [][]int32{{3, 2, 1}, {1, 4, 2}}, []string{"0", "1/2"}},
		{"single", [][]int32{{-4, 6}}, []string{"-3/2"}},
		{"min int", [][]int32{{math.MinInt32, math.MinInt32}}, []string{"1"}},
	}
	opts := map[string][]matrix.Option{
		"default":       nil,
		"below":         {matrix.WithScope(matrix.EliminateBelow)},
		"first-nonzero": {matrix.WithPivoting(matrix.PivotFirstNonZero)},
		"first-below":   {matrix.WithPivoting(matrix.PivotFirstNonZero), matrix.WithScope(matrix.EliminateBelow)},
	}
	for _, sys := range systems {
		for name, o := range opts {
			t.Run(fmt.Sprintf("%s/%s", sys.name, name), func(t *testing.T) {
				m := MustInts(t, sys.rows)
				orig := m.Clone()

				x, err := matrix.Gauss(m, o...)
				require.NoError(t, err)
				require.Equal(t, Vec(t, sys.want...), x)
				RequireBelowDiagonalZero(t, m)
				require.NoError(t, matrix.Verify(orig, x))
			})
		}
	}
}

// TestTriangularize_DiagonalWithEliminateAll checks that the default scope
// also clears entries above the diagonal.
func TestTriangularize_DiagonalWithEliminateAll(t *testing.T) {
	m := MustInts(t, classic3())
	require.NoError(t, matrix.Triangularize(m))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				require.True(t, MustAt(t, m, i, j).IsZero(), "entry [%d,%d]", i, j)
			}
		}
	}
}

// TestTriangularize_Singular ensures a zero pivot column aborts.
func TestTriangularize_Singular(t *testing.T) {
	for _, rows := range [][][]int32{
		{{1, 2, 3}, {2, 4, 6}},
		{{0, 0, 1}, {0, 0, 2}},
		{{0, 5}},
		{{1, 1, 1, 1}, {1, 1, 1, 2}, {0, 0, 1, 3}},
	} {
		err := matrix.Triangularize(MustInts(t, rows))
		require.ErrorIs(t, err, matrix.ErrSingular, "rows %v", rows)
	}
}

// TestTriangularize_Overflow ensures arithmetic overflow aborts loudly.
func TestTriangularize_Overflow(t *testing.T) {
	m := MustInts(t, [][]int32{{math.MaxInt32, 1, 0}, {1, math.MaxInt32, 1}})
	err := matrix.Triangularize(m)
	require.ErrorIs(t, err, rational.ErrOverflow)
	require.NotErrorIs(t, err, matrix.ErrSingular)
}

// TestTriangularize_Shape rejects non-augmented input.
func TestTriangularize_Shape(t *testing.T) {
	require.ErrorIs(t, matrix.Triangularize(MustInts(t, [][]int32{{1, 2}, {3, 4}})), matrix.ErrNotAugmented)
	require.ErrorIs(t, matrix.Triangularize(nil), matrix.ErrNilMatrix)
}

// TestTriangularize_Hook records pivot events.
func TestTriangularize_Hook(t *testing.T) {
	var events []matrix.PivotEvent
	m := MustInts(t, [][]int32{{1, -1, 1}, {2, 1, 5}})
	require.NoError(t, matrix.Triangularize(m, matrix.WithPivotHook(func(e matrix.PivotEvent) {
		events = append(events, e)
	})))

	require.Len(t, events, 2)
	require.Equal(t, matrix.PivotEvent{Step: 0, From: 1, Swapped: true, Pivot: rational.FromInt(2), Cleared: 1}, events[0])
	require.Equal(t, 1, events[1].Step)
	require.False(t, events[1].Swapped)
	require.Equal(t, rational.MustNew(-3, 2), events[1].Pivot)
}

// TestSolve_Preconditions covers the Solve error surface.
func TestSolve_Preconditions(t *testing.T) {
	_, err := matrix.Solve(MustInts(t, [][]int32{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNotTriangular)

	_, err = matrix.Solve(MustInts(t, [][]int32{{1, 2, 3}, {0, 0, 6}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(MustInts(t, [][]int32{{1, 2}}))
	require.NoError(t, err)

	// an upper-triangular input is back-substituted, not only divided
	x, err := matrix.Solve(MustInts(t, [][]int32{{1, 1, 3}, {0, 2, 4}}))
	require.NoError(t, err)
	require.Equal(t, Vec(t, "1", "2"), x)
}
