// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for every Constructor,
// verifying shapes, planted solutions and determinism.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/builder"
	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// TestBuilders_SolveToPlanted builds each fixture, solves it and compares
// against the planted solution.
func TestBuilders_SolveToPlanted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		n    int
	}{
		{"Identity(4)", builder.Identity(4), nil, 4},
		{"Identity(1)", builder.Identity(1), nil, 1},
		{"Hilbert(3)", builder.Hilbert(3), nil, 3},
		{"Tridiagonal(5)", builder.Tridiagonal(5), nil, 5},
		{"Tridiagonal seeded", builder.Tridiagonal(4), []builder.BuilderOption{builder.WithSeed(7)}, 4},
		{"Random(4)", builder.Random(4), []builder.BuilderOption{builder.WithSeed(42), builder.WithMaxAbs(5)}, 4},
		{"Random(1)", builder.Random(1), []builder.BuilderOption{builder.WithSeed(1)}, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fx, err := builder.BuildSystem(tc.ctor, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.n, fx.Aug.Rows())
			require.True(t, fx.Aug.IsAugmented())
			require.Len(t, fx.Solution, tc.n)
			require.NoError(t, matrix.Verify(fx.Aug, fx.Solution))

			x, err := matrix.Gauss(fx.Aug.Clone())
			require.NoError(t, err)
			assert.Equal(t, fx.Solution, x)
		})
	}
}

func TestIdentity_DefaultSolution(t *testing.T) {
	fx, err := builder.BuildSystem(builder.Identity(3))
	require.NoError(t, err)
	want, err := matrix.FromInts([][]int32{{1, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}})
	require.NoError(t, err)
	assert.True(t, want.Equal(fx.Aug), "got:\n%s", fx.Aug)
}

func TestHilbert_Entries(t *testing.T) {
	fx, err := builder.BuildSystem(builder.Hilbert(3))
	require.NoError(t, err)
	v, err := fx.Aug.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, rational.MustNew(1, 4), v)
	b, err := fx.Aug.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, rational.MustNew(23, 12), b)
}

func TestTridiagonal_Determinant(t *testing.T) {
	fx, err := builder.BuildSystem(builder.Tridiagonal(6))
	require.NoError(t, err)
	a, err := matrix.Coefficients(fx.Aug)
	require.NoError(t, err)
	det, err := matrix.Determinant(a)
	require.NoError(t, err)
	assert.Equal(t, rational.FromInt(7), det)
}

func TestRandom_Deterministic(t *testing.T) {
	first, err := builder.BuildSystem(builder.Random(5), builder.WithSeed(99))
	require.NoError(t, err)
	second, err := builder.BuildSystem(builder.Random(5), builder.WithSeed(99))
	require.NoError(t, err)
	assert.True(t, first.Aug.Equal(second.Aug))
	assert.Equal(t, first.Solution, second.Solution)

	// diagonal dominance, row by row
	for i := 0; i < 5; i++ {
		row, err := first.Aug.Row(i)
		require.NoError(t, err)
		var off int64
		for j := 0; j < 5; j++ {
			if j != i {
				off += abs(row[j].Num())
			}
		}
		assert.Greater(t, abs(row[i].Num()), off, "row %d", i)
		for _, s := range first.Solution {
			assert.LessOrEqual(t, abs(s.Num()), int64(builder.DefaultMaxAbs))
		}
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"nil ctor", nil, nil, builder.ErrConstructFailed},
		{"identity zero", builder.Identity(0), nil, builder.ErrTooSmall},
		{"hilbert negative", builder.Hilbert(-1), nil, builder.ErrTooSmall},
		{"tridiagonal zero", builder.Tridiagonal(0), nil, builder.ErrTooSmall},
		{"random no rng", builder.Random(3), nil, builder.ErrNeedRandSource},
		{"random bound", builder.Random(3), []builder.BuilderOption{builder.WithSeed(1), builder.WithMaxAbs(1 << 30)}, builder.ErrInvalidBound},
		{"random too small", builder.Random(0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildSystem(tc.ctor, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAbs(0) })
	assert.Panics(t, func() { builder.WithMaxAbs(math.MinInt32) })
	assert.NotPanics(t, func() { builder.WithMaxAbs(1) })
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
