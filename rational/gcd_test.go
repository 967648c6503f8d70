// SPDX-License-Identifier: MIT
package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratgauss/rational"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{0, 0, 0},
		{0, 9, 9},
		{9, 0, 9},
		{12, 18, 6},
		{17, 5, 1},
		{1 << 40, 1 << 12, 1 << 12},
		{math.MaxUint64, 3, 3},
		{math.MaxUint32, math.MaxUint32 - 1, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, rational.GCD(tc.a, tc.b), "gcd(%d,%d)", tc.a, tc.b)
		require.Equal(t, tc.want, rational.GCD(tc.b, tc.a), "gcd(%d,%d)", tc.b, tc.a)
	}
}

func TestLCM(t *testing.T) {
	l, err := rational.LCM(4, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(12), l)

	l, err = rational.LCM(0, 6)
	require.NoError(t, err)
	require.Zero(t, l)

	_, err = rational.LCM(math.MaxUint64, math.MaxUint64-1)
	require.ErrorIs(t, err, rational.ErrOverflow)
}
