// SPDX-License-Identifier: MIT
// Package matrix: exact linear-algebra helpers built on the elimination
// engine: determinant, inverse, matrix-vector product and solution checks.
//
// Notes:
//   - Inputs are never mutated; kernels work on clones.
//   - All results are exact; there is no tolerance anywhere.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// Coefficients returns the n×n coefficient block of an augmented matrix.
func Coefficients(aug *Dense) (*Dense, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opCoefficients, err)
	}
	out, err := NewDense(aug.r, aug.r)
	if err != nil {
		return nil, matrixErrorf(opCoefficients, err)
	}
	for i := range out.rows {
		copy(out.rows[i], aug.rows[i][:aug.r])
	}

	return out, nil
}

// Determinant returns det(m) for a square m.
//
// Implementation:
//   - Stage 1: clone m and eliminate below each pivot (row-echelon form).
//   - Stage 2: det = (-1)^swaps · Π diag.
//
// Behavior highlights:
//   - A singular matrix has determinant zero; this is not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; rational.ErrOverflow.
//
// Complexity: Time O(n³), Space O(n²).
func Determinant(m *Dense) (rational.Rational, error) {
	if err := ValidateSquare(m); err != nil {
		return rational.Zero, matrixErrorf(opDeterminant, err)
	}
	work := m.Clone()
	swaps, err := eliminate(work, work.r, gatherOptions(WithScope(EliminateBelow)))
	if err != nil {
		if isSingular(err) {
			return rational.Zero, nil
		}
		return rational.Zero, matrixErrorf(opDeterminant, err)
	}

	det := rational.One
	for i := 0; i < work.r; i++ {
		if det, err = rational.Mul(det, work.rows[i][i]); err != nil {
			return rational.Zero, matrixErrorf(opDeterminant, err)
		}
	}
	if swaps%2 == 1 {
		det = rational.Neg(det)
	}

	return det, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination of [m | I].
//
// Implementation:
//   - Stage 1: build the n×2n block [m | I].
//   - Stage 2: eliminate above and below every pivot.
//   - Stage 3: divide each row by its pivot and copy out the right half.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ErrSingular; rational.ErrOverflow.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	work, err := NewDense(n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(work.rows[i], m.rows[i])
		work.rows[i][n+i] = rational.One
	}

	if _, err = eliminate(work, n, gatherOptions(WithScope(EliminateAll))); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if inv.rows[i][j], err = rational.Quo(work.rows[i][n+j], work.rows[i][i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("row %d: %w", i, err))
			}
		}
	}

	return inv, nil
}

// MatVec computes y = m·x with len(x) == m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; rational.ErrOverflow.
//
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x []rational.Rational) ([]rational.Rational, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(len(x), m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]rational.Rational, m.r)
	for i, row := range m.rows {
		sum, err := dot(row, x)
		if err != nil {
			return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, err))
		}
		y[i] = sum
	}

	return y, nil
}

// Residual returns A·x − b for the augmented matrix [A | b].
// Every entry is zero exactly when x solves the system.
func Residual(aug *Dense, x []rational.Rational) ([]rational.Rational, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	n := aug.r
	if err := ValidateVecLen(len(x), n); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	res := make([]rational.Rational, n)
	for i, row := range aug.rows {
		ax, err := dot(row[:n], x)
		if err != nil {
			return nil, matrixErrorf(opResidual, fmt.Errorf("row %d: %w", i, err))
		}
		if res[i], err = rational.Sub(ax, row[n]); err != nil {
			return nil, matrixErrorf(opResidual, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return res, nil
}

// Verify returns nil when x solves [A | b] exactly, ErrNotSolution (wrapped
// with the first failing row) otherwise.
func Verify(aug *Dense, x []rational.Rational) error {
	res, err := Residual(aug, x)
	if err != nil {
		return matrixErrorf(opVerify, err)
	}
	for i, r := range res {
		if !r.IsZero() {
			return matrixErrorf(opVerify, fmt.Errorf("row %d off by %s: %w", i, r, ErrNotSolution))
		}
	}

	return nil
}

// dot returns Σ a[k]·b[k]; len(a) == len(b) is assumed.
func dot(a, b []rational.Rational) (rational.Rational, error) {
	sum := rational.Zero
	for k := range a {
		if a[k].IsZero() || b[k].IsZero() {
			continue
		}
		t, err := rational.Mul(a[k], b[k])
		if err != nil {
			return rational.Zero, err
		}
		if sum, err = rational.Add(sum, t); err != nil {
			return rational.Zero, err
		}
	}

	return sum, nil
}
