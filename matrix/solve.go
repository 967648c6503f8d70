// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// Solve back-substitutes a triangularized augmented matrix and returns one
// value per row (variable i is associated with row i).
//
// For i = n-1 down to 0:
//
//	x[i] = (m[i][n] - Σ_{k>i} m[i][k]·x[k]) · m[i][i]⁻¹
//
// When the coefficient block is diagonal (EliminateAll) the sum is empty and
// this is the per-row division m[i][n]·m[i][i]⁻¹. m is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNotAugmented for bad input.
//   - ErrNotTriangular if an entry below the diagonal is non-zero.
//   - ErrSingular if a diagonal entry is zero.
//   - rational.ErrOverflow for unrepresentable terms.
//
// Complexity: Time O(n²), Space O(n).
func Solve(m *Dense) ([]rational.Rational, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !IsUpperTriangular(m) {
		return nil, matrixErrorf(opSolve, ErrNotTriangular)
	}

	n := m.r
	x := make([]rational.Rational, n)
	for i := n - 1; i >= 0; i-- {
		row := m.rows[i]
		acc := row[n]
		for k := i + 1; k < n; k++ {
			if row[k].IsZero() {
				continue
			}
			t, err := rational.Mul(row[k], x[k])
			if err != nil {
				return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, err))
			}
			if acc, err = rational.Sub(acc, t); err != nil {
				return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, err))
			}
		}
		inv, err := rational.Inv(row[i])
		if err != nil {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		if x[i], err = rational.Mul(acc, inv); err != nil {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return x, nil
}

// Gauss triangularizes m in place and solves it.
// Errors are those of Triangularize and Solve.
func Gauss(m *Dense, opts ...Option) ([]rational.Rational, error) {
	s, err := NewSystem(m)
	if err != nil {
		return nil, err
	}
	if err = s.Triangularize(opts...); err != nil {
		return nil, err
	}

	return s.Solve()
}
