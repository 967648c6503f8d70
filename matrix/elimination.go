// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// FindPivotRow returns the row in [from, Rows()) whose entry in column col
// has the largest magnitude. Ties go to the first row in scan order. When
// every candidate is zero the result is from; callers detect the singular
// case by checking the value at the returned row.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange for invalid arguments.
//
// Complexity: O(Rows()-from).
func FindPivotRow(m *Dense, col, from int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFindPivot, err)
	}
	if col < 0 || col >= m.c || from < 0 || from >= m.r {
		return 0, matrixErrorf(opFindPivot, denseErrorf(opAt, from, col, ErrOutOfRange))
	}

	return pickPivot(m, col, from, PivotLargest), nil
}

// pickPivot implements both strategies over rows [from, r).
func pickPivot(m *Dense, col, from int, strategy PivotStrategy) int {
	best := from
	for i := from; i < m.r; i++ {
		v := m.rows[i][col]
		if v.IsZero() {
			continue
		}
		if strategy == PivotFirstNonZero {
			return i
		}
		// strict > keeps the first occurrence on ties
		if rational.CmpAbs(v, m.rows[best][col]) > 0 {
			best = i
		}
	}

	return best
}

// Triangularize reduces the augmented matrix m in place.
//
// Implementation (for each pivot index i in 0..n-1):
//   - Stage 1: pick the pivot row in column i among rows i..n-1 and swap it
//     into slot i (slot exchange, no copy).
//   - Stage 2: a zero pivot means no candidate was non-zero: abort with
//     ErrSingular.
//   - Stage 3: invert the pivot; for every other row j in scope compute
//     factor = m[j][i]·pivot⁻¹, scale the pivot row into the scratch buffer
//     and subtract it from row j. m[j][i] becomes exactly zero.
//   - Stage 4: notify the pivot hook, if any.
//
// Behavior highlights:
//   - With EliminateAll (default) the coefficient block ends up diagonal;
//     with EliminateBelow it ends up upper triangular.
//   - One scratch row is allocated per call and reused for every pivot.
//   - Any arithmetic error aborts immediately; the matrix is then left
//     partially reduced and must be discarded.
//
// Errors:
//   - ErrNilMatrix, ErrNotAugmented for bad input.
//   - ErrSingular (wrapped with the column) for a zero pivot.
//   - rational.ErrOverflow (wrapped with pivot/row) for unrepresentable terms.
//
// Complexity: Time O(n³), Space O(n) scratch.
func Triangularize(m *Dense, opts ...Option) error {
	if err := ValidateAugmented(m); err != nil {
		return matrixErrorf(opTriangularize, err)
	}
	if _, err := eliminate(m, m.r, gatherOptions(opts...)); err != nil {
		return matrixErrorf(opTriangularize, err)
	}

	return nil
}

// eliminate runs the pivot loop over the leading n columns of m (m.r == n,
// m.c >= n) and returns the number of row swaps performed.
func eliminate(m *Dense, n int, o Options) (int, error) {
	scratch := make([]rational.Rational, m.c)
	swaps := 0
	for i := 0; i < n; i++ {
		p := pickPivot(m, i, i, o.pivoting)
		if p != i {
			m.rows[i], m.rows[p] = m.rows[p], m.rows[i]
			swaps++
		}
		pivot := m.rows[i][i]
		inv, err := rational.Inv(pivot)
		if err != nil {
			return swaps, fmt.Errorf("column %d: %w", i, ErrSingular)
		}

		start := 0
		if o.scope == EliminateBelow {
			start = i + 1
		}
		cleared := 0
		for j := start; j < n; j++ {
			if j == i || m.rows[j][i].IsZero() {
				continue
			}
			factor, err := rational.Mul(m.rows[j][i], inv)
			if err != nil {
				return swaps, fmt.Errorf("pivot %d, row %d: %w", i, j, err)
			}
			if err = scaleRow(scratch, m.rows[i], factor, i); err != nil {
				return swaps, fmt.Errorf("pivot %d, row %d: %w", i, j, err)
			}
			if err = subtractRow(m.rows[j], scratch, i); err != nil {
				return swaps, fmt.Errorf("pivot %d, row %d: %w", i, j, err)
			}
			cleared++
		}

		if o.onPivot != nil {
			o.onPivot(PivotEvent{Step: i, From: p, Swapped: p != i, Pivot: pivot, Cleared: cleared})
		}
	}

	return swaps, nil
}

// scaleRow writes src[k]*factor into dst[k] for k >= from. Columns left of
// from are zero in the pivot row and are left untouched in dst.
func scaleRow(dst, src []rational.Rational, factor rational.Rational, from int) error {
	var err error
	for k := from; k < len(src); k++ {
		if dst[k], err = rational.Mul(src[k], factor); err != nil {
			return err
		}
	}

	return nil
}

// subtractRow computes row[k] -= sub[k] in place for k >= from.
func subtractRow(row, sub []rational.Rational, from int) error {
	var err error
	for k := from; k < len(row); k++ {
		if row[k], err = rational.Sub(row[k], sub[k]); err != nil {
			return err
		}
	}

	return nil
}

// isSingular reports whether err carries ErrSingular.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }
