// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape/nil checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import "fmt"

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateAugmented ensures m is non-nil and n×(n+1).
func ValidateAugmented(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.IsAugmented() {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNotAugmented)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and n×n.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(x) == want.
func ValidateVecLen(x int, want int) error {
	if x != want {
		return fmt.Errorf("vector length %d, want %d: %w", x, want, ErrDimensionMismatch)
	}

	return nil
}

// IsUpperTriangular reports whether every entry below the diagonal of the
// leading min(r, c) columns is zero.
// Complexity: O(n²).
func IsUpperTriangular(m *Dense) bool {
	if m == nil {
		return false
	}
	for i := 1; i < m.r; i++ {
		for j := 0; j < i && j < m.c; j++ {
			if !m.rows[i][j].IsZero() {
				return false
			}
		}
	}

	return true
}
