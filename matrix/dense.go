// SPDX-License-Identifier: MIT

// Package matrix - Dense storage & safe accessors.
//
// Purpose:
//   - Hold an r×c grid of canonical rationals, addressed (row, col).
//   - Keep one contiguous backing buffer but expose it as row slots, so that
//     SwapRows is an O(1) exchange of row identities.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/SwapRows: O(1); Row/Clone/Equal/String: O(size).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratgauss/rational"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a row-major matrix of rationals.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - rows[i] is the i-th row slot (len == c); slots may be exchanged.
type Dense struct {
	r, c int
	rows [][]rational.Rational
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer (the zero Rational is 0/1).
//   - Stage 3: carve the buffer into row slots.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}
	buf := make([]rational.Rational, rows*cols)
	slots := make([][]rational.Rational, rows)
	for i := range slots {
		slots[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &Dense{r: rows, c: cols, rows: slots}, nil
}

// NewAugmented creates a zero n×(n+1) matrix for a system of n equations.
func NewAugmented(n int) (*Dense, error) {
	return NewDense(n, n+1)
}

// FromRows builds a Dense from a rectangular slice of rows (copied).
// Entries are simplified on the way in so the canonical-form invariant holds
// even for values produced by rational.Raw.
//
// Errors:
//   - ErrInvalidDimensions if data or its first row is empty.
//   - ErrDimensionMismatch if rows have different lengths.
func FromRows(data [][]rational.Rational) (*Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(data), len(data[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), m.c, ErrDimensionMismatch))
		}
		for j, v := range row {
			m.rows[i][j], _ = rational.Simplify(v)
		}
	}

	return m, nil
}

// FromInts builds a Dense of integer entries (denominator 1).
// Errors as for FromRows.
func FromInts(data [][]int32) (*Dense, error) {
	conv := make([][]rational.Rational, len(data))
	for i, row := range data {
		conv[i] = make([]rational.Rational, len(row))
		for j, v := range row {
			conv[i][j] = rational.FromInt(v)
		}
	}

	return FromRows(conv)
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// IsAugmented reports whether the shape is n×(n+1).
func (m *Dense) IsAugmented() bool { return m.c == m.r+1 }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
func (m *Dense) At(row, col int) (rational.Rational, error) {
	if err := m.checkIndex(row, col); err != nil {
		return rational.Rational{}, denseErrorf(opAt, row, col, err)
	}

	return m.rows[row][col], nil
}

// Set assigns v at (row, col). v is simplified before it is stored.
// Returns ErrOutOfRange on invalid indices.
func (m *Dense) Set(row, col int, v rational.Rational) error {
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(opSet, row, col, err)
	}
	m.rows[row][col], _ = rational.Simplify(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(opRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.rows[i])

	return out, nil
}

// SwapRows exchanges the row slots i and j. No entry is copied.
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// Clone returns a deep copy with fresh, contiguous storage in the current
// row order.
func (m *Dense) Clone() *Dense {
	out, _ := NewDense(m.r, m.c) // shape already validated
	for i := range m.rows {
		copy(out.rows[i], m.rows[i])
	}

	return out
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if m.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer: one "[a, b, ...]" line per row.
func (m *Dense) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// checkIndex validates 0 ≤ row < r and 0 ≤ col < c.
func (m *Dense) checkIndex(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}
