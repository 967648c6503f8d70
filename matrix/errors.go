// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with an
// operation tag via matrixErrorf) and tests check them via errors.Is.
// Arithmetic failures from package rational are wrapped, not replaced, so
// errors.Is(err, rational.ErrOverflow) keeps working through the engine.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive dimensions or empty input.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged rows or incompatible operand sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotAugmented signals that an n×(n+1) augmented matrix was required.
	ErrNotAugmented = errors.New("matrix: matrix is not n×(n+1)")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when no non-zero pivot exists for some column.
	// The system has no unique solution.
	ErrSingular = errors.New("matrix: singular system")

	// ErrNotTriangular is returned by Solve when an entry below the diagonal
	// is non-zero.
	ErrNotTriangular = errors.New("matrix: matrix is not triangular")

	// ErrPhase is returned by System methods called out of order.
	ErrPhase = errors.New("matrix: operation not valid in current phase")

	// ErrNotSolution is returned by Verify when A·x ≠ b.
	ErrNotSolution = errors.New("matrix: vector does not solve the system")

	// ErrUnknownOption is returned when parsing an unknown option name.
	ErrUnknownOption = errors.New("matrix: unknown option value")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense      = "NewDense"
	opFromRows      = "FromRows"
	opAt            = "At"
	opSet           = "Set"
	opRow           = "Row"
	opSwapRows      = "SwapRows"
	opFindPivot     = "FindPivotRow"
	opTriangularize = "Triangularize"
	opSolve         = "Solve"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
	opMatVec        = "MatVec"
	opResidual      = "Residual"
	opVerify        = "Verify"
	opCoefficients  = "Coefficients"
	opSystem        = "System"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method context and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
