// Package matrix holds augmented rational matrices and the exact Gaussian
// elimination engine that solves them.
//
// What & Why:
//
//	Dense is an r×c grid of rational.Rational values. Rows are stored as
//	separate slots so that pivoting exchanges row identities instead of
//	copying row contents. All arithmetic goes through package rational:
//	the engine never touches numerator/denominator bits itself, so every
//	entry stays canonical and no step rounds.
//
// Lifecycle of a system (n equations, n+1 columns):
//
//	Unreduced ──Triangularize──▶ Triangularized ──Solve──▶ Solved
//
//	Triangularize picks a pivot per column (largest magnitude by default),
//	swaps it into place and subtracts multiples of the pivot row from the
//	other rows. Solve back-substitutes. A column with no non-zero pivot
//	candidate aborts with ErrSingular; an arithmetic overflow aborts with
//	rational.ErrOverflow. Partial results are never returned.
//
// Also provided: Determinant, Inverse, MatVec, Residual and Verify, all exact.
//
// Complexity:
//
//	Triangularize, Determinant and Inverse are O(n³); Solve is O(n²).
package matrix
