// Package ratgauss solves linear systems exactly over the rational numbers.
//
// What is ratgauss?
//
//	A small toolkit for exact Gaussian elimination:
//		• Rationals with 32-bit terms, always reduced, overflow reported
//		• Augmented matrices with partial pivoting and row-slot swaps
//		• Gauss–Jordan or row-echelon elimination, back-substitution
//		• Exact determinant, inverse and solution verification
//		• Seeded fixtures with planted solutions
//
// Nothing is ever rounded: a result either is exact or the operation fails
// with rational.ErrOverflow.
//
// Under the hood, everything is organized under these packages:
//
//	rational/        — the Rational value type and its arithmetic
//	matrix/          — Dense, the elimination engine, System, linear algebra
//	textio/          — the plain text system format
//	render/          — console layout, JSON and YAML reports
//	builder/         — Identity, Hilbert, Tridiagonal and Random fixtures
//	config/          — defaults, TOML/YAML files, RATGAUSS_* overrides
//	internal/runner/ — one logged run: read, reduce, report
//	cmd/             — the cobra command tree; cmd/ratgauss is the binary
//
// Quick example (2x + y = 5, x − y = 1):
//
//	m, _ := matrix.FromInts([][]int32{{2, 1, 5}, {1, -1, 1}})
//	x, err := matrix.Gauss(m)
//	// x == [2 1]
//
// From the shell:
//
//	$ printf '2 1 5\n1 -1 1\n' > matrix.txt
//	$ ratgauss solve
//	...
//	The value of the variable 1 is: 2 (2/1).
//	The value of the variable 2 is: 1 (1/1).
package ratgauss
