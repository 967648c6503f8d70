// SPDX-License-Identifier: MIT

// Package builder produces deterministic linear-system fixtures for tests,
// benchmarks and the generate command.
//
// Every fixture is an augmented matrix [A | b] together with the solution
// x that was planted into it (b = A·x is computed exactly), so callers can
// check a solver end to end without a reference implementation.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildSystem(ctor, opts...): resolves options, builds A, plants x.
//   - Coefficient constructors (Constructor implementations):
//     – Identity(n):    the n×n identity.
//     – Hilbert(n):     H[i][j] = 1/(i+j+1); famously ill-conditioned.
//     – Tridiagonal(n): 2 on the diagonal, -1 beside it.
//     – Random(n):      seeded integers, strictly diagonally dominant.
//   - Options (BuilderOption):
//     – WithSeed, WithRand: randomness for Random and random solutions.
//     – WithMaxAbs:         magnitude bound for random integers.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical fixtures.
//   - Non-singular coefficient blocks for every constructor.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
package builder
