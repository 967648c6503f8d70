// SPDX-License-Identifier: MIT
// Package: ratgauss/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildSystem(ctor, opts...). Resolves cfg, builds the
//     coefficient block, plants a solution and returns [A | A·x].
//   - Factories return Constructor closures; implementations live in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// Constructor returns the n×n coefficient block of a fixture using the
// resolved builderConfig. Constructors validate their parameters and return
// sentinel errors; they never panic.
type Constructor func(cfg builderConfig) ([][]rational.Rational, error)

// Fixture is an augmented system with a known solution.
type Fixture struct {
	// Aug is the n×(n+1) matrix [A | b].
	Aug *matrix.Dense
	// Solution is the planted x with A·x = b.
	Solution []rational.Rational
}

// BuildSystem resolves opts, runs ctor and plants a solution.
//
// The planted solution is x[i] = i+1 without an RNG, and uniform integers in
// [-maxAbs, maxAbs] when one is configured.
//
// Errors:
//   - ErrConstructFailed for a nil ctor or a non-square block.
//   - Constructor errors (ErrTooSmall, ErrNeedRandSource, ErrInvalidBound).
//   - rational.ErrOverflow if b does not fit 32-bit terms.
//
// Complexity: O(n²) plus the constructor.
func BuildSystem(ctor Constructor, opts ...BuilderOption) (*Fixture, error) {
	if ctor == nil {
		return nil, builderErrorf(MethodBuildSystem, fmt.Errorf("nil constructor: %w", ErrConstructFailed))
	}
	cfg := newBuilderConfig(opts...)

	coeffs, err := ctor(cfg)
	if err != nil {
		return nil, builderErrorf(MethodBuildSystem, err)
	}
	a, err := matrix.FromRows(coeffs)
	if err != nil || a.Rows() != a.Cols() {
		return nil, builderErrorf(MethodBuildSystem, fmt.Errorf("coefficient block: %w", ErrConstructFailed))
	}

	n := a.Rows()
	x := make([]rational.Rational, n)
	for i := range x {
		if cfg.rng != nil {
			x[i] = rational.FromInt(cfg.draw())
		} else {
			x[i] = rational.FromInt(int32(i + 1))
		}
	}
	b, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, builderErrorf(MethodBuildSystem, err)
	}

	aug, err := matrix.NewAugmented(n)
	if err != nil {
		return nil, builderErrorf(MethodBuildSystem, err)
	}
	for i, row := range coeffs {
		for j, v := range row {
			if err = aug.Set(i, j, v); err != nil {
				return nil, builderErrorf(MethodBuildSystem, err)
			}
		}
		if err = aug.Set(i, n, b[i]); err != nil {
			return nil, builderErrorf(MethodBuildSystem, err)
		}
	}

	return &Fixture{Aug: aug, Solution: x}, nil
}

// square allocates an n×n block of zeros.
func square(n int) [][]rational.Rational {
	rows := make([][]rational.Rational, n)
	for i := range rows {
		rows[i] = make([]rational.Rational, n)
	}

	return rows
}
