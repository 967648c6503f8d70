// SPDX-License-Identifier: MIT
// Package: ratgauss/builder
//
// impl_random.go - implementation of Random(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall); cfg.rng required (else ErrNeedRandSource).
//   - Off-diagonal entries are uniform in [-maxAbs, maxAbs].
//   - |A[i][i]| = Σ_{j≠i} |A[i][j]| + 1 + u, u ∈ [0, maxAbs], random sign:
//     strictly diagonally dominant, hence non-singular.
//   - Draw order is row-major, so a fixed seed yields a fixed matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// Random builds a seeded, strictly diagonally dominant integer block.
// Complexity: O(n²).
func Random(n int) Constructor {
	return func(cfg builderConfig) ([][]rational.Rational, error) {
		if err := validateSize(MethodRandom, n); err != nil {
			return nil, err
		}
		if cfg.rng == nil {
			return nil, builderErrorf(MethodRandom, fmt.Errorf("no rng configured: %w", ErrNeedRandSource))
		}
		if err := validateBound(MethodRandom, n, cfg.maxAbs); err != nil {
			return nil, err
		}

		rows := square(n)
		for i := range rows {
			var offSum int32
			for j := range rows[i] {
				if j == i {
					continue
				}
				v := cfg.draw()
				rows[i][j] = rational.FromInt(v)
				if v < 0 {
					v = -v
				}
				offSum += v
			}
			d := cfg.draw()
			if d < 0 {
				d = -d
			}
			diag := offSum + 1 + d
			if cfg.rng.Intn(2) == 1 {
				diag = -diag
			}
			rows[i][i] = rational.FromInt(diag)
		}

		return rows, nil
	}
}
