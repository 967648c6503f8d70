// SPDX-License-Identifier: MIT
// Package: ratgauss/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels stay unformatted.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a system size below MinSize.
var ErrTooSmall = errors.New("builder: size too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidBound indicates that the requested magnitudes cannot be
// represented with 32-bit integer coefficients.
var ErrInvalidBound = errors.New("builder: coefficient bound too large")

// ErrConstructFailed indicates a nil constructor or a constructor that
// produced a block of the wrong shape.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method name, keeping it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
