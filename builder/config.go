// SPDX-License-Identifier: MIT
// Package: ratgauss/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil           (no randomness unless seeded)
//   • maxAbs = DefaultMaxAbs (9)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Upper bound for |random integer|, >= 1.
	maxAbs int32
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxAbs: DefaultMaxAbs}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw returns a uniform integer in [-maxAbs, maxAbs]. rng must be non-nil.
func (c builderConfig) draw() int32 {
	return int32(c.rng.Int63n(2*int64(c.maxAbs)+1) - int64(c.maxAbs))
}
