// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratgauss/rational"
)

// PivotStrategy selects the pivot row among the candidates of a column.
type PivotStrategy int

const (
	// PivotLargest picks the largest magnitude; the first one wins on ties.
	PivotLargest PivotStrategy = iota

	// PivotFirstNonZero picks the first non-zero candidate in scan order.
	PivotFirstNonZero
)

// Scope selects which rows are cleared for each pivot.
type Scope int

const (
	// EliminateAll clears the pivot column in every other row, above and
	// below, which leaves a diagonal coefficient block.
	EliminateAll Scope = iota

	// EliminateBelow clears only the rows below the pivot (row-echelon form);
	// Solve finishes the job by back-substitution.
	EliminateBelow
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting is the pivot strategy when WithPivoting is not given.
	DefaultPivoting = PivotLargest

	// DefaultScope is the elimination scope when WithScope is not given.
	DefaultScope = EliminateAll
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotingInvalid = "matrix: WithPivoting: unknown strategy"
	panicScopeInvalid    = "matrix: WithScope: unknown scope"
	panicHookNil         = "matrix: WithPivotHook(nil)"
)

// PivotEvent describes one completed pivot step, for observers.
type PivotEvent struct {
	Step    int               // pivot index i (also the column)
	From    int               // row the pivot came from before the swap
	Swapped bool              // From != Step
	Pivot   rational.Rational // the pivot value
	Cleared int               // number of rows updated in this step
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivoting PivotStrategy
	scope    Scope
	onPivot  func(PivotEvent)
}

// WithPivoting sets the pivot strategy. Panics on unknown values.
func WithPivoting(p PivotStrategy) Option {
	if p != PivotLargest && p != PivotFirstNonZero {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithScope sets the elimination scope. Panics on unknown values.
func WithScope(s Scope) Option {
	if s != EliminateAll && s != EliminateBelow {
		panic(panicScopeInvalid)
	}

	return func(o *Options) { o.scope = s }
}

// WithPivotHook registers an observer called after every pivot step.
// The hook must not retain or mutate the matrix. Panics on nil.
func WithPivotHook(fn func(PivotEvent)) Option {
	if fn == nil {
		panic(panicHookNil)
	}

	return func(o *Options) { o.onPivot = fn }
}

// gatherOptions applies setters in order over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivoting: DefaultPivoting,
		scope:    DefaultScope,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// String returns the config name of the strategy.
func (p PivotStrategy) String() string {
	switch p {
	case PivotLargest:
		return "largest"
	case PivotFirstNonZero:
		return "first-nonzero"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// String returns the config name of the scope.
func (s Scope) String() string {
	switch s {
	case EliminateAll:
		return "all"
	case EliminateBelow:
		return "below"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ParsePivotStrategy maps a config name to a PivotStrategy.
// Empty text selects the default. Unknown names return ErrUnknownOption.
func ParsePivotStrategy(text string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return DefaultPivoting, nil
	case "largest":
		return PivotLargest, nil
	case "first-nonzero", "first":
		return PivotFirstNonZero, nil
	default:
		return 0, fmt.Errorf("pivoting %q: %w", text, ErrUnknownOption)
	}
}

// ParseScope maps a config name to a Scope.
// Empty text selects the default. Unknown names return ErrUnknownOption.
func ParseScope(text string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return DefaultScope, nil
	case "all", "jordan":
		return EliminateAll, nil
	case "below", "echelon":
		return EliminateBelow, nil
	default:
		return 0, fmt.Errorf("scope %q: %w", text, ErrUnknownOption)
	}
}
