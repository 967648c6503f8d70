// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "rational: ..." so it can be grepped in logs.
// Operations wrap these sentinels with their tag ("Add: rational: overflow");
// callers branch with errors.Is.
var (
	// ErrOverflow is returned when a reduced result does not fit 32-bit terms.
	ErrOverflow = errors.New("rational: overflow")

	// ErrZeroInverse is returned when inverting (or dividing by) zero.
	ErrZeroInverse = errors.New("rational: inverse of zero")

	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax is returned by Parse for malformed text.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// Operation tags used in error wrappers.
const (
	opNew   = "New"
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opQuo   = "Quo"
	opInv   = "Inv"
	opLCM   = "LCM"
	opParse = "Parse"
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
