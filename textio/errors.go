// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks a token that is not an integer or "p/q" fraction.
	ErrSyntax = errors.New("textio: invalid token")

	// ErrShape marks rows with the wrong token count or a wrong row count.
	ErrShape = errors.New("textio: malformed system")

	// ErrEmptyInput is returned when the input holds no data lines.
	ErrEmptyInput = errors.New("textio: no data")
)

// SyntaxError reports the position of a bad token. Line and Column are
// 1-based; Column counts tokens, not bytes.
type SyntaxError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("textio: line %d, column %d: %v (near %q)", e.Line, e.Column, e.Err, e.Token)
}

// Unwrap exposes both ErrSyntax and the underlying parse error, so
// errors.Is works for ErrSyntax as well as rational.ErrOverflow and friends.
func (e *SyntaxError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

// shapeErrorf wraps ErrShape with a line-scoped message.
func shapeErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrShape)
}
