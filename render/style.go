// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ratgauss/rational"
)

// Options controls text rendering.
type Options struct {
	// Precision is the number of digits after the decimal point in
	// approximations. A negative value selects the shortest %g form with six
	// significant digits.
	Precision int
	// Color styles headings with ANSI colors.
	Color bool
}

// DefaultOptions returns %g approximations without color.
func DefaultOptions() Options { return Options{Precision: -1} }

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	// HeadingStyle renders section titles when Options.Color is set.
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// NoteStyle renders secondary lines (determinant, verification).
	NoteStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Heading writes title on its own line, styled when o.Color is set.
func Heading(w io.Writer, title string, o Options) error {
	if o.Color {
		title = HeadingStyle.Render(title)
	}
	_, err := fmt.Fprintln(w, title)

	return err
}

// note writes a secondary line, styled when o.Color is set.
func note(w io.Writer, text string, o Options) error {
	if o.Color {
		text = NoteStyle.Render(text)
	}
	_, err := fmt.Fprintln(w, text)

	return err
}

// Decimal formats x for display: FloatString(prec) for prec >= 0, the %g
// form of its float64 value otherwise.
func Decimal(x rational.Rational, prec int) string {
	if prec >= 0 {
		return x.FloatString(prec)
	}

	return strconv.FormatFloat(x.Float64(), 'g', 6, 64)
}

// fraction always shows the denominator ("2/1").
func fraction(x rational.Rational) string {
	return strconv.FormatInt(x.Num(), 10) + "/" + strconv.FormatUint(uint64(x.Den()), 10)
}
