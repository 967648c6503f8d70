// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// Matrix pretty-prints m with every entry as "num/den". A single row is
// enclosed in parentheses; taller matrices use "/ \" on the first row,
// "| |" in between and "\ /" on the last.
func Matrix(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	rows := make([][]rational.Rational, m.Rows())
	for i := range rows {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		rows[i] = row
	}

	return writeRows(w, rows)
}

func writeRows(w io.Writer, rows [][]rational.Rational) error {
	bw := bufio.NewWriter(w)
	last := len(rows) - 1
	for i, row := range rows {
		open, closing := brackets(i, last)
		bw.WriteByte(open)
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(fraction(v))
		}
		bw.WriteByte(closing)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// brackets picks the delimiters of row i out of rows 0..last.
func brackets(i, last int) (byte, byte) {
	switch {
	case last == 0:
		return '(', ')'
	case i == 0:
		return '/', '\\'
	case i == last:
		return '\\', '/'
	default:
		return '|', '|'
	}
}

// Solution writes one line per variable, numbered from 1:
//
//	The value of the variable 1 is: 0.5 (1/2).
func Solution(w io.Writer, xs []rational.Rational, o Options) error {
	bw := bufio.NewWriter(w)
	for i, x := range xs {
		fmt.Fprintf(bw, "The value of the variable %d is: %s (%s).\n", i+1, Decimal(x, o.Precision), fraction(x))
	}

	return bw.Flush()
}
