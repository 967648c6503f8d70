// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// maxLine bounds a single input line; wide systems need more than
// bufio's 64 KiB default.
const maxLine = 1 << 20

// ReadSystem parses an augmented n×(n+1) system from r.
//
// Errors:
//   - ErrEmptyInput when r holds no data lines.
//   - ErrShape for a short first row, a row of the wrong width, or a wrong
//     number of rows.
//   - *SyntaxError (errors.Is ErrSyntax) for a malformed or out-of-range
//     token.
//   - I/O errors from r, wrapped.
func ReadSystem(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var (
		rows   [][]rational.Rational
		n      = -1
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if n < 0 {
			n = len(fields) - 1
			if n < 1 {
				return nil, shapeErrorf(lineNo, "first row has %d token(s), need at least 2", len(fields))
			}
			rows = make([][]rational.Rational, 0, n)
		}
		if len(fields) != n+1 {
			return nil, shapeErrorf(lineNo, "row has %d tokens, want %d", len(fields), n+1)
		}
		if len(rows) == n {
			return nil, shapeErrorf(lineNo, "more than %d rows", n)
		}

		row := make([]rational.Rational, n+1)
		for j, tok := range fields {
			v, err := rational.Parse(tok)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Column: j + 1, Token: tok, Err: err}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read line %d: %w", lineNo+1, err)
	}
	if n < 0 {
		return nil, ErrEmptyInput
	}
	if len(rows) != n {
		return nil, shapeErrorf(lineNo, "got %d rows, want %d", len(rows), n)
	}

	return matrix.FromRows(rows)
}

// ReadFile opens path and parses it with ReadSystem.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: %w", err)
	}
	defer f.Close()

	m, err := ReadSystem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
