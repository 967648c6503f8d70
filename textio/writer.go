// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"io"

	"github.com/katalvlaran/ratgauss/matrix"
)

// WriteSystem writes m one row per line, entries separated by a single
// space, in the format ReadSystem accepts. Integral entries are written
// without a denominator.
func WriteSystem(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(v.String())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
