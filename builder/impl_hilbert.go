// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/ratgauss/rational"
)

// Hilbert builds H[i][j] = 1/(i+j+1) (n ≥ 1). Hilbert systems are
// non-singular but badly conditioned; intermediate fractions grow fast, so
// beyond a handful of rows elimination is expected to report
// rational.ErrOverflow instead of a wrong answer.
// Complexity: O(n²).
func Hilbert(n int) Constructor {
	return func(_ builderConfig) ([][]rational.Rational, error) {
		if err := validateSize(MethodHilbert, n); err != nil {
			return nil, err
		}
		rows := square(n)
		for i := range rows {
			for j := range rows[i] {
				rows[i][j] = rational.Raw(false, 1, uint32(i+j+1))
			}
		}

		return rows, nil
	}
}
