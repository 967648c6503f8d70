// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/ratgauss/rational"

// Tridiagonal builds the 1-D discrete Laplacian: 2 on the diagonal and -1
// on the first sub- and super-diagonals (n ≥ 1). Its determinant is n+1.
// Complexity: O(n²).
func Tridiagonal(n int) Constructor {
	return func(_ builderConfig) ([][]rational.Rational, error) {
		if err := validateSize(MethodTridiagonal, n); err != nil {
			return nil, err
		}
		two, minusOne := rational.FromInt(2), rational.FromInt(-1)
		rows := square(n)
		for i := range rows {
			rows[i][i] = two
			if i > 0 {
				rows[i][i-1] = minusOne
			}
			if i+1 < n {
				rows[i][i+1] = minusOne
			}
		}

		return rows, nil
	}
}
