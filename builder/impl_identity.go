// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/ratgauss/rational"

// Identity builds the n×n identity (n ≥ 1). The solved system is b itself.
// Complexity: O(n²).
func Identity(n int) Constructor {
	return func(_ builderConfig) ([][]rational.Rational, error) {
		if err := validateSize(MethodIdentity, n); err != nil {
			return nil, err
		}
		rows := square(n)
		for i := range rows {
			rows[i][i] = rational.One
		}

		return rows, nil
	}
}
