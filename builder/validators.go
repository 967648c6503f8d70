// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

// validateSize ensures n >= MinSize.
func validateSize(method string, n int) error {
	if n < MinSize {
		return builderErrorf(method, fmt.Errorf("n=%d < min=%d: %w", n, MinSize, ErrTooSmall))
	}

	return nil
}

// validateBound ensures that n terms of magnitude maxAbs, plus slack, still
// fit an int32 coefficient.
func validateBound(method string, n int, maxAbs int32) error {
	if int64(n)*int64(maxAbs)+int64(maxAbs)+1 > math.MaxInt32 {
		return builderErrorf(method, fmt.Errorf("n=%d, maxAbs=%d: %w", n, maxAbs, ErrInvalidBound))
	}

	return nil
}
