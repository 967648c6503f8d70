// SPDX-License-Identifier: MIT

package rational

import "math/bits"

// GCD returns the greatest common divisor of a and b using the binary
// (Stein) algorithm. GCD(0, x) == x and GCD(0, 0) == 0.
func GCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	// common power of two, restored at the end
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a // both odd, difference is even
	}

	return a << shift
}

// LCM returns the least common multiple of a and b, or ErrOverflow when it
// does not fit in 64 bits. LCM(0, x) == 0.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, rationalErrorf(opLCM, ErrOverflow)
	}

	return lo, nil
}
