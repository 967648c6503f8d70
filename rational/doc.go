// SPDX-License-Identifier: MIT

// Package rational provides an exact, fixed-width rational number type.
//
// What & Why:
//
//	Rational stores a sign flag plus an unsigned 32-bit numerator and an
//	unsigned 32-bit denominator. Every arithmetic result is reduced to lowest
//	terms before it is returned, so two equal values always share the same
//	representation and can be compared with ==.
//
//	There is no silent wrap-around. Products of two magnitudes are formed in
//	64 bits, sums of such products in a 128-bit hi:lo pair (math/bits), the
//	result is reduced by its gcd and only then narrowed back to 32 bits. A
//	result that still does not fit is reported as ErrOverflow.
//
// Canonical form:
//
//   - gcd(num, den) == 1
//   - num == 0 ⇒ den == 1 and the value is non-negative
//   - den > 0 always (the zero value of Rational is 0/1 and is valid)
//
// Usage:
//
//	a := rational.FromInt(8)
//	b, _ := rational.New(4, 6)
//	d, err := rational.Sub(a, b) // 22/3
//	if errors.Is(err, rational.ErrOverflow) {
//		// input magnitudes are too large for 32-bit terms
//	}
//
// Complexity:
//
//	Every operation is O(log(max(num, den))) because of the gcd reduction.
package rational
