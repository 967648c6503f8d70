// SPDX-License-Identifier: MIT

package rational

import "math/bits"

// Add returns a + b.
//
// Implementation:
//   - Stage 1: equal denominators ⇒ combine the numerators directly.
//   - Stage 2: otherwise cross-multiply a.num*b.den ± b.num*a.den over
//     a.den*b.den; each product fits 64 bits, the sum is carried in hi:lo.
//   - Stage 3: reduce and narrow (narrow).
//
// Errors:
//   - ErrOverflow if the reduced result does not fit 32-bit terms.
//
// Complexity: O(log den).
func Add(a, b Rational) (Rational, error) {
	ad, bd := a.denom(), b.denom()
	if ad == bd {
		return combine(opAdd, a.neg, uint64(a.num), b.neg, uint64(b.num), ad)
	}

	return combine(opAdd, a.neg, uint64(a.num)*bd, b.neg, uint64(b.num)*ad, ad*bd)
}

// Sub returns a - b, computed directly rather than through Neg.
// Differing denominators are brought to their least common multiple
// (a.den/g * b.den with g = gcd) instead of their product, which keeps the
// intermediate terms as small as the inputs allow.
//
// Errors:
//   - ErrOverflow if the reduced result does not fit 32-bit terms.
//
// Complexity: O(log den).
func Sub(a, b Rational) (Rational, error) {
	ad, bd := a.denom(), b.denom()
	if ad == bd {
		return combine(opSub, a.neg, uint64(a.num), !b.neg, uint64(b.num), ad)
	}
	g := GCD(ad, bd)

	return combine(opSub, a.neg, uint64(a.num)*(bd/g), !b.neg, uint64(b.num)*(ad/g), ad/g*bd)
}

// Mul returns a * b. The sign is the XOR of the operand signs.
//
// Errors:
//   - ErrOverflow if the reduced result does not fit 32-bit terms.
func Mul(a, b Rational) (Rational, error) {
	return narrow(opMul, a.neg != b.neg, 0, uint64(a.num)*uint64(b.num), a.denom()*b.denom())
}

// Inv returns 1/a with the sign preserved.
// Inverting zero is undefined and returns ErrZeroInverse; callers that can
// recover should check IsZero first.
func Inv(a Rational) (Rational, error) {
	if a.num == 0 {
		return Rational{}, rationalErrorf(opInv, ErrZeroInverse)
	}
	// swapping coprime terms keeps them coprime; den <= MaxUint32 fits num
	return Rational{neg: a.neg, num: uint32(a.denom()), dm1: a.num - 1}, nil
}

// Quo returns a / b.
//
// Errors:
//   - ErrZeroInverse if b == 0.
//   - ErrOverflow as for Mul.
func Quo(a, b Rational) (Rational, error) {
	inv, err := Inv(b)
	if err != nil {
		return Rational{}, rationalErrorf(opQuo, err)
	}
	q, err := Mul(a, inv)
	if err != nil {
		return Rational{}, rationalErrorf(opQuo, err)
	}

	return q, nil
}

// Neg returns -a. Zero stays non-negative.
func Neg(a Rational) Rational {
	if a.num == 0 {
		return Rational{}
	}
	a.neg = !a.neg

	return a
}

// Abs returns |a|.
func Abs(a Rational) Rational {
	a.neg = false

	return a
}

// Cmp returns -1, 0 or +1 when a is less than, equal to or greater than b.
// Opposite signs decide by sign alone; equal signs compare magnitudes and
// invert the result when both are negative.
// Complexity: O(1).
func Cmp(a, b Rational) int {
	sa, sb := a.Sign(), b.Sign()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case sa == 0:
		return 0
	}
	c := CmpAbs(a, b)
	if sa < 0 {
		return -c
	}

	return c
}

// CmpAbs compares |a| and |b| by cross-multiplication in 64 bits, which
// cannot overflow for 32-bit terms.
func CmpAbs(a, b Rational) int {
	l := uint64(a.num) * b.denom()
	r := uint64(b.num) * a.denom()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Simplify reduces a to canonical form and reports whether the
// representation changed. It is idempotent: Simplify of a canonical value
// returns (a, false). A zero numerator forces 0/1 with a cleared sign.
func Simplify(a Rational) (Rational, bool) {
	if a.num == 0 {
		return Rational{}, a.neg || a.dm1 != 0
	}
	d := a.denom()
	g := GCD(uint64(a.num), d)
	if g == 1 {
		return a, false
	}

	return Rational{neg: a.neg, num: a.num / uint32(g), dm1: uint32(d/g - 1)}, true
}

// combine adds two signed magnitudes x and y over a shared denominator.
// Signs are tracked apart from the magnitudes: equal signs add (with carry
// into hi), opposite signs subtract the smaller magnitude from the larger.
func combine(tag string, xneg bool, x uint64, yneg bool, y uint64, den uint64) (Rational, error) {
	if xneg == yneg {
		lo, carry := bits.Add64(x, y, 0)
		return narrow(tag, xneg, carry, lo, den)
	}
	if x >= y {
		return narrow(tag, xneg, 0, x-y, den)
	}

	return narrow(tag, yneg, 0, y-x, den)
}
