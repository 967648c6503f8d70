// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Rational is an exact fraction: sign flag, numerator magnitude and
// denominator magnitude.
//   - neg is true for negative values; zero is never negative.
//   - num is the numerator magnitude.
//   - dm1 is den-1 so that the zero value of Rational is 0/1.
//
// Rational has value semantics. Operations never mutate their operands.
type Rational struct {
	neg bool   // sign flag (true = negative)
	num uint32 // |numerator|
	dm1 uint32 // denominator - 1 (denominator is always >= 1)
}

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = Rational{}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Rational{}
	One  = Rational{num: 1}
)

// FromInt converts n to n/1.
// math.MinInt32 is handled without negating it: for n < 0 the magnitude is
// computed as ^n + 1 in the unsigned domain.
// Complexity: O(1).
func FromInt(n int32) Rational {
	if n < 0 {
		return Rational{neg: true, num: uint32(^n) + 1}
	}

	return Rational{num: uint32(n)}
}

// New returns num/den reduced to lowest terms.
//
// Errors:
//   - ErrZeroDenominator if den == 0.
//   - ErrOverflow if the reduced terms do not fit 32 bits.
//
// Complexity: O(log(max(|num|, |den|))).
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rationalErrorf(opNew, ErrZeroDenominator)
	}
	neg := (num < 0) != (den < 0)

	return narrow(opNew, neg, 0, abs64(num), abs64(den))
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// Raw builds a Rational from its parts WITHOUT reducing it.
// The result may violate canonical form; pass it through Simplify before
// using it with ==. Raw panics when den == 0 (programmer error).
func Raw(negative bool, num, den uint32) Rational {
	if den == 0 {
		panic("rational: Raw: zero denominator")
	}

	return Rational{neg: negative, num: num, dm1: den - 1}
}

// Negative reports the sign flag.
func (r Rational) Negative() bool { return r.neg }

// Magnitude returns |numerator|.
func (r Rational) Magnitude() uint32 { return r.num }

// Num returns the signed numerator. It always fits int64.
func (r Rational) Num() int64 {
	if r.neg {
		return -int64(r.num)
	}

	return int64(r.num)
}

// Den returns the denominator (always >= 1).
func (r Rational) Den() uint32 { return r.dm1 + 1 }

// denom returns the denominator widened to 64 bits.
func (r Rational) denom() uint64 { return uint64(r.dm1) + 1 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num == 0:
		return 0
	case r.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.dm1 == 0 }

// Equal reports whether r and o denote the same number. Unlike ==, it also
// works for values produced by Raw that were never simplified.
func (r Rational) Equal(o Rational) bool { return Cmp(r, o) == 0 }

// String formats r as "num/den", or "num" when the denominator is 1.
func (r Rational) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.Num(), 10)
	}

	return strconv.FormatInt(r.Num(), 10) + "/" + strconv.FormatUint(r.denom(), 10)
}

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 {
	f := float64(r.num) / float64(r.denom())
	if r.neg {
		return -f
	}

	return f
}

// FloatString returns r in decimal notation with prec digits after the
// point, rounded half away from zero. A value that rounds to zero is printed
// without a minus sign. prec < 0 is treated as 0.
// Complexity: O(prec).
func (r Rational) FloatString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	den := r.denom()
	q, rem := uint64(r.num)/den, uint64(r.num)%den

	digits := make([]byte, prec)
	for i := 0; i < prec; i++ {
		rem *= 10 // rem < den <= 2^32, no overflow
		digits[i] = byte('0' + rem/den)
		rem %= den
	}
	// round half away from zero on the first dropped digit
	if 2*rem >= den {
		i := prec - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			q++
		}
	}

	var sb strings.Builder
	if r.neg && (q != 0 || strings.Trim(string(digits), "0") != "") {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(q, 10))
	if prec > 0 {
		sb.WriteByte('.')
		sb.Write(digits)
	}

	return sb.String()
}

// Parse reads "n", "-n", "+n" or "p/q" (optional sign on either term) and
// returns the reduced value.
//
// Errors:
//   - ErrSyntax for malformed text.
//   - ErrZeroDenominator, ErrOverflow as for New.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numText, denText, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%w: %q", ErrSyntax, s))
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(denText, 10, 64)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, fmt.Errorf("%w: %q", ErrSyntax, s))
		}
	}

	return New(num, den)
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// narrow reduces the non-negative value (hi:lo)/den and narrows it to 32-bit
// terms. It is the single exit point of every arithmetic operation, so all
// results leave the package in canonical form.
//
// Implementation:
//   - Stage 1: zero numerator ⇒ canonical zero.
//   - Stage 2: g = gcd(den, (hi:lo) mod den) == gcd(hi:lo, den).
//   - Stage 3: the quotient (hi:lo)/g must fit 64 bits (hi < g), then both
//     reduced terms must fit 32 bits.
//
// den must be non-zero.
func narrow(tag string, neg bool, hi, lo, den uint64) (Rational, error) {
	if hi == 0 && lo == 0 {
		return Rational{}, nil
	}
	g := GCD(den, bits.Rem64(hi, lo, den))
	if hi >= g {
		return Rational{}, rationalErrorf(tag, ErrOverflow)
	}
	q, _ := bits.Div64(hi, lo, g)
	d := den / g
	if q > math.MaxUint32 || d > math.MaxUint32 {
		return Rational{}, rationalErrorf(tag, ErrOverflow)
	}

	return Rational{neg: neg, num: uint32(q), dm1: uint32(d - 1)}, nil
}

// abs64 returns |x| in the unsigned domain; math.MinInt64 is handled.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(^x) + 1
	}

	return uint64(x)
}
