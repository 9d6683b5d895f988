package bignum

import "fmt"

// Decimal is a representation of a floating-point decimal number of
// arbitrary magnitude and precision.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A Decimal is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Mantissa: a non-negative integer holding the significant digits of
//     the decimal without the decimal point.
//   - Exponent: an integer indicating the power of ten scaling the mantissa.
//
// The numerical value of a decimal is calculated as:
//
//   - -Mantissa * 10^Exponent, if Sign is true.
//   - Mantissa * 10^Exponent, if Sign is false.
//
// For example, a decimal with a mantissa of 12345 and an exponent of -2
// represents the value 123.45.
// In this approach, the same numeric value can have multiple representations.
// For example, 150 * 10^-2 and 15 * 10^-1 both represent the value 1.5;
// operations preserve the exponent produced by their defining arithmetic
// rather than reducing to the shortest form, so parsing "1.50" keeps two
// fractional digits.
//
// There is no fixed precision and no rounding: every operation except
// division is exact, and division truncates the mantissa quotient towards
// zero. Special values such as NaN, Infinity, or negative zeros are not
// supported.
type Decimal struct {
	neg  bool // indicates whether the decimal is negative
	exp  int  // the power of ten scaling the mantissa
	mant nat  // the mantissa of the decimal
}

var (
	decOne = Decimal{mant: nat{1}}
	decTwo = Decimal{mant: nat{2}}
)

// newDecimal constructs a normalized Decimal from a sign, a mantissa, and
// an exponent. A zero mantissa collapses the exponent and the sign.
func newDecimal(neg bool, mant nat, exp int) Decimal {
	mant = mant.norm()
	if mant.isZero() {
		return Decimal{}
	}
	return Decimal{neg: neg, exp: exp, mant: mant}
}

// NewDecimal returns a decimal equal to mant * 10^exp.
func NewDecimal(mant int64, exp int) Decimal {
	neg := mant < 0
	u := uint64(mant)
	if neg {
		u = -u
	}
	return newDecimal(neg, natFromUint64(u), exp)
}

// ParseDecimal converts a string to a decimal.
// The input string must be in the following format:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// The number of digits after the decimal point becomes the negated exponent,
// so "1.50" parses to mantissa 150 and exponent -2. Scientific notation is
// not accepted.
//
// ParseDecimal returns an error if the string does not contain at least one
// digit or contains an unexpected character.
func ParseDecimal(s string) (Decimal, error) {
	pos, width := 0, len(s)

	// Sign
	neg := false
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Significand, most significant digit first
	digits := make([]byte, 0, width-pos)
	frac := 0
	dot := false
	for ; pos < width; pos++ {
		switch c := s[pos]; {
		case c == '.':
			if dot {
				return Decimal{}, fmt.Errorf("unexpected %q: %w", c, ErrInvalidNumber)
			}
			dot = true
		case c >= '0' && c <= '9':
			digits = append(digits, c-'0')
			if dot {
				frac++
			}
		default:
			return Decimal{}, fmt.Errorf("invalid character %q: %w", c, ErrInvalidNumber)
		}
	}
	if len(digits) == 0 {
		return Decimal{}, fmt.Errorf("no digits: %w", ErrInvalidNumber)
	}

	// The fractional digits are the least significant part of the mantissa.
	mant := make(nat, len(digits))
	for i, d := range digits {
		mant[len(digits)-1-i] = d
	}

	return newDecimal(neg, mant, -frac), nil
}

// Mantissa returns the signed mantissa of d, so that d is exactly
// the mantissa scaled by 10 to the power of [Decimal.Exp].
func (d Decimal) Mantissa() Int {
	return newInt(d.neg, d.mant)
}

// Exp returns the exponent of d.
func (d Decimal) Exp() int {
	return d.exp
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.mant.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.mant.isZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.mant.isZero()
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.neg, d.mant, d.exp)
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.mant, d.exp)
}

// align brings the mantissas of d and e to a common exponent: the operand
// with the larger exponent has its mantissa shifted left by the exponent
// difference, so that both share the smaller exponent and mantissa-level
// arithmetic preserves the represented values.
func (d Decimal) align(e Decimal) (dm, em nat, exp int) {
	switch {
	case d.exp == e.exp:
		return d.mant, e.mant, d.exp
	case d.exp > e.exp:
		return d.mant.lsh(d.exp - e.exp), e.mant, e.exp
	}
	return d.mant, e.mant.lsh(e.exp - d.exp), d.exp
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case: same sign, compare aligned mantissas
	dm, em, _ := d.align(e)
	r := dm.cmp(em)
	if d.neg {
		return -r
	}
	return r
}

// Max returns the maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Add returns the sum of d and e.
// The exponent of the result is the smaller of the exponents of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	dm, em, exp := d.align(e)
	sum := Int{neg: d.neg, mag: dm}.Add(Int{neg: e.neg, mag: em})
	return newDecimal(sum.neg, sum.mag, exp)
}

// Sub returns the difference of d and e.
// The exponent of the result is the smaller of the exponents of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the product of d and e.
// The mantissas multiply and the exponents add; no alignment is needed.
func (d Decimal) Mul(e Decimal) Decimal {
	return newDecimal(d.neg != e.neg, d.mant.mul(e.mant), d.exp+e.exp)
}

// Sqr returns the square of d.
func (d Decimal) Sqr() Decimal {
	return d.Mul(d)
}

// Quo returns the quotient of d and e.
// The mantissa of the result is the quotient of the mantissas truncated
// towards zero, exactly as [Int.Quo] computes it, and the exponent is the
// difference of the exponents. The result is not a rounded decimal division:
// 10 divided by 4 is 2, because mantissa 10 divided by mantissa 4 is 2.
//
// Quo returns an error if e is 0.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	return newDecimal(d.neg != e.neg, d.mant.quo(e.mant), d.exp-e.exp), nil
}

// Pow returns d raised to the given power, computed by binary
// exponentiation. d.Pow(0) is 1 for every d, including 0.
//
// Pow returns an error if power is negative.
func (d Decimal) Pow(power int) (Decimal, error) {
	if power < 0 {
		return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", d, power, ErrNegativeExponent)
	}
	result, base := decOne, d
	for power > 0 {
		if power%2 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		power /= 2
	}
	return result, nil
}

// Sqrt returns the square root of d, computed by a binary search that
// narrows the bounds [1, d] in whole steps of 1 until they cross, halving
// with the truncating [Decimal.Quo]. For a perfect square the root is
// exact. For other inputs the unit step does not refine fractional digits,
// so the result is only pinned by the bound Sqrt(d).Sqr() <= d: for
// example, Sqrt(2.25) is 0.62 and any input below 1 is returned unchanged.
//
// Sqrt returns an error if d is negative.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNeg() {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w", d, ErrNegativeOperand)
	}
	if d.IsZero() || d.Cmp(decOne) == 0 {
		return d, nil
	}

	low, high := decOne, d
	for low.Cmp(high) <= 0 {
		mid, _ := low.Add(high).Quo(decTwo)
		squared := mid.Sqr()
		switch squared.Cmp(d) {
		case 0:
			return mid, nil
		case -1:
			low = mid.Add(decOne)
		case 1:
			high = mid.Sub(decOne)
		}
	}
	return high, nil
}

// String implements the [fmt.Stringer] interface and returns the canonical
// decimal representation of d. A negative exponent places a decimal point
// within the mantissa digits, padding with a leading "0." and zeros when
// the point falls before the first digit; a non-negative exponent appends
// that many zeros. The '-' prefix is emitted if and only if d is negative.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	if d.mant.isZero() {
		return "0"
	}

	digits := d.mant.utoa()
	buf := make([]byte, 0, len(digits)+8)
	if d.neg {
		buf = append(buf, '-')
	}

	switch point := len(digits) + d.exp; {
	case d.exp >= 0:
		buf = append(buf, digits...)
		for i := 0; i < d.exp; i++ {
			buf = append(buf, '0')
		}
	case point <= 0:
		buf = append(buf, '0', '.')
		for i := 0; i < -point; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	default:
		buf = append(buf, digits[:point]...)
		buf = append(buf, '.')
		buf = append(buf, digits[point:]...)
	}

	return string(buf)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	return err
}
