package bignum

import (
	"errors"
	"fmt"
)

// Int is a representation of a signed integer of arbitrary magnitude.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An Int is a struct with two fields:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: an unsigned sequence of decimal digits holding the absolute
//     value of the integer.
//
// Every operation returns a new, normalized Int and never modifies its
// operands: high-order zero digits are stripped and the value 0 is never
// negative. Unlike fixed-size integers there is no overflow; operations
// that can fail for other reasons return an error.
type Int struct {
	neg bool // indicates whether the integer is negative
	mag nat  // the absolute value of the integer
}

var (
	// ErrInvalidNumber is returned when parsing a malformed numeric string.
	ErrInvalidNumber = errors.New("invalid number format")

	// ErrDivisionByZero is returned when the divisor of a division or
	// remainder operation is 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent is returned when a negative power is requested.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrNegativeOperand is returned when the square root of a negative
	// value is requested.
	ErrNegativeOperand = errors.New("negative operand")
)

var (
	intOne = Int{mag: nat{1}}
	intTwo = Int{mag: nat{2}}
)

// newInt constructs a normalized Int from a sign and a magnitude.
func newInt(neg bool, mag nat) Int {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

// NewInt returns an integer equal to i.
func NewInt(i int64) Int {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	return Int{neg: neg, mag: natFromUint64(u)}
}

// ParseInt converts a string to an integer.
// The input string must be in the following format:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// ParseInt removes leading zeros, so "007", "7", and "+7" all parse to the
// same value.
//
// ParseInt returns an error if the string is empty, contains no digits, or
// contains a character other than an optional leading sign and digits.
func ParseInt(s string) (Int, error) {
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

	// Digits, least significant first
	mag := make(nat, 0, width-pos)
	for i := width - 1; i >= pos; i-- {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, fmt.Errorf("invalid character %q: %w", s[i], ErrInvalidNumber)
		}
		mag = append(mag, s[i]-'0')
	}
	if len(mag) == 0 {
		return Int{}, fmt.Errorf("no digits: %w", ErrInvalidNumber)
	}

	return newInt(neg, mag), nil
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Int) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.mag.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Int) IsPos() bool {
	return !d.neg && !d.mag.isZero()
}

// IsNeg returns true if d < 0.
func (d Int) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Int) IsZero() bool {
	return d.mag.isZero()
}

// Neg returns d with the opposite sign.
func (d Int) Neg() Int {
	return newInt(!d.neg, d.mag)
}

// Abs returns the absolute value of d.
func (d Int) Abs() Int {
	return newInt(false, d.mag)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Int) Cmp(e Int) int {
	// Special case: different signs
	switch {
	case d.neg && !e.neg:
		return -1
	case !d.neg && e.neg:
		return 1
	}

	// General case: same sign, compare magnitudes
	r := d.mag.cmp(e.mag)
	if d.neg {
		return -r
	}
	return r
}

// Max returns the maximum of d and e.
func (d Int) Max(e Int) Int {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
func (d Int) Min(e Int) Int {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Add returns the sum of d and e.
func (d Int) Add(e Int) Int {
	// Same signs: magnitudes add, sign is the common sign.
	if d.neg == e.neg {
		return newInt(d.neg, d.mag.add(e.mag))
	}
	// Opposite signs: the smaller magnitude is subtracted from the larger,
	// the sign is taken from the larger-magnitude operand.
	switch d.mag.cmp(e.mag) {
	case 1:
		return newInt(d.neg, d.mag.sub(e.mag))
	case -1:
		return newInt(e.neg, e.mag.sub(d.mag))
	}
	return Int{}
}

// Sub returns the difference of d and e.
func (d Int) Sub(e Int) Int {
	// Opposite signs: magnitudes add, sign is the minuend's.
	if d.neg != e.neg {
		return newInt(d.neg, d.mag.add(e.mag))
	}
	// Same signs: the smaller magnitude is subtracted from the larger.
	switch d.mag.cmp(e.mag) {
	case 1:
		return newInt(d.neg, d.mag.sub(e.mag))
	case -1:
		return newInt(!e.neg, e.mag.sub(d.mag))
	}
	return Int{}
}

// Mul returns the product of d and e.
func (d Int) Mul(e Int) Int {
	return newInt(d.neg != e.neg, d.mag.mul(e.mag))
}

// Sqr returns the square of d.
func (d Int) Sqr() Int {
	return d.Mul(d)
}

// Quo returns the quotient of d and e truncated towards zero.
//
// Quo returns an error if e is 0.
func (d Int) Quo(e Int) (Int, error) {
	if e.IsZero() {
		return Int{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	return newInt(d.neg != e.neg, d.mag.quo(e.mag)), nil
}

// Rem returns the remainder of d and e, computed as d - (d / e) * e.
// The sign of the remainder follows the sign of the dividend d, matching
// the truncated quotient returned by [Int.Quo].
//
// Rem returns an error if e is 0.
func (d Int) Rem(e Int) (Int, error) {
	if e.IsZero() {
		return Int{}, fmt.Errorf("computing [%v %% %v]: %w", d, e, ErrDivisionByZero)
	}
	q, _ := d.Quo(e)
	r := d.Sub(q.Mul(e))
	return newInt(d.neg, r.mag), nil
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, with q truncated towards zero.
//
// QuoRem returns an error if e is 0.
func (d Int) QuoRem(e Int) (q, r Int, err error) {
	q, err = d.Quo(e)
	if err != nil {
		return Int{}, Int{}, err
	}
	r = d.Sub(q.Mul(e))
	return q, newInt(d.neg, r.mag), nil
}

// Pow returns d raised to the given power, computed by binary
// exponentiation. d.Pow(0) is 1 for every d, including 0.
//
// Pow returns an error if power is negative.
func (d Int) Pow(power int) (Int, error) {
	if power < 0 {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", d, power, ErrNegativeExponent)
	}
	result, base := intOne, d
	for power > 0 {
		if power%2 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		power /= 2
	}
	return result, nil
}

// Sqrt returns the square root of d, computed by a binary search narrowing
// the bounds [1, d] in steps of 1 until they cross. For a perfect square
// the root is exact, otherwise the result is the floor of the true root.
//
// Sqrt returns an error if d is negative.
func (d Int) Sqrt() (Int, error) {
	if d.IsNeg() {
		return Int{}, fmt.Errorf("computing sqrt(%v): %w", d, ErrNegativeOperand)
	}
	if d.IsZero() || d.Cmp(intOne) == 0 {
		return d, nil
	}

	low, high := intOne, d
	for low.Cmp(high) <= 0 {
		mid, _ := low.Add(high).Quo(intTwo)
		squared := mid.Sqr()
		switch squared.Cmp(d) {
		case 0:
			return mid, nil
		case -1:
			low = mid.Add(intOne)
		case 1:
			high = mid.Sub(intOne)
		}
	}
	return high, nil
}

// Lsh returns d * 10^n. If n is negative, Lsh is equivalent to
// d.Rsh(-n).
func (d Int) Lsh(n int) Int {
	if n < 0 {
		return d.Rsh(-n)
	}
	return newInt(d.neg, d.mag.lsh(n))
}

// Rsh returns d / 10^n truncated towards zero. If n is negative, Rsh is
// equivalent to d.Lsh(-n).
func (d Int) Rsh(n int) Int {
	if n < 0 {
		return d.Lsh(-n)
	}
	return newInt(d.neg, d.mag.rsh(n))
}

// String implements the [fmt.Stringer] interface and returns the canonical
// decimal representation of d: no leading zeros, with a leading '-' if and
// only if d is negative.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Int) String() string {
	digits := d.mag.utoa()
	if d.neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Int) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Int) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseInt(string(text))
	return err
}
