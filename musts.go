package bignum

import "fmt"

// MustParseInt is like [ParseInt] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInt(s string) Int {
	d, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q) failed: %v", s, err))
	}
	return d
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot
// be parsed. It simplifies safe initialization of global variables holding
// decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// MustQuo is like [Int.Quo] but panics if computing error.
func (d Int) MustQuo(e Int) Int {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Int.Rem] but panics if computing error.
func (d Int) MustRem(e Int) Int {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Int.Pow] but panics if computing error.
func (d Int) MustPow(power int) Int {
	f, err := d.Pow(power)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", power, err))
	}
	return f
}

// MustSqrt is like [Int.Sqrt] but panics if computing error.
func (d Int) MustSqrt() Int {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(power int) Decimal {
	f, err := d.Pow(power)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", power, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics if computing error.
func (d Decimal) MustSqrt() Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}
