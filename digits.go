package bignum

// nat is an unsigned multi-precision integer stored as a slice of decimal
// digits, least significant digit first. Every element is in the range [0, 9]
// and the most significant digit is never 0. The canonical representation of
// zero is the empty (or nil) slice.
//
// All methods are non-mutating: they allocate and return a fresh, normalized
// slice and never write through the receiver or their arguments.
type nat []byte

// norm strips high-order zero digits and returns the canonical slice.
func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// isZero reports whether x is the canonical zero.
func (x nat) isZero() bool {
	return len(x) == 0
}

// cmp compares the magnitudes of x and y:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both operands must be normalized.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y digit by digit with carry propagation.
func (x nat) add(y nat) nat {
	z := make(nat, max(len(x), len(y))+1)
	carry := byte(0)
	for i := range z {
		sum := carry
		if i < len(x) {
			sum += x[i]
		}
		if i < len(y) {
			sum += y[i]
		}
		z[i] = sum % 10
		carry = sum / 10
	}
	return z.norm()
}

// sub calculates x - y digit by digit with borrow propagation.
// sub assumes x >= y.
func (x nat) sub(y nat) nat {
	z := make(nat, len(x))
	borrow := byte(0)
	for i := range x {
		d := int8(x[i]) - int8(borrow)
		if i < len(y) {
			d -= int8(y[i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
	}
	return z.norm()
}

// mul calculates x * y using the schoolbook algorithm, accumulating
// x[i]*y[j] into position i+j.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i := range x {
		carry := 0
		for j := 0; j < len(y) || carry != 0; j++ {
			sum := int(z[i+j]) + carry
			if j < len(y) {
				sum += int(x[i]) * int(y[j])
			}
			z[i+j] = byte(sum % 10)
			carry = sum / 10
		}
	}
	return z.norm()
}

// quo calculates the quotient of x / y truncated towards zero using long
// division: the dividend is consumed from the most significant digit down,
// and each quotient digit is the largest q in [0, 9] with y*q <= remainder,
// found by binary search.
// quo assumes y is not zero.
func (x nat) quo(y nat) nat {
	z := make(nat, len(x))
	var rem nat
	for i := len(x) - 1; i >= 0; i-- {
		rem = append(nat{x[i]}, rem...).norm()
		q := byte(0)
		lo, hi := 0, 10
		for lo <= hi {
			m := (lo + hi) / 2
			if y.mulDigit(byte(m)).cmp(rem) <= 0 {
				q = byte(m)
				lo = m + 1
			} else {
				hi = m - 1
			}
		}
		z[i] = q
		rem = rem.sub(y.mulDigit(q))
	}
	return z.norm()
}

// mulDigit calculates x * d for a single digit d.
func (x nat) mulDigit(d byte) nat {
	if d == 0 || x.isZero() {
		return nil
	}
	z := make(nat, len(x)+1)
	carry := byte(0)
	for i := range x {
		sum := x[i]*d + carry
		z[i] = sum % 10
		carry = sum / 10
	}
	z[len(x)] = carry
	return z.norm()
}

// lsh calculates x * 10^shift by prepending zero digits.
// lsh assumes shift >= 0.
func (x nat) lsh(shift int) nat {
	if x.isZero() || shift == 0 {
		return x
	}
	z := make(nat, len(x)+shift)
	copy(z[shift:], x)
	return z
}

// rsh calculates x / 10^shift truncated towards zero by dropping the
// shift least significant digits.
// rsh assumes shift >= 0.
func (x nat) rsh(shift int) nat {
	if shift >= len(x) {
		return nil
	}
	z := make(nat, len(x)-shift)
	copy(z, x[shift:])
	return z.norm()
}

// utoa renders x as decimal text, most significant digit first.
func (x nat) utoa() []byte {
	if x.isZero() {
		return []byte{'0'}
	}
	buf := make([]byte, len(x))
	for i, d := range x {
		buf[len(x)-1-i] = d + '0'
	}
	return buf
}

// natFromUint64 converts u to digit form.
func natFromUint64(u uint64) nat {
	var z nat
	for ; u > 0; u /= 10 {
		z = append(z, byte(u%10))
	}
	return z
}
