package bignum

import "testing"

// mag parses a digit string into a magnitude, least significant digit first.
func mag(s string) nat {
	return MustParseInt(s).mag
}

func TestNat_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"0", "1", -1},
		{"1", "0", 1},
		{"9", "10", -1},
		{"10", "9", 1},
		{"123", "123", 0},
		{"123", "124", -1},
		{"1000000000000000000000", "999999999999999999999", 1},
	}
	for _, tt := range tests {
		x, y := mag(tt.x), mag(tt.y)
		if got := x.cmp(y); got != tt.want {
			t.Errorf("cmp(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNat_Add(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "7", "7"},
		{"7", "0", "7"},
		{"1", "9", "10"},
		{"5", "5", "10"},
		{"999", "1", "1000"},
		{"999999999", "999999999", "1999999998"},
		{"123", "877", "1000"},
	}
	for _, tt := range tests {
		x, y := mag(tt.x), mag(tt.y)
		if got := x.add(y); string(got.utoa()) != tt.want {
			t.Errorf("add(%q, %q) = %q, want %q", tt.x, tt.y, got.utoa(), tt.want)
		}
	}
}

func TestNat_Sub(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"7", "7", "0"},
		{"10", "1", "9"},
		{"1000", "1", "999"},
		{"1000000", "999999", "1"},
		{"10000000000000000000", "1", "9999999999999999999"},
		{"54321", "12345", "41976"},
	}
	for _, tt := range tests {
		x, y := mag(tt.x), mag(tt.y)
		if got := x.sub(y); string(got.utoa()) != tt.want {
			t.Errorf("sub(%q, %q) = %q, want %q", tt.x, tt.y, got.utoa(), tt.want)
		}
	}
}

func TestNat_Mul(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "123", "0"},
		{"123", "0", "0"},
		{"1", "123", "123"},
		{"9", "9", "81"},
		{"99", "99", "9801"},
		{"12345", "6789", "83810205"},
		{"999999999999", "999999999999", "999999999998000000000001"},
	}
	for _, tt := range tests {
		x, y := mag(tt.x), mag(tt.y)
		if got := x.mul(y); string(got.utoa()) != tt.want {
			t.Errorf("mul(%q, %q) = %q, want %q", tt.x, tt.y, got.utoa(), tt.want)
		}
	}
}

func TestNat_Quo(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "7", "0"},
		{"6", "7", "0"},
		{"7", "7", "1"},
		{"100", "7", "14"},
		{"10000", "3", "3333"},
		{"999999", "999", "1001"},
		{"121932631112635269", "123456789", "987654321"},
		{"1000000000000000000000000", "1000000000000", "1000000000000"},
	}
	for _, tt := range tests {
		x, y := mag(tt.x), mag(tt.y)
		if got := x.quo(y); string(got.utoa()) != tt.want {
			t.Errorf("quo(%q, %q) = %q, want %q", tt.x, tt.y, got.utoa(), tt.want)
		}
	}
}

func TestNat_LshRsh(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		lsh   string
		rsh   string
	}{
		{"0", 3, "0", "0"},
		{"123", 0, "123", "123"},
		{"123", 2, "12300", "1"},
		{"123", 3, "123000", "0"},
		{"10203", 1, "102030", "1020"},
	}
	for _, tt := range tests {
		x := mag(tt.x)
		if got := x.lsh(tt.shift); string(got.utoa()) != tt.lsh {
			t.Errorf("lsh(%q, %v) = %q, want %q", tt.x, tt.shift, got.utoa(), tt.lsh)
		}
		if got := x.rsh(tt.shift); string(got.utoa()) != tt.rsh {
			t.Errorf("rsh(%q, %v) = %q, want %q", tt.x, tt.shift, got.utoa(), tt.rsh)
		}
	}
}

func TestNat_Norm(t *testing.T) {
	// Trailing entries in the slice are the most significant digits, so
	// normalization strips high zeros and empties all-zero magnitudes.
	x := nat{1, 2, 0, 0}
	if got := x.norm(); string(got.utoa()) != "21" {
		t.Errorf("norm = %q, want %q", got.utoa(), "21")
	}
	y := nat{0, 0}
	if got := y.norm(); !got.isZero() {
		t.Errorf("norm of zeros is not zero")
	}
}

func TestNatFromUint64(t *testing.T) {
	tests := []struct {
		u    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, tt := range tests {
		got := natFromUint64(tt.u)
		if string(got.utoa()) != tt.want {
			t.Errorf("natFromUint64(%v) = %q, want %q", tt.u, got.utoa(), tt.want)
		}
	}
}
