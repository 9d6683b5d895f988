package bignum_test

import (
	"fmt"

	"github.com/govalues/bignum"
)

// This example computes the factorial of 30, which does not fit any
// machine-sized integer.
func Example() {
	f := bignum.NewInt(1)
	for i := int64(2); i <= 30; i++ {
		f = f.Mul(bignum.NewInt(i))
	}
	fmt.Println(f)
	// Output:
	// 265252859812191058636308480000000
}

func ExampleParseInt() {
	d, err := bignum.ParseInt("-007")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// -7
}

func ExampleParseDecimal() {
	d, err := bignum.ParseDecimal("1.50")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 1.50
}

func ExampleInt_Add() {
	d := bignum.MustParseInt("123")
	e := bignum.MustParseInt("877")
	fmt.Println(d.Add(e))
	// Output:
	// 1000
}

func ExampleInt_Mul() {
	d := bignum.MustParseInt("999999999999")
	fmt.Println(d.Mul(d))
	// Output:
	// 999999999998000000000001
}

func ExampleInt_QuoRem() {
	d := bignum.MustParseInt("100")
	e := bignum.MustParseInt("7")
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(err)
	}
	fmt.Println(q, r)
	// Output:
	// 14 2
}

func ExampleInt_Pow() {
	d := bignum.MustParseInt("2")
	fmt.Println(d.MustPow(64))
	// Output:
	// 18446744073709551616
}

func ExampleInt_Sqrt() {
	d := bignum.MustParseInt("99980001")
	fmt.Println(d.MustSqrt())
	// Output:
	// 9999
}

func ExampleDecimal_Add() {
	d := bignum.MustParseDecimal("1.5")
	e := bignum.MustParseDecimal("2.25")
	fmt.Println(d.Add(e))
	// Output:
	// 3.75
}

func ExampleDecimal_Quo() {
	d := bignum.MustParseDecimal("10")
	e := bignum.MustParseDecimal("4")
	fmt.Println(d.MustQuo(e))
	// Output:
	// 2
}

func ExampleDecimal_Sqrt() {
	d := bignum.MustParseDecimal("9")
	fmt.Println(d.MustSqrt())
	// Output:
	// 3
}

func ExampleDecimal_Cmp() {
	d := bignum.MustParseDecimal("1.5")
	e := bignum.MustParseDecimal("1.50")
	fmt.Println(d.Cmp(e))
	// Output:
	// 0
}
