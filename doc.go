/*
Package bignum implements immutable integers and decimals of arbitrary
magnitude with exact decimal arithmetic.
It is designed for computations whose operands or results exceed the range
of native machine words and must not lose precision.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of decimal digits, least significant first,
    holding the absolute value of the integer.

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Mantissa: a non-negative integer holding the significant digits of the
    decimal without the decimal point.
  - Exponent: an integer indicating the power of ten scaling the mantissa.
    For example, a decimal with a mantissa of 12345 and an exponent of -2
    represents the value 123.45.

Both types are normalized after every operation: the magnitude carries no
high-order zero digits, the value 0 is never negative, and a zero mantissa
resets the exponent to 0. The zero value of either type is the numeric
value 0 and is ready to use.

The same decimal numeric value can have multiple representations: 1.5 can
be held as mantissa 15 with exponent -1 or mantissa 150 with exponent -2.
Operations keep the exponent dictated by their arithmetic instead of
reducing to the shortest form, so fractional trailing zeros survive a
parse/format round trip ("1.50" formats as "1.50").

# Operations

All methods are pure: operands are never modified and every operation
returns a freshly constructed value, which also makes distinct values safe
for concurrent use.

Integer arithmetic is performed digit by digit: addition and subtraction
with carry/borrow propagation, multiplication with the schoolbook
double loop, and division by decimal long division with a per-digit binary
search, truncating towards zero. [Int.Rem] follows the sign of the
dividend, matching the truncated quotient. [Int.Pow] uses binary
exponentiation, and [Int.Sqrt] a binary search over the magnitude.

Decimal arithmetic is expressed entirely through integer arithmetic on
mantissas. Addition, subtraction, and comparison first bring both operands
to a common exponent by shifting the larger-exponent mantissa left;
multiplication and division combine mantissas and exponents directly.
There is no fixed precision and no rounding: only [Decimal.Quo] discards
information, by truncating the mantissa quotient.

# Conversions

The package provides conversions from/to string ([ParseInt],
[ParseDecimal], [Int.String], [Decimal.String], and the corresponding
encoding.TextMarshaler and encoding.TextUnmarshaler implementations) and
from int64 ([NewInt], [NewDecimal]).

# Errors

All methods are panic-free, except for the Must* convenience wrappers.
Errors are returned in the following cases:

  - Invalid Number. [ParseInt] and [ParseDecimal] return
    [ErrInvalidNumber] if the input is empty, contains no digits, or
    contains an unexpected character.

  - Division by Zero. [Int.Quo], [Int.Rem], [Int.QuoRem], and
    [Decimal.Quo] return [ErrDivisionByZero] when the divisor is 0.

  - Negative Exponent. [Int.Pow] and [Decimal.Pow] return
    [ErrNegativeExponent] when the requested power is negative.

  - Negative Operand. [Int.Sqrt] and [Decimal.Sqrt] return
    [ErrNegativeOperand] when the operand is negative.

Overflow does not exist at this layer: magnitudes grow as needed and no
operation wraps or saturates.
*/
package bignum
