// Package decimal provides an arbitrary precision base 10 floating point
// number.
//
// The equation for a finite decimal number is:
//
//	number = sign * coefficient * 10 ^ exponent
//
// Where coefficient is an unbounded integer and exponent is a 32 bit base 10
// exponent. For example:
//
//	1.23 = 123 * 10^-2
//
// In addition to finite numbers a Decimal may hold one of the special values
// NaN, +Infinity and -Infinity. Zero carries a sign: -0 and +0 compare equal
// but print differently and keep their sign through negation, rounding and
// multiplication.
//
// # Arithmetic
//
// Add, Sub and Mul are exact. Division cannot always be exact, so it lives on
// Context, which carries the number of significant digits to keep and the
// rounding mode to apply to the last one:
//
//	ctx := decimal.Context{Precision: 1100, Rounding: decimal.HalfEven}
//	third := ctx.Quo(decimal.New(1, 0), decimal.New(3, 0))
//
// The zero Context uses DefaultPrecision and HalfEven. 1100 significant
// digits is enough to hold every binary64 value exactly, including the
// smallest subnormal (about 4.9e-324, whose exact expansion has 751
// significant digits).
//
// Special values follow the IEEE 754 rules:
//
//	| Operation        | Result         |
//	|------------------|----------------|
//	| NaN op x         | NaN            |
//	| Inf - Inf        | NaN            |
//	| 0 * Inf          | NaN            |
//	| 0 / 0, Inf / Inf | NaN            |
//	| x / 0            | ±Inf           |
//	| x / Inf          | ±0             |
//	| -0 + -0          | -0             |
//	| -0 + +0          | +0             |
//	|------------------|----------------|
//
// # Text
//
// Parse accepts an optional sign, digits with an optional decimal point and
// an optional e/E exponent. "Infinity", "inf" and "∞" (any case, optionally
// signed) and "NaN" (any case) are recognized. Surrounding whitespace is
// ignored. String renders fixed point notation without trailing zeros, for
// example "-0", "0.1000000000000000055511151231257827021181583404541015625",
// "Infinity" and "NaN".
package decimal
