// Package ieee754 converts between arbitrary precision decimals and IEEE 754
// binary32 and binary64 bit layouts.
//
// # Layout
//
// Bits are laid out most significant first: sign, biased exponent, mantissa.
//
//	| Format   | Sign | Exponent | Mantissa | Bias |
//	|----------|------|----------|----------|------|
//	| binary32 | 1    | 8        | 23       | 127  |
//	| binary64 | 1    | 11       | 52       | 1023 |
//	|----------|------|----------|----------|------|
//
// The biased exponent selects the meaning of the mantissa:
//
//	| Exponent | Mantissa | Value                                           |
//	|----------|----------|-------------------------------------------------|
//	| all ones | 0        | ±Infinity                                       |
//	| all ones | != 0     | NaN (quiet NaN: top mantissa bit set)           |
//	| 0        | 0        | ±0                                              |
//	| 0        | != 0     | ±0.mantissa * 2^(1 - bias)       (subnormal)    |
//	| other    | any      | ±1.mantissa * 2^(exponent - bias)               |
//	|----------|----------|-------------------------------------------------|
//
// # Encoding
//
// Encode is exact: the decimal is turned into a ratio of integers, scaled by
// the power of two that leaves the mantissa bits left of the binary point and
// rounded to nearest with ties to even. A carry out of the mantissa bumps the
// exponent. Results beyond the largest finite number saturate to a signed
// infinity and results below half the smallest subnormal become a signed
// zero. NaN always encodes as the canonical quiet NaN with a clear sign bit.
//
// Decoding is exact as well; the decimal produced by Decode holds every digit
// of the binary value, for example:
//
//	0.1 -> 0 01111011 10011001100110011001101 -> 0.100000001490116119384765625
//
// # Text
//
// The textual forms used by Converter are:
//
//	dec    decimal numeral, Infinity or NaN
//	dec32  exact decimal value of the binary32 encoding
//	dec64  exact decimal value of the binary64 encoding
//	bin32  "s eeeeeeee mmmmmmmmmmmmmmmmmmmmmmm"
//	bin64  "s eeeeeeeeeee mmmm...m"
//	hex32  8 uppercase hex digits
//	hex64  16 uppercase hex digits
//
// Binary and hexadecimal input may carry a 0b or 0x prefix, may contain
// whitespace and may be shorter than the layout (it is zero extended on the
// left).
package ieee754
