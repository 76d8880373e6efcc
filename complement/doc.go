// Package complement implements two's-complement binary for signed
// fixed-point numbers.
//
// A string of n bits with f of them after the separator holds the integer U
// read from all n bits. The leading bit is the sign:
//
//	value = U / 2^f            when the leading bit is 0
//	value = (U - 2^n) / 2^f    when the leading bit is 1
//
// For example with n = 12 and f = 8:
//
//	 1111.1111 0000
//	+----+---------+
//	| int| fraction|
//	+----+---------+
//	U = 4080, U - 2^12 = -16, value = -16 / 2^8 = -0.0625
//
// Encoding picks the widths unless the Codec fixes them:
//
//	+-------------+--------------------------------------------------+
//	| Width       | Inferred as                                      |
//	+-------------+--------------------------------------------------+
//	| fraction    | fewest nibbles holding the fraction when it      |
//	|             | terminates in binary, otherwise enough nibbles   |
//	|             | for the decimal digits of the fraction           |
//	| integer     | smallest number of nibbles holding the value and |
//	|             | its sign bit                                     |
//	| guard       | one zero nibble after the fraction of a negative |
//	|             | value                                            |
//	+-------------+--------------------------------------------------+
//
// Output is grouped in nibbles: the integer bits from the right and the
// fraction bits from the left.
//
// The Converter pairs the codec with plain numerals of bases 2 through 36
// (see package numeral), so "2" to "2-compl" turns "-1" into "1111".
package complement
