// Package numconv converts numbers between textual encodings by name.
//
// A Registry dispatches each conversion to the converter owning both the
// source and the target encoding:
//
//	| Name                    | Converter            | Text                                  |
//	|-------------------------|----------------------|---------------------------------------|
//	| dec                     | ieee754.Converter    | decimal, shortest form for binary     |
//	| dec32, dec64            | ieee754.Converter    | exact decimal of the nearest float    |
//	| bin32, bin64            | ieee754.Converter    | sign exponent mantissa bit groups     |
//	| hex32, hex64            | ieee754.Converter    | uppercase hexadecimal bit pattern     |
//	| 2 .. 36                 | complement.Converter | plain numeral of that base            |
//	| 2-compl                 | complement.Converter | two's-complement binary               |
//	|-------------------------|----------------------|---------------------------------------|
//
// Data that cannot be read in the source encoding, or written in a target,
// gives a Result that is not OK. Encoding names that no converter owns are
// reported as errors of class UnknownEncoding.
//
//	r := numconv.NewDefaultRegistry(decimal.Default)
//	s, ok, err := r.Convert("dec", "hex32", "-0") // "80000000", true, nil
package numconv
