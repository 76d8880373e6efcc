package complement

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/zeebo/errs"

	"github.com/calebcase/numconv/decimal"
	"github.com/calebcase/numconv/numeral"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("complement")

// Name is the encoding name of two's-complement binary.
const Name = "2-compl"

const nibble = 4

// Codec converts between decimals and two's-complement binary strings.
//
// IntBits is the number of integer bits written, sign bit included. Zero
// selects the smallest whole number of nibbles holding the value.
//
// FracBits is the number of fraction bits written. Zero selects the fewest
// whole nibbles holding a fraction that terminates in binary, or carrying the
// precision of the decimal fraction otherwise. A negative value writes no
// fraction.
type Codec struct {
	IntBits  int
	FracBits int
}

// Decode reads a two's-complement string. The whole string, fraction
// included, is one signed integer whose leading bit is the sign. Spaces are
// ignored and the fraction may be separated by '.' or ','.
func (c Codec) Decode(s string) (d decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	u := new(big.Int)
	n, f, sep := 0, 0, false

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '.' || r == ',':
			if sep {
				return decimal.Decimal{}, Error.New("more than one separator")
			}

			sep = true

			continue
		case r != '0' && r != '1':
			return decimal.Decimal{}, Error.New("invalid bit %q", r)
		}

		u.Lsh(u, 1)
		if r == '1' {
			u.SetBit(u, 0, 1)
		}

		n++
		if sep {
			f++
		}
	}

	if n == 0 {
		return decimal.Decimal{}, Error.New("no bits")
	}

	if u.Bit(n-1) == 1 {
		u.Sub(u, new(big.Int).Lsh(bigOne, uint(n)))
	}

	if u.Sign() == 0 {
		return decimal.Zero(false), nil
	}

	return decimal.NewFromBigInt(u, 0).Scale2(-f), nil
}

// Encode writes d in two's complement. Values are rounded half to even at
// the last fraction bit. Negative values with an inferred fraction carry one
// more nibble of zeros after it.
func (c Codec) Encode(d decimal.Decimal) (s string, err error) {
	defer Error.WrapP(&err)

	if !d.IsFinite() {
		return "", Error.New("not a finite number: %s", d)
	}

	f := c.FracBits
	switch {
	case f < 0:
		f = 0
	case f == 0:
		n, _ := numeral.FracDigits(d, 2)
		f = nibbles(n)
	}

	scaled := scale(d, f)

	w := c.IntBits
	if w <= 0 {
		w = nibbles(minWidth(scaled, f))
	} else if minWidth(scaled, f) > w {
		return "", Error.New("%s overflows %d integer bits", d, w)
	}

	guard := 0
	if c.FracBits == 0 && f > 0 && d.Sign() < 0 {
		guard = nibble
	}

	total := w + f + guard

	u := new(big.Int).Lsh(scaled, uint(guard))
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(bigOne, uint(total)))
	}

	bits := u.Text(2)
	bits = strings.Repeat("0", total-len(bits)) + bits

	ip, fp := numeral.GroupInt(bits[:w]), numeral.GroupFrac(bits[w:])
	if fp == "" {
		return ip, nil
	}

	return ip + "." + fp, nil
}

var bigOne = big.NewInt(1)

// scale returns d * 2^f rounded half to even.
func scale(d decimal.Decimal, f int) *big.Int {
	r := d.Rat()
	num := new(big.Int).Abs(r.Num())
	num.Lsh(num, uint(f))
	den := r.Denom()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	switch rem.Lsh(rem, 1).Cmp(den) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}

	if r.Sign() < 0 {
		q.Neg(q)
	}

	return q
}

// minWidth returns the fewest integer bits, at least one, holding the scaled
// value v with f fraction bits.
func minWidth(v *big.Int, f int) int {
	// -2^(w+f-1) <= v < 2^(w+f-1)
	m := new(big.Int).Set(v)
	if m.Sign() < 0 {
		m.Neg(m)
		m.Sub(m, bigOne)
	}

	w := m.BitLen() + 1 - f
	if w < 1 {
		w = 1
	}

	return w
}

func nibbles(bits int) int {
	return (bits + nibble - 1) / nibble * nibble
}
