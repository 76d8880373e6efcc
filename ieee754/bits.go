package ieee754

import (
	"math/big"

	"github.com/calebcase/numconv/decimal"
)

// Bits is a binary floating point layout split into its fields. Exponent is
// the biased exponent field.
type Bits struct {
	Format   Format
	Sign     bool
	Exponent uint64
	Mantissa uint64
}

// FromUint64 splits the low Width bits of u into fields.
func FromUint64(f Format, u uint64) Bits {
	return Bits{
		Format:   f,
		Sign:     u>>(f.Width-1)&1 == 1,
		Exponent: u >> f.MantissaBits & f.maxBiased(),
		Mantissa: u & f.mantissaMask(),
	}
}

// Uint64 packs the fields into the low Width bits.
func (b Bits) Uint64() uint64 {
	var u uint64
	if b.Sign {
		u = 1 << (b.Format.Width - 1)
	}

	return u | b.Exponent<<b.Format.MantissaBits | b.Mantissa
}

// IsNaN reports whether b encodes NaN.
func (b Bits) IsNaN() bool {
	return b.Exponent == b.Format.maxBiased() && b.Mantissa != 0
}

// IsInf reports whether b encodes an infinity.
func (b Bits) IsInf() bool {
	return b.Exponent == b.Format.maxBiased() && b.Mantissa == 0
}

// IsSubnormal reports whether b encodes a subnormal number.
func (b Bits) IsSubnormal() bool {
	return b.Exponent == 0 && b.Mantissa != 0
}

// Encode rounds d to the nearest value of the format, ties to even.
func Encode(d decimal.Decimal, f Format) Bits {
	b := Bits{
		Format: f,
		Sign:   d.Signbit(),
	}

	switch {
	case d.IsNaN():
		b.Sign = false
		b.Exponent = f.maxBiased()
		b.Mantissa = f.quietNaN()

		return b
	case d.IsInf(0):
		b.Exponent = f.maxBiased()

		return b
	case d.IsZero():
		return b
	}

	// Saturate far outside the range before building huge integers.
	lo, hi := f.decimalRange()
	switch adj := d.AdjustedExponent(); {
	case adj > hi:
		b.Exponent = f.maxBiased()

		return b
	case adj < lo:
		return b
	}

	r := d.Abs().Rat()
	num, den := r.Num(), r.Denom()

	// e = floor(log2(num / den))
	e := num.BitLen() - den.BitLen()
	if cmpScaled(num, den, e) < 0 {
		e--
	}

	if e < f.MinExponent() {
		e = f.MinExponent()
	}

	// q = num / den * 2^(mantissa bits - e), so that a normal number has
	// exactly mantissa bits + 1 bits left of the binary point.
	n := new(big.Int).Set(num)
	m := new(big.Int).Set(den)
	if shift := int(f.MantissaBits) - e; shift >= 0 {
		n.Lsh(n, uint(shift))
	} else {
		m.Lsh(m, uint(-shift))
	}

	q, rem := new(big.Int).QuoRem(n, m, new(big.Int))
	switch rem.Lsh(rem, 1).Cmp(m) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	width := int(f.MantissaBits) + 1

	// Rounding carried into a new leading bit.
	if q.BitLen() > width {
		q.Rsh(q, 1)
		e++
	}

	if q.BitLen() == width {
		biased := e + f.Bias()
		if biased >= int(f.maxBiased()) {
			b.Exponent = f.maxBiased()

			return b
		}

		b.Exponent = uint64(biased)
	}

	b.Mantissa = q.Uint64() & f.mantissaMask()

	return b
}

// cmpScaled compares num with den * 2^e.
func cmpScaled(num, den *big.Int, e int) int {
	if e >= 0 {
		return num.Cmp(new(big.Int).Lsh(den, uint(e)))
	}

	return new(big.Int).Lsh(num, uint(-e)).Cmp(den)
}

// Decode returns the exact value of b.
func Decode(b Bits) decimal.Decimal {
	f := b.Format
	sign := 1
	if b.Sign {
		sign = -1
	}

	switch {
	case b.IsInf():
		return decimal.Inf(sign)
	case b.IsNaN():
		return decimal.NaN()
	case b.Exponent == 0 && b.Mantissa == 0:
		return decimal.Zero(b.Sign)
	}

	m := b.Mantissa
	e := f.MinExponent()
	if b.Exponent != 0 {
		m |= 1 << f.MantissaBits
		e = int(b.Exponent) - f.Bias()
	}

	d := decimal.NewFromBigInt(new(big.Int).SetUint64(m), 0).Scale2(e - int(f.MantissaBits))
	if b.Sign {
		d = d.Neg()
	}

	return d
}
