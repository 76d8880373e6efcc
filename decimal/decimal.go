package decimal

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

type form uint8

const (
	finite form = iota
	nan
	inf
)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// Decimal is an arbitrary precision decimal floating point number. The zero
// value is +0. Decimal is immutable and safe for concurrent use.
type Decimal struct {
	form form

	// neg is the sign bit. For finite non-zero numbers it always agrees with
	// the sign of value.
	neg bool

	value decimal.Decimal
}

// New returns value * 10^exp.
func New(value int64, exp int32) Decimal {
	return fromValue(decimal.New(value, exp), value < 0)
}

// NewFromBigInt returns value * 10^exp. The integer is copied.
func NewFromBigInt(value *big.Int, exp int32) Decimal {
	return fromValue(decimal.NewFromBigInt(new(big.Int).Set(value), exp), value.Sign() < 0)
}

// Zero returns a signed zero.
func Zero(negative bool) Decimal {
	return Decimal{neg: negative}
}

// NaN returns a not-a-number value.
func NaN() Decimal {
	return Decimal{form: nan}
}

// Inf returns +Infinity if sign >= 0 and -Infinity if sign < 0.
func Inf(sign int) Decimal {
	return Decimal{form: inf, neg: sign < 0}
}

func fromValue(v decimal.Decimal, neg bool) Decimal {
	if v.IsZero() {
		return Zero(neg)
	}

	return Decimal{value: v, neg: v.Sign() < 0}
}

// IsNaN reports whether d is NaN.
func (d Decimal) IsNaN() bool {
	return d.form == nan
}

// IsInf reports whether d is an infinity, according to sign. If sign > 0,
// IsInf reports whether d is +Infinity. If sign < 0, IsInf reports whether d
// is -Infinity. If sign == 0, IsInf reports whether d is either infinity.
func (d Decimal) IsInf(sign int) bool {
	if d.form != inf {
		return false
	}

	return sign == 0 || (sign > 0) == !d.neg
}

// IsFinite reports whether d is neither NaN nor an infinity.
func (d Decimal) IsFinite() bool {
	return d.form == finite
}

// IsZero reports whether d is +0 or -0.
func (d Decimal) IsZero() bool {
	return d.form == finite && d.value.IsZero()
}

// Sign returns -1, 0 or +1. Both zeros and NaN return 0.
func (d Decimal) Sign() int {
	switch d.form {
	case nan:
		return 0
	case inf:
		if d.neg {
			return -1
		}

		return 1
	}

	return d.value.Sign()
}

// Signbit reports whether d is negative or negative zero. NaN is never
// negative.
func (d Decimal) Signbit() bool {
	return d.form != nan && d.neg
}

// Coefficient returns the signed coefficient of a finite d. It returns zero
// for NaN and the infinities.
func (d Decimal) Coefficient() *big.Int {
	if d.form != finite {
		return new(big.Int)
	}

	return d.value.Coefficient()
}

// Exponent returns the base 10 exponent of a finite d.
func (d Decimal) Exponent() int32 {
	if d.form != finite {
		return 0
	}

	return d.value.Exponent()
}

// AdjustedExponent returns e such that 10^e <= |d| < 10^(e+1). It returns 0
// for zero and the special values.
func (d Decimal) AdjustedExponent() int64 {
	if d.form != finite || d.value.IsZero() {
		return 0
	}

	c := d.value.Coefficient()

	return int64(numDigits(c.Abs(c))) + int64(d.value.Exponent()) - 1
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.form == nan {
		return d
	}

	return Decimal{
		form:  d.form,
		neg:   !d.neg,
		value: d.value.Neg(),
	}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.form == nan {
		return d
	}

	return Decimal{
		form:  d.form,
		value: d.value.Abs(),
	}
}

// Add returns d + e.
func (d Decimal) Add(e Decimal) Decimal {
	switch {
	case d.form == nan || e.form == nan:
		return NaN()
	case d.form == inf && e.form == inf:
		if d.neg != e.neg {
			return NaN()
		}

		return d
	case d.form == inf:
		return d
	case e.form == inf:
		return e
	}

	v := d.value.Add(e.value)
	if v.IsZero() {
		// Only the sum of two negative zeros is negative zero.
		return Zero(d.IsZero() && e.IsZero() && d.neg && e.neg)
	}

	return fromValue(v, false)
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e.
func (d Decimal) Mul(e Decimal) Decimal {
	neg := d.neg != e.neg

	switch {
	case d.form == nan || e.form == nan:
		return NaN()
	case d.form == inf || e.form == inf:
		if d.IsZero() || e.IsZero() {
			return NaN()
		}

		return Inf(signOf(neg))
	}

	return fromValue(d.value.Mul(e.value), neg)
}

// Scale2 returns d * 2^n exactly.
func (d Decimal) Scale2(n int) Decimal {
	if d.form != finite || n == 0 {
		return d
	}

	c := d.value.Coefficient()
	exp := d.value.Exponent()

	if n > 0 {
		c.Lsh(c, uint(n))
	} else {
		// 2^-k = 5^k * 10^-k
		c.Mul(c, new(big.Int).Exp(bigFive, big.NewInt(int64(-n)), nil))
		exp += int32(n)
	}

	return fromValue(decimal.NewFromBigInt(c, exp), d.neg)
}

// Cmp compares d and e and returns -1, 0 or +1. The zeros compare equal. NaN
// is ordered before every other value and is equal to itself.
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.form == nan && e.form == nan:
		return 0
	case d.form == nan:
		return -1
	case e.form == nan:
		return 1
	}

	dr, er := d.rank(), e.rank()
	switch {
	case dr < er:
		return -1
	case dr > er:
		return 1
	case dr != 0:
		return 0
	}

	return d.value.Cmp(e.value)
}

// rank orders -Infinity, finite numbers and +Infinity.
func (d Decimal) rank() int {
	if d.form != inf {
		return 0
	}

	return signOf(d.neg)
}

// Equal reports whether d and e have the same value. See Cmp.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Identical reports whether d and e have the same value and, for zeros, the
// same sign.
func (d Decimal) Identical(e Decimal) bool {
	return d.Equal(e) && d.Signbit() == e.Signbit()
}

// Trunc discards the digits after the given number of decimal places.
// Negative places truncate to the left of the decimal point.
func (d Decimal) Trunc(places int32) Decimal {
	if d.form != finite {
		return d
	}

	return fromValue(quantize(d.value, places, Down), d.neg)
}

// Rat returns the exact value of a finite d as a rational number. It returns
// nil for NaN and the infinities.
func (d Decimal) Rat() *big.Rat {
	if d.form != finite {
		return nil
	}

	return d.value.Rat()
}

// String returns the canonical fixed point representation of d.
func (d Decimal) String() string {
	switch d.form {
	case nan:
		return "NaN"
	case inf:
		if d.neg {
			return "-Infinity"
		}

		return "Infinity"
	}

	if d.value.IsZero() {
		if d.neg {
			return "-0"
		}

		return "0"
	}

	return d.value.String()
}

func signOf(neg bool) int {
	if neg {
		return -1
	}

	return 1
}

// numDigits returns the number of decimal digits in x >= 0.
func numDigits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}

	return len(x.Text(10))
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}
