package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a result is rounded to the available digits.
type RoundingMode uint8

// Rounding modes.
const (
	// HalfEven rounds to nearest, ties to the even digit.
	HalfEven RoundingMode = iota
	// HalfUp rounds to nearest, ties away from zero.
	HalfUp
	// Down rounds toward zero.
	Down
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "half-even"
	case HalfUp:
		return "half-up"
	case Down:
		return "down"
	}

	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// DefaultPrecision is the number of significant digits kept by inexact
// operations when a Context does not say otherwise.
const DefaultPrecision = 1100

// Context carries the precision and rounding configuration of inexact
// operations. A Context is read-only and may be shared between goroutines.
type Context struct {
	// Precision is the number of significant digits kept by Quo. Values
	// below one select DefaultPrecision.
	Precision int32

	// Rounding is applied by Quo and Round.
	Rounding RoundingMode
}

// Default is the context used by MustParse.
var Default = Context{
	Precision: DefaultPrecision,
	Rounding:  HalfEven,
}

func (c Context) precision() int64 {
	if c.Precision < 1 {
		return DefaultPrecision
	}

	return int64(c.Precision)
}

// Parse converts a decimal numeral, an infinity or NaN to a Decimal.
func (c Context) Parse(s string) (d Decimal, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, Error.New("empty input")
	}

	body := s
	neg := false
	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		neg = true
		body = body[1:]
	}

	switch strings.ToLower(body) {
	case "infinity", "inf", "∞":
		return Inf(signOf(neg)), nil
	case "nan":
		return NaN(), nil
	}

	if !validNumeral(body) {
		return Decimal{}, Error.New("invalid number: %q", s)
	}

	mant, exp := body, "0"
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		mant, exp = body[:i], body[i+1:]
	}

	v, err := decimal.NewFromString(mant)
	if err != nil {
		return Decimal{}, err
	}

	if v.IsZero() {
		return Zero(neg), nil
	}

	e, ok := new(big.Int).SetString(exp, 10)
	if !ok {
		return Decimal{}, Error.New("invalid exponent: %q", s)
	}
	e.Add(e, big.NewInt(int64(v.Exponent())))

	// Exponents outside int32 saturate.
	switch {
	case e.Cmp(maxExponent) > 0:
		return Inf(signOf(neg)), nil
	case e.Cmp(minExponent) < 0:
		return Zero(neg), nil
	}

	coef := v.Coefficient()
	if neg {
		coef.Neg(coef)
	}

	return fromValue(decimal.NewFromBigInt(coef, int32(e.Int64())), neg), nil
}

var (
	maxExponent = big.NewInt(math.MaxInt32)
	minExponent = big.NewInt(math.MinInt32)
)

// MustParse is like Parse on the Default context but panics on invalid
// input. It simplifies initialization of constants in tests and tables.
func MustParse(s string) Decimal {
	d, err := Default.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return d
}

// validNumeral matches digits [. digits] or . digits, followed by an optional
// exponent.
func validNumeral(s string) bool {
	i, digits := 0, 0

	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}

		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}

		if i == start {
			return false
		}
	}

	return i == len(s)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Quo returns x / y rounded to the context precision.
func (c Context) Quo(x, y Decimal) Decimal {
	neg := x.neg != y.neg

	switch {
	case x.form == nan || y.form == nan:
		return NaN()
	case x.form == inf && y.form == inf:
		return NaN()
	case x.form == inf:
		return Inf(signOf(neg))
	case y.form == inf:
		return Zero(neg)
	case y.IsZero():
		if x.IsZero() {
			return NaN()
		}

		return Inf(signOf(neg))
	case x.IsZero():
		return Zero(neg)
	}

	a := x.value.Coefficient()
	a.Abs(a)
	b := y.value.Coefficient()
	b.Abs(b)
	exp := int64(x.value.Exponent()) - int64(y.value.Exponent())

	// Scale the dividend so the integer quotient has at least one digit more
	// than the precision. floor(a/b) has at least digits(a) - digits(b)
	// digits.
	p := c.precision()
	s := p + 1 + int64(numDigits(b)) - int64(numDigits(a))
	if s < 0 {
		s = 0
	}
	a.Mul(a, pow10(s))
	exp -= s

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	sticky := r.Sign() != 0

	extra := int64(numDigits(q)) - p
	div := pow10(extra)
	q.QuoRem(q, div, r)
	exp += extra

	if roundUp(c.Rounding, q, r, div, sticky) {
		q.Add(q, bigOne)
	}

	switch {
	case exp > math.MaxInt32:
		return Inf(signOf(neg))
	case exp < math.MinInt32:
		return Zero(neg)
	}

	if neg {
		q.Neg(q)
	}

	return fromValue(decimal.NewFromBigInt(q, int32(exp)), neg)
}

// Round rounds d to the given number of decimal places using the context
// rounding mode. Negative places round to the left of the decimal point.
func (c Context) Round(d Decimal, places int32) Decimal {
	if d.form != finite {
		return d
	}

	var v decimal.Decimal
	switch c.Rounding {
	case HalfEven:
		v = d.value.RoundBank(places)
	case HalfUp:
		v = d.value.Round(places)
	default:
		v = quantize(d.value, places, c.Rounding)
	}

	return fromValue(v, d.neg)
}

// roundUp reports whether the magnitude q, followed by the discarded
// remainder r/div and any non-zero digits below it (sticky), should be
// incremented.
func roundUp(mode RoundingMode, q, r, div *big.Int, sticky bool) bool {
	if r.Sign() == 0 && !sticky {
		return false
	}

	switch mode {
	case Down:
		return false
	case HalfUp:
		half := new(big.Int).Mul(r, bigTwo)
		return half.Cmp(div) >= 0
	}

	half := new(big.Int).Mul(r, bigTwo)
	switch half.Cmp(div) {
	case 1:
		return true
	case 0:
		return sticky || q.Bit(0) == 1
	}

	return false
}

// quantize rounds v to an integer multiple of 10^-places.
func quantize(v decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	exp := v.Exponent()
	if exp >= -places {
		return v
	}

	c := v.Coefficient()
	neg := c.Sign() < 0
	c.Abs(c)

	div := pow10(int64(-places) - int64(exp))
	q, r := new(big.Int).QuoRem(c, div, new(big.Int))

	if roundUp(mode, q, r, div, false) {
		q.Add(q, bigOne)
	}

	if neg {
		q.Neg(q)
	}

	return decimal.NewFromBigInt(q, -places)
}
