// Package numeral reads and writes positional numerals in bases 2 through 36.
//
// A numeral is an optional sign, digits of the base and at most one radix
// separator. Either '.' or ',' separates the fraction. Whitespace is ignored
// anywhere, so grouped input such as "10 1010.0011" reads as expected.
//
// Values are carried as decimal.Decimal. A fraction whose base has no prime
// factors besides 2 and 5 has an exact decimal expansion and converts
// exactly; the fractions of other bases are divided out with the precision of
// the supplied decimal.Context.
//
// Binary and hexadecimal output is grouped into nibbles: the integer part
// from the right and the fraction from the left.
//
//	-10 1010.0011 01
package numeral

import (
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/zeebo/errs"

	"github.com/calebcase/numconv/decimal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("numeral")

var bigOne = big.NewInt(1)

// Bounds of the supported bases.
const (
	MinBase = 2
	MaxBase = 36
)

// Grouped reports whether numerals of base are written in nibble groups.
func Grouped(base int) bool {
	return base == 2 || base == 16
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return Error.New("unsupported base: %d", base)
	}

	return nil
}

// Parse reads a numeral of the given base.
func Parse(ctx decimal.Context, base int, s string) (d decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	err = checkBase(base)
	if err != nil {
		return decimal.Decimal{}, err
	}

	s = stripSpace(s)

	if base == 10 {
		// Separator commas become points so the decimal grammar applies.
		d, err = ctx.Parse(strings.Replace(s, ",", ".", 1))
		if err != nil {
			return decimal.Decimal{}, err
		}

		if !d.IsFinite() {
			return decimal.Decimal{}, Error.New("not a number: %q", s)
		}

		return d, nil
	}

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	coef, k, err := scan(base, s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if neg {
		coef.Neg(coef)
	}

	if k == 0 {
		return signed(decimal.NewFromBigInt(coef, 0), neg), nil
	}

	twos, fives, rest := factor(base)
	if rest == 1 {
		// coef / (2^a * 5^c) == coef * 10^-c * 2^(c-a)
		a, c := twos*k, fives*k

		return signed(decimal.NewFromBigInt(coef, int32(-c)).Scale2(c-a), neg), nil
	}

	den := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(k)), nil)

	return signed(ctx.Quo(decimal.NewFromBigInt(coef, 0), decimal.NewFromBigInt(den, 0)), neg), nil
}

// scan reads the unsigned digits of s as one integer and returns it with the
// number of fraction digits.
func scan(base int, s string) (coef *big.Int, k int, err error) {
	coef = new(big.Int)
	b := big.NewInt(int64(base))
	digit := new(big.Int)

	digits, sep := 0, false
	for _, r := range s {
		if r == '.' || r == ',' {
			if sep {
				return nil, 0, Error.New("more than one separator")
			}

			sep = true

			continue
		}

		v := digitValue(r)
		if v < 0 || v >= base {
			return nil, 0, Error.New("invalid digit %q for base %d", r, base)
		}

		coef.Mul(coef, b)
		coef.Add(coef, digit.SetInt64(int64(v)))
		digits++

		if sep {
			k++
		}
	}

	if digits == 0 {
		return nil, 0, Error.New("no digits")
	}

	return coef, k, nil
}

func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	}

	return -1
}

// signed restores the sign of a zero magnitude.
func signed(d decimal.Decimal, neg bool) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero(neg)
	}

	return d
}

// factor splits base into 2^twos * 5^fives * rest.
func factor(base int) (twos, fives, rest int) {
	rest = base
	for rest%2 == 0 {
		rest /= 2
		twos++
	}

	for rest%5 == 0 {
		rest /= 5
		fives++
	}

	return twos, fives, rest
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// FracDigits returns the number of digits needed to write the fraction of d
// in base. When the fraction terminates in base, n is exact and exact is
// true. Otherwise n is the number of base digits carrying about as much
// precision as the decimal digits of the fraction.
func FracDigits(d decimal.Decimal, base int) (n int, exact bool) {
	if !d.IsFinite() || d.IsZero() || d.Exponent() >= 0 {
		return 0, true
	}

	r := d.Rat()
	frac := new(big.Int).Rem(r.Num(), r.Denom())
	if frac.Sign() == 0 {
		return 0, true
	}

	// Denominator of the fraction in lowest terms.
	den := new(big.Int).Set(r.Denom())

	b := big.NewInt(int64(base))
	g := new(big.Int)
	for n = 0; den.Cmp(bigOne) != 0; n++ {
		g.GCD(nil, nil, den, b)
		if g.Cmp(bigOne) == 0 {
			break
		}

		// den / gcd(den, b) leaves what one more digit cannot absorb.
		den.Quo(den, g)
	}

	if den.Cmp(bigOne) == 0 {
		return n, true
	}

	// Count the decimal fraction digits without trailing zeros.
	coef := d.Coefficient()
	coef.Abs(coef)
	k := int(-d.Exponent())
	ten := big.NewInt(10)
	m := new(big.Int)
	for k > 0 {
		q, rem := new(big.Int).QuoRem(coef, ten, m)
		if rem.Sign() != 0 {
			break
		}

		coef = q
		k--
	}

	return int(math.Ceil(float64(k) * math.Log(10) / math.Log(float64(base)))), false
}

// Format writes d in base with at most frac fraction digits, rounding half
// to even. Trailing fraction zeros are dropped and a zero result has no
// sign.
func Format(d decimal.Decimal, base, frac int) (s string, err error) {
	defer Error.WrapP(&err)

	err = checkBase(base)
	if err != nil {
		return "", err
	}

	if !d.IsFinite() {
		return "", Error.New("not a finite number: %s", d)
	}

	if frac < 0 {
		frac = 0
	}

	r := d.Rat()
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	num.Mul(num, new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(frac)), nil))

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	switch rem.Lsh(rem, 1).Cmp(den) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}

	text := strings.ToUpper(q.Text(base))
	if len(text) <= frac {
		text = strings.Repeat("0", frac-len(text)+1) + text
	}

	ip, fp := text[:len(text)-frac], strings.TrimRight(text[len(text)-frac:], "0")

	if Grouped(base) {
		ip = GroupInt(ip)
		fp = GroupFrac(fp)
	}

	var sb strings.Builder
	if d.Sign() < 0 && q.Sign() != 0 {
		sb.WriteByte('-')
	}

	sb.WriteString(ip)
	if fp != "" {
		sb.WriteByte('.')
		sb.WriteString(fp)
	}

	return sb.String(), nil
}

// GroupInt separates integer digits into groups of four counting from the
// right.
func GroupInt(s string) string {
	var sb strings.Builder

	for i := range s {
		if i > 0 && (len(s)-i)%4 == 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}

// GroupFrac separates fraction digits into groups of four counting from the
// left.
func GroupFrac(s string) string {
	var sb strings.Builder

	for i := range s {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}
