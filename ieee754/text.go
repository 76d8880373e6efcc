package ieee754

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// FormatBin renders b as sign, exponent and mantissa bit groups separated by
// spaces.
func FormatBin(b Bits) string {
	sign := 0
	if b.Sign {
		sign = 1
	}

	return fmt.Sprintf("%d %0*b %0*b",
		sign,
		int(b.Format.ExponentBits), b.Exponent,
		int(b.Format.MantissaBits), b.Mantissa,
	)
}

// FormatHex renders b as Width/4 uppercase hexadecimal digits.
func FormatHex(b Bits) string {
	return fmt.Sprintf("%0*X", int(b.Format.Width/4), b.Uint64())
}

// ParseBin parses the output of FormatBin. A 0b prefix, whitespace and fewer
// than Width bits are accepted.
func ParseBin(f Format, s string) (b Bits, err error) {
	defer Error.WrapP(&err)

	u, err := parseUint(s, "0b", 2, int(f.Width))
	if err != nil {
		return Bits{}, err
	}

	return FromUint64(f, u), nil
}

// ParseHex parses the output of FormatHex. A 0x prefix, lowercase digits,
// whitespace and fewer than Width/4 digits are accepted.
func ParseHex(f Format, s string) (b Bits, err error) {
	defer Error.WrapP(&err)

	u, err := parseUint(s, "0x", 16, int(f.Width/4))
	if err != nil {
		return Bits{}, err
	}

	return FromUint64(f, u), nil
}

func parseUint(s, prefix string, base, digits int) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		s = s[len(prefix):]
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	switch {
	case s == "":
		return 0, Error.New("no digits")
	case len(s) > digits:
		return 0, Error.New("too many digits: %d > %d", len(s), digits)
	}

	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, Error.New("invalid digits: %q", s)
	}

	return u, nil
}

// FormatShortest renders b as the shortest decimal that reads back as the
// same binary64 value, laid out like ECMAScript's Number::toString. binary32
// values are widened to binary64 first. Unlike ECMAScript, negative zero
// keeps its sign.
func FormatShortest(b Bits) string {
	var f float64
	if b.Format.Width == 32 {
		f = float64(math.Float32frombits(uint32(b.Uint64())))
	} else {
		f = math.Float64frombits(b.Uint64())
	}

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}

		return "0"
	}

	neg := f < 0

	// d.ddde±xx
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)

	n, err := strconv.Atoi(exp)
	if err != nil {
		panic(fmt.Sprintf("unexpected float format %q: %v", s, err))
	}

	return formatECMA(neg, digits, n+1)
}

// formatECMA lays out the significant digits with n digits left of the
// decimal point.
func formatECMA(neg bool, digits string, n int) string {
	k := len(digits)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}

	switch {
	case k <= n && n <= 21:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		sb.WriteString(digits[:n])
		sb.WriteByte('.')
		sb.WriteString(digits[n:])
	case -6 < n && n <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -n))
		sb.WriteString(digits)
	default:
		sb.WriteByte(digits[0])
		if k > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}

		sb.WriteByte('e')
		if n-1 >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(n - 1))
	}

	return sb.String()
}
