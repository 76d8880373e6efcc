package decimal_test

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numconv/decimal"
)

func TestParse(t *testing.T) {
	type TC struct {
		input  string
		output string
		err    bool
		Mark   error
	}

	tcs := []TC{
		{input: "0", output: "0", Mark: oops.New("unexpected")},
		{input: "-0", output: "-0", Mark: oops.New("unexpected")},
		{input: "+0", output: "0", Mark: oops.New("unexpected")},
		{input: "-0.000", output: "-0", Mark: oops.New("unexpected")},
		{input: "123456", output: "123456", Mark: oops.New("unexpected")},
		{input: "  1.50  ", output: "1.5", Mark: oops.New("unexpected")},
		{input: ".5", output: "0.5", Mark: oops.New("unexpected")},
		{input: "5.", output: "5", Mark: oops.New("unexpected")},
		{input: "1e+39", output: "1" + strings.Repeat("0", 39), Mark: oops.New("unexpected")},
		{input: "1E3", output: "1000", Mark: oops.New("unexpected")},
		{input: "-2.5e-3", output: "-0.0025", Mark: oops.New("unexpected")},
		{input: "1.401298464324817e-45", output: "0.000000000000000000000000000000000000000000001401298464324817", Mark: oops.New("unexpected")},
		{input: "Infinity", output: "Infinity", Mark: oops.New("unexpected")},
		{input: "infinity", output: "Infinity", Mark: oops.New("unexpected")},
		{input: "-INF", output: "-Infinity", Mark: oops.New("unexpected")},
		{input: "∞", output: "Infinity", Mark: oops.New("unexpected")},
		{input: "-∞", output: "-Infinity", Mark: oops.New("unexpected")},
		{input: "nan", output: "NaN", Mark: oops.New("unexpected")},
		{input: "NaN", output: "NaN", Mark: oops.New("unexpected")},
		{input: "1e3000000000", output: "Infinity", Mark: oops.New("unexpected")},
		{input: "-1E+3000000000", output: "-Infinity", Mark: oops.New("unexpected")},
		{input: "1e-3000000000", output: "0", Mark: oops.New("unexpected")},
		{input: "-1e-3000000000", output: "-0", Mark: oops.New("unexpected")},
		{input: "0e99999999999", output: "0", Mark: oops.New("unexpected")},
		{input: "-0.0e99999999999", output: "-0", Mark: oops.New("unexpected")},

		{input: "", err: true, Mark: oops.New("unexpected")},
		{input: " ", err: true, Mark: oops.New("unexpected")},
		{input: "abc", err: true, Mark: oops.New("unexpected")},
		{input: "-", err: true, Mark: oops.New("unexpected")},
		{input: ".", err: true, Mark: oops.New("unexpected")},
		{input: "1e", err: true, Mark: oops.New("unexpected")},
		{input: "1e+", err: true, Mark: oops.New("unexpected")},
		{input: "1.2.3", err: true, Mark: oops.New("unexpected")},
		{input: "--1", err: true, Mark: oops.New("unexpected")},
		{input: "0x10", err: true, Mark: oops.New("unexpected")},
		{input: "1 000", err: true, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			d, err := decimal.Default.Parse(tc.input)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, decimal.Error.Has(err), tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)

			t.Logf("Decimal: %s\n", spew.Sdump(d))

			require.Equal(t, tc.output, d.String(), tc.Mark)
		})
	}
}

func TestParseExponentBounds(t *testing.T) {
	d, err := decimal.Default.Parse("0.001e-2147483645")
	require.NoError(t, err)
	require.True(t, d.IsFinite())
	require.Equal(t, int32(math.MinInt32), d.Exponent())
	require.Zero(t, big.NewInt(1).Cmp(d.Coefficient()))

	d, err = decimal.Default.Parse("0.01e2147483649")
	require.NoError(t, err)
	require.True(t, d.IsFinite())
	require.Equal(t, int32(math.MaxInt32), d.Exponent())
}

func TestSpecialValues(t *testing.T) {
	require.True(t, decimal.NaN().IsNaN())
	require.False(t, decimal.NaN().Signbit())
	require.True(t, decimal.Inf(1).IsInf(1))
	require.True(t, decimal.Inf(1).IsInf(0))
	require.False(t, decimal.Inf(1).IsInf(-1))
	require.True(t, decimal.Inf(-1).IsInf(-1))
	require.True(t, decimal.Zero(true).IsZero())
	require.True(t, decimal.Zero(true).Signbit())
	require.Equal(t, "-0", decimal.Zero(true).String())
	require.Equal(t, "0", decimal.Zero(true).Neg().String())
	require.Equal(t, "-0", decimal.Zero(false).Neg().String())
	require.Equal(t, 0, decimal.Zero(true).Sign())
	require.Equal(t, -1, decimal.Inf(-1).Sign())
	require.Equal(t, "Infinity", decimal.Inf(-1).Abs().String())

	var zero decimal.Decimal
	require.Equal(t, "0", zero.String())
	require.True(t, zero.IsFinite())
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		x, y               string
		add, sub, mul, quo string
	}

	tcs := []TC{
		{x: "1", y: "2", add: "3", sub: "-1", mul: "2", quo: "0.5"},
		{x: "0.1", y: "0.2", add: "0.3", sub: "-0.1", mul: "0.02", quo: "0.5"},
		{x: "-1.5", y: "0.5", add: "-1", sub: "-2", mul: "-0.75", quo: "-3"},
		{x: "1e+39", y: "1e-39", add: "1" + strings.Repeat("0", 39) + "." + strings.Repeat("0", 38) + "1", sub: "9" + strings.Repeat("9", 38) + "." + strings.Repeat("9", 39), mul: "1", quo: "1" + strings.Repeat("0", 78)},

		// Signed zeros.
		{x: "-0", y: "-0", add: "-0", sub: "0", mul: "0", quo: "NaN"},
		{x: "-0", y: "0", add: "0", sub: "-0", mul: "-0", quo: "NaN"},
		{x: "0", y: "-5", add: "-5", sub: "5", mul: "-0", quo: "-0"},
		{x: "5", y: "-5", add: "0", sub: "10", mul: "-25", quo: "-1"},
		{x: "-5", y: "0", add: "-5", sub: "-5", mul: "-0", quo: "-Infinity"},

		// Infinities and NaN.
		{x: "Infinity", y: "1", add: "Infinity", sub: "Infinity", mul: "Infinity", quo: "Infinity"},
		{x: "Infinity", y: "-Infinity", add: "NaN", sub: "Infinity", mul: "-Infinity", quo: "NaN"},
		{x: "Infinity", y: "Infinity", add: "Infinity", sub: "NaN", mul: "Infinity", quo: "NaN"},
		{x: "-Infinity", y: "0", add: "-Infinity", sub: "-Infinity", mul: "NaN", quo: "-Infinity"},
		{x: "1", y: "-Infinity", add: "-Infinity", sub: "Infinity", mul: "-Infinity", quo: "-0"},
		{x: "NaN", y: "1", add: "NaN", sub: "NaN", mul: "NaN", quo: "NaN"},
		{x: "1", y: "NaN", add: "NaN", sub: "NaN", mul: "NaN", quo: "NaN"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s,%s", i, tc.x, tc.y), func(t *testing.T) {
			x := decimal.MustParse(tc.x)
			y := decimal.MustParse(tc.y)

			require.Equal(t, tc.add, x.Add(y).String(), "add")
			require.Equal(t, tc.sub, x.Sub(y).String(), "sub")
			require.Equal(t, tc.mul, x.Mul(y).String(), "mul")
			require.Equal(t, tc.quo, decimal.Default.Quo(x, y).String(), "quo")
		})
	}
}

func TestQuoPrecision(t *testing.T) {
	type TC struct {
		ctx    decimal.Context
		x, y   string
		output string
	}

	tcs := []TC{
		{ctx: decimal.Context{Precision: 5}, x: "1", y: "3", output: "0.33333"},
		{ctx: decimal.Context{Precision: 5}, x: "2", y: "3", output: "0.66667"},
		{ctx: decimal.Context{Precision: 5, Rounding: decimal.Down}, x: "2", y: "3", output: "0.66666"},
		{ctx: decimal.Context{Precision: 1}, x: "5", y: "2", output: "2"},
		{ctx: decimal.Context{Precision: 1}, x: "15", y: "2", output: "8"},
		{ctx: decimal.Context{Precision: 1, Rounding: decimal.HalfUp}, x: "5", y: "2", output: "3"},
		{ctx: decimal.Context{Precision: 3}, x: "1000000", y: "7", output: "143000"},
		{ctx: decimal.Context{Precision: 3}, x: "-1", y: "7", output: "-0.143"},
		{ctx: decimal.Context{Precision: 3}, x: "1e-10", y: "4", output: "0.000000000025"},
		// A tie after dropping digits is decided by the remainder below it.
		{ctx: decimal.Context{Precision: 2}, x: "1.2501", y: "1", output: "1.3"},
		{ctx: decimal.Context{Precision: 2}, x: "1.25", y: "1", output: "1.2"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s@%d", i, tc.x, tc.y, tc.ctx.Precision), func(t *testing.T) {
			q := tc.ctx.Quo(decimal.MustParse(tc.x), decimal.MustParse(tc.y))
			require.Equal(t, tc.output, q.String())
		})
	}

	t.Run("default", func(t *testing.T) {
		q := decimal.Context{}.Quo(decimal.New(1, 0), decimal.New(3, 0))
		require.Equal(t, "0."+strings.Repeat("3", decimal.DefaultPrecision), q.String())
	})
}

func TestRound(t *testing.T) {
	type TC struct {
		input  string
		places int32
		even   string
		up     string
		down   string
	}

	tcs := []TC{
		{input: "2.5", places: 0, even: "2", up: "3", down: "2"},
		{input: "3.5", places: 0, even: "4", up: "4", down: "3"},
		{input: "-2.5", places: 0, even: "-2", up: "-3", down: "-2"},
		{input: "1.2345", places: 3, even: "1.234", up: "1.235", down: "1.234"},
		{input: "1.2355", places: 3, even: "1.236", up: "1.236", down: "1.235"},
		{input: "0.4", places: 0, even: "0", up: "0", down: "0"},
		{input: "-0.4", places: 0, even: "-0", up: "-0", down: "-0"},
		{input: "1250", places: -2, even: "1200", up: "1300", down: "1200"},
		{input: "7", places: 2, even: "7", up: "7", down: "7"},
		{input: "NaN", places: 2, even: "NaN", up: "NaN", down: "NaN"},
		{input: "-Infinity", places: 2, even: "-Infinity", up: "-Infinity", down: "-Infinity"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s@%d", i, tc.input, tc.places), func(t *testing.T) {
			d := decimal.MustParse(tc.input)

			require.Equal(t, tc.even, decimal.Context{Rounding: decimal.HalfEven}.Round(d, tc.places).String(), "even")
			require.Equal(t, tc.up, decimal.Context{Rounding: decimal.HalfUp}.Round(d, tc.places).String(), "up")
			require.Equal(t, tc.down, decimal.Context{Rounding: decimal.Down}.Round(d, tc.places).String(), "down")
			require.Equal(t, tc.down, d.Trunc(tc.places).String(), "trunc")
		})
	}
}

func TestCmp(t *testing.T) {
	ordered := []string{"NaN", "-Infinity", "-1e+300", "-1", "-0.5", "0", "1e-300", "1", "Infinity"}

	for i := range ordered {
		for j := range ordered {
			x := decimal.MustParse(ordered[i])
			y := decimal.MustParse(ordered[j])

			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}

			require.Equal(t, want, x.Cmp(y), "%s <=> %s", ordered[i], ordered[j])
		}
	}

	require.True(t, decimal.Zero(true).Equal(decimal.Zero(false)))
	require.False(t, decimal.Zero(true).Identical(decimal.Zero(false)))
	require.True(t, decimal.MustParse("1.50").Identical(decimal.MustParse("1.5")))
}

func TestScale2(t *testing.T) {
	type TC struct {
		input  string
		n      int
		output string
	}

	tcs := []TC{
		{input: "1", n: 0, output: "1"},
		{input: "1", n: 10, output: "1024"},
		{input: "1", n: -1, output: "0.5"},
		{input: "3", n: -3, output: "0.375"},
		{input: "-0", n: -3, output: "-0"},
		{input: "-Infinity", n: 3, output: "-Infinity"},
		{
			input:  "1",
			n:      -149,
			output: "0.00000000000000000000000000000000000000000000140129846432481707092372958328991613128026194187651577175706828388979108268586060148663818836212158203125",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s*2^%d", i, tc.input, tc.n), func(t *testing.T) {
			require.Equal(t, tc.output, decimal.MustParse(tc.input).Scale2(tc.n).String())
		})
	}
}

func TestAccessors(t *testing.T) {
	d := decimal.NewFromBigInt(big.NewInt(-12345), -2)
	require.Equal(t, "-123.45", d.String())
	require.Zero(t, big.NewInt(-12345).Cmp(d.Coefficient()))
	require.Equal(t, int32(-2), d.Exponent())
	require.Equal(t, int64(2), d.AdjustedExponent())
	require.Zero(t, big.NewRat(-12345, 100).Cmp(d.Rat()))

	require.Equal(t, int64(-324), decimal.MustParse("4.9e-324").AdjustedExponent())
	require.Equal(t, int64(0), decimal.Zero(false).AdjustedExponent())
	require.Nil(t, decimal.NaN().Rat())
	require.Equal(t, "-7000", decimal.New(-7, 3).String())
}
