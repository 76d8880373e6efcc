package complement

import (
	"strconv"

	"github.com/calebcase/numconv/conv"
	"github.com/calebcase/numconv/decimal"
	"github.com/calebcase/numconv/numeral"
)

// Converter converts between plain numerals of bases 2 through 36, named by
// their base in decimal ("2", "16", ...), and two's-complement binary, named
// Name. It is safe for concurrent use.
type Converter struct {
	ctx   decimal.Context
	codec Codec
}

var _ conv.Converter = (*Converter)(nil)

// NewConverter returns a converter parsing non-terminating fractions with
// ctx and writing two's complement with codec.
func NewConverter(ctx decimal.Context, codec Codec) *Converter {
	return &Converter{
		ctx:   ctx,
		codec: codec,
	}
}

// Base returns the numeral base named by name. Only canonical names are
// accepted: "8" is a base, "08" is not.
func Base(name string) (base int, ok bool) {
	base, err := strconv.Atoi(name)
	if err != nil || strconv.Itoa(base) != name {
		return 0, false
	}

	if base < numeral.MinBase || base > numeral.MaxBase {
		return 0, false
	}

	return base, true
}

// Valid implements conv.Converter.
func (c *Converter) Valid(name string) bool {
	if name == Name {
		return true
	}

	_, ok := Base(name)

	return ok
}

// Convert implements conv.Converter.
func (c *Converter) Convert(from string, to []string, text string) (results []conv.Result, err error) {
	err = conv.Check(c, from, to)
	if err != nil {
		return nil, err
	}

	d, err := c.parse(from, text)
	if err != nil {
		return conv.Nones(len(to)), nil
	}

	results = make([]conv.Result, 0, len(to))
	for _, name := range to {
		s, err := c.render(name, d)
		if err != nil {
			results = append(results, conv.None)

			continue
		}

		results = append(results, conv.Some(s))
	}

	return results, nil
}

func (c *Converter) parse(name, text string) (decimal.Decimal, error) {
	if name == Name {
		return c.codec.Decode(text)
	}

	base, _ := Base(name)

	return numeral.Parse(c.ctx, base, text)
}

func (c *Converter) render(name string, d decimal.Decimal) (string, error) {
	if name == Name {
		return c.codec.Encode(d)
	}

	base, _ := Base(name)
	frac, _ := numeral.FracDigits(d, base)

	return numeral.Format(d, base, frac)
}
