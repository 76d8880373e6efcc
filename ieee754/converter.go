package ieee754

import (
	"github.com/calebcase/numconv/conv"
	"github.com/calebcase/numconv/decimal"
)

type kind uint8

const (
	decText kind = iota
	exactText
	binText
	hexText
)

type encoding struct {
	kind   kind
	format Format
}

var encodings = map[string]encoding{
	"dec":   {kind: decText},
	"dec32": {kind: exactText, format: Binary32},
	"dec64": {kind: exactText, format: Binary64},
	"bin32": {kind: binText, format: Binary32},
	"bin64": {kind: binText, format: Binary64},
	"hex32": {kind: hexText, format: Binary32},
	"hex64": {kind: hexText, format: Binary64},
}

// Names returns the encoding names owned by Converter.
func Names() []string {
	return []string{"dec", "dec32", "dec64", "bin32", "bin64", "hex32", "hex64"}
}

// Converter converts between the textual forms described in the package
// documentation. It is safe for concurrent use.
type Converter struct {
	ctx decimal.Context
}

var _ conv.Converter = (*Converter)(nil)

// NewConverter returns a converter parsing decimals with ctx.
func NewConverter(ctx decimal.Context) *Converter {
	return &Converter{
		ctx: ctx,
	}
}

// Valid implements conv.Converter.
func (c *Converter) Valid(name string) bool {
	_, ok := encodings[name]

	return ok
}

// value is a parsed source. bits is set when the source was a bit layout so
// that targets of the same format pass it through unchanged.
type value struct {
	dec  decimal.Decimal
	bits *Bits
}

// Convert implements conv.Converter.
func (c *Converter) Convert(from string, to []string, text string) (results []conv.Result, err error) {
	err = conv.Check(c, from, to)
	if err != nil {
		return nil, err
	}

	v, err := c.parse(encodings[from], text)
	if err != nil {
		return conv.Nones(len(to)), nil
	}

	results = make([]conv.Result, 0, len(to))
	for _, name := range to {
		results = append(results, conv.Some(v.render(encodings[name])))
	}

	return results, nil
}

func (c *Converter) parse(enc encoding, text string) (v value, err error) {
	var b Bits

	switch enc.kind {
	case decText, exactText:
		v.dec, err = c.ctx.Parse(text)
		if err != nil {
			return value{}, err
		}

		if enc.kind == exactText {
			b = Encode(v.dec, enc.format)
			v.dec = Decode(b)
			v.bits = &b
		}

		return v, nil
	case binText:
		b, err = ParseBin(enc.format, text)
	case hexText:
		b, err = ParseHex(enc.format, text)
	}
	if err != nil {
		return value{}, err
	}

	v.dec = Decode(b)
	v.bits = &b

	return v, nil
}

func (v value) layout(f Format) Bits {
	if v.bits != nil && v.bits.Format == f {
		return *v.bits
	}

	return Encode(v.dec, f)
}

func (v value) render(enc encoding) string {
	switch enc.kind {
	case exactText:
		return Decode(v.layout(enc.format)).String()
	case binText:
		return FormatBin(v.layout(enc.format))
	case hexText:
		return FormatHex(v.layout(enc.format))
	}

	if v.bits != nil {
		return FormatShortest(*v.bits)
	}

	return v.dec.String()
}
