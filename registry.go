package numconv

import (
	"github.com/calebcase/numconv/complement"
	"github.com/calebcase/numconv/conv"
	"github.com/calebcase/numconv/decimal"
	"github.com/calebcase/numconv/ieee754"
)

// Result is the outcome of converting into one target encoding.
type Result = conv.Result

// Converter converts values between the encodings it owns.
type Converter = conv.Converter

// UnknownEncoding is the class of errors for encoding names no converter
// owns. It is the class used by every converter.
var UnknownEncoding = &conv.UnknownEncoding

// Registry dispatches conversions to converters by encoding name. A Registry
// is read-only after construction and safe for concurrent use.
type Registry struct {
	converters []Converter
}

// NewRegistry returns a registry over converters. When several converters
// own a conversion the first one given wins.
func NewRegistry(converters ...Converter) *Registry {
	return &Registry{
		converters: append([]Converter(nil), converters...),
	}
}

// NewDefaultRegistry returns a registry with the IEEE-754 and two's-complement
// converters, reading decimals with ctx.
func NewDefaultRegistry(ctx decimal.Context) *Registry {
	return NewRegistry(
		ieee754.NewConverter(ctx),
		complement.NewConverter(ctx, complement.Codec{}),
	)
}

// Valid reports whether any converter owns the encoding name.
func (r *Registry) Valid(name string) bool {
	for _, c := range r.converters {
		if c.Valid(name) {
			return true
		}
	}

	return false
}

// Convert converts value from one encoding to another. ok is false when the
// value cannot be read or written.
func (r *Registry) Convert(from, to, value string) (s string, ok bool, err error) {
	results, err := r.ConvertToMultiple(from, []string{to}, value)
	if err != nil {
		return "", false, err
	}

	return results[0].Value, results[0].OK, nil
}

// ConvertToMultiple reads value once and writes it in every target encoding,
// in order.
func (r *Registry) ConvertToMultiple(from string, to []string, value string) (results []Result, err error) {
	c, err := r.owner(from, to)
	if err != nil {
		return nil, err
	}

	return c.Convert(from, to, value)
}

// Base converts between numeral bases, named "2" through "36", and
// two's-complement binary, named "2-compl".
func (r *Registry) Base(from, to, value string) (s string, ok bool, err error) {
	for _, name := range []string{from, to} {
		if _, isBase := complement.Base(name); !isBase && name != complement.Name {
			return "", false, UnknownEncoding.New("%q is not a numeral base", name)
		}
	}

	return r.Convert(from, to, value)
}

// owner returns the first converter owning every name.
func (r *Registry) owner(from string, to []string) (Converter, error) {
	for _, c := range r.converters {
		if conv.Check(c, from, to) == nil {
			return c, nil
		}
	}

	err := conv.Check(r, from, to)
	if err != nil {
		return nil, err
	}

	return nil, UnknownEncoding.New("no converter from %q to %q", from, to)
}
