// Package conv defines the contract between the conversion registry and the
// codecs it dispatches to.
//
// A converter owns a set of encoding names. Converting a value parses it once
// from the source encoding and renders it into each requested target:
//
//	from ──parse──▶ value ──render──▶ to[0]
//	                      ──render──▶ to[1]
//	                      ...
//
// Data that does not parse, or cannot be rendered into a target, yields a
// Result with OK set to false. Only names the converter does not own are
// reported as errors, of class UnknownEncoding.
package conv

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/zeebo/errs"
)

// UnknownEncoding is the class of errors for encoding names no converter
// owns.
var UnknownEncoding = errs.Class("unknown encoding")

// Result is the outcome of rendering one target encoding.
type Result struct {
	Value string
	OK    bool
}

// Some returns a successful result.
func Some(value string) Result {
	return Result{Value: value, OK: true}
}

// None is the result of a conversion without a value.
var None = Result{}

// String returns the value, or "undefined" for None.
func (r Result) String() string {
	if !r.OK {
		return "undefined"
	}

	return r.Value
}

// Validator reports whether it owns an encoding name.
type Validator interface {
	Valid(name string) bool
}

// Converter converts values between the encodings it owns.
type Converter interface {
	Validator

	// Convert parses value from the source encoding and renders it into
	// every target, in order.
	Convert(from string, to []string, value string) ([]Result, error)
}

// Nones returns n failed results.
func Nones(n int) []Result {
	return make([]Result, n)
}

// Check returns an UnknownEncoding error listing every name v does not own.
func Check(v Validator, from string, to []string) error {
	var unknown *multierror.Error

	for _, name := range append([]string{from}, to...) {
		if !v.Valid(name) {
			unknown = multierror.Append(unknown, fmt.Errorf("%q", name))
		}
	}

	return UnknownEncoding.Wrap(unknown.ErrorOrNil())
}
