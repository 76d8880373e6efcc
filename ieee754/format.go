package ieee754

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("ieee754")

// Format describes a binary interchange format.
type Format struct {
	Name         string
	Width        uint
	ExponentBits uint
	MantissaBits uint
}

// Supported formats.
var (
	Binary32 = Format{Name: "binary32", Width: 32, ExponentBits: 8, MantissaBits: 23}
	Binary64 = Format{Name: "binary64", Width: 64, ExponentBits: 11, MantissaBits: 52}
)

// FormatOf returns the format with the given width in bits.
func FormatOf(width uint) (Format, bool) {
	switch width {
	case 32:
		return Binary32, true
	case 64:
		return Binary64, true
	}

	return Format{}, false
}

// Bias is the exponent bias.
func (f Format) Bias() int {
	return 1<<(f.ExponentBits-1) - 1
}

// MinExponent is the unbiased exponent of the smallest normal number and of
// all subnormals.
func (f Format) MinExponent() int {
	return 1 - f.Bias()
}

// MaxExponent is the unbiased exponent of the largest finite number.
func (f Format) MaxExponent() int {
	return f.Bias()
}

func (f Format) maxBiased() uint64 {
	return 1<<f.ExponentBits - 1
}

func (f Format) mantissaMask() uint64 {
	return 1<<f.MantissaBits - 1
}

func (f Format) quietNaN() uint64 {
	return 1 << (f.MantissaBits - 1)
}

// decimalRange returns the decimal exponents outside of which values
// certainly overflow or underflow.
func (f Format) decimalRange() (lo, hi int64) {
	hi = int64(float64(f.MaxExponent()+1)*math.Log10(2)) + 1
	lo = int64(math.Floor(float64(f.MinExponent()-int(f.MantissaBits)-1)*math.Log10(2))) - 1

	return lo, hi
}

func (f Format) String() string {
	return f.Name
}
