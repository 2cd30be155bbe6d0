// File: quantize.go
// Title: Preferred-Value Quantizer
// Description: Splits a value into decimal exponent and mantissa, snaps the
//              mantissa to a series and rebuilds the full-scale value with the
//              original sign and exponent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package eseries

import (
	"bytes"
	"math"
	"strconv"
)

// maxScaleStep keeps every math.Pow10 argument finite while scaling
// subnormal or near-overflow magnitudes.
const maxScaleStep = 300

// Quantize returns the value of tolerance class tol nearest to value.
//
// An invalid tol is reported as an error matching ErrInvalidTolerance.
// Otherwise the call cannot fail: 0 yields 0, NaN and ±Inf are returned
// unchanged, Exact returns value itself, and every other input keeps its
// sign and decimal exponent. A mantissa above the last series entry is
// clamped to that entry rather than rolled into the next decade, so
// 9990 at 0.5 % yields 9880.
func Quantize(value float64, tol Tolerance) (float64, error) {
	series, err := SeriesFor(tol)
	if err != nil {
		return 0, err
	}
	return QuantizeSeries(value, series), nil
}

// MustQuantize is like Quantize but panics on an invalid tolerance.
func MustQuantize(value float64, tol Tolerance) float64 {
	q, err := Quantize(value, tol)
	if err != nil {
		panic(err)
	}
	return q
}

// QuantizeLabel parses label with ParseTolerance and quantizes value.
func QuantizeLabel(value float64, label string) (float64, error) {
	tol, err := ParseTolerance(label)
	if err != nil {
		return 0, err
	}
	return Quantize(value, tol)
}

// QuantizeSeries snaps value to series. A nil series passes value through.
func QuantizeSeries(value float64, series *Series) float64 {
	switch {
	case value == 0:
		return 0
	case math.IsNaN(value), math.IsInf(value, 0):
		return value
	case series == nil:
		return value
	}

	mantissa, exponent := Normalize(value)
	result := Denormalize(series.Nearest(mantissa), exponent)
	if value < 0 {
		return -result
	}
	return result
}

// Normalize splits |x| into mantissa and decimal exponent with
// |x| = mantissa * 10^exponent. The exponent is that of the shortest decimal
// representation of x, so Normalize(1000) is (1, 3) and Normalize(0.0047)
// is (4.7, -3). Rounding can leave the mantissa a hair outside [1, 10).
// Zero, NaN and ±Inf are returned as |x| with exponent 0.
func Normalize(x float64) (mantissa float64, exponent int) {
	x = math.Abs(x)
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x, 0
	}
	exponent = decimalExponent(x)
	return scale10(x, -exponent), exponent
}

// Denormalize returns mantissa * 10^exponent.
func Denormalize(mantissa float64, exponent int) float64 {
	return scale10(mantissa, exponent)
}

// ErrorPercent returns the relative deviation of quantized from exact in
// percent. It is 0 when both are zero and +Inf when only exact is zero.
func ErrorPercent(exact, quantized float64) float64 {
	if exact == 0 {
		if quantized == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return 100 * math.Abs(quantized-exact) / math.Abs(exact)
}

// decimalExponent returns the exponent of x's shortest round-trip decimal
// form. math.Log10 is not exact at powers of ten (Log10(1000) < 3).
func decimalExponent(x float64) int {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], x, 'e', -1, 64)
	i := bytes.IndexByte(b, 'e')
	exp, err := strconv.Atoi(string(b[i+1:]))
	if err != nil {
		return int(math.Floor(math.Log10(x)))
	}
	return exp
}

// scale10 returns x * 10^e. Negative exponents divide by 10^-e.
func scale10(x float64, e int) float64 {
	for e > maxScaleStep {
		x *= 1e300
		e -= maxScaleStep
	}
	for e < -maxScaleStep {
		x /= 1e300
		e += maxScaleStep
	}
	if e >= 0 {
		return x * math.Pow10(e)
	}
	return x / math.Pow10(-e)
}
