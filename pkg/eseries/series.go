// File: series.go
// Title: Preferred-Value Series
// Description: The Series type wrapping an immutable ascending table of
//              normalized mantissas, plus constructors for user-defined
//              series and helpers to enumerate real component values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package eseries

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
)

// Series is an immutable, strictly ascending set of normalized values in
// [1.0, 10.0) together with its name and nominal tolerance. A *Series is
// safe for concurrent use.
type Series struct {
	name    string
	percent float64
	values  []float64
}

// newBuiltinSeries wraps a static table without validating it.
func newBuiltinSeries(name string, percent float64, values []float64) *Series {
	return &Series{name: name, percent: percent, values: values}
}

// NewSeries builds a user-defined series, for example the values actually
// kept in stock. values must be non-empty, strictly ascending and lie in
// [1.0, 10.0); percent is the nominal tolerance (0 when unknown).
// The slice is copied.
func NewSeries(name string, percent float64, values []float64) (*Series, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent < 0 {
		return nil, rlcerror.New("series tolerance must be a finite, non-negative percentage").
			WithCode(rlcerror.CodeInvalidSeries).
			WithOperation("eseries.NewSeries").
			WithDetail("series", name).
			WithDetail("percent", percent)
	}
	if err := validateValues(name, values); err != nil {
		return nil, err
	}

	own := make([]float64, len(values))
	copy(own, values)
	return &Series{name: name, percent: percent, values: own}, nil
}

// validateValues checks the series invariant: non-empty, every entry in
// [1.0, 10.0), strictly ascending.
func validateValues(name string, values []float64) error {
	if len(values) == 0 {
		return rlcerror.New("series has no values").
			WithCode(rlcerror.CodeInvalidSeries).
			WithOperation("eseries.NewSeries").
			WithDetail("series", name)
	}

	for i, v := range values {
		if !(v >= 1.0 && v < 10.0) {
			return rlcerror.Newf("series value %v at index %d is outside [1, 10)", v, i).
				WithCode(rlcerror.CodeInvalidSeries).
				WithOperation("eseries.NewSeries").
				WithDetail("series", name).
				WithDetail("index", i).
				WithDetail("value", v)
		}
		if i > 0 && v <= values[i-1] {
			return rlcerror.Newf("series value %v at index %d is not greater than %v", v, i, values[i-1]).
				WithCode(rlcerror.CodeInvalidSeries).
				WithOperation("eseries.NewSeries").
				WithDetail("series", name).
				WithDetail("index", i).
				WithDetail("value", v)
		}
	}
	return nil
}

// Name returns the series name, e.g. "E24".
func (s *Series) Name() string {
	return s.name
}

// Percent returns the nominal tolerance in percent.
func (s *Series) Percent() float64 {
	return s.percent
}

// Len returns the number of values per decade.
func (s *Series) Len() int {
	return len(s.values)
}

// At returns the i-th normalized value. It panics if i is out of range.
func (s *Series) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the normalized values.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Contains reports whether mantissa is exactly one of the series values.
func (s *Series) Contains(mantissa float64) bool {
	i := sort.SearchFloat64s(s.values, mantissa)
	return i < len(s.values) && s.values[i] == mantissa
}

// Nearest returns the series value closest to a normalized mantissa.
func (s *Series) Nearest(mantissa float64) float64 {
	return FindNearestNormalized(s.values, mantissa)
}

// Decade returns the series values scaled to one decade, e.g.
// E12.Decade(1) yields 10, 12, 15 ... 82.
func (s *Series) Decade(exponent int) []float64 {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = Denormalize(v, exponent)
	}
	return out
}

// Span returns every preferred value of the series in [lo, hi], ascending.
// Both bounds must be finite and positive with lo <= hi.
func (s *Series) Span(lo, hi float64) ([]float64, error) {
	if !(lo > 0 && hi >= lo) || math.IsInf(hi, 0) {
		return nil, rlcerror.Newf("invalid span [%v, %v]", lo, hi).
			WithCode(rlcerror.CodeValueOutOfRange).
			WithOperation("eseries.Span").
			WithDetail("series", s.name).
			WithDetail("lo", lo).
			WithDetail("hi", hi)
	}

	_, first := Normalize(lo)
	_, last := Normalize(hi)

	var out []float64
	for exp := first; exp <= last; exp++ {
		for _, v := range s.values {
			x := Denormalize(v, exp)
			if x >= lo && x <= hi {
				out = append(out, x)
			}
		}
	}
	return out, nil
}

// String returns the series name and tolerance, e.g. "E24 (5%)".
func (s *Series) String() string {
	if s.percent == 0 {
		return s.name
	}
	return fmt.Sprintf("%s (%s%%)", s.name, strconv.FormatFloat(s.percent, 'f', -1, 64))
}
