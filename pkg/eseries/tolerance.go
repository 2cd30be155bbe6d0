// File: tolerance.go
// Title: Tolerance Classes
// Description: The closed set of tolerance classes and the dispatch from a
//              class to its preferred-value series.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package eseries

import (
	"strconv"
	"strings"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
)

// Tolerance selects a tolerance class. The zero value is not a valid class.
type Tolerance int

const (
	// Exact disables quantization; values pass through unchanged.
	Exact Tolerance = iota + 1
	// Tol20 selects the E6 series.
	Tol20
	// Tol10 selects the E12 series.
	Tol10
	// Tol5 selects the E24 series.
	Tol5
	// Tol2 selects the E48 series.
	Tol2
	// Tol1 selects the E96 series.
	Tol1
	// Tol0p5 selects the E192 series.
	Tol0p5
)

type toleranceInfo struct {
	label   string
	percent float64
	series  *Series
}

var toleranceTable = map[Tolerance]toleranceInfo{
	Exact:  {"exact", 0, nil},
	Tol20:  {"20p0", 20, E6},
	Tol10:  {"10p0", 10, E12},
	Tol5:   {"5p0", 5, E24},
	Tol2:   {"2p0", 2, E48},
	Tol1:   {"1p0", 1, E96},
	Tol0p5: {"0p5", 0.5, E192},
}

// toleranceAliases maps every accepted spelling to its class: the label,
// the percent form and the series name.
var toleranceAliases = buildToleranceAliases()

func buildToleranceAliases() map[string]Tolerance {
	aliases := make(map[string]Tolerance, 3*len(toleranceTable))
	for tol, info := range toleranceTable {
		aliases[info.label] = tol
		if info.series == nil {
			continue
		}
		aliases[strconv.FormatFloat(info.percent, 'f', -1, 64)+"%"] = tol
		aliases[strings.ToLower(info.series.Name())] = tol
	}
	return aliases
}

// Tolerances returns every valid class, coarsest first after Exact.
func Tolerances() []Tolerance {
	return []Tolerance{Exact, Tol20, Tol10, Tol5, Tol2, Tol1, Tol0p5}
}

// ParseTolerance resolves a label such as "5p0", "5%" or "E24"
// (case-insensitive, surrounding space ignored). Anything else is an
// INVALID_TOLERANCE error; there is no fallback class.
func ParseTolerance(s string) (Tolerance, error) {
	if tol, ok := toleranceAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return tol, nil
	}
	return 0, rlcerror.Newf("unknown tolerance %q", s).
		WithCode(rlcerror.CodeInvalidTolerance).
		WithOperation("eseries.ParseTolerance").
		WithDetail("input", s)
}

// IsValid reports whether t is one of the defined classes.
func (t Tolerance) IsValid() bool {
	_, ok := toleranceTable[t]
	return ok
}

// String returns the class label ("exact", "20p0" ... "0p5").
func (t Tolerance) String() string {
	if info, ok := toleranceTable[t]; ok {
		return info.label
	}
	return "Tolerance(" + strconv.Itoa(int(t)) + ")"
}

// Percent returns the nominal tolerance in percent, 0 for Exact.
func (t Tolerance) Percent() float64 {
	return toleranceTable[t].percent
}

// Series returns the class's series, nil for Exact or an invalid class.
func (t Tolerance) Series() *Series {
	return toleranceTable[t].series
}

// MarshalText implements encoding.TextMarshaler.
func (t Tolerance) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, invalidTolerance(t, "eseries.MarshalText")
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseTolerance.
func (t *Tolerance) UnmarshalText(text []byte) error {
	tol, err := ParseTolerance(string(text))
	if err != nil {
		return err
	}
	*t = tol
	return nil
}

// SeriesFor returns the series for a class. For Exact it returns a nil
// series and a nil error, meaning pass-through.
func SeriesFor(t Tolerance) (*Series, error) {
	info, ok := toleranceTable[t]
	if !ok {
		return nil, invalidTolerance(t, "eseries.SeriesFor")
	}
	return info.series, nil
}

// ErrInvalidTolerance matches, via errors.Is, every error reporting an
// unknown tolerance class.
var ErrInvalidTolerance = rlcerror.New("invalid tolerance").WithCode(rlcerror.CodeInvalidTolerance)

func invalidTolerance(t Tolerance, operation string) error {
	return rlcerror.Newf("tolerance %d is not a defined class", int(t)).
		WithCode(rlcerror.CodeInvalidTolerance).
		WithOperation(operation).
		WithDetail("tolerance", int(t))
}
