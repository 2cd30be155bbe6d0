// File: engnotation.go
// Title: Engineering Notation for Component Values
// Description: Parses and formats component values written with SI prefixes
//              ("4.7k", "100nF", "2.2e3 Ω") and the RKM code used on parts
//              and schematics ("4k7", "1M5", "4R7").
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package engnotation converts between float64 component values and the
// engineering notation used for resistors, capacitors and inductors.
package engnotation

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	"github.com/msto63/nearestrlc/pkg/eseries"
)

// Prefix is an SI prefix together with its power of ten.
type Prefix struct {
	Symbol   string
	Exponent int
}

// Parse-side prefixes, longest symbols first. "R" is the RKM decimal
// marker and "K" the upper-case kilo printed on many parts.
var parsePrefixes = []Prefix{
	{"\u00b5", -6}, // micro sign
	{"\u03bc", -6}, // greek mu
	{"f", -15},
	{"p", -12},
	{"n", -9},
	{"u", -6},
	{"m", -3},
	{"R", 0},
	{"k", 3},
	{"K", 3},
	{"M", 6},
	{"G", 9},
	{"T", 12},
}

// Format-side prefixes indexed by (exponent+15)/3.
var formatPrefixes = []string{"f", "p", "n", "\u00b5", "m", "", "k", "M", "G", "T"}

const (
	minPrefixExponent = -15
	maxPrefixExponent = 12
)

var knownUnits = map[string]string{
	"Ω":      "Ω",
	"\u2126": "Ω", // ohm sign
	"ohm":    "Ω",
	"ohms":   "Ω",
	"F":      "F",
	"H":      "H",
}

// Parse returns the value of s, discarding any unit.
func Parse(s string) (float64, error) {
	v, _, err := ParseWithUnit(s)
	return v, err
}

// ParseWithUnit parses s and also returns its unit, normalised so that "ohm"
// and the ohm sign both become "Ω". The unit is empty when s carries none.
//
// Accepted forms:
//
//	4700  4.7e3  4.7k  4.7 kΩ  4k7  4K7  4R7  R47  100R  100nF  2u2  1M5
func ParseWithUnit(s string) (float64, string, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, "", invalidFormat(s, "empty value")
	}

	if v, unit, ok := parseRKM(in); ok {
		return v, unit, nil
	}

	end, hasExp := scanNumber(in)
	if end == 0 {
		return 0, "", invalidFormat(s, "no numeric part")
	}
	number := in[:end]

	exp, unit, ok := splitSuffix(strings.TrimLeftFunc(in[end:], unicode.IsSpace))
	if !ok {
		return 0, "", invalidFormat(s, "unknown prefix or unit")
	}
	if hasExp && exp != 0 {
		return 0, "", invalidFormat(s, "exponent and SI prefix cannot be combined")
	}
	if !hasExp && exp != 0 {
		number += "e" + strconv.Itoa(exp)
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, "", rlcerror.Wrap(err, "parse numeric part").
			WithCode(rlcerror.CodeInvalidFormat).
			WithOperation("engnotation.Parse").
			WithDetail("input", s)
	}
	return v, unit, nil
}

// parseRKM handles the RKM code, where the prefix letter replaces the
// decimal point: 4k7 = 4.7 k, R47 = 0.47, 2n2 = 2.2 n.
func parseRKM(s string) (float64, string, bool) {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[:i]

	p, ok := matchPrefix(s[i:])
	if !ok {
		return 0, "", false
	}
	rest := s[i+len(p.Symbol):]

	j := 0
	for j < len(rest) && isDigit(rest[j]) {
		j++
	}
	fracPart := rest[:j]
	if fracPart == "" || (intPart == "" && p.Symbol != "R") {
		return 0, "", false
	}

	unit, ok := normalizeUnit(strings.TrimLeftFunc(rest[j:], unicode.IsSpace))
	if !ok {
		return 0, "", false
	}
	if intPart == "" {
		intPart = "0"
	}

	v, err := strconv.ParseFloat(sign+intPart+"."+fracPart+"e"+strconv.Itoa(p.Exponent), 64)
	if err != nil {
		return 0, "", false
	}
	return v, unit, true
}

// scanNumber returns the length of the leading decimal number in s and
// whether it carries an exponent.
func scanNumber(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			return j, true
		}
	}
	return i, false
}

// splitSuffix splits what follows the number into a prefix exponent and a
// unit. A suffix that is itself a unit wins over a prefix reading ("F" is
// farad, "f" is femto).
func splitSuffix(suffix string) (int, string, bool) {
	if unit, ok := normalizeUnit(suffix); ok {
		return 0, unit, true
	}

	p, ok := matchPrefix(suffix)
	if !ok {
		return 0, "", false
	}
	unit, ok := normalizeUnit(strings.TrimLeftFunc(suffix[len(p.Symbol):], unicode.IsSpace))
	if !ok {
		return 0, "", false
	}
	return p.Exponent, unit, true
}

func matchPrefix(s string) (Prefix, bool) {
	for _, p := range parsePrefixes {
		if strings.HasPrefix(s, p.Symbol) {
			return p, true
		}
	}
	return Prefix{}, false
}

func normalizeUnit(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	if unit, ok := knownUnits[s]; ok {
		return unit, true
	}
	unit, ok := knownUnits[strings.ToLower(s)]
	return unit, ok && unit == "Ω"
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func invalidFormat(input, reason string) error {
	return rlcerror.Newf("invalid component value %q: %s", input, reason).
		WithCode(rlcerror.CodeInvalidFormat).
		WithOperation("engnotation.Parse").
		WithDetail("input", input)
}

// Format renders value with an SI prefix chosen so that the printed
// mantissa lies in [1, 1000), rounded to the given number of significant
// digits: Format(4700, "Ω", 3) = "4.70 kΩ". Values beyond the femto..tera
// range keep the outermost prefix.
func Format(value float64, unit string, digits int) string {
	if digits < 1 {
		digits = 1
	}

	switch {
	case math.IsNaN(value), math.IsInf(value, 0):
		return join(strconv.FormatFloat(value, 'f', -1, 64), "", unit)
	case value == 0:
		return join(strconv.FormatFloat(0, 'f', digits-1, 64), "", unit)
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	mantissa, exponent := eseries.Normalize(value)
	prefixExp := clampPrefix(floorDiv3(exponent) * 3)

	text, scaled := scaleAndRound(mantissa, exponent, prefixExp, digits)
	if scaled >= 1000 && prefixExp < maxPrefixExponent {
		// rounding carried into the next prefix, e.g. 999.7 -> 1.00 k
		prefixExp += 3
		text = strconv.FormatFloat(scaled/1000, 'f', digits-1, 64)
	}

	return join(sign+text, formatPrefixes[(prefixExp-minPrefixExponent)/3], unit)
}

// scaleAndRound expresses mantissa·10^exponent in units of 10^prefixExp with
// the requested significant digits.
func scaleAndRound(mantissa float64, exponent, prefixExp, digits int) (string, float64) {
	shift := exponent - prefixExp
	precision := digits - 1 - shift
	if precision < 0 {
		precision = 0
	}

	text := strconv.FormatFloat(eseries.Denormalize(mantissa, shift), 'f', precision, 64)
	rounded, _ := strconv.ParseFloat(text, 64)
	return text, rounded
}

func floorDiv3(n int) int {
	if n >= 0 {
		return n / 3
	}
	return -((-n + 2) / 3)
}

func clampPrefix(exp int) int {
	if exp < minPrefixExponent {
		return minPrefixExponent
	}
	if exp > maxPrefixExponent {
		return maxPrefixExponent
	}
	return exp
}

func join(number, prefix, unit string) string {
	if prefix == "" && unit == "" {
		return number
	}
	return number + " " + prefix + unit
}
