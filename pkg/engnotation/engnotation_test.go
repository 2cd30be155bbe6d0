// File: engnotation_test.go
// Title: Tests for Engineering Notation
// Description: Parse and format tests for SI-prefixed and RKM-coded
//              component values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package engnotation

import (
	"math"
	"testing"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
)

func TestParseWithUnit(t *testing.T) {
	tests := []struct {
		input    string
		want     float64
		wantUnit string
	}{
		// plain and scientific
		{"4700", 4700, ""},
		{"-3333", -3333, ""},
		{"2.2e3", 2200, ""},
		{"1E-9", 1e-9, ""},
		{".47", 0.47, ""},
		{"  22  ", 22, ""},

		// SI prefixes
		{"4.7k", 4700, ""},
		{"4.7 kΩ", 4700, "Ω"},
		{"4.7K", 4700, ""},
		{"100nF", 1e-7, "F"},
		{"100 nF", 1e-7, "F"},
		{"10uH", 1e-5, "H"},
		{"10µF", 1e-5, "F"},
		{"10μF", 1e-5, "F"},
		{"3.3m", 3.3e-3, ""},
		{"1M", 1e6, ""},
		{"1Mohm", 1e6, "Ω"},
		{"2 G", 2e9, ""},
		{"1T", 1e12, ""},
		{"22pF", 22e-12, "F"},
		{"10fF", 10e-15, "F"},
		{"1 F", 1, "F"},
		{"470 Ohms", 470, "Ω"},
		{"1Ω", 1, "Ω"},

		// RKM code
		{"4k7", 4700, ""},
		{"4K7", 4700, ""},
		{"1M5", 1.5e6, ""},
		{"4R7", 4.7, ""},
		{"R47", 0.47, ""},
		{"100R", 100, ""},
		{"2n2", 2.2e-9, ""},
		{"4µ7F", 4.7e-6, "F"},
		{"-6k8", -6800, ""},
		{"4k7Ω", 4700, "Ω"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, unit, err := ParseWithUnit(tt.input)
			if err != nil {
				t.Fatalf("ParseWithUnit(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseWithUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if unit != tt.wantUnit {
				t.Errorf("ParseWithUnit(%q) unit = %q, want %q", tt.input, unit, tt.wantUnit)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"k",
		"abc",
		"4.7x",
		"4.7 kV",
		"1e",
		"2.2e3k",
		"4k7k",
		"k7",
		"1e400",
		"NaN",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, expected error", in, got)
			}
			if !rlcerror.HasCode(err, rlcerror.CodeInvalidFormat) {
				t.Errorf("Parse(%q) error code = %s, want %s", in, rlcerror.GetCode(err), rlcerror.CodeInvalidFormat)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value  float64
		unit   string
		digits int
		want   string
	}{
		{4700, "Ω", 3, "4.70 kΩ"},
		{4990, "Ω", 3, "4.99 kΩ"},
		{68, "Ω", 2, "68 Ω"},
		{1, "Ω", 3, "1.00 Ω"},
		{0.47, "Ω", 2, "470 mΩ"},
		{1e-7, "F", 3, "100 nF"},
		{2.2e-12, "F", 2, "2.2 pF"},
		{1e-5, "H", 3, "10.0 µH"},
		{1.5e6, "Ω", 2, "1.5 MΩ"},
		{-3300, "", 2, "-3.3 k"},
		{999.7, "Ω", 3, "1.00 kΩ"},
		{1e-18, "F", 3, "0.00100 fF"},
		{1e16, "", 3, "10000 T"},
		{0, "Ω", 3, "0.00 Ω"},
		{0, "", 1, "0"},
		{4700, "", 0, "5 k"},
		{math.Inf(1), "Ω", 3, "+Inf Ω"},
		{math.NaN(), "", 3, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.value, tt.unit, tt.digits); got != tt.want {
				t.Errorf("Format(%v, %q, %d) = %q, want %q", tt.value, tt.unit, tt.digits, got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{4700, 1e-7, 2.2e-12, 1.5e6, 0.47, 33}
	for _, v := range values {
		text := Format(v, "F", 3)
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(Format(%v)) = %q: %v", v, text, err)
		}
		if math.Abs(got-v) > 1e-12*math.Abs(v) {
			t.Errorf("Parse(%q) = %v, want %v", text, got, v)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("4.7 kΩ")
	}
}

func BenchmarkParseRKM(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("4k7")
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Format(4700, "Ω", 3)
	}
}
