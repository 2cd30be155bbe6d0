// File: nearest_test.go
// Title: Tests for the Normalized Nearest-Value Search
// Description: Edge, tie-break and exhaustive property tests comparing the
//              binary search against a linear scan.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package eseries

import (
	"math"
	"math/rand"
	"testing"
)

func TestFindNearestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		target float64
		want   float64
	}{
		{"below first", []float64{1, 2, 3}, 0.5, 1},
		{"equal first", []float64{1, 2, 3}, 1, 1},
		{"above last", []float64{1, 2, 3}, 9.99, 3},
		{"equal last", []float64{1, 2, 3}, 3, 3},
		{"interior member", []float64{1, 2, 3}, 2, 2},
		{"closer to upper", []float64{1, 2, 3}, 1.6, 2},
		{"closer to lower", []float64{1, 2, 3}, 2.4, 2},
		{"tie resolves lower", []float64{1, 2, 3}, 1.5, 1},
		{"second tie resolves lower", []float64{1, 2, 3}, 2.5, 2},
		{"single element below", []float64{4.7}, 1.0, 4.7},
		{"single element above", []float64{4.7}, 9.9, 4.7},
		{"E48 exact float tie", e48Values[:], 4.99, 4.87},
		{"E48 clearly upper", e48Values[:], 4.995, 5.11},
		{"E24 member", e24Values[:], 4.7, 4.7},
		{"E6 top clamp", e6Values[:], 9.99, 6.8},
		{"E192 mantissa rounded to ten", e192Values[:], 10.0, 9.88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindNearestNormalized(tt.values, tt.target); got != tt.want {
				t.Errorf("FindNearestNormalized(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

// linearNearest is the reference: first element with the smallest distance.
func linearNearest(values []float64, target float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if math.Abs(v-target) < math.Abs(best-target) {
			best = v
		}
	}
	return best
}

func TestFindNearestNormalizedMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(60063))
	builtin := []*Series{E6, E12, E24, E48, E96, E192}

	for _, s := range builtin {
		values := s.Values()

		targets := make([]float64, 0, 2000+3*len(values))
		for i := 0; i < 2000; i++ {
			targets = append(targets, 1+9*rng.Float64())
		}
		for i, v := range values {
			targets = append(targets, v)
			if i > 0 {
				targets = append(targets, (v+values[i-1])/2)
			}
		}
		targets = append(targets, 1.0, math.Nextafter(10, 0))

		for _, target := range targets {
			got := FindNearestNormalized(values, target)
			want := linearNearest(values, target)
			if got != want {
				t.Fatalf("%s: FindNearestNormalized(%v) = %v, linear scan gives %v", s.Name(), target, got, want)
			}
			if !s.Contains(got) {
				t.Fatalf("%s: result %v is not a series member", s.Name(), got)
			}
		}
	}
}
