// File: nearest.go
// Title: Normalized Nearest-Value Search
// Description: Binary search for the series entry closest to a normalized
//              target, ties resolving to the lower neighbour.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package eseries

import "sort"

// FindNearestNormalized returns the element of values closest to target.
//
// values must be non-empty and sorted ascending; target must be finite.
// Targets below the first or above the last element clamp to that element.
// When target lies exactly halfway between two neighbours the lower one is
// returned.
func FindNearestNormalized(values []float64, target float64) float64 {
	idx := sort.SearchFloat64s(values, target)

	if idx == 0 {
		return values[0]
	}
	if idx == len(values) {
		return values[len(values)-1]
	}

	before, after := values[idx-1], values[idx]
	if after-target < target-before {
		return after
	}
	return before
}
