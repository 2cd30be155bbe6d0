// File: doc.go
// Title: Package Documentation for eseries
// Description: Package eseries quantizes component values to the IEC 60063
//              preferred-number series E6 through E192.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package eseries replaces an ideal, computed resistance, capacitance or
// inductance with the nearest value that can actually be bought.
//
// Overview
//
// Standard components are only manufactured in a small number of values per
// decade. Which values exist depends on the tolerance class:
//
//	Tolerance  Series  Values per decade
//	20 %       E6        6
//	10 %       E12      12
//	5 %        E24      24
//	2 %        E48      48
//	1 %        E96      96
//	0.5 %      E192    192
//
// Quantize splits a value into mantissa and decimal exponent, finds the
// nearest series entry to the mantissa with FindNearestNormalized and
// rebuilds the value with the original sign and exponent:
//
//	r, err := eseries.Quantize(4990, eseries.Tol1)  // 4990 (4.99 is in E96)
//	c, err := eseries.Quantize(0.0047, eseries.Tol10) // 0.0047 (4.7 mF)
//
// Tolerance classes
//
// Tolerance is a closed enumeration. ParseTolerance accepts exactly the
// labels "exact", "20p0", "10p0", "5p0", "2p0", "1p0" and "0p5", their
// percent forms ("5%") and the series names ("E24"). Unknown input is an
// error matching ErrInvalidTolerance and is never mapped to a default class.
//
// Special values
//
//   - 0 quantizes to 0
//   - NaN and ±Inf are returned unchanged
//   - Exact returns the input unchanged
//
// Decade boundary
//
// The largest entry of every series lies below 10. A mantissa above it is
// clamped to that entry instead of rolling over into the next decade, so
// 9990 Ω at 0.5 % becomes 9880 Ω, not 10 kΩ.
//
// Ties
//
// A target exactly halfway between two neighbours resolves to the lower
// one. In float64, 4.99 lies exactly halfway between 4.87 and 5.11, so
// 4990 at 2 % yields 4870.
//
// Custom series
//
// NewSeries validates and wraps any ascending list of mantissas in
// [1, 10), e.g. the values in a parts drawer, for use with QuantizeSeries.
//
// Concurrency
//
// All functions are pure. The built-in series are read-only and may be
// shared across goroutines without synchronization.
package eseries
