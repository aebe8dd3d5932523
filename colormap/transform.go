// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "math"

// Log10 is a data transform for logarithmic color scales.
// Non-positive values have no logarithm and become NaN, which maps
// to Transparent.
func Log10(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return math.Log10(v)
}

// Gamma returns a unit transform that raises the normalized value to
// the power g. g < 1 spreads the low end of the colormap.
func Gamma(g float64) func(float64) float64 {
	return func(u float64) float64 { return math.Pow(u, g) }
}

// Bands returns a unit transform that quantizes the normalized value
// into n equal bands, so a continuous colormap shows n flat colors.
func Bands(n int) func(float64) float64 {
	if n < 2 {
		return func(float64) float64 { return 0 }
	}
	return func(u float64) float64 {
		b := math.Min(math.Floor(u*float64(n)), float64(n-1))
		return b / float64(n-1)
	}
}
