// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

import "math"

// A BoundsFunc computes the auto ends of a range from the extremes of
// its sources' data. It replaces the margin padding (and the
// tight-bounds choice) of the default resolution. Explicit and
// tracking ends are still resolved as usual.
type BoundsFunc func(dataLow, dataHigh, margin float64, tight bool) (low, high float64)

// policy is everything calcBounds needs besides the data.
type policy struct {
	low, high Setting
	margin    float64
	tight     bool
	epsilon   float64
	tracking  float64
	boundsFn  BoundsFunc
}

// calcBounds resolves a range from the per-source bounds in mins and
// maxes. NaN bounds (sources holding only NaN) are skipped.
func calcBounds(p policy, mins, maxes []float64) (low, high float64) {
	dataLow, dataHigh := math.Inf(1), math.Inf(-1)
	have := false
	for i := range mins {
		lo, hi := mins[i], maxes[i]
		if math.IsNaN(lo) || math.IsNaN(hi) {
			continue
		}
		have = true
		dataLow, dataHigh = math.Min(dataLow, lo), math.Max(dataHigh, hi)
	}

	if !have {
		low, high = math.Inf(-1), math.Inf(1)
		if v, ok := p.low.Value(); ok {
			low = v
		}
		if v, ok := p.high.Value(); ok {
			high = v
		}
		return p.track(low, high)
	}

	if p.low.IsAuto() && p.high.IsAuto() && degenerate(dataLow, dataHigh, p.epsilon) {
		return bracket(dataLow)
	}

	autoLow, autoHigh := dataLow, dataHigh
	switch {
	case p.boundsFn != nil:
		autoLow, autoHigh = p.boundsFn(dataLow, dataHigh, p.margin, p.tight)
	case !p.tight:
		if w := dataHigh - dataLow; !math.IsInf(w, 0) {
			autoLow -= p.margin * w
			autoHigh += p.margin * w
		}
	}

	low, high = autoLow, autoHigh
	if v, ok := p.low.Value(); ok {
		low = v
	}
	if v, ok := p.high.Value(); ok {
		high = v
	}
	return p.track(low, high)
}

// track places a tracking end p.tracking away from the other end. An
// unresolved (infinite) fixed end leaves the tracking end infinite.
// At most one end tracks; the setters reject both.
func (p policy) track(low, high float64) (float64, float64) {
	switch {
	case p.low.IsTrack():
		if math.IsInf(high, 0) {
			return math.Inf(-1), high
		}
		low = high - p.tracking
	case p.high.IsTrack():
		if math.IsInf(low, 0) {
			return low, math.Inf(1)
		}
		high = low + p.tracking
	}
	return low, high
}

// degenerate reports whether the finite interval [lo, hi] is too
// narrow to draw.
func degenerate(lo, hi, epsilon float64) bool {
	d := math.Abs(hi - lo)
	return !math.IsInf(d, 0) && d <= math.Abs(epsilon*lo)
}

// bracket returns an interval around the constant v: the decade
// containing v for |v| >= 1, [0, 2v] for 0 < v < 1, mirrored for
// negative v and [-1, 1] for zero.
func bracket(v float64) (lo, hi float64) {
	switch {
	case v == 0:
		return -1, 1
	case math.IsInf(v, 0):
		return v, v
	case v < 0:
		lo, hi = bracket(-v)
		return -hi, -lo
	case v < 1:
		return 0, 2 * v
	}
	k := int(math.Floor(math.Log10(v)))
	// Log10 can be off by one ulp at exact powers of ten.
	if math.Pow10(k) > v {
		k--
	} else if math.Pow10(k+1) <= v {
		k++
	}
	return math.Pow10(k), math.Pow10(k + 1)
}
