// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

// ClipData returns the values of data that lie in [Low, High], in
// their original order. NaNs are dropped.
func (r *Range1D) ClipData(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if r.contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// MaskData reports for each value of data whether it lies in
// [Low, High]. NaN positions are false.
func (r *Range1D) MaskData(data []float64) []bool {
	out := make([]bool, len(data))
	for i, v := range data {
		out[i] = r.contains(v)
	}
	return out
}

// BoundData returns the first and last index (inclusive) of the
// longest run of consecutive values of data that lie in [Low, High].
// Ties go to the earliest run. data need not be sorted; a NaN ends a
// run. ok is false if no value is in range.
func (r *Range1D) BoundData(data []float64) (start, end int, ok bool) {
	bestLen, runStart := 0, -1
	for i := 0; i <= len(data); i++ {
		if i < len(data) && r.contains(data[i]) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			if n := i - runStart; n > bestLen {
				bestLen, start, end = n, runStart, i-1
			}
			runStart = -1
		}
	}
	return start, end, bestLen > 0
}
