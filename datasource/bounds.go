// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/stats"
)

// floatBounds returns the extent of data ignoring NaNs.
//
// Empty data has bounds (0, 0) and a single value v has bounds (v, v),
// even if v is NaN. If every value is NaN the bounds are (NaN, NaN).
// Infinities are valid bounds.
func floatBounds(data []float64, order SortOrder) (lo, hi float64) {
	switch len(data) {
	case 0:
		return 0, 0
	case 1:
		return data[0], data[0]
	}

	first, last := data[0], data[len(data)-1]
	if !math.IsNaN(first) && !math.IsNaN(last) {
		switch order {
		case Ascending:
			return first, last
		case Descending:
			return last, first
		}
	}

	clean := dropNaN(data)
	if len(clean) == 0 {
		return math.NaN(), math.NaN()
	}
	return stats.Bounds(clean)
}

// dropNaN returns data without NaNs. It returns data itself if there
// are none.
func dropNaN(data []float64) []float64 {
	for i, v := range data {
		if !math.IsNaN(v) {
			continue
		}
		clean := make([]float64, i, len(data)-1)
		copy(clean, data[:i])
		for _, v := range data[i+1:] {
			if !math.IsNaN(v) {
				clean = append(clean, v)
			}
		}
		return clean
	}
	return data
}

// stringBounds returns the lexicographic extent of data.
func stringBounds(data []string, order SortOrder) (lo, hi string) {
	switch {
	case len(data) == 0:
		return "", ""
	case order == Ascending:
		return data[0], data[len(data)-1]
	case order == Descending:
		return data[len(data)-1], data[0]
	}
	return slice.Min(data).(string), slice.Max(data).(string)
}

// mergeBounds widens (lo, hi) to include (lo2, hi2), ignoring NaNs.
func mergeBounds(lo, hi, lo2, hi2 float64) (float64, float64) {
	if math.IsNaN(lo) || (!math.IsNaN(lo2) && lo2 < lo) {
		lo = lo2
	}
	if math.IsNaN(hi) || (!math.IsNaN(hi2) && hi2 > hi) {
		hi = hi2
	}
	return lo, hi
}

// column returns the axis'th coordinate of every point.
func column(pts [][2]float64, axis int) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p[axis]
	}
	return out
}

// reverseMap returns the index of the value in sorted data closest to
// v. Ties go to the lower index.
func reverseMap(data []float64, v float64, order SortOrder) (int, error) {
	n := len(data)
	if n == 0 || math.IsNaN(v) {
		return 0, ErrNoIndex
	}
	var i int
	switch order {
	case Ascending:
		i = sort.SearchFloat64s(data, v)
	case Descending:
		i = sort.Search(n, func(i int) bool { return data[i] <= v })
	default:
		panic("reverseMap of unordered data")
	}
	if i == 0 {
		return 0, nil
	}
	if i == n {
		return n - 1, nil
	}
	if math.Abs(v-data[i-1]) <= math.Abs(data[i]-v) {
		return i - 1, nil
	}
	return i, nil
}
