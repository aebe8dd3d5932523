// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"math"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/juju/errors"
)

// ErrNoIndex is returned by reverse mapping when no index corresponds
// to the value: the source is empty, the value is NaN, or (for
// ReverseMapWithin) the value is outside the data bounds.
var ErrNoIndex = errors.New("datasource: no index for value")

// Array is a 1-D source of float64 samples.
type Array struct {
	base
	data   []float64
	order  SortOrder
	bounds cache[[2]float64]
}

// NewArray returns an unordered Array over data.
func NewArray(data []float64) *Array {
	return NewSortedArray(data, SortNone)
}

// NewSortedArray returns an Array over data, which the caller
// asserts is ordered by order.
func NewSortedArray(data []float64, order SortOrder) *Array {
	a := &Array{data: data, order: order}
	a.init(a, a.bounds.clear)
	return a
}

func (a *Array) Kind() Kind { return ScalarKind }

func (a *Array) Size() int { return len(a.data) }

// Data returns the samples.
func (a *Array) Data() []float64 { return a.data }

// DataSlice returns data[start:end], with start and end clamped to
// the data.
func (a *Array) DataSlice(start, end int) []float64 {
	start, end = clampSlice(start, end, len(a.data))
	return a.data[start:end]
}

// DataMask returns the samples and the mask, which is all true if no
// mask is set.
func (a *Array) DataMask() ([]float64, []bool) {
	return a.data, a.Mask()
}

func (a *Array) SortOrder() SortOrder { return a.order }

// SetData replaces the samples, keeping the sort order. A mask whose
// length no longer matches is discarded.
func (a *Array) SetData(data []float64) {
	a.data = data
	a.dataChanged()
}

// SetDataSorted replaces the samples and their sort order.
func (a *Array) SetDataSorted(data []float64, order SortOrder) {
	a.data, a.order = data, order
	a.dataChanged()
}

// Bounds returns the (min, max) of the samples. See the package
// documentation for the treatment of empty and NaN data.
func (a *Array) Bounds() (lo, hi float64) {
	b := a.bounds.get(func() [2]float64 {
		lo, hi := floatBounds(a.data, a.order)
		return [2]float64{lo, hi}
	})
	return b[0], b[1]
}

// BoundsFor returns Bounds; a 1-D source has only one part.
func (a *Array) BoundsFor(sel Selector) (lo, hi float64) {
	return a.Bounds()
}

// ReverseMap returns the index of the sample closest to v. Values
// outside the data map to the nearest end. It returns an Unsupported
// error if the data is unordered.
func (a *Array) ReverseMap(v float64) (int, error) {
	if a.order == SortNone {
		return 0, charterr.Unsupportedf("reverse map of unordered data")
	}
	return reverseMap(a.data, v, a.order)
}

// ReverseMapWithin is like ReverseMap but returns ErrNoIndex if v is
// outside the data bounds.
func (a *Array) ReverseMapWithin(v float64) (int, error) {
	if a.order == SortNone {
		return 0, charterr.Unsupportedf("reverse map of unordered data")
	}
	if lo, hi := a.Bounds(); v < lo || v > hi {
		return 0, ErrNoIndex
	}
	return reverseMap(a.data, v, a.order)
}

// StringArray is a 1-D source of string samples, such as category
// labels. Its bounds are lexicographic.
type StringArray struct {
	base
	data   []string
	order  SortOrder
	bounds cache[[2]string]
}

// NewStringArray returns a StringArray over data.
func NewStringArray(data []string, order SortOrder) *StringArray {
	s := &StringArray{data: data, order: order}
	s.init(s, s.bounds.clear)
	return s
}

func (s *StringArray) Kind() Kind { return ScalarKind }

func (s *StringArray) Size() int { return len(s.data) }

func (s *StringArray) Data() []string { return s.data }

func (s *StringArray) DataMask() ([]string, []bool) {
	return s.data, s.Mask()
}

func (s *StringArray) SortOrder() SortOrder { return s.order }

func (s *StringArray) SetData(data []string) {
	s.data = data
	s.dataChanged()
}

// Bounds returns the lexicographic (min, max). Empty data has bounds
// ("", "").
func (s *StringArray) Bounds() (lo, hi string) {
	b := s.bounds.get(func() [2]string {
		lo, hi := stringBounds(s.data, s.order)
		return [2]string{lo, hi}
	})
	return b[0], b[1]
}

// BoundsFor returns (NaN, NaN): string data has no numeric bounds.
func (s *StringArray) BoundsFor(sel Selector) (lo, hi float64) {
	return math.NaN(), math.NaN()
}

func clampSlice(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		start = end
	}
	return start, end
}
