// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"github.com/aclements/go-chartcore/charterr"
	"github.com/gonum/matrix/mat64"
)

// MultiArray holds several values per index position: row i of the
// matrix holds the values at index i. It is the data behind stacked
// and multi-line plots.
type MultiArray struct {
	base
	m          *mat64.Dense // nil if empty
	rows, cols int
	order      SortOrder
	bounds     cache[[2]float64]
}

// NewMultiArray returns a MultiArray over m. m may be nil for an
// empty source.
func NewMultiArray(m *mat64.Dense) *MultiArray {
	s := &MultiArray{}
	s.init(s, s.bounds.clear)
	s.set(m)
	return s
}

// NewMultiArrayRows builds a MultiArray from rows of equal width.
func NewMultiArrayRows(rows [][]float64) (*MultiArray, error) {
	m, err := denseFromRows(rows)
	if err != nil {
		return nil, err
	}
	return NewMultiArray(m), nil
}

// NewMultiArray1D builds an N×1 MultiArray from 1-D data.
func NewMultiArray1D(data []float64) *MultiArray {
	if len(data) == 0 {
		return NewMultiArray(nil)
	}
	vals := make([]float64, len(data))
	copy(vals, data)
	return NewMultiArray(mat64.NewDense(len(vals), 1, vals))
}

func denseFromRows(rows [][]float64) (*mat64.Dense, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, charterr.Shapef("multi-array with empty rows")
	}
	vals := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, charterr.Shapef("multi-array row %d of width %d (want %d)", i, len(r), cols)
		}
		vals = append(vals, r...)
	}
	return mat64.NewDense(len(rows), cols, vals), nil
}

func (s *MultiArray) set(m *mat64.Dense) {
	s.m = m
	s.rows, s.cols = 0, 0
	if m != nil {
		s.rows, s.cols = m.Dims()
	}
}

func (s *MultiArray) Kind() Kind { return MultiArrayKind }

// Size returns the number of index positions (rows). Masks select
// whole rows.
func (s *MultiArray) Size() int { return s.rows }

// ValueSize returns the number of values per index position.
func (s *MultiArray) ValueSize() int { return s.cols }

// Dims returns the number of rows and columns.
func (s *MultiArray) Dims() (rows, cols int) { return s.rows, s.cols }

// Data returns the matrix, or nil if the source is empty.
func (s *MultiArray) Data() *mat64.Dense { return s.m }

func (s *MultiArray) DataMask() (*mat64.Dense, []bool) {
	return s.m, s.Mask()
}

// Row returns a copy of the values at index position i.
func (s *MultiArray) Row(i int) []float64 {
	out := make([]float64, s.cols)
	copy(out, s.m.RawRowView(i))
	return out
}

// Col returns a copy of value column j.
func (s *MultiArray) Col(j int) []float64 {
	out := make([]float64, s.rows)
	for i := range out {
		out[i] = s.m.At(i, j)
	}
	return out
}

func (s *MultiArray) SortOrder() SortOrder { return s.order }

// SetSortOrder records the ordering of the index positions.
func (s *MultiArray) SetSortOrder(order SortOrder) {
	s.order = order
	s.dataChanged()
}

// SetData replaces the matrix.
func (s *MultiArray) SetData(m *mat64.Dense) {
	s.set(m)
	s.dataChanged()
}

// Bounds returns the extent of every value in the matrix.
func (s *MultiArray) Bounds() (lo, hi float64) {
	b := s.bounds.get(func() [2]float64 {
		lo, hi := floatBounds(s.flat(), SortNone)
		return [2]float64{lo, hi}
	})
	return b[0], b[1]
}

// BoundsFor returns the extent of all values, of one index row
// (Index(i)) or of one value column (Value(j)). Out-of-range positions
// panic.
func (s *MultiArray) BoundsFor(sel Selector) (lo, hi float64) {
	switch sel.Dim {
	case IndexDim:
		return floatBounds(s.Row(sel.Pos), SortNone)
	case ValueDim:
		return floatBounds(s.Col(sel.Pos), SortNone)
	}
	return s.Bounds()
}

func (s *MultiArray) flat() []float64 {
	if s.m == nil {
		return nil
	}
	out := make([]float64, 0, s.rows*s.cols)
	for i := 0; i < s.rows; i++ {
		out = append(out, s.m.RawRowView(i)...)
	}
	return out
}
