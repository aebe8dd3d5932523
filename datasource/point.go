// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import "github.com/aclements/go-chartcore/charterr"

// Axis names a coordinate of a 2-D point.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) other() Axis { return 1 - a }

// Point is a source of 2-D points. One axis is the index axis, to
// which the sort order applies; the other is the value axis.
type Point struct {
	base
	data      [][2]float64
	order     SortOrder
	indexAxis Axis
	bounds    cache[[2][2]float64]
}

// NewPoint returns an unordered Point source with X as the index
// axis.
func NewPoint(data [][2]float64) *Point {
	return NewSortedPoint(data, SortNone)
}

// NewSortedPoint returns a Point source whose X coordinates are
// ordered by order.
func NewSortedPoint(data [][2]float64, order SortOrder) *Point {
	p := &Point{data: data, order: order}
	p.init(p, p.bounds.clear)
	return p
}

// NewPointXY zips xs and ys into a Point source. The slices must have
// equal length.
func NewPointXY(xs, ys []float64) (*Point, error) {
	if len(xs) != len(ys) {
		return nil, charterr.Shapef("point data with %d x and %d y values", len(xs), len(ys))
	}
	pts := make([][2]float64, len(xs))
	for i := range xs {
		pts[i] = [2]float64{xs[i], ys[i]}
	}
	return NewPoint(pts), nil
}

// NewPointRows builds a Point source from rows of exactly two values.
func NewPointRows(rows [][]float64) (*Point, error) {
	pts := make([][2]float64, len(rows))
	for i, r := range rows {
		if len(r) != 2 {
			return nil, charterr.Shapef("point row %d of width %d", i, len(r))
		}
		pts[i] = [2]float64{r[0], r[1]}
	}
	return NewPoint(pts), nil
}

func (p *Point) Kind() Kind { return PointKind }

func (p *Point) Size() int { return len(p.data) }

func (p *Point) Data() [][2]float64 { return p.data }

func (p *Point) DataMask() ([][2]float64, []bool) {
	return p.data, p.Mask()
}

// Column returns a copy of one coordinate of every point.
func (p *Point) Column(axis Axis) []float64 {
	return column(p.data, int(axis))
}

func (p *Point) SortOrder() SortOrder { return p.order }

func (p *Point) IndexAxis() Axis { return p.indexAxis }

// SetIndexAxis changes which axis is the index. This counts as a data
// change.
func (p *Point) SetIndexAxis(axis Axis) {
	p.indexAxis = axis
	p.dataChanged()
}

func (p *Point) SetData(data [][2]float64) {
	p.data = data
	p.dataChanged()
}

func (p *Point) SetDataSorted(data [][2]float64, order SortOrder) {
	p.data, p.order = data, order
	p.dataChanged()
}

// Bounds returns the per-axis extent as (xmin, ymin), (xmax, ymax).
// Empty data has bounds (0, 0), (0, 0).
func (p *Point) Bounds() (lo, hi [2]float64) {
	b := p.bounds.get(func() [2][2]float64 {
		var b [2][2]float64
		for axis := X; axis <= Y; axis++ {
			order := SortNone
			if axis == p.indexAxis {
				order = p.order
			}
			b[0][axis], b[1][axis] = floatBounds(column(p.data, int(axis)), order)
		}
		return b
	})
	return b[0], b[1]
}

// BoundsFor returns the extent of the index axis, the value axis, or
// of both axes together.
func (p *Point) BoundsFor(sel Selector) (lo, hi float64) {
	l, h := p.Bounds()
	switch sel.Dim {
	case IndexDim:
		return l[p.indexAxis], h[p.indexAxis]
	case ValueDim:
		v := p.indexAxis.other()
		return l[v], h[v]
	}
	if len(p.data) == 0 {
		return 0, 0
	}
	return mergeBounds(l[0], h[0], l[1], h[1])
}

// ReverseMap returns the index of the point whose index coordinate is
// closest to v.
func (p *Point) ReverseMap(v float64) (int, error) {
	if p.order == SortNone {
		return 0, charterr.Unsupportedf("reverse map of unordered point data")
	}
	return reverseMap(p.Column(p.indexAxis), v, p.order)
}
