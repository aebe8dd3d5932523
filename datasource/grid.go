// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

// Grid holds the x and y coordinates of a rectilinear grid, such as
// the cell edges of an image or contour plot.
type Grid struct {
	base
	x, y           []float64
	xorder, yorder SortOrder
	bounds         cache[[2][2]float64]
}

// NewGrid returns a Grid with ascending coordinates.
func NewGrid(x, y []float64) *Grid {
	return NewSortedGrid(x, y, Ascending, Ascending)
}

// NewSortedGrid returns a Grid whose coordinates are ordered by
// xorder and yorder.
func NewSortedGrid(x, y []float64, xorder, yorder SortOrder) *Grid {
	g := &Grid{x: x, y: y, xorder: xorder, yorder: yorder}
	g.init(g, g.bounds.clear)
	return g
}

func (g *Grid) Kind() Kind { return GridKind }

// Size returns the number of grid points. Masks are laid out with x
// varying fastest.
func (g *Grid) Size() int { return len(g.x) * len(g.y) }

// AxisLen returns the number of grid lines along a.
func (g *Grid) AxisLen(a Axis) int {
	if a == X {
		return len(g.x)
	}
	return len(g.y)
}

// Data returns the x and y coordinates.
func (g *Grid) Data() (x, y []float64) { return g.x, g.y }

func (g *Grid) SortOrder() (x, y SortOrder) { return g.xorder, g.yorder }

func (g *Grid) SetData(x, y []float64) {
	g.x, g.y = x, y
	g.dataChanged()
}

func (g *Grid) SetDataSorted(x, y []float64, xorder, yorder SortOrder) {
	g.x, g.y = x, y
	g.xorder, g.yorder = xorder, yorder
	g.dataChanged()
}

// Bounds returns (xmin, ymin), (xmax, ymax).
func (g *Grid) Bounds() (lo, hi [2]float64) {
	b := g.bounds.get(func() [2][2]float64 {
		var b [2][2]float64
		b[0][0], b[1][0] = floatBounds(g.x, g.xorder)
		b[0][1], b[1][1] = floatBounds(g.y, g.yorder)
		return b
	})
	return b[0], b[1]
}

// BoundsFor returns the x extent (IndexDim), the y extent (ValueDim)
// or both together.
func (g *Grid) BoundsFor(sel Selector) (lo, hi float64) {
	l, h := g.Bounds()
	switch sel.Dim {
	case IndexDim:
		return l[0], h[0]
	case ValueDim:
		return l[1], h[1]
	}
	switch {
	case len(g.x) == 0:
		return l[1], h[1]
	case len(g.y) == 0:
		return l[0], h[0]
	}
	return mergeBounds(l[0], h[0], l[1], h[1])
}
