// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import "github.com/aclements/go-chartcore/datarange"

// Grid maps 2-D points through two independent 1-D mappers over the
// components of a datarange.Range2D.
type Grid struct {
	rng  *datarange.Range2D
	x, y Mapper1D
}

// NewGrid returns a Grid with linear axes mapping r onto the screen
// rectangle with corners lo = (xLowPos, yLowPos) and
// hi = (xHighPos, yHighPos).
func NewGrid(r *datarange.Range2D, lo, hi [2]float64) *Grid {
	return NewGridScaled(r, LinearScale, LinearScale, lo, hi)
}

// NewGridScaled is like NewGrid with a chosen scale per axis.
func NewGridScaled(r *datarange.Range2D, xs, ys Scale, lo, hi [2]float64) *Grid {
	return &Grid{
		rng: r,
		x:   New(xs, r.X(), lo[0], hi[0]),
		y:   New(ys, r.Y(), lo[1], hi[1]),
	}
}

// X returns the x axis mapper.
func (g *Grid) X() Mapper1D { return g.x }

// Y returns the y axis mapper.
func (g *Grid) Y() Mapper1D { return g.y }

func (g *Grid) Range() *datarange.Range2D { return g.rng }

// SetRange rebinds both axis mappers to the components of r.
func (g *Grid) SetRange(r *datarange.Range2D) {
	g.rng = r
	g.x.SetRange(r.X())
	g.y.SetRange(r.Y())
}

// ScreenBounds returns the low and high screen corners.
func (g *Grid) ScreenBounds() (lo, hi [2]float64) {
	lo[0], hi[0] = g.x.ScreenBounds()
	lo[1], hi[1] = g.y.ScreenBounds()
	return lo, hi
}

func (g *Grid) SetScreenBounds(lo, hi [2]float64) {
	g.x.SetScreenBounds(lo[0], hi[0])
	g.y.SetScreenBounds(lo[1], hi[1])
}

// MapScreen maps data points to screen points.
func (g *Grid) MapScreen(pts [][2]float64) [][2]float64 {
	return zip(g.x.MapScreen(column(pts, 0)), g.y.MapScreen(column(pts, 1)))
}

// MapData maps screen points to data points.
func (g *Grid) MapData(pts [][2]float64) [][2]float64 {
	return zip(g.x.MapData(column(pts, 0)), g.y.MapData(column(pts, 1)))
}

// MapScreenPoint maps one data point. The result has one row.
func (g *Grid) MapScreenPoint(p [2]float64) [][2]float64 {
	return g.MapScreen([][2]float64{p})
}

// MapDataPoint maps one screen point. The result has one row.
func (g *Grid) MapDataPoint(p [2]float64) [][2]float64 {
	return g.MapData([][2]float64{p})
}

func column(pts [][2]float64, axis int) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p[axis]
	}
	return out
}

func zip(xs, ys []float64) [][2]float64 {
	out := make([][2]float64, len(xs))
	for i := range out {
		out[i] = [2]float64{xs[i], ys[i]}
	}
	return out
}
