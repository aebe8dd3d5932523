// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

import (
	"github.com/aclements/go-chartcore/datasource"
	"github.com/aclements/go-chartcore/event"
)

// A Source2D is a data source with a per-axis extent, such as a
// datasource.Point or datasource.Grid.
type Source2D interface {
	datasource.DataSource
	Bounds() (lo, hi [2]float64)
}

// A Range2D is a rectangle made of two independent ranges, one per
// axis. Changes to either component raise a single RangeUpdated on the
// Range2D per mutating call or Batch.
type Range2D struct {
	x, y    *Range1D
	sources []member2
	events  event.Dispatcher
}

type member2 struct {
	src Source2D
	tok event.Token
}

// New2D returns an auto-ranging Range2D over srcs.
func New2D(srcs ...Source2D) *Range2D {
	r := &Range2D{x: New(), y: New()}
	r.x.Subscribe(r.componentUpdated)
	r.y.Subscribe(r.componentUpdated)
	r.Batch(func() { r.Add(srcs...) })
	return r
}

// NewValue2D returns a Range2D fixed at the rectangle lo, hi.
func NewValue2D(lo, hi [2]float64) *Range2D {
	r := New2D()
	r.SetBounds(lo, hi)
	return r
}

// X returns the x component range.
func (r *Range2D) X() *Range1D { return r.x }

// Y returns the y component range.
func (r *Range2D) Y() *Range1D { return r.y }

// Low returns (x.Low, y.Low).
func (r *Range2D) Low() [2]float64 { return [2]float64{r.x.low, r.y.low} }

// High returns (x.High, y.High).
func (r *Range2D) High() [2]float64 { return [2]float64{r.x.high, r.y.high} }

// SetLow fixes the low corner.
func (r *Range2D) SetLow(lo [2]float64) {
	r.Batch(func() {
		r.x.SetLow(lo[0])
		r.y.SetLow(lo[1])
	})
}

// SetHigh fixes the high corner.
func (r *Range2D) SetHigh(hi [2]float64) {
	r.Batch(func() {
		r.x.SetHigh(hi[0])
		r.y.SetHigh(hi[1])
	})
}

// SetBounds fixes the rectangle to (lo, hi).
func (r *Range2D) SetBounds(lo, hi [2]float64) {
	r.Batch(func() {
		r.x.SetBounds(lo[0], hi[0])
		r.y.SetBounds(lo[1], hi[1])
	})
}

// Reset resets both components.
func (r *Range2D) Reset() {
	r.Batch(func() {
		r.x.Reset()
		r.y.Reset()
	})
}

// Refresh recomputes both components.
func (r *Range2D) Refresh() {
	r.Batch(func() {
		r.x.Refresh()
		r.y.Refresh()
	})
}

// Sources returns the registered sources in registration order.
func (r *Range2D) Sources() []Source2D {
	out := make([]Source2D, len(r.sources))
	for i, m := range r.sources {
		out[i] = m.src
	}
	return out
}

// Add registers srcs with both components. Sources already registered
// are ignored.
func (r *Range2D) Add(srcs ...Source2D) {
	r.Batch(func() {
		for _, src := range srcs {
			if r.has(src) {
				continue
			}
			src := src
			r.sources = append(r.sources, member2{src, src.Subscribe(r.sourceChanged)})
			r.x.add(src, axisBounds(src, datasource.X), false)
			r.y.add(src, axisBounds(src, datasource.Y), false)
		}
		r.x.Refresh()
		r.y.Refresh()
	})
}

// Remove unregisters srcs.
func (r *Range2D) Remove(srcs ...Source2D) {
	r.Batch(func() {
		for _, src := range srcs {
			for i, m := range r.sources {
				if m.src == src {
					src.Unsubscribe(m.tok)
					r.sources = append(r.sources[:i:i], r.sources[i+1:]...)
					break
				}
			}
			r.x.remove(src)
			r.y.remove(src)
		}
		r.x.Refresh()
		r.y.Refresh()
	})
}

func (r *Range2D) has(src Source2D) bool {
	for _, m := range r.sources {
		if m.src == src {
			return true
		}
	}
	return false
}

// ClipData returns the points inside the rectangle, in order.
func (r *Range2D) ClipData(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, 0, len(pts))
	for _, p := range pts {
		if r.contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// MaskData reports for each point whether it lies inside the
// rectangle.
func (r *Range2D) MaskData(pts [][2]float64) []bool {
	out := make([]bool, len(pts))
	for i, p := range pts {
		out[i] = r.contains(p)
	}
	return out
}

func (r *Range2D) contains(p [2]float64) bool {
	return r.x.contains(p[0]) && r.y.contains(p[1])
}

func (r *Range2D) Subscribe(fn event.Func) event.Token { return r.events.Subscribe(fn) }

func (r *Range2D) Unsubscribe(tok event.Token) bool { return r.events.Unsubscribe(tok) }

// Batch calls fn and raises at most one RangeUpdated on r for all the
// changes it makes, including changes made directly to X() and Y().
func (r *Range2D) Batch(fn func()) { r.events.Batch(fn) }

func (r *Range2D) sourceChanged(e event.Event) {
	switch e.Kind {
	case event.DataChanged, event.MaskChanged:
		r.Refresh()
	}
}

func (r *Range2D) componentUpdated(event.Event) {
	r.events.Notify(event.Event{Kind: event.RangeUpdated, Sender: r})
}

// axisBounds returns the extent of src along axis.
func axisBounds(src Source2D, axis datasource.Axis) func() (float64, float64, bool) {
	sel := datasource.Selector{Dim: datasource.IndexDim}
	if axis == datasource.Y {
		sel.Dim = datasource.ValueDim
	}
	return func() (float64, float64, bool) {
		if !nonEmpty(src, sel) {
			return 0, 0, false
		}
		lo, hi := src.Bounds()
		return lo[axis], hi[axis], true
	}
}
