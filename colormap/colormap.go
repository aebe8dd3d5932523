// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap maps scalar data to colors through per-channel
// piecewise-linear segment maps.
//
// A ColorMapper normalizes data through a range, optionally applying
// a data transform before and a unit transform after normalization,
// then interpolates each channel between the breakpoints around the
// normalized value. Interpolation tables are rebuilt lazily after any
// change to the segment map, the step count, the transforms or the
// range.
package colormap

import (
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/chartlog"
	"github.com/aclements/go-chartcore/datarange"
	"github.com/aclements/go-chartcore/event"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
	"github.com/sirupsen/logrus"
)

// DefaultSteps is the number of color bands of a ColorMapper built
// from a segment map.
const DefaultSteps = 256

// Range is the part of a datarange.Range1D a ColorMapper uses.
type Range interface {
	Bounds() (low, high float64)
	Subscribe(fn event.Func) event.Token
	Unsubscribe(tok event.Token) bool
}

// An RGBA is a color with components in [0, 1].
type RGBA [4]float64

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	to8 := func(v float64) uint8 { return uint8(math.Round(clip01(v) * 255)) }
	return color.NRGBA{to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])}
}

// Transparent is the color of NaN data.
var Transparent = RGBA{0, 0, 0, 0}

// channel is the interpolation table of one channel.
type channel struct {
	x, y0, y1 []float64
}

func (t *channel) at(v float64) float64 {
	i := sort.Search(len(t.x), func(i int) bool { return t.x[i] > v })
	switch {
	case i == 0:
		return t.y1[0]
	case i == len(t.x):
		return t.y0[i-1]
	}
	f := (v - t.x[i-1]) / (t.x[i] - t.x[i-1])
	return t.y1[i-1] + f*(t.y0[i]-t.y1[i-1])
}

// A ColorMapper maps data values to colors.
type ColorMapper struct {
	seg      SegmentMap
	steps    int
	rng      Range
	rngTok   event.Token
	dataFunc func(float64) float64
	unitFunc func(float64) float64

	dirty bool
	chans [4]channel
	lut   []RGBA
	// Normalization of the transformed range, captured at rebuild.
	low, scale float64

	events event.Dispatcher
}

// New returns a ColorMapper for seg over r. A nil r is the fixed range
// [0, 1].
func New(seg SegmentMap, r Range) (*ColorMapper, error) {
	return NewTransform(seg, r, nil, nil)
}

// NewTransform returns a ColorMapper that applies dataFunc to data and
// to the range ends before normalizing, and unitFunc to the
// normalized value before the color lookup. Either may be nil for the
// identity.
func NewTransform(seg SegmentMap, r Range, dataFunc, unitFunc func(float64) float64) (*ColorMapper, error) {
	norm, err := seg.validate()
	if err != nil {
		return nil, err
	}
	c := &ColorMapper{
		seg:      norm,
		steps:    DefaultSteps,
		dataFunc: dataFunc,
		unitFunc: unitFunc,
		dirty:    true,
	}
	c.bind(r)
	return c, nil
}

// FromPaletteArray returns a ColorMapper with one evenly spaced
// breakpoint per color. colors has at least two rows of 3 (RGB) or 4
// (RGBA) components in [0, 1]. The step count is the number of colors.
func FromPaletteArray(colors [][]float64, r Range) (*ColorMapper, error) {
	seg, err := Uniform(colors)
	if err != nil {
		return nil, err
	}
	c, err := New(seg, r)
	if err != nil {
		return nil, err
	}
	c.steps = len(colors)
	return c, nil
}

// FromPalette samples p at n evenly spaced points and returns a
// ColorMapper over them.
func FromPalette(p palette.Continuous, n int, r Range) (*ColorMapper, error) {
	if n < 2 {
		return nil, charterr.Configf("palette sampled at %d points", n)
	}
	return FromPaletteArray(sample(p, n), r)
}

func sample(p palette.Continuous, n int) [][]float64 {
	colors := make([][]float64, n)
	for i, x := range vec.Linspace(0, 1, n) {
		c := color.NRGBAModel.Convert(p.Map(x)).(color.NRGBA)
		colors[i] = []float64{
			float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255,
		}
	}
	return colors
}

func (c *ColorMapper) bind(r Range) {
	if r == nil {
		r = datarange.NewValue(0, 1)
	}
	c.rng = r
	c.rngTok = r.Subscribe(func(event.Event) { c.changed() })
}

// Close detaches c from its range. c keeps mapping with the range's
// bounds but no longer follows its updates.
func (c *ColorMapper) Close() {
	c.rng.Unsubscribe(c.rngTok)
}

// changed marks the tables dirty and notifies subscribers.
func (c *ColorMapper) changed() {
	c.dirty = true
	c.events.Notify(event.Event{Kind: event.ColormapUpdated, Sender: c})
}

// Dirty reports whether the next lookup will rebuild the tables.
func (c *ColorMapper) Dirty() bool { return c.dirty }

// SegmentData returns a copy of the normalized segment map.
func (c *ColorMapper) SegmentData() SegmentMap { return c.seg.clone() }

// SetSegmentData replaces the segment map. On error c is unchanged.
func (c *ColorMapper) SetSegmentData(seg SegmentMap) error {
	norm, err := seg.validate()
	if err != nil {
		return err
	}
	c.seg = norm
	c.changed()
	return nil
}

func (c *ColorMapper) Steps() int { return c.steps }

// SetSteps sets the number of color bands used by MapIndex and Colors.
func (c *ColorMapper) SetSteps(n int) error {
	if n < 1 {
		return charterr.Configf("colormap with %d steps", n)
	}
	c.steps = n
	c.changed()
	return nil
}

func (c *ColorMapper) Range() Range { return c.rng }

// SetRange rebinds c to r. A nil r is the fixed range [0, 1].
func (c *ColorMapper) SetRange(r Range) {
	c.rng.Unsubscribe(c.rngTok)
	c.bind(r)
	c.changed()
}

// SetTransform replaces the data and unit transforms.
func (c *ColorMapper) SetTransform(dataFunc, unitFunc func(float64) float64) {
	c.dataFunc, c.unitFunc = dataFunc, unitFunc
	c.changed()
}

// WithTransform returns a new ColorMapper with the segment map, steps
// and range of c and the given transforms.
func (c *ColorMapper) WithTransform(dataFunc, unitFunc func(float64) float64) *ColorMapper {
	n := &ColorMapper{
		seg:      c.seg.clone(),
		steps:    c.steps,
		dataFunc: dataFunc,
		unitFunc: unitFunc,
		dirty:    true,
	}
	n.bind(c.rng)
	return n
}

// Reversed returns a new ColorMapper over the same range with the
// segment map mirrored, so low data gets the colors of high data.
func (c *ColorMapper) Reversed() *ColorMapper {
	n := c.WithTransform(c.dataFunc, c.unitFunc)
	n.seg = c.seg.reversed()
	return n
}

func (c *ColorMapper) Subscribe(fn event.Func) event.Token { return c.events.Subscribe(fn) }

func (c *ColorMapper) Unsubscribe(tok event.Token) bool { return c.events.Unsubscribe(tok) }

// rebuild recomputes the interpolation tables if they are dirty.
func (c *ColorMapper) rebuild() {
	if !c.dirty {
		return
	}
	for ch := Red; ch <= Alpha; ch++ {
		segs := c.seg[ch]
		t := channel{
			x:  make([]float64, len(segs)),
			y0: make([]float64, len(segs)),
			y1: make([]float64, len(segs)),
		}
		for i, s := range segs {
			t.x[i], t.y0[i], t.y1[i] = s.X, s.Y0, s.Y1
		}
		c.chans[ch] = t
	}

	low, high := c.rng.Bounds()
	low, high = c.data(low), c.data(high)
	c.low, c.scale = low, 0
	if span := high - low; span != 0 && !math.IsInf(span, 0) && !math.IsNaN(span) {
		c.scale = 1 / span
	}

	c.lut = make([]RGBA, c.steps)
	for i, u := range vec.Linspace(0, 1, c.steps) {
		c.lut[i] = c.lookup(u)
	}
	c.dirty = false

	if chartlog.Enabled(logrus.DebugLevel) {
		chartlog.For("colormap").WithFields(logrus.Fields{
			"steps": c.steps,
			"low":   low,
			"high":  high,
		}).Debug("colormap tables rebuilt")
	}
}

func (c *ColorMapper) data(v float64) float64 {
	if c.dataFunc != nil {
		return c.dataFunc(v)
	}
	return v
}

// normalize maps v into [0, 1], or NaN if v is NaN.
func (c *ColorMapper) normalize(v float64) float64 {
	v = c.data(v)
	if math.IsNaN(v) {
		return v
	}
	if c.scale == 0 {
		return 0
	}
	u := clip01((v - c.low) * c.scale)
	if c.unitFunc != nil {
		u = clip01(c.unitFunc(u))
	}
	return u
}

// lookup interpolates every channel at the unit value u.
func (c *ColorMapper) lookup(u float64) RGBA {
	var out RGBA
	for ch := range c.chans {
		out[ch] = c.chans[ch].at(u)
	}
	return out
}

// MapScreen returns the color of each data value. NaN values are
// Transparent.
func (c *ColorMapper) MapScreen(data []float64) []RGBA {
	c.rebuild()
	out := make([]RGBA, len(data))
	for i, v := range data {
		u := c.normalize(v)
		if math.IsNaN(u) {
			out[i] = Transparent
			continue
		}
		out[i] = c.lookup(u)
	}
	return out
}

// MapNRGBA is MapScreen with 8-bit colors.
func (c *ColorMapper) MapNRGBA(data []float64) []color.NRGBA {
	rgba := c.MapScreen(data)
	out := make([]color.NRGBA, len(rgba))
	for i, v := range rgba {
		out[i] = v.NRGBA()
	}
	return out
}

// MapIndex returns the color band of each data value, an index into
// Colors. NaN values get -1.
func (c *ColorMapper) MapIndex(data []float64) []int {
	c.rebuild()
	out := make([]int, len(data))
	for i, v := range data {
		u := c.normalize(v)
		if math.IsNaN(u) {
			out[i] = -1
			continue
		}
		out[i] = int(math.Floor(u * float64(c.steps-1)))
	}
	return out
}

// Colors returns the color of each of the Steps bands, evenly spaced
// over the unit interval.
func (c *ColorMapper) Colors() []RGBA {
	c.rebuild()
	return append([]RGBA(nil), c.lut...)
}
