// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapper projects data coordinates onto screen coordinates
// and back.
//
// A mapper holds no data. Every call recomputes the projection from
// the current bounds of its range and its screen interval, so a range
// shared by several mappers is always observed at its latest value.
// Degenerate ranges never fail; they map everything to the low
// screen edge.
package mapper

import (
	"fmt"
	"math"
)

// Range is the part of a datarange.Range1D a mapper uses.
type Range interface {
	Bounds() (low, high float64)
	SetBounds(low, high float64)
}

// Scale identifies the projection of a mapper.
type Scale int

const (
	LinearScale Scale = iota
	LogScale
)

func (s Scale) String() string {
	switch s {
	case LinearScale:
		return "linear"
	case LogScale:
		return "log"
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// A Mapper1D maps between one data axis and one screen axis.
//
// MapScreen and MapData always return a new slice of the same length
// as their input.
type Mapper1D interface {
	// MapScreen maps data values to screen positions.
	MapScreen(data []float64) []float64
	// MapData maps screen positions to data values.
	MapData(screen []float64) []float64

	Scale() Scale

	Range() Range
	SetRange(r Range)

	// ScreenBounds returns the screen positions of the range's low
	// and high ends. low may exceed high for a flipped axis.
	ScreenBounds() (low, high float64)
	SetScreenBounds(low, high float64)
	SetLowPos(pos float64)
	SetHighPos(pos float64)

	// StretchData reports whether a change to the screen bounds
	// stretches the range over the new interval (true) or keeps
	// the data per pixel ratio by moving the range's high end
	// (false).
	StretchData() bool
	SetStretchData(stretch bool)

	// DomainLimits returns the interval data is clamped to before
	// projection, if one is set.
	DomainLimits() (low, high float64, ok bool)
	SetDomainLimits(low, high float64)
	ClearDomainLimits()
}

// New returns a mapper of the given scale.
func New(s Scale, r Range, lowPos, highPos float64) Mapper1D {
	if s == LogScale {
		return NewLog(r, lowPos, highPos)
	}
	return NewLinear(r, lowPos, highPos)
}

// base holds the state common to the 1-D mappers.
type base struct {
	rng              Range
	lowPos, highPos  float64
	stretch          bool
	placed           bool // screen bounds set since construction
	hasLimits        bool
	limitLo, limitHi float64

	// extend returns the new high end of the range when the
	// screen span changes from oldSpan to newSpan and the data per
	// pixel ratio must be kept.
	extend func(low, high, oldSpan, newSpan float64) float64
}

func (b *base) init(r Range, lowPos, highPos float64, extend func(low, high, oldSpan, newSpan float64) float64) {
	b.rng, b.lowPos, b.highPos = r, lowPos, highPos
	b.stretch = true
	b.extend = extend
}

func (b *base) Range() Range { return b.rng }

func (b *base) SetRange(r Range) { b.rng = r }

func (b *base) ScreenBounds() (low, high float64) { return b.lowPos, b.highPos }

// SetScreenBounds moves the screen interval. The first call after
// construction only places the mapper, so a non-stretching mapper
// keeps its range until the screen bounds change again.
func (b *base) SetScreenBounds(low, high float64) {
	oldSpan := b.highPos - b.lowPos
	b.lowPos, b.highPos = low, high
	placed := b.placed
	b.placed = true
	if b.stretch || !placed {
		return
	}
	rl, rh := b.rng.Bounds()
	newSpan := high - low
	if rh == rl || oldSpan == 0 || !finite(rl) || !finite(rh) {
		return
	}
	if nh := b.extend(rl, rh, oldSpan, newSpan); finite(nh) {
		b.rng.SetBounds(rl, nh)
	}
}

func (b *base) SetLowPos(pos float64) { b.SetScreenBounds(pos, b.highPos) }

func (b *base) SetHighPos(pos float64) { b.SetScreenBounds(b.lowPos, pos) }

func (b *base) StretchData() bool { return b.stretch }

func (b *base) SetStretchData(stretch bool) { b.stretch = stretch }

func (b *base) DomainLimits() (low, high float64, ok bool) {
	return b.limitLo, b.limitHi, b.hasLimits
}

func (b *base) SetDomainLimits(low, high float64) {
	if low > high {
		low, high = high, low
	}
	b.limitLo, b.limitHi, b.hasLimits = low, high, true
}

func (b *base) ClearDomainLimits() { b.hasLimits = false }

// limit clamps v to the domain limits, if any. NaN passes through.
func (b *base) limit(v float64) float64 {
	if !b.hasLimits || math.IsNaN(v) {
		return v
	}
	return math.Max(b.limitLo, math.Min(b.limitHi, v))
}

// fill returns a slice of n copies of v.
func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
