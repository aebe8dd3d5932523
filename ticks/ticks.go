// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks chooses axis tick positions.
//
// Generators are pure functions of their arguments: the data
// interval, the screen interval it is drawn over (which limits how
// many ticks fit) and the requested tick interval.
package ticks

import (
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/chartlog"
	"github.com/aclements/go-chartcore/mapper"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/sirupsen/logrus"
)

type intervalKind int

const (
	autoInterval intervalKind = iota
	stepInterval
	divisionsInterval
)

// An Interval selects the spacing of ticks. The zero Interval is
// Auto.
type Interval struct {
	kind intervalKind
	step float64
	n    int
}

// Auto picks a "nice" spacing that fits the screen interval.
func Auto() Interval { return Interval{} }

// Step places ticks at multiples of x.
func Step(x float64) Interval { return Interval{kind: stepInterval, step: x} }

// Divisions splits the data interval into n equal parts.
func Divisions(n int) Interval { return Interval{kind: divisionsInterval, n: n} }

func (iv Interval) String() string {
	switch iv.kind {
	case stepInterval:
		return fmt.Sprintf("step %g", iv.step)
	case divisionsInterval:
		return fmt.Sprintf("%d divisions", iv.n)
	}
	return "auto"
}

// A Generator computes tick positions.
type Generator interface {
	// Ticks returns ascending tick positions for data in
	// [dataLow, dataHigh] drawn over the screen interval
	// [boundsLow, boundsHigh]. If useEndpoints is set, the data
	// ends are always ticks. Non-finite data yields nil.
	Ticks(dataLow, dataHigh, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool) []float64
}

const (
	// DefaultMinSpacing is the default minimum screen distance
	// between major ticks.
	DefaultMinSpacing = 50

	maxAutoTicks = 9

	// maxStepTicks bounds the ticks of an explicit Step. Finer
	// steps fall back to Auto.
	maxStepTicks = 1000

	// maxLevels is the width of the level window searched above a
	// spacing-imposed minimum level.
	maxLevels = 1000
)

// Default places linear ticks at multiples of 1, 2 or 5 times a power
// of ten, and log ticks at decades or 1, 2, 5 multiples of decades.
type Default struct {
	Scale mapper.Scale

	// MinSpacing is the smallest screen distance between ticks. If
	// 0, DefaultMinSpacing is used.
	MinSpacing float64
}

func (g Default) Ticks(dataLow, dataHigh, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool) []float64 {
	lo, hi, ok := normalize(dataLow, dataHigh, g.Scale)
	if !ok {
		return nil
	}
	if g.Scale == mapper.LogScale {
		return g.logTicks(lo, hi, boundsLow, boundsHigh, interval, useEndpoints)
	}
	if interval.kind == divisionsInterval && interval.n > 0 {
		return vec.Linspace(lo, hi, interval.n+1)
	}
	step := g.step(lo, hi, boundsLow, boundsHigh, interval)
	if step == 0 {
		return nil
	}
	return withEndpoints(multiples(lo, hi, step), lo, hi, useEndpoints)
}

// options returns the constraints on the automatic ticks of t drawn
// over the screen interval [boundsLow, boundsHigh]. Levels whose
// ticks would be closer than MinSpacing on screen are excluded, unless
// every wider level has fewer than two ticks.
func (g Default) options(t levelTicker, boundsLow, boundsHigh float64) scale.TickOptions {
	o := scale.TickOptions{Max: maxAutoTicks}
	px := math.Abs(boundsHigh - boundsLow)
	if px == 0 || math.IsInf(px, 0) || math.IsNaN(px) {
		return o
	}
	minPx := g.MinSpacing
	if minPx <= 0 {
		minPx = DefaultMinSpacing
	}
	minStep := minPx * (t.hi - t.lo) / px
	if !(minStep > 0) || math.IsInf(minStep, 0) {
		return o
	}
	l := levelFor(minStep)
	if t.CountTicks(l) < 2 {
		for t.CountTicks(l-1) < 2 {
			l--
		}
	}
	o.MinLevel, o.MaxLevel = l, l+maxLevels
	return o
}

// step returns the linear tick spacing for [lo, hi], or 0 if none
// satisfies the constraints.
func (g Default) step(lo, hi, boundsLow, boundsHigh float64, interval Interval) float64 {
	switch interval.kind {
	case stepInterval:
		if s := interval.step; s > 0 && !math.IsInf(s, 0) && (hi-lo)/s <= maxStepTicks {
			return s
		}
		if chartlog.Enabled(logrus.DebugLevel) {
			chartlog.For("ticks").WithFields(logrus.Fields{
				"low": lo, "high": hi, "step": interval.step,
			}).Debug("tick step unusable, choosing automatically")
		}
	case divisionsInterval:
		if interval.n > 0 {
			return (hi - lo) / float64(interval.n)
		}
	}
	t := levelTicker{lo, hi}
	o := g.options(t, boundsLow, boundsHigh)
	level, ok := o.FindLevel(t, t.guess())
	if !ok {
		return 0
	}
	return spacing(level)
}

// spacing returns the tick spacing at level: levels run through
// 1, 2 and 5 times successive powers of ten, with level 0 at 1.
func spacing(level int) float64 {
	q, r := level/3, level%3
	if r < 0 {
		q, r = q-1, r+3
	}
	return [...]float64{1, 2, 5}[r] * math.Pow10(q)
}

// levelFor returns the lowest level whose spacing is at least step.
func levelFor(step float64) int {
	l := 3 * int(math.Floor(math.Log10(step)))
	for spacing(l) >= step {
		l--
	}
	for spacing(l) < step*(1-1e-12) {
		l++
	}
	return l
}

// levelTicker is a scale.Ticker over the multiples of spacing(level)
// in [lo, hi].
type levelTicker struct {
	lo, hi float64
}

func (t levelTicker) guess() int {
	return 3 * int(math.Floor(math.Log10(t.hi-t.lo)))
}

func (t levelTicker) span(level int) (first, last, step float64) {
	step = spacing(level)
	slack := (t.hi - t.lo) * 1e-10
	first = math.Ceil((t.lo - slack) / step)
	last = math.Floor((t.hi + slack) / step)
	return
}

func (t levelTicker) CountTicks(level int) int {
	first, last, _ := t.span(level)
	if n := last - first + 1; n < math.MaxInt32 {
		return int(n)
	}
	return math.MaxInt32
}

func (t levelTicker) TicksAtLevel(level int) interface{} {
	return multiples(t.lo, t.hi, spacing(level))
}

// multiples returns the multiples of step in [lo, hi].
func multiples(lo, hi, step float64) []float64 {
	slack := (hi - lo) * 1e-10
	first := math.Ceil((lo - slack) / step)
	last := math.Floor((hi + slack) / step)
	n := int(last - first + 1)
	if n <= 0 {
		return []float64{}
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = snap((first+float64(i))*step, step)
	}
	return ticks
}

// snap rounds v, a multiple of step, to a few digits below step's
// leading digit. This removes the residue of binary fractions, so
// 7*0.1 is 0.7. Steps of 1000 or more are already exact.
func snap(v, step float64) float64 {
	if v == 0 {
		return 0
	}
	e := 3 - int(math.Floor(math.Log10(step)))
	if e <= 0 {
		return v
	}
	p := math.Pow10(e)
	if math.Abs(v*p) > 1e15 {
		return v
	}
	if r := math.Round(v*p) / p; r != 0 {
		return r
	}
	return 0
}

// withEndpoints makes lo and hi the first and last ticks if
// useEndpoints is set.
func withEndpoints(ticks []float64, lo, hi float64, useEndpoints bool) []float64 {
	if !useEndpoints {
		return ticks
	}
	slack := (hi - lo) * 1e-10
	out := make([]float64, 0, len(ticks)+2)
	out = append(out, lo)
	for _, v := range ticks {
		if v > lo+slack && v < hi-slack {
			out = append(out, v)
		}
	}
	if hi != lo {
		out = append(out, hi)
	}
	return out
}

// normalize orders the data interval and widens a degenerate one. It
// reports false for non-finite input.
func normalize(lo, hi float64, s mapper.Scale) (float64, float64, bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		if s == mapper.LogScale {
			return lo / 10, hi * 10, true
		}
		return lo - 0.5, hi + 0.5, true
	}
	return lo, hi, true
}
