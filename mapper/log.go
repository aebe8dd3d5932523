// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Log maps log10 of the data linearly onto the screen.
//
// Values the logarithm is undefined for (zero, negative or NaN) map to
// FillValue. A range that is not strictly positive maps everything to
// the low screen edge.
type Log struct {
	base
	fill    float64
	hasFill bool
}

// NewLog returns a logarithmic mapper from r onto [lowPos, highPos].
func NewLog(r Range, lowPos, highPos float64) *Log {
	m := &Log{}
	m.init(r, lowPos, highPos, func(low, high, oldSpan, newSpan float64) float64 {
		if low <= 0 || high <= 0 {
			return math.NaN()
		}
		ll := math.Log10(low)
		return math.Pow(10, ll+(math.Log10(high)-ll)/oldSpan*newSpan)
	})
	return m
}

func (m *Log) Scale() Scale { return LogScale }

// FillValue returns the screen position of values with no logarithm.
// It defaults to the low screen edge.
func (m *Log) FillValue() float64 {
	if m.hasFill {
		return m.fill
	}
	return m.lowPos
}

func (m *Log) SetFillValue(pos float64) { m.fill, m.hasFill = pos, true }

// ClearFillValue restores the default fill value.
func (m *Log) ClearFillValue() { m.hasFill = false }

func (m *Log) projection() (scale.QQ, bool) {
	low, high := m.rng.Bounds()
	if !(low > 0 && high > 0) || low == high || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return scale.QQ{}, false
	}
	return scale.QQ{
		Src:  &scale.Log{Min: low, Max: high, Base: 10},
		Dest: &scale.Linear{Min: m.lowPos, Max: m.highPos},
	}, true
}

func (m *Log) MapScreen(data []float64) []float64 {
	qq, ok := m.projection()
	if !ok {
		return fill(len(data), m.lowPos)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		v = m.limit(v)
		if !(v > 0) {
			out[i] = m.FillValue()
			continue
		}
		out[i] = qq.Map(v)
	}
	return out
}

// MapData is the inverse of MapScreen. A null range or screen interval
// maps every position to the range's low end.
func (m *Log) MapData(screen []float64) []float64 {
	qq, ok := m.projection()
	if !ok || m.lowPos == m.highPos {
		low, _ := m.rng.Bounds()
		return fill(len(screen), low)
	}
	out := make([]float64, len(screen))
	for i, s := range screen {
		out[i] = m.limit(qq.Unmap(s))
	}
	return out
}
