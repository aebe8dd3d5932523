// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import "github.com/aclements/go-moremath/scale"

// Linear maps data to the screen with
//
//	screen = lowPos + (data - low) * (highPos - lowPos) / (high - low)
//
// where [low, high] is the current range.
type Linear struct {
	base
}

// NewLinear returns a linear mapper from r onto [lowPos, highPos].
func NewLinear(r Range, lowPos, highPos float64) *Linear {
	m := &Linear{}
	m.init(r, lowPos, highPos, func(low, high, oldSpan, newSpan float64) float64 {
		return low + (high-low)/oldSpan*newSpan
	})
	return m
}

func (m *Linear) Scale() Scale { return LinearScale }

// projection returns the data to screen transform, or false if the
// range is null or not finite.
func (m *Linear) projection() (scale.QQ, bool) {
	low, high := m.rng.Bounds()
	if low == high || !finite(high-low) {
		return scale.QQ{}, false
	}
	return scale.QQ{
		Src:  &scale.Linear{Min: low, Max: high},
		Dest: &scale.Linear{Min: m.lowPos, Max: m.highPos},
	}, true
}

func (m *Linear) MapScreen(data []float64) []float64 {
	qq, ok := m.projection()
	if !ok {
		return fill(len(data), m.lowPos)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = qq.Map(m.limit(v))
	}
	return out
}

// MapData is the inverse of MapScreen. A null range or screen interval
// maps every position to the range's low end.
func (m *Linear) MapData(screen []float64) []float64 {
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
