// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"math"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-moremath/vec"
)

// A Channel is one component of an RGBA color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

var channelNames = [...]string{"red", "green", "blue", "alpha"}

func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel returns the channel called name ("red", "green",
// "blue" or "alpha").
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, charterr.Configf("unknown color channel %q", name)
}

// A Segment is one breakpoint of a channel. Approaching X from below
// the channel tends to Y0; leaving it upward the channel starts at Y1.
// Y0 != Y1 makes the channel discontinuous at X.
type Segment struct {
	X, Y0, Y1 float64
}

// A SegmentMap gives the breakpoints of each channel of a colormap.
// Within a channel, X runs from 0 to 1 in non-decreasing order.
type SegmentMap map[Channel][]Segment

// opaque is the alpha channel used when a SegmentMap has none.
var opaque = []Segment{{0, 1, 1}, {1, 1, 1}}

// validate returns a normalized copy of m: red, green and blue must be
// present, alpha defaults to fully opaque and Y values are clipped to
// [0, 1].
func (m SegmentMap) validate() (SegmentMap, error) {
	out := make(SegmentMap, 4)
	for ch := Red; ch <= Alpha; ch++ {
		segs, ok := m[ch]
		if !ok {
			if ch == Alpha {
				out[ch] = append([]Segment(nil), opaque...)
				continue
			}
			return nil, charterr.Configf("segment map missing %s channel", ch)
		}
		if len(segs) < 2 {
			return nil, charterr.Configf("%s channel has %d breakpoints, want at least 2", ch, len(segs))
		}
		if segs[0].X != 0 || segs[len(segs)-1].X != 1 {
			return nil, charterr.Configf("%s channel must start at x=0 and end at x=1", ch)
		}
		norm := make([]Segment, len(segs))
		for i, s := range segs {
			if math.IsNaN(s.X) || math.IsNaN(s.Y0) || math.IsNaN(s.Y1) {
				return nil, charterr.Configf("%s channel breakpoint %d is NaN", ch, i)
			}
			if i > 0 && s.X < segs[i-1].X {
				return nil, charterr.Configf("%s channel breakpoints out of order at %d", ch, i)
			}
			norm[i] = Segment{s.X, clip01(s.Y0), clip01(s.Y1)}
		}
		out[ch] = norm
	}
	for ch := range m {
		if ch < Red || ch > Alpha {
			return nil, charterr.Configf("segment map has unknown %s", ch)
		}
	}
	return out, nil
}

// clone returns a deep copy of m.
func (m SegmentMap) clone() SegmentMap {
	out := make(SegmentMap, len(m))
	for ch, segs := range m {
		out[ch] = append([]Segment(nil), segs...)
	}
	return out
}

// reversed returns m mirrored about x=0.5.
func (m SegmentMap) reversed() SegmentMap {
	out := make(SegmentMap, len(m))
	for ch, segs := range m {
		r := make([]Segment, len(segs))
		for i, s := range segs {
			r[len(segs)-1-i] = Segment{1 - s.X, s.Y1, s.Y0}
		}
		out[ch] = r
	}
	return out
}

// Uniform returns a SegmentMap with one breakpoint per color, evenly
// spaced over [0, 1]. Each color has 3 (RGB) or 4 (RGBA) components
// in [0, 1].
func Uniform(colors [][]float64) (SegmentMap, error) {
	if len(colors) < 2 {
		return nil, charterr.Shapef("palette of %d colors", len(colors))
	}
	width := len(colors[0])
	if width != 3 && width != 4 {
		return nil, charterr.Shapef("palette of width %d", width)
	}
	m := make(SegmentMap, width)
	xs := vec.Linspace(0, 1, len(colors))
	for i, c := range colors {
		if len(c) != width {
			return nil, charterr.Shapef("palette row %d of width %d (want %d)", i, len(c), width)
		}
		x := xs[i]
		for ch := 0; ch < width; ch++ {
			m[Channel(ch)] = append(m[Channel(ch)], Segment{x, c[ch], c[ch]})
		}
	}
	return m, nil
}

func clip01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
