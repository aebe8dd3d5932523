// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/datarange"
	"github.com/aclements/go-chartcore/datasource"
	"github.com/aclements/go-chartcore/event"
	"github.com/aclements/go-gg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray() SegmentMap {
	ramp := []Segment{{0, 0, 0}, {1, 1, 1}}
	return SegmentMap{Red: ramp, Green: ramp, Blue: ramp}
}

func assertColor(t *testing.T, want, got RGBA, delta float64, msg string) {
	t.Helper()
	for ch := range want {
		assert.InDelta(t, want[ch], got[ch], delta, "%s: %s", msg, Channel(ch))
	}
}

func TestGrayscaleRamp(t *testing.T) {
	c, err := New(gray(), datarange.NewValue(0, 1))
	require.NoError(t, err)
	got := c.MapScreen([]float64{0, 0.5, 1})
	for i, v := range []float64{0, 0.5, 1} {
		assertColor(t, RGBA{v, v, v, 1}, got[i], 0.02, "gray")
	}
}

func TestSegmentValidation(t *testing.T) {
	seg := gray()
	delete(seg, Blue)
	_, err := New(seg, nil)
	assert.True(t, charterr.IsConfig(err), "got %v", err)

	for _, bad := range [][]Segment{
		{{0, 0, 0}},
		{{0.1, 0, 0}, {1, 1, 1}},
		{{0, 0, 0}, {0.9, 1, 1}},
		{{0, 0, 0}, {0.6, 1, 1}, {0.4, 1, 1}, {1, 0, 0}},
		{{0, math.NaN(), 0}, {1, 1, 1}},
	} {
		seg := gray()
		seg[Green] = bad
		_, err := New(seg, nil)
		assert.True(t, charterr.IsConfig(err), "%v: got %v", bad, err)
	}

	// Out of range y values are clipped.
	seg = gray()
	seg[Red] = []Segment{{0, -1, -1}, {1, 2, 2}}
	c, err := New(seg, nil)
	require.NoError(t, err)
	assert.Equal(t, []Segment{{0, 0, 0}, {1, 1, 1}}, c.SegmentData()[Red])
	assert.Equal(t, opaque, c.SegmentData()[Alpha])
}

func TestDiscontinuity(t *testing.T) {
	step := []Segment{{0, 0, 0}, {0.5, 0, 1}, {1, 1, 1}}
	c, err := New(SegmentMap{Red: step, Green: step, Blue: step}, nil)
	require.NoError(t, err)
	got := c.MapScreen([]float64{0.25, 0.5, 0.75})
	assert.InDelta(t, 0, got[0][Red], 1e-12)
	assert.InDelta(t, 1, got[1][Red], 1e-12)
	assert.InDelta(t, 1, got[2][Red], 1e-12)
}

func TestMapScreenEdges(t *testing.T) {
	c, err := New(gray(), datarange.NewValue(10, 20))
	require.NoError(t, err)
	got := c.MapScreen([]float64{math.NaN(), 0, 15, 100})
	assert.Equal(t, Transparent, got[0])
	assertColor(t, RGBA{0, 0, 0, 1}, got[1], 1e-12, "below range")
	assertColor(t, RGBA{0.5, 0.5, 0.5, 1}, got[2], 1e-12, "middle")
	assertColor(t, RGBA{1, 1, 1, 1}, got[3], 1e-12, "above range")

	// A degenerate range normalizes everything to 0.
	c.SetRange(datarange.NewValue(3, 3))
	assertColor(t, RGBA{0, 0, 0, 1}, c.MapScreen([]float64{7})[0], 1e-12, "degenerate")

	c.SetRange(datarange.NewValue(0, 1))
	assert.Equal(t, []color.NRGBA{{128, 128, 128, 255}, {}}, c.MapNRGBA([]float64{0.5, math.NaN()}))
}

func TestMapIndex(t *testing.T) {
	c, err := New(gray(), datarange.NewValue(0, 1))
	require.NoError(t, err)
	require.NoError(t, c.SetSteps(5))
	assert.Equal(t, []int{0, 0, 1, 2, 4, 4, -1},
		c.MapIndex([]float64{-1, 0.2, 0.25, 0.6, 1, 2, math.NaN()}))

	colors := c.Colors()
	require.Len(t, colors, 5)
	for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assertColor(t, RGBA{want, want, want, 1}, colors[i], 1e-12, "band")
	}

	assert.True(t, charterr.IsConfig(c.SetSteps(0)))
	assert.Equal(t, 5, c.Steps())
}

func TestDirty(t *testing.T) {
	r := datarange.New(datasource.NewArray([]float64{0, 10}))
	c, err := New(gray(), r)
	require.NoError(t, err)
	n := 0
	c.Subscribe(func(e event.Event) {
		assert.Equal(t, event.ColormapUpdated, e.Kind)
		n++
	})

	assert.True(t, c.Dirty())
	assertColor(t, RGBA{0.5, 0.5, 0.5, 1}, c.MapScreen([]float64{5})[0], 1e-12, "before")
	assert.False(t, c.Dirty())

	// A range update is observed by the next lookup.
	r.SetHigh(20)
	assert.True(t, c.Dirty())
	assert.Equal(t, 1, n)
	assertColor(t, RGBA{0.25, 0.25, 0.25, 1}, c.MapScreen([]float64{5})[0], 1e-12, "after")
	assert.False(t, c.Dirty())

	require.NoError(t, c.SetSegmentData(c.SegmentData().reversed()))
	assert.True(t, c.Dirty())
	assert.Equal(t, 2, n)
	assertColor(t, RGBA{0.75, 0.75, 0.75, 1}, c.MapScreen([]float64{5})[0], 1e-12, "reversed")
	// Bands index the normalized value, not the color.
	assert.Equal(t, []int{63}, c.MapIndex([]float64{5}))

	err = c.SetSegmentData(SegmentMap{Red: gray()[Red]})
	assert.True(t, charterr.IsConfig(err))
	assert.Equal(t, 2, n, "failed writes do not notify")

	c.Close()
	r.SetHigh(40)
	assert.Equal(t, 2, n)
}

func TestFromPaletteArray(t *testing.T) {
	c, err := FromPaletteArray([][]float64{{1, 0, 0}, {0, 0, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Steps())
	got := c.MapScreen([]float64{0, 0.5, 1})
	assertColor(t, RGBA{1, 0, 0, 1}, got[0], 1e-12, "first")
	assertColor(t, RGBA{0.5, 0, 0.5, 1}, got[1], 1e-12, "middle")
	assertColor(t, RGBA{0, 0, 1, 1}, got[2], 1e-12, "last")

	c, err = FromPaletteArray([][]float64{{0, 0, 0, 0}, {1, 1, 1, 0.5}, {1, 1, 1, 1}}, nil)
	require.NoError(t, err)
	assertColor(t, RGBA{1, 1, 1, 0.75}, c.MapScreen([]float64{0.75})[0], 1e-12, "alpha")

	for _, bad := range [][][]float64{
		{{1, 0, 0}},
		{{1, 0}, {0, 1}},
		{{1, 0, 0}, {0, 1, 0, 1}},
	} {
		_, err := FromPaletteArray(bad, nil)
		assert.True(t, charterr.IsShape(err), "%v: got %v", bad, err)
	}
}

func TestFromPalette(t *testing.T) {
	p := palette.RGBGradient{Colors: []color.RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}}
	c, err := FromPalette(p, 3, nil)
	require.NoError(t, err)
	got := c.MapScreen([]float64{0, 1})
	assertColor(t, RGBA{0, 0, 0, 1}, got[0], 1e-12, "low")
	assertColor(t, RGBA{1, 1, 1, 1}, got[1], 1e-12, "high")

	_, err = FromPalette(p, 1, nil)
	assert.True(t, charterr.IsConfig(err))
}

func TestTransform(t *testing.T) {
	c, err := NewTransform(gray(), datarange.NewValue(1, 100), Log10, nil)
	require.NoError(t, err)
	got := c.MapScreen([]float64{10, 0})
	assertColor(t, RGBA{0.5, 0.5, 0.5, 1}, got[0], 1e-12, "log")
	assert.Equal(t, Transparent, got[1])

	sq := c.WithTransform(nil, Gamma(2))
	assertColor(t, RGBA{0.25, 0.25, 0.25, 1}, sq.MapScreen([]float64{50.5})[0], 1e-12, "gamma")

	c.SetTransform(nil, Bands(2))
	got = c.MapScreen([]float64{30, 70})
	assertColor(t, RGBA{0, 0, 0, 1}, got[0], 1e-12, "low band")
	assertColor(t, RGBA{1, 1, 1, 1}, got[1], 1e-12, "high band")
}

func TestReversed(t *testing.T) {
	c, err := Named("hot", nil)
	require.NoError(t, err)
	r := c.Reversed()
	data := []float64{0, 0.3, 0.5, 0.8, 1}
	fwd := c.MapScreen(data)
	rev := r.MapScreen([]float64{1, 0.7, 0.5, 0.2, 0})
	for i := range fwd {
		assertColor(t, fwd[i], rev[i], 1e-12, "reversed")
	}
}
