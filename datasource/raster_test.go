// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"image"
	"image/color"
	"testing"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiArray(t *testing.T) {
	s, err := NewMultiArrayRows([][]float64{
		{1, 10, -3},
		{2, nan, 7},
	})
	require.NoError(t, err)
	rows, cols := s.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 3, s.ValueSize())

	lo, hi := s.Bounds()
	assert.Equal(t, [2]float64{-3, 10}, [2]float64{lo, hi})
	lo, hi = s.BoundsFor(Index(1))
	assert.Equal(t, [2]float64{2, 7}, [2]float64{lo, hi})
	lo, hi = s.BoundsFor(Value(2))
	assert.Equal(t, [2]float64{-3, 7}, [2]float64{lo, hi})
	assert.Equal(t, []float64{1, 2}, s.Col(0))

	// Masks select rows.
	assert.True(t, charterr.IsShape(s.SetMask([]bool{true, true, true})))
	require.NoError(t, s.SetMask([]bool{true, false}))

	s.SetData(mat64.NewDense(1, 1, []float64{4}))
	assert.False(t, s.IsMasked())
	lo, hi = s.Bounds()
	assert.Equal(t, [2]float64{4, 4}, [2]float64{lo, hi})

	_, err = NewMultiArrayRows([][]float64{{1, 2}, {3}})
	assert.True(t, charterr.IsShape(err))
	_, err = NewMultiArrayRows([][]float64{{}})
	assert.True(t, charterr.IsShape(err))

	s = NewMultiArray1D([]float64{5, 6})
	rows, cols = s.Dims()
	assert.Equal(t, [2]int{2, 1}, [2]int{rows, cols})

	s = NewMultiArray(nil)
	lo, hi = s.Bounds()
	assert.Equal(t, [2]float64{0, 0}, [2]float64{lo, hi})
}

func TestGrid(t *testing.T) {
	g := NewGrid([]float64{0, 1, 2, 3}, []float64{-10, 5})
	assert.Equal(t, 8, g.Size())
	lo, hi := g.Bounds()
	assert.Equal(t, [2]float64{0, -10}, lo)
	assert.Equal(t, [2]float64{3, 5}, hi)

	l, h := g.BoundsFor(Index(0))
	assert.Equal(t, [2]float64{0, 3}, [2]float64{l, h})
	l, h = g.BoundsFor(Value(0))
	assert.Equal(t, [2]float64{-10, 5}, [2]float64{l, h})
	l, h = g.BoundsFor(All)
	assert.Equal(t, [2]float64{-10, 5}, [2]float64{l, h})

	g.SetDataSorted([]float64{4, 3}, nil, Descending, Ascending)
	l, h = g.BoundsFor(All)
	assert.Equal(t, [2]float64{3, 4}, [2]float64{l, h})
	assert.Equal(t, 0, g.Size())
}

func TestScalarImage(t *testing.T) {
	m := mat64.NewDense(2, 3, []float64{
		0, 1, 2,
		3, 4, -5,
	})
	img := NewImage(m)
	assert.Equal(t, 1, img.Depth())
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, 6, img.Size())
	assert.Equal(t, []float64{-5}, img.At(2, 1))

	lo, hi := img.Bounds()
	assert.Equal(t, [2]float64{-5, 4}, [2]float64{lo, hi})

	img.SetTransposed(true)
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 3, img.Height())
	assert.Equal(t, []float64{-5}, img.At(1, 2))
	x, y := img.ArrayBounds()
	assert.Equal(t, [2]float64{0, 2}, x)
	assert.Equal(t, [2]float64{0, 3}, y)
}

func TestColorImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{10, 20, 30, 255})
	src.SetRGBA(1, 0, color.RGBA{200, 100, 50, 255})
	img := NewColorImage(src)
	assert.Equal(t, 3, img.Depth())
	assert.Equal(t, []float64{10, 20, 30}, img.At(0, 0))
	lo, hi := img.Bounds()
	assert.Equal(t, [2]float64{10, 200}, [2]float64{lo, hi})

	// A translucent image keeps its alpha channel.
	src.SetRGBA(1, 0, color.RGBA{0, 0, 0, 0})
	img.SetImage(src)
	assert.Equal(t, 4, img.Depth())
	assert.Equal(t, []float64{0, 0, 0, 0}, img.At(1, 0))
	lo, hi = img.Bounds()
	assert.Equal(t, [2]float64{0, 255}, [2]float64{lo, hi})
}
