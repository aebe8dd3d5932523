// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"math"
	"testing"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func TestArrayBounds(t *testing.T) {
	inf := math.Inf(1)
	for _, test := range []struct {
		name   string
		data   []float64
		order  SortOrder
		lo, hi float64
	}{
		{"empty", []float64{}, SortNone, 0, 0},
		{"nil", nil, SortNone, 0, 0},
		{"single", []float64{1}, SortNone, 1, 1},
		{"unordered", []float64{3, -2, 7, 1}, SortNone, -2, 7},
		{"ascending", []float64{1, 2, 5}, Ascending, 1, 5},
		{"descending", []float64{5, 2, 1}, Descending, 1, 5},
		{"nan inside", []float64{nan, 4, nan, -1, nan}, SortNone, -1, 4},
		{"sorted nan end", []float64{1, 2, nan}, Ascending, 1, 2},
		{"infinities", []float64{-inf, 0, inf}, SortNone, -inf, inf},
		{"one inf", []float64{1, inf, 3}, SortNone, 1, inf},
	} {
		lo, hi := NewSortedArray(test.data, test.order).Bounds()
		assert.Equal(t, test.lo, lo, test.name)
		assert.Equal(t, test.hi, hi, test.name)
	}
}

func TestArrayBoundsAllNaN(t *testing.T) {
	for _, data := range [][]float64{{nan}, {nan, nan, nan}} {
		lo, hi := NewArray(data).Bounds()
		assert.True(t, math.IsNaN(lo))
		assert.True(t, math.IsNaN(hi))
	}
}

func TestArrayBoundsCache(t *testing.T) {
	a := NewArray([]float64{1, 2, 3})
	lo, hi := a.Bounds()
	assert.Equal(t, [2]float64{1, 3}, [2]float64{lo, hi})
	assert.True(t, a.bounds.valid)

	lo2, hi2 := a.Bounds()
	assert.Equal(t, lo, lo2)
	assert.Equal(t, hi, hi2)

	a.SetData([]float64{-5, 10})
	assert.False(t, a.bounds.valid, "SetData must invalidate")
	lo, hi = a.Bounds()
	assert.Equal(t, [2]float64{-5, 10}, [2]float64{lo, hi})

	require.NoError(t, a.SetMask([]bool{true, false}))
	assert.False(t, a.bounds.valid, "SetMask must invalidate")
	lo, hi = a.Bounds()
	assert.Equal(t, [2]float64{-5, 10}, [2]float64{lo, hi}, "bounds ignore the mask")
}

func TestArrayNotifications(t *testing.T) {
	data := []float64{1, 2, 3}
	a := NewArray(data)
	var got []event.Kind
	a.Subscribe(func(e event.Event) {
		assert.Same(t, a, e.Sender)
		got = append(got, e.Kind)
	})

	a.SetData(data)
	a.SetData(data)
	require.NoError(t, a.SetMask([]bool{true, true, false}))
	a.RemoveMask()
	a.SetMetadata(Selections, []interface{}{1})
	assert.Equal(t, []event.Kind{
		event.DataChanged, event.DataChanged,
		event.MaskChanged, event.MaskChanged,
		event.MetadataChanged,
	}, got)
}

func TestArrayMask(t *testing.T) {
	a := NewArray([]float64{1, 2, 3})
	assert.False(t, a.IsMasked())
	d, m := a.DataMask()
	assert.Equal(t, []float64{1, 2, 3}, d)
	assert.Equal(t, []bool{true, true, true}, m)

	err := a.SetMask([]bool{true})
	assert.True(t, charterr.IsShape(err), "got %v", err)
	assert.False(t, a.IsMasked())

	require.NoError(t, a.SetMask([]bool{false, true, false}))
	assert.True(t, a.IsMasked())
	_, m = a.DataMask()
	assert.Equal(t, []bool{false, true, false}, m)

	// A mask for data of another length is dropped.
	a.SetData([]float64{1, 2})
	assert.False(t, a.IsMasked())
}

func TestMetadataDefaults(t *testing.T) {
	a := NewArray(nil)
	assert.Equal(t, []string{Annotations, Selections}, a.MetadataKeys())
	assert.NotNil(t, a.Metadata(Selections))
	assert.Empty(t, a.Metadata(Selections))
	assert.Nil(t, a.Metadata("missing"))

	a.SetMetadata(Selections, nil)
	assert.NotNil(t, a.Metadata(Selections))
	a.SetMetadata("hover", []interface{}{"x"})
	assert.Equal(t, []interface{}{"x"}, a.Metadata("hover"))
}

func TestDataSlice(t *testing.T) {
	a := NewArray([]float64{0, 1, 2, 3, 4})
	assert.Equal(t, []float64{1, 2}, a.DataSlice(1, 3))
	assert.Equal(t, []float64{3, 4}, a.DataSlice(3, 99))
	assert.Equal(t, []float64{}, a.DataSlice(4, 2))
	assert.Equal(t, []float64{}, a.DataSlice(-3, -1))
}

func TestReverseMap(t *testing.T) {
	asc := NewSortedArray([]float64{0, 10, 20, 30}, Ascending)
	desc := NewSortedArray([]float64{30, 20, 10, 0}, Descending)
	for _, test := range []struct {
		v             float64
		wantA, wantD int
	}{
		{-5, 0, 3},
		{0, 0, 3},
		{4, 0, 3},
		{5, 0, 2}, // tie goes to the lower index
		{6, 1, 2},
		{15, 1, 1},
		{25, 2, 0},
		{30, 3, 0},
		{99, 3, 0},
	} {
		i, err := asc.ReverseMap(test.v)
		require.NoError(t, err)
		assert.Equal(t, test.wantA, i, "ascending ReverseMap(%v)", test.v)
		i, err = desc.ReverseMap(test.v)
		require.NoError(t, err)
		assert.Equal(t, test.wantD, i, "descending ReverseMap(%v)", test.v)
	}

	_, err := NewArray([]float64{3, 1, 2}).ReverseMap(1)
	assert.True(t, charterr.IsUnsupported(err), "got %v", err)
	_, err = NewArray([]float64{3, 1, 2}).ReverseMapWithin(1)
	assert.True(t, charterr.IsUnsupported(err), "got %v", err)

	_, err = NewSortedArray(nil, Ascending).ReverseMap(1)
	assert.Equal(t, ErrNoIndex, err)
	_, err = asc.ReverseMap(nan)
	assert.Equal(t, ErrNoIndex, err)

	i, err := asc.ReverseMapWithin(12)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = asc.ReverseMapWithin(31)
	assert.Equal(t, ErrNoIndex, err)
}

func TestStringArray(t *testing.T) {
	s := NewStringArray([]string{"pear", "apple", "zucchini", "fig"}, SortNone)
	lo, hi := s.Bounds()
	assert.Equal(t, "apple", lo)
	assert.Equal(t, "zucchini", hi)
	assert.Equal(t, ScalarKind, s.Kind())

	s.SetData(nil)
	lo, hi = s.Bounds()
	assert.Equal(t, "", lo)
	assert.Equal(t, "", hi)

	flo, fhi := s.BoundsFor(All)
	assert.True(t, math.IsNaN(flo) && math.IsNaN(fhi))
}

func TestKindsImplementDataSource(t *testing.T) {
	for _, src := range []DataSource{
		NewArray(nil),
		NewStringArray(nil, SortNone),
		NewPoint(nil),
		NewMultiArray(nil),
		NewGrid(nil, nil),
		NewImage(nil),
	} {
		assert.Equal(t, 0, src.Size(), "%s", src.Kind())
		assert.Empty(t, src.Mask(), "%s", src.Kind())
	}
}
