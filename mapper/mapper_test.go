// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"
	"testing"

	"github.com/aclements/go-chartcore/datarange"
	"github.com/aclements/go-chartcore/datasource"
	"github.com/stretchr/testify/assert"
)

func TestLinearMapScreen(t *testing.T) {
	data := []float64{5, 6, 7, 8, 9, 10}
	m := NewLinear(datarange.NewValue(5, 10), 50, 100)
	assert.InDeltaSlice(t, []float64{50, 60, 70, 80, 90, 100}, m.MapScreen(data), 1e-9)

	m.SetScreenBounds(100, 0)
	assert.InDeltaSlice(t, []float64{100, 80, 60, 40, 20, 0}, m.MapScreen(data), 1e-9)

	assert.Len(t, m.MapScreen([]float64{7}), 1)
	assert.Empty(t, m.MapScreen(nil))
}

func TestLinearRoundTrip(t *testing.T) {
	for _, bounds := range [][4]float64{
		{5, 10, 50, 100},
		{5, 10, 100, 0},
		{-1e6, 1e6, 0, 1},
		{0.001, 0.002, -300, 300},
	} {
		m := NewLinear(datarange.NewValue(bounds[0], bounds[1]), bounds[2], bounds[3])
		var data []float64
		for i := 0; i <= 20; i++ {
			data = append(data, bounds[0]+(bounds[1]-bounds[0])*float64(i)/20)
		}
		tol := (bounds[1] - bounds[0]) * 1e-12
		assert.InDeltaSlice(t, data, m.MapData(m.MapScreen(data)), tol, "%v", bounds)
	}
}

func TestLinearNullRange(t *testing.T) {
	m := NewLinear(datarange.NewValue(3, 3), 50, 100)
	assert.Equal(t, []float64{50, 50}, m.MapScreen([]float64{3, 4}))
	assert.Equal(t, []float64{3}, m.MapData([]float64{75}))

	// An empty auto range is infinite.
	m.SetRange(datarange.New())
	assert.Equal(t, []float64{50}, m.MapScreen([]float64{1}))

	m = NewLinear(datarange.NewValue(0, 10), 20, 20)
	assert.Equal(t, []float64{20}, m.MapScreen([]float64{5}))
	assert.Equal(t, []float64{0, 0}, m.MapData([]float64{20, 30}))
}

func TestDomainLimits(t *testing.T) {
	m := NewLinear(datarange.NewValue(0, 10), 0, 100)
	m.SetDomainLimits(8, 2)
	lo, hi, ok := m.DomainLimits()
	assert.True(t, ok)
	assert.Equal(t, [2]float64{2, 8}, [2]float64{lo, hi})

	assert.InDeltaSlice(t, []float64{20, 50, 80}, m.MapScreen([]float64{-5, 5, 50}), 1e-9)
	assert.InDeltaSlice(t, []float64{2, 8}, m.MapData([]float64{0, 100}), 1e-9)

	m.ClearDomainLimits()
	assert.InDeltaSlice(t, []float64{-50}, m.MapScreen([]float64{-5}), 1e-9)
}

func TestStretchData(t *testing.T) {
	r := datarange.NewValue(0, 10)
	m := NewLinear(r, 0, 100)
	assert.True(t, m.StretchData())

	m.SetHighPos(200)
	assert.Equal(t, [2]float64{0, 10}, pair(r.Bounds()))
	assert.InDeltaSlice(t, []float64{100}, m.MapScreen([]float64{5}), 1e-9)

	m.SetStretchData(false)
	m.SetHighPos(400)
	assert.InDeltaSlice(t, []float64{0, 20}, slice(r.Bounds()), 1e-9)
	assert.InDeltaSlice(t, []float64{100}, m.MapScreen([]float64{5}), 1e-9)

	m.SetLowPos(300)
	assert.InDeltaSlice(t, []float64{0, 5}, slice(r.Bounds()), 1e-9)
}

func TestStretchDataFirstPlacement(t *testing.T) {
	// The first layout only places a non-stretching mapper.
	r := datarange.NewValue(0, 10)
	m := NewLinear(r, 0, 0)
	m.SetStretchData(false)
	m.SetScreenBounds(0, 100)
	assert.Equal(t, [2]float64{0, 10}, pair(r.Bounds()))
	assert.InDeltaSlice(t, []float64{50}, m.MapScreen([]float64{5}), 1e-9)

	m.SetScreenBounds(0, 200)
	assert.InDeltaSlice(t, []float64{0, 20}, slice(r.Bounds()), 1e-9)

	// Placement by SetLowPos counts too.
	r = datarange.NewValue(0, 10)
	m = NewLinear(r, 0, 100)
	m.SetStretchData(false)
	m.SetLowPos(50)
	assert.Equal(t, [2]float64{0, 10}, pair(r.Bounds()))
	m.SetLowPos(0)
	assert.InDeltaSlice(t, []float64{0, 20}, slice(r.Bounds()), 1e-9)
}

func TestStretchDataSharedRange(t *testing.T) {
	// The range mapped by a non-stretching mapper is also seen by
	// other mappers bound to it.
	r := datarange.New(datasource.NewArray([]float64{0, 10}))
	a := NewLinear(r, 0, 100)
	b := NewLinear(r, 0, 10)
	a.SetStretchData(false)
	a.SetScreenBounds(0, 100)
	a.SetHighPos(50)
	assert.InDeltaSlice(t, []float64{0, 5}, slice(r.Bounds()), 1e-9)
	assert.InDeltaSlice(t, []float64{10}, b.MapScreen([]float64{5}), 1e-9)
}

func TestLogMapper(t *testing.T) {
	m := NewLog(datarange.NewValue(1, 1000), 0, 300)
	assert.Equal(t, LogScale, m.Scale())
	assert.InDeltaSlice(t, []float64{0, 100, 200, 300}, m.MapScreen([]float64{1, 10, 100, 1000}), 1e-9)
	assert.InDeltaSlice(t, []float64{math.Pow(10, 1.5)}, m.MapData([]float64{150}), 1e-9)

	assert.Equal(t, []float64{0, 0, 0}, m.MapScreen([]float64{0, -1, math.NaN()}))
	m.SetFillValue(-5)
	assert.Equal(t, []float64{-5, -5}, m.MapScreen([]float64{0, -1}))
	m.ClearFillValue()
	assert.Equal(t, 0.0, m.FillValue())

	data := []float64{1, 2, 3, 50, 999}
	assert.InDeltaSlice(t, data, m.MapData(m.MapScreen(data)), 1e-9)
}

func TestLogInvalidRange(t *testing.T) {
	for _, r := range []*datarange.Range1D{
		datarange.NewValue(0, 10),
		datarange.NewValue(-10, 10),
		datarange.NewValue(5, 5),
		datarange.New(),
	} {
		m := NewLog(r, 10, 20)
		assert.Equal(t, []float64{10, 10}, m.MapScreen([]float64{1, 5}))
		assert.Equal(t, []float64{r.Low()}, m.MapData([]float64{15}))
	}
}

func TestLogStretchData(t *testing.T) {
	r := datarange.NewValue(1, 100)
	m := NewLog(r, 0, 100)
	m.SetStretchData(false)
	m.SetHighPos(100)
	m.SetHighPos(200)
	low, high := r.Bounds()
	assert.Equal(t, 1.0, low)
	assert.InEpsilon(t, 1e4, high, 1e-9)
}

func TestNew(t *testing.T) {
	r := datarange.NewValue(1, 10)
	assert.IsType(t, &Linear{}, New(LinearScale, r, 0, 1))
	assert.IsType(t, &Log{}, New(LogScale, r, 0, 1))
	assert.Equal(t, "log", LogScale.String())
}

func pair(lo, hi float64) [2]float64 { return [2]float64{lo, hi} }

func slice(lo, hi float64) []float64 { return []float64{lo, hi} }
