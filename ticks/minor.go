// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"sort"

	"github.com/aclements/go-chartcore/mapper"
)

// Minor generates minor ticks between the major ticks Default would
// choose for the same arguments. A linear major step of 2*10^k is
// split in four and any other in five. Log axes tick each multiple of
// a decade.
type Minor struct {
	Default
}

func (g Minor) Ticks(dataLow, dataHigh, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool) []float64 {
	lo, hi, ok := normalize(dataLow, dataHigh, g.Scale)
	if !ok {
		return nil
	}
	if g.Scale == mapper.LogScale {
		return withEndpoints(g.minorLog(lo, hi, boundsLow, boundsHigh, interval), lo, hi, useEndpoints)
	}
	step := g.step(lo, hi, boundsLow, boundsHigh, interval)
	if step == 0 {
		return nil
	}
	return withEndpoints(multiples(lo, hi, minorStep(step)), lo, hi, useEndpoints)
}

func minorStep(major float64) float64 {
	mant := major / math.Pow10(int(math.Floor(math.Log10(major))))
	if math.Abs(mant-2) < 1e-9 {
		return major / 4
	}
	return major / 5
}

// ShowAll places ticks at fixed positions, keeping those inside the
// data interval.
type ShowAll struct {
	Positions []float64
}

func (g ShowAll) Ticks(dataLow, dataHigh, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool) []float64 {
	lo, hi, ok := normalize(dataLow, dataHigh, mapper.LinearScale)
	if !ok {
		return nil
	}
	ticks := []float64{}
	for _, v := range g.Positions {
		if v >= lo && v <= hi {
			ticks = append(ticks, v)
		}
	}
	sort.Float64s(ticks)
	return withEndpoints(ticks, lo, hi, useEndpoints)
}
