// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-chartcore/mapper"
	"github.com/dustin/go-humanize"
)

// A Formatter labels a set of ticks. It sees all ticks at once so
// labels can share a precision.
type Formatter func(ticks []float64) []string

// maxDecimals bounds the precision chosen by decimals.
const maxDecimals = 10

// decimals returns the fewest decimal places that represent every
// tick exactly, up to maxDecimals.
func decimals(ticks []float64) int {
	d := 0
	for _, v := range ticks {
		for ; d < maxDecimals; d++ {
			p := math.Pow10(d) * v
			if math.Abs(p-math.Round(p)) < 1e-6 {
				break
			}
		}
	}
	return d
}

func roundTo(v float64, d int) float64 {
	p := math.Pow10(d)
	if r := math.Round(v*p) / p; r != 0 {
		return r
	}
	return 0
}

// Fixed formats ticks in plain decimal notation with a common number
// of decimal places.
func Fixed(ticks []float64) []string {
	d := decimals(ticks)
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = strconv.FormatFloat(roundTo(v, d), 'f', d, 64)
	}
	return out
}

// General formats each tick with the shortest representation in %g
// style.
func General(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// SI formats ticks with SI prefixes, like "1.5 k".
func SI(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		scaled, _ := humanize.ComputeSI(v)
		d := decimals([]float64{scaled})
		if d > 3 {
			d = 3
		}
		out[i] = strings.TrimSpace(humanize.SIWithDigits(v, d, ""))
	}
	return out
}

// Comma formats ticks with thousands separators.
func Comma(ticks []float64) []string {
	d := decimals(ticks)
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = humanize.Commaf(roundTo(v, d))
	}
	return out
}

// TicksAndLabels returns the ticks g generates along with their
// labels. A nil format uses Fixed.
func TicksAndLabels(g Generator, dataLow, dataHigh, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool, format Formatter) ([]float64, []string) {
	if format == nil {
		format = Fixed
	}
	ticks := g.Ticks(dataLow, dataHigh, boundsLow, boundsHigh, interval, useEndpoints)
	if ticks == nil {
		return nil, nil
	}
	return ticks, format(ticks)
}

// ForMapper returns the ticks for m's current data range and screen
// interval. A nil g uses Default with m's scale.
func ForMapper(g Generator, m mapper.Mapper1D, interval Interval) []float64 {
	if g == nil {
		g = Default{Scale: m.Scale()}
	}
	lo, hi := m.Range().Bounds()
	slo, shi := m.ScreenBounds()
	return g.Ticks(lo, hi, slo, shi, interval, false)
}
