// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-chartcore/mapper"
)

// logGoal is the number of log ticks to aim for when sub-decade
// multiples fit.
const logGoal = 15

// A logPlan describes log ticks for an interval.
type logPlan struct {
	// linear is set when the interval spans less than a decade.
	linear bool

	// mults, if non-nil, are the multiples of each decade to tick.
	mults []float64

	// stride is the number of decades between ticks when mults is
	// nil.
	stride int
}

func (g Default) planLog(lo, hi, boundsLow, boundsHigh float64, interval Interval) logPlan {
	ll, lh := math.Log10(lo), math.Log10(hi)
	span := lh - ll
	switch interval.kind {
	case stepInterval:
		if s := math.Round(interval.step); s >= 1 && !math.IsInf(s, 0) {
			return logPlan{stride: int(s)}
		}
	case divisionsInterval:
		if interval.n > 0 {
			return logPlan{stride: int(math.Max(1, math.Ceil(span/float64(interval.n))))}
		}
	}
	if span < 1 {
		return logPlan{linear: true}
	}
	if span <= (logGoal+1)/2 {
		perDecade := logGoal / span
		switch {
		case perDecade >= 9:
			return logPlan{mults: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}}
		case perDecade >= 3:
			return logPlan{mults: []float64{1, 2, 5}}
		case perDecade >= 2:
			return logPlan{mults: []float64{1, 5}}
		}
		return logPlan{mults: []float64{1}}
	}

	// Too many decades to label each one. Choose a 1, 2, 5
	// stride of decades.
	t := levelTicker{ll, lh}
	o := g.options(t, boundsLow, boundsHigh)
	if o.MinLevel < 0 {
		o.MinLevel = 0
	}
	o.MaxLevel = 60
	level, ok := o.FindLevel(t, t.guess())
	if !ok {
		return logPlan{stride: 1}
	}
	return logPlan{stride: int(spacing(level))}
}

func (g Default) logTicks(lo, hi, boundsLow, boundsHigh float64, interval Interval, useEndpoints bool) []float64 {
	if lo <= 0 {
		return nil
	}
	plan := g.planLog(lo, hi, boundsLow, boundsHigh, interval)
	if plan.linear {
		return Default{MinSpacing: g.MinSpacing}.Ticks(lo, hi, boundsLow, boundsHigh, interval, useEndpoints)
	}
	var ticks []float64
	if plan.mults != nil {
		ticks = decadeMultiples(lo, hi, plan.mults)
	} else {
		ticks = decades(lo, hi, plan.stride)
	}
	return withEndpoints(ticks, lo, hi, useEndpoints)
}

// decadeMultiples returns m*10^k in [lo, hi] for each multiplier m.
func decadeMultiples(lo, hi float64, mults []float64) []float64 {
	ticks := []float64{}
	for e := math.Floor(math.Log10(lo)); e <= math.Ceil(math.Log10(hi)); e++ {
		for _, m := range mults {
			if v := decade(m, int(e)); inLog(v, lo, hi) {
				ticks = append(ticks, v)
			}
		}
	}
	return ticks
}

// decades returns the powers of ten in [lo, hi] whose exponents are
// multiples of stride.
func decades(lo, hi float64, stride int) []float64 {
	s := float64(stride)
	ticks := []float64{}
	first := math.Ceil(math.Log10(lo)/s - 1e-10)
	last := math.Floor(math.Log10(hi)/s + 1e-10)
	for k := first; k <= last; k++ {
		ticks = append(ticks, math.Pow10(int(k*s)))
	}
	return ticks
}

// decade returns m*10^e. Negative exponents divide so that 3*10^-1
// is exactly 0.3.
func decade(m float64, e int) float64 {
	if e < 0 {
		return m / math.Pow10(-e)
	}
	return m * math.Pow10(e)
}

func inLog(v, lo, hi float64) bool {
	return v >= lo*(1-1e-10) && v <= hi*(1+1e-10)
}

// minorLog returns the minor ticks for log data in [lo, hi].
func (g Default) minorLog(lo, hi, boundsLow, boundsHigh float64, interval Interval) []float64 {
	if lo <= 0 {
		return nil
	}
	plan := g.planLog(lo, hi, boundsLow, boundsHigh, interval)
	switch {
	case plan.linear:
		return Minor{Default{Scale: mapper.LinearScale, MinSpacing: g.MinSpacing}}.Ticks(lo, hi, boundsLow, boundsHigh, interval, false)
	case plan.mults == nil && plan.stride > 1:
		return decades(lo, hi, 1)
	}
	return decadeMultiples(lo, hi, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
}
