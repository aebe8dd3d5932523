// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datarange aggregates the bounds of data sources into the
// intervals that mappers project onto the screen.
//
// Each end of a Range1D is Auto (computed from the registered
// sources), Track (a fixed distance from the other end) or an
// explicit Value. A range recomputes synchronously whenever one of
// its sources changes and raises event.RangeUpdated once per mutating
// call, or once per Batch.
package datarange

import (
	"math"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/chartlog"
	"github.com/aclements/go-chartcore/datasource"
	"github.com/aclements/go-chartcore/event"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMargin is the fractional padding of auto ends when
	// tight bounds are off.
	DefaultMargin = 0.05

	// DefaultEpsilon is the smallest span, relative to the low end,
	// that is not treated as a constant.
	DefaultEpsilon = 1e-10

	// DefaultTrackingAmount is the initial TrackingAmount and the
	// value Reset restores.
	DefaultTrackingAmount = 20.0
)

// member is a source registered with a range together with the
// function that extracts its extent along the range's dimension.
type member struct {
	src    datasource.DataSource
	bounds func() (lo, hi float64, ok bool)
	tok    event.Token
	subbed bool
}

// A Range1D is an interval [Low, High] resolved from zero or more data
// sources and two end Settings.
//
// The zero value is not usable; use New or NewValue.
type Range1D struct {
	sources []member

	lowSetting, highSetting Setting
	low, high               float64

	margin       float64
	tight        bool
	epsilon      float64
	tracking     float64
	defaultTrack float64
	defaultState DefaultState
	boundsFn     BoundsFunc

	events event.Dispatcher
}

// New returns an auto-ranging Range1D over srcs. Each source
// contributes its BoundsFor(datasource.All).
func New(srcs ...datasource.DataSource) *Range1D {
	r := &Range1D{
		margin:       DefaultMargin,
		tight:        true,
		epsilon:      DefaultEpsilon,
		tracking:     DefaultTrackingAmount,
		defaultTrack: DefaultTrackingAmount,
	}
	for _, src := range srcs {
		r.add(src, allBounds(src), true)
	}
	r.refresh()
	return r
}

// NewValue returns a Range1D fixed at [low, high].
func NewValue(low, high float64) *Range1D {
	r := New()
	r.lowSetting, r.highSetting = Value(low), Value(high)
	r.refresh()
	return r
}

// Low returns the resolved low end.
func (r *Range1D) Low() float64 { return r.low }

// High returns the resolved high end.
func (r *Range1D) High() float64 { return r.high }

// Bounds returns Low and High.
func (r *Range1D) Bounds() (low, high float64) { return r.low, r.high }

func (r *Range1D) LowSetting() Setting { return r.lowSetting }
func (r *Range1D) HighSetting() Setting { return r.highSetting }

// SetLow fixes the low end at v.
func (r *Range1D) SetLow(v float64) {
	r.lowSetting = Value(v)
	r.update()
}

// SetHigh fixes the high end at v.
func (r *Range1D) SetHigh(v float64) {
	r.highSetting = Value(v)
	r.update()
}

// SetBounds fixes both ends.
func (r *Range1D) SetBounds(low, high float64) {
	r.lowSetting, r.highSetting = Value(low), Value(high)
	r.update()
}

// SetLowSetting changes how the low end is resolved. Both ends
// cannot track.
func (r *Range1D) SetLowSetting(s Setting) error {
	if s.IsTrack() && r.highSetting.IsTrack() {
		return charterr.Configf("low and high ends both tracking")
	}
	r.lowSetting = s
	r.update()
	return nil
}

// SetHighSetting changes how the high end is resolved. Both ends
// cannot track.
func (r *Range1D) SetHighSetting(s Setting) error {
	if s.IsTrack() && r.lowSetting.IsTrack() {
		return charterr.Configf("low and high ends both tracking")
	}
	r.highSetting = s
	r.update()
	return nil
}

// SetSettings sets both ends at once.
func (r *Range1D) SetSettings(low, high Setting) error {
	if low.IsTrack() && high.IsTrack() {
		return charterr.Configf("low and high ends both tracking")
	}
	r.lowSetting, r.highSetting = low, high
	r.update()
	return nil
}

func (r *Range1D) Margin() float64 { return r.margin }

// SetMargin sets the padding applied to auto ends, as a fraction of
// the data span, when tight bounds are off.
func (r *Range1D) SetMargin(m float64) {
	r.margin = m
	r.update()
}

func (r *Range1D) TightBounds() bool { return r.tight }

// SetTightBounds controls whether auto ends equal the data extremes
// exactly (true, the default) or are padded by Margin.
func (r *Range1D) SetTightBounds(tight bool) {
	r.tight = tight
	r.update()
}

func (r *Range1D) Epsilon() float64 { return r.epsilon }

func (r *Range1D) SetEpsilon(eps float64) {
	r.epsilon = eps
	r.update()
}

func (r *Range1D) TrackingAmount() float64 { return r.tracking }

// SetTrackingAmount sets the distance a tracking end keeps from the
// other end.
func (r *Range1D) SetTrackingAmount(amount float64) {
	r.tracking = amount
	r.update()
}

// ScaleTrackingAmount multiplies the tracking amount by factor.
func (r *Range1D) ScaleTrackingAmount(factor float64) {
	r.SetTrackingAmount(r.tracking * factor)
}

func (r *Range1D) DefaultTrackingAmount() float64 { return r.defaultTrack }

// SetDefaultTrackingAmount sets the tracking amount Reset restores.
// It does not change the current amount.
func (r *Range1D) SetDefaultTrackingAmount(amount float64) { r.defaultTrack = amount }

func (r *Range1D) DefaultState() DefaultState { return r.defaultState }

// SetDefaultState selects the settings Reset restores.
func (r *Range1D) SetDefaultState(d DefaultState) { r.defaultState = d }

// SetBoundsFunc installs fn to compute the auto ends. A nil fn
// restores margin padding.
func (r *Range1D) SetBoundsFunc(fn BoundsFunc) {
	r.boundsFn = fn
	r.update()
}

// Reset restores the default state settings and tracking amount.
func (r *Range1D) Reset() {
	r.lowSetting, r.highSetting = r.defaultState.settings()
	r.tracking = r.defaultTrack
	r.update()
}

// Refresh recomputes the range from its sources and raises
// RangeUpdated.
func (r *Range1D) Refresh() { r.update() }

// Sources returns the registered sources in registration order.
func (r *Range1D) Sources() []datasource.DataSource {
	out := make([]datasource.DataSource, len(r.sources))
	for i, m := range r.sources {
		out[i] = m.src
	}
	return out
}

// Add registers srcs. Sources already registered are ignored.
func (r *Range1D) Add(srcs ...datasource.DataSource) {
	for _, src := range srcs {
		r.add(src, allBounds(src), true)
	}
	r.update()
}

// AddSelected registers src, contributing only the part of it picked
// by sel (for example one column of a MultiArray).
func (r *Range1D) AddSelected(src datasource.DataSource, sel datasource.Selector) {
	r.add(src, selBounds(src, sel), true)
	r.update()
}

// Remove unregisters srcs. Unknown sources are ignored.
func (r *Range1D) Remove(srcs ...datasource.DataSource) {
	for _, src := range srcs {
		r.remove(src)
	}
	r.update()
}

// add registers src without recomputing. If subscribe is false the
// caller is responsible for refreshing r when src changes.
func (r *Range1D) add(src datasource.DataSource, bounds func() (float64, float64, bool), subscribe bool) {
	for _, m := range r.sources {
		if m.src == src {
			return
		}
	}
	m := member{src: src, bounds: bounds, subbed: subscribe}
	if subscribe {
		m.tok = src.Subscribe(r.sourceChanged)
	}
	r.sources = append(r.sources, m)
}

func (r *Range1D) remove(src datasource.DataSource) {
	for i, m := range r.sources {
		if m.src != src {
			continue
		}
		if m.subbed {
			src.Unsubscribe(m.tok)
		}
		r.sources = append(r.sources[:i:i], r.sources[i+1:]...)
		return
	}
}

func (r *Range1D) sourceChanged(e event.Event) {
	switch e.Kind {
	case event.DataChanged, event.MaskChanged:
		r.update()
	}
}

// Subscribe registers fn to be called with RangeUpdated after every
// change to r.
func (r *Range1D) Subscribe(fn event.Func) event.Token { return r.events.Subscribe(fn) }

func (r *Range1D) Unsubscribe(tok event.Token) bool { return r.events.Unsubscribe(tok) }

// Batch calls fn and raises at most one RangeUpdated for all the
// changes it makes.
func (r *Range1D) Batch(fn func()) { r.events.Batch(fn) }

// update recomputes the range and notifies subscribers.
func (r *Range1D) update() {
	r.refresh()
	r.events.Notify(event.Event{Kind: event.RangeUpdated, Sender: r})
}

// refresh recomputes the range without notifying.
func (r *Range1D) refresh() {
	var mins, maxes []float64
	for _, m := range r.sources {
		lo, hi, ok := m.bounds()
		if !ok {
			continue
		}
		mins, maxes = append(mins, lo), append(maxes, hi)
	}
	r.low, r.high = calcBounds(policy{
		low:      r.lowSetting,
		high:     r.highSetting,
		margin:   r.margin,
		tight:    r.tight,
		epsilon:  r.epsilon,
		tracking: r.tracking,
		boundsFn: r.boundsFn,
	}, mins, maxes)
	if chartlog.Enabled(logrus.DebugLevel) {
		chartlog.For("datarange").WithFields(logrus.Fields{
			"sources": len(r.sources),
			"low":     r.low,
			"high":    r.high,
		}).Debug("range recomputed")
	}
}

func allBounds(src datasource.DataSource) func() (float64, float64, bool) {
	return selBounds(src, datasource.All)
}

// selBounds returns the bounds of the part of src picked by sel, and
// whether that part holds any data.
func selBounds(src datasource.DataSource, sel datasource.Selector) func() (float64, float64, bool) {
	return func() (float64, float64, bool) {
		if !nonEmpty(src, sel) {
			return 0, 0, false
		}
		lo, hi := src.BoundsFor(sel)
		return lo, hi, true
	}
}

// axisLener is implemented by sources whose length differs by axis.
type axisLener interface {
	AxisLen(a datasource.Axis) int
}

// nonEmpty reports whether the part of src picked by sel has data.
func nonEmpty(src datasource.DataSource, sel datasource.Selector) bool {
	a, ok := src.(axisLener)
	if !ok {
		return src.Size() > 0
	}
	switch sel.Dim {
	case datasource.IndexDim:
		return a.AxisLen(datasource.X) > 0
	case datasource.ValueDim:
		return a.AxisLen(datasource.Y) > 0
	}
	return a.AxisLen(datasource.X)+a.AxisLen(datasource.Y) > 0
}

// contains reports whether v lies in [Low, High]. NaN never does.
func (r *Range1D) contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.low && v <= r.high
}
