// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datarange

import "strconv"

type settingKind int

const (
	autoSetting settingKind = iota
	trackSetting
	valueSetting
)

// A Setting says how one end of a range is resolved: from the data
// (Auto), at a fixed distance from the other end (Track), or at an
// explicit value.
//
// The zero Setting is Auto.
type Setting struct {
	kind settingKind
	v    float64
}

// Auto returns a Setting that resolves a range end from the bounds of
// the range's sources.
func Auto() Setting { return Setting{kind: autoSetting} }

// Track returns a Setting that keeps a range end TrackingAmount away
// from the other end.
func Track() Setting { return Setting{kind: trackSetting} }

// Value returns a Setting that fixes a range end at v.
func Value(v float64) Setting { return Setting{kind: valueSetting, v: v} }

func (s Setting) IsAuto() bool { return s.kind == autoSetting }

func (s Setting) IsTrack() bool { return s.kind == trackSetting }

// Value returns the explicit value of s, if it has one.
func (s Setting) Value() (float64, bool) {
	return s.v, s.kind == valueSetting
}

func (s Setting) String() string {
	switch s.kind {
	case autoSetting:
		return "auto"
	case trackSetting:
		return "track"
	}
	return strconv.FormatFloat(s.v, 'g', -1, 64)
}

// DefaultState selects the settings Reset restores.
type DefaultState int

const (
	// DefaultAuto resets both ends to Auto.
	DefaultAuto DefaultState = iota
	// DefaultLowTrack resets the low end to Track and the high end
	// to Auto.
	DefaultLowTrack
	// DefaultHighTrack resets the low end to Auto and the high end
	// to Track.
	DefaultHighTrack
)

func (d DefaultState) settings() (low, high Setting) {
	switch d {
	case DefaultLowTrack:
		return Track(), Auto()
	case DefaultHighTrack:
		return Auto(), Track()
	}
	return Auto(), Auto()
}
