// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"sort"
	"sync"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-gg/palette"
)

var (
	namedMu sync.RWMutex
	named   = map[string]SegmentMap{
		"gray": {
			Red:   {{0, 0, 0}, {1, 1, 1}},
			Green: {{0, 0, 0}, {1, 1, 1}},
			Blue:  {{0, 0, 0}, {1, 1, 1}},
		},
		"hot": {
			Red:   {{0, 0.0416, 0.0416}, {0.365079, 1, 1}, {1, 1, 1}},
			Green: {{0, 0, 0}, {0.365079, 0, 0}, {0.746032, 1, 1}, {1, 1, 1}},
			Blue:  {{0, 0, 0}, {0.746032, 0, 0}, {1, 1, 1}},
		},
		"cool": {
			Red:   {{0, 0, 0}, {1, 1, 1}},
			Green: {{0, 1, 1}, {1, 0, 0}},
			Blue:  {{0, 1, 1}, {1, 1, 1}},
		},
		"jet": {
			Red:   {{0, 0, 0}, {0.35, 0, 0}, {0.66, 1, 1}, {0.89, 1, 1}, {1, 0.5, 0.5}},
			Green: {{0, 0, 0}, {0.125, 0, 0}, {0.375, 1, 1}, {0.64, 1, 1}, {0.91, 0, 0}, {1, 0, 0}},
			Blue:  {{0, 0.5, 0.5}, {0.11, 1, 1}, {0.34, 1, 1}, {0.65, 0, 0}, {1, 0, 0}},
		},
		"autumn": {
			Red:   {{0, 1, 1}, {1, 1, 1}},
			Green: {{0, 0, 0}, {1, 1, 1}},
			Blue:  {{0, 0, 0}, {1, 0, 0}},
		},
		"spring": {
			Red:   {{0, 1, 1}, {1, 1, 1}},
			Green: {{0, 0, 0}, {1, 1, 1}},
			Blue:  {{0, 1, 1}, {1, 0, 0}},
		},
		"summer": {
			Red:   {{0, 0, 0}, {1, 1, 1}},
			Green: {{0, 0.5, 0.5}, {1, 1, 1}},
			Blue:  {{0, 0.4, 0.4}, {1, 0.4, 0.4}},
		},
		"winter": {
			Red:   {{0, 0, 0}, {1, 0, 0}},
			Green: {{0, 0, 0}, {1, 1, 1}},
			Blue:  {{0, 1, 1}, {1, 0.5, 0.5}},
		},
	}
)

// viridisSamples is the resolution at which palette.Viridis is
// sampled into a segment map.
const viridisSamples = 64

func init() {
	seg, err := Uniform(sample(palette.Viridis, viridisSamples))
	if err != nil {
		panic(err)
	}
	named["viridis"] = seg
}

// Names returns the registered colormap names in sorted order.
func Names() []string {
	namedMu.RLock()
	defer namedMu.RUnlock()
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the segment map registered as name.
func Lookup(name string) (SegmentMap, error) {
	namedMu.RLock()
	defer namedMu.RUnlock()
	seg, ok := named[name]
	if !ok {
		return nil, charterr.Configf("unknown colormap %q", name)
	}
	return seg.clone(), nil
}

// Register adds seg under name, replacing any colormap of that name.
func Register(name string, seg SegmentMap) error {
	if name == "" {
		return charterr.Configf("colormap with empty name")
	}
	norm, err := seg.validate()
	if err != nil {
		return charterr.Annotatef(err, "colormap %q", name)
	}
	namedMu.Lock()
	named[name] = norm
	namedMu.Unlock()
	return nil
}

// Named returns a ColorMapper for the colormap registered as name.
func Named(name string, r Range) (*ColorMapper, error) {
	seg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(seg, r)
}
