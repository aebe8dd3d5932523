// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datasource holds the sample data consumed by data ranges
// and renderers.
//
// A data source owns one array of samples (replaced wholesale with a
// SetData method, never resized in place), an optional boolean mask
// and string-keyed metadata. Each source caches its own bounds and
// discards the cache synchronously whenever its data or mask is
// replaced. Every mutation raises exactly one notification, even if
// the new value equals the old one.
//
// The set of source kinds is closed. All of them implement
// DataSource:
//
//	Array, StringArray  1-D scalar data
//	Point               2-D points
//	MultiArray          rows of values sharing one index
//	Grid                the x and y coordinates of a rectilinear grid
//	Image               a scalar field or a color raster
//
// Sources do not copy the slices they are given. Callers must not
// modify a slice after handing it to a source; call SetData instead.
package datasource

import (
	"sort"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/event"
)

// Kind identifies the concrete type of a DataSource.
type Kind int

const (
	ScalarKind Kind = iota
	PointKind
	MultiArrayKind
	GridKind
	ImageKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case PointKind:
		return "point"
	case MultiArrayKind:
		return "multi-array"
	case GridKind:
		return "grid"
	case ImageKind:
		return "image"
	}
	return "unknown"
}

// SortOrder describes the ordering of a source's (index) data.
type SortOrder int

const (
	SortNone SortOrder = iota
	Ascending
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "none"
}

// Dim selects which part of a multi-dimensional source BoundsFor
// considers.
type Dim int

const (
	// AllDims considers every value in the source.
	AllDims Dim = iota
	// IndexDim considers the index part: the index axis of a
	// Point, the x axis of a Grid or one row of a MultiArray.
	IndexDim
	// ValueDim considers the value part: the value axis of a
	// Point, the y axis of a Grid or one column of a MultiArray.
	ValueDim
)

// Selector restricts BoundsFor to part of a source. Pos picks the row
// (IndexDim) or column (ValueDim) of a MultiArray and is ignored by
// other kinds.
type Selector struct {
	Dim Dim
	Pos int
}

// All selects every value.
var All = Selector{}

// Index returns a selector of the index part at pos.
func Index(pos int) Selector { return Selector{IndexDim, pos} }

// Value returns a selector of the value part at pos.
func Value(pos int) Selector { return Selector{ValueDim, pos} }

// Reserved metadata keys. They are always present.
const (
	Selections  = "selections"
	Annotations = "annotations"
)

// DataSource is implemented by every source kind in this package.
type DataSource interface {
	Kind() Kind

	// Size returns the number of samples. It is also the length of
	// the source's mask.
	Size() int

	// BoundsFor returns the NaN-ignoring (min, max) of the part of
	// the source picked by sel.
	BoundsFor(sel Selector) (lo, hi float64)

	// IsMasked reports whether a mask has been set.
	IsMasked() bool

	// Mask returns the mask, or an all-true mask if none is set.
	Mask() []bool

	// SetMask sets the mask. It fails if len(mask) != Size().
	SetMask(mask []bool) error

	// RemoveMask discards the mask.
	RemoveMask()

	Metadata(key string) []interface{}
	SetMetadata(key string, values []interface{})
	MetadataKeys() []string

	Subscribe(fn event.Func) event.Token
	Unsubscribe(tok event.Token) bool

	isDataSource()
}

// base implements the parts of DataSource shared by every kind.
type base struct {
	self       DataSource
	invalidate func()

	events event.Dispatcher
	meta   map[string][]interface{}
	mask   []bool
}

func (b *base) init(self DataSource, invalidate func()) {
	b.self = self
	b.invalidate = invalidate
	b.meta = map[string][]interface{}{
		Selections:  {},
		Annotations: {},
	}
}

func (b *base) isDataSource() {}

func (b *base) Subscribe(fn event.Func) event.Token {
	return b.events.Subscribe(fn)
}

func (b *base) Unsubscribe(tok event.Token) bool {
	return b.events.Unsubscribe(tok)
}

func (b *base) notify(k event.Kind) {
	b.events.Notify(event.Event{Kind: k, Sender: b.self})
}

// dataChanged discards cached state and raises DataChanged.
func (b *base) dataChanged() {
	b.invalidate()
	if b.mask != nil && len(b.mask) != b.self.Size() {
		// A mask for the old data no longer lines up.
		b.mask = nil
	}
	b.notify(event.DataChanged)
}

func (b *base) IsMasked() bool {
	return b.mask != nil
}

func (b *base) Mask() []bool {
	if b.mask != nil {
		return b.mask
	}
	m := make([]bool, b.self.Size())
	for i := range m {
		m[i] = true
	}
	return m
}

func (b *base) SetMask(mask []bool) error {
	if mask == nil {
		return charterr.Shapef("nil mask")
	}
	if n := b.self.Size(); len(mask) != n {
		return charterr.Shapef("mask of length %d for %s source of size %d", len(mask), b.self.Kind(), n)
	}
	b.mask = mask
	b.invalidate()
	b.notify(event.MaskChanged)
	return nil
}

func (b *base) RemoveMask() {
	b.mask = nil
	b.invalidate()
	b.notify(event.MaskChanged)
}

// Metadata returns the values stored under key, or nil.
func (b *base) Metadata(key string) []interface{} {
	return b.meta[key]
}

// SetMetadata replaces the values under key and raises
// MetadataChanged. Setting a reserved key to nil stores an empty list.
func (b *base) SetMetadata(key string, values []interface{}) {
	if values == nil && (key == Selections || key == Annotations) {
		values = []interface{}{}
	}
	b.meta[key] = values
	b.notify(event.MetadataChanged)
}

// MetadataKeys returns the metadata keys in sorted order.
func (b *base) MetadataKeys() []string {
	keys := make([]string, 0, len(b.meta))
	for k := range b.meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cache is a value that is either valid or must be recomputed.
type cache[T any] struct {
	valid bool
	val   T
}

func (c *cache[T]) get(compute func() T) T {
	if !c.valid {
		c.val = compute()
		c.valid = true
	}
	return c.val
}

func (c *cache[T]) clear() {
	var zero T
	c.valid, c.val = false, zero
}
