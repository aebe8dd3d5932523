// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event provides the change notifications exchanged between
// data sources, data ranges, color mappers and their consumers.
//
// Notification is explicit and synchronous: an object owns a
// Dispatcher, consumers Subscribe to it, and the object calls Notify
// after it has finished updating its own state. Handlers therefore
// always observe the post-change state.
package event

import "fmt"

// Kind identifies what changed.
type Kind int

const (
	// DataChanged is raised by a data source after its data is
	// replaced.
	DataChanged Kind = iota

	// MaskChanged is raised by a data source after its mask is set
	// or removed.
	MaskChanged

	// MetadataChanged is raised by a data source after a metadata
	// key is written.
	MetadataChanged

	// RangeUpdated is raised by a data range after its resolved
	// bounds have been recomputed.
	RangeUpdated

	// ColormapUpdated is raised by a color mapper when its output
	// for a given input may have changed.
	ColormapUpdated
)

var kindNames = [...]string{
	DataChanged:     "data changed",
	MaskChanged:     "mask changed",
	MetadataChanged: "metadata changed",
	RangeUpdated:    "range updated",
	ColormapUpdated: "colormap updated",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a single notification.
type Event struct {
	Kind Kind

	// Sender is the object whose state changed.
	Sender interface{}
}

// Func handles an Event.
type Func func(Event)

// Token identifies a subscription. The zero Token is never issued.
type Token uint64

// Dispatcher is a registry of subscribers. The zero value is ready
// to use. A Dispatcher is not safe for concurrent mutation.
type Dispatcher struct {
	next     Token
	handlers []subscription

	depth   int
	pending []Event
}

type subscription struct {
	tok Token
	fn  Func
}

// Subscribe registers fn and returns a token that can be passed to
// Unsubscribe. Handlers are called in subscription order.
func (d *Dispatcher) Subscribe(fn Func) Token {
	if fn == nil {
		panic("event: nil handler")
	}
	d.next++
	d.handlers = append(d.handlers, subscription{d.next, fn})
	return d.next
}

// Unsubscribe removes the subscription identified by tok. It reports
// whether tok was registered.
func (d *Dispatcher) Unsubscribe(tok Token) bool {
	for i, s := range d.handlers {
		if s.tok == tok {
			// Copy so a Notify in progress keeps its snapshot.
			hs := make([]subscription, 0, len(d.handlers)-1)
			hs = append(hs, d.handlers[:i]...)
			d.handlers = append(hs, d.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}

// Notify delivers e to every handler. Inside a Batch, delivery is
// deferred and events of the same Kind and Sender are coalesced.
func (d *Dispatcher) Notify(e Event) {
	if d.depth > 0 {
		for _, p := range d.pending {
			if p.Kind == e.Kind && p.Sender == e.Sender {
				return
			}
		}
		d.pending = append(d.pending, e)
		return
	}
	for _, s := range d.handlers {
		s.fn(e)
	}
}

// Batch calls fn and delivers the events it raised once fn returns.
// Batches nest; delivery happens when the outermost batch ends.
func (d *Dispatcher) Batch(fn func()) {
	d.depth++
	defer func() {
		d.depth--
		if d.depth > 0 {
			return
		}
		pending := d.pending
		d.pending = nil
		for _, e := range pending {
			d.Notify(e)
		}
	}()
	fn()
}

// InBatch reports whether a Batch is in progress.
func (d *Dispatcher) InBatch() bool {
	return d.depth > 0
}
