// event/line.go
package event

import (
	"sync/atomic"

	"callback-go/callback"
)

// Stats is a snapshot of an attach point's counters.
type Stats struct {
	Fired    uint32 // handler invoked
	Spurious uint32 // fired with nothing attached
	Masked   uint32 // fired while disabled
}

type counters struct {
	disabled atomic.Bool
	fired    atomic.Uint32
	spurious atomic.Uint32
	masked   atomic.Uint32
}

func (c *counters) Disable()      { c.disabled.Store(true) }
func (c *counters) Enable()       { c.disabled.Store(false) }
func (c *counters) Enabled() bool { return !c.disabled.Load() }

func (c *counters) Stats() Stats {
	return Stats{
		Fired:    c.fired.Load(),
		Spurious: c.spurious.Load(),
		Masked:   c.masked.Load(),
	}
}

// Line is an attach point for a callback.Handler. The zero value is an
// enabled line with nothing attached.
type Line struct {
	counters
	h atomic.Pointer[callback.Handler]
}

// Attach publishes h and returns the handler it replaced. Attaching an empty
// handler detaches.
func (l *Line) Attach(h callback.Handler) callback.Handler {
	var next *callback.Handler
	if h.Valid() {
		next = &h
	}
	if prev := l.h.Swap(next); prev != nil {
		return *prev
	}
	return callback.Handler{}
}

// Detach removes the attached handler and returns it.
func (l *Line) Detach() callback.Handler { return l.Attach(callback.Handler{}) }

// Handler returns the currently attached handler.
func (l *Line) Handler() callback.Handler {
	if h := l.h.Load(); h != nil {
		return *h
	}
	return callback.Handler{}
}

// Fire invokes the attached handler and reports whether it ran.
// Safe to call from interrupt context.
func (l *Line) Fire() bool {
	if l.disabled.Load() {
		l.masked.Add(1)
		return false
	}
	h := l.h.Load()
	if h == nil {
		l.spurious.Add(1)
		return false
	}
	h.Call()
	l.fired.Add(1)
	return true
}
