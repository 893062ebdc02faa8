// event/source.go
package event

import (
	"sync/atomic"

	"callback-go/callback"
)

// Source is an attach point for a callback.Sink receiving values of type A.
// The zero value is an enabled source with nothing attached.
type Source[A any] struct {
	counters
	s atomic.Pointer[callback.Sink[A]]
}

// Attach publishes s and returns the sink it replaced. Attaching an empty
// sink detaches.
func (src *Source[A]) Attach(s callback.Sink[A]) callback.Sink[A] {
	var next *callback.Sink[A]
	if s.Valid() {
		next = &s
	}
	if prev := src.s.Swap(next); prev != nil {
		return *prev
	}
	return callback.Sink[A]{}
}

func (src *Source[A]) Detach() callback.Sink[A] { return src.Attach(callback.Sink[A]{}) }

func (src *Source[A]) Sink() callback.Sink[A] {
	if s := src.s.Load(); s != nil {
		return *s
	}
	return callback.Sink[A]{}
}

// Fire delivers a to the attached sink and reports whether it ran.
// Safe to call from interrupt context.
func (src *Source[A]) Fire(a A) bool {
	if src.disabled.Load() {
		src.masked.Add(1)
		return false
	}
	s := src.s.Load()
	if s == nil {
		src.spurious.Add(1)
		return false
	}
	s.Call(a)
	src.fired.Add(1)
	return true
}
