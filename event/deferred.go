// event/deferred.go
package event

import (
	"context"
	"sync"
	"sync/atomic"

	"callback-go/callback"
)

// Deferred queues values posted from interrupt context and delivers them to
// Target on a worker goroutine.
type Deferred[A any] struct {
	// Written by ISR; MUST NOT block the ISR:
	q       chan A
	target  Source[A]
	stopped chan struct{}
	once    sync.Once

	drops atomic.Uint32
}

// NewDeferred returns a Deferred with room for queue pending values.
// Non-positive sizes default to 64.
func NewDeferred[A any](queue int) *Deferred[A] {
	if queue <= 0 {
		queue = 64
	}
	return &Deferred[A]{
		q:       make(chan A, queue),
		stopped: make(chan struct{}),
	}
}

// Target is where queued values are delivered. Attach the task-context
// handler here.
func (d *Deferred[A]) Target() *Source[A] { return &d.target }

// Post enqueues a without blocking. It returns false and counts a drop when
// the queue is full.
func (d *Deferred[A]) Post(a A) bool {
	select {
	case d.q <- a:
		return true
	default:
		d.drops.Add(1)
		return false
	}
}

func (d *Deferred[A]) post(a A) { d.Post(a) }

// Sink returns a sink that posts to d, for attaching to an interrupt-side Source.
func (d *Deferred[A]) Sink() callback.Sink[A] {
	return callback.MemberSink(d, (*Deferred[A]).post)
}

// Start runs the delivery goroutine until ctx is done. Only the first call
// starts a worker; later calls are no-ops.
func (d *Deferred[A]) Start(ctx context.Context) {
	d.once.Do(func() { go d.run(ctx) })
}

func (d *Deferred[A]) run(ctx context.Context) {
	defer close(d.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-d.q:
			d.target.Fire(a)
		}
	}
}

// Done is closed once the delivery goroutine has exited.
func (d *Deferred[A]) Done() <-chan struct{} { return d.stopped }

func (d *Deferred[A]) Pending() int  { return len(d.q) }
func (d *Deferred[A]) Drops() uint32 { return d.drops.Load() }
