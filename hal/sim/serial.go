// hal/sim/serial.go
package sim

import (
	"sync"
	"sync/atomic"

	"callback-go/callback"
	"callback-go/event"
	"callback-go/hal"
	"callback-go/x/ring"
)

var _ hal.Serial = (*Serial)(nil)

// Serial is a host UART. Inject models the line delivering bytes into the
// receive FIFO; each accepted byte raises the receive interrupt.
type Serial struct {
	id    string
	rx    *ring.Ring
	rxIRQ event.Line

	mu sync.Mutex
	tx []byte

	overruns atomic.Uint32
}

// NewSerial returns a UART with a receive FIFO of fifo bytes, rounded up to a
// power of two.
func NewSerial(id string, fifo int) *Serial {
	return &Serial{id: id, rx: ring.New(ring.RoundSize(fifo, maxFIFO))}
}

func (s *Serial) ID() string { return s.id }

// Inject pushes p into the receive FIFO one byte at a time, firing the receive
// interrupt after each. Bytes that do not fit are counted as overruns.
func (s *Serial) Inject(p []byte) int {
	for i := range p {
		if s.rx.TryWriteFrom(p[i:i+1]) == 0 {
			s.overruns.Add(uint32(len(p) - i))
			return i
		}
		s.rxIRQ.Fire()
	}
	return len(p)
}

func (s *Serial) Read(p []byte) (int, error) { return s.rx.TryReadInto(p), nil }

func (s *Serial) Buffered() int { return s.rx.Available() }

func (s *Serial) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.tx = append(s.tx, p...)
	s.mu.Unlock()
	return len(p), nil
}

// TX returns a copy of everything written so far.
func (s *Serial) TX() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.tx...)
}

func (s *Serial) AttachRx(h callback.Handler) callback.Handler { return s.rxIRQ.Attach(h) }

func (s *Serial) Overruns() uint32     { return s.overruns.Load() }
func (s *Serial) RxStats() event.Stats { return s.rxIRQ.Stats() }
