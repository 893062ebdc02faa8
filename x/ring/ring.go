// x/ring/ring.go
package ring

import "sync/atomic"

// Ring is a single-producer, single-consumer byte FIFO. The producer may run
// in interrupt context: TryWriteFrom never blocks or allocates.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)

	readable chan struct{} // empty -> non-empty edge
}

// New allocates a ring of size bytes. Size must be a power of two >= 2.
func New(size int) *Ring {
	if size < 2 || size&(size-1) != 0 {
		panic("ring: size must be power of two >= 2")
	}
	return &Ring{
		buf:      make([]byte, size),
		mask:     uint32(size - 1),
		readable: make(chan struct{}, 1),
	}
}

// RoundSize returns the smallest valid ring size >= n, capped at max.
func RoundSize(n, max int) int {
	size := 2
	for size < n && size < max {
		size <<= 1
	}
	return size
}

func (r *Ring) Cap() int { return len(r.buf) }

func (r *Ring) Available() int { return int(r.wr.Load() - r.rd.Load()) }

func (r *Ring) Space() int { return len(r.buf) - r.Available() }

// TryWriteFrom copies as much of src as fits and returns the count.
func (r *Ring) TryWriteFrom(src []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	before := wr - rd
	n := len(r.buf) - int(before)
	if n > len(src) {
		n = len(src)
	}
	if n <= 0 {
		return 0
	}
	i := wr & r.mask
	first := copy(r.buf[i:], src[:n])
	copy(r.buf, src[first:n])
	r.wr.Store(wr + uint32(n)) // release

	if before == 0 {
		select {
		case r.readable <- struct{}{}:
		default:
		}
	}
	return n
}

// TryReadInto moves up to len(dst) bytes out of the ring.
func (r *Ring) TryReadInto(dst []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	n := int(wr - rd)
	if n > len(dst) {
		n = len(dst)
	}
	if n <= 0 {
		return 0
	}
	i := rd & r.mask
	end := int(i) + n
	if end > len(r.buf) {
		end = len(r.buf)
	}
	first := copy(dst[:n], r.buf[i:end])
	copy(dst[first:n], r.buf)
	r.rd.Store(rd + uint32(n)) // release
	return n
}

// Readable receives a token when the ring goes from empty to non-empty.
// Tokens coalesce.
func (r *Ring) Readable() <-chan struct{} { return r.readable }
