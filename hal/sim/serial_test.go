package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"callback-go/callback"
)

// echo is the usual receive-interrupt pattern: a free function with one
// state pointer that drains the FIFO.
type echo struct {
	port *Serial
	buf  [8]byte
	seen int
}

func echoRx(e *echo) {
	n, _ := e.port.Read(e.buf[:])
	e.seen += n
	_, _ = e.port.Write(e.buf[:n])
}

func TestSerialRxInterruptEcho(t *testing.T) {
	s := NewSerial("uart0", 16)
	e := &echo{port: s}
	prev := s.AttachRx(callback.BindHandler(echoRx, e))
	require.True(t, prev.IsNil())

	require.Equal(t, 5, s.Inject([]byte("hello")))
	require.Equal(t, "hello", string(s.TX()))
	require.Equal(t, 5, e.seen)
	require.Zero(t, s.Buffered())
	require.Equal(t, uint32(5), s.RxStats().Fired)
}

func TestSerialOverrunWithoutHandler(t *testing.T) {
	s := NewSerial("uart1", 4)
	require.Equal(t, 4, s.Inject([]byte("abcdef")))
	require.Equal(t, uint32(2), s.Overruns())
	require.Equal(t, 4, s.Buffered())
	require.Equal(t, uint32(4), s.RxStats().Spurious)

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "abcd", string(buf[:n]))
}

func TestSerialFIFORounding(t *testing.T) {
	require.Equal(t, 64, NewSerial("a", 50).rx.Cap())
	require.Equal(t, maxFIFO, NewSerial("b", 1<<20).rx.Cap())
}
