package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderAcrossWrap(t *testing.T) {
	r := New(16)
	const N = 1000
	src := make([]byte, N)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 0, N)
	p := src
	for len(dst) < N {
		// Uneven producer/consumer steps force frequent wraps.
		step := 7
		if step > len(p) {
			step = len(p)
		}
		n := r.TryWriteFrom(p[:step])
		p = p[n:]
		var tmp [5]byte
		m := r.TryReadInto(tmp[:])
		dst = append(dst, tmp[:m]...)
	}
	require.Equal(t, src, dst)
}

func TestFullAndEmpty(t *testing.T) {
	r := New(4)
	require.Equal(t, 4, r.Cap())
	require.Equal(t, 0, r.TryReadInto(make([]byte, 2)))
	require.Equal(t, 4, r.TryWriteFrom([]byte("abcdef")))
	require.Equal(t, 0, r.Space())
	require.Equal(t, 0, r.TryWriteFrom([]byte("g")))

	buf := make([]byte, 8)
	n := r.TryReadInto(buf)
	require.Equal(t, "abcd", string(buf[:n]))
	require.Equal(t, 0, r.Available())
}

func TestReadableEdge(t *testing.T) {
	r := New(8)
	select {
	case <-r.Readable():
		t.Fatal("unexpected Readable on empty ring")
	default:
	}
	r.TryWriteFrom([]byte{1})
	r.TryWriteFrom([]byte{2}) // coalesced
	select {
	case <-r.Readable():
	default:
		t.Fatal("expected Readable")
	}
	select {
	case <-r.Readable():
		t.Fatal("unexpected extra Readable")
	default:
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	require.Panics(t, func() { New(3) })
	require.Panics(t, func() { New(1) })
}

func TestRoundSize(t *testing.T) {
	require.Equal(t, 2, RoundSize(0, 64))
	require.Equal(t, 64, RoundSize(64, 4096))
	require.Equal(t, 128, RoundSize(65, 4096))
	require.Equal(t, 4096, RoundSize(1<<20, 4096))
}
