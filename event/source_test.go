package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"callback-go/callback"
)

type rxLog struct{ data []byte }

func (r *rxLog) push(b byte) { r.data = append(r.data, b) }

func TestSourceDeliversPayload(t *testing.T) {
	var s Source[byte]
	require.False(t, s.Fire('a'))

	log := &rxLog{}
	s.Attach(callback.MemberSink(log, (*rxLog).push))
	for _, b := range []byte("hello") {
		require.True(t, s.Fire(b))
	}
	require.Equal(t, "hello", string(log.data))
	require.Equal(t, Stats{Fired: 5, Spurious: 1}, s.Stats())

	s.Disable()
	require.False(t, s.Fire('!'))
	s.Enable()

	prev := s.Detach()
	require.Equal(t, callback.KindBoundMember, prev.Kind())
	require.True(t, s.Sink().IsNil())
	require.False(t, s.Fire('!'))
	require.Equal(t, "hello", string(log.data))
	require.Equal(t, Stats{Fired: 5, Spurious: 2, Masked: 1}, s.Stats())
}
