package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"callback-go/callback"
	"callback-go/event"
	"callback-go/hal"
)

type presses struct{ n int }

func (p *presses) onEdge() { p.n++ }

func TestPinFiresOnSelectedEdge(t *testing.T) {
	pin := NewPin(15)
	require.NoError(t, pin.ConfigureInput(hal.PullUp))
	require.True(t, pin.Get())

	p := &presses{}
	require.NoError(t, pin.SetIRQ(hal.EdgeFalling, callback.MemberHandler(p, (*presses).onEdge)))
	require.Equal(t, hal.EdgeFalling, pin.Edge())

	require.True(t, pin.Drive(false))  // press
	require.False(t, pin.Drive(false)) // no transition
	require.False(t, pin.Drive(true))  // release, not selected
	require.True(t, pin.Drive(false))
	require.Equal(t, 2, p.n)
	require.Equal(t, event.Stats{Fired: 2}, pin.IRQStats())
}

func TestPinRebindAndClear(t *testing.T) {
	pin := NewPin(3)
	a, b := &presses{}, &presses{}
	require.NoError(t, pin.SetIRQ(hal.EdgeBoth, callback.MemberHandler(a, (*presses).onEdge)))
	pin.Drive(true)
	require.NoError(t, pin.SetIRQ(hal.EdgeBoth, callback.MemberHandler(b, (*presses).onEdge)))
	pin.Drive(false)
	pin.Drive(true)
	require.Equal(t, 1, a.n)
	require.Equal(t, 2, b.n)

	require.NoError(t, pin.ClearIRQ())
	require.Equal(t, hal.EdgeNone, pin.Edge())
	require.False(t, pin.Drive(false))
	require.Equal(t, 2, b.n)
}

func TestPinEmptyHandlerClears(t *testing.T) {
	pin := NewPin(4)
	p := &presses{}
	require.NoError(t, pin.SetIRQ(hal.EdgeRising, callback.MemberHandler(p, (*presses).onEdge)))
	require.NoError(t, pin.SetIRQ(hal.EdgeRising, callback.EmptyHandler()))
	require.False(t, pin.Drive(true))
	require.Zero(t, p.n)
}
