package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"callback-go/callback"
	"callback-go/errcode"
	"callback-go/hal/sim"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := newApp(sim.DefaultConfig(), &out)
	require.NoError(t, err)
	return a, &out
}

func TestPinVariants(t *testing.T) {
	a, out := newTestApp(t)

	k, err := a.attach("button", "plain")
	require.NoError(t, err)
	require.Equal(t, callback.KindPlain, k)
	fired, err := a.drive("button", "0")
	require.NoError(t, err)
	require.True(t, fired)
	require.Equal(t, "button: edge\n", out.String())

	k, err = a.attach("button", "state")
	require.NoError(t, err)
	require.Equal(t, callback.KindBoundFree, k)
	_, _ = a.drive("button", "1")
	_, _ = a.drive("button", "0")
	require.Equal(t, 2, a.edges["button"].n)
	require.Equal(t, "button: edge\n", out.String(), "old handler must not run after rebind")

	out.Reset()
	k, err = a.attach("button", "member")
	require.NoError(t, err)
	require.Equal(t, callback.KindBoundMember, k)
	_, _ = a.drive("button", "1")
	require.Equal(t, "button: edge, level=true\n", out.String())

	require.NoError(t, a.detach("button"))
	fired, _ = a.drive("button", "0")
	require.False(t, fired)
}

func TestSerialVariants(t *testing.T) {
	a, out := newTestApp(t)

	_, err := a.attach("uart0", "state")
	require.NoError(t, err)
	_, err = a.rx("uart0", "ping\n")
	require.NoError(t, err)
	tx, err := a.tx("uart0")
	require.NoError(t, err)
	require.Equal(t, "ping\n", tx)

	_, err = a.attach("uart0", "member")
	require.NoError(t, err)
	_, _ = a.rx("uart0", "AT\r\nOK\n")
	require.Equal(t, "uart0: line \"AT\"\nuart0: line \"OK\"\n", out.String())

	out.Reset()
	_, err = a.attach("uart0", "plain")
	require.NoError(t, err)
	_, _ = a.rx("uart0", "z")
	require.Equal(t, "uart0: rx \"z\"\n", out.String())
}

func TestADCVariants(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	_, err := a.attach("adc0", "state")
	require.NoError(t, err)
	for _, raw := range []uint16{0, 4095} {
		r := raw
		require.NoError(t, a.sample(ctx, "adc0", &r))
	}
	require.Equal(t, uint32(1650), a.samples["adc0"].mean())

	_, err = a.attach("adc0", "member")
	require.NoError(t, err)
	require.NoError(t, a.sample(ctx, "adc0", nil))
	require.Equal(t, "adc0: raw=4095 3300mV\n", out.String())

	require.NoError(t, a.detach("adc0"))
	require.NoError(t, a.sample(ctx, "adc0", nil))
	require.Contains(t, a.stats(), "adc0     fired=3 spurious=1 masked=0")
}

func TestAttachErrors(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := a.attach("nope", "plain")
	require.Equal(t, errcode.UnknownDevice, errcode.Of(err))
	_, err = a.attach("button", "lambda")
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
	_, err = a.drive("button", "maybe")
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
	require.Equal(t, errcode.UnknownDevice, errcode.Of(a.detach("nope")))
}

func TestCallEmptyIsReported(t *testing.T) {
	a, _ := newTestApp(t)
	err := a.callEmpty()
	require.Equal(t, errcode.Unbound, errcode.Of(err))
}

func TestDevicesAndStats(t *testing.T) {
	a, _ := newTestApp(t)
	require.Equal(t, []string{"adc0 (adc)", "button (pin GP15)", "uart0 (serial)"}, a.devices())
	_, _ = a.rx("uart0", "xy")
	s := a.stats()
	require.True(t, strings.Contains(s, "uart0    fired=0 spurious=2 masked=0 overruns=0 buffered=2"), s)
}
