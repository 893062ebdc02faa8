package mathx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	require.Equal(t, 5, Clamp(5, 0, 10))
	require.Equal(t, 0, Clamp(-1, 0, 10))
	require.Equal(t, 10, Clamp(11, 10, 0))
	require.Equal(t, 2.5, Clamp(2.5, 1.0, 3.0))
}

func TestFullScale(t *testing.T) {
	require.Equal(t, uint16(4095), FullScale(12))
	require.Equal(t, uint16(65535), FullScale(16))
	require.Equal(t, uint16(65535), FullScale(40))
	require.Equal(t, uint16(1), FullScale(0))
}

func TestMapU16(t *testing.T) {
	require.Equal(t, uint16(0), MapU16(0, 0, 4095, 0, 3300))
	require.Equal(t, uint16(3300), MapU16(4095, 0, 4095, 0, 3300))
	require.Equal(t, uint16(1650), MapU16(2048, 0, 4095, 0, 3300))
	require.Equal(t, uint16(3300), MapU16(5000, 0, 4095, 0, 3300))
	require.Equal(t, uint16(7), MapU16(1, 5, 5, 7, 9))
}
