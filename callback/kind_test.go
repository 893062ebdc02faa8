// callback/kind_test.go
package callback

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type cell struct{ v int }

func (c *cell) add(n int) int { c.v += n; return c.v }

func TestFnvalMatchesFuncSize(t *testing.T) {
	size := unsafe.Sizeof(func() {})
	require.Equal(t, size, unsafe.Sizeof(fnval{}))
	require.Equal(t, size, unsafe.Sizeof(Handler{}.fn))
	require.Equal(t, size, unsafe.Sizeof(Sink[[32]byte]{}.fn))
	require.Equal(t, size, unsafe.Sizeof(Func2[int, string, error]{}.fn))

	// Every func type must share the stored representation.
	require.Equal(t, size, unsafe.Sizeof(func(unsafe.Pointer) {}))
	require.Equal(t, size, unsafe.Sizeof(func(int) int { return 0 }))
	require.Equal(t, size, unsafe.Sizeof((*cell).add))
}

func TestEraseRestoreKeepsWholeFuncValue(t *testing.T) {
	// A closure carries a context word under every compiler.
	k := 5
	closure := func(n int) int { return n + k }
	require.Equal(t, 8, restore[func(int) int](erase(closure))(3))

	c := &cell{v: 1}
	bound := restore[func(unsafe.Pointer, int) int](erase((*cell).add))
	require.Equal(t, 4, bound(unsafe.Pointer(c), 3))
	require.Equal(t, 4, c.v)

	require.Equal(t, erase(closure), erase(closure))
	require.Equal(t, fnval{}, erase[func()](nil))
}
