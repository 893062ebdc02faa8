package hal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeSelects(t *testing.T) {
	cases := []struct {
		e          Edge
		prev, next bool
		want       bool
	}{
		{EdgeRising, false, true, true},
		{EdgeRising, true, false, false},
		{EdgeFalling, true, false, true},
		{EdgeFalling, false, true, false},
		{EdgeBoth, false, true, true},
		{EdgeBoth, true, false, true},
		{EdgeBoth, true, true, false},
		{EdgeNone, false, true, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.e.Selects(c.prev, c.next), "%s %v->%v", c.e, c.prev, c.next)
	}
}

func TestEdgeNames(t *testing.T) {
	for _, e := range []Edge{EdgeNone, EdgeRising, EdgeFalling, EdgeBoth} {
		require.Equal(t, e, ParseEdge(e.String()))
	}
	require.Equal(t, EdgeNone, ParseEdge("sideways"))
}
