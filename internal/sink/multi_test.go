package sink

import (
	"testing"

	"github.com/hibou-project/hibou/internal/term"
	"github.com/stretchr/testify/require"
)

func TestMultiFansOutToEverySink(t *testing.T) {
	a, b := NewCountingSink(), NewCountingSink()
	s := Multi(a, b)

	require.NoError(t, s.OpenSession(map[string]string{"k": "v"}))
	require.NoError(t, s.EmitNode("n0", "root", true))
	require.NoError(t, s.EmitEdge("n0", "n1", term.Action{}, ""))
	require.NoError(t, s.CloseSession("Pass"))

	for _, cs := range []*CountingSink{a, b} {
		require.True(t, cs.Opened)
		require.True(t, cs.Closed)
		require.Equal(t, 1, cs.Nodes)
		require.Equal(t, 1, cs.Edges)
	}
}

func TestMultiOfOneReturnsSameSink(t *testing.T) {
	a := NewCountingSink()
	require.Same(t, Sink(a), Multi(a))
}
