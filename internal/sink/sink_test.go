package sink

import (
	"testing"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNullSinkDiscards(t *testing.T) {
	var s Sink = NullSink{}
	require.NoError(t, s.OpenSession(nil))
	require.NoError(t, s.EmitNode("n0", "Empty", true))
	require.NoError(t, s.EmitEdge("n0", "n1", term.Action{}, ""))
	require.NoError(t, s.CloseSession("Pass"))
}

func TestCountingSinkAccumulates(t *testing.T) {
	s := NewCountingSink()
	require.NoError(t, s.OpenSession(map[string]string{"model": "S1"}))
	require.NoError(t, s.EmitNode("n0", "root", false))
	require.NoError(t, s.EmitNode("n1", "leaf", true))
	require.NoError(t, s.EmitEdge("n0", "n1", term.Action{Kind: term.Emission}, "Cov"))
	require.NoError(t, s.CloseSession("Pass"))

	require.True(t, s.Opened)
	require.True(t, s.Closed)
	require.Equal(t, "Pass", s.Verdict)
	require.Equal(t, 2, s.Nodes)
	require.Equal(t, 1, s.Edges)
	require.Equal(t, []string{"n1"}, s.AcceptingIDs)
}

func TestMetricsSinkRegistersAndIncrements(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewMetricsSink(reg)

	require.NoError(t, s.OpenSession(nil))
	require.NoError(t, s.EmitNode("n0", "root", false))
	require.NoError(t, s.EmitEdge("n0", "n1", term.Action{}, ""))
	require.NoError(t, s.CloseSession("Fail"))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestGraphicSinkRendersDOT(t *testing.T) {
	sig := signature.New()
	a := sig.InternLifeline("a")
	m := sig.InternMessage("m")

	dir := t.TempDir()
	g := NewGraphicSink(sig, dir+"/run")
	require.NoError(t, g.OpenSession(nil))
	require.NoError(t, g.EmitNode("n0", "root", false))
	require.NoError(t, g.EmitNode("n1", "leaf", true))
	require.NoError(t, g.EmitEdge("n0", "n1", term.Action{Kind: term.Emission, Lifeline: a, Message: m}, ""))
	require.NoError(t, g.CloseSession("Pass"))

	dot := g.DOT()
	require.Contains(t, dot, "digraph hibou")
	require.Contains(t, dot, "doublecircle")
	require.Contains(t, dot, "a!m")
}
