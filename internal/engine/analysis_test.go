package engine

import (
	"context"
	"testing"

	"github.com/hibou-project/hibou/internal/engine/strategy"
	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/stretchr/testify/require"
)

func emit(l, m signature.ID) *term.Term {
	return term.NewAction(term.Action{Kind: term.Emission, Lifeline: l, Message: m})
}

func recv(l, m signature.ID) *term.Term {
	return term.NewAction(term.Action{Kind: term.Reception, Lifeline: l, Message: m})
}

func mustTrace(t *testing.T, all signature.LifelineSet, comps ...mtrace.Component) *mtrace.MultiTrace {
	t.Helper()
	mt, err := mtrace.New(all, comps)
	require.NoError(t, err)
	return mt
}

// TestAnalysisS1 — Pass, strict sequencing.
func TestAnalysisS1(t *testing.T) {
	sig := signature.New()
	a, b, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m")
	mdl := term.NewScheduled(term.OpStrict, emit(a, m), recv(b, m))

	all := signature.NewLifelineSet(a, b)
	mt := mustTrace(t, all, mtrace.Component{
		Colocalization: all,
		Trace:          []term.Action{{Kind: term.Emission, Lifeline: a, Message: m}, {Kind: term.Reception, Lifeline: b, Message: m}},
	})

	result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
	require.NoError(t, err)
	require.Equal(t, Pass, result.Verdict)
}

// TestAnalysisS2 — Fail, strict sequencing observed out of order.
func TestAnalysisS2(t *testing.T) {
	sig := signature.New()
	a, b, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m")
	mdl := term.NewScheduled(term.OpStrict, emit(a, m), emit(b, m))

	all := signature.NewLifelineSet(a, b)
	mt := mustTrace(t, all, mtrace.Component{
		Colocalization: all,
		Trace:          []term.Action{{Kind: term.Emission, Lifeline: b, Message: m}, {Kind: term.Emission, Lifeline: a, Message: m}},
	})

	result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
	require.NoError(t, err)
	require.Equal(t, Fail, result.Verdict)
}

// TestAnalysisS3 — Pass, weak sequencing allows reordering across lifelines.
func TestAnalysisS3(t *testing.T) {
	sig := signature.New()
	a, b, m1, m2 := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m1"), sig.InternMessage("m2")
	mdl := term.NewScheduled(term.OpSeq, emit(a, m1), emit(b, m2))

	all := signature.NewLifelineSet(a, b)
	mt := mustTrace(t, all, mtrace.Component{
		Colocalization: all,
		Trace:          []term.Action{{Kind: term.Emission, Lifeline: b, Message: m2}, {Kind: term.Emission, Lifeline: a, Message: m1}},
	})

	result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
	require.NoError(t, err)
	require.Equal(t, Pass, result.Verdict)
}

// TestAnalysisS4 — Pass, broadcast, both reception orders.
func TestAnalysisS4(t *testing.T) {
	sig := signature.New()
	a, b, c, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternLifeline("c"), sig.InternMessage("m")
	mdl := term.NewBroadcast(a, m, []signature.ID{b, c})
	all := signature.NewLifelineSet(a, b, c)

	for _, order := range [][2]signature.ID{{b, c}, {c, b}} {
		mt := mustTrace(t, all, mtrace.Component{
			Colocalization: all,
			Trace: []term.Action{
				{Kind: term.Emission, Lifeline: a, Message: m},
				{Kind: term.Reception, Lifeline: order[0], Message: m},
				{Kind: term.Reception, Lifeline: order[1], Message: m},
			},
		})
		result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
		require.NoError(t, err)
		require.Equal(t, Pass, result.Verdict)
	}
}

// TestAnalysisS5 — Pass, loop_seq zero times.
func TestAnalysisS5(t *testing.T) {
	sig := signature.New()
	a, m := sig.InternLifeline("a"), sig.InternMessage("m")
	mdl := term.NewLoop(term.OpSeq, emit(a, m))
	all := signature.NewLifelineSet(a)
	mt := mustTrace(t, all, mtrace.Component{Colocalization: all})

	result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
	require.NoError(t, err)
	require.Equal(t, Pass, result.Verdict)
}

// TestAnalysisS6 — Fail, loop body not matched (lifeline mismatch after
// the first unfold).
func TestAnalysisS6(t *testing.T) {
	sig := signature.New()
	a, b, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m")
	mdl := term.NewLoop(term.OpStrict, term.NewScheduled(term.OpStrict, emit(a, m), recv(b, m)))
	all := signature.NewLifelineSet(a, b)
	mt := mustTrace(t, all, mtrace.Component{
		Colocalization: all,
		Trace:          []term.Action{{Kind: term.Emission, Lifeline: a, Message: m}, {Kind: term.Emission, Lifeline: a, Message: m}},
	})

	result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, optsBFS(), sink.NullSink{})
	require.NoError(t, err)
	require.Equal(t, Fail, result.Verdict)
}

// TestAnalysisStrategyInvariant — property 4: for unbounded runs the
// verdict does not depend on strategy.
func TestAnalysisStrategyInvariant(t *testing.T) {
	sig := signature.New()
	a, b, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m")
	mdl := term.NewScheduled(term.OpStrict, emit(a, m), recv(b, m))
	all := signature.NewLifelineSet(a, b)

	for _, strat := range []model.Options{optsBFS(), optsDFS(), optsHCS()} {
		mt := mustTrace(t, all, mtrace.Component{
			Colocalization: all,
			Trace:          []term.Action{{Kind: term.Emission, Lifeline: a, Message: m}, {Kind: term.Reception, Lifeline: b, Message: m}},
		})
		result, err := AnalysisEngine{}.Run(context.Background(), mdl, mt, strat, sink.NullSink{})
		require.NoError(t, err)
		require.Equal(t, Pass, result.Verdict)
	}
}

func optsBFS() model.Options { return model.DefaultOptions() }

func optsDFS() model.Options {
	o := model.DefaultOptions()
	o.Strategy = strategy.DFS
	return o
}

func optsHCS() model.Options {
	o := model.DefaultOptions()
	o.Strategy = strategy.HCS
	return o
}
