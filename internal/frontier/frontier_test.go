package frontier

import (
	"testing"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/stretchr/testify/require"
)

func testSig() (*signature.Signature, signature.ID, signature.ID, signature.ID, signature.ID) {
	sig := signature.New()
	a := sig.InternLifeline("a")
	b := sig.InternLifeline("b")
	m1 := sig.InternMessage("m1")
	m2 := sig.InternMessage("m2")
	return sig, a, b, m1, m2
}

func act(kind term.ActionKind, lifeline, message signature.ID) term.Action {
	return term.Action{Kind: kind, Lifeline: lifeline, Message: message}
}

func actions(elems []Element) []term.Action {
	out := make([]term.Action, len(elems))
	for i, e := range elems {
		out[i] = e.Action
	}
	return out
}

func TestFrontierEmpty(t *testing.T) {
	require.Empty(t, Frontier(term.Empty))
}

func TestFrontierAction(t *testing.T) {
	_, a, _, m1, _ := testSig()
	emit := term.NewAction(act(term.Emission, a, m1))
	f := Frontier(emit)
	require.Len(t, f, 1)
	require.Equal(t, emit.Action(), f[0].Action)
	require.True(t, f[0].Residual.Equal(term.Empty))
}

func TestFrontierBroadcastFiresSenderThenLeavesReceptions(t *testing.T) {
	_, a, b, m1, _ := testSig()
	bc := term.NewBroadcast(a, m1, []signature.ID{b})
	f := Frontier(bc)
	require.Len(t, f, 1)
	require.Equal(t, act(term.Emission, a, m1), f[0].Action)
	residualFrontier := Frontier(f[0].Residual)
	require.Len(t, residualFrontier, 1)
	require.Equal(t, act(term.Reception, b, m1), residualFrontier[0].Action)
}

func TestFrontierStrictBlocksRightUntilLeftAvoidsEmpty(t *testing.T) {
	_, a, b, m1, _ := testSig()
	emit := term.NewAction(act(term.Emission, a, m1))
	recv := term.NewAction(act(term.Reception, b, m1))
	strictTerm := term.NewScheduled(term.OpStrict, emit, recv)

	f := Frontier(strictTerm)
	require.Len(t, f, 1)
	require.Equal(t, act(term.Emission, a, m1), f[0].Action)

	f2 := Frontier(f[0].Residual)
	require.Len(t, f2, 1)
	require.Equal(t, act(term.Reception, b, m1), f2[0].Action)
}

func TestFrontierSeqAllowsReorderAcrossLifelines(t *testing.T) {
	// S3: seq(a!m1, b!m2) with b!m2 available before a!m1.
	_, a, b, m1, m2 := testSig()
	emitA := term.NewAction(act(term.Emission, a, m1))
	emitB := term.NewAction(act(term.Emission, b, m2))
	seqTerm := term.NewScheduled(term.OpSeq, emitA, emitB)

	f := Frontier(seqTerm)
	got := actions(f)
	require.Contains(t, got, act(term.Emission, a, m1))
	require.Contains(t, got, act(term.Emission, b, m2))
}

func TestFrontierLoopUnfoldsOnceRetainingLoop(t *testing.T) {
	_, a, _, m1, _ := testSig()
	emit := term.NewAction(act(term.Emission, a, m1))
	loop := term.NewLoop(term.OpSeq, emit)

	f := Frontier(loop)
	require.Len(t, f, 1)
	require.Equal(t, act(term.Emission, a, m1), f[0].Action)

	// residual is Scheduled(seq, Empty, loop) — firing again must still be possible.
	f2 := Frontier(f[0].Residual)
	require.Len(t, f2, 1)
	require.Equal(t, act(term.Emission, a, m1), f2[0].Action)
}

func TestFrontierAltUnionsBothBranches(t *testing.T) {
	_, a, b, m1, _ := testSig()
	emit := term.NewAction(act(term.Emission, a, m1))
	recv := term.NewAction(act(term.Reception, b, m1))
	altTerm := term.NewAlt(emit, recv)

	got := actions(Frontier(altTerm))
	require.ElementsMatch(t, []term.Action{act(term.Emission, a, m1), act(term.Reception, b, m1)}, got)
}

func TestFrontierCombineTieBreaksReceptionBeforeEmission(t *testing.T) {
	_, a, _, m1, _ := testSig()
	emit := Element{Action: act(term.Emission, a, m1), Residual: term.Empty}
	recv := Element{Action: act(term.Reception, a, m1), Residual: term.Empty}

	out := combine([]Element{emit}, []Element{recv})
	require.Equal(t, term.Reception, out[0].Action.Kind)
	require.Equal(t, term.Emission, out[1].Action.Kind)
}
