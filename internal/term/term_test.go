package term

import (
	"testing"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/stretchr/testify/require"
)

func testSig() (*signature.Signature, signature.ID, signature.ID, signature.ID) {
	sig := signature.New()
	a := sig.InternLifeline("a")
	b := sig.InternLifeline("b")
	m := sig.InternMessage("m")
	return sig, a, b, m
}

func TestEmptyIsCanonical(t *testing.T) {
	require.Equal(t, KindEmpty, Empty.Kind())
	require.True(t, Empty.Equal(Empty))
}

func TestActionRender(t *testing.T) {
	sig, a, _, m := testSig()
	act := Action{Kind: Emission, Lifeline: a, Message: m}
	term := NewAction(act)
	require.Equal(t, "a!m", term.Render(sig))
}

func TestBroadcastEmptyReceiversNormalizesToAction(t *testing.T) {
	_, a, _, m := testSig()
	bc := NewBroadcast(a, m, nil)
	require.Equal(t, KindAction, bc.Kind())
	require.Equal(t, Emission, bc.Action().Kind)
}

func TestStructuralEqualityIgnoresSharing(t *testing.T) {
	_, a, b, m := testSig()
	left1 := NewAction(Action{Kind: Emission, Lifeline: a, Message: m})
	left2 := NewAction(Action{Kind: Emission, Lifeline: a, Message: m})
	right := NewAction(Action{Kind: Reception, Lifeline: b, Message: m})

	t1 := NewScheduled(OpSeq, left1, right)
	t2 := NewScheduled(OpSeq, left2, right)

	require.NotSame(t, left1, left2)
	require.True(t, t1.Equal(t2))
	require.Equal(t, t1.Digest(), t2.Digest())
}

func TestDigestDistinguishesShape(t *testing.T) {
	_, a, b, m := testSig()
	emit := NewAction(Action{Kind: Emission, Lifeline: a, Message: m})
	recv := NewAction(Action{Kind: Reception, Lifeline: b, Message: m})

	strictTerm := NewScheduled(OpStrict, emit, recv)
	seqTerm := NewScheduled(OpSeq, emit, recv)
	altTerm := NewAlt(emit, recv)

	require.NotEqual(t, strictTerm.Digest(), seqTerm.Digest())
	require.NotEqual(t, strictTerm.Digest(), altTerm.Digest())
	require.False(t, strictTerm.Equal(seqTerm))
}

func TestLoopBody(t *testing.T) {
	_, a, _, m := testSig()
	emit := NewAction(Action{Kind: Emission, Lifeline: a, Message: m})
	loop := NewLoop(OpSeq, emit)
	require.Equal(t, OpSeq, loop.Op())
	require.True(t, loop.Body().Equal(emit))
}
