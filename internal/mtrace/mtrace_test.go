package mtrace

import (
	"testing"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/stretchr/testify/require"
)

func testSig() (*signature.Signature, signature.ID, signature.ID, signature.ID) {
	sig := signature.New()
	a := sig.InternLifeline("a")
	b := sig.InternLifeline("b")
	m := sig.InternMessage("m")
	return sig, a, b, m
}

func TestNewRejectsEmptyColocalization(t *testing.T) {
	_, a, b, _ := testSig()
	all := signature.NewLifelineSet(a, b)
	_, err := New(all, []Component{{Colocalization: signature.NewLifelineSet()}})
	require.Error(t, err)
	require.IsType(t, &SignatureError{}, err)
}

func TestNewRejectsOverlappingColocalizations(t *testing.T) {
	sig, a, b, _ := testSig()
	_ = sig
	all := signature.NewLifelineSet(a, b)
	comps := []Component{
		{Colocalization: signature.NewLifelineSet(a, b)},
		{Colocalization: signature.NewLifelineSet(a)},
	}
	_, err := New(all, comps)
	require.Error(t, err)
}

func TestNewRejectsActionOutsideColocalization(t *testing.T) {
	_, a, b, m := testSig()
	all := signature.NewLifelineSet(a, b)
	comps := []Component{
		{Colocalization: signature.NewLifelineSet(a), Trace: []term.Action{
			{Kind: term.Emission, Lifeline: b, Message: m},
		}},
	}
	_, err := New(all, comps)
	require.Error(t, err)
}

func TestHeadsAndPop(t *testing.T) {
	_, a, b, m := testSig()
	all := signature.NewLifelineSet(a, b)
	comps := []Component{
		{Colocalization: signature.NewLifelineSet(a), Trace: []term.Action{{Kind: term.Emission, Lifeline: a, Message: m}}},
		{Colocalization: signature.NewLifelineSet(b), Trace: []term.Action{{Kind: term.Reception, Lifeline: b, Message: m}}},
	}
	mt, err := New(all, comps)
	require.NoError(t, err)
	require.False(t, mt.Empty())

	heads := mt.Heads()
	require.ElementsMatch(t, []term.Action{
		{Kind: term.Emission, Lifeline: a, Message: m},
		{Kind: term.Reception, Lifeline: b, Message: m},
	}, heads)

	mt2 := mt.Pop(term.Action{Kind: term.Emission, Lifeline: a, Message: m})
	require.Len(t, mt2.Heads(), 1)

	mt3 := mt2.Pop(term.Action{Kind: term.Reception, Lifeline: b, Message: m})
	require.True(t, mt3.Empty())

	// original multi-trace is untouched (immutability).
	require.False(t, mt.Empty())
}

func TestPopPanicsOnNonHead(t *testing.T) {
	_, a, b, m := testSig()
	all := signature.NewLifelineSet(a, b)
	comps := []Component{
		{Colocalization: signature.NewLifelineSet(a), Trace: []term.Action{{Kind: term.Emission, Lifeline: a, Message: m}}},
	}
	mt, err := New(all, comps)
	require.NoError(t, err)

	require.Panics(t, func() {
		mt.Pop(term.Action{Kind: term.Reception, Lifeline: b, Message: m})
	})
}
