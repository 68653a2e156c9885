package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/stretchr/testify/require"
)

// TestExplorationS7 — bounded exploration of an infinite loop terminates
// Partial, within the node bound, respecting the loop-depth bound.
func TestExplorationS7(t *testing.T) {
	sig := signature.New()
	a, m := sig.InternLifeline("a"), sig.InternMessage("m")
	mdl := term.NewLoop(term.OpPar, emit(a, m))

	opts := model.DefaultOptions()
	opts.MaxLoopDepth = 2
	opts.MaxNodeNumber = 50

	result, err := ExplorationEngine{}.Run(context.Background(), mdl, opts, sink.NullSink{})
	require.Error(t, err)
	var boundErr *BoundExceeded
	require.True(t, errors.As(err, &boundErr))
	require.False(t, result.Complete)
	require.LessOrEqual(t, result.NodesGenerated, 50)
}

// TestExplorationMonotonicInBounds — property 5: raising a bound cannot
// remove nodes previously generated.
func TestExplorationMonotonicInBounds(t *testing.T) {
	sig := signature.New()
	a, m := sig.InternLifeline("a"), sig.InternMessage("m")
	mdl := term.NewLoop(term.OpSeq, emit(a, m))

	small := model.DefaultOptions()
	small.MaxNodeNumber = 5
	big := model.DefaultOptions()
	big.MaxNodeNumber = 10

	rSmall, _ := ExplorationEngine{}.Run(context.Background(), mdl, small, sink.NullSink{})
	rBig, _ := ExplorationEngine{}.Run(context.Background(), mdl, big, sink.NullSink{})

	require.LessOrEqual(t, rSmall.NodesGenerated, rBig.NodesGenerated)
}

func TestExplorationCompleteWithoutBounds(t *testing.T) {
	sig := signature.New()
	a, b, m := sig.InternLifeline("a"), sig.InternLifeline("b"), sig.InternMessage("m")
	mdl := term.NewScheduled(term.OpStrict, emit(a, m), recv(b, m))

	result, err := ExplorationEngine{}.Run(context.Background(), mdl, model.DefaultOptions(), sink.NullSink{})
	require.NoError(t, err)
	require.True(t, result.Complete)
	require.Equal(t, 3, result.NodesGenerated) // root, after a!m, after b?m
}

func TestExplorationAborted(t *testing.T) {
	sig := signature.New()
	a, m := sig.InternLifeline("a"), sig.InternMessage("m")
	mdl := term.NewLoop(term.OpSeq, emit(a, m))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExplorationEngine{}.Run(ctx, mdl, model.DefaultOptions(), sink.NullSink{})
	require.ErrorIs(t, err, ErrAborted)
}
