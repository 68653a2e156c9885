package engine

import (
	"context"
	"testing"

	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/stretchr/testify/require"
)

func TestValidateTermRejectsNilTerm(t *testing.T) {
	err := validateTerm(nil)
	require.Error(t, err)
	var termErr *TermError
	require.ErrorAs(t, err, &termErr)
}

func TestValidateTermAcceptsWellFormedTerm(t *testing.T) {
	sig := signature.New()
	a, m := sig.InternLifeline("a"), sig.InternMessage("m")
	require.NoError(t, validateTerm(emit(a, m)))
}

func TestAnalysisRunRejectsNilTerm(t *testing.T) {
	sig := signature.New()
	a := sig.InternLifeline("a")
	all := signature.NewLifelineSet(a)
	mt := mustTrace(t, all, mtrace.Component{Colocalization: all})

	_, err := AnalysisEngine{}.Run(context.Background(), nil, mt, optsBFS(), sink.NullSink{})
	var termErr *TermError
	require.ErrorAs(t, err, &termErr)
}

func TestExplorationRunRejectsNilTerm(t *testing.T) {
	_, err := ExplorationEngine{}.Run(context.Background(), nil, optsBFS(), sink.NullSink{})
	var termErr *TermError
	require.ErrorAs(t, err, &termErr)
}
