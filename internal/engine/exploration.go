package engine

import (
	"context"

	"github.com/hibou-project/hibou/internal/frontier"
	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/hibou-project/hibou/internal/term"
)

// ExplorationResult is the outcome of ExplorationEngine.Run.
type ExplorationResult struct {
	Complete       bool
	NodesGenerated int
}

// ExplorationEngine enumerates the transition graph of a term up to
// depth/node/loop bounds under a search strategy (spec.md §4.5), with no
// multi-trace guidance: every frontier child of every generated node is
// expanded, subject to bounds.
type ExplorationEngine struct{}

// Run enumerates t's reachable terms. ctx is polled for cancellation
// between node expansions; sk receives every generated node and edge.
func (ExplorationEngine) Run(ctx context.Context, t *term.Term, opts model.Options, sk sink.Sink) (*ExplorationResult, error) {
	if err := validateTerm(t); err != nil {
		return nil, err
	}
	if err := sk.OpenSession(map[string]string{"engine": "exploration"}); err != nil {
		return nil, &SinkError{Err: err}
	}

	q := newQueue(opts.Strategy)
	counter := 0

	root := &searchNode{id: counter, term: t}
	counter++
	if err := sk.EmitNode(nodeID(root.id), root.term.String(), term.AvoidsEmpty(root.term)); err != nil {
		return nil, &SinkError{Err: err}
	}
	q.pushChildren([]*searchNode{root})

	var boundHit *BoundExceeded

	for {
		select {
		case <-ctx.Done():
			_ = sk.CloseSession("")
			return nil, ErrAborted
		default:
		}

		node, ok := q.pop()
		if !ok {
			break
		}

		if opts.MaxNodeNumber > 0 && counter >= opts.MaxNodeNumber {
			boundHit = &BoundExceeded{Kind: BoundMaxNodeNumber}
			break
		}

		var children []*searchNode
		for _, e := range frontier.Frontier(node.term) {
			newDepth := node.depth + 1
			if opts.MaxDepth > 0 && newDepth > opts.MaxDepth {
				boundHit = &BoundExceeded{Kind: BoundMaxDepth}
				continue
			}
			newLoopUnfolds := node.loopUnfolds
			if e.FromLoop {
				newLoopUnfolds++
			}
			if opts.MaxLoopDepth > 0 && newLoopUnfolds > opts.MaxLoopDepth {
				boundHit = &BoundExceeded{Kind: BoundMaxLoopDepth}
				continue
			}
			if opts.MaxNodeNumber > 0 && counter >= opts.MaxNodeNumber {
				boundHit = &BoundExceeded{Kind: BoundMaxNodeNumber}
				break
			}

			child := &searchNode{
				id: counter, term: e.Residual,
				depth: newDepth, loopUnfolds: newLoopUnfolds,
				parentID: node.id, hasParent: true, incomingAction: e.Action,
			}
			counter++

			if err := sk.EmitNode(nodeID(child.id), child.term.String(), term.AvoidsEmpty(child.term)); err != nil {
				return nil, &SinkError{Err: err}
			}
			if err := sk.EmitEdge(nodeID(node.id), nodeID(child.id), e.Action, ""); err != nil {
				return nil, &SinkError{Err: err}
			}
			children = append(children, child)
		}
		q.pushChildren(children)
	}

	complete := boundHit == nil
	verdict := "complete"
	if !complete {
		verdict = "partial"
	}
	if err := sk.CloseSession(verdict); err != nil {
		return nil, &SinkError{Err: err}
	}

	result := &ExplorationResult{Complete: complete, NodesGenerated: counter}
	if boundHit != nil {
		return result, boundHit
	}
	return result, nil
}
