// Package engine implements the analysis and exploration searches of
// spec.md §4.4–4.5 over the Frontier/Prune transition relation.
package engine

import (
	"context"
	"fmt"

	"github.com/hibou-project/hibou/internal/frontier"
	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/hibou-project/hibou/internal/term"
)

// Verdict is the global outcome of an analysis run (spec.md §4.4).
type Verdict string

const (
	Pass Verdict = "Pass"
	Fail Verdict = "Fail"
)

// AnalysisResult is the outcome of AnalysisEngine.Run.
type AnalysisResult struct {
	Verdict       Verdict
	Inconclusive  bool // set alongside a BoundExceeded error
	NodesExplored int
}

// AnalysisEngine drives consumption of a multi-trace via repeated
// Frontier/Prune steps (spec.md §4.4).
type AnalysisEngine struct{}

func nodeID(id int) string { return fmt.Sprintf("n%d", id) }

// Run searches (t, mt) for a matching path. ctx is polled for
// cancellation between node expansions (spec.md §5); sk receives every
// generated node and edge synchronously.
func (AnalysisEngine) Run(ctx context.Context, t *term.Term, mt *mtrace.MultiTrace, opts model.Options, sk sink.Sink) (*AnalysisResult, error) {
	if err := validateTerm(t); err != nil {
		return nil, err
	}
	if err := sk.OpenSession(map[string]string{"engine": "analysis"}); err != nil {
		return nil, &SinkError{Err: err}
	}

	q := newQueue(opts.Strategy)
	counter := 0

	root := &searchNode{id: counter, term: t, remaining: mt}
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

		if node.remaining.Empty() {
			if term.AvoidsEmpty(node.term) {
				if err := sk.CloseSession(string(Pass)); err != nil {
					return nil, &SinkError{Err: err}
				}
				return &AnalysisResult{Verdict: Pass, NodesExplored: counter}, nil
			}
			continue
		}

		heads := node.remaining.Heads()
		elems := frontier.Frontier(node.term)

		var children []*searchNode
		for _, e := range elems {
			if !headContains(heads, e.Action) {
				continue
			}

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
				continue
			}

			childRemaining := node.remaining.Pop(e.Action)
			child := &searchNode{
				id: counter, term: e.Residual, remaining: childRemaining,
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

	if err := sk.CloseSession(string(Fail)); err != nil {
		return nil, &SinkError{Err: err}
	}
	result := &AnalysisResult{Verdict: Fail, Inconclusive: boundHit != nil, NodesExplored: counter}
	if boundHit != nil {
		return result, boundHit
	}
	return result, nil
}

func headContains(heads []term.Action, a term.Action) bool {
	for _, h := range heads {
		if h.Equal(a) {
			return true
		}
	}
	return false
}
