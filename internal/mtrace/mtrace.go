// Package mtrace implements the multi-trace container of spec.md §3:
// a finite set of (co-localization, trace) components, with head
// extraction and consumption used by the analysis engine.
package mtrace

import (
	"fmt"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// SignatureError reports a multi-trace that violates spec.md §3's
// invariants: overlapping co-localizations, an action whose lifeline is
// outside its component's co-localization, or an empty co-localization
// (spec.md §9, resolved: rejected at construction).
type SignatureError struct {
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("mtrace: %s", e.Reason)
}

// Component pairs a co-localization with the local trace observed on it.
type Component struct {
	Colocalization signature.LifelineSet
	Trace          []term.Action
}

// MultiTrace is a finite set of components satisfying spec.md §3(a)-(c):
// pairwise-disjoint co-localizations, whose union is a subset of the
// declared lifelines, and where every action's lifeline lies inside its
// own component's co-localization.
type MultiTrace struct {
	components []Component
}

// New validates and constructs a MultiTrace. allLifelines bounds the
// "union is a subset of L" check (spec.md §3(b)).
func New(allLifelines signature.LifelineSet, components []Component) (*MultiTrace, error) {
	seen := signature.NewLifelineSet()
	for _, c := range components {
		if len(c.Colocalization) == 0 {
			return nil, &SignatureError{Reason: "component has an empty co-localization"}
		}
		if !seen.Disjoint(c.Colocalization) {
			return nil, &SignatureError{Reason: "co-localizations are not pairwise disjoint"}
		}
		for id := range c.Colocalization {
			seen[id] = struct{}{}
			if !allLifelines.Contains(id) {
				return nil, &SignatureError{Reason: "co-localization references a lifeline outside the signature"}
			}
		}
		for _, a := range c.Trace {
			if !c.Colocalization.Contains(a.Lifeline) {
				return nil, &SignatureError{Reason: "trace action's lifeline is outside its component's co-localization"}
			}
		}
	}

	cp := make([]Component, len(components))
	for i, c := range components {
		trace := append([]term.Action(nil), c.Trace...)
		cp[i] = Component{Colocalization: c.Colocalization, Trace: trace}
	}
	return &MultiTrace{components: cp}, nil
}

// Empty reports whether every component's trace has been fully consumed.
func (mt *MultiTrace) Empty() bool {
	for _, c := range mt.components {
		if len(c.Trace) > 0 {
			return false
		}
	}
	return true
}

// Heads returns the set of actions at the first position of every
// non-empty component (spec.md §4.4 step 2).
func (mt *MultiTrace) Heads() []term.Action {
	var heads []term.Action
	for _, c := range mt.components {
		if len(c.Trace) > 0 {
			heads = append(heads, c.Trace[0])
		}
	}
	return heads
}

// Pop removes a as the head of the component whose co-localization
// contains a.Lifeline, returning the resulting MultiTrace. The caller
// must have already confirmed a is a current head (spec.md §4.4 step 4);
// Pop panics if no component's head matches, since Heads() membership is
// the documented precondition.
func (mt *MultiTrace) Pop(a term.Action) *MultiTrace {
	cp := make([]Component, len(mt.components))
	popped := false
	for i, c := range mt.components {
		if !popped && c.Colocalization.Contains(a.Lifeline) {
			if len(c.Trace) == 0 || !c.Trace[0].Equal(a) {
				cp[i] = c
				continue
			}
			cp[i] = Component{Colocalization: c.Colocalization, Trace: c.Trace[1:]}
			popped = true
			continue
		}
		cp[i] = c
	}
	if !popped {
		panic("mtrace: Pop called with an action that is not a current head")
	}
	return &MultiTrace{components: cp}
}

// Components returns the current components, for diagnostics/rendering.
func (mt *MultiTrace) Components() []Component {
	return mt.components
}
