// Package frontier implements the one-step transition relation of
// spec.md §4.2 (Frontier) and its companion weak-sequencing erasure
// operation of §4.3 (Prune).
package frontier

import (
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// Element is one immediately executable action of a term, paired with the
// residual term that remains after firing it.
type Element struct {
	Action   term.Action
	Residual *term.Term

	// FromLoop reports whether firing this element unfolds some Loop
	// node somewhere in the term (spec.md §4.5's "max_loop_depth" and
	// design notes §9 "Bounds accounting" — carried per search node by
	// the caller, not per term, but the engine needs to know which
	// moves to count).
	FromLoop bool
}

// Frontier enumerates every immediately executable action of t together
// with its residual, in the canonical order fixed by design notes (§9,
// resolved open question): left-subtree-first pre-order of the term
// producing each action. Where a left contribution and a right
// contribution of the same binary node share a lifeline and message but
// differ in kind, the reception is ordered before the emission.
func Frontier(t *term.Term) []Element {
	switch t.Kind() {
	case term.KindEmpty:
		return nil

	case term.KindAction:
		return []Element{{Action: t.Action(), Residual: term.Empty}}

	case term.KindBroadcast:
		sender, message, receivers := t.Broadcast()
		act := term.Action{Kind: term.Emission, Lifeline: sender, Message: message}
		var residual *term.Term
		if len(receivers) == 0 {
			residual = term.Empty
		} else {
			residual = receptionTree(message, receivers)
		}
		return []Element{{Action: act, Residual: residual}}

	case term.KindAlt:
		left, right := t.Children()
		return combine(Frontier(left), Frontier(right))

	case term.KindScheduled:
		left, right := t.Children()
		switch t.Op() {
		case term.OpStrict:
			return frontierStrict(t, left, right)
		case term.OpSeq:
			return frontierSeq(t, left, right)
		case term.OpPar:
			return frontierPar(t, left, right)
		default:
			panic("frontier: unhandled schedule op")
		}

	case term.KindLoop:
		body := t.Body()
		op := t.Op()
		elems := make([]Element, 0, len(Frontier(body)))
		for _, e := range Frontier(body) {
			elems = append(elems, Element{
				Action:   e.Action,
				Residual: term.NewScheduled(op, e.Residual, t),
				FromLoop: true,
			})
		}
		return elems

	default:
		panic("frontier: unhandled term kind")
	}
}

// receptionTree builds the parallel composition of receptions r?message
// for each r in receivers, used as a Broadcast's residual.
func receptionTree(message signature.ID, receivers []signature.ID) *term.Term {
	result := term.NewAction(term.Action{Kind: term.Reception, Lifeline: receivers[len(receivers)-1], Message: message})
	for i := len(receivers) - 2; i >= 0; i-- {
		recv := term.NewAction(term.Action{Kind: term.Reception, Lifeline: receivers[i], Message: message})
		result = term.NewScheduled(term.OpPar, recv, result)
	}
	return result
}

func frontierStrict(node, left, right *term.Term) []Element {
	var out []Element
	for _, e := range Frontier(left) {
		out = append(out, Element{Action: e.Action, Residual: term.NewScheduled(term.OpStrict, e.Residual, right), FromLoop: e.FromLoop})
	}
	var fromRight []Element
	if term.AvoidsEmpty(left) {
		fromRight = Frontier(right)
	}
	return combine(out, fromRight)
}

func frontierSeq(node, left, right *term.Term) []Element {
	var fromLeft []Element
	for _, e := range Frontier(left) {
		fromLeft = append(fromLeft, Element{Action: e.Action, Residual: term.NewScheduled(term.OpSeq, e.Residual, right), FromLoop: e.FromLoop})
	}
	var fromRight []Element
	for _, e := range Frontier(right) {
		pruned, ok := Prune(left, e.Action.Lifeline)
		if !ok {
			continue
		}
		fromRight = append(fromRight, Element{Action: e.Action, Residual: term.NewScheduled(term.OpSeq, pruned, e.Residual), FromLoop: e.FromLoop})
	}
	return combine(fromLeft, fromRight)
}

func frontierPar(node, left, right *term.Term) []Element {
	var fromLeft []Element
	for _, e := range Frontier(left) {
		fromLeft = append(fromLeft, Element{Action: e.Action, Residual: term.NewScheduled(term.OpPar, e.Residual, right), FromLoop: e.FromLoop})
	}
	var fromRight []Element
	for _, e := range Frontier(right) {
		fromRight = append(fromRight, Element{Action: e.Action, Residual: term.NewScheduled(term.OpPar, left, e.Residual), FromLoop: e.FromLoop})
	}
	return combine(fromLeft, fromRight)
}

// combine merges a left-contribution list and a right-contribution list,
// preserving left-subtree-first order except where the next pending
// element on each side shares a lifeline and message and differs in kind:
// there the reception is emitted first, per the canonical-order tie-break.
func combine(left, right []Element) []Element {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}
	out := make([]Element, 0, len(left)+len(right))
	li, ri := 0, 0
	for li < len(left) && ri < len(right) {
		l, r := left[li], right[ri]
		if l.Action.Lifeline == r.Action.Lifeline && l.Action.Message == r.Action.Message && l.Action.Kind != r.Action.Kind {
			if r.Action.Kind == term.Reception {
				out = append(out, r)
				ri++
			} else {
				out = append(out, l)
				li++
			}
			continue
		}
		out = append(out, l)
		li++
	}
	out = append(out, left[li:]...)
	out = append(out, right[ri:]...)
	return out
}
