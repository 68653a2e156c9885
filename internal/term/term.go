// Package term implements the inductive interaction-term algebra of
// spec.md §3: an immutable, structurally-shared tree of Empty, Action,
// Broadcast, Scheduled, Alt and Loop nodes. Terms are built once and never
// mutated; Frontier and Prune (package frontier) build new nodes for their
// results and reuse unchanged sub-terms as they are.
package term

import (
	"fmt"
	"strings"

	"github.com/hibou-project/hibou/internal/signature"
)

// Kind tags which of the six term constructors a Term is. A plain sum type
// with exhaustive switches, per the design notes: no class hierarchy, no
// type assertions scattered through the engine.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindAction
	KindBroadcast
	KindScheduled
	KindAlt
	KindLoop
)

// ScheduleOp is the binary scheduling discipline of a Scheduled or Loop
// node: strict sequencing, weak sequencing ("seq"), or full parallelism.
type ScheduleOp uint8

const (
	OpStrict ScheduleOp = iota
	OpSeq
	OpPar
)

func (op ScheduleOp) String() string {
	switch op {
	case OpStrict:
		return "strict"
	case OpSeq:
		return "seq"
	case OpPar:
		return "par"
	default:
		return "?op"
	}
}

// Term is an immutable node of the interaction-term tree. Exactly the
// fields relevant to its Kind are populated; which ones is determined
// entirely by Kind, so callers must switch on Kind rather than guess from
// field nil-ness.
type Term struct {
	kind Kind

	// KindAction
	action Action

	// KindBroadcast
	sender    signature.ID
	message   signature.ID
	receivers []signature.ID

	// KindScheduled, KindLoop: op
	// KindScheduled, KindAlt: left/right
	// KindLoop: left is the loop body, right is unused
	op    ScheduleOp
	left  *Term
	right *Term

	digest uint64
}

// Kind reports which constructor produced t.
func (t *Term) Kind() Kind { return t.kind }

// Action returns the leaf action of a KindAction term. Callers must check
// Kind first; this panics otherwise.
func (t *Term) Action() Action {
	if t.kind != KindAction {
		panic("term: Action called on non-Action term")
	}
	return t.action
}

// Broadcast returns the sender, message and receivers of a KindBroadcast
// term.
func (t *Term) Broadcast() (sender signature.ID, message signature.ID, receivers []signature.ID) {
	if t.kind != KindBroadcast {
		panic("term: Broadcast called on non-Broadcast term")
	}
	return t.sender, t.message, t.receivers
}

// Op returns the scheduling discipline of a KindScheduled or KindLoop term.
func (t *Term) Op() ScheduleOp {
	if t.kind != KindScheduled && t.kind != KindLoop {
		panic("term: Op called on a term with no scheduling operator")
	}
	return t.op
}

// Children returns the left and right sub-terms of a KindScheduled or
// KindAlt term. For KindLoop, Body returns the single operand instead.
func (t *Term) Children() (left, right *Term) {
	if t.kind != KindScheduled && t.kind != KindAlt {
		panic("term: Children called on a term with no binary children")
	}
	return t.left, t.right
}

// Body returns the repeated sub-term of a KindLoop term.
func (t *Term) Body() *Term {
	if t.kind != KindLoop {
		panic("term: Body called on non-Loop term")
	}
	return t.left
}

// Digest is a structural hash, stable across equal terms regardless of
// sharing, suitable as a cache key for the avoids_empty/involves_lifeline
// predicates and for Frontier's canonical-order tie-breaking (see
// SPEC_FULL.md §3 and digest.go for the hashing scheme).
func (t *Term) Digest() uint64 { return t.digest }

// Equal is structural equality, independent of sub-term sharing.
func (t *Term) Equal(other *Term) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.digest == other.digest && t.equalSlow(other)
}

// equalSlow is the full structural comparison, used only as a fallback when
// digests collide (astronomically unlikely with a 64-bit structural hash,
// but correctness must not depend on that).
func (t *Term) equalSlow(other *Term) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindEmpty:
		return true
	case KindAction:
		return t.action.Equal(other.action)
	case KindBroadcast:
		if t.sender != other.sender || t.message != other.message || len(t.receivers) != len(other.receivers) {
			return false
		}
		for i := range t.receivers {
			if t.receivers[i] != other.receivers[i] {
				return false
			}
		}
		return true
	case KindScheduled:
		return t.op == other.op && t.left.equalSlow(other.left) && t.right.equalSlow(other.right)
	case KindAlt:
		return t.left.equalSlow(other.left) && t.right.equalSlow(other.right)
	case KindLoop:
		return t.op == other.op && t.left.equalSlow(other.left)
	default:
		return false
	}
}

// Empty is the neutral element, expressing exactly the empty execution.
// There is a single canonical Empty value so pointer-equal comparisons are
// cheap, but Equal never relies on that.
var Empty = &Term{kind: KindEmpty, digest: digestEmpty()}

// NewAction builds the one-action term a.
func NewAction(a Action) *Term {
	return &Term{kind: KindAction, action: a, digest: digestAction(a)}
}

// NewBroadcast builds sender!message followed by the parallel composition
// of receptions for each receiver. An empty receiver set normalizes to a
// bare emission, per spec.md §9's resolved open question.
func NewBroadcast(sender, message signature.ID, receivers []signature.ID) *Term {
	if len(receivers) == 0 {
		return NewAction(Action{Kind: Emission, Lifeline: sender, Message: message})
	}
	rs := append([]signature.ID(nil), receivers...)
	return &Term{kind: KindBroadcast, sender: sender, message: message, receivers: rs, digest: digestBroadcast(sender, message, rs)}
}

// NewScheduled builds the binary scheduling composition op(left, right).
func NewScheduled(op ScheduleOp, left, right *Term) *Term {
	return &Term{kind: KindScheduled, op: op, left: left, right: right, digest: digestBinary(KindScheduled, uint64(op), left.digest, right.digest)}
}

// NewAlt builds the exclusive alternative between left and right.
func NewAlt(left, right *Term) *Term {
	return &Term{kind: KindAlt, left: left, right: right, digest: digestBinary(KindAlt, 0, left.digest, right.digest)}
}

// NewLoop builds the repetition of body scheduled by op.
func NewLoop(op ScheduleOp, body *Term) *Term {
	return &Term{kind: KindLoop, op: op, left: body, digest: digestBinary(KindLoop, uint64(op), body.digest, 0)}
}

// String renders t for diagnostics and step-sink node summaries. It is not
// a parser round-trip format; internal/fixture owns that grammar.
func (t *Term) String() string {
	var b strings.Builder
	t.write(&b, nil)
	return b.String()
}

// write renders using sig names when available, falling back to bare IDs
// so String() is usable even without a Signature in hand (e.g. in tests).
func (t *Term) write(b *strings.Builder, sig *signature.Signature) {
	switch t.kind {
	case KindEmpty:
		b.WriteString("Empty")
	case KindAction:
		if sig != nil {
			b.WriteString(t.action.Render(sig))
		} else {
			fmt.Fprintf(b, "%d%s%d", t.action.Lifeline, t.action.Kind, t.action.Message)
		}
	case KindBroadcast:
		fmt.Fprintf(b, "broadcast(%d,%d,%v)", t.sender, t.message, t.receivers)
	case KindScheduled:
		fmt.Fprintf(b, "%s(", t.op)
		t.left.write(b, sig)
		b.WriteString(", ")
		t.right.write(b, sig)
		b.WriteString(")")
	case KindAlt:
		b.WriteString("alt(")
		t.left.write(b, sig)
		b.WriteString(", ")
		t.right.write(b, sig)
		b.WriteString(")")
	case KindLoop:
		fmt.Fprintf(b, "loop_%s(", t.op)
		t.left.write(b, sig)
		b.WriteString(")")
	}
}

// Render is String but resolving lifeline/message names through sig.
func (t *Term) Render(sig *signature.Signature) string {
	var b strings.Builder
	t.write(&b, sig)
	return b.String()
}
