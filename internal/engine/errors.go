package engine

import (
	"errors"
	"fmt"

	"github.com/hibou-project/hibou/internal/term"
)

// TermError reports a malformed term that cannot be given semantics —
// spec.md §7: "a loop body is malformed (e.g. references a sub-term
// that itself cannot be constructed)". The core never constructs such a
// term itself; this is surfaced when a caller hands the engine one.
type TermError struct {
	Reason string
}

func (e *TermError) Error() string {
	return fmt.Sprintf("engine: malformed term: %s", e.Reason)
}

// validateTerm rejects a malformed term before Run starts exploring it.
// internal/term's constructors are total and panic on a nil child, so
// the only malformed term a caller can actually hand the engine is a
// bare nil root (an uninitialized model.ParsedModel.Term, say); the
// recursive walk below is defense in depth for t.Children()/t.Body()
// should that invariant ever loosen.
func validateTerm(t *term.Term) error {
	if t == nil {
		return &TermError{Reason: "nil sub-term"}
	}
	switch t.Kind() {
	case term.KindEmpty, term.KindAction, term.KindBroadcast:
		return nil
	case term.KindScheduled, term.KindAlt:
		left, right := t.Children()
		if err := validateTerm(left); err != nil {
			return err
		}
		return validateTerm(right)
	case term.KindLoop:
		return validateTerm(t.Body())
	default:
		return &TermError{Reason: "unknown term kind"}
	}
}

// BoundKind names which configured limit stopped a search (spec.md §7).
type BoundKind uint8

const (
	BoundMaxDepth BoundKind = iota
	BoundMaxLoopDepth
	BoundMaxNodeNumber
)

func (k BoundKind) String() string {
	switch k {
	case BoundMaxDepth:
		return "max_depth"
	case BoundMaxLoopDepth:
		return "max_loop_depth"
	case BoundMaxNodeNumber:
		return "max_node_number"
	default:
		return "unknown bound"
	}
}

// BoundExceeded reports that a configured limit stopped the search
// before it could reach a Cov/exhaustion conclusion on its own terms
// (spec.md §7). The engine still reports its best verdict known so far
// alongside this error.
type BoundExceeded struct {
	Kind BoundKind
}

func (e *BoundExceeded) Error() string {
	return fmt.Sprintf("engine: bound exceeded: %s", e.Kind)
}

// ErrAborted is returned when a run's cancellation check fires between
// node expansions (spec.md §5, §7).
var ErrAborted = errors.New("engine: aborted")

// SinkError wraps a failure from the step event sink's external
// operation; the engine halts immediately and propagates it (spec.md
// §7 — "none are retried inside the engine").
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("engine: sink: %v", e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
