// Package ctlquery is the CTL property oracle supplemented in
// SPEC_FULL.md §4.7: a read-only query layer over the graph the
// Exploration engine (internal/engine) already emits to a step event
// sink. It never participates in Analysis or Exploration control flow;
// it consumes a finished run's nodes and edges, asserts them as
// state/2, transition/3, initial/1, accepting/1 and prop/2 facts, and
// evaluates a fixed-point temporal formula against them with the
// teacher's own ichiban/prolog-backed ctl_* predicate library
// (core.go), renamed away from CSP process algebra toward this plain
// Kripke-structure vocabulary.
package ctlquery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
	"github.com/ichiban/prolog"
)

// Oracle wraps an ichiban/prolog interpreter loaded with the CTL core
// and, once LoadGraph has run, one exploration graph's worth of facts.
type Oracle struct {
	mu          sync.RWMutex
	interpreter *prolog.Interpreter
}

// New builds an Oracle with the CTL core predicates loaded and no
// graph facts yet asserted.
func New() (*Oracle, error) {
	o := &Oracle{interpreter: prolog.New(nil, nil)}
	if err := o.interpreter.Exec(coreSource); err != nil {
		return nil, fmt.Errorf("ctlquery: loading core predicates: %w", err)
	}
	return o, nil
}

// Node is one exploration-graph node fact: its step-sink ID and
// whether avoids_empty held for its term (spec.md §4.5's
// "terminal-accepting" marker, asserted here as the prop accepting/
// accepting/1).
type Node struct {
	ID        string
	Accepting bool
}

// Edge is one exploration-graph edge fact: the firing action between
// two already-emitted nodes.
type Edge struct {
	ParentID, ChildID string
	Action            term.Action
}

// LoadGraph asserts one state/2 fact per node (with accepting/1 and
// prop(Node, accepting) when Accepting held), one transition/3 fact
// per edge, and one initial/1 fact for root. It discards any
// previously loaded graph — an Oracle holds exactly one run's facts at
// a time, matching the teacher's own Reset-before-reload discipline in
// pkg/prolog/engine.go.
func (o *Oracle) LoadGraph(ctx context.Context, sig *signature.Signature, nodes []Node, edges []Edge, rootID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	fresh := prolog.New(nil, nil)
	if err := fresh.Exec(coreSource); err != nil {
		return fmt.Errorf("ctlquery: reloading core predicates: %w", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "state(%s, []).\n", atom(n.ID))
		if n.Accepting {
			fmt.Fprintf(&b, "accepting(%s).\n", atom(n.ID))
			fmt.Fprintf(&b, "prop(%s, accepting).\n", atom(n.ID))
		}
	}
	for _, e := range edges {
		fmt.Fprintf(&b, "transition(%s, %s, %s).\n", atom(e.ParentID), atomAction(e.Action, sig), atom(e.ChildID))
	}
	if rootID != "" {
		fmt.Fprintf(&b, "initial(%s).\n", atom(rootID))
	}

	if err := fresh.Exec(b.String()); err != nil {
		return fmt.Errorf("ctlquery: asserting graph facts: %w", err)
	}

	o.interpreter = fresh
	return nil
}

// Check runs check_ctl(Phi) against the loaded graph, where formula is
// a literal CTL formula in the core's own surface syntax — e.g.
// "ef(atom(accepting))" or "ag(not(atom(accepting)))" — built with the
// ex/ax/ef/af/eg/ag/eu/au/and/or/not/atom combinators of core.go.
func (o *Oracle) Check(ctx context.Context, formula string) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	query := fmt.Sprintf("check_ctl(%s).", formula)
	sols, err := o.interpreter.QueryContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("ctlquery: query: %w", err)
	}
	defer sols.Close()

	ok := sols.Next()
	return ok, sols.Err()
}

// atom renders a step-sink node ID (always of the shape "n<digits>",
// per internal/engine's nodeID) as a Prolog atom. Node IDs are already
// valid unquoted atoms; this only guards against a future ID scheme
// that isn't.
func atom(s string) string {
	if isPlainAtom(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func isPlainAtom(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
		if !isAlnum {
			return false
		}
	}
	return true
}

// atomAction renders an action as a quoted atom "a!m"/"a?m" — never a
// plain atom, since '!' and '?' are not valid bare-atom characters.
func atomAction(a term.Action, sig *signature.Signature) string {
	return "'" + strings.ReplaceAll(a.Render(sig), "'", "''") + "'"
}
