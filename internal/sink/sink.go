// Package sink implements the step event sink abstraction of spec.md
// §4.6: engines publish node/edge events synchronously to a pluggable
// collaborator, without knowing whether it discards them, counts them,
// exports metrics, or renders a diagram.
package sink

import "github.com/hibou-project/hibou/internal/term"

// Sink is the step event sink interface of spec.md §4.6. Every
// operation is synchronous; an implementation that performs I/O is
// expected to buffer internally (spec.md §5).
type Sink interface {
	// OpenSession starts a recording session. metadata is free-form
	// (model name, run kind) for the sink's own use.
	OpenSession(metadata map[string]string) error

	// EmitNode records a generated search node. isAccepting marks
	// whether avoids_empty held for its term (spec.md §4.5's
	// "terminal-accepting" marker).
	EmitNode(id string, summary string, isAccepting bool) error

	// EmitEdge records a transition taken between two already-emitted
	// nodes. verdictContribution is sink-defined annotation (e.g. "Cov",
	// "UnCov") and may be empty.
	EmitEdge(parentID, childID string, action term.Action, verdictContribution string) error

	// CloseSession ends the session. verdict may be empty when the run
	// produced none (e.g. Aborted before any terminal node).
	CloseSession(verdict string) error
}
