package ctlquery

import "github.com/hibou-project/hibou/internal/sink"

// FromCountingSink adapts a finished exploration run's recorded events
// (internal/sink.CountingSink — "a CountingSink-like graph recorder",
// per SPEC_FULL.md §4.7) into the Node/Edge lists LoadGraph expects.
// rootID is the step-sink ID the caller gave the exploration's root
// node (internal/engine always uses "n0").
func FromCountingSink(cs *sink.CountingSink, rootID string) ([]Node, []Edge) {
	accepting := make(map[string]bool, len(cs.AcceptingIDs))
	for _, id := range cs.AcceptingIDs {
		accepting[id] = true
	}

	nodes := make([]Node, len(cs.NodeIDs))
	for i, id := range cs.NodeIDs {
		nodes[i] = Node{ID: id, Accepting: accepting[id]}
	}

	edges := make([]Edge, len(cs.EdgeLog))
	for i, e := range cs.EdgeLog {
		edges[i] = Edge{ParentID: e.ParentID, ChildID: e.ChildID, Action: e.Action}
	}

	return nodes, edges
}
