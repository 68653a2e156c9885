package sink

import (
	"sync"

	"github.com/hibou-project/hibou/internal/term"
)

// CountingSink accumulates node/edge counts and the full event list, for
// assertions in engine tests (spec.md §4.6's "counting for tests").
type CountingSink struct {
	mu sync.Mutex

	Opened  bool
	Closed  bool
	Verdict string

	Nodes int
	Edges int

	NodeIDs      []string
	AcceptingIDs []string
	EdgeLog      []EdgeEvent
}

// EdgeEvent is one recorded EmitEdge call, retained for assertions.
type EdgeEvent struct {
	ParentID, ChildID string
	Action            term.Action
	VerdictContrib    string
}

func NewCountingSink() *CountingSink { return &CountingSink{} }

func (s *CountingSink) OpenSession(map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Opened = true
	return nil
}

func (s *CountingSink) EmitNode(id string, _ string, isAccepting bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nodes++
	s.NodeIDs = append(s.NodeIDs, id)
	if isAccepting {
		s.AcceptingIDs = append(s.AcceptingIDs, id)
	}
	return nil
}

func (s *CountingSink) EmitEdge(parentID, childID string, action term.Action, verdictContribution string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Edges++
	s.EdgeLog = append(s.EdgeLog, EdgeEvent{ParentID: parentID, ChildID: childID, Action: action, VerdictContrib: verdictContribution})
	return nil
}

func (s *CountingSink) CloseSession(verdict string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	s.Verdict = verdict
	return nil
}
