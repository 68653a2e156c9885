package sink

import "github.com/hibou-project/hibou/internal/term"

// NullSink discards every event (spec.md §4.6). cmd/hibou and
// internal/httpapi do not use it: with no logger requested they still
// drive a CountingSink.
type NullSink struct{}

func (NullSink) OpenSession(map[string]string) error { return nil }
func (NullSink) EmitNode(string, string, bool) error { return nil }
func (NullSink) EmitEdge(string, string, term.Action, string) error {
	return nil
}
func (NullSink) CloseSession(string) error { return nil }
