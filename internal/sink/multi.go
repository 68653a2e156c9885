package sink

import "github.com/hibou-project/hibou/internal/term"

// multiSink fans every event out to a fixed list of sinks, in order,
// stopping at (and returning) the first error — matching spec.md §7's
// "none are retried inside the engine" for any one sink's own failure.
type multiSink struct {
	sinks []Sink
}

// Multi combines sinks into one Sink that fans every call out to each
// of them. Used by internal/httpapi to drive a MetricsSink alongside
// whatever logger(s) a request's Options.Loggers named (spec.md §6.1).
func Multi(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &multiSink{sinks: sinks}
}

func (m *multiSink) OpenSession(metadata map[string]string) error {
	for _, s := range m.sinks {
		if err := s.OpenSession(metadata); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiSink) EmitNode(id string, summary string, isAccepting bool) error {
	for _, s := range m.sinks {
		if err := s.EmitNode(id, summary, isAccepting); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiSink) EmitEdge(parentID, childID string, action term.Action, verdictContribution string) error {
	for _, s := range m.sinks {
		if err := s.EmitEdge(parentID, childID, action, verdictContribution); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiSink) CloseSession(verdict string) error {
	for _, s := range m.sinks {
		if err := s.CloseSession(verdict); err != nil {
			return err
		}
	}
	return nil
}
