package sink

import (
	"github.com/hibou-project/hibou/internal/term"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink wraps prometheus counters so a long-lived internal/httpapi
// process can expose /metrics, mirroring the pack's own pervasive use of
// github.com/prometheus/client_golang for exactly this kind of counter
// bookkeeping.
type MetricsSink struct {
	nodesGenerated  prometheus.Counter
	edgesTaken      prometheus.Counter
	sessionsOpened  prometheus.Counter
	sessionsByVerdict *prometheus.CounterVec
}

// NewMetricsSink constructs a MetricsSink and registers its collectors
// with reg. Passing a fresh *prometheus.Registry per engine run avoids
// "duplicate metrics collector registration" panics across repeated
// runs in tests; internal/httpapi registers one MetricsSink against
// prometheus.DefaultRegisterer for the life of the process.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	s := &MetricsSink{
		nodesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hibou_nodes_generated_total",
			Help: "Total search nodes generated by analysis/exploration runs.",
		}),
		edgesTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hibou_edges_taken_total",
			Help: "Total frontier edges taken by analysis/exploration runs.",
		}),
		sessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hibou_sessions_opened_total",
			Help: "Total engine run sessions opened.",
		}),
		sessionsByVerdict: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hibou_sessions_closed_total",
			Help: "Total engine run sessions closed, by verdict.",
		}, []string{"verdict"}),
	}
	reg.MustRegister(s.nodesGenerated, s.edgesTaken, s.sessionsOpened, s.sessionsByVerdict)
	return s
}

func (s *MetricsSink) OpenSession(map[string]string) error {
	s.sessionsOpened.Inc()
	return nil
}

func (s *MetricsSink) EmitNode(string, string, bool) error {
	s.nodesGenerated.Inc()
	return nil
}

func (s *MetricsSink) EmitEdge(string, string, term.Action, string) error {
	s.edgesTaken.Inc()
	return nil
}

func (s *MetricsSink) CloseSession(verdict string) error {
	if verdict == "" {
		verdict = "none"
	}
	s.sessionsByVerdict.WithLabelValues(verdict).Inc()
	return nil
}
