// Package httpapi adapts the teacher's pkg/server/server.go HTTP
// surface (an http.ServeMux, a mutex-guarded counters map and rolling
// time series) to HIBOU's domain: POST /v1/analyze, POST /v1/explore,
// POST /v1/ctl/check, GET /v1/metrics. This is ambient surface per
// SPEC_FULL.md §1/§4.8, not part of the core, and satisfies no
// invariant in spec.md §8 — it only wraps internal/engine,
// internal/fixture and internal/ctlquery for remote callers.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibou-project/hibou/internal/ctlquery"
	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TimePoint is one counter-increment event, retained for a rolling
// window — verbatim in shape from the teacher's own TimePoint.
type TimePoint struct {
	Time    time.Time `json:"time"`
	Counter string    `json:"counter"`
	Value   int64     `json:"value"`
}

// Server is the HTTP surface described in SPEC_FULL.md §4.8. OutputDir
// is where a "graphic" logger writes its .dot/.png per spec.md §6.4;
// it defaults to the current directory.
type Server struct {
	OutputDir string

	mux *http.ServeMux

	mu         sync.RWMutex
	counters   map[string]int64
	timeSeries []TimePoint
	runs       map[string]*cachedRun

	metrics *sink.MetricsSink
}

// cachedRun is the exploration-graph state a /v1/explore call leaves
// behind for a later /v1/ctl/check call to query, keyed by runID.
type cachedRun struct {
	sig    *signature.Signature
	nodes  []ctlquery.Node
	edges  []ctlquery.Edge
	rootID string
}

// New constructs a Server whose engine runs report to
// prometheus.DefaultRegisterer, matching the teacher's own
// process-lifetime metrics registration.
func New() *Server {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer is New with an explicit registerer, so tests can
// use a fresh prometheus.Registry instead of the global default.
func NewWithRegisterer(reg prometheus.Registerer) *Server {
	return &Server{
		OutputDir:  ".",
		counters:   make(map[string]int64),
		runs:       make(map[string]*cachedRun),
		metrics:    sink.NewMetricsSink(reg),
	}
}

// Handler returns the server's http.Handler, building the mux on first
// use.
func (s *Server) Handler() http.Handler {
	if s.mux == nil {
		s.mux = http.NewServeMux()
		s.mux.HandleFunc("/v1/analyze", s.handleAnalyze)
		s.mux.HandleFunc("/v1/explore", s.handleExplore)
		s.mux.HandleFunc("/v1/ctl/check", s.handleCTLCheck)
		s.mux.HandleFunc("/v1/metrics", s.handleMetrics)
		s.mux.Handle("/v1/metrics/prom", promhttp.Handler())
	}
	return s.mux
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) incCounter(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	s.timeSeries = append(s.timeSeries, TimePoint{Time: time.Now(), Counter: name, Value: s.counters[name]})
	if len(s.timeSeries) > 1000 {
		s.timeSeries = s.timeSeries[len(s.timeSeries)-1000:]
	}
}

func (s *Server) getCounters() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

func (s *Server) getTimeSeries() []TimePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TimePoint, len(s.timeSeries))
	copy(out, s.timeSeries)
	return out
}

func (s *Server) putRun(run *cachedRun) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.runs[id] = run
	s.mu.Unlock()
	return id
}

func (s *Server) getRun(id string) (*cachedRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

// resolveSink builds the fan-out sink for a run: the server's shared
// MetricsSink always participates; a CountingSink always participates
// so ctlquery has a graph to query; "graphic" in opts.Loggers adds a
// GraphicSink writing to OutputDir/name (spec.md §6.1 "loggers",
// §6.4 "one image per run").
func (s *Server) resolveSink(sig *signature.Signature, name string, opts model.Options) (sink.Sink, *sink.CountingSink) {
	cs := sink.NewCountingSink()
	sinks := []sink.Sink{s.metrics, cs}
	for _, logger := range opts.Loggers {
		if logger == "graphic" {
			sinks = append(sinks, sink.NewGraphicSink(sig, fmt.Sprintf("%s/%s", s.OutputDir, name)))
		}
	}
	return sink.Multi(sinks...), cs
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{"success": false, "error": err.Error()})
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 30*time.Second)
}
