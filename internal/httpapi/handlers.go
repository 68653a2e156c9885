package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hibou-project/hibou/internal/ctlquery"
	"github.com/hibou-project/hibou/internal/engine"
	"github.com/hibou-project/hibou/internal/fixture"
)

func errUnknownRun(id string) error {
	return fmt.Errorf("httpapi: unknown run id %q", id)
}

// analyzeRequest is the POST /v1/analyze body: model and trace are
// both internal/fixture source (SPEC_FULL.md §6.3's stand-in grammar).
type analyzeRequest struct {
	Model string `json:"model"`
	Trace string `json:"trace"`
	Name  string `json:"name"`
}

type analyzeResponse struct {
	Success       bool   `json:"success"`
	Verdict       string `json:"verdict"`
	Inconclusive  bool   `json:"inconclusive"`
	NodesExplored int    `json:"nodesExplored"`
	Error         string `json:"error,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		req.Name = "analyze"
	}

	mdl, err := fixture.ParseModel(req.Model)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pmt, err := fixture.ParseMultiTrace(req.Trace, mdl.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	sk, _ := s.resolveSink(mdl.Signature, req.Name, mdl.Options)
	result, err := engine.AnalysisEngine{}.Run(ctx, mdl.Term, pmt.MultiTrace, mdl.Options, sk)

	resp := analyzeResponse{Success: true}
	if result != nil {
		resp.Verdict = string(result.Verdict)
		resp.Inconclusive = result.Inconclusive
		resp.NodesExplored = result.NodesExplored
	}
	if err != nil {
		if _, ok := err.(*engine.BoundExceeded); !ok {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
	s.incCounter("analyze_requests")
}

// exploreRequest is the POST /v1/explore body.
type exploreRequest struct {
	Model string `json:"model"`
	Name  string `json:"name"`
}

type exploreResponse struct {
	Success        bool   `json:"success"`
	RunID          string `json:"runId"`
	Complete       bool   `json:"complete"`
	NodesGenerated int    `json:"nodesGenerated"`
	Error          string `json:"error,omitempty"`
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req exploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		req.Name = "explore"
	}

	mdl, err := fixture.ParseModel(req.Model)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	sk, cs := s.resolveSink(mdl.Signature, req.Name, mdl.Options)
	result, err := engine.ExplorationEngine{}.Run(ctx, mdl.Term, mdl.Options, sk)

	resp := exploreResponse{Success: true}
	if result != nil {
		resp.Complete = result.Complete
		resp.NodesGenerated = result.NodesGenerated
	}
	if err != nil {
		if _, ok := err.(*engine.BoundExceeded); !ok {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	nodes, edges := ctlquery.FromCountingSink(cs, "n0")
	resp.RunID = s.putRun(&cachedRun{sig: mdl.Signature, nodes: nodes, edges: edges, rootID: "n0"})

	writeJSON(w, http.StatusOK, resp)
	s.incCounter("explore_requests")
}

// ctlCheckRequest is the POST /v1/ctl/check body: runID names an
// exploration graph cached by a prior /v1/explore call (SPEC_FULL.md
// §4.7 — the CTL oracle only consumes graphs already produced, it
// never drives its own exploration).
type ctlCheckRequest struct {
	RunID   string `json:"runId"`
	Formula string `json:"formula"`
}

type ctlCheckResponse struct {
	Success   bool   `json:"success"`
	Satisfied bool   `json:"satisfied"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) handleCTLCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ctlCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	run, ok := s.getRun(req.RunID)
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownRun(req.RunID))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	oracle, err := ctlquery.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := oracle.LoadGraph(ctx, run.sig, run.nodes, run.edges, run.rootID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	satisfied, err := oracle.Check(ctx, req.Formula)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, ctlCheckResponse{Success: true, Satisfied: satisfied})
	s.incCounter("ctl_checks")
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"counters":   s.getCounters(),
		"timeSeries": s.getTimeSeries(),
	})
}
