package sink

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// GraphicSink accumulates nodes and edges into the teacher's own
// StateMachine-shaped recording (pkg/prolog/engine.go's
// GetStateMachine/GetSequenceDiagram), then renders a Graphviz DOT
// document and shells out to the external dot binary (spec.md §6.4,
// "one image per run"). A missing dot binary degrades to writing the
// .dot source only, logged with the plain log package — matching
// pkg/server/server.go and cmd/turducken/main.go, neither of which use
// a structured logger.
type GraphicSink struct {
	mu sync.Mutex

	sig        *signature.Signature
	outputPath string // base path, without extension

	nodes map[string]graphicNode
	edges []graphicEdge
}

type graphicNode struct {
	id          string
	summary     string
	isAccepting bool
}

type graphicEdge struct {
	parentID, childID string
	action            term.Action
}

// NewGraphicSink builds a GraphicSink that will render to
// outputPath+".dot" (and outputPath+".png" when dot is available).
func NewGraphicSink(sig *signature.Signature, outputPath string) *GraphicSink {
	return &GraphicSink{sig: sig, outputPath: outputPath, nodes: make(map[string]graphicNode)}
}

func (g *GraphicSink) OpenSession(map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[string]graphicNode)
	g.edges = nil
	return nil
}

func (g *GraphicSink) EmitNode(id string, summary string, isAccepting bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[id] = graphicNode{id: id, summary: summary, isAccepting: isAccepting}
	return nil
}

func (g *GraphicSink) EmitEdge(parentID, childID string, action term.Action, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges = append(g.edges, graphicEdge{parentID: parentID, childID: childID, action: action})
	return nil
}

func (g *GraphicSink) CloseSession(string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.render()
}

// DOT renders the accumulated graph as Graphviz DOT source, exported so
// tests can assert on it without shelling out.
func (g *GraphicSink) DOT() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dotLocked()
}

func (g *GraphicSink) dotLocked() string {
	var b bytes.Buffer
	b.WriteString("digraph hibou {\n")
	for _, n := range g.nodes {
		shape := "ellipse"
		if n.isAccepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %q [label=%q shape=%s];\n", n.id, n.summary, shape)
	}
	for _, e := range g.edges {
		label := e.action.Render(g.sig)
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.parentID, e.childID, label)
	}
	b.WriteString("}\n")
	return b.String()
}

func (g *GraphicSink) render() error {
	dotSrc := g.dotLocked()
	dotPath := g.outputPath + ".dot"
	if err := os.WriteFile(dotPath, []byte(dotSrc), 0o644); err != nil {
		return fmt.Errorf("sink: writing dot source: %w", err)
	}

	dotBin, err := exec.LookPath("dot")
	if err != nil {
		log.Printf("sink: dot binary not found, wrote %s only", dotPath)
		return nil
	}

	pngPath := g.outputPath + ".png"
	cmd := exec.Command(dotBin, "-Tpng", "-o", pngPath, dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Printf("sink: dot render failed: %v: %s", err, out)
		return nil
	}
	return nil
}
