// Package fixture is a deliberately minimal, line-oriented loader used
// only by tests and the cmd/hibou demo commands — it is explicitly not
// the real .hsf/.htf grammar, which spec.md §1 treats as an external
// collaborator. It exists to hand a model.ParsedModel and
// model.ParsedMultiTrace to the core without a real parser on hand, and
// covers exactly the shapes used in spec.md §8's literal scenarios:
// strict/seq/par scheduling, alt, loop_strict/loop_seq/loop_par, and
// broadcast (`a--m->(b,c)`).
package fixture

import (
	"fmt"
	"strings"

	"github.com/hibou-project/hibou/internal/engine/strategy"
	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// ParseModel reads a model fixture: one directive per non-blank,
// non-comment line, `key: value`. Recognized keys: lifelines, messages,
// term, and options, whose value is a comma-separated list of
// `field=value` pairs for the spec.md §6.1 fields (strategy, max_depth,
// max_loop_depth, max_node_number, loggers). lifelines/messages are
// optional declarations — ParseTerm interns names on first use anyway
// — but declaring them first fixes their Signature ordering.
func ParseModel(src string) (*model.ParsedModel, error) {
	sig := signature.New()
	opts := model.DefaultOptions()
	var termSrc string
	haveTerm := false

	for lineNo, line := range splitDirectiveLines(src) {
		key, value, err := splitDirective(line)
		if err != nil {
			return nil, fmt.Errorf("fixture: line %d: %w", lineNo+1, err)
		}
		switch key {
		case "lifelines":
			for _, name := range splitNames(value) {
				sig.InternLifeline(name)
			}
		case "messages":
			for _, name := range splitNames(value) {
				sig.InternMessage(name)
			}
		case "term":
			termSrc = value
			haveTerm = true
		case "options":
			if err := parseOptions(value, &opts); err != nil {
				return nil, fmt.Errorf("fixture: line %d: %w", lineNo+1, err)
			}
		default:
			return nil, fmt.Errorf("fixture: line %d: unknown directive %q", lineNo+1, key)
		}
	}

	if !haveTerm {
		return nil, fmt.Errorf("fixture: model has no 'term:' directive")
	}
	t, err := ParseTerm(termSrc, sig)
	if err != nil {
		return nil, fmt.Errorf("fixture: parsing term: %w", err)
	}

	return &model.ParsedModel{Signature: sig, Term: t, Options: opts}, nil
}

func parseOptions(value string, opts *model.Options) error {
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		kv := strings.SplitN(field, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("malformed option %q", field)
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "strategy":
			s, err := strategy.Parse(val)
			if err != nil {
				return err
			}
			opts.Strategy = s
		case "max_depth":
			n, err := parseNonNegInt(val)
			if err != nil {
				return fmt.Errorf("max_depth: %w", err)
			}
			opts.MaxDepth = n
		case "max_loop_depth":
			n, err := parseNonNegInt(val)
			if err != nil {
				return fmt.Errorf("max_loop_depth: %w", err)
			}
			opts.MaxLoopDepth = n
		case "max_node_number":
			n, err := parseNonNegInt(val)
			if err != nil {
				return fmt.Errorf("max_node_number: %w", err)
			}
			opts.MaxNodeNumber = n
		case "loggers":
			opts.Loggers = splitNames(val)
		default:
			return fmt.Errorf("unknown option %q", key)
		}
	}
	return nil
}

func parseNonNegInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must be non-negative, got %d", n)
	}
	return n, nil
}

// ParseMultiTrace reads a multi-trace fixture: blank-line-separated
// components, each a `colocalization:` line followed by a `trace:`
// line. colocalization is `#all`, `#any`, or an explicit `{a, b}` set;
// trace is a comma-separated list of a!m / a?m actions (empty for a
// component whose trace has already been fully consumed, i.e. S5's
// zero-length trace).
func ParseMultiTrace(src string, sig *signature.Signature) (*model.ParsedMultiTrace, error) {
	all := signature.NewLifelineSet(sig.AllLifelines()...)
	var components []mtrace.Component

	for _, block := range splitBlocks(src) {
		var coloTok, traceLine string
		haveColo, haveTrace := false, false
		for lineNo, line := range splitDirectiveLines(block) {
			key, value, err := splitDirective(line)
			if err != nil {
				return nil, fmt.Errorf("fixture: line %d: %w", lineNo+1, err)
			}
			switch key {
			case "colocalization":
				coloTok, haveColo = value, true
			case "trace":
				traceLine, haveTrace = value, true
			default:
				return nil, fmt.Errorf("fixture: unknown directive %q in multi-trace component", key)
			}
		}
		if !haveColo {
			return nil, fmt.Errorf("fixture: multi-trace component missing 'colocalization:'")
		}

		trace, err := parseActionList(traceLine, sig)
		if err != nil {
			return nil, fmt.Errorf("fixture: parsing trace: %w", err)
		}
		if !haveTrace {
			trace = nil
		}

		colo, err := resolveColocalization(coloTok, all, trace, sig)
		if err != nil {
			return nil, err
		}

		components = append(components, mtrace.Component{Colocalization: colo, Trace: trace})
	}

	mt, err := mtrace.New(all, components)
	if err != nil {
		return nil, err
	}
	return &model.ParsedMultiTrace{MultiTrace: mt}, nil
}

// resolveColocalization implements spec.md §6.2: #all/#any keywords
// are resolved by the parser to explicit sets before the core ever
// sees a MultiTrace.
func resolveColocalization(tok string, all signature.LifelineSet, trace []term.Action, sig *signature.Signature) (signature.LifelineSet, error) {
	tok = strings.TrimSpace(tok)
	switch {
	case tok == "#all":
		return all, nil
	case tok == "#any":
		ids := make([]signature.ID, 0, len(trace))
		for _, a := range trace {
			ids = append(ids, a.Lifeline)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("fixture: #any co-localization needs a non-empty trace to infer from")
		}
		return signature.NewLifelineSet(ids...), nil
	case strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}"):
		inner := tok[1 : len(tok)-1]
		var ids []signature.ID
		for _, name := range splitNames(inner) {
			ids = append(ids, sig.InternLifeline(name))
		}
		return signature.NewLifelineSet(ids...), nil
	default:
		return nil, fmt.Errorf("fixture: malformed co-localization %q", tok)
	}
}

func parseActionList(s string, sig *signature.Signature) ([]term.Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var actions []term.Action
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		a, err := parseAction(piece, sig)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func parseAction(s string, sig *signature.Signature) (term.Action, error) {
	var kind term.ActionKind
	var sep string
	switch {
	case strings.Contains(s, "!"):
		kind, sep = term.Emission, "!"
	case strings.Contains(s, "?"):
		kind, sep = term.Reception, "?"
	default:
		return term.Action{}, fmt.Errorf("fixture: malformed action %q (expected '!' or '?')", s)
	}
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return term.Action{}, fmt.Errorf("fixture: malformed action %q", s)
	}
	lifeline := strings.TrimSpace(parts[0])
	message := strings.TrimSpace(parts[1])
	if lifeline == "" || message == "" {
		return term.Action{}, fmt.Errorf("fixture: malformed action %q", s)
	}
	return term.Action{Kind: kind, Lifeline: sig.InternLifeline(lifeline), Message: sig.InternMessage(message)}, nil
}

func splitNames(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// splitDirectiveLines strips blank lines and '//'-comment lines, trimming
// each remaining line.
func splitDirectiveLines(src string) []string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func splitDirective(line string) (key, value string, err error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("malformed directive %q (expected 'key: value')", line)
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), nil
}

// splitBlocks splits src on blank lines into component blocks.
func splitBlocks(src string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
