// Package model defines the types a parser (out of scope, per spec.md
// §1) hands to the core: a Signature, a binary-normalized interaction
// term, an options record, and a parsed multi-trace. internal/fixture
// is the only in-repo producer of these types.
package model

import (
	"fmt"

	"github.com/hibou-project/hibou/internal/engine/strategy"
	"github.com/hibou-project/hibou/internal/mtrace"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
	"gopkg.in/yaml.v3"
)

// Options is the parsed options record of spec.md §6.1. The yaml tags
// back LoadOptionsYAML; the json tags give the record the same field
// names under encoding/json. internal/httpapi requests do not carry an
// Options object: their options come from the model's fixture source.
type Options struct {
	Strategy      strategy.Strategy `yaml:"strategy" json:"strategy"`
	Loggers       []string          `yaml:"loggers" json:"loggers"`
	MaxDepth      int               `yaml:"max_depth" json:"max_depth"`
	MaxLoopDepth  int               `yaml:"max_loop_depth" json:"max_loop_depth"`
	MaxNodeNumber int               `yaml:"max_node_number" json:"max_node_number"`
}

// DefaultOptions returns the spec.md §6.1 defaults: BFS, no loggers, no
// bounds (zero value means "unbounded" — see internal/engine).
func DefaultOptions() Options {
	return Options{Strategy: strategy.BFS}
}

// LoadOptionsYAML parses a standalone options document (spec.md §6.1's
// strategy/loggers/max_depth/max_loop_depth/max_node_number fields),
// starting from DefaultOptions so an omitted field keeps its default.
// This lets a fixture's inline `options:` line (internal/fixture) be
// overridden from a separate file, e.g. cmd/hibou's --options flag.
func LoadOptionsYAML(src []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(src, &opts); err != nil {
		return Options{}, fmt.Errorf("model: parsing options yaml: %w", err)
	}
	return opts, nil
}

// ParsedModel is the complete input to the core: a signature, the
// binary-normalized interaction term built over it, and the options
// that govern engine runs against it.
type ParsedModel struct {
	Signature *signature.Signature
	Term      *term.Term
	Options   Options
}

// ParsedMultiTrace is the complete input to the analysis engine beyond
// the model: a multi-trace already resolved against the model's
// signature (spec.md §6.2 — #all/#any co-localization keywords are
// resolved by the parser before the core ever sees a MultiTrace).
type ParsedMultiTrace struct {
	MultiTrace *mtrace.MultiTrace
}
