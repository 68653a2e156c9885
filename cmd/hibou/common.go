package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hibou-project/hibou/internal/model"
	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/sink"
)

// loadOptionsOverride reads path as a model.LoadOptionsYAML document
// when non-empty, leaving opts untouched otherwise — backs every
// subcommand's --options flag.
func loadOptionsOverride(path string, opts model.Options) (model.Options, error) {
	if path == "" {
		return opts, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return model.Options{}, fmt.Errorf("hibou: reading %s: %w", path, err)
	}
	return model.LoadOptionsYAML(src)
}

// buildSink always drives a CountingSink (so a verdict/node count can be
// printed) fanned out with a GraphicSink when opts.Loggers names
// "graphic" (spec.md §6.1, §6.4), writing next to hsfPath with its
// extension stripped.
func buildSink(sig *signature.Signature, hsfPath string, opts model.Options) (sink.Sink, *sink.CountingSink) {
	cs := sink.NewCountingSink()
	sinks := []sink.Sink{cs}
	for _, logger := range opts.Loggers {
		if logger == "graphic" {
			base := strings.TrimSuffix(hsfPath, filepath.Ext(hsfPath))
			sinks = append(sinks, sink.NewGraphicSink(sig, base))
		}
	}
	return sink.Multi(sinks...), cs
}
