package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hibou-project/hibou/internal/engine"
	"github.com/hibou-project/hibou/internal/fixture"
	"github.com/hibou-project/hibou/internal/sink"
	"github.com/spf13/cobra"
)

func newDrawCmd() *cobra.Command {
	var optionsPath string
	cmd := &cobra.Command{
		Use:   "draw <hsf>",
		Short: "explore a model and render its transition graph to <hsf base>.dot/.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(args[0], optionsPath)
		},
	}
	cmd.Flags().StringVar(&optionsPath, "options", "", "YAML file overriding the model's options: block (spec.md §6.1)")
	return cmd
}

func runDraw(hsfPath, optionsPath string) error {
	hsfSrc, err := os.ReadFile(hsfPath)
	if err != nil {
		return finish(exitInputError, fmt.Errorf("hibou: reading %s: %w", hsfPath, err))
	}
	pm, err := fixture.ParseModel(string(hsfSrc))
	if err != nil {
		return finish(exitInputError, fmt.Errorf("hibou: parsing %s: %w", hsfPath, err))
	}
	pm.Options, err = loadOptionsOverride(optionsPath, pm.Options)
	if err != nil {
		return finish(exitInputError, err)
	}

	base := strings.TrimSuffix(hsfPath, filepath.Ext(hsfPath))
	gs := sink.NewGraphicSink(pm.Signature, base)

	_, err = engine.ExplorationEngine{}.Run(context.Background(), pm.Term, pm.Options, gs)

	var bound *engine.BoundExceeded
	switch {
	case errors.Is(err, engine.ErrAborted):
		return finish(exitAborted, err)
	case errors.As(err, &bound):
		fmt.Printf("wrote %s.dot (incomplete: %s)\n", base, bound)
		return finish(exitOK, nil)
	case err != nil:
		return finish(exitInternalFault, err)
	}

	fmt.Printf("wrote %s.dot\n", base)
	return finish(exitOK, nil)
}
