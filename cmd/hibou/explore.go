package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hibou-project/hibou/internal/engine"
	"github.com/hibou-project/hibou/internal/fixture"
	"github.com/spf13/cobra"
)

func newExploreCmd() *cobra.Command {
	var optionsPath string
	cmd := &cobra.Command{
		Use:   "explore <hsf>",
		Short: "enumerate a model's reachable states up to its configured bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(args[0], optionsPath)
		},
	}
	cmd.Flags().StringVar(&optionsPath, "options", "", "YAML file overriding the model's options: block (spec.md §6.1)")
	return cmd
}

func runExplore(hsfPath, optionsPath string) error {
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

	sk, _ := buildSink(pm.Signature, hsfPath, pm.Options)
	result, err := engine.ExplorationEngine{}.Run(context.Background(), pm.Term, pm.Options, sk)

	var bound *engine.BoundExceeded
	switch {
	case errors.Is(err, engine.ErrAborted):
		return finish(exitAborted, err)
	case errors.As(err, &bound):
		fmt.Printf("incomplete: %s (%d nodes generated)\n", bound, result.NodesGenerated)
		return finish(exitOK, nil)
	case err != nil:
		return finish(exitInternalFault, err)
	}

	fmt.Printf("complete: %d nodes generated\n", result.NodesGenerated)
	return finish(exitOK, nil)
}
