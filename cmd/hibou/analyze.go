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

func newAnalyzeCmd() *cobra.Command {
	var optionsPath string
	cmd := &cobra.Command{
		Use:   "analyze <hsf> <htf>",
		Short: "check a multi-trace against a model, printing Pass or Fail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], args[1], optionsPath)
		},
	}
	cmd.Flags().StringVar(&optionsPath, "options", "", "YAML file overriding the model's options: block (spec.md §6.1)")
	return cmd
}

func runAnalyze(hsfPath, htfPath, optionsPath string) error {
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

	htfSrc, err := os.ReadFile(htfPath)
	if err != nil {
		return finish(exitInputError, fmt.Errorf("hibou: reading %s: %w", htfPath, err))
	}
	pmt, err := fixture.ParseMultiTrace(string(htfSrc), pm.Signature)
	if err != nil {
		return finish(exitInputError, fmt.Errorf("hibou: parsing %s: %w", htfPath, err))
	}

	sk, _ := buildSink(pm.Signature, hsfPath, pm.Options)
	result, err := engine.AnalysisEngine{}.Run(context.Background(), pm.Term, pmt.MultiTrace, pm.Options, sk)

	var bound *engine.BoundExceeded
	switch {
	case errors.Is(err, engine.ErrAborted):
		return finish(exitAborted, err)
	case errors.As(err, &bound):
		fmt.Printf("inconclusive: %s\n", bound)
		return finish(exitFail, nil)
	case err != nil:
		return finish(exitInternalFault, err)
	}

	fmt.Printf("%s (%d nodes explored)\n", result.Verdict, result.NodesExplored)
	if result.Verdict == engine.Fail {
		return finish(exitFail, nil)
	}
	return finish(exitOK, nil)
}
